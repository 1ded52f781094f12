package model

import (
	"time"
)

type Like struct {
	ID        uint64    `gorm:"primaryKey" json:"id"`
	UserID    uint64    `gorm:"not null;uniqueIndex:idx_like_user_post" json:"user_id"`
	PostID    uint64    `gorm:"not null;uniqueIndex:idx_like_user_post;index:idx_like_post" json:"post_id"`
	CreatedAt time.Time `json:"created_at"`

	User User `gorm:"foreignKey:UserID;references:ID"`
}

func (Like) TableName() string {
	return "likes"
}
