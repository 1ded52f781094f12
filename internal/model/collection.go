package model

import (
	"time"
)

type Collection struct {
	ID        uint64    `gorm:"primaryKey" json:"id"`
	UserID    uint64    `gorm:"not null;uniqueIndex:idx_collection_user_post" json:"user_id"`
	PostID    uint64    `gorm:"not null;uniqueIndex:idx_collection_user_post;index:idx_collection_post" json:"post_id"`
	CreatedAt time.Time `json:"created_at"`

	User User `gorm:"foreignKey:UserID;references:ID"`
	Post Post `gorm:"foreignKey:PostID;references:ID"`
}

func (Collection) TableName() string {
	return "collections"
}
