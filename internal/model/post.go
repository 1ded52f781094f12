package model

import (
	"time"
)

type Post struct {
	ID          uint64     `gorm:"primaryKey"`
	UserID      uint64     `gorm:"not null;index:idx_user_id" json:"user_id"`
	Content     string     `gorm:"not null" json:"content"`
	AuditState  AuditState `gorm:"not null;default:0" json:"audit_state"`
	ReplyID     *uint64    `gorm:"index:idx_reply_id" json:"reply_id"`
	ForwardID   *uint64    `json:"forward_id"`
	IsDeleted   bool       `gorm:"type:tinyint(1);not null;default:0" json:"is_deleted"`
	PublishTime time.Time  `json:"publish_time"`

	// 关联关系
	User        User         `gorm:"foreignKey:UserID;references:ID"`
	Likes       []Like       `gorm:"foreignKey:PostID;references:ID"`
	Collections []Collection `gorm:"foreignKey:PostID;references:ID"`
}

func (Post) TableName() string {
	return "posts"
}

// IsReply 是否为回复推文
func (p *Post) IsReply() bool {
	return p.ReplyID != nil
}

// IsForward 是否为转发推文
func (p *Post) IsForward() bool {
	return p.ForwardID != nil
}
