package model

import (
	"time"
)

type User struct {
	ID           uint64 `gorm:"primaryKey"`
	Name         string `gorm:"type:varchar(50);uniqueIndex:idx_name;not null" json:"name"`
	Nickname     string `gorm:"type:varchar(50);not null" json:"nickname"`
	Password     string `gorm:"type:varchar(255);not null" json:"-"`
	Role         Role   `gorm:"type:varchar(16);not null;default:'user'" json:"role"`
	Sex          string `gorm:"type:varchar(16);not null;default:'None'" json:"sex"`
	Age          *int   `json:"age"`
	Email        string `gorm:"type:varchar(128);not null;default:''" json:"email"`
	Introduction string `gorm:"type:varchar(512);not null;default:''" json:"introduction"`
	RegTime      time.Time `json:"reg_time"`
}

func (User) TableName() string {
	return "users"
}
