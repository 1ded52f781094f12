package dto

import "time"

// UserDTO 用户资料，永远不包含密码
type UserDTO struct {
	ID           uint64    `json:"id"`
	Name         string    `json:"name"`
	Nickname     string    `json:"nickname"`
	Role         string    `json:"role"`
	Sex          string    `json:"sex"`
	Age          *int      `json:"age"`
	Email        string    `json:"email"`
	Introduction string    `json:"introduction"`
	RegTime      time.Time `json:"reg_time"`
}

// UserRefDTO 嵌套在推文里的用户摘要
type UserRefDTO struct {
	ID       uint64 `json:"id"`
	Name     string `json:"name"`
	Nickname string `json:"nickname"`
}
