package dto

// CredentialDTO 登录/注册凭据
type CredentialDTO struct {
	Username string `json:"username" form:"username"`
	Password string `json:"password" form:"password"`
}

// UpdateInfoDTO 个人资料部分更新，nil 字段保持不变
type UpdateInfoDTO struct {
	Nickname     *string `json:"nickname" form:"nickname" validate:"omitempty,max=50"`
	Introduction *string `json:"introduction" form:"introduction" validate:"omitempty,max=512"`
	Password     *string `json:"password" form:"password"`
	Sex          *string `json:"sex" form:"sex" validate:"omitempty,max=16"`
	Age          *int    `json:"age" form:"age" validate:"omitempty,min=0,max=200"`
	Email        *string `json:"email" form:"email" validate:"omitempty,max=128"`
}
