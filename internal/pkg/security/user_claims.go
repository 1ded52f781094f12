package security

import (
	"github.com/golang-jwt/jwt/v5"
)

// UserClaims Token 中携带的业务信息：用户 id 与登录时解析出的能力集
type UserClaims struct {
	UserID uint64   `json:"user_id"`
	Roles  []string `json:"roles"`
	jwt.RegisteredClaims
}
