package util

import (
	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
}

// ValidateDTO 按 validate 标签校验，错误原样返回交给 response.Error 归类
func ValidateDTO(dto any) error {
	return validate.Struct(dto)
}

// ValidateCredential 用户名与密码非空且不超长，注册登录共用
func ValidateCredential(username, password string) bool {
	if len(username) == 0 || len(password) == 0 {
		return false
	}
	if len(username) > 20 || len(password) > 72 {
		return false
	}
	return true
}
