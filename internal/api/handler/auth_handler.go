package handler

import (
	"strings"

	"tweethub/internal/api/dto"
	"tweethub/internal/pkg/response"
	"tweethub/internal/pkg/util"
	"tweethub/internal/service"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	userSvc service.UserService
}

func NewAuthHandler(userSvc service.UserService) *AuthHandler {
	return &AuthHandler{userSvc: userSvc}
}

func (s *AuthHandler) Register(c *gin.Context) {
	var credential dto.CredentialDTO
	if err := c.ShouldBind(&credential); err != nil {
		response.Error(c, err)
		return
	}
	if !util.ValidateCredential(credential.Username, credential.Password) {
		response.Fail(c, response.CodeFail, "参数错误")
		return
	}
	if err := s.userSvc.Register(c.Request.Context(), &credential); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

func (s *AuthHandler) Login(c *gin.Context) {
	var credential dto.CredentialDTO
	if err := c.ShouldBind(&credential); err != nil {
		response.Error(c, err)
		return
	}
	if !util.ValidateCredential(credential.Username, credential.Password) {
		response.Fail(c, response.CodeFail, "参数错误")
		return
	}
	token, err := s.userSvc.Login(c.Request.Context(), &credential)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, token)
}

func (s *AuthHandler) Logout(c *gin.Context) {
	token := strings.TrimPrefix(c.GetHeader("Authorization"), "Bearer ")
	if err := s.userSvc.Logout(c.Request.Context(), token); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

func (s *AuthHandler) UpdateInfo(c *gin.Context) {
	userID := c.GetUint64("user_id")
	var info dto.UpdateInfoDTO
	if err := c.ShouldBind(&info); err != nil {
		response.Error(c, err)
		return
	}
	if err := util.ValidateDTO(&info); err != nil {
		response.Error(c, err)
		return
	}
	if err := s.userSvc.UpdateUserInfo(c.Request.Context(), userID, &info); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}
