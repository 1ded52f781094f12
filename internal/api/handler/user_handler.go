package handler

import (
	"strconv"

	"tweethub/internal/pkg/response"
	"tweethub/internal/service"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	userSvc service.UserService
}

func NewUserHandler(userSvc service.UserService) *UserHandler {
	return &UserHandler{userSvc: userSvc}
}

func (s *UserHandler) GetInfo(c *gin.Context) {
	id, err := strconv.ParseUint(c.Query("id"), 10, 64)
	if err != nil {
		response.Fail(c, response.CodeFail, "参数错误")
		return
	}
	user, err := s.userSvc.GetUserInfo(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, user)
}

func (s *UserHandler) GetInfoByName(c *gin.Context) {
	name := c.Query("name")
	if name == "" {
		response.Fail(c, response.CodeFail, "参数错误")
		return
	}
	user, err := s.userSvc.GetUserInfoByName(c.Request.Context(), name)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, user)
}

func (s *UserHandler) Search(c *gin.Context) {
	keyword := c.Query("name")
	if keyword == "" {
		response.Fail(c, response.CodeFail, "参数错误")
		return
	}
	users, err := s.userSvc.SearchUser(c.Request.Context(), keyword)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, users)
}
