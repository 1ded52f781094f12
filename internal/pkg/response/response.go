package response

import (
	"errors"
	log "log/slog"
	"net/http"

	"tweethub/internal/api/dto"
	"tweethub/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/goccy/go-json"
)

const (
	CodeOK      = 0
	CodeFail    = -1
	CodeBlocked = -101
)

// Success 成功返回封装
func Success(ctx *gin.Context, data interface{}) {
	ctx.JSON(http.StatusOK, dto.Response{
		Code: CodeOK,
		Msg:  "",
		Data: data,
	})
}

// Fail 业务失败返回封装，HTTP 状态仍为 200
func Fail(c *gin.Context, businessCode int, message string) {
	c.JSON(http.StatusOK, dto.Response{
		Code: businessCode,
		Msg:  message,
		Data: nil,
	})
}

// FailWithStatus 传输层失败（鉴权、基础设施），带非 200 状态码
func FailWithStatus(c *gin.Context, status int, message string) {
	c.JSON(status, dto.Response{
		Code: CodeFail,
		Msg:  message,
		Data: nil,
	})
}

// Error 处理错误：业务错误落入信封负数码，未知错误按 500 处理
func Error(c *gin.Context, err error) {
	var ve validator.ValidationErrors
	if errors.As(err, &ve) {
		Fail(c, CodeFail, "参数错误")
		return
	}

	var unmarshalTypeError *json.UnmarshalTypeError
	if errors.As(err, &unmarshalTypeError) {
		Fail(c, CodeFail, "Json错误")
		return
	}

	code, ok := service.ErrorMap[err]
	if !ok {
		log.Error("Error", "err", err)
		FailWithStatus(c, http.StatusInternalServerError, service.UnExpectedError.Error())
		return
	}
	Fail(c, code, err.Error())
}
