package middleware

import (
	"net/http"
	"strings"

	"tweethub/internal/pkg/redis"
	"tweethub/internal/pkg/response"
	"tweethub/internal/pkg/security"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware 负责验证 JWT 并将用户身份信息注入 Context
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			response.FailWithStatus(c, http.StatusUnauthorized, "Token 缺失或格式错误")
			c.Abort()
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		signature, err := security.ExtractSignature(tokenString)
		if err != nil {
			response.FailWithStatus(c, http.StatusUnauthorized, "Token 缺失或格式错误")
			c.Abort()
			return
		}

		// 已登出的 token 签名会在黑名单里待到自然过期
		value, err := redis.GetValue(c.Request.Context(), signature)
		if err != nil {
			response.FailWithStatus(c, http.StatusInternalServerError, "未知错误")
			c.Abort()
			return
		}
		if value != "" {
			response.FailWithStatus(c, http.StatusUnauthorized, "Token 无效或已过期")
			c.Abort()
			return
		}

		claims, err := security.ValidateToken(tokenString)
		if err != nil {
			response.FailWithStatus(c, http.StatusUnauthorized, "Token 无效或已过期")
			c.Abort()
			return
		}

		c.Set("user_id", claims.UserID)
		c.Set("roles", claims.Roles)

		c.Next()
	}
}
