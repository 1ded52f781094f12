package api

import (
	"net/http"

	"tweethub/internal/api/middleware"
	"tweethub/internal/model"
	"tweethub/internal/pkg/logger"

	"github.com/gin-gonic/gin"
)

func SetupRouter(group *HandlersGroup) *gin.Engine {
	r := gin.New()
	_ = r.SetTrustedProxies([]string{"localhost"})

	// TraceId & Logger & CORS
	r.Use(middleware.TraceMiddleware())
	r.Use(middleware.AuditMiddleware())
	r.Use(middleware.CORSMiddleware())
	logger.SetupGin(r)

	apiGroup := r.Group("/api/v1")
	{
		apiGroup.GET("/ping", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{
				"code": 0,
				"msg":  "pong",
				"data": nil,
			})
		})

		authGroup := apiGroup.Group("/auth")
		{
			authGroup.POST("/register", group.AuthHandler.Register)
			authGroup.POST("/login", group.AuthHandler.Login)

			loggedGroup := authGroup.Group("")
			loggedGroup.Use(middleware.AuthMiddleware())
			{
				loggedGroup.POST("/logout", group.AuthHandler.Logout)
				loggedGroup.POST("/update-info", group.AuthHandler.UpdateInfo)
			}
		}

		userGroup := apiGroup.Group("/user")
		userGroup.Use(middleware.AuthMiddleware())
		{
			userGroup.GET("/get-info", group.UserHandler.GetInfo)
			userGroup.GET("/get-info-by-name", group.UserHandler.GetInfoByName)
			userGroup.GET("/search", group.UserHandler.Search)
		}

		postGroup := apiGroup.Group("/post")
		postGroup.Use(middleware.AuthMiddleware())
		{
			postGroup.POST("/create", group.PostHandler.Create)
			postGroup.POST("/create-forward", group.PostHandler.CreateForward)
			postGroup.POST("/update", group.PostHandler.Update)
			postGroup.POST("/delete", group.PostHandler.Delete)
			postGroup.POST("/commit-audit", group.PostHandler.CommitAudit)
			postGroup.GET("/list", group.PostHandler.List)
			postGroup.GET("/view", group.PostHandler.View)
			postGroup.GET("/search", group.PostHandler.Search)

			// 需要登录 & 拥有 review 能力
			reviewGroup := postGroup.Group("")
			reviewGroup.Use(middleware.CheckRoles(model.CapabilityReview))
			{
				reviewGroup.GET("/audit-list-pending", group.PostHandler.AuditListPending)
				reviewGroup.POST("/audit-accept", group.PostHandler.AuditAccept)
				reviewGroup.POST("/audit-reject", group.PostHandler.AuditReject)
			}
		}

		recommendGroup := apiGroup.Group("/post-recommend")
		recommendGroup.Use(middleware.AuthMiddleware())
		{
			recommendGroup.GET("/generate", group.PostHandler.Recommend)
		}

		likeGroup := apiGroup.Group("/like")
		likeGroup.Use(middleware.AuthMiddleware())
		{
			likeGroup.POST("/add", group.PostActionHandler.AddLike)
			likeGroup.POST("/remove", group.PostActionHandler.RemoveLike)
		}

		collectionGroup := apiGroup.Group("/collection")
		collectionGroup.Use(middleware.AuthMiddleware())
		{
			collectionGroup.POST("/add", group.PostActionHandler.AddCollection)
			collectionGroup.POST("/remove", group.PostActionHandler.RemoveCollection)
			collectionGroup.GET("/list", group.PostActionHandler.ListCollections)
		}

		relationGroup := apiGroup.Group("/user-relationship")
		relationGroup.Use(middleware.AuthMiddleware())
		{
			relationGroup.GET("/list", group.RelationshipHandler.List)
			relationGroup.GET("/list-inverse", group.RelationshipHandler.ListInverse)
			relationGroup.GET("/get-two-relation", group.RelationshipHandler.GetTwoRelation)
			relationGroup.GET("/count", group.RelationshipHandler.Count)
			relationGroup.POST("/follow", group.RelationshipHandler.Follow)
			relationGroup.POST("/block", group.RelationshipHandler.Block)
			relationGroup.POST("/unfollow", group.RelationshipHandler.Unfollow)
		}
	}

	return r
}
