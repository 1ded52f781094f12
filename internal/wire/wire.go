package wire

import (
	"tweethub/internal/api"
	"tweethub/internal/api/config"
	"tweethub/internal/api/handler"
	"tweethub/internal/repository"
	"tweethub/internal/service"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// ApplicationContainer 封装了应用运行所需的所有顶级组件
type ApplicationContainer struct {
	Router *gin.Engine
	DB     *gorm.DB
}

func BuildApplication(db *gorm.DB, cfg *config.Config) (*ApplicationContainer, error) {
	userRepo := repository.NewUserRepo(db)
	postRepo := repository.NewPostRepo(db)
	actionRepo := repository.NewPostActionRepo(db)
	relationRepo := repository.NewRelationshipRepo(db)

	userService := service.NewUserService(userRepo)
	postService := service.NewPostService(postRepo, relationRepo, cfg.Moderation)
	actionService := service.NewPostActionService(actionRepo, postRepo, relationRepo)
	relationService := service.NewRelationshipService(relationRepo, userRepo)

	handlers := &api.HandlersGroup{
		AuthHandler:         handler.NewAuthHandler(userService),
		UserHandler:         handler.NewUserHandler(userService),
		PostHandler:         handler.NewPostHandler(postService),
		PostActionHandler:   handler.NewPostActionHandler(actionService),
		RelationshipHandler: handler.NewRelationshipHandler(relationService),
	}

	router := api.SetupRouter(handlers)

	return &ApplicationContainer{
		Router: router,
		DB:     db,
	}, nil
}
