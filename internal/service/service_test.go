package service

import (
	"testing"

	"tweethub/internal/api/config"
	"tweethub/internal/pkg/database"
	redispkg "tweethub/internal/pkg/redis"
	"tweethub/internal/repository"

	"github.com/alicebob/miniredis/v2"
	redisv9 "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
)

// testEnv 每个测试用例独立的内存数据库与 Redis
type testEnv struct {
	userSvc     UserService
	postSvc     PostService
	actionSvc   PostActionService
	relationSvc RelationshipService

	userRepo     repository.UserRepo
	postRepo     repository.PostRepo
	relationRepo repository.RelationshipRepo
}

func newTestEnv(t *testing.T) *testEnv {
	return newTestEnvWithModeration(t, config.ModerationConfig{})
}

func moderationShowRejected() config.ModerationConfig {
	return config.ModerationConfig{ShowRejectedToOwner: true}
}

func newTestEnvWithModeration(t *testing.T, moderation config.ModerationConfig) *testEnv {
	t.Helper()

	db, err := database.NewGormDB(&config.DBConfig{
		Driver:  "sqlite",
		DSN:     ":memory:",
		MaxIdle: 1,
		MaxOpen: 1,
	})
	require.NoError(t, err)
	require.NoError(t, database.AutoMigrate(db))

	mr := miniredis.RunT(t)
	redispkg.Rdb = redisv9.NewClient(&redisv9.Options{Addr: mr.Addr()})

	userRepo := repository.NewUserRepo(db)
	postRepo := repository.NewPostRepo(db)
	actionRepo := repository.NewPostActionRepo(db)
	relationRepo := repository.NewRelationshipRepo(db)

	return &testEnv{
		userSvc:      NewUserService(userRepo),
		postSvc:      NewPostService(postRepo, relationRepo, moderation),
		actionSvc:    NewPostActionService(actionRepo, postRepo, relationRepo),
		relationSvc:  NewRelationshipService(relationRepo, userRepo),
		userRepo:     userRepo,
		postRepo:     postRepo,
		relationRepo: relationRepo,
	}
}
