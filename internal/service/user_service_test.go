package service

import (
	"context"
	"testing"

	"tweethub/internal/api/dto"
	"tweethub/internal/model"
	redispkg "tweethub/internal/pkg/redis"
	"tweethub/internal/pkg/security"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func registerUser(t *testing.T, env *testEnv, name string) *model.User {
	t.Helper()
	ctx := context.Background()
	require.NoError(t, env.userSvc.Register(ctx, &dto.CredentialDTO{Username: name, Password: "password-" + name}))
	user, err := env.userRepo.GetUserByName(ctx, name)
	require.NoError(t, err)
	require.NotNil(t, user)
	return user
}

func TestRegisterDefaults(t *testing.T) {
	env := newTestEnv(t)
	user := registerUser(t, env, "alice")

	assert.Equal(t, "alice", user.Name)
	assert.Equal(t, "alice", user.Nickname)
	assert.Equal(t, model.RoleUser, user.Role)
	assert.Equal(t, "None", user.Sex)
	assert.NotEqual(t, "password-alice", user.Password)
}

func TestRegisterDuplicateName(t *testing.T) {
	env := newTestEnv(t)
	registerUser(t, env, "alice")

	err := env.userSvc.Register(context.Background(), &dto.CredentialDTO{Username: "alice", Password: "other"})
	assert.ErrorIs(t, err, ErrUserUsernameExist)
}

func TestLoginRoundTrip(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	user := registerUser(t, env, "alice")

	token, err := env.userSvc.Login(ctx, &dto.CredentialDTO{Username: "alice", Password: "password-alice"})
	require.NoError(t, err)

	claims, err := security.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)
	assert.Contains(t, claims.Roles, model.CapabilityUser)
	assert.NotContains(t, claims.Roles, model.CapabilityReview)
}

// 密码错误与用户不存在必须是同一条报错，避免账号枚举
func TestLoginFailureIndistinguishable(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	registerUser(t, env, "alice")

	_, errWrongPass := env.userSvc.Login(ctx, &dto.CredentialDTO{Username: "alice", Password: "nope"})
	_, errNoUser := env.userSvc.Login(ctx, &dto.CredentialDTO{Username: "ghost", Password: "nope"})

	assert.ErrorIs(t, errWrongPass, ErrCredentialInvalid)
	assert.ErrorIs(t, errNoUser, ErrCredentialInvalid)
}

func TestLogoutBlacklistsSignature(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	registerUser(t, env, "alice")

	token, err := env.userSvc.Login(ctx, &dto.CredentialDTO{Username: "alice", Password: "password-alice"})
	require.NoError(t, err)
	require.NoError(t, env.userSvc.Logout(ctx, token))

	signature, err := security.ExtractSignature(token)
	require.NoError(t, err)
	value, err := redispkg.GetValue(ctx, signature)
	require.NoError(t, err)
	assert.NotEmpty(t, value)
}

func TestGetUserInfoExcludesPasswordAndCaches(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	user := registerUser(t, env, "alice")

	info, err := env.userSvc.GetUserInfo(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "alice", info.Name)

	// 第二次命中缓存，结果一致
	cached, err := env.userSvc.GetUserInfo(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, info.ID, cached.ID)
	assert.Equal(t, info.Nickname, cached.Nickname)

	_, err = env.userSvc.GetUserInfo(ctx, 99999)
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestUpdateUserInfoPartial(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	user := registerUser(t, env, "alice")

	nickname := "Wonderland"
	intro := "hello"
	require.NoError(t, env.userSvc.UpdateUserInfo(ctx, user.ID, &dto.UpdateInfoDTO{
		Nickname:     &nickname,
		Introduction: &intro,
	}))

	info, err := env.userSvc.GetUserInfo(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "Wonderland", info.Nickname)
	assert.Equal(t, "hello", info.Introduction)
	// 未提交的字段保持原值
	assert.Equal(t, "None", info.Sex)
}

func TestSearchUserMatchesNameOrNickname(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	alice := registerUser(t, env, "alice")
	registerUser(t, env, "bob")

	nickname := "queen"
	require.NoError(t, env.userSvc.UpdateUserInfo(ctx, alice.ID, &dto.UpdateInfoDTO{Nickname: &nickname}))

	byName, err := env.userSvc.SearchUser(ctx, "ali")
	require.NoError(t, err)
	require.Len(t, byName, 1)
	assert.Equal(t, alice.ID, byName[0].ID)

	byNickname, err := env.userSvc.SearchUser(ctx, "quee")
	require.NoError(t, err)
	require.Len(t, byNickname, 1)
	assert.Equal(t, alice.ID, byNickname[0].ID)
}
