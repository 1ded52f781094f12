package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	"tweethub/internal/api/dto"
	"tweethub/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedPost(t *testing.T, env *testEnv, userID uint64, content string, state model.AuditState) *model.Post {
	t.Helper()
	post := &model.Post{
		UserID:      userID,
		Content:     content,
		AuditState:  state,
		PublishTime: time.Now(),
	}
	require.NoError(t, env.postRepo.CreatePost(context.Background(), post))
	return post
}

func TestCreatePostStartsAsDraft(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	alice := registerUser(t, env, "alice")

	require.NoError(t, env.postSvc.CreatePost(ctx, alice.ID, &dto.CreatePostDTO{Content: "hello"}))

	posts, err := env.postSvc.ListByUser(ctx, alice.ID, alice.ID)
	require.NoError(t, err)
	require.Len(t, posts, 1)
	assert.Equal(t, "draft", posts[0].AuditState)
}

func TestCreateReplyRequiresTarget(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	alice := registerUser(t, env, "alice")

	missing := uint64(9999)
	err := env.postSvc.CreatePost(ctx, alice.ID, &dto.CreatePostDTO{Content: "re", ReplyID: &missing})
	assert.ErrorIs(t, err, ErrPostInvalid)

	target := seedPost(t, env, alice.ID, "parent", model.AuditPassed)
	assert.NoError(t, env.postSvc.CreatePost(ctx, alice.ID, &dto.CreatePostDTO{Content: "re", ReplyID: &target.ID}))
}

// 转发不经审核，直接可见，内容为空
func TestCreateForwardPassesImmediately(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	alice := registerUser(t, env, "alice")
	bob := registerUser(t, env, "bob")
	origin := seedPost(t, env, alice.ID, "origin", model.AuditPassed)

	require.NoError(t, env.postSvc.CreateForward(ctx, bob.ID, origin.ID))

	posts, err := env.postSvc.ListByUser(ctx, alice.ID, bob.ID)
	require.NoError(t, err)
	require.Len(t, posts, 1)
	assert.Equal(t, "passed", posts[0].AuditState)
	assert.Empty(t, posts[0].Content)
	require.NotNil(t, posts[0].ForwardID)
	assert.Equal(t, origin.ID, *posts[0].ForwardID)

	err = env.postSvc.CreateForward(ctx, bob.ID, 9999)
	assert.ErrorIs(t, err, ErrPostInvalid)
}

func TestAuditLifecycle(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	alice := registerUser(t, env, "alice")
	post := seedPost(t, env, alice.ID, "v1", model.AuditDraft)

	// 草稿不能直接过审或拒绝
	assert.ErrorIs(t, env.postSvc.AuditAccept(ctx, post.ID), ErrPostNotInAudit)
	assert.ErrorIs(t, env.postSvc.AuditReject(ctx, post.ID), ErrPostNotInAudit)

	require.NoError(t, env.postSvc.CommitAudit(ctx, alice.ID, post.ID))
	// 审核中不可修改也不可重复提交
	assert.ErrorIs(t, env.postSvc.UpdatePost(ctx, alice.ID, &dto.UpdatePostDTO{ID: post.ID, Content: "v2"}), ErrPostNotEditable)
	assert.ErrorIs(t, env.postSvc.CommitAudit(ctx, alice.ID, post.ID), ErrPostNotCommittable)

	require.NoError(t, env.postSvc.AuditReject(ctx, post.ID))
	// 已拒绝可以改完再提交
	require.NoError(t, env.postSvc.UpdatePost(ctx, alice.ID, &dto.UpdatePostDTO{ID: post.ID, Content: "v2"}))
	require.NoError(t, env.postSvc.CommitAudit(ctx, alice.ID, post.ID))
	require.NoError(t, env.postSvc.AuditAccept(ctx, post.ID))

	// 已发布是终态
	assert.ErrorIs(t, env.postSvc.UpdatePost(ctx, alice.ID, &dto.UpdatePostDTO{ID: post.ID, Content: "v3"}), ErrPostNotEditable)
	assert.ErrorIs(t, env.postSvc.CommitAudit(ctx, alice.ID, post.ID), ErrPostNotCommittable)
	assert.ErrorIs(t, env.postSvc.AuditAccept(ctx, post.ID), ErrPostNotInAudit)
}

func TestUpdatePostOwnerOnly(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	alice := registerUser(t, env, "alice")
	bob := registerUser(t, env, "bob")
	post := seedPost(t, env, alice.ID, "mine", model.AuditDraft)

	assert.ErrorIs(t, env.postSvc.UpdatePost(ctx, bob.ID, &dto.UpdatePostDTO{ID: post.ID, Content: "stolen"}), ErrPostNoPermission)
	assert.ErrorIs(t, env.postSvc.CommitAudit(ctx, bob.ID, post.ID), ErrPostNoPermission)
	assert.ErrorIs(t, env.postSvc.DeletePost(ctx, bob.ID, post.ID), ErrPostNoPermission)
}

func TestDeletePostHidesEverywhere(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	alice := registerUser(t, env, "alice")
	post := seedPost(t, env, alice.ID, "bye", model.AuditPassed)

	require.NoError(t, env.postSvc.DeletePost(ctx, alice.ID, post.ID))

	_, err := env.postSvc.ViewPost(ctx, alice.ID, post.ID)
	assert.ErrorIs(t, err, ErrPostInvalid)

	posts, err := env.postSvc.ListByUser(ctx, alice.ID, alice.ID)
	require.NoError(t, err)
	assert.Empty(t, posts)
}

func TestListByUserVisibility(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	alice := registerUser(t, env, "alice")
	bob := registerUser(t, env, "bob")

	seedPost(t, env, alice.ID, "draft", model.AuditDraft)
	seedPost(t, env, alice.ID, "pending", model.AuditInProgress)
	seedPost(t, env, alice.ID, "public", model.AuditPassed)
	seedPost(t, env, alice.ID, "nope", model.AuditRejected)

	// 本人：未被拒绝的全部可见
	own, err := env.postSvc.ListByUser(ctx, alice.ID, alice.ID)
	require.NoError(t, err)
	require.Len(t, own, 3)
	for _, p := range own {
		assert.NotEqual(t, "rejected", p.AuditState)
	}

	// 他人：只有已发布的
	others, err := env.postSvc.ListByUser(ctx, bob.ID, alice.ID)
	require.NoError(t, err)
	require.Len(t, others, 1)
	assert.Equal(t, "public", others[0].Content)
}

func TestListByUserShowRejectedToOwnerFlag(t *testing.T) {
	env := newTestEnvWithModeration(t, moderationShowRejected())
	ctx := context.Background()
	alice := registerUser(t, env, "alice")
	bob := registerUser(t, env, "bob")

	seedPost(t, env, alice.ID, "nope", model.AuditRejected)

	own, err := env.postSvc.ListByUser(ctx, alice.ID, alice.ID)
	require.NoError(t, err)
	require.Len(t, own, 1)
	assert.Equal(t, "rejected", own[0].AuditState)

	// 开关只影响本人视角
	others, err := env.postSvc.ListByUser(ctx, bob.ID, alice.ID)
	require.NoError(t, err)
	assert.Empty(t, others)
}

func TestBlockedViewerCannotList(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	alice := registerUser(t, env, "alice")
	bob := registerUser(t, env, "bob")
	seedPost(t, env, alice.ID, "public", model.AuditPassed)

	require.NoError(t, env.relationSvc.Block(ctx, alice.ID, bob.ID))

	_, err := env.postSvc.ListByUser(ctx, bob.ID, alice.ID)
	assert.ErrorIs(t, err, ErrPostBlocked)

	// 本人不受拉黑影响
	own, err := env.postSvc.ListByUser(ctx, alice.ID, alice.ID)
	require.NoError(t, err)
	assert.Len(t, own, 1)
}

func TestViewPostVisibility(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	alice := registerUser(t, env, "alice")
	bob := registerUser(t, env, "bob")

	draft := seedPost(t, env, alice.ID, "draft", model.AuditDraft)
	passed := seedPost(t, env, alice.ID, "public", model.AuditPassed)

	// 未发布的只有本人可见
	_, err := env.postSvc.ViewPost(ctx, bob.ID, draft.ID)
	assert.ErrorIs(t, err, ErrPostInvalid)
	own, err := env.postSvc.ViewPost(ctx, alice.ID, draft.ID)
	require.NoError(t, err)
	assert.Equal(t, "draft", own.AuditState)

	got, err := env.postSvc.ViewPost(ctx, bob.ID, passed.ID)
	require.NoError(t, err)
	assert.Equal(t, "public", got.Content)
	assert.Equal(t, "alice", got.Name)

	require.NoError(t, env.relationSvc.Block(ctx, alice.ID, bob.ID))
	_, err = env.postSvc.ViewPost(ctx, bob.ID, passed.ID)
	assert.ErrorIs(t, err, ErrPostBlocked)
}

func TestViewPostExpandsNestedPosts(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	alice := registerUser(t, env, "alice")
	bob := registerUser(t, env, "bob")

	parent := seedPost(t, env, alice.ID, "parent", model.AuditPassed)

	reply := &model.Post{UserID: bob.ID, Content: "reply", AuditState: model.AuditPassed, ReplyID: &parent.ID, PublishTime: time.Now()}
	require.NoError(t, env.postRepo.CreatePost(ctx, reply))
	hiddenReply := &model.Post{UserID: bob.ID, Content: "pending reply", AuditState: model.AuditInProgress, ReplyID: &parent.ID, PublishTime: time.Now()}
	require.NoError(t, env.postRepo.CreatePost(ctx, hiddenReply))
	forward := &model.Post{UserID: bob.ID, AuditState: model.AuditPassed, ForwardID: &parent.ID, PublishTime: time.Now()}
	require.NoError(t, env.postRepo.CreatePost(ctx, forward))

	// 回复展开被回复的推文和已发布的回复列表
	got, err := env.postSvc.ViewPost(ctx, alice.ID, reply.ID)
	require.NoError(t, err)
	require.NotNil(t, got.ReplyPost)
	assert.Equal(t, parent.ID, got.ReplyPost.ID)

	parentView, err := env.postSvc.ViewPost(ctx, alice.ID, parent.ID)
	require.NoError(t, err)
	require.Len(t, parentView.ReplyPosts, 1)
	assert.Equal(t, "reply", parentView.ReplyPosts[0].Content)

	// 转发展开原文
	forwardView, err := env.postSvc.ViewPost(ctx, alice.ID, forward.ID)
	require.NoError(t, err)
	require.NotNil(t, forwardView.ForwardPost)
	assert.Equal(t, parent.ID, forwardView.ForwardPost.ID)
}

func TestSearchPostsExcludesBlockersAndUnpublished(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	alice := registerUser(t, env, "alice")
	bob := registerUser(t, env, "bob")
	carol := registerUser(t, env, "carol")

	seedPost(t, env, alice.ID, "golang tips", model.AuditPassed)
	seedPost(t, env, bob.ID, "golang tricks", model.AuditPassed)
	seedPost(t, env, alice.ID, "golang draft", model.AuditDraft)

	// bob 拉黑了 carol
	require.NoError(t, env.relationSvc.Block(ctx, bob.ID, carol.ID))

	results, err := env.postSvc.SearchPosts(ctx, carol.ID, "golang")
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "golang tips", results[0].Content)
}

func TestRecommendFollowedOnly(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	alice := registerUser(t, env, "alice")
	bob := registerUser(t, env, "bob")
	carol := registerUser(t, env, "carol")

	seedPost(t, env, bob.ID, "from bob", model.AuditPassed)
	seedPost(t, env, bob.ID, "bob draft", model.AuditDraft)
	seedPost(t, env, carol.ID, "from carol", model.AuditPassed)

	require.NoError(t, env.relationSvc.Follow(ctx, alice.ID, bob.ID))

	feed, err := env.postSvc.Recommend(ctx, alice.ID, 0, 10)
	require.NoError(t, err)
	require.Len(t, feed.List, 1)
	assert.Equal(t, "from bob", feed.List[0].Content)
	assert.False(t, feed.HasMore)
}

func TestRecommendPagination(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	alice := registerUser(t, env, "alice")
	bob := registerUser(t, env, "bob")
	require.NoError(t, env.relationSvc.Follow(ctx, alice.ID, bob.ID))

	base := time.Now()
	for i := 0; i < 5; i++ {
		post := &model.Post{
			UserID:      bob.ID,
			Content:     fmt.Sprintf("post-%d", i),
			AuditState:  model.AuditPassed,
			PublishTime: base.Add(time.Duration(i) * time.Minute),
		}
		require.NoError(t, env.postRepo.CreatePost(ctx, post))
	}

	first, err := env.postSvc.Recommend(ctx, alice.ID, 0, 2)
	require.NoError(t, err)
	require.Len(t, first.List, 2)
	assert.True(t, first.HasMore)
	// 最新的在前
	assert.Equal(t, "post-4", first.List[0].Content)
	assert.Equal(t, "post-3", first.List[1].Content)

	last, err := env.postSvc.Recommend(ctx, alice.ID, 2, 2)
	require.NoError(t, err)
	require.Len(t, last.List, 1)
	assert.False(t, last.HasMore)
	assert.Equal(t, "post-0", last.List[0].Content)
}
