package service

import (
	"context"
	"errors"
	"time"

	"tweethub/internal/api/dto"
	"tweethub/internal/model"
	"tweethub/internal/repository"

	"github.com/go-sql-driver/mysql"
	"gorm.io/gorm"
)

type PostActionService interface {
	LikePost(ctx context.Context, userID, postID uint64) error
	CancelLikePost(ctx context.Context, userID, postID uint64) error
	CollectPost(ctx context.Context, userID, postID uint64) error
	CancelCollectPost(ctx context.Context, userID, postID uint64) error
	GetCollectedPosts(ctx context.Context, userID uint64) ([]*dto.PostDTO, error)
}

type postActionServiceImpl struct {
	actionRepo   repository.PostActionRepo
	postRepo     repository.PostRepo
	relationRepo repository.RelationshipRepo
}

func NewPostActionService(
	actionRepo repository.PostActionRepo,
	postRepo repository.PostRepo,
	relationRepo repository.RelationshipRepo,
) PostActionService {
	return &postActionServiceImpl{
		actionRepo:   actionRepo,
		postRepo:     postRepo,
		relationRepo: relationRepo,
	}
}

func isDuplicateError(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var mysqlErr *mysql.MySQLError
	if errors.As(err, &mysqlErr) && mysqlErr.Number == 1062 {
		return true
	}
	return false
}

func (s *postActionServiceImpl) performAction(checkFunc func() error, existsFunc func() (bool, error), repoFunc func() error, dupErr error) error {
	if err := checkFunc(); err != nil {
		return err
	}
	exists, err := existsFunc()
	if err != nil {
		return err
	}
	if exists {
		return dupErr
	}
	if err := repoFunc(); err != nil {
		// 并发竞态由唯一索引兜底
		if isDuplicateError(err) {
			return dupErr
		}
		return err
	}
	return nil
}

func (s *postActionServiceImpl) revokeAction(checkFunc func() error, repoFunc func() (int64, error), missErr error) error {
	if err := checkFunc(); err != nil {
		return err
	}
	rows, err := repoFunc()
	if err != nil {
		return err
	}
	if rows == 0 {
		return missErr
	}
	return nil
}

// getPostCheck 只有已过审且作者未拉黑操作者的推文才可点赞收藏
func (s *postActionServiceImpl) getPostCheck(ctx context.Context, userID, postID uint64) func() error {
	return func() error {
		post, err := s.postRepo.GetPost(ctx, postID)
		if err != nil {
			return err
		}
		if post == nil || post.AuditState != model.AuditPassed {
			return ErrPostInvalid
		}
		blocked, err := s.relationRepo.IsBlockedBy(ctx, userID, post.UserID)
		if err != nil {
			return err
		}
		if blocked {
			return ErrPostBlocked
		}
		return nil
	}
}

func (s *postActionServiceImpl) LikePost(ctx context.Context, userID, postID uint64) error {
	return s.performAction(s.getPostCheck(ctx, userID, postID), func() (bool, error) {
		return s.actionRepo.CheckLikeExists(ctx, userID, postID)
	}, func() error {
		return s.actionRepo.CreateLike(ctx, &model.Like{UserID: userID, PostID: postID, CreatedAt: time.Now()})
	}, ErrActionDuplicate)
}

func (s *postActionServiceImpl) CancelLikePost(ctx context.Context, userID, postID uint64) error {
	return s.revokeAction(s.getPostCheck(ctx, userID, postID), func() (int64, error) {
		return s.actionRepo.DeleteLike(ctx, userID, postID)
	}, ErrActionNotFound)
}

func (s *postActionServiceImpl) CollectPost(ctx context.Context, userID, postID uint64) error {
	return s.performAction(s.getPostCheck(ctx, userID, postID), func() (bool, error) {
		return s.actionRepo.CheckCollectionExists(ctx, userID, postID)
	}, func() error {
		return s.actionRepo.CreateCollection(ctx, &model.Collection{UserID: userID, PostID: postID, CreatedAt: time.Now()})
	}, ErrCollectDuplicate)
}

func (s *postActionServiceImpl) CancelCollectPost(ctx context.Context, userID, postID uint64) error {
	return s.revokeAction(s.getPostCheck(ctx, userID, postID), func() (int64, error) {
		return s.actionRepo.DeleteCollection(ctx, userID, postID)
	}, ErrCollectNotFound)
}

// GetCollectedPosts 收藏夹，按收藏时间倒序
func (s *postActionServiceImpl) GetCollectedPosts(ctx context.Context, userID uint64) ([]*dto.PostDTO, error) {
	collections, err := s.actionRepo.ListCollectionsByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	posts := make([]*dto.PostDTO, 0, len(collections))
	for i := range collections {
		post := collections[i].Post
		if post.ID == 0 || post.IsDeleted {
			continue
		}
		posts = append(posts, toPostDTO(&post))
	}
	return posts, nil
}
