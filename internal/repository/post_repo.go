package repository

import (
	"context"
	"errors"

	"tweethub/internal/model"

	"gorm.io/gorm"
)

type PostRepo interface {
	CreatePost(ctx context.Context, post *model.Post) error
	GetPost(ctx context.Context, id uint64) (*model.Post, error)
	GetPostDetail(ctx context.Context, id uint64) (*model.Post, error)
	ListByUserAndStates(ctx context.Context, userID uint64, states []model.AuditState) ([]*model.Post, error)
	ListInProgress(ctx context.Context) ([]*model.Post, error)
	ListPassedByUserIDs(ctx context.Context, userIDs []uint64, limit, offset int) ([]*model.Post, error)
	SearchPassed(ctx context.Context, keyword string, viewerID uint64) ([]*model.Post, error)
	ListRepliesOf(ctx context.Context, postID uint64) ([]*model.Post, error)
	UpdateContent(ctx context.Context, id uint64, content string) error
	UpdateAuditState(ctx context.Context, id uint64, state model.AuditState) error
	SoftDelete(ctx context.Context, id uint64) error
}

type PostRepoImpl struct {
	db *gorm.DB
}

func NewPostRepo(db *gorm.DB) PostRepo {
	return &PostRepoImpl{db: db}
}

func (s *PostRepoImpl) CreatePost(ctx context.Context, post *model.Post) error {
	return s.db.WithContext(ctx).Create(post).Error
}

func (s *PostRepoImpl) GetPost(ctx context.Context, id uint64) (*model.Post, error) {
	post := &model.Post{}
	result := s.db.WithContext(ctx).
		Where("is_deleted = ?", false).
		First(post, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return post, nil
}

// GetPostDetail 加载作者与点赞、收藏用户
func (s *PostRepoImpl) GetPostDetail(ctx context.Context, id uint64) (*model.Post, error) {
	post := &model.Post{}
	result := s.db.WithContext(ctx).
		Preload("User").
		Preload("Likes.User").
		Preload("Collections.User").
		Where("is_deleted = ?", false).
		First(post, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return post, nil
}

func (s *PostRepoImpl) ListByUserAndStates(ctx context.Context, userID uint64, states []model.AuditState) ([]*model.Post, error) {
	posts := make([]*model.Post, 0)
	result := s.db.WithContext(ctx).
		Preload("User").
		Preload("Likes.User").
		Preload("Collections.User").
		Where("user_id = ? AND audit_state IN ? AND is_deleted = ?", userID, states, false).
		Order("publish_time DESC").
		Find(&posts)
	if result.Error != nil {
		return nil, result.Error
	}
	return posts, nil
}

func (s *PostRepoImpl) ListInProgress(ctx context.Context) ([]*model.Post, error) {
	posts := make([]*model.Post, 0)
	result := s.db.WithContext(ctx).
		Preload("User").
		Where("audit_state = ? AND is_deleted = ?", model.AuditInProgress, false).
		Order("publish_time ASC").
		Find(&posts)
	if result.Error != nil {
		return nil, result.Error
	}
	return posts, nil
}

func (s *PostRepoImpl) ListPassedByUserIDs(ctx context.Context, userIDs []uint64, limit, offset int) ([]*model.Post, error) {
	posts := make([]*model.Post, 0)
	if len(userIDs) == 0 {
		return posts, nil
	}
	result := s.db.WithContext(ctx).
		Preload("User").
		Preload("Likes.User").
		Preload("Collections.User").
		Where("user_id IN ? AND audit_state = ? AND is_deleted = ?", userIDs, model.AuditPassed, false).
		Order("publish_time DESC").
		Limit(limit).
		Offset(offset).
		Find(&posts)
	if result.Error != nil {
		return nil, result.Error
	}
	return posts, nil
}

// SearchPassed 搜索已过审推文，排除拉黑了检索者的作者
func (s *PostRepoImpl) SearchPassed(ctx context.Context, keyword string, viewerID uint64) ([]*model.Post, error) {
	posts := make([]*model.Post, 0)
	pattern := "%" + keyword + "%"
	result := s.db.WithContext(ctx).
		Preload("User").
		Preload("Likes.User").
		Preload("Collections.User").
		Where("content LIKE ? AND audit_state = ? AND is_deleted = ?", pattern, model.AuditPassed, false).
		Where("NOT EXISTS (SELECT 1 FROM user_relationships r WHERE r.user_id = posts.user_id AND r.target_user_id = ? AND r.is_block = ?)", viewerID, true).
		Order("publish_time DESC").
		Find(&posts)
	if result.Error != nil {
		return nil, result.Error
	}
	return posts, nil
}

func (s *PostRepoImpl) ListRepliesOf(ctx context.Context, postID uint64) ([]*model.Post, error) {
	posts := make([]*model.Post, 0)
	result := s.db.WithContext(ctx).
		Preload("User").
		Preload("Likes.User").
		Preload("Collections.User").
		Where("reply_id = ? AND audit_state = ? AND is_deleted = ?", postID, model.AuditPassed, false).
		Order("publish_time DESC").
		Find(&posts)
	if result.Error != nil {
		return nil, result.Error
	}
	return posts, nil
}

func (s *PostRepoImpl) UpdateContent(ctx context.Context, id uint64, content string) error {
	return s.db.WithContext(ctx).
		Model(&model.Post{}).
		Where("id = ?", id).
		Update("content", content).Error
}

func (s *PostRepoImpl) UpdateAuditState(ctx context.Context, id uint64, state model.AuditState) error {
	return s.db.WithContext(ctx).
		Model(&model.Post{}).
		Where("id = ?", id).
		Update("audit_state", state).Error
}

func (s *PostRepoImpl) SoftDelete(ctx context.Context, id uint64) error {
	return s.db.WithContext(ctx).
		Model(&model.Post{}).
		Where("id = ?", id).
		Update("is_deleted", true).Error
}
