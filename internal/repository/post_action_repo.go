package repository

import (
	"context"

	"tweethub/internal/model"

	"gorm.io/gorm"
)

type PostActionRepo interface {
	CreateLike(ctx context.Context, like *model.Like) error
	DeleteLike(ctx context.Context, userID, postID uint64) (int64, error)
	CheckLikeExists(ctx context.Context, userID, postID uint64) (bool, error)

	CreateCollection(ctx context.Context, collection *model.Collection) error
	DeleteCollection(ctx context.Context, userID, postID uint64) (int64, error)
	CheckCollectionExists(ctx context.Context, userID, postID uint64) (bool, error)
	ListCollectionsByUser(ctx context.Context, userID uint64) ([]*model.Collection, error)
}

type PostActionRepoImpl struct {
	db *gorm.DB
}

func NewPostActionRepo(db *gorm.DB) PostActionRepo {
	return &PostActionRepoImpl{db}
}

func (s *PostActionRepoImpl) CreateLike(ctx context.Context, like *model.Like) error {
	return s.db.WithContext(ctx).Create(like).Error
}

func (s *PostActionRepoImpl) DeleteLike(ctx context.Context, userID, postID uint64) (int64, error) {
	result := s.db.WithContext(ctx).
		Where("user_id = ? AND post_id = ?", userID, postID).
		Delete(&model.Like{})
	return result.RowsAffected, result.Error
}

func (s *PostActionRepoImpl) CheckLikeExists(ctx context.Context, userID, postID uint64) (bool, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&model.Like{}).
		Where("user_id = ? AND post_id = ?", userID, postID).
		Count(&count).Error
	return count > 0, err
}

func (s *PostActionRepoImpl) CreateCollection(ctx context.Context, collection *model.Collection) error {
	return s.db.WithContext(ctx).Create(collection).Error
}

func (s *PostActionRepoImpl) DeleteCollection(ctx context.Context, userID, postID uint64) (int64, error) {
	result := s.db.WithContext(ctx).
		Where("user_id = ? AND post_id = ?", userID, postID).
		Delete(&model.Collection{})
	return result.RowsAffected, result.Error
}

func (s *PostActionRepoImpl) CheckCollectionExists(ctx context.Context, userID, postID uint64) (bool, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&model.Collection{}).
		Where("user_id = ? AND post_id = ?", userID, postID).
		Count(&count).Error
	return count > 0, err
}

// ListCollectionsByUser 收藏夹，带推文与作者
func (s *PostActionRepoImpl) ListCollectionsByUser(ctx context.Context, userID uint64) ([]*model.Collection, error) {
	collections := make([]*model.Collection, 0)
	err := s.db.WithContext(ctx).
		Preload("Post").
		Preload("Post.User").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&collections).Error
	if err != nil {
		return nil, err
	}
	return collections, nil
}
