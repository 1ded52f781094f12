package repository

import (
	"context"
	"errors"

	"tweethub/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type RelationshipRepo interface {
	GetRelation(ctx context.Context, userID, targetUserID uint64) (*model.UserRelationship, error)
	ListByUser(ctx context.Context, userID uint64) ([]*model.UserRelationship, error)
	ListByTarget(ctx context.Context, targetUserID uint64) ([]*model.UserRelationship, error)
	Upsert(ctx context.Context, rel *model.UserRelationship) error
	Delete(ctx context.Context, userID, targetUserID uint64) (int64, error)
	ListFollowingIDs(ctx context.Context, userID uint64) ([]uint64, error)
	CountFollowing(ctx context.Context, userID uint64) (int64, error)
	CountFollowers(ctx context.Context, userID uint64) (int64, error)
	IsBlockedBy(ctx context.Context, viewerID, ownerID uint64) (bool, error)
}

type RelationshipRepoImpl struct {
	db *gorm.DB
}

func NewRelationshipRepo(db *gorm.DB) RelationshipRepo {
	return &RelationshipRepoImpl{db}
}

func (s *RelationshipRepoImpl) GetRelation(ctx context.Context, userID, targetUserID uint64) (*model.UserRelationship, error) {
	rel := &model.UserRelationship{}
	result := s.db.WithContext(ctx).
		Where("user_id = ? AND target_user_id = ?", userID, targetUserID).
		First(rel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return rel, nil
}

func (s *RelationshipRepoImpl) ListByUser(ctx context.Context, userID uint64) ([]*model.UserRelationship, error) {
	rels := make([]*model.UserRelationship, 0)
	err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Find(&rels).Error
	if err != nil {
		return nil, err
	}
	return rels, nil
}

func (s *RelationshipRepoImpl) ListByTarget(ctx context.Context, targetUserID uint64) ([]*model.UserRelationship, error) {
	rels := make([]*model.UserRelationship, 0)
	err := s.db.WithContext(ctx).
		Where("target_user_id = ?", targetUserID).
		Find(&rels).Error
	if err != nil {
		return nil, err
	}
	return rels, nil
}

// Upsert 同一对用户只保留一行，冲突时只更新 is_block
func (s *RelationshipRepoImpl) Upsert(ctx context.Context, rel *model.UserRelationship) error {
	return s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "target_user_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"is_block"}),
		}).
		Create(rel).Error
}

func (s *RelationshipRepoImpl) Delete(ctx context.Context, userID, targetUserID uint64) (int64, error) {
	result := s.db.WithContext(ctx).
		Where("user_id = ? AND target_user_id = ?", userID, targetUserID).
		Delete(&model.UserRelationship{})
	return result.RowsAffected, result.Error
}

func (s *RelationshipRepoImpl) ListFollowingIDs(ctx context.Context, userID uint64) ([]uint64, error) {
	var ids []uint64
	err := s.db.WithContext(ctx).
		Model(&model.UserRelationship{}).
		Where("user_id = ? AND is_block = ?", userID, false).
		Pluck("target_user_id", &ids).Error
	return ids, err
}

func (s *RelationshipRepoImpl) CountFollowing(ctx context.Context, userID uint64) (int64, error) {
	var count int64
	err := s.db.WithContext(ctx).
		Model(&model.UserRelationship{}).
		Where("user_id = ? AND is_block = ?", userID, false).
		Count(&count).Error
	return count, err
}

func (s *RelationshipRepoImpl) CountFollowers(ctx context.Context, userID uint64) (int64, error) {
	var count int64
	err := s.db.WithContext(ctx).
		Model(&model.UserRelationship{}).
		Where("target_user_id = ? AND is_block = ?", userID, false).
		Count(&count).Error
	return count, err
}

// IsBlockedBy 作者是否拉黑了浏览者
func (s *RelationshipRepoImpl) IsBlockedBy(ctx context.Context, viewerID, ownerID uint64) (bool, error) {
	var count int64
	err := s.db.WithContext(ctx).
		Model(&model.UserRelationship{}).
		Where("user_id = ? AND target_user_id = ? AND is_block = ?", ownerID, viewerID, true).
		Count(&count).Error
	return count > 0, err
}
