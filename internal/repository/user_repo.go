package repository

import (
	"context"
	"errors"

	"tweethub/internal/model"

	"gorm.io/gorm"
)

type UserRepo interface {
	GetUserById(ctx context.Context, id uint64) (*model.User, error)
	GetUserByName(ctx context.Context, name string) (*model.User, error)
	ExistsByName(ctx context.Context, name string) (bool, error)
	CreateUser(ctx context.Context, user *model.User) error
	UpdateUser(ctx context.Context, user *model.User) error
	SearchUsers(ctx context.Context, keyword string) ([]*model.User, error)
}

type UserRepoImpl struct {
	db *gorm.DB
}

func NewUserRepo(db *gorm.DB) UserRepo {
	return &UserRepoImpl{db: db}
}

func (s *UserRepoImpl) GetUserById(ctx context.Context, id uint64) (*model.User, error) {
	user := &model.User{}
	result := s.db.WithContext(ctx).First(user, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return user, nil
}

func (s *UserRepoImpl) GetUserByName(ctx context.Context, name string) (*model.User, error) {
	user := &model.User{}
	result := s.db.WithContext(ctx).
		Where("name = ?", name).
		First(user)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return user, nil
}

func (s *UserRepoImpl) ExistsByName(ctx context.Context, name string) (bool, error) {
	var count int64
	result := s.db.WithContext(ctx).
		Model(&model.User{}).
		Where("name = ?", name).
		Count(&count)
	if result.Error != nil {
		return false, result.Error
	}
	return count > 0, nil
}

func (s *UserRepoImpl) CreateUser(ctx context.Context, user *model.User) error {
	return s.db.WithContext(ctx).Create(user).Error
}

func (s *UserRepoImpl) UpdateUser(ctx context.Context, user *model.User) error {
	return s.db.WithContext(ctx).Save(user).Error
}

// SearchUsers 用户名或昵称模糊匹配
func (s *UserRepoImpl) SearchUsers(ctx context.Context, keyword string) ([]*model.User, error) {
	users := make([]*model.User, 0)
	pattern := "%" + keyword + "%"
	result := s.db.WithContext(ctx).
		Where("name LIKE ? OR nickname LIKE ?", pattern, pattern).
		Find(&users)
	if result.Error != nil {
		return nil, result.Error
	}
	return users, nil
}
