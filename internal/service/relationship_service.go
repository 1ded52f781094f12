package service

import (
	"context"
	"strconv"
	"time"

	"tweethub/internal/api/dto"
	"tweethub/internal/model"
	"tweethub/internal/pkg/consts"
	"tweethub/internal/pkg/redis"
	"tweethub/internal/repository"
)

const countCacheExpiration = time.Hour

type RelationshipService interface {
	List(ctx context.Context, userID uint64) ([]*dto.RelationshipDTO, error)
	ListInverse(ctx context.Context, userID uint64) ([]*dto.RelationshipDTO, error)
	GetTwoRelation(ctx context.Context, fromID, toID uint64) (*dto.TwoRelationDTO, error)
	GetFollowCounts(ctx context.Context, userID uint64) (*dto.FollowCountDTO, error)
	Follow(ctx context.Context, userID, targetID uint64) error
	Block(ctx context.Context, userID, targetID uint64) error
	Unfollow(ctx context.Context, userID, targetID uint64) error
}

type RelationshipServiceImpl struct {
	relationRepo repository.RelationshipRepo
	userRepo     repository.UserRepo
}

func NewRelationshipService(relationRepo repository.RelationshipRepo, userRepo repository.UserRepo) RelationshipService {
	return &RelationshipServiceImpl{
		relationRepo: relationRepo,
		userRepo:     userRepo,
	}
}

func toRelationshipDTOs(rels []*model.UserRelationship) []*dto.RelationshipDTO {
	out := make([]*dto.RelationshipDTO, 0, len(rels))
	for _, rel := range rels {
		out = append(out, &dto.RelationshipDTO{
			UserID:       rel.UserID,
			TargetUserID: rel.TargetUserID,
			IsBlock:      rel.IsBlock,
		})
	}
	return out
}

func (s *RelationshipServiceImpl) List(ctx context.Context, userID uint64) ([]*dto.RelationshipDTO, error) {
	rels, err := s.relationRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return toRelationshipDTOs(rels), nil
}

func (s *RelationshipServiceImpl) ListInverse(ctx context.Context, userID uint64) ([]*dto.RelationshipDTO, error) {
	rels, err := s.relationRepo.ListByTarget(ctx, userID)
	if err != nil {
		return nil, err
	}
	return toRelationshipDTOs(rels), nil
}

func (s *RelationshipServiceImpl) GetTwoRelation(ctx context.Context, fromID, toID uint64) (*dto.TwoRelationDTO, error) {
	rel, err := s.relationRepo.GetRelation(ctx, fromID, toID)
	if err != nil {
		return nil, err
	}
	out := &dto.TwoRelationDTO{}
	if rel != nil {
		out.HasRelationship = true
		out.IsFollowing = !rel.IsBlock
		out.IsBlocking = rel.IsBlock
	}
	return out, nil
}

// upsertRelation 同一对用户只有一行，关注与拉黑互相覆盖
func (s *RelationshipServiceImpl) upsertRelation(ctx context.Context, userID, targetID uint64, isBlock bool) error {
	if userID == targetID {
		return ErrRelationSelf
	}
	target, err := s.userRepo.GetUserById(ctx, targetID)
	if err != nil {
		return err
	}
	if target == nil {
		return ErrUserNotFound
	}
	err = s.relationRepo.Upsert(ctx, &model.UserRelationship{
		UserID:       userID,
		TargetUserID: targetID,
		IsBlock:      isBlock,
	})
	if err != nil {
		return err
	}
	s.invalidateCounts(ctx, userID, targetID)
	return nil
}

func (s *RelationshipServiceImpl) Follow(ctx context.Context, userID, targetID uint64) error {
	return s.upsertRelation(ctx, userID, targetID, false)
}

func (s *RelationshipServiceImpl) Block(ctx context.Context, userID, targetID uint64) error {
	return s.upsertRelation(ctx, userID, targetID, true)
}

// Unfollow 删除这一行，无论当前是关注还是拉黑
func (s *RelationshipServiceImpl) Unfollow(ctx context.Context, userID, targetID uint64) error {
	if userID == targetID {
		return ErrRelationSelf
	}
	rows, err := s.relationRepo.Delete(ctx, userID, targetID)
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrNotFollowing
	}
	s.invalidateCounts(ctx, userID, targetID)
	return nil
}

// GetFollowCounts 计数走缓存，未命中时回源计数并写入
func (s *RelationshipServiceImpl) GetFollowCounts(ctx context.Context, userID uint64) (*dto.FollowCountDTO, error) {
	out := &dto.FollowCountDTO{}
	idStr := strconv.FormatUint(userID, 10)

	following, err := redis.GetInt64(ctx, consts.UserFollowingCountKey+idStr)
	if err != nil {
		following, err = s.relationRepo.CountFollowing(ctx, userID)
		if err != nil {
			return nil, err
		}
		_ = redis.SetWithExpiration(ctx, consts.UserFollowingCountKey+idStr, following, countCacheExpiration)
	}
	out.Following = following

	follower, err := redis.GetInt64(ctx, consts.UserFollowerCountKey+idStr)
	if err != nil {
		follower, err = s.relationRepo.CountFollowers(ctx, userID)
		if err != nil {
			return nil, err
		}
		_ = redis.SetWithExpiration(ctx, consts.UserFollowerCountKey+idStr, follower, countCacheExpiration)
	}
	out.Follower = follower

	return out, nil
}

func (s *RelationshipServiceImpl) invalidateCounts(ctx context.Context, userID, targetID uint64) {
	_ = redis.DeleteKey(ctx, consts.UserFollowingCountKey+strconv.FormatUint(userID, 10))
	_ = redis.DeleteKey(ctx, consts.UserFollowerCountKey+strconv.FormatUint(targetID, 10))
}
