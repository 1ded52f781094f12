package service

import (
	"context"
	"time"

	"tweethub/internal/api/config"
	"tweethub/internal/api/dto"
	"tweethub/internal/model"
	"tweethub/internal/repository"
)

type PostService interface {
	CreatePost(ctx context.Context, userID uint64, req *dto.CreatePostDTO) error
	CreateForward(ctx context.Context, userID uint64, postID uint64) error
	UpdatePost(ctx context.Context, userID uint64, req *dto.UpdatePostDTO) error
	DeletePost(ctx context.Context, userID uint64, postID uint64) error
	CommitAudit(ctx context.Context, userID uint64, postID uint64) error

	ListPendingAudit(ctx context.Context) ([]*dto.PostDTO, error)
	AuditAccept(ctx context.Context, postID uint64) error
	AuditReject(ctx context.Context, postID uint64) error

	ListByUser(ctx context.Context, viewerID, ownerID uint64) ([]*dto.PostDTO, error)
	ViewPost(ctx context.Context, viewerID, postID uint64) (*dto.PostDTO, error)
	SearchPosts(ctx context.Context, viewerID uint64, keyword string) ([]*dto.PostDTO, error)
	Recommend(ctx context.Context, userID uint64, pn, ps int) (*dto.PostWaterfallDTO, error)
}

type PostServiceImpl struct {
	postRepo     repository.PostRepo
	relationRepo repository.RelationshipRepo
	moderation   config.ModerationConfig
}

func NewPostService(
	postRepo repository.PostRepo,
	relationRepo repository.RelationshipRepo,
	moderation config.ModerationConfig,
) PostService {
	return &PostServiceImpl{
		postRepo:     postRepo,
		relationRepo: relationRepo,
		moderation:   moderation,
	}
}

func (s *PostServiceImpl) CreatePost(ctx context.Context, userID uint64, req *dto.CreatePostDTO) error {
	if req.ReplyID != nil {
		target, err := s.postRepo.GetPost(ctx, *req.ReplyID)
		if err != nil {
			return err
		}
		if target == nil {
			return ErrPostInvalid
		}
	}
	post := &model.Post{
		UserID:      userID,
		Content:     req.Content,
		AuditState:  model.AuditDraft,
		ReplyID:     req.ReplyID,
		PublishTime: time.Now(),
	}
	return s.postRepo.CreatePost(ctx, post)
}

// CreateForward 转发不经审核，内容为空
func (s *PostServiceImpl) CreateForward(ctx context.Context, userID uint64, postID uint64) error {
	target, err := s.postRepo.GetPost(ctx, postID)
	if err != nil {
		return err
	}
	if target == nil {
		return ErrPostInvalid
	}
	post := &model.Post{
		UserID:      userID,
		Content:     "",
		AuditState:  model.AuditPassed,
		ForwardID:   &postID,
		PublishTime: time.Now(),
	}
	return s.postRepo.CreatePost(ctx, post)
}

// getOwnedPost 只有作者本人能改动推文
func (s *PostServiceImpl) getOwnedPost(ctx context.Context, userID, postID uint64) (*model.Post, error) {
	post, err := s.postRepo.GetPost(ctx, postID)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, ErrPostInvalid
	}
	if post.UserID != userID {
		return nil, ErrPostNoPermission
	}
	return post, nil
}

func (s *PostServiceImpl) UpdatePost(ctx context.Context, userID uint64, req *dto.UpdatePostDTO) error {
	post, err := s.getOwnedPost(ctx, userID, req.ID)
	if err != nil {
		return err
	}
	if !post.AuditState.Editable() {
		return ErrPostNotEditable
	}
	return s.postRepo.UpdateContent(ctx, post.ID, req.Content)
}

func (s *PostServiceImpl) DeletePost(ctx context.Context, userID uint64, postID uint64) error {
	post, err := s.getOwnedPost(ctx, userID, postID)
	if err != nil {
		return err
	}
	return s.postRepo.SoftDelete(ctx, post.ID)
}

func (s *PostServiceImpl) CommitAudit(ctx context.Context, userID uint64, postID uint64) error {
	post, err := s.getOwnedPost(ctx, userID, postID)
	if err != nil {
		return err
	}
	if !post.AuditState.CanTransition(model.AuditInProgress) {
		return ErrPostNotCommittable
	}
	return s.postRepo.UpdateAuditState(ctx, post.ID, model.AuditInProgress)
}

func (s *PostServiceImpl) ListPendingAudit(ctx context.Context) ([]*dto.PostDTO, error) {
	posts, err := s.postRepo.ListInProgress(ctx)
	if err != nil {
		return nil, err
	}
	return toPostDTOs(posts), nil
}

func (s *PostServiceImpl) auditTo(ctx context.Context, postID uint64, to model.AuditState) error {
	post, err := s.postRepo.GetPost(ctx, postID)
	if err != nil {
		return err
	}
	if post == nil {
		return ErrPostInvalid
	}
	if !post.AuditState.CanTransition(to) {
		return ErrPostNotInAudit
	}
	return s.postRepo.UpdateAuditState(ctx, post.ID, to)
}

func (s *PostServiceImpl) AuditAccept(ctx context.Context, postID uint64) error {
	return s.auditTo(ctx, postID, model.AuditPassed)
}

func (s *PostServiceImpl) AuditReject(ctx context.Context, postID uint64) error {
	return s.auditTo(ctx, postID, model.AuditRejected)
}

// checkBlocked 作者拉黑了浏览者则不可见，本人豁免
func (s *PostServiceImpl) checkBlocked(ctx context.Context, viewerID, ownerID uint64) error {
	if viewerID == ownerID {
		return nil
	}
	blocked, err := s.relationRepo.IsBlockedBy(ctx, viewerID, ownerID)
	if err != nil {
		return err
	}
	if blocked {
		return ErrPostBlocked
	}
	return nil
}

func (s *PostServiceImpl) ListByUser(ctx context.Context, viewerID, ownerID uint64) ([]*dto.PostDTO, error) {
	if err := s.checkBlocked(ctx, viewerID, ownerID); err != nil {
		return nil, err
	}
	states := []model.AuditState{model.AuditPassed}
	if viewerID == ownerID {
		states = []model.AuditState{model.AuditDraft, model.AuditInProgress, model.AuditPassed}
		if s.moderation.ShowRejectedToOwner {
			states = append(states, model.AuditRejected)
		}
	}
	posts, err := s.postRepo.ListByUserAndStates(ctx, ownerID, states)
	if err != nil {
		return nil, err
	}
	return toPostDTOs(posts), nil
}

// ViewPost 单条详情，展开被回复、被转发与回复列表
func (s *PostServiceImpl) ViewPost(ctx context.Context, viewerID, postID uint64) (*dto.PostDTO, error) {
	post, err := s.postRepo.GetPostDetail(ctx, postID)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, ErrPostInvalid
	}
	if post.AuditState != model.AuditPassed && post.UserID != viewerID {
		return nil, ErrPostInvalid
	}
	if err := s.checkBlocked(ctx, viewerID, post.UserID); err != nil {
		return nil, err
	}

	out := toPostDTO(post)
	if post.ReplyID != nil {
		if parent, err := s.visibleDetail(ctx, viewerID, *post.ReplyID); err == nil && parent != nil {
			out.ReplyPost = toPostDTO(parent)
		}
	}
	if post.ForwardID != nil {
		if origin, err := s.visibleDetail(ctx, viewerID, *post.ForwardID); err == nil && origin != nil {
			out.ForwardPost = toPostDTO(origin)
		}
	}
	replies, err := s.postRepo.ListRepliesOf(ctx, postID)
	if err != nil {
		return nil, err
	}
	out.ReplyPosts = make([]*dto.PostDTO, 0, len(replies))
	for _, reply := range replies {
		if s.checkBlocked(ctx, viewerID, reply.UserID) != nil {
			continue
		}
		out.ReplyPosts = append(out.ReplyPosts, toPostDTO(reply))
	}
	return out, nil
}

// visibleDetail 嵌套推文按同样的可见性规则过滤，不可见时返回空而不报错
func (s *PostServiceImpl) visibleDetail(ctx context.Context, viewerID, postID uint64) (*model.Post, error) {
	post, err := s.postRepo.GetPostDetail(ctx, postID)
	if err != nil || post == nil {
		return nil, err
	}
	if post.AuditState != model.AuditPassed && post.UserID != viewerID {
		return nil, nil
	}
	if err := s.checkBlocked(ctx, viewerID, post.UserID); err != nil {
		return nil, nil
	}
	return post, nil
}

func (s *PostServiceImpl) SearchPosts(ctx context.Context, viewerID uint64, keyword string) ([]*dto.PostDTO, error) {
	posts, err := s.postRepo.SearchPassed(ctx, keyword, viewerID)
	if err != nil {
		return nil, err
	}
	return toPostDTOs(posts), nil
}

// Recommend 关注流，pn 从 0 开始
func (s *PostServiceImpl) Recommend(ctx context.Context, userID uint64, pn, ps int) (*dto.PostWaterfallDTO, error) {
	if pn < 0 {
		pn = 0
	}
	if ps <= 0 {
		ps = 10
	}
	followingIDs, err := s.relationRepo.ListFollowingIDs(ctx, userID)
	if err != nil {
		return nil, err
	}
	posts, err := s.postRepo.ListPassedByUserIDs(ctx, followingIDs, ps+1, pn*ps)
	if err != nil {
		return nil, err
	}
	hasMore := len(posts) > ps
	if hasMore {
		posts = posts[:ps]
	}
	return &dto.PostWaterfallDTO{
		List:    toPostDTOs(posts),
		HasMore: hasMore,
	}, nil
}
