package handler

import (
	"tweethub/internal/api/dto"
	"tweethub/internal/pkg/response"
	"tweethub/internal/service"

	"github.com/gin-gonic/gin"
)

type PostActionHandler struct {
	actionSvc service.PostActionService
}

func NewPostActionHandler(actionSvc service.PostActionService) *PostActionHandler {
	return &PostActionHandler{actionSvc: actionSvc}
}

func (s *PostActionHandler) handleAction(c *gin.Context, action func(userID, postID uint64) error) {
	userID := c.GetUint64("user_id")
	var req dto.PostIDDTO
	if err := c.ShouldBind(&req); err != nil {
		response.Error(c, err)
		return
	}
	if err := action(userID, req.ID); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

func (s *PostActionHandler) AddLike(c *gin.Context) {
	s.handleAction(c, func(userID, postID uint64) error {
		return s.actionSvc.LikePost(c.Request.Context(), userID, postID)
	})
}

func (s *PostActionHandler) RemoveLike(c *gin.Context) {
	s.handleAction(c, func(userID, postID uint64) error {
		return s.actionSvc.CancelLikePost(c.Request.Context(), userID, postID)
	})
}

func (s *PostActionHandler) AddCollection(c *gin.Context) {
	s.handleAction(c, func(userID, postID uint64) error {
		return s.actionSvc.CollectPost(c.Request.Context(), userID, postID)
	})
}

func (s *PostActionHandler) RemoveCollection(c *gin.Context) {
	s.handleAction(c, func(userID, postID uint64) error {
		return s.actionSvc.CancelCollectPost(c.Request.Context(), userID, postID)
	})
}

func (s *PostActionHandler) ListCollections(c *gin.Context) {
	userID := c.GetUint64("user_id")
	posts, err := s.actionSvc.GetCollectedPosts(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, posts)
}
