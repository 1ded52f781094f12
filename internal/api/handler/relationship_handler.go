package handler

import (
	"strconv"

	"tweethub/internal/api/dto"
	"tweethub/internal/pkg/response"
	"tweethub/internal/service"

	"github.com/gin-gonic/gin"
)

type RelationshipHandler struct {
	relationSvc service.RelationshipService
}

func NewRelationshipHandler(relationSvc service.RelationshipService) *RelationshipHandler {
	return &RelationshipHandler{relationSvc: relationSvc}
}

// queryUserID 读取 id 参数，缺省为当前用户
func queryUserID(c *gin.Context) (uint64, bool) {
	raw := c.Query("id")
	if raw == "" {
		return c.GetUint64("user_id"), true
	}
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0, false
	}
	return id, true
}

func (s *RelationshipHandler) List(c *gin.Context) {
	id, ok := queryUserID(c)
	if !ok {
		response.Fail(c, response.CodeFail, "参数错误")
		return
	}
	rels, err := s.relationSvc.List(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, rels)
}

func (s *RelationshipHandler) ListInverse(c *gin.Context) {
	id, ok := queryUserID(c)
	if !ok {
		response.Fail(c, response.CodeFail, "参数错误")
		return
	}
	rels, err := s.relationSvc.ListInverse(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, rels)
}

func (s *RelationshipHandler) GetTwoRelation(c *gin.Context) {
	fromID, err := strconv.ParseUint(c.Query("from"), 10, 64)
	if err != nil {
		response.Fail(c, response.CodeFail, "参数错误")
		return
	}
	toID, err := strconv.ParseUint(c.Query("to"), 10, 64)
	if err != nil {
		response.Fail(c, response.CodeFail, "参数错误")
		return
	}
	rel, err := s.relationSvc.GetTwoRelation(c.Request.Context(), fromID, toID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, rel)
}

func (s *RelationshipHandler) Count(c *gin.Context) {
	id, ok := queryUserID(c)
	if !ok {
		response.Fail(c, response.CodeFail, "参数错误")
		return
	}
	counts, err := s.relationSvc.GetFollowCounts(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, counts)
}

func (s *RelationshipHandler) handleTarget(c *gin.Context, action func(userID, targetID uint64) error) {
	userID := c.GetUint64("user_id")
	var req dto.TargetDTO
	if err := c.ShouldBind(&req); err != nil {
		response.Error(c, err)
		return
	}
	if err := action(userID, req.Target); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

func (s *RelationshipHandler) Follow(c *gin.Context) {
	s.handleTarget(c, func(userID, targetID uint64) error {
		return s.relationSvc.Follow(c.Request.Context(), userID, targetID)
	})
}

func (s *RelationshipHandler) Block(c *gin.Context) {
	s.handleTarget(c, func(userID, targetID uint64) error {
		return s.relationSvc.Block(c.Request.Context(), userID, targetID)
	})
}

func (s *RelationshipHandler) Unfollow(c *gin.Context) {
	s.handleTarget(c, func(userID, targetID uint64) error {
		return s.relationSvc.Unfollow(c.Request.Context(), userID, targetID)
	})
}
