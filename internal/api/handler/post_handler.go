package handler

import (
	"strconv"

	"tweethub/internal/api/dto"
	"tweethub/internal/pkg/response"
	"tweethub/internal/service"

	"github.com/gin-gonic/gin"
)

type PostHandler struct {
	postSvc service.PostService
}

func NewPostHandler(postSvc service.PostService) *PostHandler {
	return &PostHandler{postSvc: postSvc}
}

func (s *PostHandler) Create(c *gin.Context) {
	userID := c.GetUint64("user_id")
	var req dto.CreatePostDTO
	if err := c.ShouldBind(&req); err != nil {
		response.Error(c, err)
		return
	}
	if err := s.postSvc.CreatePost(c.Request.Context(), userID, &req); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

func (s *PostHandler) CreateForward(c *gin.Context) {
	userID := c.GetUint64("user_id")
	var req dto.ForwardPostDTO
	if err := c.ShouldBind(&req); err != nil {
		response.Error(c, err)
		return
	}
	if err := s.postSvc.CreateForward(c.Request.Context(), userID, req.PostID); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

func (s *PostHandler) Update(c *gin.Context) {
	userID := c.GetUint64("user_id")
	var req dto.UpdatePostDTO
	if err := c.ShouldBind(&req); err != nil {
		response.Error(c, err)
		return
	}
	if err := s.postSvc.UpdatePost(c.Request.Context(), userID, &req); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

func (s *PostHandler) Delete(c *gin.Context) {
	userID := c.GetUint64("user_id")
	var req dto.PostIDDTO
	if err := c.ShouldBind(&req); err != nil {
		response.Error(c, err)
		return
	}
	if err := s.postSvc.DeletePost(c.Request.Context(), userID, req.ID); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

func (s *PostHandler) CommitAudit(c *gin.Context) {
	userID := c.GetUint64("user_id")
	var req dto.PostIDDTO
	if err := c.ShouldBind(&req); err != nil {
		response.Error(c, err)
		return
	}
	if err := s.postSvc.CommitAudit(c.Request.Context(), userID, req.ID); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

func (s *PostHandler) AuditListPending(c *gin.Context) {
	posts, err := s.postSvc.ListPendingAudit(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, posts)
}

func (s *PostHandler) AuditAccept(c *gin.Context) {
	var req dto.ForwardPostDTO
	if err := c.ShouldBind(&req); err != nil {
		response.Error(c, err)
		return
	}
	if err := s.postSvc.AuditAccept(c.Request.Context(), req.PostID); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

func (s *PostHandler) AuditReject(c *gin.Context) {
	var req dto.ForwardPostDTO
	if err := c.ShouldBind(&req); err != nil {
		response.Error(c, err)
		return
	}
	if err := s.postSvc.AuditReject(c.Request.Context(), req.PostID); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

// List 查看某个用户的推文列表，user_id 缺省为本人
func (s *PostHandler) List(c *gin.Context) {
	viewerID := c.GetUint64("user_id")
	ownerID := viewerID
	if raw := c.Query("user_id"); raw != "" {
		parsed, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			response.Fail(c, response.CodeFail, "参数错误")
			return
		}
		ownerID = parsed
	}
	posts, err := s.postSvc.ListByUser(c.Request.Context(), viewerID, ownerID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, posts)
}

func (s *PostHandler) View(c *gin.Context) {
	viewerID := c.GetUint64("user_id")
	postID, err := strconv.ParseUint(c.Query("post_id"), 10, 64)
	if err != nil {
		response.Fail(c, response.CodeFail, "参数错误")
		return
	}
	post, err := s.postSvc.ViewPost(c.Request.Context(), viewerID, postID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, post)
}

func (s *PostHandler) Search(c *gin.Context) {
	viewerID := c.GetUint64("user_id")
	keyword := c.Query("content")
	if keyword == "" {
		response.Fail(c, response.CodeFail, "参数错误")
		return
	}
	posts, err := s.postSvc.SearchPosts(c.Request.Context(), viewerID, keyword)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, posts)
}

func (s *PostHandler) Recommend(c *gin.Context) {
	userID := c.GetUint64("user_id")
	var req dto.RecommendQueryDTO
	if err := c.ShouldBindQuery(&req); err != nil {
		response.Error(c, err)
		return
	}
	posts, err := s.postSvc.Recommend(c.Request.Context(), userID, req.Pn, req.Ps)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, posts)
}
