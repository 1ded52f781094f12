package dto

// PostDTO 推文
type PostDTO struct {
	ID          uint64  `json:"id"`
	UserID      uint64  `json:"user_id"`
	Name        string  `json:"name"`
	Nickname    string  `json:"nickname"`
	Content     string  `json:"content"`
	AuditState  string  `json:"audit_state"`
	PublishTime string  `json:"publish_time"`
	ReplyID     *uint64 `json:"reply_id,omitempty"`
	ForwardID   *uint64 `json:"forward_id,omitempty"`

	Likes       []*UserRefDTO `json:"likes"`
	Collections []*UserRefDTO `json:"collections"`

	ReplyPost   *PostDTO   `json:"reply_post,omitempty"`
	ForwardPost *PostDTO   `json:"forward_post,omitempty"`
	ReplyPosts  []*PostDTO `json:"reply_posts,omitempty"`
}

// PostWaterfallDTO 分页结果
type PostWaterfallDTO struct {
	List    []*PostDTO `json:"list"`
	HasMore bool       `json:"has_more"`
}

// CreatePostDTO 新建推文，可带回复目标
type CreatePostDTO struct {
	Content string  `json:"content" form:"content"`
	ReplyID *uint64 `json:"reply_id" form:"reply_id"`
}

// ForwardPostDTO 转发
type ForwardPostDTO struct {
	PostID uint64 `json:"post_id" form:"post_id" binding:"required"`
}

// PostIDDTO 仅携带推文 id 的操作
type PostIDDTO struct {
	ID uint64 `json:"id" form:"id" binding:"required"`
}

// UpdatePostDTO 修改推文内容
type UpdatePostDTO struct {
	ID      uint64 `json:"id" form:"id" binding:"required"`
	Content string `json:"content" form:"content"`
}

// RecommendQueryDTO 推荐流分页，pn 从 0 开始
type RecommendQueryDTO struct {
	Pn int `form:"pn"`
	Ps int `form:"ps"`
}
