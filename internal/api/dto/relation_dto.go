package dto

// TargetDTO 关注/拉黑/取关的目标用户
type TargetDTO struct {
	Target uint64 `json:"target" form:"target" binding:"required"`
}

// RelationshipDTO 一条关注或拉黑记录
type RelationshipDTO struct {
	UserID       uint64 `json:"user_id"`
	TargetUserID uint64 `json:"target_user_id"`
	IsBlock      bool   `json:"is_block"`
}

// FollowCountDTO 关注与粉丝数
type FollowCountDTO struct {
	Following int64 `json:"following"`
	Follower  int64 `json:"follower"`
}

// TwoRelationDTO 当前用户与目标用户的关系
type TwoRelationDTO struct {
	HasRelationship bool `json:"has_relationship"`
	IsFollowing     bool `json:"is_following"`
	IsBlocking      bool `json:"is_blocking"`
}
