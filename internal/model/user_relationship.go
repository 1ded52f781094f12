package model

// UserRelationship 用户间的定向关系。
// 同一 (user, target) 行只有一种状态：IsBlock=false 为关注，IsBlock=true 为拉黑，
// follow/block 互相覆盖，unfollow 删除整行。
type UserRelationship struct {
	ID           uint64 `gorm:"primaryKey" json:"id"`
	UserID       uint64 `gorm:"not null;uniqueIndex:idx_rel_user_target" json:"user_id"`
	TargetUserID uint64 `gorm:"not null;uniqueIndex:idx_rel_user_target;index:idx_rel_target" json:"target_user_id"`
	IsBlock      bool   `gorm:"type:tinyint(1);not null;default:0" json:"is_block"`
}

func (UserRelationship) TableName() string {
	return "user_relationships"
}
