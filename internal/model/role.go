package model

// Role 用户角色，注册时为 RoleUser，仅运维侧修改
type Role string

const (
	RoleNone   Role = "none"
	RoleUser   Role = "user"
	RoleAdmin  Role = "admin"
	RoleReview Role = "review"
)

const (
	CapabilityAdmin  = "ADMIN"
	CapabilityReview = "REVIEW"
	CapabilityUser   = "USER"
)

// roleGrants 显式的角色能力表：admin ⊇ review ⊇ user
var roleGrants = map[Role][]string{
	RoleAdmin:  {CapabilityAdmin, CapabilityReview, CapabilityUser},
	RoleReview: {CapabilityReview, CapabilityUser},
	RoleUser:   {CapabilityUser},
	RoleNone:   {},
}

// Capabilities 返回角色拥有的全部能力，登录时解析一次写入 Token
func (r Role) Capabilities() []string {
	grants, ok := roleGrants[r]
	if !ok {
		return []string{}
	}
	out := make([]string, len(grants))
	copy(out, grants)
	return out
}
