package consts

const (
	UserInfoKey           = "user:info:"
	UserFollowingCountKey = "user:following:count:"
	UserFollowerCountKey  = "user:follower:count:"
)
