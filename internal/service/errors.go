package service

import (
	"errors"
)

const (
	CodeFail    = -1
	CodeBlocked = -101
)

var (
	ErrUserNotFound       = errors.New("用户不存在")
	ErrUserUsernameExist  = errors.New("用户名已存在")
	ErrCredentialInvalid  = errors.New("用户名或密码错误")
	ErrPostInvalid        = errors.New("推文无效")
	ErrPostBlocked        = errors.New("由于对方设置，你无法查看推文")
	ErrPostNoPermission   = errors.New("无修改此推文的权限")
	ErrPostNotEditable    = errors.New("当前状态不允许修改")
	ErrPostNotCommittable = errors.New("当前状态不允许提交审核")
	ErrPostNotInAudit     = errors.New("推文不在审核中")
	ErrActionDuplicate    = errors.New("不能重复点赞")
	ErrCollectDuplicate   = errors.New("不能重复收藏")
	ErrActionNotFound     = errors.New("尚未点赞此推文")
	ErrCollectNotFound    = errors.New("尚未收藏此推文")
	ErrRelationSelf       = errors.New("不能对自己进行此操作")
	ErrNotFollowing       = errors.New("尚未关注此用户")
	UnauthorizedError     = errors.New("权限不足")
	UnExpectedError       = errors.New("系统异常，请稍后重试")
)

var ErrorMap = map[error]int{
	ErrUserNotFound:       CodeFail,
	ErrUserUsernameExist:  CodeFail,
	ErrCredentialInvalid:  CodeFail,
	ErrPostInvalid:        CodeFail,
	ErrPostBlocked:        CodeBlocked,
	ErrPostNoPermission:   CodeFail,
	ErrPostNotEditable:    CodeFail,
	ErrPostNotCommittable: CodeFail,
	ErrPostNotInAudit:     CodeFail,
	ErrActionDuplicate:    CodeFail,
	ErrCollectDuplicate:   CodeFail,
	ErrActionNotFound:     CodeFail,
	ErrCollectNotFound:    CodeFail,
	ErrRelationSelf:       CodeFail,
	ErrNotFollowing:       CodeFail,
	UnauthorizedError:     CodeFail,
}
