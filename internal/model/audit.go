package model

// AuditState 推文审核状态
type AuditState int8

const (
	AuditDraft      AuditState = 0 // 草稿
	AuditInProgress AuditState = 1 // 审核中
	AuditPassed     AuditState = 2 // 已发布
	AuditRejected   AuditState = 3 // 已拒绝
)

func (s AuditState) String() string {
	switch s {
	case AuditDraft:
		return "draft"
	case AuditInProgress:
		return "in_progress"
	case AuditPassed:
		return "passed"
	case AuditRejected:
		return "rejected"
	}
	return "unknown"
}

// Editable 内容是否允许修改（含重新提交审核）
func (s AuditState) Editable() bool {
	return s == AuditDraft || s == AuditRejected
}

// auditTransitions 审核状态机的全部合法迁移
var auditTransitions = map[AuditState][]AuditState{
	AuditDraft:      {AuditInProgress},
	AuditRejected:   {AuditInProgress},
	AuditInProgress: {AuditPassed, AuditRejected},
	AuditPassed:     {},
}

// CanTransition 判断状态机是否允许 s -> to 的迁移
func (s AuditState) CanTransition(to AuditState) bool {
	for _, next := range auditTransitions[s] {
		if next == to {
			return true
		}
	}
	return false
}
