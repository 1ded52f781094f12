package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAuditStateTransitions(t *testing.T) {
	tests := []struct {
		name    string
		from    AuditState
		to      AuditState
		allowed bool
	}{
		{"draft to in_progress", AuditDraft, AuditInProgress, true},
		{"rejected to in_progress", AuditRejected, AuditInProgress, true},
		{"in_progress to passed", AuditInProgress, AuditPassed, true},
		{"in_progress to rejected", AuditInProgress, AuditRejected, true},
		{"draft to passed", AuditDraft, AuditPassed, false},
		{"draft to rejected", AuditDraft, AuditRejected, false},
		{"passed to in_progress", AuditPassed, AuditInProgress, false},
		{"passed to rejected", AuditPassed, AuditRejected, false},
		{"passed to draft", AuditPassed, AuditDraft, false},
		{"rejected to passed", AuditRejected, AuditPassed, false},
		{"in_progress to draft", AuditInProgress, AuditDraft, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.allowed, tt.from.CanTransition(tt.to))
		})
	}
}

func TestAuditStateEditable(t *testing.T) {
	assert.True(t, AuditDraft.Editable())
	assert.True(t, AuditRejected.Editable())
	assert.False(t, AuditInProgress.Editable())
	assert.False(t, AuditPassed.Editable())
}

func TestAuditStateString(t *testing.T) {
	assert.Equal(t, "draft", AuditDraft.String())
	assert.Equal(t, "in_progress", AuditInProgress.String())
	assert.Equal(t, "passed", AuditPassed.String())
	assert.Equal(t, "rejected", AuditRejected.String())
	assert.Equal(t, "unknown", AuditState(9).String())
}
