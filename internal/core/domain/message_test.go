package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestMessage_Validate tests role and citation invariants
func TestMessage_Validate(t *testing.T) {
	msg := Message{
		ID:        "msg-1",
		Role:      RoleAssistant,
		Body:      "See clause 4.2.",
		Citations: []Citation{{Standard: "RT CE S 104", Clause: "4.2", Page: 12}},
		CreatedAt: time.Now(),
	}
	require.NoError(t, msg.Validate())
}

// TestMessage_Validate_UserWithCitations rejects citations on user turns
func TestMessage_Validate_UserWithCitations(t *testing.T) {
	msg := Message{
		ID:        "msg-1",
		Role:      RoleUser,
		Body:      "what does clause 4.2 say?",
		Citations: []Citation{{Standard: "x"}},
	}
	assert.ErrorIs(t, msg.Validate(), ErrInvalidInput)
}

// TestMessage_Validate_BadRole rejects unknown roles
func TestMessage_Validate_BadRole(t *testing.T) {
	msg := Message{ID: "msg-1", Role: Role("system"), Body: "x"}
	assert.ErrorIs(t, msg.Validate(), ErrInvalidInput)
}

// TestCitation_TargetPage tests page defaulting
func TestCitation_TargetPage(t *testing.T) {
	tests := []struct {
		name string
		page int
		want int
	}{
		{"absent", 0, 1},
		{"negative", -3, 1},
		{"positive", 7, 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Citation{Standard: "s", Page: tt.page}
			assert.Equal(t, tt.want, c.TargetPage())
		})
	}
}
