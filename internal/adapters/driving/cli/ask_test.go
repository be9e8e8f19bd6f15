package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/clauser-cli/internal/core/domain"
)

func TestAskCmd_PrintsAnswerWithCitations(t *testing.T) {
	_, chat, _, cleanup := setupTestServices()
	defer cleanup()
	chat.reply = &domain.Message{
		Role: domain.RoleAssistant,
		Body: "Yes, see clause 7.1.5.",
		Citations: []domain.Citation{
			{Standard: "ISO 9001.pdf", Clause: "7.1.5", Page: 12},
		},
	}

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"ask", "does it cover calibration?"})

	err := rootCmd.Execute()

	require.NoError(t, err)
	assert.Contains(t, buf.String(), "Yes, see clause 7.1.5.")
	assert.Contains(t, buf.String(), "[1] ISO 9001.pdf, clause 7.1.5, p.12")
}

func TestAskCmd_JSONOutput(t *testing.T) {
	_, chat, _, cleanup := setupTestServices()
	defer cleanup()
	chat.reply = &domain.Message{Role: domain.RoleAssistant, Body: "answer"}

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"ask", "--json", "question"})
	defer func() { askJSON = false }()

	err := rootCmd.Execute()

	require.NoError(t, err)
	assert.Contains(t, buf.String(), `"Body": "answer"`)
}

func TestAskCmd_NoStandardsHint(t *testing.T) {
	_, chat, _, cleanup := setupTestServices()
	defer cleanup()
	chat.askErr = domain.ErrNoStandards

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"ask", "anything"})

	err := rootCmd.Execute()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "clauser add")
}

func TestAskCmd_NoCredentialHint(t *testing.T) {
	_, chat, _, cleanup := setupTestServices()
	defer cleanup()
	chat.askErr = domain.ErrNoCredential

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"ask", "anything"})

	err := rootCmd.Execute()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "clauser config provider")
}

func TestHistoryShowCmd_PrintsTranscript(t *testing.T) {
	_, chat, _, cleanup := setupTestServices()
	defer cleanup()
	chat.history = []domain.Message{
		{ID: "m1", Role: domain.RoleUser, Body: "what about audits?"},
		{ID: "m2", Role: domain.RoleAssistant, Body: "Clause 9.2 requires internal audits.",
			Citations: []domain.Citation{{Standard: "ISO 9001.pdf", Page: 30}}},
	}

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"history", "show"})

	err := rootCmd.Execute()

	require.NoError(t, err)
	assert.Contains(t, buf.String(), "what about audits?")
	assert.Contains(t, buf.String(), "Clauser")
	assert.Contains(t, buf.String(), "[1] ISO 9001.pdf, p.30")
}

func TestHistoryClearCmd_Clears(t *testing.T) {
	_, chat, _, cleanup := setupTestServices()
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"history", "clear"})

	err := rootCmd.Execute()

	require.NoError(t, err)
	assert.Equal(t, 1, chat.cleared)
	assert.Contains(t, buf.String(), "cleared")
}
