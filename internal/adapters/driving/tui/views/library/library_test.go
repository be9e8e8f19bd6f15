package library

import (
	"context"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/clauser-cli/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/clauser-cli/internal/core/domain"
	"github.com/custodia-labs/clauser-cli/internal/core/ports/driving"
)

// stubLibraryService is a scriptable LibraryService.
type stubLibraryService struct {
	standards []domain.Standard
	listErr   error
	removed   []string
	removeErr error
	got       []string
	getErr    error
}

func (s *stubLibraryService) Ingest(_ context.Context, path string) (*driving.IngestResult, error) {
	return &driving.IngestResult{Path: path}, nil
}

func (s *stubLibraryService) IngestAll(_ context.Context, _ []string) ([]driving.IngestResult, error) {
	return nil, nil
}

func (s *stubLibraryService) List(_ context.Context) ([]domain.Standard, error) {
	return s.standards, s.listErr
}

func (s *stubLibraryService) Get(_ context.Context, id string) (*domain.Standard, error) {
	s.got = append(s.got, id)
	if s.getErr != nil {
		return nil, s.getErr
	}
	for i := range s.standards {
		if s.standards[i].ID == id {
			std := s.standards[i]
			std.Data = []byte("%PDF-")
			return &std, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (s *stubLibraryService) Remove(_ context.Context, id string) error {
	s.removed = append(s.removed, id)
	return s.removeErr
}

var _ driving.LibraryService = (*stubLibraryService)(nil)

func newTestView(svc *stubLibraryService) *View {
	v := NewView(nil, nil, svc)
	v.SetDimensions(100, 30)
	return v
}

func testStandards() []domain.Standard {
	return []domain.Standard{
		{ID: "std-1", Name: "ISO 9001.pdf", Size: 1024, UploadedAt: time.Now()},
		{ID: "std-2", Name: "ISO 14001.pdf", Size: 2048, UploadedAt: time.Now()},
	}
}

func loadStandards(t *testing.T, v *View) *View {
	t.Helper()
	cmd := v.Reload()
	loaded, ok := cmd().(messages.StandardsLoaded)
	require.True(t, ok)
	require.NoError(t, loaded.Err)
	v, _ = v.Update(loaded)
	return v
}

func TestLibrary_ListsStandards(t *testing.T) {
	svc := &stubLibraryService{standards: testStandards()}
	v := loadStandards(t, newTestView(svc))

	out := v.View()
	assert.Contains(t, out, "ISO 9001.pdf")
	assert.Contains(t, out, "ISO 14001.pdf")
}

func TestLibrary_EmptyStateMessage(t *testing.T) {
	svc := &stubLibraryService{}
	v := loadStandards(t, newTestView(svc))

	assert.Contains(t, v.View(), "No standards uploaded yet")
}

func TestLibrary_RemoveRequiresConfirmation(t *testing.T) {
	svc := &stubLibraryService{standards: testStandards()}
	v := loadStandards(t, newTestView(svc))

	v, cmd := v.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'d'}})
	assert.Nil(t, cmd)
	require.True(t, v.ConfirmingRemoval())
	assert.Contains(t, v.View(), `Remove "ISO 9001.pdf"?`)

	// Anything but y aborts.
	v, cmd = v.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'n'}})
	assert.Nil(t, cmd)
	assert.False(t, v.ConfirmingRemoval())
	assert.Empty(t, svc.removed)
}

func TestLibrary_ConfirmedRemoveDeletesAndReloads(t *testing.T) {
	svc := &stubLibraryService{standards: testStandards()}
	v := loadStandards(t, newTestView(svc))

	v, _ = v.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'d'}})
	v, removeCmd := v.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'y'}})
	require.NotNil(t, removeCmd)

	removed, ok := removeCmd().(messages.StandardRemoved)
	require.True(t, ok)
	require.NoError(t, removed.Err)
	assert.Equal(t, []string{"std-1"}, svc.removed)

	// The removal outcome triggers a list reload.
	_, reloadCmd := v.Update(removed)
	require.NotNil(t, reloadCmd)
	_, ok = reloadCmd().(messages.StandardsLoaded)
	assert.True(t, ok)
}

func TestLibrary_SelectOpensViewerAtFirstPage(t *testing.T) {
	svc := &stubLibraryService{standards: testStandards()}
	v := loadStandards(t, newTestView(svc))

	v, _ = v.Update(tea.KeyMsg{Type: tea.KeyDown})
	_, openCmd := v.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, openCmd)

	activated, ok := openCmd().(messages.CitationActivated)
	require.True(t, ok)
	require.NoError(t, activated.Err)
	assert.Equal(t, "ISO 14001.pdf", activated.Request.Standard.Name)
	assert.Equal(t, 1, activated.Request.Page)
	assert.NotEmpty(t, activated.Request.Standard.Data)
	assert.Equal(t, []string{"std-2"}, svc.got)
}

func TestLibrary_SelectFailureSurfacesError(t *testing.T) {
	svc := &stubLibraryService{standards: testStandards(), getErr: domain.ErrStorageUnavailable}
	v := loadStandards(t, newTestView(svc))

	_, openCmd := v.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, openCmd)

	activated := openCmd().(messages.CitationActivated)
	assert.ErrorIs(t, activated.Err, domain.ErrStorageUnavailable)
}

func TestLibrary_IngestOutcomeTriggersReload(t *testing.T) {
	svc := &stubLibraryService{standards: testStandards()}
	v := newTestView(svc)

	_, cmd := v.Update(messages.StandardsIngested{Results: []driving.IngestResult{{Path: "a.pdf"}}})
	require.NotNil(t, cmd)
	_, ok := cmd().(messages.StandardsLoaded)
	assert.True(t, ok)
}
