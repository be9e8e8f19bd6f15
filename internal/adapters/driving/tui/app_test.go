package tui

import (
	"context"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/clauser-cli/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/clauser-cli/internal/core/domain"
	"github.com/custodia-labs/clauser-cli/internal/core/ports/driven"
	"github.com/custodia-labs/clauser-cli/internal/core/ports/driving"
)

type stubChat struct{}

func (stubChat) Ask(context.Context, string) (*domain.Message, error) {
	return &domain.Message{Role: domain.RoleAssistant, Body: "answer"}, nil
}
func (stubChat) History(context.Context) ([]domain.Message, error) { return nil, nil }
func (stubChat) Clear(context.Context) error                       { return nil }
func (stubChat) ActivateCitation(context.Context, domain.Citation) (*domain.ViewerRequest, error) {
	return &domain.ViewerRequest{Standard: domain.Standard{Name: "ISO 9001.pdf"}, Page: 1}, nil
}
func (stubChat) SearchOnline(string) error { return nil }
func (stubChat) ModelName() string         { return "test" }

type stubLibrary struct{}

func (stubLibrary) Ingest(context.Context, string) (*driving.IngestResult, error) {
	return nil, nil
}
func (stubLibrary) IngestAll(context.Context, []string) ([]driving.IngestResult, error) {
	return nil, nil
}
func (stubLibrary) List(context.Context) ([]domain.Standard, error) { return nil, nil }
func (stubLibrary) Get(context.Context, string) (*domain.Standard, error) {
	return &domain.Standard{ID: "std-1", Name: "ISO 9001.pdf", Data: []byte("%PDF-")}, nil
}
func (stubLibrary) Remove(context.Context, string) error { return nil }

type stubDoc struct{ closed int }

func (d *stubDoc) PageCount() int { return 3 }
func (d *stubDoc) RenderPage(ctx context.Context, page int, zoom float64) (*driven.PageRender, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return &driven.PageRender{Page: page, Zoom: zoom, Lines: []string{"content"}}, nil
}
func (d *stubDoc) Close() error {
	d.closed++
	return nil
}

type stubDecoder struct{ doc *stubDoc }

func (s *stubDecoder) Open(context.Context, []byte) (driven.DecodedDocument, error) {
	return s.doc, nil
}

func newTestApp(t *testing.T) *App {
	t.Helper()

	app, err := NewApp(context.Background(), NewPorts(
		stubLibrary{}, stubChat{}, &stubDecoder{doc: &stubDoc{}}))
	require.NoError(t, err)

	model, _ := app.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	return model.(*App)
}

func TestNewApp_RequiresServices(t *testing.T) {
	_, err := NewApp(context.Background(), NewPorts(nil, stubChat{}, nil))
	assert.ErrorIs(t, err, ErrMissingLibraryService)

	_, err = NewApp(context.Background(), NewPorts(stubLibrary{}, nil, nil))
	assert.ErrorIs(t, err, ErrMissingChatService)

	// A nil decoder only disables the viewer.
	_, err = NewApp(context.Background(), NewPorts(stubLibrary{}, stubChat{}, nil))
	assert.NoError(t, err)
}

func TestApp_StartsOnChatView(t *testing.T) {
	app := newTestApp(t)
	assert.Equal(t, messages.ViewChat, app.currentView)
	assert.Contains(t, app.View(), "Clauser")
}

func TestApp_ToggleLibraryView(t *testing.T) {
	app := newTestApp(t)

	model, _ := app.Update(tea.KeyMsg{Type: tea.KeyCtrlL})
	app = model.(*App)
	assert.Equal(t, messages.ViewLibrary, app.currentView)

	model, _ = app.Update(tea.KeyMsg{Type: tea.KeyCtrlL})
	app = model.(*App)
	assert.Equal(t, messages.ViewChat, app.currentView)
}

func TestApp_EscReturnsToChat(t *testing.T) {
	app := newTestApp(t)

	model, _ := app.Update(tea.KeyMsg{Type: tea.KeyCtrlL})
	app = model.(*App)

	model, _ = app.Update(tea.KeyMsg{Type: tea.KeyEsc})
	app = model.(*App)
	assert.Equal(t, messages.ViewChat, app.currentView)
}

func TestApp_CtrlCQuits(t *testing.T) {
	app := newTestApp(t)

	_, cmd := app.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	require.NotNil(t, cmd)
	assert.Equal(t, tea.QuitMsg{}, cmd())
}

func TestApp_CitationOpensViewerOverlay(t *testing.T) {
	app := newTestApp(t)

	req := &domain.ViewerRequest{
		Standard: domain.Standard{ID: "std-1", Name: "ISO 9001.pdf", Data: []byte("%PDF-")},
		Page:     2,
	}
	model, openCmd := app.Update(messages.CitationActivated{Request: req})
	app = model.(*App)
	require.NotNil(t, openCmd)

	model, renderCmd := app.Update(openCmd())
	app = model.(*App)
	require.NotNil(t, renderCmd)
	require.True(t, app.viewerView.IsOpen())

	model, _ = app.Update(renderCmd())
	app = model.(*App)

	assert.Equal(t, domain.ViewerReady, app.viewerView.Session().State())
	assert.Equal(t, 2, app.viewerView.Session().Page())
	assert.Contains(t, app.View(), "2/3")
}

func TestApp_OverlayInterceptsKeys(t *testing.T) {
	app := newTestApp(t)

	// Open the overlay.
	req := &domain.ViewerRequest{
		Standard: domain.Standard{ID: "std-1", Name: "ISO 9001.pdf", Data: []byte("%PDF-")},
		Page:     1,
	}
	model, openCmd := app.Update(messages.CitationActivated{Request: req})
	app = model.(*App)
	model, renderCmd := app.Update(openCmd())
	app = model.(*App)
	model, _ = app.Update(renderCmd())
	app = model.(*App)

	// ctrl+l goes to the viewer region, not the view switcher.
	model, _ = app.Update(tea.KeyMsg{Type: tea.KeyCtrlL})
	app = model.(*App)
	assert.Equal(t, messages.ViewChat, app.currentView)
	assert.True(t, app.viewerView.IsOpen())

	// esc closes the overlay instead of changing views.
	model, closeCmd := app.Update(tea.KeyMsg{Type: tea.KeyEsc})
	app = model.(*App)
	require.NotNil(t, closeCmd)
	assert.False(t, app.viewerView.IsOpen())
	assert.Equal(t, messages.ViewChat, app.currentView)
}

func TestApp_CitationResolutionFailureStaysInChat(t *testing.T) {
	app := newTestApp(t)

	model, _ := app.Update(messages.CitationActivated{Err: domain.ErrNotFound})
	app = model.(*App)

	assert.False(t, app.viewerView.IsOpen())
	assert.Contains(t, app.View(), "not found")
}
