// Package tui provides the terminal user interface.
// It follows the Elm architecture via Bubbletea: a single App model
// routes messages to the active view, and the viewer overlay draws on
// top of whichever view is behind it.
package tui

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/clauser-cli/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/clauser-cli/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/clauser-cli/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/clauser-cli/internal/adapters/driving/tui/views/chat"
	"github.com/custodia-labs/clauser-cli/internal/adapters/driving/tui/views/library"
	"github.com/custodia-labs/clauser-cli/internal/adapters/driving/tui/views/viewer"
)

// App is the root Bubbletea model.
type App struct {
	ports  *Ports
	ctx    context.Context
	styles *styles.Styles
	keymap *keymap.KeyMap

	chatView    *chat.View
	libraryView *library.View
	viewerView  *viewer.View

	currentView messages.ViewType
	width       int
	height      int
	ready       bool
}

// NewApp creates the application model from its ports.
func NewApp(ctx context.Context, ports *Ports) (*App, error) {
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("invalid ports: %w", err)
	}

	s := styles.DefaultStyles()
	km := keymap.DefaultKeyMap()

	return &App{
		ports:       ports,
		ctx:         ctx,
		styles:      s,
		keymap:      km,
		chatView:    chat.NewView(s, km, ports.Chat).WithContext(ctx),
		libraryView: library.NewView(s, km, ports.Library).WithContext(ctx),
		viewerView:  viewer.NewView(s, km, ports.Decoder).WithContext(ctx),
		currentView: messages.ViewChat,
	}, nil
}

// Init starts the application.
func (a *App) Init() tea.Cmd {
	return tea.Batch(
		tea.SetWindowTitle("clauser"),
		a.chatView.Init(),
		a.libraryView.Init(),
	)
}

// Update routes messages to the views.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.ready = true
		a.chatView.SetDimensions(msg.Width, msg.Height)
		a.libraryView.SetDimensions(msg.Width, msg.Height)
		return a, nil

	case tea.KeyMsg:
		return a.handleKeyMsg(msg)

	case messages.ViewChanged:
		a.currentView = msg.View
		return a, nil

	case messages.Quit:
		return a, tea.Quit

	// Conversation messages.
	case messages.HistoryLoaded, messages.AnswerReceived, messages.HistoryCleared:
		var cmd tea.Cmd
		a.chatView, cmd = a.chatView.Update(msg)
		return a, cmd

	// Library messages.
	case messages.StandardsLoaded, messages.StandardsIngested, messages.StandardRemoved:
		var cmd tea.Cmd
		a.libraryView, cmd = a.libraryView.Update(msg)
		return a, cmd

	// Viewer messages.
	case messages.CitationActivated:
		return a.handleCitationActivated(msg)

	case messages.ViewerDocumentOpened, messages.ViewerRenderDone:
		var cmd tea.Cmd
		a.viewerView, cmd = a.viewerView.Update(msg)
		return a, cmd

	case messages.ViewerClosed:
		return a, nil

	case messages.ErrorOccurred:
		var cmd tea.Cmd
		a.chatView, cmd = a.chatView.Update(msg)
		return a, cmd
	}

	return a.routeToCurrentView(msg)
}

// handleKeyMsg processes keyboard input, giving the overlay priority.
func (a *App) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		// Quitting with the overlay open still releases the document.
		if a.viewerView.IsOpen() {
			return a, tea.Sequence(a.viewerView.Close(), tea.Quit)
		}
		return a, tea.Quit
	}

	if a.viewerView.IsOpen() {
		var cmd tea.Cmd
		a.viewerView, cmd = a.viewerView.Update(msg)
		return a, cmd
	}

	keyStr := msg.String()

	switch {
	case keymap.Matches(keyStr, a.keymap.Library):
		if a.currentView == messages.ViewLibrary {
			a.currentView = messages.ViewChat
		} else {
			a.currentView = messages.ViewLibrary
		}
		return a, nil

	case keymap.Matches(keyStr, a.keymap.Help):
		// The chat input swallows "?" while typing.
		if a.currentView != messages.ViewChat {
			a.currentView = messages.ViewHelp
			return a, nil
		}

	case keymap.Matches(keyStr, a.keymap.Back):
		if a.currentView != messages.ViewChat && !a.libraryView.ConfirmingRemoval() {
			a.currentView = messages.ViewChat
			return a, nil
		}
	}

	return a.routeToCurrentView(msg)
}

// handleCitationActivated opens the viewer overlay for a resolved
// citation, or surfaces the resolution failure in the chat view.
func (a *App) handleCitationActivated(msg messages.CitationActivated) (tea.Model, tea.Cmd) {
	if msg.Err != nil {
		var cmd tea.Cmd
		a.chatView, cmd = a.chatView.Update(messages.ErrorOccurred{Err: msg.Err})
		return a, cmd
	}
	return a, a.viewerView.Open(msg.Request, a.width, a.height)
}

// routeToCurrentView forwards a message to the active view.
func (a *App) routeToCurrentView(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch a.currentView {
	case messages.ViewChat:
		a.chatView, cmd = a.chatView.Update(msg)
	case messages.ViewLibrary:
		a.libraryView, cmd = a.libraryView.Update(msg)
	case messages.ViewHelp:
		// Static view, no message handling.
	}
	return a, cmd
}

// View renders the active view with the overlay composited on top.
func (a *App) View() string {
	if !a.ready {
		return "Starting clauser..."
	}

	var base string
	switch a.currentView {
	case messages.ViewLibrary:
		base = a.libraryView.View()
	case messages.ViewHelp:
		base = a.helpView()
	default:
		base = a.chatView.View()
	}

	if !a.viewerView.IsOpen() {
		return base
	}

	return a.composite(base, a.viewerView.View())
}

// composite draws the overlay over the base view at the session's
// window position.
func (a *App) composite(base, overlay string) string {
	col, row := a.viewerView.Position()
	if col < 0 {
		col = 0
	}
	if row < 0 {
		row = 0
	}

	baseLines := strings.Split(base, "\n")
	overlayLines := strings.Split(overlay, "\n")

	for len(baseLines) < row+len(overlayLines) {
		baseLines = append(baseLines, "")
	}

	for i, oline := range overlayLines {
		baseLines[row+i] = overlayLine(baseLines[row+i], oline, col)
	}

	return strings.Join(baseLines, "\n")
}

// overlayLine splices an overlay line into a base line at a column.
// Styled base content to the right of the overlay is dropped rather
// than risk splitting an ANSI sequence.
func overlayLine(base, overlay string, col int) string {
	prefix := base
	if lipgloss.Width(prefix) > col {
		prefix = ""
	}
	pad := col - lipgloss.Width(prefix)
	if pad < 0 {
		pad = 0
	}
	return prefix + strings.Repeat(" ", pad) + overlay
}

// helpView renders the static keybinding reference.
func (a *App) helpView() string {
	rows := []struct{ key, what string }{
		{"enter", "ask a question"},
		{"ctrl+o", "open a citation in the viewer"},
		{"ctrl+s", "search the last question online"},
		{"ctrl+x", "clear the conversation"},
		{"ctrl+l", "toggle the library view"},
		{"d", "remove the selected standard (library)"},
		{"←/p  →/n", "previous / next page (viewer)"},
		{"+  -  0", "zoom in / out / reset (viewer)"},
		{"h/j/k/l", "move the viewer window"},
		{"H/J/K/L", "resize the viewer window"},
		{"esc", "close / back"},
		{"ctrl+c", "quit"},
	}

	lines := []string{a.styles.Title.Render("Keybindings"), ""}
	for _, r := range rows {
		lines = append(lines, fmt.Sprintf("  %s  %s",
			a.styles.Subtitle.Render(fmt.Sprintf("%-10s", r.key)),
			a.styles.Normal.Render(r.what)))
	}
	lines = append(lines, "", a.styles.Muted.Render("Press esc to go back."))

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

// Run starts the TUI program and blocks until it exits.
func Run(ctx context.Context, ports *Ports) error {
	app, err := NewApp(ctx, ports)
	if err != nil {
		return err
	}

	program := tea.NewProgram(app, tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	return nil
}
