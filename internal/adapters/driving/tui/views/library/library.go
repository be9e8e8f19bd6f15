// Package library provides the standards management view.
package library

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	standardlist "github.com/custodia-labs/clauser-cli/internal/adapters/driving/tui/components/list"
	"github.com/custodia-labs/clauser-cli/internal/adapters/driving/tui/components/status"
	"github.com/custodia-labs/clauser-cli/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/clauser-cli/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/clauser-cli/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/clauser-cli/internal/core/domain"
	"github.com/custodia-labs/clauser-cli/internal/core/ports/driving"
)

// View represents the library view listing the uploaded standards.
type View struct {
	styles    *styles.Styles
	keymap    *keymap.KeyMap
	list      *standardlist.StandardList
	statusbar *status.Bar

	libraryService driving.LibraryService
	ctx            context.Context

	confirmRemove *domain.Standard

	width  int
	height int
	ready  bool
}

// NewView creates a new library view.
func NewView(s *styles.Styles, km *keymap.KeyMap, libraryService driving.LibraryService) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}

	bar := status.NewBar(s)
	bar.SetBindings(km.LibraryHelp())

	return &View{
		styles:         s,
		keymap:         km,
		list:           standardlist.NewStandardList(s),
		statusbar:      bar,
		libraryService: libraryService,
		ctx:            context.Background(),
		width:          80,
		height:         24,
	}
}

// WithContext sets the context for the view.
func (v *View) WithContext(ctx context.Context) *View {
	v.ctx = ctx
	return v
}

// Init loads the stored standards.
func (v *View) Init() tea.Cmd {
	return v.Reload()
}

// Reload fetches the standards list.
func (v *View) Reload() tea.Cmd {
	return func() tea.Msg {
		standards, err := v.libraryService.List(v.ctx)
		return messages.StandardsLoaded{Standards: standards, Err: err}
	}
}

// Update handles messages for the library view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case tea.KeyMsg:
		return v.handleKeyMsg(msg)

	case messages.StandardsLoaded:
		if msg.Err != nil {
			v.setError(msg.Err)
			return v, nil
		}
		v.list.SetStandards(msg.Standards)
		v.statusbar.Clear()
		return v, nil

	case messages.StandardsIngested:
		return v, v.Reload()

	case messages.StandardRemoved:
		if msg.Err != nil {
			v.setError(msg.Err)
			return v, nil
		}
		v.statusbar.Clear()
		v.statusbar.SetMessage("Standard removed")
		return v, v.Reload()
	}

	return v, nil
}

// handleKeyMsg processes keyboard input.
func (v *View) handleKeyMsg(msg tea.KeyMsg) (*View, tea.Cmd) {
	keyStr := msg.String()

	if v.confirmRemove != nil {
		switch keyStr {
		case "y", "Y":
			std := v.confirmRemove
			v.confirmRemove = nil
			return v, v.remove(std.ID)
		default:
			v.confirmRemove = nil
			return v, nil
		}
	}

	switch {
	case keymap.Matches(keyStr, v.keymap.Up):
		v.list.MoveUp()
		return v, nil

	case keymap.Matches(keyStr, v.keymap.Down):
		v.list.MoveDown()
		return v, nil

	case keymap.Matches(keyStr, v.keymap.Remove):
		if std := v.list.SelectedStandard(); std != nil {
			v.confirmRemove = std
		}
		return v, nil

	case keymap.Matches(keyStr, v.keymap.Select):
		if std := v.list.SelectedStandard(); std != nil {
			return v, v.open(std.ID)
		}
		return v, nil
	}

	return v, nil
}

// remove deletes a standard by ID.
func (v *View) remove(id string) tea.Cmd {
	return func() tea.Msg {
		return messages.StandardRemoved{ID: id, Err: v.libraryService.Remove(v.ctx, id)}
	}
}

// open fetches the standard with its raw bytes and requests the viewer
// at the first page.
func (v *View) open(id string) tea.Cmd {
	return func() tea.Msg {
		std, err := v.libraryService.Get(v.ctx, id)
		if err != nil {
			return messages.CitationActivated{Err: err}
		}
		return messages.CitationActivated{
			Request: &domain.ViewerRequest{Standard: *std, Page: 1},
		}
	}
}

// setError reflects an error in the status bar.
func (v *View) setError(err error) {
	v.statusbar.SetState(status.StateError)
	v.statusbar.SetMessage(err.Error())
}

// View renders the library view.
func (v *View) View() string {
	if !v.ready {
		return "Initialising..."
	}

	sections := []string{
		v.styles.Title.Render("Library"),
		"",
		v.list.View(),
	}

	if v.confirmRemove != nil {
		prompt := fmt.Sprintf("Remove %q? (y/n)", v.confirmRemove.Name)
		sections = append(sections, "", v.styles.Error.Render(prompt))
	}

	sections = append(sections, "", v.statusbar.View())
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true
	v.statusbar.SetWidth(width)
}

// ConfirmingRemoval reports whether the delete confirmation is showing.
func (v *View) ConfirmingRemoval() bool {
	return v.confirmRemove != nil
}
