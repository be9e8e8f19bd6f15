// Package keymap defines keybindings for the TUI.
package keymap

import (
	"github.com/charmbracelet/bubbles/key"
)

// KeyMap defines all keybindings for the TUI.
type KeyMap struct {
	// Quit exits the application.
	Quit key.Binding

	// Help shows the help view.
	Help key.Binding

	// Back returns to the previous view.
	Back key.Binding

	// Submit sends the typed question.
	Submit key.Binding

	// Up navigates up in a list.
	Up key.Binding

	// Down navigates down in a list.
	Down key.Binding

	// Select confirms a selection.
	Select key.Binding

	// Library switches to the library view.
	Library key.Binding

	// Citations opens the citation picker on the latest answer.
	Citations key.Binding

	// SearchOnline opens the browser search for the last question.
	SearchOnline key.Binding

	// ClearHistory empties the transcript.
	ClearHistory key.Binding

	// Remove deletes the selected standard.
	Remove key.Binding

	// PrevPage goes back one page in the viewer.
	PrevPage key.Binding

	// NextPage advances one page in the viewer.
	NextPage key.Binding

	// ZoomIn increases the viewer zoom by one step.
	ZoomIn key.Binding

	// ZoomOut decreases the viewer zoom by one step.
	ZoomOut key.Binding

	// ZoomReset restores the default zoom.
	ZoomReset key.Binding

	// Move drags the viewer window (held with h/j/k/l).
	Move key.Binding

	// Resize resizes the viewer window (held with H/J/K/L).
	Resize key.Binding
}

// DefaultKeyMap returns the default keybindings.
func DefaultKeyMap() *KeyMap {
	return &KeyMap{
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "back"),
		),
		Submit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "ask"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "select"),
		),
		Library: key.NewBinding(
			key.WithKeys("ctrl+l"),
			key.WithHelp("ctrl+l", "library"),
		),
		Citations: key.NewBinding(
			key.WithKeys("ctrl+o"),
			key.WithHelp("ctrl+o", "citations"),
		),
		SearchOnline: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "search online"),
		),
		ClearHistory: key.NewBinding(
			key.WithKeys("ctrl+x"),
			key.WithHelp("ctrl+x", "clear history"),
		),
		Remove: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "remove"),
		),
		PrevPage: key.NewBinding(
			key.WithKeys("left", "p"),
			key.WithHelp("←/p", "prev page"),
		),
		NextPage: key.NewBinding(
			key.WithKeys("right", "n"),
			key.WithHelp("→/n", "next page"),
		),
		ZoomIn: key.NewBinding(
			key.WithKeys("+", "="),
			key.WithHelp("+", "zoom in"),
		),
		ZoomOut: key.NewBinding(
			key.WithKeys("-"),
			key.WithHelp("-", "zoom out"),
		),
		ZoomReset: key.NewBinding(
			key.WithKeys("0"),
			key.WithHelp("0", "reset zoom"),
		),
		Move: key.NewBinding(
			key.WithKeys("h", "j", "k", "l"),
			key.WithHelp("h/j/k/l", "move window"),
		),
		Resize: key.NewBinding(
			key.WithKeys("H", "J", "K", "L"),
			key.WithHelp("H/J/K/L", "resize window"),
		),
	}
}

// ChatHelp returns keybindings shown in the chat status bar.
func (k *KeyMap) ChatHelp() []key.Binding {
	return []key.Binding{k.Submit, k.Citations, k.Library, k.Help, k.Quit}
}

// LibraryHelp returns keybindings shown in the library status bar.
func (k *KeyMap) LibraryHelp() []key.Binding {
	return []key.Binding{k.Select, k.Remove, k.Back, k.Quit}
}

// ViewerHelp returns keybindings shown while the overlay is open.
func (k *KeyMap) ViewerHelp() []key.Binding {
	return []key.Binding{k.NextPage, k.ZoomIn, k.Move, k.Back}
}

// Matches checks if a key string matches a binding.
func Matches(keyStr string, binding key.Binding) bool {
	for _, k := range binding.Keys() {
		if k == keyStr {
			return true
		}
	}
	return false
}
