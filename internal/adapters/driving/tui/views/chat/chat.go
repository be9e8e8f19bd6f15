// Package chat provides the question/answer conversation view.
package chat

import (
	"context"
	"errors"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/clauser-cli/internal/adapters/driving/tui/components/input"
	"github.com/custodia-labs/clauser-cli/internal/adapters/driving/tui/components/status"
	"github.com/custodia-labs/clauser-cli/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/clauser-cli/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/clauser-cli/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/clauser-cli/internal/core/domain"
	"github.com/custodia-labs/clauser-cli/internal/core/ports/driving"
)

// citationPicker is the overlay for choosing a citation to open.
type citationPicker struct {
	citations []domain.Citation
	selected  int
}

// View represents the conversation view with transcript, input and status bar.
type View struct {
	styles    *styles.Styles
	keymap    *keymap.KeyMap
	input     *input.QuestionInput
	statusbar *status.Bar

	chatService driving.ChatService
	ctx         context.Context

	transcript   []domain.Message
	lastQuestion string
	picker       *citationPicker

	width   int
	height  int
	ready   bool
	asking  bool
	err     error
}

// NewView creates a new chat view.
func NewView(s *styles.Styles, km *keymap.KeyMap, chatService driving.ChatService) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}

	bar := status.NewBar(s)
	bar.SetBindings(km.ChatHelp())

	return &View{
		styles:      s,
		keymap:      km,
		input:       input.NewQuestionInput(s),
		statusbar:   bar,
		chatService: chatService,
		ctx:         context.Background(),
		width:       80,
		height:      24,
	}
}

// WithContext sets the context for the view.
func (v *View) WithContext(ctx context.Context) *View {
	v.ctx = ctx
	return v
}

// Init loads the persisted transcript.
func (v *View) Init() tea.Cmd {
	return tea.Batch(v.input.Init(), v.loadHistory())
}

// Update handles messages for the chat view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case tea.KeyMsg:
		return v.handleKeyMsg(msg)

	case messages.HistoryLoaded:
		if msg.Err != nil {
			v.setError(msg.Err)
			return v, nil
		}
		v.transcript = msg.Messages
		return v, nil

	case messages.AnswerReceived:
		v.handleAnswer(msg)
		return v, nil

	case messages.HistoryCleared:
		if msg.Err != nil {
			v.setError(msg.Err)
			return v, nil
		}
		v.transcript = nil
		v.statusbar.Clear()
		v.statusbar.SetMessage("History cleared")
		return v, nil

	case messages.ErrorOccurred:
		v.setError(msg.Err)
		return v, nil
	}

	var cmd tea.Cmd
	v.input, cmd = v.input.Update(msg)
	return v, cmd
}

// handleKeyMsg processes keyboard input.
func (v *View) handleKeyMsg(msg tea.KeyMsg) (*View, tea.Cmd) {
	if v.picker != nil {
		return v.handlePickerKey(msg)
	}

	switch {
	case keymap.Matches(msg.String(), v.keymap.Citations):
		v.openPicker()
		return v, nil

	case keymap.Matches(msg.String(), v.keymap.SearchOnline):
		if v.lastQuestion == "" {
			return v, nil
		}
		if err := v.chatService.SearchOnline(v.lastQuestion); err != nil {
			v.setError(err)
		} else {
			v.statusbar.SetMessage("Opened browser search")
		}
		return v, nil

	case keymap.Matches(msg.String(), v.keymap.ClearHistory):
		return v, v.clearHistory()
	}

	if msg.Type == tea.KeyEnter {
		question := strings.TrimSpace(v.input.Value())
		if question == "" || v.asking {
			return v, nil
		}
		v.asking = true
		v.lastQuestion = question
		v.statusbar.SetState(status.StateAsking)

		// Show the question immediately; the persisted copy arrives
		// with the reload after the answer.
		v.transcript = append(v.transcript, domain.Message{
			Role: domain.RoleUser,
			Body: question,
		})
		v.input.SetValue("")
		return v, v.ask(question)
	}

	var cmd tea.Cmd
	v.input, cmd = v.input.Update(msg)
	return v, cmd
}

// handlePickerKey processes keyboard input while the citation picker is open.
func (v *View) handlePickerKey(msg tea.KeyMsg) (*View, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		v.picker = nil
		return v, nil

	case tea.KeyUp:
		if v.picker.selected > 0 {
			v.picker.selected--
		}
		return v, nil

	case tea.KeyDown:
		if v.picker.selected < len(v.picker.citations)-1 {
			v.picker.selected++
		}
		return v, nil

	case tea.KeyEnter:
		citation := v.picker.citations[v.picker.selected]
		v.picker = nil
		return v, v.activateCitation(citation)

	default:
	}

	switch msg.String() {
	case "k":
		if v.picker.selected > 0 {
			v.picker.selected--
		}
	case "j":
		if v.picker.selected < len(v.picker.citations)-1 {
			v.picker.selected++
		}
	}
	return v, nil
}

// openPicker opens the citation picker over the latest answer.
func (v *View) openPicker() {
	citations := v.latestCitations()
	if len(citations) == 0 {
		v.statusbar.SetMessage("No citations to open")
		return
	}
	v.picker = &citationPicker{citations: citations}
}

// latestCitations returns the citations of the most recent assistant message.
func (v *View) latestCitations() []domain.Citation {
	for i := len(v.transcript) - 1; i >= 0; i-- {
		if v.transcript[i].Role == domain.RoleAssistant {
			return v.transcript[i].Citations
		}
	}
	return nil
}

// ask submits the question to the chat service.
func (v *View) ask(question string) tea.Cmd {
	return func() tea.Msg {
		reply, err := v.chatService.Ask(v.ctx, question)
		return messages.AnswerReceived{Message: reply, Err: err}
	}
}

// loadHistory fetches the persisted transcript.
func (v *View) loadHistory() tea.Cmd {
	return func() tea.Msg {
		history, err := v.chatService.History(v.ctx)
		return messages.HistoryLoaded{Messages: history, Err: err}
	}
}

// clearHistory empties the persisted transcript.
func (v *View) clearHistory() tea.Cmd {
	return func() tea.Msg {
		return messages.HistoryCleared{Err: v.chatService.Clear(v.ctx)}
	}
}

// activateCitation resolves the citation and requests the viewer overlay.
func (v *View) activateCitation(c domain.Citation) tea.Cmd {
	return func() tea.Msg {
		req, err := v.chatService.ActivateCitation(v.ctx, c)
		return messages.CitationActivated{Request: req, Err: err}
	}
}

// handleAnswer processes the reply to a submitted question.
func (v *View) handleAnswer(msg messages.AnswerReceived) {
	v.asking = false

	if msg.Err != nil {
		// The service refuses these before persisting anything; drop the
		// optimistic entry so the transcript matches the store.
		if errors.Is(msg.Err, domain.ErrNoStandards) || errors.Is(msg.Err, domain.ErrNoCredential) {
			v.rollbackQuestion()
		}
		switch {
		case errors.Is(msg.Err, domain.ErrNoStandards):
			v.statusbar.SetState(status.StateError)
			v.statusbar.SetMessage("Upload a standard first (ctrl+l)")
		case errors.Is(msg.Err, domain.ErrNoCredential):
			v.statusbar.SetState(status.StateError)
			v.statusbar.SetMessage("No API key configured. Run 'clauser config'")
		default:
			v.setError(msg.Err)
			v.statusbar.SetMessage(msg.Err.Error() + " (ctrl+s to search online)")
		}
		return
	}

	v.err = nil
	if msg.Message != nil {
		v.transcript = append(v.transcript, *msg.Message)
	}
	v.statusbar.Clear()
}

// rollbackQuestion removes the trailing optimistic user entry. Only the
// optimistic copy has no ID; persisted messages carry one.
func (v *View) rollbackQuestion() {
	n := len(v.transcript)
	if n > 0 && v.transcript[n-1].Role == domain.RoleUser && v.transcript[n-1].ID == "" {
		v.transcript = v.transcript[:n-1]
	}
}

// setError records an error and reflects it in the status bar.
func (v *View) setError(err error) {
	v.err = err
	v.statusbar.SetState(status.StateError)
	v.statusbar.SetMessage(err.Error())
}

// View renders the chat view.
func (v *View) View() string {
	if !v.ready {
		return "Initialising..."
	}

	sections := make([]string, 0, 8)
	sections = append(sections, v.styles.Title.Render("Clauser"), "")

	sections = append(sections, v.renderTranscript())

	if v.picker != nil {
		sections = append(sections, "", v.renderPicker())
	}

	sections = append(sections, "", v.input.View(), "", v.statusbar.View())
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// renderTranscript renders the conversation, most recent messages last.
func (v *View) renderTranscript() string {
	if len(v.transcript) == 0 {
		return v.styles.Muted.Render("Ask a question about your uploaded standards.")
	}

	// Keep the tail that fits the available rows
	available := v.height - 10
	if available < 4 {
		available = 4
	}

	var lines []string
	for _, msg := range v.transcript {
		lines = append(lines, v.renderMessage(msg)...)
	}
	if len(lines) > available {
		lines = lines[len(lines)-available:]
	}

	return strings.Join(lines, "\n")
}

// renderMessage renders one transcript entry with its citations.
func (v *View) renderMessage(msg domain.Message) []string {
	var lines []string

	if msg.Role == domain.RoleUser {
		lines = append(lines, v.styles.UserMessage.Render("You: ")+v.styles.Normal.Render(msg.Body))
		return lines
	}

	lines = append(lines, v.styles.Subtitle.Render("Clauser: ")+v.styles.AssistantMessage.Render(msg.Body))
	for i, c := range msg.Citations {
		ref := fmt.Sprintf("  [%d] %s", i+1, c.Standard)
		if c.Clause != "" {
			ref += ", clause " + c.Clause
		}
		if c.Page > 0 {
			ref += fmt.Sprintf(", p.%d", c.Page)
		}
		lines = append(lines, v.styles.Citation.Render(ref))
	}
	return lines
}

// renderPicker renders the citation picker overlay.
func (v *View) renderPicker() string {
	lines := make([]string, 0, len(v.picker.citations)+1)
	lines = append(lines, v.styles.Subtitle.Render("Open citation:"))

	for i, c := range v.picker.citations {
		label := c.Standard
		if c.Page > 0 {
			label += fmt.Sprintf(" (p.%d)", c.Page)
		}
		if i == v.picker.selected {
			lines = append(lines, v.styles.Selected.Render("> "+label))
		} else {
			lines = append(lines, v.styles.Normal.Render("  "+label))
		}
	}

	return v.styles.Border.Padding(0, 1).Render(strings.Join(lines, "\n"))
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true
	v.input.SetWidth(width)
	v.statusbar.SetWidth(width)
}

// Transcript returns the rendered conversation.
func (v *View) Transcript() []domain.Message {
	return v.transcript
}

// Asking reports whether a question is outstanding.
func (v *View) Asking() bool {
	return v.asking
}

// PickerOpen reports whether the citation picker is showing.
func (v *View) PickerOpen() bool {
	return v.picker != nil
}

// Err returns the current error, if any.
func (v *View) Err() error {
	return v.err
}
