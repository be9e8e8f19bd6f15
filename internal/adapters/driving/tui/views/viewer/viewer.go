// Package viewer provides the document viewer overlay.
//
// The overlay draws on top of whichever view is active. It owns the
// viewer session state machine, the open document handle and the
// outstanding render: page and zoom changes cancel the previous render
// and issue a new one, and results from superseded renders are dropped
// by sequence number.
package viewer

import (
	"context"
	"errors"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/clauser-cli/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/clauser-cli/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/clauser-cli/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/clauser-cli/internal/core/domain"
	"github.com/custodia-labs/clauser-cli/internal/core/ports/driven"
)

// Terminal cells are mapped to the session's pixel coordinate space at
// a fixed scale, so the geometry limits hold exactly.
const (
	cellWidth  = 10
	cellHeight = 20
)

// View is the viewer overlay.
type View struct {
	styles  *styles.Styles
	keymap  *keymap.KeyMap
	decoder driven.DocumentDecoder
	ctx     context.Context

	session      *domain.ViewerSession
	standardName string
	doc          driven.DecodedDocument
	render       *driven.PageRender

	seq          uint64
	cancelRender context.CancelFunc
}

// NewView creates the viewer overlay. The decoder may be nil, in which
// case Open reports the capability as unavailable.
func NewView(s *styles.Styles, km *keymap.KeyMap, decoder driven.DocumentDecoder) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}

	return &View{
		styles:  s,
		keymap:  km,
		decoder: decoder,
		ctx:     context.Background(),
	}
}

// WithContext sets the context for the view.
func (v *View) WithContext(ctx context.Context) *View {
	v.ctx = ctx
	return v
}

// Open starts a viewer session for the resolved standard. Viewport
// dimensions are terminal cells; the session works in pixels.
func (v *View) Open(req *domain.ViewerRequest, viewportCols, viewportRows int) tea.Cmd {
	if v.decoder == nil {
		return func() tea.Msg {
			return messages.ViewerDocumentOpened{Err: errors.New("document viewer is not available")}
		}
	}

	v.session = domain.NewViewerSession(viewportCols*cellWidth, viewportRows*cellHeight, req.Page)
	v.standardName = req.Standard.Name
	v.render = nil

	data := req.Standard.Data
	return func() tea.Msg {
		doc, err := v.decoder.Open(v.ctx, data)
		return messages.ViewerDocumentOpened{Doc: doc, Err: err}
	}
}

// IsOpen reports whether the overlay should be drawn and receive keys.
func (v *View) IsOpen() bool {
	return v.session != nil && v.session.State() != domain.ViewerClosed
}

// Session exposes the underlying state machine.
func (v *View) Session() *domain.ViewerSession {
	return v.session
}

// Position returns the overlay's top-left corner in terminal cells.
func (v *View) Position() (col, row int) {
	x, y, _, _ := v.session.Bounds()
	return x / cellWidth, y / cellHeight
}

// Update handles viewer messages.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	if v.session == nil {
		return v, nil
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		return v.handleKeyMsg(msg)

	case messages.ViewerDocumentOpened:
		return v.handleOpened(msg)

	case messages.ViewerRenderDone:
		return v.handleRenderDone(msg)
	}

	return v, nil
}

// handleOpened processes the decode outcome.
func (v *View) handleOpened(msg messages.ViewerDocumentOpened) (*View, tea.Cmd) {
	if v.session.State() == domain.ViewerClosed {
		// Closed while decoding: release the late handle.
		if msg.Doc != nil {
			_ = msg.Doc.Close()
		}
		return v, nil
	}

	if msg.Err != nil {
		v.session.Fail(msg.Err)
		return v, nil
	}

	v.doc = msg.Doc
	if err := v.session.Loaded(v.doc.PageCount()); err != nil {
		_ = v.doc.Close()
		v.doc = nil
		return v, nil
	}

	return v, v.renderCmd()
}

// handleRenderDone applies a completed render, dropping stale results.
func (v *View) handleRenderDone(msg messages.ViewerRenderDone) (*View, tea.Cmd) {
	if msg.Seq != v.seq {
		return v, nil
	}
	if v.session.State() == domain.ViewerClosed {
		return v, nil
	}

	if msg.Err != nil {
		v.session.Fail(msg.Err)
		return v, nil
	}

	v.render = msg.Render
	v.session.RenderDone()
	return v, nil
}

// handleKeyMsg processes keyboard input while the overlay is open.
func (v *View) handleKeyMsg(msg tea.KeyMsg) (*View, tea.Cmd) {
	keyStr := msg.String()

	switch {
	case keymap.Matches(keyStr, v.keymap.Back):
		return v, v.Close()

	case keymap.Matches(keyStr, v.keymap.PrevPage):
		if v.session.PrevPage() {
			return v, v.renderCmd()
		}
		return v, nil

	case keymap.Matches(keyStr, v.keymap.NextPage):
		if v.session.NextPage() {
			return v, v.renderCmd()
		}
		return v, nil

	case keymap.Matches(keyStr, v.keymap.ZoomIn):
		if v.session.ZoomIn() {
			return v, v.renderCmd()
		}
		return v, nil

	case keymap.Matches(keyStr, v.keymap.ZoomOut):
		if v.session.ZoomOut() {
			return v, v.renderCmd()
		}
		return v, nil

	case keymap.Matches(keyStr, v.keymap.ZoomReset):
		if v.session.ZoomReset() {
			return v, v.renderCmd()
		}
		return v, nil
	}

	// One keypress is one cell-sized drag or resize gesture.
	switch keyStr {
	case "h":
		v.nudge(-cellWidth, 0)
	case "l":
		v.nudge(cellWidth, 0)
	case "k":
		v.nudge(0, -cellHeight)
	case "j":
		v.nudge(0, cellHeight)
	case "H":
		v.grow(-cellWidth, 0)
	case "L":
		v.grow(cellWidth, 0)
	case "K":
		v.grow(0, -cellHeight)
	case "J":
		v.grow(0, cellHeight)
	}

	return v, nil
}

// nudge moves the window by one gesture of the given pixel delta.
func (v *View) nudge(dx, dy int) {
	v.session.StartDrag()
	v.session.Drag(dx, dy)
	v.session.EndDrag()
}

// grow resizes the window by one gesture of the given pixel delta.
func (v *View) grow(dw, dh int) {
	v.session.StartResize()
	v.session.Resize(dw, dh)
	v.session.EndResize()
}

// renderCmd cancels any outstanding render and issues a new one for the
// session's current page and zoom. A cancelled render resolves to no
// message; completed renders carry the sequence number they were issued
// under so stale results can be dropped.
func (v *View) renderCmd() tea.Cmd {
	if v.doc == nil {
		return nil
	}

	if v.cancelRender != nil {
		v.cancelRender()
	}

	ctx, cancel := context.WithCancel(v.ctx)
	v.cancelRender = cancel
	v.seq++

	seq := v.seq
	doc := v.doc
	page := v.session.Page()
	zoom := v.session.Zoom()

	return func() tea.Msg {
		render, err := doc.RenderPage(ctx, page, zoom)
		if errors.Is(err, context.Canceled) {
			return nil
		}
		return messages.ViewerRenderDone{Seq: seq, Render: render, Err: err}
	}
}

// Close tears the session down: the outstanding render is cancelled and
// the document handle released on every exit path.
func (v *View) Close() tea.Cmd {
	if v.session == nil {
		return nil
	}

	if v.cancelRender != nil {
		v.cancelRender()
		v.cancelRender = nil
	}
	if v.doc != nil {
		_ = v.doc.Close()
		v.doc = nil
	}
	v.session.Close()
	v.render = nil

	return func() tea.Msg {
		return messages.ViewerClosed{}
	}
}

// View renders the overlay window.
func (v *View) View() string {
	if !v.IsOpen() {
		return ""
	}

	_, _, pw, ph := v.session.Bounds()
	cols := pw / cellWidth
	rows := ph / cellHeight
	if cols < 20 {
		cols = 20
	}
	if rows < 6 {
		rows = 6
	}

	header := v.headerLine()
	body := v.bodyLines(rows - 2)

	content := make([]string, 0, rows)
	content = append(content, v.styles.Subtitle.Render(clip(header, cols-4)))
	content = append(content, clip(v.navLine(), cols-4))
	for _, line := range body {
		content = append(content, clip(line, cols-4))
	}

	return v.styles.Overlay.Width(cols - 2).Render(strings.Join(content, "\n"))
}

// headerLine summarises the document, page and zoom.
func (v *View) headerLine() string {
	switch v.session.State() {
	case domain.ViewerLoading:
		return fmt.Sprintf("%s — opening...", v.standardName)
	case domain.ViewerError:
		return fmt.Sprintf("%s — error", v.standardName)
	default:
		return fmt.Sprintf("%s — page %d/%d — %d%%",
			v.standardName, v.session.Page(), v.session.PageCount(),
			int(v.session.Zoom()*100))
	}
}

// navLine shows the paging hints. At a bound the arrow drops out and
// the label greys.
func (v *View) navLine() string {
	switch v.session.State() {
	case domain.ViewerLoading, domain.ViewerError, domain.ViewerClosed:
		return ""
	}

	prev, next := "◂ prev", "next ▸"
	if v.session.AtFirstPage() {
		prev = v.styles.Muted.Render("  prev")
	}
	if v.session.AtLastPage() {
		next = v.styles.Muted.Render("next  ")
	}
	return prev + "   " + next
}

// bodyLines returns at most max lines of overlay content.
func (v *View) bodyLines(max int) []string {
	if max < 1 {
		max = 1
	}

	switch v.session.State() {
	case domain.ViewerLoading:
		return []string{v.styles.Muted.Render("Decoding document...")}

	case domain.ViewerError:
		reason := "unknown error"
		if err := v.session.Err(); err != nil {
			reason = err.Error()
		}
		return []string{
			v.styles.Error.Render("Could not display this document."),
			v.styles.Muted.Render(reason),
			v.styles.Muted.Render("Press esc to close."),
		}
	}

	if v.render == nil {
		return []string{v.styles.Muted.Render("Rendering...")}
	}

	lines := v.render.Lines
	if len(lines) > max {
		lines = lines[:max]
	}

	out := make([]string, 0, len(lines)+1)
	out = append(out, lines...)
	if v.session.State() == domain.ViewerRendering {
		out = append(out, v.styles.Muted.Render("Rendering..."))
	}
	return out
}

// clip truncates a line to the given display width.
func clip(s string, width int) string {
	if width < 1 {
		width = 1
	}
	runes := []rune(s)
	if len(runes) <= width {
		return s
	}
	return string(runes[:width])
}
