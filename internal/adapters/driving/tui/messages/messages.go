// Package messages defines Bubbletea message types for the TUI.
// Messages represent events and commands that flow through the Elm architecture.
package messages

import (
	"github.com/custodia-labs/clauser-cli/internal/core/domain"
	"github.com/custodia-labs/clauser-cli/internal/core/ports/driven"
	"github.com/custodia-labs/clauser-cli/internal/core/ports/driving"
)

// ViewType identifies which view is currently active.
type ViewType int

const (
	// ViewChat is the question/answer conversation view.
	ViewChat ViewType = iota
	// ViewLibrary is the standards management view.
	ViewLibrary
	// ViewHelp is the help/keybindings view.
	ViewHelp
)

// String returns the string representation of the view type.
func (v ViewType) String() string {
	switch v {
	case ViewChat:
		return "chat"
	case ViewLibrary:
		return "library"
	case ViewHelp:
		return "help"
	default:
		return "unknown"
	}
}

// ViewChanged is sent when navigating between views.
type ViewChanged struct {
	View ViewType
}

// ErrorOccurred signals that an error happened.
type ErrorOccurred struct {
	Err error
}

// Quit signals the application should exit.
type Quit struct{}

// HistoryLoaded carries the persisted transcript.
type HistoryLoaded struct {
	Messages []domain.Message
	Err      error
}

// AnswerReceived carries the assistant reply for a submitted question.
type AnswerReceived struct {
	Message *domain.Message
	Err     error
}

// HistoryCleared signals the transcript was emptied.
type HistoryCleared struct {
	Err error
}

// StandardsLoaded carries the list of stored standards.
type StandardsLoaded struct {
	Standards []domain.Standard
	Err       error
}

// StandardsIngested carries the per-file outcomes of an upload batch.
type StandardsIngested struct {
	Results []driving.IngestResult
}

// StandardRemoved signals a standard was deleted.
type StandardRemoved struct {
	ID  string
	Err error
}

// CitationActivated requests the viewer overlay for a resolved citation.
type CitationActivated struct {
	Request *domain.ViewerRequest
	Err     error
}

// ViewerDocumentOpened reports the decode outcome when the overlay opens.
type ViewerDocumentOpened struct {
	Doc driven.DecodedDocument
	Err error
}

// ViewerRenderDone reports one page render. Seq identifies the render
// request; results from superseded requests carry a stale Seq and are
// dropped. A cancelled render produces no message at all.
type ViewerRenderDone struct {
	Seq    uint64
	Render *driven.PageRender
	Err    error
}

// ViewerClosed signals the overlay was dismissed.
type ViewerClosed struct{}
