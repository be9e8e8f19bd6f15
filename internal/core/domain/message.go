package domain

import "time"

// Role identifies the author of a chat message.
type Role string

const (
	// RoleUser is a question typed by the user.
	RoleUser Role = "user"

	// RoleAssistant is a generated answer.
	RoleAssistant Role = "assistant"
)

// Message is a single turn of the chat transcript.
// Messages are immutable once created: the transcript only ever
// grows by append or empties by bulk clear.
type Message struct {
	// ID is the unique identifier.
	ID string

	// Role is the author: user or assistant.
	Role Role

	// Body is the message text.
	Body string

	// Citations is the ordered citation list. Assistant messages only.
	Citations []Citation

	// CreatedAt orders the transcript. Invariant: retrieval order is
	// timestamp-ascending, so CreatedAt is monotonically non-decreasing.
	CreatedAt time.Time
}

// Validate checks the record invariants.
func (m *Message) Validate() error {
	if m.ID == "" || m.Body == "" {
		return ErrInvalidInput
	}
	if m.Role != RoleUser && m.Role != RoleAssistant {
		return ErrInvalidInput
	}
	if m.Role == RoleUser && len(m.Citations) > 0 {
		return ErrInvalidInput
	}
	return nil
}

// Citation is a structured pointer from an answer into a standard.
// Read-only after creation; owned by exactly one assistant message.
type Citation struct {
	// Standard is the cited standard's name, matched against
	// document display names by the resolver.
	Standard string

	// Clause is a free-text sub-section label. Display only,
	// never validated against document structure.
	Clause string

	// Page is the cited page number, if any.
	Page int
}

// TargetPage returns the page the viewer should open at.
// Absent or non-positive pages default to 1.
func (c Citation) TargetPage() int {
	if c.Page < 1 {
		return 1
	}
	return c.Page
}

// Answer is the structured result of a remote query:
// generated text plus zero or more citations.
type Answer struct {
	// Text is the answer body.
	Text string

	// Citations point into the uploaded standards.
	Citations []Citation
}

// ViewerRequest asks the UI to open the viewer overlay on a
// resolved standard at a specific page.
type ViewerRequest struct {
	// Standard is the resolved document.
	Standard Standard

	// Page is the target page, already defaulted to >= 1.
	Page int
}
