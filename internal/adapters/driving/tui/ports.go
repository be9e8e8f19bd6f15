package tui

import (
	"github.com/custodia-labs/clauser-cli/internal/core/ports/driven"
	"github.com/custodia-labs/clauser-cli/internal/core/ports/driving"
)

// Ports aggregates all port interfaces required by the TUI.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Library manages the uploaded standards.
	Library driving.LibraryService

	// Chat orchestrates the question/answer conversation.
	Chat driving.ChatService

	// Decoder opens documents for the viewer overlay. Optional: when
	// nil, citations cannot open the viewer.
	Decoder driven.DocumentDecoder
}

// NewPorts creates a new Ports aggregate with the given services.
func NewPorts(library driving.LibraryService, chat driving.ChatService, decoder driven.DocumentDecoder) *Ports {
	return &Ports{
		Library: library,
		Chat:    chat,
		Decoder: decoder,
	}
}

// Validate ensures all required ports are set.
// Returns an error if any required port is nil.
func (p *Ports) Validate() error {
	if p.Library == nil {
		return ErrMissingLibraryService
	}
	if p.Chat == nil {
		return ErrMissingChatService
	}
	return nil
}
