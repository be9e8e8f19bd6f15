package mcp

import (
	"github.com/custodia-labs/clauser-cli/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the MCP server.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Library manages the uploaded standards.
	Library driving.LibraryService

	// Chat answers questions against the standards.
	Chat driving.ChatService
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
