// Package mcp provides an MCP (Model Context Protocol) server adapter for Clauser.
// It enables AI assistants like Claude to ask questions of the local standards library.
package mcp

import "errors"

// ErrMissingLibraryService is returned when the library service is not provided.
var ErrMissingLibraryService = errors.New("mcp: library service is required")

// ErrMissingChatService is returned when the chat service is not provided.
var ErrMissingChatService = errors.New("mcp: chat service is required")
