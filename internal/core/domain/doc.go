// Package domain defines the core business entities for Clauser.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Standard: An uploaded engineering-standard document
//   - Message: A single turn of the chat transcript
//   - Citation: A pointer from an answer into a standard
//   - ViewerSession: The state machine behind the document viewer overlay
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
