// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
// These must be provided for the application to function:
//
//   - StandardStore: Standard document persistence
//   - MessageStore: Chat transcript persistence
//   - TextExtractor: PDF to page-tagged text
//   - ConfigStore: Application configuration
//
// # Optional Interfaces
//
// These can be nil - the application degrades gracefully:
//
//   - QueryClient: Remote question answering. Without it, asking is disabled
//     and the library can still be browsed.
//   - DocumentDecoder: Page rendering for the viewer overlay. Without it,
//     citations resolve but cannot be opened.
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter package
package driven
