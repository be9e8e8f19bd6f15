// Package sqlite provides a unified SQLite-based implementation of driven port interfaces.
//
// This adapter uses modernc.org/sqlite, a pure Go SQLite implementation that requires
// no CGO, enabling easy cross-compilation. It implements both store interfaces
// through a single database connection:
//
//   - StandardStore: Uploaded standard persistence, raw bytes included
//   - MessageStore: Chat transcript persistence
//
// # Schema
//
// The database schema is managed through versioned migrations stored in the
// migrations/ directory. Schema evolution is additive: new migrations add
// collections, existing user data is never destroyed on upgrade.
//
// # Data Location
//
// By default, the database is stored at ~/.clauser/data/library.db
//
// # Thread Safety
//
// All operations are thread-safe. The store uses database-level locking provided
// by SQLite in WAL mode.
package sqlite
