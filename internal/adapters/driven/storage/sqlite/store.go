package sqlite

import (
	"context"
	"database/sql"
	"embed"
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/custodia-labs/clauser-cli/internal/adapters/driven/storage/sqlite/migrations"
	"github.com/custodia-labs/clauser-cli/internal/core/domain"
	"github.com/custodia-labs/clauser-cli/internal/core/ports/driven"
)

// Store is a unified SQLite-based storage that provides access to
// the standard and message store interfaces through wrapper types.
type Store struct {
	db   *sql.DB
	path string
}

// NewStore creates a new SQLite store at the specified data directory.
// If dataDir is empty, defaults to ~/.clauser/data/library.db.
func NewStore(dataDir string) (*Store, error) {
	if dataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		dataDir = filepath.Join(home, ".clauser", "data")
	}

	// Ensure directory exists
	if err := os.MkdirAll(dataDir, 0700); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	dbPath := filepath.Join(dataDir, "library.db")

	// Open database with WAL mode for better concurrency
	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	s := &Store{
		db:   db,
		path: dbPath,
	}

	// Run migrations
	if err := s.migrate(migrations.FS); err != nil {
		db.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	return s, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Path returns the database file path.
func (s *Store) Path() string {
	return s.path
}

// StandardStore returns a StandardStore interface backed by this store.
func (s *Store) StandardStore() driven.StandardStore {
	return &standardStore{store: s}
}

// MessageStore returns a MessageStore interface backed by this store.
func (s *Store) MessageStore() driven.MessageStore {
	return &messageStore{store: s}
}

// migrate runs all pending migrations.
func (s *Store) migrate(fsys embed.FS) error {
	// Ensure schema_migrations table exists
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version INTEGER PRIMARY KEY,
			applied_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)
	`)
	if err != nil {
		return fmt.Errorf("creating schema_migrations table: %w", err)
	}

	// Get current version
	var currentVersion int
	row := s.db.QueryRow("SELECT COALESCE(MAX(version), 0) FROM schema_migrations")
	if err := row.Scan(&currentVersion); err != nil {
		return fmt.Errorf("getting current version: %w", err)
	}

	// Find all up migrations
	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return fmt.Errorf("reading migrations directory: %w", err)
	}

	// Sort and run migrations
	var upFiles []string
	for _, entry := range entries {
		name := entry.Name()
		if strings.HasSuffix(name, ".up.sql") {
			upFiles = append(upFiles, name)
		}
	}
	sort.Strings(upFiles)

	for _, name := range upFiles {
		// Extract version number (e.g., "001_standards.up.sql" -> 1)
		var version int
		if _, err := fmt.Sscanf(name, "%d_", &version); err != nil {
			continue // Skip files that don't match pattern
		}

		if version <= currentVersion {
			continue // Already applied
		}

		// Read and execute migration
		content, err := fs.ReadFile(fsys, name)
		if err != nil {
			return fmt.Errorf("reading migration %s: %w", name, err)
		}

		if _, err := s.db.Exec(string(content)); err != nil {
			return fmt.Errorf("executing migration %s: %w", name, err)
		}
	}

	return nil
}

// ==================== Standard Store ====================

// standardStore implements driven.StandardStore.
type standardStore struct {
	store *Store
}

var _ driven.StandardStore = (*standardStore)(nil)

// Save stores or updates a standard.
func (s *standardStore) Save(ctx context.Context, std *domain.Standard) error {
	_, err := s.store.db.ExecContext(ctx, `
		INSERT INTO standards (id, name, text, size, data, uploaded_at)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			name = excluded.name,
			text = excluded.text,
			size = excluded.size,
			data = excluded.data,
			uploaded_at = excluded.uploaded_at
	`, std.ID, std.Name, std.Text, std.Size, std.Data, std.UploadedAt)

	if err != nil {
		return fmt.Errorf("saving standard: %w", err)
	}
	return nil
}

// Get retrieves a standard by ID, raw bytes included.
func (s *standardStore) Get(ctx context.Context, id string) (*domain.Standard, error) {
	row := s.store.db.QueryRowContext(ctx, `
		SELECT id, name, text, size, data, uploaded_at
		FROM standards WHERE id = ?
	`, id)

	var std domain.Standard
	if err := row.Scan(&std.ID, &std.Name, &std.Text, &std.Size, &std.Data, &std.UploadedAt); err != nil {
		if err == sql.ErrNoRows {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("scanning standard: %w", err)
	}

	return &std, nil
}

// List returns every stored standard, raw bytes included.
func (s *standardStore) List(ctx context.Context) ([]domain.Standard, error) {
	return s.list(ctx, true)
}

// ListMeta returns every stored standard without raw bytes.
func (s *standardStore) ListMeta(ctx context.Context) ([]domain.Standard, error) {
	return s.list(ctx, false)
}

func (s *standardStore) list(ctx context.Context, withData bool) ([]domain.Standard, error) {
	cols := "id, name, text, size, NULL, uploaded_at"
	if withData {
		cols = "id, name, text, size, data, uploaded_at"
	}

	rows, err := s.store.db.QueryContext(ctx, "SELECT "+cols+" FROM standards")
	if err != nil {
		return nil, fmt.Errorf("querying standards: %w", err)
	}
	defer rows.Close()

	var standards []domain.Standard //nolint:prealloc // size unknown from query
	for rows.Next() {
		var std domain.Standard
		if err := rows.Scan(&std.ID, &std.Name, &std.Text, &std.Size, &std.Data, &std.UploadedAt); err != nil {
			return nil, fmt.Errorf("scanning standard: %w", err)
		}
		standards = append(standards, std)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating standards: %w", err)
	}

	return standards, nil
}

// Delete removes a standard. No-op if absent.
func (s *standardStore) Delete(ctx context.Context, id string) error {
	_, err := s.store.db.ExecContext(ctx, "DELETE FROM standards WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("deleting standard: %w", err)
	}
	return nil
}

// ==================== Message Store ====================

// messageStore implements driven.MessageStore.
type messageStore struct {
	store *Store
}

var _ driven.MessageStore = (*messageStore)(nil)

// Append stores a message, idempotent by ID.
func (s *messageStore) Append(ctx context.Context, msg *domain.Message) error {
	var citationsJSON sql.NullString
	if len(msg.Citations) > 0 {
		data, err := json.Marshal(msg.Citations)
		if err != nil {
			return fmt.Errorf("marshalling citations: %w", err)
		}
		citationsJSON = sql.NullString{String: string(data), Valid: true}
	}

	_, err := s.store.db.ExecContext(ctx, `
		INSERT INTO messages (id, role, body, citations, created_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(id) DO NOTHING
	`, msg.ID, string(msg.Role), msg.Body, citationsJSON, msg.CreatedAt)

	if err != nil {
		return fmt.Errorf("appending message: %w", err)
	}
	return nil
}

// List returns every message in timestamp-ascending order.
func (s *messageStore) List(ctx context.Context) ([]domain.Message, error) {
	rows, err := s.store.db.QueryContext(ctx, `
		SELECT id, role, body, citations, created_at
		FROM messages
		ORDER BY created_at ASC, id ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("querying messages: %w", err)
	}
	defer rows.Close()

	var messages []domain.Message //nolint:prealloc // size unknown from query
	for rows.Next() {
		var msg domain.Message
		var role string
		var citationsJSON sql.NullString
		if err := rows.Scan(&msg.ID, &role, &msg.Body, &citationsJSON, &msg.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning message: %w", err)
		}

		msg.Role = domain.Role(role)
		if citationsJSON.Valid && citationsJSON.String != "" {
			if err := json.Unmarshal([]byte(citationsJSON.String), &msg.Citations); err != nil {
				return nil, fmt.Errorf("unmarshalling citations: %w", err)
			}
		}
		messages = append(messages, msg)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating messages: %w", err)
	}

	return messages, nil
}

// Clear removes all messages.
func (s *messageStore) Clear(ctx context.Context) error {
	_, err := s.store.db.ExecContext(ctx, "DELETE FROM messages")
	if err != nil {
		return fmt.Errorf("clearing messages: %w", err)
	}
	return nil
}
