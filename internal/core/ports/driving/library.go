package driving

import (
	"context"

	"github.com/custodia-labs/clauser-cli/internal/core/domain"
)

// IngestResult reports the outcome for one file of an ingestion batch.
type IngestResult struct {
	// Path is the source file path.
	Path string

	// Standard is the stored record, nil when skipped or failed.
	Standard *domain.Standard

	// Skipped is true when the file was rejected for its type.
	// A skipped file is not an error.
	Skipped bool

	// Err is the per-file failure, if any. A failing file does not
	// abort the rest of the batch.
	Err error
}

// LibraryService manages the uploaded standards.
type LibraryService interface {
	// Ingest uploads a single file. Non-PDF names are skipped, oversized
	// files fail validation before any side effect.
	Ingest(ctx context.Context, path string) (*IngestResult, error)

	// IngestAll uploads files and directories. Directories are walked
	// recursively with a bounded depth. One result per file encountered.
	IngestAll(ctx context.Context, paths []string) ([]IngestResult, error)

	// List returns all stored standards without raw bytes.
	List(ctx context.Context) ([]domain.Standard, error)

	// Get returns one standard with raw bytes, for rendering.
	Get(ctx context.Context, id string) (*domain.Standard, error)

	// Remove deletes a standard by ID.
	Remove(ctx context.Context, id string) error
}
