package driven

import (
	"context"

	"github.com/custodia-labs/clauser-cli/internal/core/domain"
)

// StandardStore persists uploaded standards, raw bytes included.
// Backed by SQLite. All operations are safe for concurrent callers;
// the engine serialises conflicting writes.
type StandardStore interface {
	// Save stores or updates a standard by ID. Idempotent; the write is
	// durable before Save returns.
	Save(ctx context.Context, std *domain.Standard) error

	// Get retrieves a standard by ID, raw bytes included.
	// Returns domain.ErrNotFound when absent.
	Get(ctx context.Context, id string) (*domain.Standard, error)

	// List returns every stored standard. Order is unspecified.
	// Raw bytes are included; callers holding many standards in memory
	// should prefer ListMeta.
	List(ctx context.Context) ([]domain.Standard, error)

	// ListMeta returns every stored standard without raw bytes.
	ListMeta(ctx context.Context) ([]domain.Standard, error)

	// Delete removes a standard by ID. No-op if absent.
	Delete(ctx context.Context, id string) error
}
