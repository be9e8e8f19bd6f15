package driven

import (
	"context"

	"github.com/custodia-labs/clauser-cli/internal/core/domain"
)

// MessageStore persists the chat transcript.
// Messages are append-only: no single-item delete, only bulk clear.
type MessageStore interface {
	// Append stores a message. Idempotent by ID; durable before returning.
	Append(ctx context.Context, msg *domain.Message) error

	// List returns every message in timestamp-ascending order.
	List(ctx context.Context) ([]domain.Message, error)

	// Clear removes all messages.
	Clear(ctx context.Context) error
}
