package driving

import (
	"context"

	"github.com/custodia-labs/clauser-cli/internal/core/domain"
)

// ChatService orchestrates the question/answer conversation.
type ChatService interface {
	// Ask appends and persists the user message, queries the remote
	// model with all stored standards as context, then appends and
	// persists the assistant message. On remote failure the user
	// message remains and no assistant message is added; there is no
	// automatic retry. Returns domain.ErrNoStandards when the library
	// is empty.
	Ask(ctx context.Context, question string) (*domain.Message, error)

	// History returns the persisted transcript, timestamp-ascending.
	History(ctx context.Context) ([]domain.Message, error)

	// Clear empties the persisted transcript.
	Clear(ctx context.Context) error

	// ActivateCitation resolves a citation against the stored standards
	// and returns the viewer open request. Returns domain.ErrNotFound
	// when no standard matches.
	ActivateCitation(ctx context.Context, c domain.Citation) (*domain.ViewerRequest, error)

	// SearchOnline opens the system browser at the configured search
	// URL with the question URL-encoded. No response is consumed.
	SearchOnline(question string) error

	// ModelName reports the configured model, empty when asking is disabled.
	ModelName() string
}
