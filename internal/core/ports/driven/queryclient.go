package driven

import (
	"context"

	"github.com/custodia-labs/clauser-cli/internal/core/domain"
)

// QueryClient answers natural-language questions about uploaded standards.
// This is an optional service - when nil, asking is disabled.
//
// Implementations may include:
//   - OpenAI (GPT-4 family)
//   - Anthropic (Claude)
//   - Ollama (local models)
//
// Failure modes: domain.ErrNoCredential when no API key is configured,
// domain.ErrMalformedAnswer when the response cannot be parsed, and a
// wrapped transport error otherwise.
type QueryClient interface {
	// Ask sends the question with the full set of standard texts as
	// context and returns the structured answer with citations.
	Ask(ctx context.Context, question string, standards []domain.Standard) (*domain.Answer, error)

	// ModelName returns the name of the model being used.
	ModelName() string

	// Ping validates the service is reachable with a lightweight request.
	Ping(ctx context.Context) error

	// Close releases resources.
	Close() error
}
