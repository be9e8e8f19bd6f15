package llm

import (
	"context"
	"fmt"

	"golang.org/x/time/rate"

	"github.com/custodia-labs/clauser-cli/internal/core/domain"
	"github.com/custodia-labs/clauser-cli/internal/core/ports/driven"
)

// Ensure the decorator implements the interface.
var _ driven.QueryClient = (*RateLimitedClient)(nil)

// RateLimitedClient wraps a query client with a token-bucket limiter
// so bursts of questions do not hammer the provider.
type RateLimitedClient struct {
	inner   driven.QueryClient
	limiter *rate.Limiter
}

// RateLimited wraps client so Ask calls wait on the limiter.
func RateLimited(client driven.QueryClient, rps float64, burst int) *RateLimitedClient {
	return &RateLimitedClient{
		inner:   client,
		limiter: rate.NewLimiter(rate.Limit(rps), burst),
	}
}

// Ask waits for limiter capacity, then delegates.
func (c *RateLimitedClient) Ask(ctx context.Context, question string, standards []domain.Standard) (*domain.Answer, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limit wait: %w", err)
	}
	return c.inner.Ask(ctx, question, standards)
}

// ModelName delegates to the wrapped client.
func (c *RateLimitedClient) ModelName() string {
	return c.inner.ModelName()
}

// Ping delegates to the wrapped client without consuming a token.
func (c *RateLimitedClient) Ping(ctx context.Context) error {
	return c.inner.Ping(ctx)
}

// Close delegates to the wrapped client.
func (c *RateLimitedClient) Close() error {
	return c.inner.Close()
}
