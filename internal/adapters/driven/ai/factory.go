// Package ai provides factory functions for creating the query client
// from user settings.
package ai

import (
	"context"
	"fmt"
	"time"

	"github.com/custodia-labs/clauser-cli/internal/adapters/driven/llm"
	anthropicllm "github.com/custodia-labs/clauser-cli/internal/adapters/driven/llm/anthropic"
	ollamallm "github.com/custodia-labs/clauser-cli/internal/adapters/driven/llm/ollama"
	openaillm "github.com/custodia-labs/clauser-cli/internal/adapters/driven/llm/openai"
	"github.com/custodia-labs/clauser-cli/internal/core/domain"
	"github.com/custodia-labs/clauser-cli/internal/core/ports/driven"
)

// pingTimeout is the maximum time to wait for service connectivity validation.
const pingTimeout = 5 * time.Second

// Cloud providers are rate-limited so repeated questions do not burn
// through quota. Ollama runs locally and is left unthrottled.
const (
	cloudRequestsPerSecond = 0.5
	cloudBurst             = 2
)

// CreateQueryClient creates the appropriate query client based on settings.
// Returns nil (no error) when the provider needs an API key that is not
// configured: asking is simply disabled until the user adds one.
func CreateQueryClient(settings domain.Settings) (driven.QueryClient, error) {
	if settings.Provider.RequiresAPIKey() && settings.APIKey() == "" {
		return nil, nil
	}

	switch settings.Provider {
	case domain.AIProviderOllama:
		return ollamallm.NewQueryClient(ollamallm.Config{
			BaseURL: settings.BaseURL,
			Model:   settings.Model,
		}), nil

	case domain.AIProviderOpenAI:
		client, err := openaillm.NewQueryClient(openaillm.Config{
			APIKey:  settings.APIKey(),
			BaseURL: settings.BaseURL,
			Model:   settings.Model,
		})
		if err != nil {
			return nil, err
		}
		return llm.RateLimited(client, cloudRequestsPerSecond, cloudBurst), nil

	case domain.AIProviderAnthropic:
		client, err := anthropicllm.NewQueryClient(anthropicllm.Config{
			APIKey:  settings.APIKey(),
			BaseURL: settings.BaseURL,
			Model:   settings.Model,
		})
		if err != nil {
			return nil, err
		}
		return llm.RateLimited(client, cloudRequestsPerSecond, cloudBurst), nil

	default:
		return nil, fmt.Errorf("unsupported provider: %s", settings.Provider)
	}
}

// ValidateConfig validates a provider configuration by creating a client
// and pinging it. This is intended for use when the user changes settings,
// to catch bad credentials on configuration rather than on first question.
func ValidateConfig(settings domain.Settings) error {
	if settings.Provider.RequiresAPIKey() && settings.APIKey() == "" {
		return fmt.Errorf("%w: %s requires an API key", domain.ErrNoCredential, settings.Provider)
	}

	client, err := CreateQueryClient(settings)
	if err != nil {
		return err
	}
	if client == nil {
		return nil
	}
	defer client.Close()

	ctx, cancel := context.WithTimeout(context.Background(), pingTimeout)
	defer cancel()
	return client.Ping(ctx)
}
