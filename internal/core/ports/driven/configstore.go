package driven

import "github.com/custodia-labs/clauser-cli/internal/core/domain"

// ConfigStore persists user settings between runs.
type ConfigStore interface {
	// Load returns the stored settings, or defaults when nothing is stored.
	Load() (domain.Settings, error)

	// Save durably stores the settings.
	Save(settings domain.Settings) error
}
