// Package file provides a TOML-backed settings store in the clauser
// config directory.
package file

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/pelletier/go-toml/v2"

	"github.com/custodia-labs/clauser-cli/internal/core/domain"
	"github.com/custodia-labs/clauser-cli/internal/core/ports/driven"
)

// Ensure ConfigStore implements the interface.
var _ driven.ConfigStore = (*ConfigStore)(nil)

// fileSettings is the on-disk TOML shape.
type fileSettings struct {
	Provider  string            `toml:"provider"`
	Model     string            `toml:"model,omitempty"`
	BaseURL   string            `toml:"base_url,omitempty"`
	APIKeys   map[string]string `toml:"api_keys,omitempty"`
	InboxDir  string            `toml:"inbox_dir,omitempty"`
	SearchURL string            `toml:"search_url,omitempty"`
}

// ConfigStore is a file-based settings store using TOML.
// Settings are stored in a TOML file within the clauser config directory.
type ConfigStore struct {
	mu       sync.Mutex
	filePath string
}

// NewConfigStore creates a new TOML-based config store.
// If configDir is empty, defaults to ~/.clauser/config.toml.
func NewConfigStore(configDir string) (*ConfigStore, error) {
	if configDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		configDir = filepath.Join(home, ".clauser")
	}

	// Ensure directory exists
	if err := os.MkdirAll(configDir, 0700); err != nil {
		return nil, err
	}

	return &ConfigStore{
		filePath: filepath.Join(configDir, "config.toml"),
	}, nil
}

// Load reads settings from the TOML file. A missing file yields the
// defaults, not an error.
func (s *ConfigStore) Load() (domain.Settings, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.filePath)
	if err != nil {
		if os.IsNotExist(err) {
			return domain.DefaultSettings(), nil
		}
		return domain.Settings{}, fmt.Errorf("reading config: %w", err)
	}

	var fs fileSettings
	if err := toml.Unmarshal(data, &fs); err != nil {
		return domain.Settings{}, fmt.Errorf("parsing config: %w", err)
	}

	settings := domain.DefaultSettings()
	if fs.Provider != "" {
		settings.Provider = domain.AIProvider(fs.Provider)
	}
	settings.Model = fs.Model
	settings.BaseURL = fs.BaseURL
	if fs.APIKeys != nil {
		settings.APIKeys = fs.APIKeys
	}
	settings.InboxDir = fs.InboxDir
	if fs.SearchURL != "" {
		settings.SearchURL = fs.SearchURL
	}

	if err := settings.Validate(); err != nil {
		return domain.Settings{}, fmt.Errorf("invalid config: unknown provider %q", fs.Provider)
	}

	return settings, nil
}

// Save writes settings to the TOML file with restricted permissions,
// since API keys live in it.
func (s *ConfigStore) Save(settings domain.Settings) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	fs := fileSettings{
		Provider:  settings.Provider.String(),
		Model:     settings.Model,
		BaseURL:   settings.BaseURL,
		APIKeys:   settings.APIKeys,
		InboxDir:  settings.InboxDir,
		SearchURL: settings.SearchURL,
	}

	data, err := toml.Marshal(fs)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}

	return os.WriteFile(s.filePath, data, 0600)
}

// Path returns the configuration file path.
func (s *ConfigStore) Path() string {
	return s.filePath
}
