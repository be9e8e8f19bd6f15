package domain

const unknownDescription = "Unknown"

// AIProvider identifies the remote question-answering provider.
type AIProvider string

// Available AI providers.
const (
	// AIProviderOpenAI is OpenAI cloud API.
	AIProviderOpenAI AIProvider = "openai"

	// AIProviderAnthropic is Anthropic cloud API.
	AIProviderAnthropic AIProvider = "anthropic"

	// AIProviderOllama is a local Ollama instance.
	AIProviderOllama AIProvider = "ollama"
)

// IsValid returns true if the AI provider is recognised.
func (p AIProvider) IsValid() bool {
	switch p {
	case AIProviderOpenAI, AIProviderAnthropic, AIProviderOllama:
		return true
	default:
		return false
	}
}

// RequiresAPIKey returns true if this provider needs an API key.
func (p AIProvider) RequiresAPIKey() bool {
	return p == AIProviderOpenAI || p == AIProviderAnthropic
}

// String returns the string representation.
func (p AIProvider) String() string {
	return string(p)
}

// Description returns a human-readable description of the provider.
func (p AIProvider) Description() string {
	switch p {
	case AIProviderOpenAI:
		return "OpenAI (cloud)"
	case AIProviderAnthropic:
		return "Anthropic (cloud)"
	case AIProviderOllama:
		return "Ollama (local)"
	default:
		return unknownDescription
	}
}

// AllAIProviders returns every recognised provider, in display order.
func AllAIProviders() []AIProvider {
	return []AIProvider{AIProviderOpenAI, AIProviderAnthropic, AIProviderOllama}
}

// DefaultSearchURL is the template for the "search online" action.
// %s is replaced with the URL-encoded question.
const DefaultSearchURL = "https://www.google.com/search?q=%s"

// Settings holds user-facing configuration.
type Settings struct {
	// Provider selects the question-answering backend.
	Provider AIProvider

	// Model overrides the provider's default model when non-empty.
	Model string

	// BaseURL overrides the provider's API endpoint when non-empty.
	BaseURL string

	// APIKeys maps a provider name to its credential.
	APIKeys map[string]string

	// InboxDir, when non-empty, is watched for dropped PDFs to auto-ingest.
	InboxDir string

	// SearchURL is the online-search template. Defaults to DefaultSearchURL.
	SearchURL string
}

// DefaultSettings returns the settings used before any configuration.
func DefaultSettings() Settings {
	return Settings{
		Provider:  AIProviderOpenAI,
		APIKeys:   make(map[string]string),
		SearchURL: DefaultSearchURL,
	}
}

// APIKey returns the credential for the configured provider, if any.
func (s Settings) APIKey() string {
	return s.APIKeys[s.Provider.String()]
}

// Validate checks the settings are usable.
func (s Settings) Validate() error {
	if !s.Provider.IsValid() {
		return ErrInvalidInput
	}
	return nil
}
