package cli

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/custodia-labs/clauser-cli/internal/adapters/driven/ai"
	"github.com/custodia-labs/clauser-cli/internal/core/domain"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage application settings",
	Long: `View and configure the AI provider, inbox directory and other options.

Use subcommands to change specific settings.`,
	RunE: runConfigShow,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current settings",
	RunE:  runConfigShow,
}

var configProviderCmd = &cobra.Command{
	Use:   "provider",
	Short: "Configure the AI provider",
	Long: `Select the question-answering provider and its credential.

Available providers:
  openai    - OpenAI cloud API (requires API key)
  anthropic - Anthropic cloud API (requires API key)
  ollama    - Local Ollama instance (no key needed)`,
	RunE: runConfigProvider,
}

var configInboxCmd = &cobra.Command{
	Use:   "inbox [dir]",
	Short: "Set the watched inbox directory",
	Long: `Sets the directory watched for dropped PDF files.

Any PDF placed in the inbox is uploaded automatically while clauser is
running. Pass an empty string to disable watching.`,
	Args: cobra.ExactArgs(1),
	RunE: runConfigInbox,
}

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configProviderCmd)
	configCmd.AddCommand(configInboxCmd)
	rootCmd.AddCommand(configCmd)
}

func runConfigShow(cmd *cobra.Command, _ []string) error {
	if configStore == nil {
		return errors.New("config store not configured")
	}

	settings, err := configStore.Load()
	if err != nil {
		return fmt.Errorf("failed to load settings: %w", err)
	}

	cmd.Println("Current Settings")
	cmd.Println("================")
	cmd.Println()

	cmd.Println("[Provider]")
	cmd.Printf("  Provider: %s\n", settings.Provider.Description())
	if settings.Model != "" {
		cmd.Printf("  Model: %s\n", settings.Model)
	} else {
		cmd.Printf("  Model: (provider default)\n")
	}
	if settings.BaseURL != "" {
		cmd.Printf("  Base URL: %s\n", settings.BaseURL)
	}
	if settings.Provider.RequiresAPIKey() {
		if settings.APIKey() != "" {
			cmd.Printf("  API Key: %s\n", maskAPIKey(settings.APIKey()))
		} else {
			cmd.Printf("  API Key: (not set)\n")
		}
	}
	cmd.Println()

	cmd.Println("[Inbox]")
	if settings.InboxDir != "" {
		cmd.Printf("  Directory: %s\n", settings.InboxDir)
	} else {
		cmd.Printf("  Directory: (disabled)\n")
	}
	cmd.Println()

	if err := ai.ValidateConfig(settings); err != nil {
		cmd.Printf("Warning: %v\n", err)
		cmd.Println("Run 'clauser config provider' to fix configuration issues.")
	} else {
		cmd.Println("Configuration is valid.")
	}

	return nil
}

func runConfigProvider(cmd *cobra.Command, _ []string) error {
	if configStore == nil {
		return errors.New("config store not configured")
	}

	settings, err := configStore.Load()
	if err != nil {
		return fmt.Errorf("failed to load settings: %w", err)
	}

	reader := bufio.NewReader(os.Stdin)

	cmd.Println("Select AI Provider")
	providers := domain.AllAIProviders()
	for i, p := range providers {
		cmd.Printf("  %d. %s\n", i+1, p.Description())
	}
	cmd.Print("\nEnter choice [1]: ")
	input := readLine(reader)
	idx := parseChoice(input, len(providers), 1)
	selected := providers[idx-1]

	cmd.Print("Enter model name (blank for provider default): ")
	model := readLine(reader)

	var apiKey string
	if selected.RequiresAPIKey() {
		cmd.Print("Enter API key: ")
		apiKey = readPassword()
		cmd.Println()
		if apiKey == "" {
			return errors.New("API key is required for this provider")
		}
	}

	settings.Provider = selected
	settings.Model = model
	if settings.APIKeys == nil {
		settings.APIKeys = make(map[string]string)
	}
	if apiKey != "" {
		settings.APIKeys[selected.String()] = apiKey
	}

	if err := configStore.Save(settings); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}

	cmd.Print("Validating configuration... ")
	if err := ai.ValidateConfig(settings); err != nil {
		cmd.Printf("FAILED: %v\n", err)
		return fmt.Errorf("provider validation failed: %w", err)
	}
	cmd.Println("OK")

	cmd.Printf("Provider configured: %s\n", selected.Description())
	return nil
}

func runConfigInbox(cmd *cobra.Command, args []string) error {
	if configStore == nil {
		return errors.New("config store not configured")
	}

	settings, err := configStore.Load()
	if err != nil {
		return fmt.Errorf("failed to load settings: %w", err)
	}

	settings.InboxDir = args[0]
	if err := configStore.Save(settings); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}

	if settings.InboxDir == "" {
		cmd.Println("Inbox watching disabled.")
	} else {
		cmd.Printf("Inbox directory set to %s\n", settings.InboxDir)
	}
	return nil
}

// Helper functions.

//nolint:errcheck // CLI helper, error ignored for UX
func readLine(reader *bufio.Reader) string {
	input, _ := reader.ReadString('\n')
	return strings.TrimSpace(input)
}

func parseChoice(input string, maxVal, defaultVal int) int {
	if input == "" {
		return defaultVal
	}
	val, err := strconv.Atoi(input)
	if err != nil || val < 1 || val > maxVal {
		return defaultVal
	}
	return val
}

//nolint:errcheck // CLI helper, error ignored for UX
func readPassword() string {
	// Try to read password without echo
	if term.IsTerminal(int(os.Stdin.Fd())) {
		password, err := term.ReadPassword(int(os.Stdin.Fd()))
		if err == nil {
			return string(password)
		}
	}
	// Fallback to regular input
	reader := bufio.NewReader(os.Stdin)
	input, _ := reader.ReadString('\n')
	return strings.TrimSpace(input)
}

func maskAPIKey(key string) string {
	if len(key) <= 8 {
		return "****"
	}
	return key[:4] + "..." + key[len(key)-4:]
}
