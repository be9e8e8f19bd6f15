// Package cli provides the command-line interface for clauser.
// Commands are driving adapters: they call core services and format
// output, holding no business logic themselves.
package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/clauser-cli/internal/core/ports/driven"
	"github.com/custodia-labs/clauser-cli/internal/core/ports/driving"
	"github.com/custodia-labs/clauser-cli/internal/logger"
)

// version is set at build time via ldflags.
var version = "dev"

// Services injected by main before Execute.
var (
	libraryService  driving.LibraryService
	chatService     driving.ChatService
	documentDecoder driven.DocumentDecoder
	configStore     driven.ConfigStore
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "clauser",
	Short: "Ask questions about your PDF standards",
	Long: `Clauser keeps a local library of PDF standards and answers
questions about them with citations back into the documents.

Running clauser without a subcommand starts the interactive terminal UI.`,
	SilenceUsage: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verbose)
	},
	RunE: runTUI,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
}

// Services bundles everything the commands need.
type Services struct {
	Library driving.LibraryService
	Chat    driving.ChatService
	Decoder driven.DocumentDecoder
	Config  driven.ConfigStore
}

// SetServices injects the core services. Must be called before Execute.
func SetServices(s Services) {
	libraryService = s.Library
	chatService = s.Chat
	documentDecoder = s.Decoder
	configStore = s.Config
}

// SetVersion sets the version string shown by the version command.
func SetVersion(v string) {
	if v != "" {
		version = v
	}
}

// Execute runs the root command with the given context.
func Execute(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}
