// Command clauser is a local question-answering assistant for PDF
// standards: upload documents, ask questions, and open cited pages.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/custodia-labs/clauser-cli/internal/adapters/driven/ai"
	"github.com/custodia-labs/clauser-cli/internal/adapters/driven/config/file"
	"github.com/custodia-labs/clauser-cli/internal/adapters/driven/pdf"
	"github.com/custodia-labs/clauser-cli/internal/adapters/driven/storage/sqlite"
	"github.com/custodia-labs/clauser-cli/internal/adapters/driven/watch"
	"github.com/custodia-labs/clauser-cli/internal/adapters/driving/cli"
	"github.com/custodia-labs/clauser-cli/internal/core/domain"
	"github.com/custodia-labs/clauser-cli/internal/core/services"
	"github.com/custodia-labs/clauser-cli/internal/logger"
)

// version is overridden at build time via ldflags.
var version = "dev"

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Optional .env for API keys during development.
	_ = godotenv.Load()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	configStore, err := file.NewConfigStore("")
	if err != nil {
		return fmt.Errorf("initialising config: %w", err)
	}

	settings, err := configStore.Load()
	if err != nil {
		return fmt.Errorf("loading settings: %w", err)
	}

	// Environment credentials fill gaps without touching the config file.
	applyEnvCredentials(&settings)

	store, err := sqlite.NewStore("")
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer store.Close() //nolint:errcheck

	queryClient, err := ai.CreateQueryClient(settings)
	if err != nil {
		return fmt.Errorf("creating AI client: %w", err)
	}
	if queryClient != nil {
		defer queryClient.Close() //nolint:errcheck
	}

	libraryService := services.NewLibraryService(store.StandardStore(), pdf.NewExtractor())
	chatService := services.NewChatService(
		store.MessageStore(), store.StandardStore(), queryClient, settings.SearchURL)

	// Watch the inbox for dropped PDFs while any command runs.
	if settings.InboxDir != "" {
		watcher := watch.NewInboxWatcher(settings.InboxDir, libraryService)
		go func() {
			if err := watcher.Run(ctx); err != nil && ctx.Err() == nil {
				logger.Warn("inbox watcher stopped: %v", err)
			}
		}()
	}

	cli.SetVersion(version)
	cli.SetServices(cli.Services{
		Library: libraryService,
		Chat:    chatService,
		Decoder: pdf.NewDecoder(),
		Config:  configStore,
	})

	return cli.Execute(ctx)
}

// applyEnvCredentials overlays provider keys from the environment.
func applyEnvCredentials(settings *domain.Settings) {
	if settings.APIKeys == nil {
		settings.APIKeys = make(map[string]string)
	}
	if key := os.Getenv("OPENAI_API_KEY"); key != "" && settings.APIKeys["openai"] == "" {
		settings.APIKeys["openai"] = key
	}
	if key := os.Getenv("ANTHROPIC_API_KEY"); key != "" && settings.APIKeys["anthropic"] == "" {
		settings.APIKeys["anthropic"] = key
	}
}
