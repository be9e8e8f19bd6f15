package cli

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/clauser-cli/internal/core/domain"
)

var askJSON bool

var askCmd = &cobra.Command{
	Use:   "ask [question]",
	Short: "Ask a one-off question about your standards",
	Long: `Sends a question to the configured AI provider with all uploaded
standards as context, and prints the answer with its citations.

The question and answer are appended to the conversation history, the
same transcript the interactive UI shows.`,
	Args: cobra.ExactArgs(1),
	RunE: runAsk,
}

func init() {
	askCmd.Flags().BoolVar(&askJSON, "json", false, "output the answer as JSON")
	rootCmd.AddCommand(askCmd)
}

func runAsk(cmd *cobra.Command, args []string) error {
	if chatService == nil {
		return errors.New("chat service not configured")
	}

	reply, err := chatService.Ask(cmd.Context(), args[0])
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNoStandards):
			return errors.New("no standards uploaded; use 'clauser add' first")
		case errors.Is(err, domain.ErrNoCredential):
			return errors.New("no API key configured; run 'clauser config provider'")
		default:
			return fmt.Errorf("ask failed: %w", err)
		}
	}

	if askJSON {
		data, err := json.MarshalIndent(reply, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal answer: %w", err)
		}
		cmd.Println(string(data))
		return nil
	}

	cmd.Println(reply.Body)
	if len(reply.Citations) > 0 {
		cmd.Println()
		cmd.Println("Citations:")
		for i, c := range reply.Citations {
			cmd.Printf("  [%d] %s", i+1, c.Standard)
			if c.Clause != "" {
				cmd.Printf(", clause %s", c.Clause)
			}
			if c.Page > 0 {
				cmd.Printf(", p.%d", c.Page)
			}
			cmd.Println()
		}
	}
	return nil
}
