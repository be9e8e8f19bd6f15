package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/clauser-cli/internal/core/domain"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Manage the conversation history",
	RunE:  runHistoryShow,
}

var historyShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the conversation history",
	RunE:  runHistoryShow,
}

var historyClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete the conversation history",
	RunE:  runHistoryClear,
}

func init() {
	historyCmd.AddCommand(historyShowCmd)
	historyCmd.AddCommand(historyClearCmd)
	rootCmd.AddCommand(historyCmd)
}

func runHistoryShow(cmd *cobra.Command, _ []string) error {
	if chatService == nil {
		return errors.New("chat service not configured")
	}

	history, err := chatService.History(cmd.Context())
	if err != nil {
		return fmt.Errorf("failed to load history: %w", err)
	}

	if len(history) == 0 {
		cmd.Println("No conversation history.")
		return nil
	}

	for i := range history {
		msg := &history[i]
		who := "You"
		if msg.Role == domain.RoleAssistant {
			who = "Clauser"
		}
		cmd.Printf("[%s] %s\n", msg.CreatedAt.Format("2006-01-02 15:04"), who)
		cmd.Printf("  %s\n", msg.Body)
		for j, c := range msg.Citations {
			cmd.Printf("    [%d] %s", j+1, c.Standard)
			if c.Page > 0 {
				cmd.Printf(", p.%d", c.Page)
			}
			cmd.Println()
		}
		cmd.Println()
	}
	return nil
}

func runHistoryClear(cmd *cobra.Command, _ []string) error {
	if chatService == nil {
		return errors.New("chat service not configured")
	}

	if err := chatService.Clear(cmd.Context()); err != nil {
		return fmt.Errorf("failed to clear history: %w", err)
	}
	cmd.Println("Conversation history cleared.")
	return nil
}
