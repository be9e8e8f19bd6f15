package cli

import (
	"fmt"
	"os"
	"runtime/debug"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/clauser-cli/internal/adapters/driving/tui"
)

// tuiCmd represents the tui command.
var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch the interactive terminal UI",
	Long: `Launch the interactive terminal user interface for Clauser.

The TUI shows the conversation with your standards, the library of
uploaded documents, and a built-in viewer for opening citations.

Controls:
  enter    - Ask the typed question
  ctrl+o   - Open a citation in the viewer
  ctrl+l   - Toggle the library view
  ctrl+s   - Search the last question online
  ?        - Help
  ctrl+c   - Quit`,
	RunE: runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(cmd *cobra.Command, _ []string) error {
	// Add panic recovery to get stack traces
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "Panic in TUI: %v\n", r)
			fmt.Fprintf(os.Stderr, "Stack trace:\n%s\n", debug.Stack())
		}
	}()

	ports := tui.NewPorts(libraryService, chatService, documentDecoder)

	if err := tui.Run(cmd.Context(), ports); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}
	return nil
}
