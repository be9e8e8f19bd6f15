package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/clauser-cli/internal/core/domain"
)

var standardCmd = &cobra.Command{
	Use:   "standard",
	Short: "Manage uploaded standards",
	Long:  `List and remove the PDF standards stored in the local library.`,
}

var standardListCmd = &cobra.Command{
	Use:   "list",
	Short: "List uploaded standards",
	RunE:  runStandardList,
}

var standardRemoveCmd = &cobra.Command{
	Use:   "remove [id]",
	Short: "Remove a standard from the library",
	Args:  cobra.ExactArgs(1),
	RunE:  runStandardRemove,
}

func init() {
	standardCmd.AddCommand(standardListCmd)
	standardCmd.AddCommand(standardRemoveCmd)
	rootCmd.AddCommand(standardCmd)
}

func runStandardList(cmd *cobra.Command, _ []string) error {
	if libraryService == nil {
		return errors.New("library service not configured")
	}

	standards, err := libraryService.List(cmd.Context())
	if err != nil {
		return fmt.Errorf("failed to list standards: %w", err)
	}

	if len(standards) == 0 {
		cmd.Println("No standards uploaded. Use 'clauser add <file.pdf>' to upload.")
		return nil
	}

	cmd.Println("Uploaded standards:")
	cmd.Println()
	for i := range standards {
		cmd.Printf("  %s\n", standards[i].ID)
		cmd.Printf("    Name: %s\n", standards[i].Name)
		cmd.Printf("    Size: %s\n", formatBytes(standards[i].Size))
		cmd.Printf("    Uploaded: %s\n", standards[i].UploadedAt.Format("2006-01-02 15:04"))
		cmd.Println()
	}

	cmd.Printf("Total: %d standards\n", len(standards))
	return nil
}

func runStandardRemove(cmd *cobra.Command, args []string) error {
	if libraryService == nil {
		return errors.New("library service not configured")
	}

	id := args[0]
	if err := libraryService.Remove(cmd.Context(), id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return fmt.Errorf("no standard with ID %s", id)
		}
		return fmt.Errorf("failed to remove standard: %w", err)
	}

	cmd.Printf("Removed %s\n", id)
	return nil
}

func formatBytes(size int64) string {
	switch {
	case size >= 1<<20:
		return fmt.Sprintf("%.1f MB", float64(size)/(1<<20))
	case size >= 1<<10:
		return fmt.Sprintf("%.1f KB", float64(size)/(1<<10))
	default:
		return fmt.Sprintf("%d B", size)
	}
}
