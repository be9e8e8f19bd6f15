package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var addCmd = &cobra.Command{
	Use:   "add [path...]",
	Short: "Upload PDF standards to the library",
	Long: `Uploads one or more PDF files to the local library.

Directories are walked recursively. Non-PDF files are skipped, and
files over the size limit are rejected. Text is extracted at upload
time so questions can be answered without re-reading the files.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runAdd,
}

func init() {
	rootCmd.AddCommand(addCmd)
}

func runAdd(cmd *cobra.Command, args []string) error {
	if libraryService == nil {
		return errors.New("library service not configured")
	}

	results, err := libraryService.IngestAll(cmd.Context(), args)
	if err != nil {
		return fmt.Errorf("upload failed: %w", err)
	}

	var added, skipped, failed int
	for i := range results {
		r := &results[i]
		switch {
		case r.Err != nil:
			failed++
			cmd.Printf("  FAILED  %s: %v\n", r.Path, r.Err)
		case r.Skipped:
			skipped++
		default:
			added++
			cmd.Printf("  added   %s (%s)\n", r.Standard.Name, formatBytes(r.Standard.Size))
		}
	}

	cmd.Printf("\n%d added, %d skipped, %d failed\n", added, skipped, failed)
	if failed > 0 {
		return fmt.Errorf("%d of %d files failed", failed, len(results))
	}
	return nil
}
