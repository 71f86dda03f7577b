package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/me/lettings/internal/bulkimport"
)

func newImportCmd() *cobra.Command {
	var (
		dryRun bool
		yes    bool
	)

	cmd := &cobra.Command{
		Use:   "import <file.csv>",
		Short: "Bulk-import apartments from a CSV file (admin)",
		Long: "Parse a flat CSV file (header line required with at least\n" +
			"title,apartmentNumber,communityId) and upload every row. Failed rows\n" +
			"are reported with their source line so they can be fixed and retried.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireAdmin(); err != nil {
				return err
			}

			path := args[0]
			data, err := os.ReadFile(path)
			if err != nil {
				return fmt.Errorf("read file: %w", err)
			}

			doc, err := bulkimport.Parse(string(data))
			if err != nil {
				return fmt.Errorf("parse %s: %w", path, err)
			}
			if err := doc.Validate(); err != nil {
				return fmt.Errorf("validate %s: %w", path, err)
			}

			fmt.Printf("File:    %s (%s)\n", path, humanize.Bytes(uint64(len(data))))
			fmt.Printf("Rows:    %s\n", humanize.Comma(int64(len(doc.Rows))))
			fmt.Printf("Columns: %s\n", strings.Join(doc.Headers, ", "))

			if dryRun {
				printPreview(doc)
				return nil
			}

			if !yes && !confirm(fmt.Sprintf("Upload %s apartments? This cannot be undone.", humanize.Comma(int64(len(doc.Rows))))) {
				fmt.Println("Aborted.")
				return nil
			}

			uploader := bulkimport.NewUploader(client.Apartments, logger)
			uploader.OnProgress(func(p bulkimport.Progress) {
				fmt.Printf("Progress: %d/%d success, %d failed\n", p.Succeeded, p.Total, p.Failed)
			})

			result, err := uploader.Upload(cmd.Context(), doc)
			if err != nil {
				return fmt.Errorf("upload: %w", err)
			}

			if result.Failed == 0 {
				fmt.Printf("All %s apartments uploaded successfully\n", humanize.Comma(int64(result.Succeeded)))
				return nil
			}

			fmt.Printf("\n%d succeeded, %d failed:\n\n", result.Succeeded, result.Failed)
			printFailures(doc, result.Failures)
			return fmt.Errorf("%d row(s) failed to upload", result.Failed)
		},
	}

	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Parse and preview without uploading")
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Skip the confirmation prompt")
	return cmd
}

// printPreview shows the first few rows the way the parser saw them.
func printPreview(doc *bulkimport.Document) {
	const previewRows = 5

	fmt.Println("\nPreview:")
	fmt.Println("  " + strings.Join(doc.Headers, " | "))
	for i, row := range doc.Rows {
		if i >= previewRows {
			fmt.Printf("  ... and %d more row(s)\n", len(doc.Rows)-previewRows)
			break
		}
		cells := make([]string, len(doc.Headers))
		for j, h := range doc.Headers {
			cells[j] = row[h]
		}
		fmt.Println("  " + strings.Join(cells, " | "))
	}
}

// printFailures renders the failure table: row number back in the source
// file, the raw cells, and the backend's message.
func printFailures(doc *bulkimport.Document, failures []bulkimport.RowFailure) {
	fmt.Printf("%-6s  %-40s  %s\n", "ROW", "DATA", "ERROR")
	fmt.Printf("%-6s  %-40s  %s\n", "---", "----", "-----")
	for _, f := range failures {
		cells := make([]string, len(doc.Headers))
		for j, h := range doc.Headers {
			cells[j] = f.Row[h]
		}
		data := strings.Join(cells, ",")
		if len(data) > 40 {
			data = data[:37] + "..."
		}
		// Index is zero-based over data rows; +2 restores the source line
		// number (header line plus one-based counting).
		fmt.Printf("%-6d  %-40s  %s\n", f.Index+2, data, f.Message)
	}
}

func confirm(prompt string) bool {
	fmt.Printf("%s [y/N]: ", prompt)
	reader := bufio.NewReader(os.Stdin)
	line, err := reader.ReadString('\n')
	if err != nil {
		return false
	}
	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "y" || answer == "yes"
}
