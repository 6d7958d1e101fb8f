package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/xolan/homework/internal/cli"
	"github.com/xolan/homework/internal/storage"
)

// validateCmd represents the validate command
var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check task file health",
	Long: `Validate the task file and report on its health, including every record
with an unknown day key, a malformed date, or a missing field.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		validateTaskFile(outputFlag)
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

// formatRecordWarning formats a RecordWarning into a single line with the
// 1-based record number, the JSON path and a truncated message.
func formatRecordWarning(w storage.RecordWarning) string {
	location := fmt.Sprintf("Record %d", w.Index+1)
	if w.Path != "" {
		location += " " + w.Path
	}
	return fmt.Sprintf("  %s: %s", location, cli.Truncate(w.Message, 80))
}

// validateTaskFile checks the task file health and reports status
func validateTaskFile(output string) {
	cfg, ok := loadConfig()
	if !ok {
		return
	}

	_, path, ok := taskFile(cfg, output)
	if !ok {
		return
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		_, _ = fmt.Fprintf(deps.Stdout, "Task file: %s\n", path)
		_, _ = fmt.Fprintln(deps.Stdout, "Status: no task file yet (run 'homework' to create one)")
		return
	}

	health, err := storage.Validate(path)
	if err != nil {
		_, _ = fmt.Fprintf(deps.Stderr, "Error: Failed to validate task file: %v\n", err)
		_, _ = fmt.Fprintf(deps.Stderr, "Hint: The file must contain a JSON array: %s\n", path)
		deps.Exit(1)
		return
	}

	_, _ = fmt.Fprintf(deps.Stdout, "Task file: %s\n", path)
	_, _ = fmt.Fprintln(deps.Stdout, strings.Repeat("=", 50))

	_, _ = fmt.Fprintf(deps.Stdout, "Total records:   %d\n", health.TotalRecords)
	_, _ = fmt.Fprintf(deps.Stdout, "Valid records:   %d\n", health.ValidRecords)
	_, _ = fmt.Fprintf(deps.Stdout, "Invalid records: %d\n", health.InvalidRecords)

	if len(health.Warnings) > 0 {
		_, _ = fmt.Fprintln(deps.Stdout, strings.Repeat("=", 50))
		_, _ = fmt.Fprintln(deps.Stdout, "Problems:")
		for _, w := range health.Warnings {
			_, _ = fmt.Fprintln(deps.Stdout, formatRecordWarning(w))
		}
	}

	_, _ = fmt.Fprintln(deps.Stdout, strings.Repeat("=", 50))
	if health.InvalidRecords == 0 {
		_, _ = fmt.Fprintln(deps.Stdout, "Status: ✓ Task file is healthy")
	} else {
		_, _ = fmt.Fprintf(deps.Stderr, "Status: ⚠ Task file has %d invalid %s\n", health.InvalidRecords, cli.Pluralize("record", health.InvalidRecords))
	}
}
