package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/xolan/homework/internal/day"
)

// daysCmd represents the days command
var daysCmd = &cobra.Command{
	Use:   "days",
	Short: "List the day labels",
	Long: `List the labels accepted at the day prompt, in board order, together with
the key stored in the "day" field of the task file.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		listDays()
	},
}

func init() {
	rootCmd.AddCommand(daysCmd)
}

// listDays prints every day label next to its stored key
func listDays() {
	_, _ = fmt.Fprintln(deps.Stdout, "Day labels:")
	_, _ = fmt.Fprintln(deps.Stdout, strings.Repeat("-", 30))
	for i, d := range day.All() {
		_, _ = fmt.Fprintf(deps.Stdout, "%d. %-10s %s\n", i+1, d.Label(), d.Key())
	}
}
