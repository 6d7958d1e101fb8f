package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/xolan/homework/internal/cli"
	"github.com/xolan/homework/internal/day"
	"github.com/xolan/homework/internal/filter"
	"github.com/xolan/homework/internal/storage"
)

var (
	showDayFlag    string
	showSearchFlag string
)

// showCmd represents the show command
var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Print saved tasks grouped by day",
	Long: `Print the tasks in the task file grouped by day, in board order
(Saturday first, Misc last).

Examples:
  homework show                 All days
  homework show --day monday    Only Monday
  homework show -s chapter      Tasks mentioning "chapter"
  homework show -o old.json     Another task file`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		showTasks(outputFlag, showDayFlag, showSearchFlag)
	},
}

func init() {
	rootCmd.AddCommand(showCmd)
	showCmd.Flags().StringVarP(&showDayFlag, "day", "d", "", "only show this day (e.g. Monday)")
	showCmd.Flags().StringVarP(&showSearchFlag, "search", "s", "", "only show tasks whose title or description contains this text")
}

// showTasks prints the task file, optionally limited to one day and to
// tasks containing keyword.
func showTasks(output, dayFilter, keyword string) {
	days := day.All()
	f := filter.NewFilter(keyword, nil)
	if dayFilter != "" {
		d, err := day.Parse(strings.TrimSpace(dayFilter))
		if err != nil {
			_, _ = fmt.Fprintf(deps.Stderr, "Error: Invalid day '%s'\n", dayFilter)
			_, _ = fmt.Fprintf(deps.Stderr, "Hint: Valid days are %s\n", strings.Join(day.Labels(), ", "))
			deps.Exit(1)
			return
		}
		days = []day.Day{d}
		f.Days = days
	}

	cfg, ok := loadConfig()
	if !ok {
		return
	}

	_, path, ok := taskFile(cfg, output)
	if !ok {
		return
	}

	tasks, err := storage.ReadTasks(path)
	if err != nil {
		_, _ = fmt.Fprintln(deps.Stderr, "Error: Failed to read tasks")
		_, _ = fmt.Fprintf(deps.Stderr, "Details: %v\n", err)
		_, _ = fmt.Fprintln(deps.Stderr, "Hint: Run 'homework validate' to find the broken records")
		deps.Exit(1)
		return
	}

	if len(tasks) == 0 {
		_, _ = fmt.Fprintf(deps.Stdout, "No tasks found in %s\n", path)
		return
	}

	tasks = filter.FilterTasks(tasks, f)
	if len(tasks) == 0 {
		_, _ = fmt.Fprintf(deps.Stdout, "No tasks match the filter in %s\n", path)
		return
	}

	grouped := cli.GroupByDay(tasks)

	_, _ = fmt.Fprintf(deps.Stdout, "Tasks in %s:\n", path)
	_, _ = fmt.Fprintln(deps.Stdout, strings.Repeat("=", 50))

	shown := 0
	for _, d := range days {
		_, _ = fmt.Fprintln(deps.Stdout, cli.FormatDayHeading(d))
		if len(grouped[d]) == 0 {
			_, _ = fmt.Fprintln(deps.Stdout, "  (no tasks)")
			continue
		}
		for i, t := range grouped[d] {
			_, _ = fmt.Fprintf(deps.Stdout, "  %s\n", indent(cli.FormatTask(i+1, t), "  "))
			shown++
		}
	}

	_, _ = fmt.Fprintln(deps.Stdout, strings.Repeat("=", 50))
	_, _ = fmt.Fprintf(deps.Stdout, "Total: %d %s\n", shown, cli.Pluralize("task", shown))
}

// indent prefixes every line after the first with prefix
func indent(s, prefix string) string {
	return strings.ReplaceAll(s, "\n", "\n"+prefix)
}
