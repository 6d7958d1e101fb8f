package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/xolan/homework/internal/storage"
	"github.com/xolan/homework/internal/tui"
)

// boardCmd represents the board command
var boardCmd = &cobra.Command{
	Use:   "board",
	Short: "Browse saved tasks in a terminal board",
	Long: `Open a read-only terminal board with one tab per day, like the class web page.

Keyboard shortcuts:
  - Tab/Shift+Tab or arrows: Switch day
  - 1-8: Jump to a day (1 = Saturday, 8 = Misc)
  - j/k or arrows: Move between tasks
  - t: Next color theme
  - ?: Show help
  - q: Quit`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		openBoard(outputFlag)
	},
}

func init() {
	rootCmd.AddCommand(boardCmd)
}

// openBoard loads the task file and runs the board
func openBoard(output string) {
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

	if err := deps.RunBoard(tui.New(tasks, path, cfg.Theme).WithClock(deps.Now)); err != nil {
		_, _ = fmt.Fprintf(deps.Stderr, "Error running board: %v\n", err)
		deps.Exit(1)
	}
}
