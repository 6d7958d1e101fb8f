package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/xolan/homework/internal/cli"
	"github.com/xolan/homework/internal/collector"
	"github.com/xolan/homework/internal/config"
	"github.com/xolan/homework/internal/storage"
)

var (
	outputFlag  string
	noColorFlag bool
)

var rootCmd = &cobra.Command{
	Use:   "homework",
	Short: "Collect homework tasks into a JSON file",
	Long: `homework asks for homework tasks one by one and writes them to a JSON file
that the class web board reads.

For every task you are asked for:
  day           Saturday, Sunday, Monday, Tuesday, Wednesday, Thursday, Friday or Misc
  title         a single line
  description   any number of lines, finished with an empty line

Press Enter on an empty day prompt to finish. All tasks entered in the session
are then written to data.json (or --output), replacing the previous contents.

Usage:
  homework                      Enter tasks and save them
  homework days                 List day labels and their stored keys
  homework show [--day Monday]  Print the saved tasks grouped by day
  homework show -s chapter      Print only tasks mentioning "chapter"
  homework validate             Check the task file against its schema
  homework board                Browse the saved tasks in a terminal board
  homework config               Show the effective configuration
  homework config init          Write a config file with the defaults`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		collectTasks(outputFlag, noColorFlag)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&outputFlag, "output", "o", "", "task file to write or read (default from config, then data.json)")
	rootCmd.Flags().BoolVar(&noColorFlag, "no-color", false, "disable colored prompts")
}

// SetVersionInfo sets the version information for the CLI
func SetVersionInfo(version, commit, date string) {
	rootCmd.Version = version
	rootCmd.SetVersionTemplate(
		"homework version {{.Version}}\n" +
			"commit: " + commit + "\n" +
			"built: " + date + "\n",
	)
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

// loadConfig loads the config file. A config directory that cannot be
// determined falls back to defaults; a broken config file is fatal.
func loadConfig() (config.Config, bool) {
	configPath, err := deps.ConfigPath()
	if err != nil {
		return config.DefaultConfig(), true
	}

	cfg, err := config.LoadOrDefault(configPath)
	if err != nil {
		_, _ = fmt.Fprintln(deps.Stderr, "Error: Failed to load configuration")
		_, _ = fmt.Fprintf(deps.Stderr, "Details: %v\n", err)
		_, _ = fmt.Fprintf(deps.Stderr, "Hint: Check that your config file is valid TOML format: %s\n", configPath)
		deps.Exit(1)
		return cfg, false
	}
	return cfg, true
}

// taskFile picks the task file name (flag, then config) and resolves it
// against the working directory.
func taskFile(cfg config.Config, output string) (name, path string, ok bool) {
	name = cfg.OutputFile
	if output != "" {
		name = output
	}

	path, err := storage.ResolvePath(name)
	if err != nil {
		_, _ = fmt.Fprintln(deps.Stderr, "Error: Failed to determine task file location")
		_, _ = fmt.Fprintf(deps.Stderr, "Details: %v\n", err)
		_, _ = fmt.Fprintln(deps.Stderr, "Hint: Pass an absolute path with --output")
		deps.Exit(1)
		return name, "", false
	}
	return name, path, true
}

// collectTasks runs the interactive session and writes the collected tasks.
func collectTasks(output string, noColor bool) {
	cfg, ok := loadConfig()
	if !ok {
		return
	}

	name, path, ok := taskFile(cfg, output)
	if !ok {
		return
	}

	styles := cli.StylesFor(cfg.Color && !noColor)

	tasks, err := collector.New(deps.Stdin, deps.Stdout, styles, deps.Now).Run()
	if err != nil {
		_, _ = fmt.Fprintln(deps.Stderr, "Warning: Input stopped unexpectedly, saving the tasks entered so far")
		_, _ = fmt.Fprintf(deps.Stderr, "Details: %v\n", err)
	}

	if err := storage.WriteTasks(path, tasks); err != nil {
		_, _ = fmt.Fprintln(deps.Stderr, "Error: Failed to save tasks")
		_, _ = fmt.Fprintf(deps.Stderr, "Details: %v\n", err)
		_, _ = fmt.Fprintf(deps.Stderr, "Hint: Check that directory exists and is writable: %s\n", path)
		deps.Exit(1)
		return
	}

	_, _ = fmt.Fprintln(deps.Stdout)
	_, _ = fmt.Fprintln(deps.Stdout, styles.Banner.Render(fmt.Sprintf("All tasks saved to %s!", name)))
	_, _ = fmt.Fprintf(deps.Stdout, "%d %s written\n", len(tasks), cli.Pluralize("task", len(tasks)))
}
