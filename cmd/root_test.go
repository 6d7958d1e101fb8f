package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/xolan/homework/internal/config"
	"github.com/xolan/homework/internal/storage"
	"github.com/xolan/homework/internal/tui"
)

var fixedNow = time.Date(2024, time.March, 15, 10, 30, 0, 0, time.UTC)

// testDeps creates test dependencies with captured output. The config path
// points at a file in dir that does not exist yet.
func testDeps(dir, stdin string) (*Deps, *bytes.Buffer, *bytes.Buffer, *int) {
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	exitCode := 0
	return &Deps{
		Stdout: stdout,
		Stderr: stderr,
		Stdin:  strings.NewReader(stdin),
		Exit:   func(code int) { exitCode = code },
		Now:    func() time.Time { return fixedNow },
		ConfigPath: func() (string, error) {
			return filepath.Join(dir, "config.toml"), nil
		},
		RunBoard: func(model tui.Model) error { return nil },
	}, stdout, stderr, &exitCode
}

func TestCollectTasks_WritesDataFile(t *testing.T) {
	tmpDir := t.TempDir()
	output := filepath.Join(tmpDir, "data.json")

	d, stdout, stderr, exitCode := testDeps(tmpDir, "Monday\nRead chapter 3\nPages 10-20\nSolve ex 1\n\n\n")
	SetDeps(d)
	defer ResetDeps()

	collectTasks(output, true)

	if *exitCode != 0 {
		t.Fatalf("Expected exit code 0, got %d (stderr: %s)", *exitCode, stderr.String())
	}
	if stderr.Len() > 0 {
		t.Errorf("Unexpected stderr output: %s", stderr.String())
	}

	data, err := os.ReadFile(output)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	expected := "[\n" +
		"  {\n" +
		"    \"day\": \"دوشنبه\",\n" +
		"    \"title\": \"Read chapter 3\",\n" +
		"    \"description\": \"Pages 10-20\\nSolve ex 1\",\n" +
		"    \"date\": \"2024-03-15\"\n" +
		"  }\n" +
		"]\n"
	if string(data) != expected {
		t.Errorf("data.json =\n%s\nexpected\n%s", data, expected)
	}

	out := stdout.String()
	if !strings.Contains(out, "Task for Monday added!") {
		t.Errorf("Expected confirmation in output, got: %s", out)
	}
	if !strings.Contains(out, "All tasks saved to "+output+"!") {
		t.Errorf("Expected save message in output, got: %s", out)
	}
	if !strings.Contains(out, "1 task written") {
		t.Errorf("Expected task count in output, got: %s", out)
	}
}

func TestCollectTasks_NoTasksWritesEmptyArray(t *testing.T) {
	tmpDir := t.TempDir()
	output := filepath.Join(tmpDir, "data.json")
	if err := os.WriteFile(output, []byte(`[{"day":"جمعه","title":"old","description":"","date":"2024-01-01"}]`), 0644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	d, stdout, _, exitCode := testDeps(tmpDir, "\n")
	SetDeps(d)
	defer ResetDeps()

	collectTasks(output, true)

	if *exitCode != 0 {
		t.Fatalf("Expected exit code 0, got %d", *exitCode)
	}
	data, err := os.ReadFile(output)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	if string(data) != "[]\n" {
		t.Errorf("Expected previous contents replaced by [], got %q", data)
	}
	if !strings.Contains(stdout.String(), "0 tasks written") {
		t.Errorf("Expected '0 tasks written', got: %s", stdout.String())
	}
}

func TestCollectTasks_InvalidDayReprompts(t *testing.T) {
	tmpDir := t.TempDir()
	output := filepath.Join(tmpDir, "data.json")

	d, stdout, _, exitCode := testDeps(tmpDir, "Funday\nmisc\nBring scissors\n\n\n")
	SetDeps(d)
	defer ResetDeps()

	collectTasks(output, true)

	if *exitCode != 0 {
		t.Fatalf("Expected exit code 0, got %d", *exitCode)
	}
	if !strings.Contains(stdout.String(), "Invalid day, please try again.") {
		t.Errorf("Expected invalid day message, got: %s", stdout.String())
	}

	tasks, err := storage.ReadTasks(output)
	if err != nil {
		t.Fatalf("ReadTasks() error = %v", err)
	}
	if len(tasks) != 1 {
		t.Fatalf("Expected 1 task, got %d", len(tasks))
	}
	if tasks[0].Title != "Bring scissors" || tasks[0].Description != "" {
		t.Errorf("Unexpected task: %+v", tasks[0])
	}
}

func TestCollectTasks_WriteFailure(t *testing.T) {
	tmpDir := t.TempDir()
	output := filepath.Join(tmpDir, "missing", "data.json")

	d, _, stderr, exitCode := testDeps(tmpDir, "Sunday\nTitle\n\n\n")
	SetDeps(d)
	defer ResetDeps()

	collectTasks(output, true)

	if *exitCode != 1 {
		t.Errorf("Expected exit code 1, got %d", *exitCode)
	}
	errOut := stderr.String()
	if !strings.Contains(errOut, "Error: Failed to save tasks") {
		t.Errorf("Expected save error, got: %s", errOut)
	}
	if !strings.Contains(errOut, "Hint:") {
		t.Errorf("Expected hint, got: %s", errOut)
	}
}

func TestCollectTasks_OutputFromConfig(t *testing.T) {
	tmpDir := t.TempDir()
	output := filepath.Join(tmpDir, "from-config.json")

	cfg := config.DefaultConfig()
	cfg.OutputFile = output
	cfg.Color = false
	if err := config.Save(filepath.Join(tmpDir, "config.toml"), cfg); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	d, _, _, exitCode := testDeps(tmpDir, "Friday\nRest\n\n\n")
	SetDeps(d)
	defer ResetDeps()

	collectTasks("", false)

	if *exitCode != 0 {
		t.Fatalf("Expected exit code 0, got %d", *exitCode)
	}
	tasks, err := storage.ReadTasks(output)
	if err != nil {
		t.Fatalf("ReadTasks() error = %v", err)
	}
	if len(tasks) != 1 {
		t.Errorf("Expected 1 task in configured file, got %d", len(tasks))
	}
}

func TestCollectTasks_BrokenConfig(t *testing.T) {
	tmpDir := t.TempDir()
	if err := os.WriteFile(filepath.Join(tmpDir, "config.toml"), []byte("output_file = [\n"), 0644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	d, stdout, stderr, exitCode := testDeps(tmpDir, "Monday\nTitle\n\n\n")
	SetDeps(d)
	defer ResetDeps()

	collectTasks(filepath.Join(tmpDir, "data.json"), true)

	if *exitCode != 1 {
		t.Errorf("Expected exit code 1, got %d", *exitCode)
	}
	if !strings.Contains(stderr.String(), "Error: Failed to load configuration") {
		t.Errorf("Expected config error, got: %s", stderr.String())
	}
	if stdout.Len() > 0 {
		t.Errorf("Expected no prompts before config error, got: %s", stdout.String())
	}
	if _, err := os.Stat(filepath.Join(tmpDir, "data.json")); !os.IsNotExist(err) {
		t.Error("Expected no task file to be written")
	}
}

func TestLoadConfig_PathErrorUsesDefaults(t *testing.T) {
	tmpDir := t.TempDir()
	d, _, stderr, exitCode := testDeps(tmpDir, "")
	d.ConfigPath = func() (string, error) { return "", os.ErrPermission }
	SetDeps(d)
	defer ResetDeps()

	cfg, ok := loadConfig()
	if !ok {
		t.Fatal("Expected loadConfig to succeed")
	}
	if cfg != config.DefaultConfig() {
		t.Errorf("Expected default config, got %+v", cfg)
	}
	if *exitCode != 0 || stderr.Len() > 0 {
		t.Errorf("Expected silent fallback, got exit %d stderr %q", *exitCode, stderr.String())
	}
}

func TestTaskFile(t *testing.T) {
	tmpDir := t.TempDir()
	d, _, _, _ := testDeps(tmpDir, "")
	SetDeps(d)
	defer ResetDeps()

	cfg := config.DefaultConfig()
	cfg.OutputFile = filepath.Join(tmpDir, "cfg.json")

	name, path, ok := taskFile(cfg, "")
	if !ok || name != cfg.OutputFile || path != cfg.OutputFile {
		t.Errorf("taskFile() = %q, %q, %v; expected config file", name, path, ok)
	}

	flagPath := filepath.Join(tmpDir, "flag.json")
	name, path, ok = taskFile(cfg, flagPath)
	if !ok || name != flagPath || path != flagPath {
		t.Errorf("taskFile() = %q, %q, %v; expected flag to win", name, path, ok)
	}
}

func TestSetVersionInfo(t *testing.T) {
	SetVersionInfo("1.2.3", "abc123", "2024-03-15")
	if rootCmd.Version != "1.2.3" {
		t.Errorf("Expected version 1.2.3, got %s", rootCmd.Version)
	}
}
