package storage

import (
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/xolan/homework/internal/day"
	"github.com/xolan/homework/internal/task"
)

func TestValidate_MissingFile(t *testing.T) {
	health, err := Validate(filepath.Join(t.TempDir(), "missing.json"))
	if err != nil {
		t.Fatalf("Validate() returned unexpected error: %v", err)
	}
	if health.TotalRecords != 0 || health.ValidRecords != 0 || health.InvalidRecords != 0 {
		t.Errorf("Validate() on missing file = %+v, expected empty", health)
	}
	if health.Warnings == nil {
		t.Error("Warnings should be an empty slice, not nil")
	}
}

func TestValidate_WrittenFileIsHealthy(t *testing.T) {
	tmpFile := createTempFile(t, "")

	var tasks []task.Task
	for _, d := range day.All() {
		tasks = append(tasks, task.Task{Day: d, Title: d.Label(), Description: "a\nb", Date: testDate()})
	}
	if err := WriteTasks(tmpFile, tasks); err != nil {
		t.Fatalf("WriteTasks() returned unexpected error: %v", err)
	}

	health, err := Validate(tmpFile)
	if err != nil {
		t.Fatalf("Validate() returned unexpected error: %v", err)
	}
	if health.TotalRecords != day.Count {
		t.Errorf("TotalRecords = %d, expected %d", health.TotalRecords, day.Count)
	}
	if health.ValidRecords != day.Count {
		t.Errorf("ValidRecords = %d, expected %d", health.ValidRecords, day.Count)
	}
	if len(health.Warnings) != 0 {
		t.Errorf("expected no warnings, got %+v", health.Warnings)
	}
}

func TestValidate_EmptyArray(t *testing.T) {
	health, err := ValidateData([]byte("[]\n"))
	if err != nil {
		t.Fatalf("ValidateData() returned unexpected error: %v", err)
	}
	if health.TotalRecords != 0 {
		t.Errorf("TotalRecords = %d, expected 0", health.TotalRecords)
	}
}

func TestValidate_RecordProblems(t *testing.T) {
	content := `[
  {"day": "شنبه", "title": "ok", "description": "", "date": "2024-01-06"},
  {"day": "Saturday", "title": "display label", "description": "", "date": "2024-01-06"},
  {"day": "جمعه", "title": "bad date", "description": "", "date": "2024-02-30"},
  {"day": "جمعه", "description": "", "date": "2024-01-05"},
  {"day": "جمعه", "title": 7, "description": "", "date": "2024-01-05"},
  {"day": "جمعه", "title": "extra keys are fine", "description": "", "date": "2024-01-05", "created_at": "2024-01-05T10:00:00Z"},
  "not an object"
]`
	tmpFile := createTempFile(t, content)

	health, err := Validate(tmpFile)
	if err != nil {
		t.Fatalf("Validate() returned unexpected error: %v", err)
	}

	if health.TotalRecords != 7 {
		t.Errorf("TotalRecords = %d, expected 7", health.TotalRecords)
	}
	if health.ValidRecords != 2 {
		t.Errorf("ValidRecords = %d, expected 2", health.ValidRecords)
	}
	if health.InvalidRecords != 5 {
		t.Errorf("InvalidRecords = %d, expected 5", health.InvalidRecords)
	}

	byIndex := map[int][]RecordWarning{}
	for _, w := range health.Warnings {
		byIndex[w.Index] = append(byIndex[w.Index], w)
	}

	for _, idx := range []int{1, 2, 3, 4, 6} {
		if len(byIndex[idx]) == 0 {
			t.Errorf("expected a warning for record %d", idx)
		}
	}
	for _, idx := range []int{0, 5} {
		if len(byIndex[idx]) != 0 {
			t.Errorf("record %d should be valid, got %+v", idx, byIndex[idx])
		}
	}

	if ws := byIndex[1]; len(ws) > 0 && ws[0].Path != "/day" {
		t.Errorf("record 1 warning path = %q, expected %q", ws[0].Path, "/day")
	}
	if ws := byIndex[2]; len(ws) > 0 && ws[0].Path != "/date" {
		t.Errorf("record 2 warning path = %q, expected %q", ws[0].Path, "/date")
	}
	if ws := byIndex[3]; len(ws) > 0 && !strings.Contains(ws[0].Message, "title") {
		t.Errorf("record 3 warning should mention title, got %q", ws[0].Message)
	}
}

func TestValidate_NotAnArray(t *testing.T) {
	tmpFile := createTempFile(t, `{"tasks": []}`)

	_, err := Validate(tmpFile)
	if !errors.Is(err, ErrNotArray) {
		t.Errorf("Validate() error = %v, expected ErrNotArray", err)
	}
}

func TestValidate_NotJSON(t *testing.T) {
	tmpFile := createTempFile(t, `[{"day":`)

	_, err := Validate(tmpFile)
	if err == nil {
		t.Fatal("Validate() expected error for truncated JSON")
	}
	if errors.Is(err, ErrNotArray) {
		t.Errorf("truncated JSON should be a decode error, got %v", err)
	}
}

func TestTaskSchemaDocument_DayEnum(t *testing.T) {
	doc := taskSchemaDocument()
	props := doc["properties"].(map[string]any)
	dayProp := props["day"].(map[string]any)
	enum := dayProp["enum"].([]string)

	if len(enum) != day.Count {
		t.Fatalf("day enum has %d values, expected %d", len(enum), day.Count)
	}
	for i, d := range day.All() {
		if enum[i] != d.Key() {
			t.Errorf("enum[%d] = %q, expected %q", i, enum[i], d.Key())
		}
	}
}
