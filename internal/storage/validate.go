package storage

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"
	"sync"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"
	"github.com/xolan/homework/internal/day"
)

const taskSchemaURL = "https://homework.local/task.schema.json"

// ErrNotArray is returned by Validate when the file is valid JSON but its
// top-level value is not an array.
var ErrNotArray = errors.New("task file is not a JSON array")

// RecordWarning describes one problem with one record of the task file.
type RecordWarning struct {
	Index   int    // Position of the record in the array (0-indexed)
	Path    string // JSON pointer inside the record, empty for the record itself
	Message string // Description of the problem
}

// FileHealth contains the result of checking a task file.
type FileHealth struct {
	TotalRecords   int             // Number of elements in the array
	ValidRecords   int             // Records that passed every check
	InvalidRecords int             // Records with at least one warning
	Warnings       []RecordWarning // Every problem found, ordered by index
}

var (
	taskSchemaOnce sync.Once
	taskSchema     *jsonschema.Schema
	taskSchemaErr  error
)

// taskSchemaDocument builds the JSON schema for a single record. The day
// enum comes from the day table so the two cannot drift apart.
func taskSchemaDocument() map[string]any {
	return map[string]any{
		"$schema": "https://json-schema.org/draft/2020-12/schema",
		"type":    "object",
		"required": []string{
			"day", "title", "description", "date",
		},
		"properties": map[string]any{
			"day":         map[string]any{"type": "string", "enum": day.Keys()},
			"title":       map[string]any{"type": "string"},
			"description": map[string]any{"type": "string"},
			"date":        map[string]any{"type": "string", "format": "date"},
		},
	}
}

func compiledTaskSchema() (*jsonschema.Schema, error) {
	taskSchemaOnce.Do(func() {
		doc, err := json.Marshal(taskSchemaDocument())
		if err != nil {
			taskSchemaErr = err
			return
		}

		compiler := jsonschema.NewCompiler()
		compiler.AssertFormat = true
		if err := compiler.AddResource(taskSchemaURL, bytes.NewReader(doc)); err != nil {
			taskSchemaErr = fmt.Errorf("add schema: %w", err)
			return
		}

		taskSchema, taskSchemaErr = compiler.Compile(taskSchemaURL)
		if taskSchemaErr != nil {
			taskSchemaErr = fmt.Errorf("compile schema: %w", taskSchemaErr)
		}
	})
	return taskSchema, taskSchemaErr
}

// Validate checks every record of the task file against the record schema.
// Returns an empty FileHealth if the file doesn't exist.
func Validate(filepath string) (FileHealth, error) {
	health := FileHealth{Warnings: []RecordWarning{}}

	data, err := os.ReadFile(filepath)
	if err != nil {
		if os.IsNotExist(err) {
			return health, nil
		}
		return health, err
	}

	return ValidateData(data)
}

// ValidateData is Validate for already loaded file contents.
func ValidateData(data []byte) (FileHealth, error) {
	health := FileHealth{Warnings: []RecordWarning{}}

	schema, err := compiledTaskSchema()
	if err != nil {
		return health, err
	}

	var doc any
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	if err := dec.Decode(&doc); err != nil {
		return health, fmt.Errorf("decode task file: %w", err)
	}

	records, ok := doc.([]any)
	if !ok {
		return health, ErrNotArray
	}

	health.TotalRecords = len(records)
	for i, record := range records {
		warnings := validateRecord(schema, i, record)
		if len(warnings) == 0 {
			health.ValidRecords++
			continue
		}
		health.InvalidRecords++
		health.Warnings = append(health.Warnings, warnings...)
	}

	return health, nil
}

func validateRecord(schema *jsonschema.Schema, index int, record any) []RecordWarning {
	err := schema.Validate(record)
	if err == nil {
		return nil
	}

	var ve *jsonschema.ValidationError
	if !errors.As(err, &ve) {
		return []RecordWarning{{Index: index, Message: err.Error()}}
	}

	var warnings []RecordWarning
	collectLeafErrors(ve, index, &warnings)
	if len(warnings) == 0 {
		warnings = append(warnings, RecordWarning{Index: index, Path: ve.InstanceLocation, Message: ve.Message})
	}

	sort.SliceStable(warnings, func(a, b int) bool {
		return warnings[a].Path < warnings[b].Path
	})
	return warnings
}

// collectLeafErrors walks the cause tree and keeps only the leaves, which
// carry the specific messages.
func collectLeafErrors(err *jsonschema.ValidationError, index int, out *[]RecordWarning) {
	if len(err.Causes) == 0 {
		*out = append(*out, RecordWarning{
			Index:   index,
			Path:    strings.TrimSpace(err.InstanceLocation),
			Message: err.Message,
		})
		return
	}
	for _, cause := range err.Causes {
		collectLeafErrors(cause, index, out)
	}
}
