// Package storage reads and writes the data.json task file.
package storage

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/xolan/homework/internal/osutil"
	"github.com/xolan/homework/internal/task"
)

// ResolvePath returns name unchanged if it is absolute, otherwise joins it
// onto the current working directory.
func ResolvePath(name string) (string, error) {
	if filepath.IsAbs(name) {
		return filepath.Clean(name), nil
	}

	wd, err := osutil.Provider.Getwd()
	if err != nil {
		return "", err
	}

	return filepath.Join(wd, name), nil
}

// EncodeTasks renders tasks as an indented JSON array. Non-ASCII text and
// HTML characters are written verbatim. A nil or empty slice yields "[]".
func EncodeTasks(tasks []task.Task) ([]byte, error) {
	if tasks == nil {
		tasks = []task.Task{}
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(tasks); err != nil {
		return nil, err
	}
	return unescapeLineSeparators(buf.Bytes()), nil
}

// unescapeLineSeparators replaces the \u2028 and \u2029 escapes that
// encoding/json always emits with the raw characters. A sequence preceded by
// an escaped backslash is literal text and is left alone.
func unescapeLineSeparators(data []byte) []byte {
	if !bytes.Contains(data, []byte(`\u202`)) {
		return data
	}

	out := make([]byte, 0, len(data))
	for i := 0; i < len(data); i++ {
		if data[i] != '\\' {
			out = append(out, data[i])
			continue
		}
		if i+5 < len(data) && data[i+1] == 'u' && string(data[i+2:i+5]) == "202" &&
			(data[i+5] == '8' || data[i+5] == '9') {
			if data[i+5] == '8' {
				out = append(out, "\u2028"...)
			} else {
				out = append(out, "\u2029"...)
			}
			i += 5
			continue
		}
		// any other escape: copy the backslash and the escaped byte together
		out = append(out, data[i])
		if i+1 < len(data) {
			out = append(out, data[i+1])
			i++
		}
	}
	return out
}

// WriteTasks writes all tasks to filepath, replacing whatever was there.
// The file is opened, written and closed once.
func WriteTasks(filepath string, tasks []task.Task) error {
	data, err := EncodeTasks(tasks)
	if err != nil {
		return err
	}

	file, err := os.OpenFile(filepath, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0644)
	if err != nil {
		return err
	}

	if _, err := file.Write(data); err != nil {
		_ = file.Close()
		return err
	}

	return file.Close()
}

// ReadTasks reads a task file written by WriteTasks.
// Returns an empty slice if the file doesn't exist.
func ReadTasks(filepath string) ([]task.Task, error) {
	data, err := os.ReadFile(filepath)
	if err != nil {
		if os.IsNotExist(err) {
			return []task.Task{}, nil
		}
		return nil, err
	}

	tasks := []task.Task{}
	if err := json.Unmarshal(data, &tasks); err != nil {
		return nil, fmt.Errorf("decode %s: %w", filepath, err)
	}
	return tasks, nil
}
