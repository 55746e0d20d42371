package io

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/tam-pham-duc/ProManage-AI-sub001/pkg/core/task"
	"github.com/tam-pham-duc/ProManage-AI-sub001/pkg/errors"
)

// WriteTasks encodes tasks to w as a {"tasks": [...]} document.
func WriteTasks(w io.Writer, tasks []task.Task, format Format) error {
	doc := document{Tasks: make([]taskJSON, len(tasks))}
	for i, t := range tasks {
		doc.Tasks[i] = taskJSON{
			ID:           t.ID,
			Title:        t.Title,
			Status:       string(t.Status),
			Priority:     string(t.Priority),
			Dependencies: t.Dependencies,
			Assignee:     t.Assignee,
			DueDate:      t.DueDate,
		}
	}

	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(doc); err != nil {
			return fmt.Errorf("encode: %w", err)
		}
		return nil
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			return fmt.Errorf("encode: %w", err)
		}
		return enc.Close()
	}
	return errors.New(errors.ErrCodeInvalidFormat, "unsupported task file format %q", format)
}

// ExportTasks writes tasks to path, choosing the format from its extension.
func ExportTasks(tasks []task.Task, path string) error {
	if err := errors.ValidatePath(path); err != nil {
		return err
	}
	format, err := DetectFormat(path)
	if err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := WriteTasks(f, tasks, format); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
