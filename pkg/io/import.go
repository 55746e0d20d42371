package io

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/tam-pham-duc/ProManage-AI-sub001/pkg/core/task"
	"github.com/tam-pham-duc/ProManage-AI-sub001/pkg/errors"
)

// idNamespace seeds generated task ids.
var idNamespace = uuid.MustParse("6f1d7c64-1f0e-4c3b-9a57-2b1d7f0c9e41")

// taskJSON mirrors task.Task with an id alias used by document exports.
type taskJSON struct {
	ID           string   `json:"id,omitempty" yaml:"id,omitempty"`
	MongoID      string   `json:"_id,omitempty" yaml:"_id,omitempty"`
	Title        string   `json:"title" yaml:"title"`
	Status       string   `json:"status,omitempty" yaml:"status,omitempty"`
	Priority     string   `json:"priority,omitempty" yaml:"priority,omitempty"`
	Dependencies []string `json:"dependencies,omitempty" yaml:"dependencies,omitempty"`
	Assignee     string   `json:"assignee,omitempty" yaml:"assignee,omitempty"`
	DueDate      string   `json:"dueDate,omitempty" yaml:"dueDate,omitempty"`
}

// ReadTasks decodes a task list from r.
//
// Both the bare list and the {"tasks": [...]} object are accepted. A task
// without id takes "_id" when present, otherwise an id derived from its
// position and title, so importing the same file twice yields the same ids.
// A task with neither id nor title is rejected.
//
// Dependencies are not checked: the engine tolerates unknown ids.
func ReadTasks(r io.Reader, format Format) ([]task.Task, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read: %w", err)
	}
	raw, err := decode(data, format)
	if err != nil {
		return nil, err
	}

	tasks := make([]task.Task, 0, len(raw))
	for i, t := range raw {
		id := t.ID
		if id == "" {
			id = t.MongoID
		}
		if id == "" {
			if t.Title == "" {
				return nil, errors.New(errors.ErrCodeInvalidTask, "task %d has neither id nor title", i)
			}
			id = GenerateID(i, t.Title)
		}
		tasks = append(tasks, task.Task{
			ID:           id,
			Title:        t.Title,
			Status:       task.Status(t.Status),
			Priority:     task.Priority(t.Priority),
			Dependencies: t.Dependencies,
			Assignee:     t.Assignee,
			DueDate:      t.DueDate,
		})
	}
	return tasks, nil
}

// GenerateID returns the id assigned to an untitled task at position i.
func GenerateID(i int, title string) string {
	return uuid.NewSHA1(idNamespace, fmt.Appendf(nil, "%d\x00%s", i, title)).String()
}

func decode(data []byte, format Format) ([]taskJSON, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return nil, nil
	}

	switch format {
	case FormatJSON:
		if trimmed[0] == '[' {
			var list []taskJSON
			if err := json.Unmarshal(trimmed, &list); err != nil {
				return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "decode json task list")
			}
			return list, nil
		}
		var doc document
		if err := json.Unmarshal(trimmed, &doc); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "decode json task document")
		}
		return doc.Tasks, nil

	case FormatYAML:
		var node yaml.Node
		if err := yaml.Unmarshal(trimmed, &node); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "decode yaml")
		}
		if len(node.Content) == 0 {
			return nil, nil
		}
		root := node.Content[0]
		if root.Kind == yaml.SequenceNode {
			var list []taskJSON
			if err := root.Decode(&list); err != nil {
				return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "decode yaml task list")
			}
			return list, nil
		}
		var doc document
		if err := root.Decode(&doc); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "decode yaml task document")
		}
		return doc.Tasks, nil
	}
	return nil, errors.New(errors.ErrCodeInvalidFormat, "unsupported task file format %q", format)
}

// ImportTasks reads the task file at path, choosing the format from its
// extension. A missing file yields a FILE_NOT_FOUND error.
func ImportTasks(path string) ([]task.Task, error) {
	if err := errors.ValidatePath(path); err != nil {
		return nil, err
	}
	format, err := DetectFormat(path)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if os.IsNotExist(err) {
		return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "task file %s not found", path)
	}
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	tasks, err := ReadTasks(f, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return tasks, nil
}
