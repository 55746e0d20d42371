// Package store reads project task lists from their system of record.
//
// A [Source] returns every task of one project. The engine never talks to a
// store directly: a pipeline loads the tasks first, and a store failure
// surfaces as a STORE_UNAVAILABLE error before any graph is computed.
//
// Implementations:
//   - [File]: one JSON or YAML file per project in a directory
//   - mongo.Source: the MongoDB tasks collection of the dashboard
package store

import (
	"context"
	"os"
	"path/filepath"
	"time"

	"github.com/tam-pham-duc/ProManage-AI-sub001/pkg/core/task"
	"github.com/tam-pham-duc/ProManage-AI-sub001/pkg/errors"
	taskio "github.com/tam-pham-duc/ProManage-AI-sub001/pkg/io"
	"github.com/tam-pham-duc/ProManage-AI-sub001/pkg/observability"
)

// Source loads the tasks of a project.
type Source interface {
	// Tasks returns the project's tasks in store order. An unknown project
	// yields a NOT_FOUND error; an unreachable backend STORE_UNAVAILABLE.
	Tasks(ctx context.Context, project string) ([]task.Task, error)

	// Name identifies the backend in logs and hooks.
	Name() string
}

// =============================================================================
// File Source
// =============================================================================

// File serves projects from a directory holding <project>.json,
// <project>.yaml or <project>.yml files.
type File struct {
	Dir string
}

// NewFile returns a file source rooted at dir.
func NewFile(dir string) *File {
	return &File{Dir: dir}
}

// Name implements Source.
func (f *File) Name() string { return "file" }

// Tasks implements Source.
func (f *File) Tasks(ctx context.Context, project string) ([]task.Task, error) {
	if err := errors.ValidateProjectID(project); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	for _, ext := range []string{".json", ".yaml", ".yml"} {
		path := filepath.Join(f.Dir, project+ext)
		if _, err := os.Stat(path); err != nil {
			continue
		}
		return taskio.ImportTasks(path)
	}
	if _, err := os.Stat(f.Dir); err != nil {
		return nil, errors.Wrap(errors.ErrCodeStoreUnavailable, err, "task directory %s", f.Dir)
	}
	return nil, errors.New(errors.ErrCodeNotFound, "project %s not found in %s", project, f.Dir)
}

// =============================================================================
// Observed Source
// =============================================================================

type observed struct {
	Source
}

// Observe wraps src so that every query reports to the registered
// observability.StoreHooks.
func Observe(src Source) Source {
	if _, ok := src.(observed); ok {
		return src
	}
	return observed{src}
}

func (o observed) Tasks(ctx context.Context, project string) ([]task.Task, error) {
	hooks := observability.Store()
	hooks.OnQuery(ctx, o.Name(), project)
	start := time.Now()
	tasks, err := o.Source.Tasks(ctx, project)
	hooks.OnQueryComplete(ctx, o.Name(), project, len(tasks), time.Since(start), err)
	return tasks, err
}
