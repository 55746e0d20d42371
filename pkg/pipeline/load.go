package pipeline

import (
	"context"
	"time"

	"github.com/tam-pham-duc/ProManage-AI-sub001/pkg/core/task"
	"github.com/tam-pham-duc/ProManage-AI-sub001/pkg/errors"
	taskio "github.com/tam-pham-duc/ProManage-AI-sub001/pkg/io"
	"github.com/tam-pham-duc/ProManage-AI-sub001/pkg/observability"
	"github.com/tam-pham-duc/ProManage-AI-sub001/pkg/store"
)

// LoadTasks reads the task list named by opts: the file at opts.Input, or
// opts.Project from src. No caching is applied.
func LoadTasks(ctx context.Context, src store.Source, opts Options) ([]task.Task, error) {
	if err := opts.ValidateForLoad(); err != nil {
		return nil, err
	}

	source := opts.Input
	if source == "" {
		source = opts.Project
	}
	hooks := observability.Pipeline()
	hooks.OnLoadStart(ctx, source)
	start := time.Now()

	tasks, err := loadTasks(ctx, src, opts)

	hooks.OnLoadComplete(ctx, source, len(tasks), time.Since(start), err)
	return tasks, err
}

func loadTasks(ctx context.Context, src store.Source, opts Options) ([]task.Task, error) {
	if opts.Input != "" {
		return taskio.ImportTasks(opts.Input)
	}
	if src == nil {
		return nil, errors.New(errors.ErrCodeStoreUnavailable, "no task store configured")
	}
	return src.Tasks(ctx, opts.Project)
}
