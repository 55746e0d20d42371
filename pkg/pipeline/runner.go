package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/tam-pham-duc/ProManage-AI-sub001/pkg/cache"
	"github.com/tam-pham-duc/ProManage-AI-sub001/pkg/core/task"
	"github.com/tam-pham-duc/ProManage-AI-sub001/pkg/graph"
	"github.com/tam-pham-duc/ProManage-AI-sub001/pkg/observability"
	"github.com/tam-pham-duc/ProManage-AI-sub001/pkg/store"
)

// Runner encapsulates pipeline execution with caching.
// Both CLI and API use it to avoid duplicating caching logic.
//
// The Runner is stateless except for the cache, task source and logger; it
// doesn't store pipeline results. Multiple goroutines can safely use the
// same Runner with different options.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger

	// Source serves Options.Project. It may be nil when only task files
	// are used.
	Source store.Source
}

// NewRunner creates a runner with the given cache and keyer.
// If keyer is nil, a DefaultKeyer is used.
// If cache is nil, a NullCache is used (caching disabled).
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Cache:  c,
		Keyer:  keyer,
		Logger: logger,
	}
}

// Execute runs the complete load → compute → render pipeline with caching.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	r.applyLogger(&opts)
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}

	result := &Result{}

	// Stage 1: Load
	loadStart := time.Now()
	tasks, err := r.Load(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("load: %w", err)
	}
	result.Tasks = tasks
	result.TasksHash = HashTasks(tasks)
	result.Stats.LoadTime = time.Since(loadStart)
	result.Stats.TaskCount = len(tasks)

	r.Logger.Info("loaded tasks",
		"tasks", len(tasks),
		"duration", result.Stats.LoadTime)

	// Stage 2: Compute
	computeStart := time.Now()
	l, computeHit, err := r.ComputeWithCacheInfo(ctx, tasks, opts)
	if err != nil {
		return nil, fmt.Errorf("compute: %w", err)
	}
	result.Graph = l
	result.Stats.ComputeTime = time.Since(computeStart)
	result.Stats.ConnectionCount = len(l.Connections)
	result.Stats.BlockedCount = l.Stats.Blocked
	result.CacheInfo.ComputeHit = computeHit

	r.Logger.Info("computed graph",
		"nodes", len(l.Nodes),
		"connections", len(l.Connections),
		"layers", l.Stats.Layers,
		"blocked", l.Stats.Blocked,
		"duration", result.Stats.ComputeTime)

	// Stage 3: Render
	renderStart := time.Now()
	artifacts, renderHit, err := r.RenderWithCacheInfo(ctx, l, opts)
	if err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	result.Artifacts = artifacts
	result.Stats.RenderTime = time.Since(renderStart)
	result.CacheInfo.RenderHit = renderHit

	r.Logger.Info("rendered outputs",
		"formats", opts.Formats,
		"duration", result.Stats.RenderTime)

	return result, nil
}

// Load reads the task list named by opts. It is never cached: the blocked
// state of every task depends on the current status of its dependencies,
// so each run sees the store as it is now. The graph and artifact stages
// are keyed by the content hash of what was loaded.
func (r *Runner) Load(ctx context.Context, opts Options) ([]task.Task, error) {
	r.applyLogger(&opts)
	src := r.Source
	if src != nil && opts.Input == "" {
		src = store.Observe(src)
	}
	return LoadTasks(ctx, src, opts)
}

// ComputeWithCacheInfo computes the graph with caching and returns cache hit info.
func (r *Runner) ComputeWithCacheInfo(ctx context.Context, tasks []task.Task, opts Options) (graph.Layout, bool, error) {
	r.applyLogger(&opts)
	if err := opts.ValidateForCompute(); err != nil {
		return graph.Layout{}, false, err
	}

	cacheKey := r.Keyer.GraphKey(HashTasks(tasks), opts.GraphKeyOpts())

	if !opts.Refresh {
		if data, ok := r.cacheGet(ctx, cache.StageGraph, cacheKey); ok {
			if cached, err := graph.UnmarshalLayout(data); err == nil {
				return cached, true, nil
			}
			// If deserialization fails, fall through to recompute
		}
	}

	l, err := Compute(ctx, tasks, opts)
	if err != nil {
		return graph.Layout{}, false, err
	}

	if data, err := graph.MarshalLayout(l); err == nil {
		r.cacheSet(ctx, cache.StageGraph, cacheKey, data, cache.TTLGraph)
	}
	return l, false, nil
}

// Compute is a convenience wrapper that calls ComputeWithCacheInfo and discards the cache hit info.
func (r *Runner) Compute(ctx context.Context, tasks []task.Task, opts Options) (graph.Layout, error) {
	l, _, err := r.ComputeWithCacheInfo(ctx, tasks, opts)
	return l, err
}

// RenderWithCacheInfo generates artifacts with caching and returns cache hit info.
func (r *Runner) RenderWithCacheInfo(ctx context.Context, l graph.Layout, opts Options) (map[string][]byte, bool, error) {
	r.applyLogger(&opts)
	if err := opts.ValidateForRender(); err != nil {
		return nil, false, err
	}

	layoutData, err := graph.MarshalLayout(l)
	if err != nil {
		return nil, false, fmt.Errorf("serialize graph for cache key: %w", err)
	}
	graphHash := cache.Hash(layoutData)

	// Try to get all formats from cache
	artifacts := make(map[string][]byte, len(opts.Formats))
	for _, format := range opts.Formats {
		data, ok := r.cacheGet(ctx, cache.StageArtifact, r.Keyer.ArtifactKey(graphHash, opts.ArtifactKeyOpts(format)))
		if !ok {
			break
		}
		artifacts[format] = data
	}
	if len(artifacts) == len(opts.Formats) {
		return artifacts, true, nil
	}

	rendered, err := Render(ctx, l, opts)
	if err != nil {
		return nil, false, err
	}

	for format, data := range rendered {
		r.cacheSet(ctx, cache.StageArtifact, r.Keyer.ArtifactKey(graphHash, opts.ArtifactKeyOpts(format)), data, cache.TTLArtifact)
	}
	return rendered, false, nil
}

// Render is a convenience wrapper that calls RenderWithCacheInfo and discards the cache hit info.
func (r *Runner) Render(ctx context.Context, l graph.Layout, opts Options) (map[string][]byte, error) {
	artifacts, _, err := r.RenderWithCacheInfo(ctx, l, opts)
	return artifacts, err
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}

// HashTasks returns the content hash of a task list.
func HashTasks(tasks []task.Task) string {
	data, _ := json.Marshal(tasks)
	return cache.Hash(data)
}

// cacheGet reads a key, treating backend errors as misses.
func (r *Runner) cacheGet(ctx context.Context, stage cache.Stage, key string) ([]byte, bool) {
	data, hit, err := r.Cache.Get(ctx, key)
	if err != nil {
		r.Logger.Warn("cache read failed", "stage", stage, "error", err)
		return nil, false
	}
	if hit {
		observability.Cache().OnCacheHit(ctx, string(stage))
		return data, true
	}
	observability.Cache().OnCacheMiss(ctx, string(stage))
	return nil, false
}

func (r *Runner) cacheSet(ctx context.Context, stage cache.Stage, key string, data []byte, ttl time.Duration) {
	if err := r.Cache.Set(ctx, key, data, ttl); err != nil {
		r.Logger.Warn("cache write failed", "stage", stage, "error", err)
		return
	}
	observability.Cache().OnCacheSet(ctx, string(stage), len(data))
}

// applyLogger sets the runner's logger on options if not already set.
func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}
