package observability

import (
	"context"
	"time"

	"github.com/charmbracelet/log"
)

// LogHooks reports every event to a logger at debug level, failures at
// warn level. It implements all hook interfaces.
type LogHooks struct {
	logger *log.Logger
}

// NewLogHooks returns hooks writing to logger.
func NewLogHooks(logger *log.Logger) *LogHooks {
	return &LogHooks{logger: logger}
}

// Install registers h for every hook category.
func (h *LogHooks) Install() {
	SetPipelineHooks(h)
	SetCacheHooks(h)
	SetStoreHooks(h)
}

func (h *LogHooks) OnLoadStart(_ context.Context, source string) {
	h.logger.Debug("loading tasks", "source", source)
}

func (h *LogHooks) OnLoadComplete(_ context.Context, source string, n int, d time.Duration, err error) {
	if err != nil {
		h.logger.Warn("load failed", "source", source, "duration", d, "err", err)
		return
	}
	h.logger.Debug("loaded tasks", "source", source, "tasks", n, "duration", d)
}

func (h *LogHooks) OnComputeStart(_ context.Context, n int) {
	h.logger.Debug("computing graph", "tasks", n)
}

func (h *LogHooks) OnComputeComplete(_ context.Context, nodes, conns int, d time.Duration) {
	h.logger.Debug("computed graph", "nodes", nodes, "connections", conns, "duration", d)
}

func (h *LogHooks) OnRenderStart(_ context.Context, formats []string) {
	h.logger.Debug("rendering", "formats", formats)
}

func (h *LogHooks) OnRenderComplete(_ context.Context, formats []string, d time.Duration, err error) {
	if err != nil {
		h.logger.Warn("render failed", "formats", formats, "duration", d, "err", err)
		return
	}
	h.logger.Debug("rendered", "formats", formats, "duration", d)
}

func (h *LogHooks) OnCacheHit(_ context.Context, keyType string) {
	h.logger.Debug("cache hit", "type", keyType)
}

func (h *LogHooks) OnCacheMiss(_ context.Context, keyType string) {
	h.logger.Debug("cache miss", "type", keyType)
}

func (h *LogHooks) OnCacheSet(_ context.Context, keyType string, size int) {
	h.logger.Debug("cache set", "type", keyType, "bytes", size)
}

func (h *LogHooks) OnQuery(_ context.Context, backend, project string) {
	h.logger.Debug("querying store", "backend", backend, "project", project)
}

func (h *LogHooks) OnQueryComplete(_ context.Context, backend, project string, n int, d time.Duration, err error) {
	if err != nil {
		h.logger.Warn("store query failed", "backend", backend, "project", project, "duration", d, "err", err)
		return
	}
	h.logger.Debug("store query done", "backend", backend, "project", project, "tasks", n, "duration", d)
}
