// Package pipeline provides the load → compute → render pipeline shared by
// the CLI and the HTTP API.
//
// # Architecture
//
// The pipeline consists of three stages:
//
//  1. Load: read the task list from a file or a task store project
//  2. Compute: run the graph engine (levels, geometry, routing, highlight)
//  3. Render: produce SVG, PNG, PDF, JSON or DOT output
//
// Each stage can be run independently or as part of the complete pipeline.
// Compute and render results are cached under content-addressed keys; the
// load stage always reads the source.
//
// # Usage
//
//	runner := pipeline.NewRunner(c, nil, logger)
//	runner.Source = store.NewFile("./projects")
//	result, err := runner.Execute(ctx, pipeline.Options{
//	    Project: "website",
//	    Focus:   "build",
//	    Formats: []string{"svg"},
//	})
//	svg := result.Artifacts["svg"]
//
// Run individual stages:
//
//	tasks, err := runner.Load(ctx, opts)
//	l, err := runner.Compute(ctx, tasks, opts)
//	artifacts, err := runner.Render(ctx, l, opts)
package pipeline

import (
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/tam-pham-duc/ProManage-AI-sub001/pkg/cache"
	"github.com/tam-pham-duc/ProManage-AI-sub001/pkg/core/layout"
	"github.com/tam-pham-duc/ProManage-AI-sub001/pkg/core/task"
	"github.com/tam-pham-duc/ProManage-AI-sub001/pkg/errors"
	"github.com/tam-pham-duc/ProManage-AI-sub001/pkg/graph"
	"github.com/tam-pham-duc/ProManage-AI-sub001/pkg/render"
)

// =============================================================================
// Default Values - Single Source of Truth for CLI and API
// =============================================================================

// Format constants for output formats.
const (
	FormatSVG  = "svg"
	FormatPNG  = "png"
	FormatPDF  = "pdf"
	FormatJSON = "json"
	FormatDOT  = "dot"
)

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatSVG:  true,
	FormatPNG:  true,
	FormatPDF:  true,
	FormatJSON: true,
	FormatDOT:  true,
}

// formatNames lists ValidFormats in display order.
var formatNames = []string{FormatSVG, FormatPNG, FormatPDF, FormatJSON, FormatDOT}

// DefaultScale is the PNG scale factor.
const DefaultScale = render.DefaultScale

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options contains all configuration for the pipeline.
// This struct supports JSON serialization for API requests.
type Options struct {
	// Load options: exactly one of Input or Project.
	Input   string `json:"-"`                 // task file path (CLI)
	Project string `json:"project,omitempty"` // task store project
	Refresh bool   `json:"refresh,omitempty"` // bypass cached graphs and renders

	// Compute options
	Focus  string        `json:"focus,omitempty"`
	Layout layout.Config `json:"layout"`

	// Render options
	Formats     []string `json:"formats,omitempty"`
	Interactive bool     `json:"interactive,omitempty"`
	Legend      bool     `json:"legend,omitempty"`
	Scale       float64  `json:"scale,omitempty"`
	Detailed    bool     `json:"detailed,omitempty"` // DOT labels with status and assignee

	// Runtime options (not serialized)
	Logger *log.Logger `json:"-"`

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// Tasks is the loaded task list.
	Tasks []task.Task

	// TasksHash is the content hash of the task list.
	TasksHash string

	// Graph is the computed, serializable graph.
	Graph graph.Layout

	// Artifacts contains rendered outputs keyed by format.
	Artifacts map[string][]byte

	// Stats contains timing and size information.
	Stats Stats

	// CacheInfo tracks which stages hit the cache.
	CacheInfo CacheInfo
}

// Stats contains pipeline execution statistics.
type Stats struct {
	TaskCount       int
	ConnectionCount int
	BlockedCount    int
	LoadTime        time.Duration
	ComputeTime     time.Duration
	RenderTime      time.Duration
}

// CacheInfo tracks cache hits for each pipeline stage.
type CacheInfo struct {
	ComputeHit bool // Whether the graph came from cache
	RenderHit  bool // Whether all artifacts came from cache
}

// =============================================================================
// Validation Functions
// =============================================================================

// ValidateFormat checks that a format is valid.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return errors.New(errors.ErrCodeInvalidFormat, "invalid format: %q (must be one of: %s)", format, strings.Join(formatNames, ", "))
	}
	return nil
}

// ValidateFormats checks that all formats are valid.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}

// ParseFormats splits a comma-separated format list, trimming and
// lowercasing each entry. An empty string yields the default format.
func ParseFormats(s string) []string {
	if strings.TrimSpace(s) == "" {
		return []string{FormatSVG}
	}
	var out []string
	for _, f := range strings.Split(s, ",") {
		if f = strings.ToLower(strings.TrimSpace(f)); f != "" {
			out = append(out, f)
		}
	}
	return out
}

// =============================================================================
// Options Methods
// =============================================================================

// ValidateAndSetDefaults checks required fields and applies defaults for the full pipeline.
// This method is idempotent - calling it multiple times has the same effect as calling it once.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if err := o.ValidateForLoad(); err != nil {
		return err
	}
	if err := o.ValidateForRender(); err != nil {
		return err
	}
	o.validated = true
	return nil
}

// ValidateForLoad checks that exactly one task source is named.
func (o *Options) ValidateForLoad() error {
	switch {
	case o.Input == "" && o.Project == "":
		return errors.New(errors.ErrCodeInvalidInput, "a task file or a project is required")
	case o.Input != "" && o.Project != "":
		return errors.New(errors.ErrCodeInvalidInput, "give either a task file or a project, not both")
	case o.Input != "":
		if err := errors.ValidatePath(o.Input); err != nil {
			return err
		}
	default:
		if err := errors.ValidateProjectID(o.Project); err != nil {
			return err
		}
	}
	o.setLoggerDefault()
	return nil
}

// SetComputeDefaults fills unset layout geometry.
func (o *Options) SetComputeDefaults() {
	o.Layout = o.Layout.WithDefaults()
	o.setLoggerDefault()
}

// ValidateForCompute validates and sets defaults for graph computation.
func (o *Options) ValidateForCompute() error {
	o.SetComputeDefaults()
	if err := o.Layout.Validate(); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidConfig, err, "layout")
	}
	if o.Focus != "" {
		if err := errors.ValidateTaskID(o.Focus); err != nil {
			return err
		}
	}
	return nil
}

// SetRenderDefaults sets default values for rendering.
func (o *Options) SetRenderDefaults() {
	if len(o.Formats) == 0 {
		o.Formats = []string{FormatSVG}
	}
	if o.Scale == 0 {
		o.Scale = DefaultScale
	}
	o.setLoggerDefault()
}

// ValidateForRender validates and sets defaults for computing and rendering.
func (o *Options) ValidateForRender() error {
	if err := o.ValidateForCompute(); err != nil {
		return err
	}
	o.SetRenderDefaults()
	if o.Scale < 0 {
		return errors.New(errors.ErrCodeInvalidInput, "scale must be positive, got %g", o.Scale)
	}
	return ValidateFormats(o.Formats)
}

func (o *Options) setLoggerDefault() {
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

// GraphKeyOpts returns cache key options for graph computation.
func (o *Options) GraphKeyOpts() cache.GraphKeyOpts {
	l := o.Layout.WithDefaults()
	return cache.GraphKeyOpts{
		Focus:           o.Focus,
		NodeWidth:       l.NodeWidth,
		NodeHeight:      l.NodeHeight,
		XGap:            l.XGap,
		YGap:            l.YGap,
		Padding:         l.Padding,
		MinCanvasHeight: l.MinCanvasHeight,
	}
}

// ArtifactKeyOpts returns cache key options for artifact rendering.
func (o *Options) ArtifactKeyOpts(format string) cache.ArtifactKeyOpts {
	return cache.ArtifactKeyOpts{
		Format:      format,
		Interactive: o.Interactive,
		ShowLegend:  o.Legend,
		Scale:       o.Scale,
		Detailed:    o.Detailed,
	}
}
