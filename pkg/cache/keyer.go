package cache

// Keyer builds cache keys for each cached stage.
type Keyer interface {
	// GraphKey identifies a computed graph for a task list hash.
	GraphKey(tasksHash string, opts GraphKeyOpts) string

	// ArtifactKey identifies rendered output for a graph hash.
	ArtifactKey(graphHash string, opts ArtifactKeyOpts) string
}

// GraphKeyOpts holds the inputs besides the tasks that change a computed graph.
type GraphKeyOpts struct {
	Focus           string  `json:"focus,omitempty"`
	NodeWidth       float64 `json:"node_width"`
	NodeHeight      float64 `json:"node_height"`
	XGap            float64 `json:"x_gap"`
	YGap            float64 `json:"y_gap"`
	Padding         float64 `json:"padding"`
	MinCanvasHeight float64 `json:"min_canvas_height"`
}

// ArtifactKeyOpts holds the render settings that change the output bytes.
type ArtifactKeyOpts struct {
	Format      string  `json:"format"`
	Interactive bool    `json:"interactive,omitempty"`
	ShowLegend  bool    `json:"show_legend,omitempty"`
	Scale       float64 `json:"scale,omitempty"`
	Detailed    bool    `json:"detailed,omitempty"`
}

// DefaultKeyer produces keys of the form "stage:sha256(parts)".
type DefaultKeyer struct{}

// NewDefaultKeyer returns the default keyer.
func NewDefaultKeyer() Keyer { return DefaultKeyer{} }

// GraphKey generates a key for a computed graph.
func (DefaultKeyer) GraphKey(tasksHash string, opts GraphKeyOpts) string {
	return stageKey(StageGraph, tasksHash, opts)
}

// ArtifactKey generates a key for a rendered artifact.
func (DefaultKeyer) ArtifactKey(graphHash string, opts ArtifactKeyOpts) string {
	return stageKey(StageArtifact, graphHash, opts)
}
