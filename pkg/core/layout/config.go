package layout

import "fmt"

// Default geometry, in pixels.
const (
	DefaultNodeWidth       = 220.0
	DefaultNodeHeight      = 80.0
	DefaultXGap            = 100.0
	DefaultYGap            = 40.0
	DefaultPadding         = 40.0
	DefaultMinCanvasHeight = 400.0
)

// Config holds the tunable geometry of the layout. Changing these values
// scales the drawing but never changes which layer or slot a task lands in.
type Config struct {
	NodeWidth       float64 `json:"node_width" toml:"node_width"`
	NodeHeight      float64 `json:"node_height" toml:"node_height"`
	XGap            float64 `json:"x_gap" toml:"x_gap"`
	YGap            float64 `json:"y_gap" toml:"y_gap"`
	Padding         float64 `json:"padding" toml:"padding"`
	MinCanvasHeight float64 `json:"min_canvas_height" toml:"min_canvas_height"`
}

// DefaultConfig returns the default geometry.
func DefaultConfig() Config {
	return Config{
		NodeWidth:       DefaultNodeWidth,
		NodeHeight:      DefaultNodeHeight,
		XGap:            DefaultXGap,
		YGap:            DefaultYGap,
		Padding:         DefaultPadding,
		MinCanvasHeight: DefaultMinCanvasHeight,
	}
}

// WithDefaults returns c with every zero field replaced by its default.
func (c Config) WithDefaults() Config {
	d := DefaultConfig()
	if c.NodeWidth == 0 {
		c.NodeWidth = d.NodeWidth
	}
	if c.NodeHeight == 0 {
		c.NodeHeight = d.NodeHeight
	}
	if c.XGap == 0 {
		c.XGap = d.XGap
	}
	if c.YGap == 0 {
		c.YGap = d.YGap
	}
	if c.Padding == 0 {
		c.Padding = d.Padding
	}
	if c.MinCanvasHeight == 0 {
		c.MinCanvasHeight = d.MinCanvasHeight
	}
	return c
}

// Validate reports geometry that cannot produce a drawing: node sizes must
// be positive, gaps, padding and minimum height must not be negative.
func (c Config) Validate() error {
	if c.NodeWidth <= 0 || c.NodeHeight <= 0 {
		return fmt.Errorf("node size must be positive, got %gx%g", c.NodeWidth, c.NodeHeight)
	}
	if c.XGap < 0 || c.YGap < 0 {
		return fmt.Errorf("gaps must not be negative, got x=%g y=%g", c.XGap, c.YGap)
	}
	if c.Padding < 0 {
		return fmt.Errorf("padding must not be negative, got %g", c.Padding)
	}
	if c.MinCanvasHeight < 0 {
		return fmt.Errorf("minimum canvas height must not be negative, got %g", c.MinCanvasHeight)
	}
	return nil
}

// ColumnStep is the horizontal distance between two adjacent layers.
func (c Config) ColumnStep() float64 { return c.NodeWidth + c.XGap }

// RowStep is the vertical distance between two stacked nodes in a layer.
func (c Config) RowStep() float64 { return c.NodeHeight + c.YGap }

// StackHeight returns the height of a layer holding n nodes.
func (c Config) StackHeight(n int) float64 {
	if n <= 0 {
		return 0
	}
	return float64(n)*c.NodeHeight + float64(n-1)*c.YGap
}
