package layout

import (
	"cmp"
	"slices"

	"github.com/tam-pham-duc/ProManage-AI-sub001/pkg/core/dag"
)

// Point is a position on the canvas.
type Point struct {
	X, Y float64
}

// Box is the rectangle occupied by one task. X and Y are the top-left corner.
type Box struct {
	NodeID string
	Level  int
	Slot   int // position within the layer, 0 = top
	X, Y   float64
	W, H   float64
}

// Right returns the x coordinate of the box's right edge.
func (b Box) Right() float64 { return b.X + b.W }

// Bottom returns the y coordinate of the box's bottom edge.
func (b Box) Bottom() float64 { return b.Y + b.H }

// CenterY returns the vertical centre of the box.
func (b Box) CenterY() float64 { return b.Y + b.H/2 }

// InAnchor is the left-centre point where incoming connectors end.
func (b Box) InAnchor() Point { return Point{X: b.X, Y: b.CenterY()} }

// OutAnchor is the right-centre point where outgoing connectors start.
func (b Box) OutAnchor() Point { return Point{X: b.Right(), Y: b.CenterY()} }

// Layout is the geometry of one task graph.
type Layout struct {
	Boxes  map[string]Box
	Layers []Layer // ascending by level, only occupied levels
	Width  float64
	Height float64
	Config Config
}

// Layer is one column of the drawing.
type Layer struct {
	Level   int
	NodeIDs []string // top to bottom
}

// Box returns the box for a node ID.
func (l Layout) Box(id string) (Box, bool) {
	b, ok := l.Boxes[id]
	return b, ok
}

// Order returns every node ID in reading order: by layer, then top to bottom.
func (l Layout) Order() []string {
	var ids []string
	for _, layer := range l.Layers {
		ids = append(ids, layer.NodeIDs...)
	}
	return ids
}

// Build positions every node of g. Levels are read from each node's Row, so
// run transform.AssignLevels first.
//
// Nodes are bucketed by level. Within a bucket they are sorted by title,
// ties broken by ID, which makes the result deterministic for a given task
// list. A bucket at level L sits at x = Padding + L*(NodeWidth+XGap) and
// its stack is centred vertically within max(tallest stack, MinCanvasHeight).
// The canvas extends to the furthest box edge plus Padding.
//
// An empty graph yields an empty layout with a zero-sized canvas.
func Build(g *dag.DAG, cfg Config) Layout {
	l := Layout{Boxes: make(map[string]Box, g.NodeCount()), Config: cfg}
	if g.NodeCount() == 0 {
		return l
	}

	buckets := make(map[int][]*dag.Node)
	for _, n := range g.Nodes() {
		buckets[n.Row] = append(buckets[n.Row], n)
	}
	levels := g.RowIDs()

	tallest := 0.0
	for _, lvl := range levels {
		nodes := buckets[lvl]
		slices.SortStableFunc(nodes, func(a, b *dag.Node) int {
			if c := cmp.Compare(title(a), title(b)); c != 0 {
				return c
			}
			return cmp.Compare(a.ID, b.ID)
		})
		tallest = max(tallest, cfg.StackHeight(len(nodes)))
	}
	canvas := max(tallest, cfg.MinCanvasHeight)

	for _, lvl := range levels {
		nodes := buckets[lvl]
		x := cfg.Padding + float64(lvl)*cfg.ColumnStep()
		top := cfg.Padding + (canvas-cfg.StackHeight(len(nodes)))/2

		layer := Layer{Level: lvl, NodeIDs: make([]string, len(nodes))}
		for i, n := range nodes {
			b := Box{
				NodeID: n.ID,
				Level:  lvl,
				Slot:   i,
				X:      x,
				Y:      top + float64(i)*cfg.RowStep(),
				W:      cfg.NodeWidth,
				H:      cfg.NodeHeight,
			}
			l.Boxes[n.ID] = b
			layer.NodeIDs[i] = n.ID
			l.Width = max(l.Width, b.Right())
			l.Height = max(l.Height, b.Bottom())
		}
		l.Layers = append(l.Layers, layer)
	}

	l.Width += cfg.Padding
	l.Height += cfg.Padding
	return l
}

func title(n *dag.Node) string {
	if t, ok := n.Meta[dag.MetaTitle].(string); ok {
		return t
	}
	return ""
}
