package route

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/tam-pham-duc/ProManage-AI-sub001/pkg/core/layout"
	"github.com/tam-pham-duc/ProManage-AI-sub001/pkg/core/task"
)

// Path is a cubic Bézier curve from Start to End.
type Path struct {
	Start    layout.Point `json:"start"`
	Control1 layout.Point `json:"control1"`
	Control2 layout.Point `json:"control2"`
	End      layout.Point `json:"end"`
}

// SVG returns the path as SVG path data: "M sx,sy C c1x,c1y c2x,c2y ex,ey".
func (p Path) SVG() string {
	var b strings.Builder
	b.WriteString("M ")
	writePoint(&b, p.Start)
	b.WriteString(" C ")
	writePoint(&b, p.Control1)
	b.WriteByte(' ')
	writePoint(&b, p.Control2)
	b.WriteByte(' ')
	writePoint(&b, p.End)
	return b.String()
}

func writePoint(b *strings.Builder, pt layout.Point) {
	b.WriteString(strconv.FormatFloat(pt.X, 'f', -1, 64))
	b.WriteByte(',')
	b.WriteString(strconv.FormatFloat(pt.Y, 'f', -1, 64))
}

// Connection is one drawn dependency edge. ParentID is the dependency and
// ChildID the task that depends on it.
type Connection struct {
	ID        string `json:"id"`
	ParentID  string `json:"parent"`
	ChildID   string `json:"child"`
	Path      Path   `json:"path"`
	IsBlocked bool   `json:"blocked"`
}

func (c Connection) String() string {
	return fmt.Sprintf("%s->%s", c.ParentID, c.ChildID)
}

// EdgeID is the identifier shared by a connection and the highlight sets.
func EdgeID(parentID, childID string) string {
	return parentID + "-" + childID
}

// Curve builds the connector between two boxes: it leaves the right-centre
// of from and enters the left-centre of to, with both control points pulled
// horizontally by half the column gap.
func Curve(from, to layout.Box, xGap float64) Path {
	start := from.OutAnchor()
	end := to.InAnchor()
	return Path{
		Start:    start,
		Control1: layout.Point{X: start.X + xGap/2, Y: start.Y},
		Control2: layout.Point{X: end.X - xGap/2, Y: end.Y},
		End:      end,
	}
}

// Route returns one connection per dependency edge whose endpoints both
// have a box in l. Connections follow task order, then dependency order.
// Repeated dependency ids produce a single connection and ids that do not
// resolve produce none.
//
// IsBlocked is read from the parent's status in idx at call time, using the
// same rule as [task.IsBlocked], so a task is blocked exactly when at least
// one of its incoming connections is.
func Route(idx *task.Index, l layout.Layout) []Connection {
	var conns []Connection
	for _, child := range idx.Tasks() {
		to, ok := l.Box(child.ID)
		if !ok {
			continue
		}
		seen := make(map[string]bool, len(child.Dependencies))
		for _, parentID := range child.Dependencies {
			if seen[parentID] {
				continue
			}
			seen[parentID] = true
			from, ok := l.Box(parentID)
			if !ok || !idx.Has(parentID) {
				continue
			}
			conns = append(conns, Connection{
				ID:        EdgeID(parentID, child.ID),
				ParentID:  parentID,
				ChildID:   child.ID,
				Path:      Curve(from, to, l.Config.XGap),
				IsBlocked: task.DependencyBlocks(parentID, idx),
			})
		}
	}
	return conns
}
