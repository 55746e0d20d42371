package svg

import (
	"bytes"
	"fmt"

	"github.com/tam-pham-duc/ProManage-AI-sub001/pkg/core/style"
	"github.com/tam-pham-duc/ProManage-AI-sub001/pkg/core/task"
)

const (
	legendHeight   = 48.0
	legendPadding  = 20.0
	legendSwatch   = 14.0
	legendItemStep = 120.0
)

type legendItem struct {
	label string
	desc  style.Descriptor
}

func legendItems() []legendItem {
	return []legendItem{
		{"To Do", style.For(task.StatusToDo, false, "")},
		{"In Progress", style.For(task.StatusInProgress, false, "")},
		{"In Review", style.For(task.StatusInReview, false, "")},
		{"Done", style.For(task.StatusDone, false, "")},
		{"Blocked", style.For(task.StatusToDo, true, "")},
	}
}

func legendWidth() float64 {
	return 2*legendPadding + float64(len(legendItems()))*legendItemStep
}

func renderLegend(buf *bytes.Buffer, top float64) {
	y := top + (legendHeight-legendSwatch)/2
	buf.WriteString("  <g class=\"legend\">\n")
	for i, it := range legendItems() {
		x := legendPadding + float64(i)*legendItemStep
		fmt.Fprintf(buf, `    <rect x="%.1f" y="%.1f" width="%.0f" height="%.0f" rx="3" fill="%s" stroke="%s"`,
			x, y, legendSwatch, legendSwatch, it.desc.Fill, it.desc.Border)
		if dash := style.DashArray(it.desc.Dashed); dash != "" {
			fmt.Fprintf(buf, ` stroke-dasharray="%s"`, dash)
		}
		buf.WriteString("/>\n")
		fmt.Fprintf(buf, `    <text x="%.1f" y="%.1f" font-size="12" fill="%s">%s</text>`+"\n",
			x+legendSwatch+6, y+legendSwatch-2, style.Slate700, it.label)
	}
	buf.WriteString("  </g>\n")
}
