package cli

import (
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/tam-pham-duc/ProManage-AI-sub001/pkg/core/engine"
)

// List styles
var (
	listRelatedStyle = lipgloss.NewStyle().Foreground(colorWhite)
	listDimStyle     = lipgloss.NewStyle().Foreground(colorDim)
)

// =============================================================================
// GraphBrowserModel - Interactive focus selection
// =============================================================================

// GraphBrowserModel is the bubbletea model of the browse command. The task
// under the cursor is the focus: moving the cursor recomputes the highlight,
// and Enter activates the task.
type GraphBrowserModel struct {
	Result    engine.Result
	Activator engine.Activator
	Cursor    int
	Height    int
	Offset    int
	Activated bool
}

// NewGraphBrowserModel creates a browser over r focused on its first node.
func NewGraphBrowserModel(r engine.Result, a engine.Activator) GraphBrowserModel {
	m := GraphBrowserModel{Result: r, Activator: a, Height: 15}
	m.refocus()
	return m
}

func (m *GraphBrowserModel) refocus() {
	if len(m.Result.Nodes) == 0 {
		return
	}
	m.Result = m.Result.Refocus(m.Result.Nodes[m.Cursor].ID)
}

func (m GraphBrowserModel) Init() tea.Cmd {
	return nil
}

func (m GraphBrowserModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.Cursor > 0 {
				m.Cursor--
				if m.Cursor < m.Offset {
					m.Offset = m.Cursor
				}
				m.refocus()
			}
		case "down", "j":
			if m.Cursor < len(m.Result.Nodes)-1 {
				m.Cursor++
				if m.Cursor >= m.Offset+m.Height {
					m.Offset = m.Cursor - m.Height + 1
				}
				m.refocus()
			}
		case "enter":
			if len(m.Result.Nodes) == 0 {
				return m, nil
			}
			m.Activated = m.Activator.Activate(m.Result, m.Result.Nodes[m.Cursor].ID)
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.Height = msg.Height - 8
		if m.Height < 5 {
			m.Height = 5
		}
	}
	return m, nil
}

func (m GraphBrowserModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Task Graph"))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ focus  ⏎ open  q quit"))
	b.WriteString("\n\n")

	if len(m.Result.Nodes) == 0 {
		b.WriteString(listDimStyle.Render("  no tasks"))
		b.WriteString("\n")
		return b.String()
	}

	end := min(m.Offset+m.Height, len(m.Result.Nodes))

	rows := [][]string{}
	for i := m.Offset; i < end; i++ {
		n := m.Result.Nodes[i]
		cursor := "  "
		if i == m.Cursor {
			cursor = "▸ "
		}
		blocked := ""
		if n.Blocked {
			blocked = iconBlocked
		}
		status := string(n.Status)
		if status == "" {
			status = "—"
		}
		rows = append(rows, []string{cursor, strconv.Itoa(n.Level), n.Title, status, blocked, strconv.Itoa(len(n.Dependencies))})
	}

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("", "Layer", "Task", "Status", "", "Deps").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle
			}
			idx := m.Offset + row
			if idx >= len(m.Result.Nodes) {
				return lipgloss.NewStyle()
			}
			n := m.Result.Nodes[idx]
			isCurrent := idx == m.Cursor
			if !isCurrent && m.Result.Dimmed(n.ID) {
				return listDimStyle
			}
			var base lipgloss.Style
			switch {
			case col == 3 || col == 4:
				base = statusStyle(n.Status, n.Blocked)
			case isCurrent:
				base = lipgloss.NewStyle().Foreground(colorCyan)
			default:
				base = listRelatedStyle
			}
			return base.Bold(isCurrent)
		})

	b.WriteString(t.Render())
	b.WriteString("\n\n")

	related := len(m.Result.Highlight.RelatedNodes) - 1
	b.WriteString(listDimStyle.Render(fmt.Sprintf("  [%d/%d]  %d related task(s), %d connection(s)",
		m.Cursor+1, len(m.Result.Nodes), max(related, 0), len(m.Result.Highlight.RelatedConnections))))

	return b.String()
}
