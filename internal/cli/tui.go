package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/matzehuels/boxflow/pkg/layout"
)

// List styles
var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listNormalStyle   = lipgloss.NewStyle().Foreground(colorWhite)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
	listWarningStyle  = lipgloss.NewStyle().Foreground(colorYellow)
)

// =============================================================================
// InspectModel - Interactive layout tree browser
// =============================================================================

// inspectRow is one node of the tree, flattened for display.
type inspectRow struct {
	node     layout.Node
	depth    int
	findings []string
}

// InspectModel is the bubbletea model for browsing a solved layout tree.
type InspectModel struct {
	Rows   []inspectRow
	Frame  layout.Size
	Cursor int
	Height int
	Offset int
}

// newInspectModel flattens the solved tree pre-order and attaches the
// findings that concern each node.
func newInspectModel(root layout.Node, findings []layout.Finding, frame layout.Size) InspectModel {
	var rows []inspectRow
	var walk func(node layout.Node, depth int)
	walk = func(node layout.Node, depth int) {
		rows = append(rows, inspectRow{
			node:     node,
			depth:    depth,
			findings: nodeFindings(findings, node.ID()),
		})
		for _, child := range node.Children() {
			walk(child, depth+1)
		}
	}
	walk(root, 0)

	return InspectModel{
		Rows:   rows,
		Frame:  frame,
		Height: 15,
	}
}

// nodeFindings collects the finding messages that concern a node.
func nodeFindings(findings []layout.Finding, id layout.NodeID) []string {
	var out []string
	for _, f := range findings {
		switch v := f.(type) {
		case layout.Overflow:
			if v.NodeID == id {
				out = append(out, v.Error())
			}
		case layout.OutOfBounds:
			if v.ChildID == id {
				out = append(out, v.Error())
			}
		}
	}
	return out
}

func (m InspectModel) Init() tea.Cmd {
	return nil
}

func (m InspectModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
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
			}
		case "down", "j":
			if m.Cursor < len(m.Rows)-1 {
				m.Cursor++
				if m.Cursor >= m.Offset+m.Height {
					m.Offset = m.Cursor - m.Height + 1
				}
			}
		case "g", "home":
			m.Cursor = 0
			m.Offset = 0
		case "G", "end":
			m.Cursor = len(m.Rows) - 1
			if m.Cursor >= m.Height {
				m.Offset = m.Cursor - m.Height + 1
			}
		}
	case tea.WindowSizeMsg:
		m.Height = msg.Height - 12
		if m.Height < 5 {
			m.Height = 5
		}
	}
	return m, nil
}

func (m InspectModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Layout Inspector"))
	b.WriteString(listDimStyle.Render(fmt.Sprintf("  frame %.0fx%.0f", m.Frame.Width, m.Frame.Height)))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  g/G top/bottom  q quit"))
	b.WriteString("\n\n")

	end := m.Offset + m.Height
	if end > len(m.Rows) {
		end = len(m.Rows)
	}

	for i := m.Offset; i < end; i++ {
		row := m.Rows[i]

		cursor := "  "
		if i == m.Cursor {
			cursor = "▸ "
		}

		marker := " "
		if len(row.findings) > 0 {
			marker = listWarningStyle.Render("!")
		}

		size := row.node.Size()
		pos := row.node.Position()
		line := fmt.Sprintf("%s%s%s%s %s",
			cursor,
			strings.Repeat("  ", row.depth),
			marker,
			nodeName(row.node),
			listDimStyle.Render(fmt.Sprintf("%.0fx%.0f @ %.0f,%.0f", size.Width, size.Height, pos.X, pos.Y)))

		if i == m.Cursor {
			b.WriteString(listSelectedStyle.Render(line))
		} else if len(row.findings) > 0 {
			b.WriteString(listWarningStyle.Render(line))
		} else {
			b.WriteString(listNormalStyle.Render(line))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.detailView())
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render(fmt.Sprintf("  [%d/%d]", m.Cursor+1, len(m.Rows))))

	return b.String()
}

// detailView renders the detail panel for the node under the cursor.
func (m InspectModel) detailView() string {
	if len(m.Rows) == 0 {
		return ""
	}
	row := m.Rows[m.Cursor]
	node := row.node

	is := node.IntrinsicSize()
	con := node.Constraints()

	var b strings.Builder
	b.WriteString(listDimStyle.Render(strings.Repeat("─", 48)))
	b.WriteString("\n")
	b.WriteString("  " + StyleHighlight.Render(nodeName(node)) + listDimStyle.Render("  "+node.Kind()) + "\n")
	b.WriteString("  " + listDimStyle.Render("sizing      ") +
		StyleValue.Render(fmt.Sprintf("w=%s  h=%s", sizingLabel(is.Width), sizingLabel(is.Height))) + "\n")
	b.WriteString("  " + listDimStyle.Render("constraints ") +
		StyleValue.Render(fmt.Sprintf("w=[%.0f, %.0f]  h=[%.0f, %.0f]",
			con.MinWidth, con.MaxWidth, con.MinHeight, con.MaxHeight)) + "\n")

	for _, f := range row.findings {
		b.WriteString("  " + listWarningStyle.Render("! "+f) + "\n")
	}

	return b.String()
}

// nodeName returns the display name for a node, falling back to its kind.
func nodeName(node layout.Node) string {
	if node.Label() != "" {
		return node.Label()
	}
	return node.Kind()
}

// sizingLabel formats a sizing mode compactly, e.g. "fixed(40)" or "flex(2)".
func sizingLabel(s layout.Sizing) string {
	switch s.Mode {
	case layout.ModeFixed:
		return fmt.Sprintf("fixed(%.0f)", s.Value)
	case layout.ModeFlex:
		return fmt.Sprintf("flex(%d)", s.Factor)
	default:
		return "shrink"
	}
}
