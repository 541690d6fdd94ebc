package cli

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/matzehuels/boxflow/pkg/layout"
)

func inspectFixture(t *testing.T) InspectModel {
	t.Helper()

	header := layout.NewLeaf().WithLabel("header").WithIntrinsicSize(layout.IntrinsicSize{
		Width:  layout.Flex(1),
		Height: layout.Fixed(40),
	})
	body := layout.NewLeaf().WithLabel("body").WithIntrinsicSize(layout.Fill())
	root := layout.NewVertical().
		WithLabel("root").
		WithIntrinsicSize(layout.Fill()).
		AppendChildren(header, body)

	frame := layout.Size{Width: 640, Height: 480}
	findings := layout.Solve(root, frame)
	return newInspectModel(root, findings, frame)
}

func keyMsg(s string) tea.KeyMsg {
	if s == "up" {
		return tea.KeyMsg{Type: tea.KeyUp}
	}
	if s == "down" {
		return tea.KeyMsg{Type: tea.KeyDown}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestNewInspectModel(t *testing.T) {
	m := inspectFixture(t)

	if len(m.Rows) != 3 {
		t.Fatalf("len(Rows) = %d, want 3", len(m.Rows))
	}
	if m.Rows[0].depth != 0 || m.Rows[1].depth != 1 || m.Rows[2].depth != 1 {
		t.Errorf("depths = %d,%d,%d, want 0,1,1",
			m.Rows[0].depth, m.Rows[1].depth, m.Rows[2].depth)
	}
	if m.Cursor != 0 {
		t.Errorf("Cursor = %d, want 0", m.Cursor)
	}
}

func TestInspectModelNavigation(t *testing.T) {
	m := inspectFixture(t)

	next, _ := m.Update(keyMsg("down"))
	m = next.(InspectModel)
	if m.Cursor != 1 {
		t.Errorf("Cursor after down = %d, want 1", m.Cursor)
	}

	next, _ = m.Update(keyMsg("G"))
	m = next.(InspectModel)
	if m.Cursor != len(m.Rows)-1 {
		t.Errorf("Cursor after G = %d, want %d", m.Cursor, len(m.Rows)-1)
	}

	// Down at the bottom stays put.
	next, _ = m.Update(keyMsg("j"))
	m = next.(InspectModel)
	if m.Cursor != len(m.Rows)-1 {
		t.Errorf("Cursor after j at bottom = %d, want %d", m.Cursor, len(m.Rows)-1)
	}

	next, _ = m.Update(keyMsg("g"))
	m = next.(InspectModel)
	if m.Cursor != 0 {
		t.Errorf("Cursor after g = %d, want 0", m.Cursor)
	}

	next, _ = m.Update(keyMsg("up"))
	m = next.(InspectModel)
	if m.Cursor != 0 {
		t.Errorf("Cursor after up at top = %d, want 0", m.Cursor)
	}
}

func TestInspectModelQuit(t *testing.T) {
	m := inspectFixture(t)

	_, cmd := m.Update(keyMsg("q"))
	if cmd == nil {
		t.Fatal("q should return a quit command")
	}
}

func TestInspectModelView(t *testing.T) {
	m := inspectFixture(t)

	view := m.View()
	for _, want := range []string{"Layout Inspector", "root", "header", "body", "640x480"} {
		if !strings.Contains(view, want) {
			t.Errorf("View() missing %q", want)
		}
	}
	if !strings.Contains(view, "[1/3]") {
		t.Errorf("View() missing position footer, got:\n%s", view)
	}
}

func TestSizingLabel(t *testing.T) {
	tests := []struct {
		sizing layout.Sizing
		want   string
	}{
		{layout.Fixed(40), "fixed(40)"},
		{layout.Flex(2), "flex(2)"},
		{layout.Shrink(), "shrink"},
	}

	for _, tt := range tests {
		if got := sizingLabel(tt.sizing); got != tt.want {
			t.Errorf("sizingLabel(%+v) = %q, want %q", tt.sizing, got, tt.want)
		}
	}
}
