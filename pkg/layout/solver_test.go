package layout

import "testing"

func buildDashboardTree() (root *Vertical, nodes []Node) {
	title := NewLeaf().WithLabel("title").WithIntrinsicSize(FixedSize(200, 20))
	header := NewBox(title).
		WithLabel("header").
		WithIntrinsicSize(IntrinsicSize{Width: Flex(1), Height: Fixed(40)}).
		WithMainAlignment(AlignCenter).
		WithCrossAlignment(AlignCenter)

	sidebar := NewLeaf().WithLabel("sidebar").
		WithIntrinsicSize(IntrinsicSize{Width: Fixed(80), Height: Flex(1)})
	content := NewLeaf().WithLabel("content").WithIntrinsicSize(Fill())
	body := NewHorizontal().
		WithLabel("body").
		WithIntrinsicSize(IntrinsicSize{Width: Flex(1), Height: Flex(1)}).
		WithSpacing(8).
		AppendChildren(sidebar, content)

	root = NewVertical().
		WithLabel("root").
		WithIntrinsicSize(Fill()).
		AppendChildren(header, body)

	return root, []Node{root, header, title, body, sidebar, content}
}

func TestSolveIsIdempotent(t *testing.T) {
	root, nodes := buildDashboardTree()
	available := Size{Width: 640, Height: 480}

	first := Solve(root, available)

	sizes := make([]Size, len(nodes))
	positions := make([]Position, len(nodes))
	for i, n := range nodes {
		sizes[i] = n.Size()
		positions[i] = n.Position()
	}

	second := Solve(root, available)

	if len(first) != len(second) {
		t.Errorf("findings count changed between solves: %d then %d", len(first), len(second))
	}
	for i, n := range nodes {
		if n.Size() != sizes[i] {
			t.Errorf("node %q size changed: %v then %v", n.Label(), sizes[i], n.Size())
		}
		if n.Position() != positions[i] {
			t.Errorf("node %q position changed: %v then %v", n.Label(), positions[i], n.Position())
		}
	}
}

func TestSolveDashboardGeometry(t *testing.T) {
	root, nodes := buildDashboardTree()

	findings := Solve(root, Size{Width: 640, Height: 480})

	if len(findings) != 0 {
		t.Fatalf("findings = %v, want none", findings)
	}

	header, title, body := nodes[1], nodes[2], nodes[3]
	sidebar, content := nodes[4], nodes[5]

	if got := root.Size(); got != (Size{Width: 640, Height: 480}) {
		t.Errorf("root Size = %v, want {640 480}", got)
	}
	if got := header.Size(); got != (Size{Width: 640, Height: 40}) {
		t.Errorf("header Size = %v, want {640 40}", got)
	}
	if got := title.Position(); got != (Position{X: 220, Y: 10}) {
		t.Errorf("title Position = %v, want {220 10}", got)
	}
	if got := body.Size(); got != (Size{Width: 640, Height: 440}) {
		t.Errorf("body Size = %v, want {640 440}", got)
	}
	if got := body.Position(); got != (Position{X: 0, Y: 40}) {
		t.Errorf("body Position = %v, want {0 40}", got)
	}
	if got := sidebar.Size(); got != (Size{Width: 80, Height: 440}) {
		t.Errorf("sidebar Size = %v, want {80 440}", got)
	}
	// 640 minus the 80 sidebar and the 8 gap.
	if got := content.Size(); got != (Size{Width: 552, Height: 440}) {
		t.Errorf("content Size = %v, want {552 440}", got)
	}
	if got := content.Position(); got != (Position{X: 88, Y: 40}) {
		t.Errorf("content Position = %v, want {88 40}", got)
	}
}

func TestSolveDoesNotAccumulateFindings(t *testing.T) {
	child := NewLeaf().WithIntrinsicSize(FixedSize(60, 10))
	row := NewHorizontal().
		WithIntrinsicSize(FixedSize(50, 20)).
		AppendChild(child)

	first := Solve(row, Size{Width: 50, Height: 20})
	second := Solve(row, Size{Width: 50, Height: 20})

	if len(first) == 0 {
		t.Fatal("expected findings from an overflowing tree")
	}
	if len(second) != len(first) {
		t.Errorf("second solve returned %d findings, want %d", len(second), len(first))
	}
}

func TestSolveFindingsAreParentFirst(t *testing.T) {
	grand := NewLeaf().WithIntrinsicSize(FixedSize(60, 5))
	inner := NewHorizontal().
		WithIntrinsicSize(FixedSize(40, 10)).
		AppendChild(grand)
	outer := NewHorizontal().
		WithIntrinsicSize(FixedSize(30, 20)).
		AppendChild(inner)

	findings := Solve(outer, Size{Width: 30, Height: 20})

	outerIdx, innerIdx := -1, -1
	for i, f := range findings {
		switch o := f.(type) {
		case Overflow:
			if o.NodeID == outer.ID() && outerIdx < 0 {
				outerIdx = i
			}
			if o.NodeID == inner.ID() && innerIdx < 0 {
				innerIdx = i
			}
		}
	}
	if outerIdx < 0 || innerIdx < 0 {
		t.Fatalf("findings = %v, want overflows on both containers", findings)
	}
	if outerIdx > innerIdx {
		t.Errorf("parent finding at %d after child finding at %d", outerIdx, innerIdx)
	}
}

func TestSolveSeedsRootConstraints(t *testing.T) {
	t.Run("max width only when unset", func(t *testing.T) {
		root := NewLeaf().WithIntrinsicSize(Fill())
		root.SetMaxWidth(250)

		Solve(root, Size{Width: 500, Height: 100})

		if got := root.Constraints().MaxWidth; got != 250 {
			t.Errorf("MaxWidth = %v, want the pre-set 250", got)
		}
	})

	t.Run("max height always", func(t *testing.T) {
		root := NewLeaf().WithIntrinsicSize(Fill())
		root.SetMaxHeight(999)

		Solve(root, Size{Width: 500, Height: 100})

		if got := root.Constraints().MaxHeight; got != 100 {
			t.Errorf("MaxHeight = %v, want 100", got)
		}
	})
}
