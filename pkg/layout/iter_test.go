package layout

import "testing"

func buildIterTree() (Node, []string) {
	//        root
	//       /    \
	//     row    tail
	//    /   \
	//   a     b
	a := NewLeaf().WithLabel("a")
	b := NewLeaf().WithLabel("b")
	row := NewHorizontal().WithLabel("row").AppendChildren(a, b)
	tail := NewLeaf().WithLabel("tail")
	root := NewVertical().WithLabel("root").AppendChildren(row, tail)

	return root, []string{"root", "row", "a", "b", "tail"}
}

func TestIterPreOrder(t *testing.T) {
	root, want := buildIterTree()

	var got []string
	for node := range Iter(root) {
		got = append(got, node.Label())
	}

	if len(got) != len(want) {
		t.Fatalf("visited %d nodes, want %d: %v", len(got), len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("visit %d = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestIterEarlyStop(t *testing.T) {
	root, _ := buildIterTree()

	var visited int
	for range Iter(root) {
		visited++
		if visited == 2 {
			break
		}
	}

	if visited != 2 {
		t.Errorf("visited = %d, want 2", visited)
	}
}

func TestIterIsRestartable(t *testing.T) {
	root, want := buildIterTree()
	seq := Iter(root)

	for run := 0; run < 2; run++ {
		var got []string
		for node := range seq {
			got = append(got, node.Label())
		}
		if len(got) != len(want) {
			t.Fatalf("run %d visited %d nodes, want %d", run, len(got), len(want))
		}
	}
}

func TestGet(t *testing.T) {
	root, _ := buildIterTree()

	var target Node
	for node := range Iter(root) {
		if node.Label() == "b" {
			target = node
		}
	}

	if got := Get(root, target.ID()); got != target {
		t.Errorf("Get = %v, want node %q", got, "b")
	}
	if got := Get(root, NodeID(0)); got != nil {
		t.Errorf("Get(unknown) = %v, want nil", got)
	}
}

func TestCount(t *testing.T) {
	root, want := buildIterTree()

	if got := Count(root); got != len(want) {
		t.Errorf("Count = %d, want %d", got, len(want))
	}
	if got := Count(NewLeaf()); got != 1 {
		t.Errorf("Count(leaf) = %d, want 1", got)
	}
}
