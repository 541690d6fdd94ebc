package layout

import "iter"

// Iter returns a pre-order depth-first sequence over the tree rooted at
// root: every parent is yielded before its children, children in
// insertion order. The sequence is lazy and restartable.
func Iter(root Node) iter.Seq[Node] {
	return func(yield func(Node) bool) {
		stack := []Node{root}
		for len(stack) > 0 {
			node := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			if !yield(node) {
				return
			}
			children := node.Children()
			for i := len(children) - 1; i >= 0; i-- {
				stack = append(stack, children[i])
			}
		}
	}
}

// Get returns the first node in pre-order whose ID matches, or nil when
// the tree contains no such node.
func Get(root Node, id NodeID) Node {
	for node := range Iter(root) {
		if node.ID() == id {
			return node
		}
	}
	return nil
}

// Count returns the number of nodes in the tree rooted at root.
func Count(root Node) int {
	var n int
	for range Iter(root) {
		n++
	}
	return n
}
