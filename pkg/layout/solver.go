package layout

// Solve lays out the tree rooted at root inside the given available space
// and returns the findings of this solve in pre-order, parents before
// children. Sizes and positions are written into the nodes in place.
//
// The root's max height is always seeded from the available space; its
// max width only when no caller pre-set one via SetMaxWidth.
//
// Solving the same tree with the same available size again yields the
// same sizes and positions. Findings from earlier solves never leak:
// every call starts from a clean diagnostic state.
func Solve(root Node, available Size) []Finding {
	if !root.maxWidthSet() {
		root.SetMaxWidth(available.Width)
	}
	root.SetMaxHeight(available.Height)

	for node := range Iter(root) {
		node.clearFindings()
	}

	// Minimums must be solved before maximums: containers distribute
	// leftover space using the solved minimums of their shrink children.
	root.solveMinConstraints()
	c := root.Constraints()
	root.solveMaxConstraints(Size{Width: c.MaxWidth, Height: c.MaxHeight})
	root.updateSize()
	root.positionChildren()

	var findings []Finding
	for node := range Iter(root) {
		findings = append(findings, node.takeFindings()...)
	}
	return findings
}
