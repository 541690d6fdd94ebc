// Package layout implements a constraint-based box layout engine.
//
// The engine computes the final size and position of every node in a tree
// of layout boxes given one outer available size. Minimum constraints flow
// up the tree (content-driven) and maximum constraints flow down
// (space-driven), followed by size materialization and positioning.
//
// # Node kinds
//
// The tree is built from exactly four node kinds:
//   - [Leaf]: no children, typically graphical content (text, icons).
//   - [Box]: exactly one child plus padding and alignment.
//   - [Horizontal]: ordered children arranged along the x axis.
//   - [Vertical]: ordered children arranged along the y axis.
//
// # Sizing
//
// Each axis of a node is sized in one of three modes:
//   - Fixed: the axis is exactly the configured value, no matter what.
//   - Shrink (the default): the axis is as small as its content allows.
//   - Flex: the axis competes for leftover space proportionally to its
//     factor relative to flex siblings.
//
// # Solving
//
// [Solve] runs four passes over the tree:
//
//  1. Minimum constraints, bottom-up. Every node reports the smallest
//     size that fits its content.
//  2. Maximum constraints, top-down. Parents hand each child the largest
//     size it may occupy; flex children split the leftover space.
//  3. Size materialization, bottom-up. Each node picks its final size
//     from its constraints (flex takes max, shrink takes min, fixed
//     takes the fixed value).
//  4. Positioning, top-down. Children are placed according to the main
//     and cross axis alignment of their container.
//
// Pass one must run before pass two: shrink containers distribute space
// using the minimums solved for their shrink children.
//
// Solving never fails. Configuration mistakes that still produce a valid
// tree (children that do not fit, fixed boxes larger than their parents)
// are reported as [Finding] values returned by [Solve]; they do not abort
// the pass.
//
// # Example
//
//	child := layout.NewLeaf().WithIntrinsicSize(layout.FixedSize(50, 50))
//	root := layout.NewBox(child).WithPadding(layout.PaddingAll(10))
//
//	findings := layout.Solve(root, layout.Size{Width: 500, Height: 500})
//	fmt.Println(root.Size()) // {70 70}
//	fmt.Println(len(findings)) // 0
//
// The engine is single-threaded: a tree must not be solved concurrently
// from multiple goroutines. Repeated solves of the same tree with the same
// available size are idempotent for sizes and positions.
package layout
