package layout

import "fmt"

// Axis names one of the two layout axes of a container, relative to its
// orientation: the main axis is the one children are stacked along.
type Axis uint8

const (
	// MainAxis is the stacking direction (x for Horizontal, y for Vertical).
	MainAxis Axis = iota
	// CrossAxis is perpendicular to the main axis.
	CrossAxis
)

// String returns a human-readable axis name.
func (a Axis) String() string {
	switch a {
	case MainAxis:
		return "main axis"
	case CrossAxis:
		return "cross axis"
	default:
		return "unknown axis"
	}
}

// Finding is a soft diagnostic produced during a solve. Findings describe
// layouts that are valid but probably unintended, like children that do
// not fit inside their parent. They never abort a solve.
type Finding interface {
	error
	finding()
}

// OutOfBounds reports that a child was positioned partly or fully outside
// its parent's box.
type OutOfBounds struct {
	ParentID NodeID
	ChildID  NodeID
}

func (f OutOfBounds) Error() string {
	return fmt.Sprintf("node %d lies outside the bounds of its parent %d", f.ChildID, f.ParentID)
}

func (OutOfBounds) finding() {}

// Overflow reports that the content of a container needs more space on one
// axis than the container's final size provides.
type Overflow struct {
	NodeID NodeID
	Axis   Axis
}

func (f Overflow) Error() string {
	return fmt.Sprintf("content of node %d overflows its %s", f.NodeID, f.Axis)
}

func (Overflow) finding() {}

// HasOverflow reports whether findings contains an overflow for the given
// node and axis.
func HasOverflow(findings []Finding, id NodeID, axis Axis) bool {
	for _, f := range findings {
		if o, ok := f.(Overflow); ok && o.NodeID == id && o.Axis == axis {
			return true
		}
	}
	return false
}

// HasOutOfBounds reports whether findings contains an out-of-bounds
// record for the given parent and child.
func HasOutOfBounds(findings []Finding, parentID, childID NodeID) bool {
	for _, f := range findings {
		if o, ok := f.(OutOfBounds); ok && o.ParentID == parentID && o.ChildID == childID {
			return true
		}
	}
	return false
}
