package layout

import "sync/atomic"

// NodeID identifies a node uniquely within the process. IDs are stamped
// from a monotonic counter at construction and exist for lookup and
// diagnostics only; they carry no ordering semantics.
type NodeID uint64

var idCounter atomic.Uint64

func nextID() NodeID {
	return NodeID(idCounter.Add(1))
}

// Alignment places children along one axis of their container.
type Alignment uint8

const (
	// AlignStart packs children against the near edge (left or top).
	AlignStart Alignment = iota
	// AlignCenter centers children.
	AlignCenter
	// AlignEnd packs children against the far edge (right or bottom).
	AlignEnd
)

// String returns the lowercase name of the alignment.
func (a Alignment) String() string {
	switch a {
	case AlignStart:
		return "start"
	case AlignCenter:
		return "center"
	case AlignEnd:
		return "end"
	default:
		return "unknown"
	}
}

// Node is a single box in a layout tree. The set of implementations is
// closed: Leaf, Box, Horizontal, and Vertical.
//
// Size and Position are outputs of Solve and are undefined before the
// first solve. Constraints are solver working state; callers normally only
// pre-set the root's max width via SetMaxWidth.
type Node interface {
	// ID returns the process-unique identifier of the node.
	ID() NodeID
	// Kind returns the node kind name: "leaf", "box", "horizontal" or
	// "vertical".
	Kind() string
	// Label returns the optional human-readable label.
	Label() string
	// Size returns the resolved size from the last solve.
	Size() Size
	// Position returns the resolved top-left corner from the last solve.
	Position() Position
	// Bounds returns the rectangle the node occupies.
	Bounds() Bounds
	// IntrinsicSize returns the configured sizing of the node.
	IntrinsicSize() IntrinsicSize
	// Constraints returns the solver's current min/max constraints.
	Constraints() Constraints
	// Children returns the node's children in insertion order. The slice
	// is owned by the node and must not be mutated.
	Children() []Node

	// SetX moves the node's left edge.
	SetX(x float64)
	// SetY moves the node's top edge.
	SetY(y float64)
	// SetPosition moves both edges at once.
	SetPosition(p Position)
	// SetMinWidth and friends overwrite a single constraint. Solve
	// recomputes constraints, so manual values only matter for the
	// root's max width, which Solve leaves alone when already set.
	SetMinWidth(v float64)
	SetMinHeight(v float64)
	SetMaxWidth(v float64)
	SetMaxHeight(v float64)

	// solveMinConstraints resolves the minimum constraints of the node
	// and its subtree bottom-up and returns the node's solved minimums.
	solveMinConstraints() (minWidth, minHeight float64)
	// solveMaxConstraints distributes the given space to the subtree
	// top-down. The node's own max constraints are already set by the
	// parent (or the solver, for the root).
	solveMaxConstraints(space Size)
	// updateSize materializes the final size from the constraints,
	// bottom-up, recording overflow findings on containers.
	updateSize()
	// positionChildren places the subtree top-down, recording
	// out-of-bounds findings.
	positionChildren()

	maxWidthSet() bool
	clearFindings()
	takeFindings() []Finding
}

// meta carries the state shared by every node kind.
type meta struct {
	id          NodeID
	label       string
	size        Size
	position    Position
	intrinsic   IntrinsicSize
	constraints Constraints
	// hasMaxWidth distinguishes an unset root max width from an explicit
	// zero. Solve only seeds the root's max width when it is unset.
	hasMaxWidth bool
	findings    []Finding
}

func newMeta() meta {
	return meta{id: nextID()}
}

func (m *meta) ID() NodeID                   { return m.id }
func (m *meta) Label() string                { return m.label }
func (m *meta) Size() Size                   { return m.size }
func (m *meta) Position() Position           { return m.position }
func (m *meta) Bounds() Bounds               { return NewBounds(m.position, m.size) }
func (m *meta) IntrinsicSize() IntrinsicSize { return m.intrinsic }
func (m *meta) Constraints() Constraints     { return m.constraints }

func (m *meta) SetX(x float64) { m.position.X = x }
func (m *meta) SetY(y float64) { m.position.Y = y }

// SetPosition is composed from the per-axis setters so that subtree
// offsets (like scrolling) only need to hook a single axis.
func (m *meta) SetPosition(p Position) {
	m.SetX(p.X)
	m.SetY(p.Y)
}

func (m *meta) SetMinWidth(v float64)  { m.constraints.MinWidth = v }
func (m *meta) SetMinHeight(v float64) { m.constraints.MinHeight = v }
func (m *meta) SetMaxWidth(v float64) {
	m.constraints.MaxWidth = v
	m.hasMaxWidth = true
}
func (m *meta) SetMaxHeight(v float64) { m.constraints.MaxHeight = v }

func (m *meta) maxWidthSet() bool { return m.hasMaxWidth }

func (m *meta) clearFindings() { m.findings = nil }

func (m *meta) takeFindings() []Finding {
	f := m.findings
	m.findings = nil
	return f
}

// record appends a finding unless an identical one is already pending,
// keeping diagnostics at one per condition per solve.
func (m *meta) record(f Finding) {
	for _, existing := range m.findings {
		if existing == f {
			return
		}
	}
	m.findings = append(m.findings, f)
}

// applySizing materializes the node's final size from its solved
// constraints: flex takes the max, shrink the min, fixed its value.
func (m *meta) applySizing() {
	switch m.intrinsic.Width.Mode {
	case ModeFlex:
		m.size.Width = m.constraints.MaxWidth
	case ModeShrink:
		m.size.Width = m.constraints.MinWidth
	case ModeFixed:
		m.size.Width = m.intrinsic.Width.Value
	}
	switch m.intrinsic.Height.Mode {
	case ModeFlex:
		m.size.Height = m.constraints.MaxHeight
	case ModeShrink:
		m.size.Height = m.constraints.MinHeight
	case ModeFixed:
		m.size.Height = m.intrinsic.Height.Value
	}
}

// checkChildBounds records an out-of-bounds finding when any edge of the
// child lies outside the node's own box.
func (m *meta) checkChildBounds(child Node) {
	p := m.Bounds()
	c := child.Bounds()
	if c.Min.X < p.Min.X-tolerance || c.Min.Y < p.Min.Y-tolerance ||
		c.Max.X > p.Max.X+tolerance || c.Max.Y > p.Max.Y+tolerance {
		m.record(OutOfBounds{ParentID: m.id, ChildID: child.ID()})
	}
}
