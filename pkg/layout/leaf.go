package layout

// Leaf is a layout node without children. Leaves mark the spots where
// actual content (text, images, widgets) will be drawn; the engine only
// cares about the space they claim.
type Leaf struct {
	meta
}

// NewLeaf returns a leaf that shrinks on both axes.
func NewLeaf() *Leaf {
	return &Leaf{meta: newMeta()}
}

// WithLabel sets the human-readable label and returns the leaf.
func (l *Leaf) WithLabel(label string) *Leaf {
	l.label = label
	return l
}

// WithIntrinsicSize sets the sizing of both axes and returns the leaf.
func (l *Leaf) WithIntrinsicSize(is IntrinsicSize) *Leaf {
	l.intrinsic = is
	return l
}

// Kind returns "leaf".
func (l *Leaf) Kind() string { return "leaf" }

// Children returns nil; leaves have no children.
func (l *Leaf) Children() []Node { return nil }

func (l *Leaf) solveMinConstraints() (float64, float64) {
	if l.intrinsic.Width.Mode == ModeFixed {
		l.constraints.MinWidth = l.intrinsic.Width.Value
	}
	if l.intrinsic.Height.Mode == ModeFixed {
		l.constraints.MinHeight = l.intrinsic.Height.Value
	}
	return l.constraints.MinWidth, l.constraints.MinHeight
}

func (l *Leaf) solveMaxConstraints(Size) {}

func (l *Leaf) updateSize() {
	l.applySizing()
}

func (l *Leaf) positionChildren() {}

var _ Node = (*Leaf)(nil)
