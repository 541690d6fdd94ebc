package layout

// Box is a container with exactly one child. It adds padding around the
// child and aligns it on both axes. The main axis of a box is x, the
// cross axis is y.
type Box struct {
	meta
	child      Node
	padding    Padding
	mainAlign  Alignment
	crossAlign Alignment
}

// NewBox returns a box wrapping the given child. A nil child is replaced
// by an empty leaf.
func NewBox(child Node) *Box {
	if child == nil {
		child = NewLeaf()
	}
	return &Box{meta: newMeta(), child: child}
}

// WithLabel sets the human-readable label and returns the box.
func (b *Box) WithLabel(label string) *Box {
	b.label = label
	return b
}

// WithIntrinsicSize sets the sizing of both axes and returns the box.
func (b *Box) WithIntrinsicSize(is IntrinsicSize) *Box {
	b.intrinsic = is
	return b
}

// WithPadding sets the inner padding and returns the box.
func (b *Box) WithPadding(p Padding) *Box {
	p.validate()
	b.padding = p
	return b
}

// WithMainAlignment sets the horizontal alignment of the child.
func (b *Box) WithMainAlignment(a Alignment) *Box {
	b.mainAlign = a
	return b
}

// WithCrossAlignment sets the vertical alignment of the child.
func (b *Box) WithCrossAlignment(a Alignment) *Box {
	b.crossAlign = a
	return b
}

// Child returns the wrapped child node.
func (b *Box) Child() Node { return b.child }

// Padding returns the inner padding.
func (b *Box) Padding() Padding { return b.padding }

// Kind returns "box".
func (b *Box) Kind() string { return "box" }

// Children returns a single-element slice holding the child.
func (b *Box) Children() []Node { return []Node{b.child} }

func (b *Box) solveMinConstraints() (float64, float64) {
	minW, minH := b.child.solveMinConstraints()

	if b.intrinsic.Width.Mode == ModeFixed {
		b.constraints.MinWidth = b.intrinsic.Width.Value
	} else {
		b.constraints.MinWidth = minW + b.padding.Horizontal()
	}
	if b.intrinsic.Height.Mode == ModeFixed {
		b.constraints.MinHeight = b.intrinsic.Height.Value
	} else {
		b.constraints.MinHeight = minH + b.padding.Vertical()
	}
	return b.constraints.MinWidth, b.constraints.MinHeight
}

func (b *Box) solveMaxConstraints(space Size) {
	available := Size{
		Width:  space.Width - b.padding.Horizontal(),
		Height: space.Height - b.padding.Vertical(),
	}

	switch is := b.child.IntrinsicSize(); is.Width.Mode {
	case ModeFlex:
		b.child.SetMaxWidth(available.Width)
	case ModeFixed:
		b.child.SetMaxWidth(is.Width.Value)
	case ModeShrink:
		// Left untouched; the child materializes from its minimum.
	}
	switch is := b.child.IntrinsicSize(); is.Height.Mode {
	case ModeFlex:
		b.child.SetMaxHeight(available.Height)
	case ModeFixed:
		b.child.SetMaxHeight(is.Height.Value)
	case ModeShrink:
	}

	b.child.solveMaxConstraints(available)
}

func (b *Box) updateSize() {
	b.applySizing()
	b.child.updateSize()
}

func (b *Box) positionChildren() {
	child := b.child

	switch b.mainAlign {
	case AlignStart:
		child.SetX(b.position.X + b.padding.Left)
	case AlignCenter:
		child.SetX(b.position.X + (b.size.Width-child.Size().Width)/2)
	case AlignEnd:
		child.SetX(b.position.X + b.size.Width - b.padding.Right - child.Size().Width)
	}

	switch b.crossAlign {
	case AlignStart:
		child.SetY(b.position.Y + b.padding.Top)
	case AlignCenter:
		child.SetY(b.position.Y + (b.size.Height-child.Size().Height)/2)
	case AlignEnd:
		child.SetY(b.position.Y + b.size.Height - b.padding.Bottom - child.Size().Height)
	}

	b.checkChildBounds(child)
	child.positionChildren()
}

var _ Node = (*Box)(nil)
