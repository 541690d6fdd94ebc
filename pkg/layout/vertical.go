package layout

import "math"

// Vertical arranges its children along the y axis in insertion order.
// The main axis is y, the cross axis is x.
//
// A vertical container additionally carries a scroll offset. The offset
// accumulates across Scroll calls and shifts the children's y positions
// on every solve; scrolled-away children are reported as out of bounds.
type Vertical struct {
	meta
	children     []Node
	spacing      float64
	padding      Padding
	mainAlign    Alignment
	crossAlign   Alignment
	scrollOffset float64
}

// NewVertical returns an empty vertical container that shrinks on both
// axes.
func NewVertical() *Vertical {
	return &Vertical{meta: newMeta()}
}

// WithLabel sets the human-readable label and returns the container.
func (v *Vertical) WithLabel(label string) *Vertical {
	v.label = label
	return v
}

// WithIntrinsicSize sets the sizing of both axes and returns the container.
func (v *Vertical) WithIntrinsicSize(is IntrinsicSize) *Vertical {
	v.intrinsic = is
	return v
}

// WithPadding sets the inner padding and returns the container.
func (v *Vertical) WithPadding(p Padding) *Vertical {
	p.validate()
	v.padding = p
	return v
}

// WithSpacing sets the gap between consecutive children. It panics with
// an INVALID_SPACING error when spacing is negative.
func (v *Vertical) WithSpacing(spacing float64) *Vertical {
	validateSpacing(spacing)
	v.spacing = spacing
	return v
}

// WithMainAlignment sets how children are packed along the y axis.
func (v *Vertical) WithMainAlignment(a Alignment) *Vertical {
	v.mainAlign = a
	return v
}

// WithCrossAlignment sets how each child is placed along the x axis.
func (v *Vertical) WithCrossAlignment(a Alignment) *Vertical {
	v.crossAlign = a
	return v
}

// AppendChild adds a child after the existing ones and returns the
// container.
func (v *Vertical) AppendChild(child Node) *Vertical {
	v.children = append(v.children, child)
	return v
}

// AppendChildren adds the given children in order and returns the
// container.
func (v *Vertical) AppendChildren(children ...Node) *Vertical {
	v.children = append(v.children, children...)
	return v
}

// Scroll shifts the content by delta along the y axis. Deltas accumulate;
// the offset is applied on the next solve. Negative deltas scroll the
// content up.
func (v *Vertical) Scroll(delta float64) {
	v.scrollOffset += delta
}

// ScrollOffset returns the accumulated scroll offset.
func (v *Vertical) ScrollOffset() float64 { return v.scrollOffset }

// Spacing returns the gap between consecutive children.
func (v *Vertical) Spacing() float64 { return v.spacing }

// Padding returns the inner padding.
func (v *Vertical) Padding() Padding { return v.padding }

// Kind returns "vertical".
func (v *Vertical) Kind() string { return "vertical" }

// Children returns the children in insertion order.
func (v *Vertical) Children() []Node { return v.children }

func (v *Vertical) solveMinConstraints() (float64, float64) {
	content := v.childrenMinSize()

	if v.intrinsic.Width.Mode == ModeFixed {
		v.constraints.MinWidth = v.intrinsic.Width.Value
	} else {
		v.constraints.MinWidth = content.Width
	}
	if v.intrinsic.Height.Mode == ModeFixed {
		v.constraints.MinHeight = v.intrinsic.Height.Value
	} else {
		v.constraints.MinHeight = content.Height
	}
	return v.constraints.MinWidth, v.constraints.MinHeight
}

// childrenMinSize sums the children's minimums along the main axis and
// takes the largest along the cross axis. Padding applies even without
// children; spacing only between consecutive children.
func (v *Vertical) childrenMinSize() Size {
	sum := Size{Width: v.padding.Horizontal(), Height: v.padding.Vertical()}
	if len(v.children) == 0 {
		return sum
	}

	sum.Height += float64(len(v.children)-1) * v.spacing
	var widest float64
	for _, child := range v.children {
		minW, minH := child.solveMinConstraints()
		sum.Height += minH
		widest = math.Max(widest, minW)
	}
	sum.Width += widest
	return sum
}

func (v *Vertical) solveMaxConstraints(Size) {
	var flexTotal float64
	for _, child := range v.children {
		if h := child.IntrinsicSize().Height; h.Mode == ModeFlex {
			flexTotal += float64(h.Factor)
		}
	}

	// Shrink containers hand out space from their solved minimum, not
	// from the max the parent granted.
	availableHeight := v.constraints.MaxHeight
	if v.intrinsic.Height.Mode == ModeShrink {
		availableHeight = v.constraints.MinHeight
	}
	availableHeight -= v.padding.Vertical() + v.reservedMainSize()

	availableWidth := v.constraints.MaxWidth
	if v.intrinsic.Width.Mode == ModeShrink {
		availableWidth = v.constraints.MinWidth
	}
	availableWidth -= v.padding.Horizontal()

	for _, child := range v.children {
		is := child.IntrinsicSize()

		switch is.Height.Mode {
		case ModeFlex:
			if flexTotal > 0 {
				child.SetMaxHeight(float64(is.Height.Factor) / flexTotal * availableHeight)
			}
		case ModeFixed:
			child.SetMaxHeight(is.Height.Value)
		case ModeShrink:
			child.SetMaxHeight(child.Constraints().MinHeight)
		}

		switch is.Width.Mode {
		case ModeFlex:
			child.SetMaxWidth(availableWidth)
		case ModeFixed:
			child.SetMaxWidth(is.Width.Value)
		case ModeShrink:
			child.SetMaxWidth(child.Constraints().MinWidth)
		}

		c := child.Constraints()
		child.solveMaxConstraints(Size{Width: c.MaxWidth, Height: c.MaxHeight})
	}
}

// reservedMainSize is the main-axis space flex children cannot claim:
// fixed heights, shrink children's solved minimums, and the spacing
// between consecutive children.
func (v *Vertical) reservedMainSize() float64 {
	var sum float64
	for i, child := range v.children {
		switch is := child.IntrinsicSize(); is.Height.Mode {
		case ModeFixed:
			sum += is.Height.Value
		case ModeShrink:
			sum += child.Constraints().MinHeight
		}
		if i != len(v.children)-1 {
			sum += v.spacing
		}
	}
	return sum
}

func (v *Vertical) updateSize() {
	v.applySizing()
	for _, child := range v.children {
		child.updateSize()
	}

	content := v.contentSize()
	if content.Height > v.size.Height+tolerance {
		v.record(Overflow{NodeID: v.id, Axis: MainAxis})
	}
	if content.Width > v.size.Width+tolerance {
		v.record(Overflow{NodeID: v.id, Axis: CrossAxis})
	}
}

// contentSize is the extent the materialized children actually occupy,
// including spacing and padding.
func (v *Vertical) contentSize() Size {
	content := Size{Width: v.padding.Horizontal(), Height: v.padding.Vertical()}
	var widest float64
	for i, child := range v.children {
		content.Height += child.Size().Height
		if i != len(v.children)-1 {
			content.Height += v.spacing
		}
		widest = math.Max(widest, child.Size().Width)
	}
	content.Width += widest
	return content
}

func (v *Vertical) positionChildren() {
	switch v.mainAlign {
	case AlignStart:
		y := v.position.Y + v.padding.Top
		for _, child := range v.children {
			child.SetY(y)
			y += child.Size().Height + v.spacing
		}
	case AlignCenter:
		if len(v.children) == 0 {
			break
		}
		var contentHeight float64
		for _, child := range v.children {
			contentHeight += child.Size().Height
		}
		contentHeight += float64(len(v.children)-1) * v.spacing
		y := v.position.Y + (v.size.Height-contentHeight)/2
		for _, child := range v.children {
			child.SetY(y)
			y += child.Size().Height + v.spacing
		}
	case AlignEnd:
		y := v.position.Y + v.size.Height - v.padding.Bottom
		for i := len(v.children) - 1; i >= 0; i-- {
			child := v.children[i]
			y -= child.Size().Height
			child.SetY(y)
			y -= v.spacing
		}
	}

	for _, child := range v.children {
		switch v.crossAlign {
		case AlignStart:
			child.SetX(v.position.X + v.padding.Left)
		case AlignCenter:
			child.SetX(v.position.X + (v.size.Width-child.Size().Width)/2)
		case AlignEnd:
			child.SetX(v.position.X + v.size.Width - v.padding.Right - child.Size().Width)
		}
	}

	for _, child := range v.children {
		if v.scrollOffset != 0 {
			child.SetY(child.Position().Y + v.scrollOffset)
		}
		v.checkChildBounds(child)
		child.positionChildren()
	}
}

var _ Node = (*Vertical)(nil)
