package layout

import (
	"math"

	"github.com/matzehuels/boxflow/pkg/errors"
)

// Horizontal arranges its children along the x axis in insertion order.
// The main axis is x, the cross axis is y.
type Horizontal struct {
	meta
	children   []Node
	spacing    float64
	padding    Padding
	mainAlign  Alignment
	crossAlign Alignment
}

// NewHorizontal returns an empty horizontal container that shrinks on
// both axes.
func NewHorizontal() *Horizontal {
	return &Horizontal{meta: newMeta()}
}

// WithLabel sets the human-readable label and returns the container.
func (h *Horizontal) WithLabel(label string) *Horizontal {
	h.label = label
	return h
}

// WithIntrinsicSize sets the sizing of both axes and returns the container.
func (h *Horizontal) WithIntrinsicSize(is IntrinsicSize) *Horizontal {
	h.intrinsic = is
	return h
}

// WithPadding sets the inner padding and returns the container.
func (h *Horizontal) WithPadding(p Padding) *Horizontal {
	p.validate()
	h.padding = p
	return h
}

// WithSpacing sets the gap between consecutive children. It panics with
// an INVALID_SPACING error when spacing is negative.
func (h *Horizontal) WithSpacing(spacing float64) *Horizontal {
	validateSpacing(spacing)
	h.spacing = spacing
	return h
}

// WithMainAlignment sets how children are packed along the x axis.
func (h *Horizontal) WithMainAlignment(a Alignment) *Horizontal {
	h.mainAlign = a
	return h
}

// WithCrossAlignment sets how each child is placed along the y axis.
func (h *Horizontal) WithCrossAlignment(a Alignment) *Horizontal {
	h.crossAlign = a
	return h
}

// AppendChild adds a child after the existing ones and returns the
// container.
func (h *Horizontal) AppendChild(child Node) *Horizontal {
	h.children = append(h.children, child)
	return h
}

// AppendChildren adds the given children in order and returns the
// container.
func (h *Horizontal) AppendChildren(children ...Node) *Horizontal {
	h.children = append(h.children, children...)
	return h
}

// Spacing returns the gap between consecutive children.
func (h *Horizontal) Spacing() float64 { return h.spacing }

// Padding returns the inner padding.
func (h *Horizontal) Padding() Padding { return h.padding }

// Kind returns "horizontal".
func (h *Horizontal) Kind() string { return "horizontal" }

// Children returns the children in insertion order.
func (h *Horizontal) Children() []Node { return h.children }

func (h *Horizontal) solveMinConstraints() (float64, float64) {
	content := h.childrenMinSize()

	if h.intrinsic.Width.Mode == ModeFixed {
		h.constraints.MinWidth = h.intrinsic.Width.Value
	} else {
		h.constraints.MinWidth = content.Width
	}
	if h.intrinsic.Height.Mode == ModeFixed {
		h.constraints.MinHeight = h.intrinsic.Height.Value
	} else {
		h.constraints.MinHeight = content.Height
	}
	return h.constraints.MinWidth, h.constraints.MinHeight
}

// childrenMinSize sums the children's minimums along the main axis and
// takes the largest along the cross axis. Padding applies even without
// children; spacing only between consecutive children.
func (h *Horizontal) childrenMinSize() Size {
	sum := Size{Width: h.padding.Horizontal(), Height: h.padding.Vertical()}
	if len(h.children) == 0 {
		return sum
	}

	sum.Width += float64(len(h.children)-1) * h.spacing
	var tallest float64
	for _, child := range h.children {
		minW, minH := child.solveMinConstraints()
		sum.Width += minW
		tallest = math.Max(tallest, minH)
	}
	sum.Height += tallest
	return sum
}

func (h *Horizontal) solveMaxConstraints(Size) {
	var flexTotal float64
	for _, child := range h.children {
		if w := child.IntrinsicSize().Width; w.Mode == ModeFlex {
			flexTotal += float64(w.Factor)
		}
	}

	// Shrink containers hand out space from their solved minimum, not
	// from the max the parent granted.
	availableWidth := h.constraints.MaxWidth
	if h.intrinsic.Width.Mode == ModeShrink {
		availableWidth = h.constraints.MinWidth
	}
	availableWidth -= h.padding.Horizontal() + h.reservedMainSize()

	availableHeight := h.constraints.MaxHeight
	if h.intrinsic.Height.Mode == ModeShrink {
		availableHeight = h.constraints.MinHeight
	}
	availableHeight -= h.padding.Vertical()

	for _, child := range h.children {
		is := child.IntrinsicSize()

		switch is.Width.Mode {
		case ModeFlex:
			if flexTotal > 0 {
				child.SetMaxWidth(float64(is.Width.Factor) / flexTotal * availableWidth)
			}
		case ModeFixed:
			child.SetMaxWidth(is.Width.Value)
		case ModeShrink:
			child.SetMaxWidth(child.Constraints().MinWidth)
		}

		switch is.Height.Mode {
		case ModeFlex:
			child.SetMaxHeight(availableHeight)
		case ModeFixed:
			child.SetMaxHeight(is.Height.Value)
		case ModeShrink:
			child.SetMaxHeight(child.Constraints().MinHeight)
		}

		c := child.Constraints()
		child.solveMaxConstraints(Size{Width: c.MaxWidth, Height: c.MaxHeight})
	}
}

// reservedMainSize is the main-axis space flex children cannot claim:
// fixed widths, shrink children's solved minimums, and the spacing
// between consecutive children.
func (h *Horizontal) reservedMainSize() float64 {
	var sum float64
	for i, child := range h.children {
		switch is := child.IntrinsicSize(); is.Width.Mode {
		case ModeFixed:
			sum += is.Width.Value
		case ModeShrink:
			sum += child.Constraints().MinWidth
		}
		if i != len(h.children)-1 {
			sum += h.spacing
		}
	}
	return sum
}

func (h *Horizontal) updateSize() {
	h.applySizing()
	for _, child := range h.children {
		child.updateSize()
	}

	content := h.contentSize()
	if content.Width > h.size.Width+tolerance {
		h.record(Overflow{NodeID: h.id, Axis: MainAxis})
	}
	if content.Height > h.size.Height+tolerance {
		h.record(Overflow{NodeID: h.id, Axis: CrossAxis})
	}
}

// contentSize is the extent the materialized children actually occupy,
// including spacing and padding.
func (h *Horizontal) contentSize() Size {
	content := Size{Width: h.padding.Horizontal(), Height: h.padding.Vertical()}
	var tallest float64
	for i, child := range h.children {
		content.Width += child.Size().Width
		if i != len(h.children)-1 {
			content.Width += h.spacing
		}
		tallest = math.Max(tallest, child.Size().Height)
	}
	content.Height += tallest
	return content
}

func (h *Horizontal) positionChildren() {
	switch h.mainAlign {
	case AlignStart:
		x := h.position.X + h.padding.Left
		for _, child := range h.children {
			child.SetX(x)
			x += child.Size().Width + h.spacing
		}
	case AlignCenter:
		if len(h.children) == 0 {
			break
		}
		var contentWidth float64
		for _, child := range h.children {
			contentWidth += child.Size().Width
		}
		contentWidth += float64(len(h.children)-1) * h.spacing
		x := h.position.X + (h.size.Width-contentWidth)/2
		for _, child := range h.children {
			child.SetX(x)
			x += child.Size().Width + h.spacing
		}
	case AlignEnd:
		x := h.position.X + h.size.Width - h.padding.Right
		for i := len(h.children) - 1; i >= 0; i-- {
			child := h.children[i]
			x -= child.Size().Width
			child.SetX(x)
			x -= h.spacing
		}
	}

	for _, child := range h.children {
		switch h.crossAlign {
		case AlignStart:
			child.SetY(h.position.Y + h.padding.Top)
		case AlignCenter:
			child.SetY(h.position.Y + (h.size.Height-child.Size().Height)/2)
		case AlignEnd:
			child.SetY(h.position.Y + h.size.Height - h.padding.Bottom - child.Size().Height)
		}
	}

	for _, child := range h.children {
		h.checkChildBounds(child)
		child.positionChildren()
	}
}

func validateSpacing(spacing float64) {
	if spacing < 0 {
		panic(errors.New(errors.ErrCodeInvalidSpacing,
			"spacing must be non-negative, got %v", spacing))
	}
}

var _ Node = (*Horizontal)(nil)
