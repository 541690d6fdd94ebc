package layout

// Mode selects how one axis of a node is sized.
type Mode uint8

const (
	// ModeShrink sizes the axis to the minimum needed to fit content.
	// This is the zero value and the default for every node.
	ModeShrink Mode = iota
	// ModeFixed locks the axis to a configured value regardless of the
	// space available or the content inside.
	ModeFixed
	// ModeFlex grows the axis into leftover space, proportionally to its
	// factor relative to the factors of its flex siblings.
	ModeFlex
)

// String returns the lowercase name of the mode.
func (m Mode) String() string {
	switch m {
	case ModeShrink:
		return "shrink"
	case ModeFixed:
		return "fixed"
	case ModeFlex:
		return "flex"
	default:
		return "unknown"
	}
}

// Sizing describes how a single axis is sized. The zero value is Shrink.
type Sizing struct {
	Mode Mode
	// Value is the exact size for ModeFixed. Ignored otherwise.
	Value float64
	// Factor is the flex weight for ModeFlex. Ignored otherwise.
	Factor uint8
}

// Fixed returns a sizing that locks the axis to v.
func Fixed(v float64) Sizing {
	return Sizing{Mode: ModeFixed, Value: v}
}

// Flex returns a sizing that competes for leftover space with the given
// weight. A factor of zero receives no space.
func Flex(factor uint8) Sizing {
	return Sizing{Mode: ModeFlex, Factor: factor}
}

// Shrink returns the default sizing: as small as the content allows.
func Shrink() Sizing {
	return Sizing{Mode: ModeShrink}
}

// IntrinsicSize is the configured sizing of a node, one mode per axis.
type IntrinsicSize struct {
	Width  Sizing
	Height Sizing
}

// FixedSize returns an intrinsic size fixed to w by h.
func FixedSize(w, h float64) IntrinsicSize {
	return IntrinsicSize{Width: Fixed(w), Height: Fixed(h)}
}

// ShrinkSize returns an intrinsic size that shrinks on both axes.
func ShrinkSize() IntrinsicSize {
	return IntrinsicSize{}
}

// FlexSize returns an intrinsic size that flexes on both axes with the
// same factor.
func FlexSize(factor uint8) IntrinsicSize {
	return IntrinsicSize{Width: Flex(factor), Height: Flex(factor)}
}

// Fill returns an intrinsic size that flexes on both axes with factor 1,
// taking all space the parent offers.
func Fill() IntrinsicSize {
	return FlexSize(1)
}

// Constraints is the working state of the solver for one node: the
// smallest size its content needs and the largest size its parent allows.
type Constraints struct {
	MinWidth  float64
	MinHeight float64
	MaxWidth  float64
	MaxHeight float64
}
