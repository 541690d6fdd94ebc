package layout

import "github.com/matzehuels/boxflow/pkg/errors"

// Padding is the inner spacing of a container, one value per side.
// All sides must be non-negative.
type Padding struct {
	Left   float64 `json:"left"`
	Right  float64 `json:"right"`
	Top    float64 `json:"top"`
	Bottom float64 `json:"bottom"`
}

// NewPadding returns a padding with explicit per-side values.
// It panics with an INVALID_PADDING error if any side is negative;
// negative padding is a configuration bug, not a runtime condition.
func NewPadding(left, right, top, bottom float64) Padding {
	p := Padding{Left: left, Right: right, Top: top, Bottom: bottom}
	p.validate()
	return p
}

// PaddingAll returns a padding with the same value on all four sides.
func PaddingAll(v float64) Padding {
	return NewPadding(v, v, v, v)
}

// PaddingSymmetric returns a padding with one value for top and bottom
// and another for left and right.
func PaddingSymmetric(vertical, horizontal float64) Padding {
	return NewPadding(horizontal, horizontal, vertical, vertical)
}

// Horizontal returns the sum of the left and right padding.
func (p Padding) Horizontal() float64 {
	return p.Left + p.Right
}

// Vertical returns the sum of the top and bottom padding.
func (p Padding) Vertical() float64 {
	return p.Top + p.Bottom
}

func (p Padding) validate() {
	if p.Left < 0 || p.Right < 0 || p.Top < 0 || p.Bottom < 0 {
		panic(errors.New(errors.ErrCodeInvalidPadding,
			"padding sides must be non-negative, got left=%v right=%v top=%v bottom=%v",
			p.Left, p.Right, p.Top, p.Bottom))
	}
}
