package layout

// Size is a two-dimensional extent in layout units.
type Size struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// UnitSize returns a size with both dimensions set to v.
func UnitSize(v float64) Size {
	return Size{Width: v, Height: v}
}

// Add returns the component-wise sum of two sizes.
func (s Size) Add(o Size) Size {
	return Size{Width: s.Width + o.Width, Height: s.Height + o.Height}
}

// Sub returns the component-wise difference of two sizes.
func (s Size) Sub(o Size) Size {
	return Size{Width: s.Width - o.Width, Height: s.Height - o.Height}
}

// Grow returns a copy of s with v added to both dimensions.
func (s Size) Grow(v float64) Size {
	return Size{Width: s.Width + v, Height: s.Height + v}
}

// Position is a point in the layout coordinate system. The origin is the
// top-left corner; x grows to the right and y grows downward.
type Position struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Add returns the component-wise sum of two positions.
func (p Position) Add(o Position) Position {
	return Position{X: p.X + o.X, Y: p.Y + o.Y}
}

// Sub returns the component-wise difference of two positions.
func (p Position) Sub(o Position) Position {
	return Position{X: p.X - o.X, Y: p.Y - o.Y}
}

// Translate returns a copy of p shifted by dx and dy.
func (p Position) Translate(dx, dy float64) Position {
	return Position{X: p.X + dx, Y: p.Y + dy}
}

// Bounds is the axis-aligned rectangle a node occupies, described by its
// top-left and bottom-right corners.
type Bounds struct {
	Min Position
	Max Position
}

// NewBounds returns the bounds of a rectangle at position p with size s.
func NewBounds(p Position, s Size) Bounds {
	return Bounds{
		Min: p,
		Max: Position{X: p.X + s.Width, Y: p.Y + s.Height},
	}
}

// Within reports whether point p lies inside the bounds (inclusive).
func (b Bounds) Within(p Position) bool {
	return p.X >= b.Min.X && p.X <= b.Max.X &&
		p.Y >= b.Min.Y && p.Y <= b.Max.Y
}

// Contains reports whether o lies entirely inside b (inclusive).
func (b Bounds) Contains(o Bounds) bool {
	return o.Min.X >= b.Min.X && o.Min.Y >= b.Min.Y &&
		o.Max.X <= b.Max.X && o.Max.Y <= b.Max.Y
}

// tolerance absorbs accumulated floating point error when comparing
// aggregated extents against solved sizes. Flex shares are computed by
// division and can over- or undershoot their sum by a few ulps.
const tolerance = 1e-6
