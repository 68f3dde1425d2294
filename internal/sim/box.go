package sim

// Box is an axis-aligned bounding box in playfield pixels, y-down.
type Box struct {
	Left, Top, Right, Bottom float64
}

// NewBox creates a box from a top-left corner and dimensions.
func NewBox(x, y, w, h float64) Box {
	return Box{Left: x, Top: y, Right: x + w, Bottom: y + h}
}

// Width returns the horizontal extent of the box.
func (b Box) Width() float64 {
	return b.Right - b.Left
}

// Height returns the vertical extent of the box.
func (b Box) Height() float64 {
	return b.Bottom - b.Top
}

// Shrink trims the box by the given fractions of its width and height,
// split equally between the opposing sides so the center stays put.
// Shrink factors come from configuration and compensate for the transparent
// padding around sprites; collisions on raw sprite bounds feel unfair.
func (b Box) Shrink(fx, fy float64) Box {
	dx := b.Width() * fx / 2
	dy := b.Height() * fy / 2
	return Box{
		Left:   b.Left + dx,
		Top:    b.Top + dy,
		Right:  b.Right - dx,
		Bottom: b.Bottom - dy,
	}
}

// Overlaps reports whether the two boxes intersect, using the standard
// separating-axis test. Touching edges do not count as overlap.
func (b Box) Overlaps(other Box) bool {
	if b.Bottom <= other.Top || b.Top >= other.Bottom {
		return false
	}
	if b.Right <= other.Left || b.Left >= other.Right {
		return false
	}
	return true
}
