package gamemath

// Rect is an axis-aligned rectangle with its origin at the top-left corner.
type Rect struct {
	X, Y, W, H float64
}

// NewRect returns a rectangle at (x, y) with the given size.
func NewRect(x, y, w, h float64) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x coordinate of the right edge.
func (r Rect) Right() float64 {
	return r.X + r.W
}

// Bottom returns the y coordinate of the bottom edge.
func (r Rect) Bottom() float64 {
	return r.Y + r.H
}

// CenterX returns the horizontal center of the rectangle.
func (r Rect) CenterX() float64 {
	return r.X + r.W/2
}

// CenterY returns the vertical center of the rectangle.
func (r Rect) CenterY() float64 {
	return r.Y + r.H/2
}

// Overlaps reports whether r and other share any area.
// Rectangles that only touch at an edge do not overlap.
func (r Rect) Overlaps(other Rect) bool {
	return r.X < other.Right() && other.X < r.Right() &&
		r.Y < other.Bottom() && other.Y < r.Bottom()
}

// OverlapX returns the horizontal overlap between r and other,
// or 0 when they do not overlap on the x axis.
func (r Rect) OverlapX(other Rect) float64 {
	left := max(r.X, other.X)
	right := min(r.Right(), other.Right())
	if right <= left {
		return 0
	}
	return right - left
}

// Clamp limits v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// ApplyFriction scales speed by the friction factor and snaps
// values below epsilon to zero.
func ApplyFriction(speed, friction, epsilon float64) float64 {
	speed *= friction
	if speed > -epsilon && speed < epsilon {
		return 0
	}
	return speed
}

// ClampSpeed clamps a value to [-max, max].
func ClampSpeed(speed, max float64) float64 {
	if speed > max {
		return max
	}
	if speed < -max {
		return -max
	}
	return speed
}
