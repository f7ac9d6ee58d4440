package vmath

import "math"

// Normalize2D returns the unit vector of (x, y), zero-safe
func Normalize2D(x, y float64) (nx, ny float64) {
	mag := math.Hypot(x, y)
	if mag == 0 {
		return 0, 0
	}
	return x / mag, y / mag
}

// Magnitude returns the Euclidean length of (x, y)
func Magnitude(x, y float64) float64 {
	return math.Hypot(x, y)
}

// MagnitudeSq returns the squared length without the sqrt
func MagnitudeSq(x, y float64) float64 {
	return x*x + y*y
}

// DistSq returns the squared distance between two points
func DistSq(x1, y1, x2, y2 float64) float64 {
	dx := x2 - x1
	dy := y2 - y1
	return dx*dx + dy*dy
}

// Heading returns the angle of (x, y) in radians, 0 pointing +X
func Heading(x, y float64) float64 {
	return math.Atan2(y, x)
}

// FromAngle returns the unit vector for an angle in radians
func FromAngle(angle float64) (x, y float64) {
	return math.Cos(angle), math.Sin(angle)
}

// ClampMagnitude limits a vector to maxMag while preserving direction
func ClampMagnitude(x, y, maxMag float64) (cx, cy float64) {
	mag := math.Hypot(x, y)
	if mag <= maxMag || mag == 0 {
		return x, y
	}
	s := maxMag / mag
	return x * s, y * s
}

// SegmentDistSq returns the squared distance from point (px, py) to the
// segment (ax, ay)-(bx, by). Used for swept collision along a path.
func SegmentDistSq(px, py, ax, ay, bx, by float64) float64 {
	abx := bx - ax
	aby := by - ay
	lenSq := abx*abx + aby*aby
	if lenSq == 0 {
		return DistSq(px, py, ax, ay)
	}
	t := ((px-ax)*abx + (py-ay)*aby) / lenSq
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	return DistSq(px, py, ax+t*abx, ay+t*aby)
}

// Clamp limits v to [lo, hi]
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
