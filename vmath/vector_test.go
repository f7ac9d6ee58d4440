package vmath

import (
	"math"
	"testing"
)

const eps = 1e-9

func TestNormalize2D(t *testing.T) {
	x, y := Normalize2D(3, 4)
	if math.Abs(x-0.6) > eps || math.Abs(y-0.8) > eps {
		t.Errorf("Expected (0.6, 0.8), got (%g, %g)", x, y)
	}

	// Zero vector normalizes to zero, not NaN
	x, y = Normalize2D(0, 0)
	if x != 0 || y != 0 {
		t.Errorf("Expected zero vector unchanged, got (%g, %g)", x, y)
	}
}

func TestMagnitude(t *testing.T) {
	if m := Magnitude(3, 4); math.Abs(m-5) > eps {
		t.Errorf("Expected 5, got %g", m)
	}
	if m := MagnitudeSq(3, 4); math.Abs(m-25) > eps {
		t.Errorf("Expected 25, got %g", m)
	}
}

func TestDistSq(t *testing.T) {
	if d := DistSq(1, 1, 4, 5); math.Abs(d-25) > eps {
		t.Errorf("Expected 25, got %g", d)
	}
}

func TestHeadingRoundTrip(t *testing.T) {
	angle := Heading(0, 1)
	x, y := FromAngle(angle)
	if math.Abs(x) > eps || math.Abs(y-1) > eps {
		t.Errorf("Expected unit +Y back, got (%g, %g)", x, y)
	}
}

func TestClampMagnitude(t *testing.T) {
	x, y := ClampMagnitude(30, 40, 5)
	if math.Abs(Magnitude(x, y)-5) > eps {
		t.Errorf("Expected clamped magnitude 5, got %g", Magnitude(x, y))
	}

	// Under the limit stays unchanged
	x, y = ClampMagnitude(1, 1, 5)
	if x != 1 || y != 1 {
		t.Errorf("Expected (1,1) unchanged, got (%g, %g)", x, y)
	}
}

func TestClamp(t *testing.T) {
	if v := Clamp(5, 0, 10); v != 5 {
		t.Errorf("Expected 5, got %g", v)
	}
	if v := Clamp(-1, 0, 10); v != 0 {
		t.Errorf("Expected 0, got %g", v)
	}
	if v := Clamp(11, 0, 10); v != 10 {
		t.Errorf("Expected 10, got %g", v)
	}
}

func TestSegmentDistSq(t *testing.T) {
	// Point beside the middle of a horizontal segment
	if d := SegmentDistSq(5, 3, 0, 0, 10, 0); math.Abs(d-9) > eps {
		t.Errorf("Expected 9, got %g", d)
	}
	// Point past the segment end measures to the endpoint
	if d := SegmentDistSq(13, 4, 0, 0, 10, 0); math.Abs(d-25) > eps {
		t.Errorf("Expected 25, got %g", d)
	}
	// Degenerate segment is a point
	if d := SegmentDistSq(3, 4, 0, 0, 0, 0); math.Abs(d-25) > eps {
		t.Errorf("Expected 25, got %g", d)
	}
}
