package geometry

import (
	"math"
	"testing"
)

// floatEquals is a helper for testing scalar float values with epsilon.
func floatEquals(a, b float64) bool {
	return math.Abs(a-b) <= Epsilon
}

func TestNewVector(t *testing.T) {
	v := NewVector(1, 2)
	if v.X != 1 || v.Y != 2 {
		t.Errorf("NewVector(1, 2) = %v; want (1, 2)", v)
	}
}

func TestNewVectorPolar(t *testing.T) {
	tests := []struct {
		name   string
		radius float64
		theta  float64
		want   Vector2D
	}{
		{"Zero radius", 0, 0, Vector2D{0, 0}},
		{"Zero angle (X-axis)", 10, 0, Vector2D{10, 0}},
		{"90 degrees (Y-axis)", 10, math.Pi / 2, Vector2D{0, 10}},
		{"180 degrees (Negative X)", 10, math.Pi, Vector2D{-10, 0}},
		{"45 degrees", math.Sqrt(2), math.Pi / 4, Vector2D{1, 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NewVectorPolar(tt.radius, tt.theta)
			if !got.Eq(tt.want) {
				t.Errorf("NewVectorPolar(%v, %v) = %v; want %v", tt.radius, tt.theta, got, tt.want)
			}
		})
	}
}

func TestVector_String(t *testing.T) {
	v := Vector2D{1.234, 5.678}
	want := "(1.23, 5.68)"
	if got := v.String(); got != want {
		t.Errorf("Vector2D.String() = %q; want %q", got, want)
	}
}

func TestVector_Arithmetic(t *testing.T) {
	v1 := Vector2D{1, 2}
	v2 := Vector2D{3, 4}

	t.Run("Add", func(t *testing.T) {
		want := Vector2D{4, 6}
		if got := v1.Add(v2); !got.Eq(want) {
			t.Errorf("%v.Add(%v) = %v; want %v", v1, v2, got, want)
		}
	})

	t.Run("Sub", func(t *testing.T) {
		want := Vector2D{-2, -2}
		if got := v1.Sub(v2); !got.Eq(want) {
			t.Errorf("%v.Sub(%v) = %v; want %v", v1, v2, got, want)
		}
	})

	t.Run("Mul", func(t *testing.T) {
		want := Vector2D{2, 4}
		if got := v1.Mul(2); !got.Eq(want) {
			t.Errorf("%v.Mul(2) = %v; want %v", v1, got, want)
		}
	})

	t.Run("Dot", func(t *testing.T) {
		want := 11.0
		if got := v1.Dot(v2); !floatEquals(got, want) {
			t.Errorf("%v.Dot(%v) = %v; want %v", v1, v2, got, want)
		}
	})
}

func TestVector_Len(t *testing.T) {
	v := Vector2D{3, 4}
	if got := v.Len(); !floatEquals(got, 5) {
		t.Errorf("Len() = %v; want 5", got)
	}
	if got := v.LenSqr(); !floatEquals(got, 25) {
		t.Errorf("LenSqr() = %v; want 25", got)
	}
}

func TestVector_Normalize(t *testing.T) {
	v := Vector2D{3, 4}
	got := v.Normalize()
	if !floatEquals(got.Len(), 1) {
		t.Errorf("Normalize().Len() = %v; want 1", got.Len())
	}

	// A zero vector has no direction; it must stay zero, not become NaN.
	zero := Vector2D{}
	if got := zero.Normalize(); !got.Eq(Vector2D{}) {
		t.Errorf("zero.Normalize() = %v; want (0, 0)", got)
	}
}

func TestVector_Limit(t *testing.T) {
	tests := []struct {
		name string
		v    Vector2D
		max  float64
		want float64 // expected resulting length
	}{
		{"Above limit", Vector2D{30, 40}, 5, 5},
		{"Below limit", Vector2D{3, 4}, 10, 5},
		{"Exactly at limit", Vector2D{3, 4}, 5, 5},
		{"Zero vector", Vector2D{}, 5, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.v.Limit(tt.max)
			if !floatEquals(got.Len(), tt.want) {
				t.Errorf("Limit(%v).Len() = %v; want %v", tt.max, got.Len(), tt.want)
			}
		})
	}

	// Direction must be preserved when clamping.
	v := Vector2D{30, 40}
	got := v.Limit(5)
	if !got.Normalize().Eq(v.Normalize()) {
		t.Errorf("Limit changed direction: %v -> %v", v, got)
	}
}

func TestVector_WithLen(t *testing.T) {
	v := Vector2D{0, 2}
	got := v.WithLen(7)
	if !got.Eq(Vector2D{0, 7}) {
		t.Errorf("WithLen(7) = %v; want (0, 7)", got)
	}

	zero := Vector2D{}
	if got := zero.WithLen(7); !got.Eq(Vector2D{}) {
		t.Errorf("zero.WithLen(7) = %v; want (0, 0)", got)
	}
}

func TestVector_Distance(t *testing.T) {
	a := Vector2D{1, 1}
	b := Vector2D{4, 5}
	if got := a.DistanceTo(b); !floatEquals(got, 5) {
		t.Errorf("DistanceTo = %v; want 5", got)
	}
	if got := a.DistanceSquaredTo(b); !floatEquals(got, 25) {
		t.Errorf("DistanceSquaredTo = %v; want 25", got)
	}
}

func TestVector_IsFinite(t *testing.T) {
	if !(Vector2D{1, 2}).IsFinite() {
		t.Error("finite vector reported as non-finite")
	}
	if (Vector2D{math.NaN(), 0}).IsFinite() {
		t.Error("NaN vector reported as finite")
	}
	if (Vector2D{0, math.Inf(1)}).IsFinite() {
		t.Error("Inf vector reported as finite")
	}
}
