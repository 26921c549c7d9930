package flock

import (
	"testing"

	"github.com/lao-tseu-is-alive/go-flocking-engine/pkg/geometry"
)

func TestBoundarySteer_RampActivation(t *testing.T) {
	// World 800x600, margin 50. Just inside the band the force is non-zero
	// and points inward; just outside the band it is exactly zero.
	cfg := DefaultConfig()

	force, inMargin := boundarySteer(geometry.Vector2D{X: 49.9, Y: 300}, cfg)
	if !inMargin {
		t.Error("Expected inMargin at x=49.9")
	}
	if force.X <= 0 {
		t.Errorf("Expected inward (positive X) force at the left band, got %f", force.X)
	}
	if force.Y != 0 {
		t.Errorf("Expected 0 Y force away from the horizontal bands, got %f", force.Y)
	}

	force, inMargin = boundarySteer(geometry.Vector2D{X: 50.1, Y: 300}, cfg)
	if inMargin {
		t.Error("Did not expect inMargin at x=50.1")
	}
	if force.X != 0 || force.Y != 0 {
		t.Errorf("Expected zero force just outside the band, got %v", force)
	}
}

func TestBoundarySteer_LinearRamp(t *testing.T) {
	// Halfway into the band the force is half of BoundaryStrength; at the
	// world edge it is the full strength; past the edge the depth clamps.
	cfg := DefaultConfig()

	force, _ := boundarySteer(geometry.Vector2D{X: 25, Y: 300}, cfg)
	if got, want := force.X, cfg.BoundaryStrength*0.5; got != want {
		t.Errorf("Expected half-strength force at half depth, got %f want %f", got, want)
	}

	force, _ = boundarySteer(geometry.Vector2D{X: 0, Y: 300}, cfg)
	if got, want := force.X, cfg.BoundaryStrength; got != want {
		t.Errorf("Expected full-strength force at the edge, got %f want %f", got, want)
	}

	force, _ = boundarySteer(geometry.Vector2D{X: -20, Y: 300}, cfg)
	if got, want := force.X, cfg.BoundaryStrength; got != want {
		t.Errorf("Expected clamped force past the edge, got %f want %f", got, want)
	}
}

func TestBoundarySteer_FarSides(t *testing.T) {
	// The right and bottom bands push back toward the interior.
	cfg := DefaultConfig()

	force, inMargin := boundarySteer(geometry.Vector2D{X: 790, Y: 300}, cfg)
	if !inMargin || force.X >= 0 {
		t.Errorf("Expected inward (negative X) force at the right band, got %v", force)
	}

	force, inMargin = boundarySteer(geometry.Vector2D{X: 400, Y: 590}, cfg)
	if !inMargin || force.Y >= 0 {
		t.Errorf("Expected inward (negative Y) force at the bottom band, got %v", force)
	}
}

func TestBoundarySteer_Corner(t *testing.T) {
	// A corner position is inside both axis bands; the forces sum.
	cfg := DefaultConfig()

	force, inMargin := boundarySteer(geometry.Vector2D{X: 10, Y: 10}, cfg)
	if !inMargin {
		t.Error("Expected inMargin in the corner")
	}
	if force.X <= 0 || force.Y <= 0 {
		t.Errorf("Expected inward force on both axes in the corner, got %v", force)
	}
}

func TestBoundarySteer_Disabled(t *testing.T) {
	// Margin 0 disables containment everywhere, even outside the world.
	cfg := DefaultConfig()
	cfg.BoundaryMargin = 0

	force, inMargin := boundarySteer(geometry.Vector2D{X: -100, Y: -100}, cfg)
	if inMargin {
		t.Error("Did not expect inMargin with margin 0")
	}
	if force.X != 0 || force.Y != 0 {
		t.Errorf("Expected zero force with margin 0, got %v", force)
	}
}
