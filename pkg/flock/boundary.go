package flock

import (
	"github.com/lao-tseu-is-alive/go-flocking-engine/pkg/geometry"
)

// boundarySteer computes the soft containment force for an agent and
// reports whether it sits inside the margin band on either axis.
//
// Per axis the force ramps linearly: zero at the margin line, maximal at
// the world edge (depth clamps at 1 for agents transiently past the edge),
// scaled by BoundaryStrength and pointing inward. It is summed with the
// rule forces, never applied as a position clamp: an agent whose combined
// steering is insufficient may still cross the boundary for a few frames.
func boundarySteer(pos geometry.Vector2D, cfg *Config) (geometry.Vector2D, bool) {
	margin := cfg.BoundaryMargin
	if margin <= 0 {
		return geometry.Vector2D{}, false
	}

	var force geometry.Vector2D
	inMargin := false

	if pos.X < margin {
		force.X += cfg.BoundaryStrength * marginDepth(margin-pos.X, margin)
		inMargin = true
	} else if pos.X > cfg.WorldWidth-margin {
		force.X -= cfg.BoundaryStrength * marginDepth(pos.X-(cfg.WorldWidth-margin), margin)
		inMargin = true
	}

	if pos.Y < margin {
		force.Y += cfg.BoundaryStrength * marginDepth(margin-pos.Y, margin)
		inMargin = true
	} else if pos.Y > cfg.WorldHeight-margin {
		force.Y -= cfg.BoundaryStrength * marginDepth(pos.Y-(cfg.WorldHeight-margin), margin)
		inMargin = true
	}

	return force, inMargin
}

// marginDepth maps a penetration depth into the [0,1] ramp.
func marginDepth(depth, margin float64) float64 {
	t := depth / margin
	if t > 1 {
		return 1
	}
	return t
}
