// Package flock implements a stateless boids engine: separation, alignment
// and cohesion over a naive all-pairs neighbor scan, soft boundary
// containment, a velocity floor with random perturbation, and explicit Euler
// integration. The engine holds no state between calls; the caller owns the
// agent slice and threads it through successive Step calls.
package flock

import (
	"github.com/lao-tseu-is-alive/go-flocking-engine/pkg/geometry"
)

// Status flag bits. Flags are cleared and recomputed on every step; their
// meaning never outlives a single frame.
const (
	// FlagInMargin is set while the agent sits inside the boundary margin
	// band on either axis.
	FlagInMargin uint32 = 0x1
)

// Agent is the unit of simulation: a position, a velocity and per-frame
// status flags. Flags live in a real integer field here; the float-slot
// encoding exists only at the buffer codec boundary.
type Agent struct {
	Pos   geometry.Vector2D
	Vel   geometry.Vector2D
	Flags uint32
}

// Speed returns the agent's velocity magnitude.
func (a *Agent) Speed() float64 {
	return a.Vel.Len()
}

// InMargin reports whether the boundary-margin flag is set.
func (a *Agent) InMargin() bool {
	return a.Flags&FlagInMargin != 0
}
