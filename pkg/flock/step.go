package flock

import (
	"math"
	"math/rand/v2"

	"github.com/lao-tseu-is-alive/go-flocking-engine/pkg/geometry"
)

// Step advances every agent by one frame, in place.
//
// Per agent: the three rule forces and the boundary force are summed into
// one steering vector, clamped to MaxForce and applied as a direct
// per-step velocity delta. Delta-time convention: steering is NOT scaled
// by dt, only the position integration is (pos += vel*dt), so the rules'
// responsiveness is fixed per step regardless of frame rate. Callers are
// expected to pre-clamp dt on frame-rate hitches (e.g. to 1/30s); the
// engine does not reject large deltas.
//
// After every successful call each agent's speed lies in
// [MinSpeed, MaxSpeed] and its position is finite. The call either updates
// every agent or, on a configuration error, none.
func Step(agents []Agent, cfg *Config, dt float64) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	if len(agents) == 0 {
		return nil
	}

	// Forces are evaluated against the frame-start snapshot so that update
	// order cannot leak one agent's new state into another's neighbor scan.
	prev := make([]Agent, len(agents))
	copy(prev, agents)

	for i := range agents {
		me := &prev[i]

		f := computeRuleForces(i, prev, cfg)
		bound, inMargin := boundarySteer(me.Pos, cfg)

		steering := f.Separation.
			Add(f.Alignment).
			Add(f.Cohesion).
			Add(bound).
			Limit(cfg.MaxForce)
		if !steering.IsFinite() {
			steering = geometry.Vector2D{}
		}

		vel := me.Vel.Add(steering)

		// Continuous perturbation against frozen clusters and perfectly
		// stable orbits. Magnitude uniform in [0, Jitter].
		if cfg.Jitter > 0 {
			vel = vel.Add(geometry.NewVectorPolar(rand.Float64()*cfg.Jitter, rand.Float64()*2*math.Pi))
		}

		vel = vel.Limit(cfg.MaxSpeed)
		vel = floorSpeed(vel, cfg.MinSpeed)

		agents[i] = Agent{
			Pos: me.Pos.Add(vel.Mul(dt)),
			Vel: vel,
		}
		if inMargin {
			agents[i].Flags |= FlagInMargin
		}
	}
	return nil
}

// floorSpeed renormalizes a velocity below the floor back to minSpeed,
// preserving the current heading. A velocity of exactly zero has no heading
// to preserve, so one is chosen at random.
func floorSpeed(vel geometry.Vector2D, minSpeed float64) geometry.Vector2D {
	if minSpeed <= 0 {
		return vel
	}
	speed := vel.Len()
	if speed >= minSpeed {
		return vel
	}
	if speed < geometry.Epsilon {
		return geometry.NewVectorPolar(minSpeed, rand.Float64()*2*math.Pi)
	}
	return vel.WithLen(minSpeed)
}
