package flock

import (
	"math"
	"math/rand/v2"

	"github.com/lao-tseu-is-alive/go-flocking-engine/pkg/geometry"
)

// coincidentDist is the epsilon floor for the separation weighting. Pairs
// closer than this have no usable direction; they get a random unit push
// weighted as if they were exactly coincidentDist apart, which keeps the
// force bounded and breaks the overlap on the next steps.
const coincidentDist = 1e-3

// ruleForces holds the three flocking contributions for one agent, already
// scaled by their strengths.
type ruleForces struct {
	Separation geometry.Vector2D
	Alignment  geometry.Vector2D
	Cohesion   geometry.Vector2D
}

// computeRuleForces scans all other agents once and accumulates the
// statistics of the three rules against their respective radii, sharing a
// single distance computation per pair. This is the dominant cost of a
// step: O(n) per agent, O(n^2) per frame. The population sizes this engine
// targets (a few hundred) fit an interactive frame budget without a
// spatial index.
func computeRuleForces(i int, agents []Agent, cfg *Config) ruleForces {
	me := &agents[i]

	var (
		sepSum         geometry.Vector2D
		velSum, posSum geometry.Vector2D
		alignN, cohN   int
	)

	sepRadSq := cfg.SeparationRadius * cfg.SeparationRadius
	alignRadSq := cfg.AlignmentRadius * cfg.AlignmentRadius
	cohRadSq := cfg.CohesionRadius * cfg.CohesionRadius

	for j := range agents {
		if j == i {
			continue
		}
		other := &agents[j]

		dx := me.Pos.X - other.Pos.X
		dy := me.Pos.Y - other.Pos.Y
		distSq := dx*dx + dy*dy

		if distSq < sepRadSq {
			if distSq < coincidentDist*coincidentDist {
				// Overlapping pair: no direction to push along.
				push := geometry.NewVectorPolar(1/coincidentDist, rand.Float64()*2*math.Pi)
				sepSum = sepSum.Add(push)
			} else {
				// Away-vector weighted inversely by distance: closer
				// neighbors repel harder. (dx/dist)*(1/dist) == dx/distSq.
				sepSum.X += dx / distSq
				sepSum.Y += dy / distSq
			}
		}

		if distSq < alignRadSq {
			velSum = velSum.Add(other.Vel)
			alignN++
		}

		if distSq < cohRadSq {
			posSum = posSum.Add(other.Pos)
			cohN++
		}
	}

	var f ruleForces
	f.Separation = sepSum.Mul(cfg.SeparationStrength)

	// Zero-neighbor rules contribute nothing; the averages are skipped, not
	// treated as a pull toward the origin.
	if alignN > 0 {
		avgVel := velSum.Mul(1 / float64(alignN))
		// Velocity delta, not raw average: the force vanishes once the
		// agent already matches the local heading.
		f.Alignment = avgVel.Sub(me.Vel).Mul(cfg.AlignmentStrength)
	}
	if cohN > 0 {
		centroid := posSum.Mul(1 / float64(cohN))
		f.Cohesion = centroid.Sub(me.Pos).Mul(cfg.CohesionStrength)
	}
	return f
}
