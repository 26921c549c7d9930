package flock

import (
	"math/rand/v2"
)

// UpdateFlat is the wire-level entry point: one full engine pass over a
// packed buffer. The input is the 4-wide form [x, y, vx, vy, ...]; the
// returned buffer is always 5-wide, flags included. The input buffer is
// never modified — on any error the caller's data is exactly as it was,
// there are no partial results. Hosts holding a 5-wide buffer use
// DecodeBuffer(buf, Stride5) + Step + EncodeBuffer instead.
func UpdateFlat(buf []float32, cfg *Config, dt float64) ([]float32, error) {
	agents, err := DecodeBuffer(buf, Stride4)
	if err != nil {
		return nil, err
	}
	if err := Step(agents, cfg, dt); err != nil {
		return nil, err
	}
	return EncodeBuffer(agents), nil
}

// CreateRandom seeds a population of count agents as a 4-wide buffer:
// positions uniformly distributed in the given rectangle, velocity
// components uniformly distributed in [-maxSpeed/2, maxSpeed/2].
func CreateRandom(count int, xMin, xMax, yMin, yMax, maxSpeed float64) []float32 {
	buf := make([]float32, 0, count*Stride4)
	for i := 0; i < count; i++ {
		x := xMin + rand.Float64()*(xMax-xMin)
		y := yMin + rand.Float64()*(yMax-yMin)
		vx := (rand.Float64() - 0.5) * maxSpeed
		vy := (rand.Float64() - 0.5) * maxSpeed
		buf = append(buf, float32(x), float32(y), float32(vx), float32(vy))
	}
	return buf
}
