package flock

import (
	"errors"
	"fmt"

	"github.com/lao-tseu-is-alive/go-flocking-engine/pkg/geometry"
)

// Wire strides. The packed agent buffer is a contiguous sequence of 32-bit
// floats: [x, y, vx, vy] per agent at Stride4, or [x, y, vx, vy, flags] at
// Stride5. The flags slot carries a small integer value in a float, a
// concession to hosts that can only ship homogeneous float arrays.
const (
	Stride4 = 4
	Stride5 = 5
)

// ErrMalformedBuffer marks a wire buffer whose length is not an exact
// multiple of the stride. Such buffers are rejected before any computation;
// they are never silently truncated.
var ErrMalformedBuffer = errors.New("malformed agent buffer")

// DecodeBuffer converts a packed wire buffer into agent records. stride must
// be Stride4 or Stride5; with Stride4 all flags decode to zero.
func DecodeBuffer(data []float32, stride int) ([]Agent, error) {
	if stride != Stride4 && stride != Stride5 {
		return nil, fmt.Errorf("%w: unsupported stride %d", ErrMalformedBuffer, stride)
	}
	if len(data)%stride != 0 {
		return nil, fmt.Errorf("%w: length %d is not a multiple of stride %d",
			ErrMalformedBuffer, len(data), stride)
	}

	agents := make([]Agent, len(data)/stride)
	for i := range agents {
		rec := data[i*stride:]
		agents[i] = Agent{
			Pos: geometry.Vector2D{X: float64(rec[0]), Y: float64(rec[1])},
			Vel: geometry.Vector2D{X: float64(rec[2]), Y: float64(rec[3])},
		}
		if stride == Stride5 && rec[4] > 0 {
			agents[i].Flags = uint32(rec[4])
		}
	}
	return agents, nil
}

// EncodeBuffer converts agent records back into a packed wire buffer.
// Output is always Stride5, flags included; hosts that only need positions
// and velocities truncate per record before use.
func EncodeBuffer(agents []Agent) []float32 {
	out := make([]float32, 0, len(agents)*Stride5)
	for i := range agents {
		a := &agents[i]
		out = append(out,
			float32(a.Pos.X), float32(a.Pos.Y),
			float32(a.Vel.X), float32(a.Vel.Y),
			float32(a.Flags),
		)
	}
	return out
}
