// Command boids runs the engine straight against its wire format: a flat
// float32 buffer in, a flat float32 buffer out, no actors in between. It is
// the smallest possible host.
package main

import (
	"image/color"
	"log"
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/lao-tseu-is-alive/go-flocking-engine/pkg/flock"
)

const maxFrameDelta = 1.0 / 30.0

type Game struct {
	buf  []float32 // 4-wide input buffer, rebuilt each frame
	out  []float32 // 5-wide output of the last update, flags included
	cfg  *flock.Config
	last time.Time
}

func (g *Game) Update() error {
	now := time.Now()
	dt := now.Sub(g.last).Seconds()
	g.last = now
	if dt > maxFrameDelta {
		dt = maxFrameDelta
	}

	out, err := flock.UpdateFlat(g.buf, g.cfg, dt)
	if err != nil {
		return err
	}
	g.out = out

	// The input contract is the 4-wide form: truncate the flags slot away
	// before the next call.
	g.buf = g.buf[:0]
	for i := 0; i < len(out); i += flock.Stride5 {
		g.buf = append(g.buf, out[i], out[i+1], out[i+2], out[i+3])
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{R: 10, G: 10, B: 30, A: 255})

	for i := 0; i < len(g.out); i += flock.Stride5 {
		x := float64(g.out[i])
		y := float64(g.out[i+1])
		angle := math.Atan2(float64(g.out[i+3]), float64(g.out[i+2]))
		inMargin := uint32(g.out[i+4])&flock.FlagInMargin != 0

		clr := color.RGBA{R: 100, G: 200, B: 255, A: 255}
		if inMargin {
			clr = color.RGBA{R: 255, G: 150, B: 50, A: 255}
		}

		tipX := x + math.Cos(angle)*6
		tipY := y + math.Sin(angle)*6
		vector.StrokeLine(screen, float32(x), float32(y), float32(tipX), float32(tipY), 2, clr, true)
		vector.FillCircle(screen, float32(x), float32(y), 2, clr, true)
	}
}

func (g *Game) Layout(w, h int) (int, int) {
	return int(g.cfg.WorldWidth), int(g.cfg.WorldHeight)
}

func main() {
	cfg := flock.DefaultConfig()

	buf := flock.CreateRandom(cfg.NumAgents,
		cfg.BoundaryMargin, cfg.WorldWidth-cfg.BoundaryMargin,
		cfg.BoundaryMargin, cfg.WorldHeight-cfg.BoundaryMargin,
		cfg.MaxSpeed)

	g := &Game{
		buf:  buf,
		cfg:  cfg,
		last: time.Now(),
	}

	ebiten.SetWindowSize(int(cfg.WorldWidth), int(cfg.WorldHeight))
	ebiten.SetWindowTitle("Boids (flat buffer)")
	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}
