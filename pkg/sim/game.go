package sim

import (
	"context"
	"fmt"
	"image/color"
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/tochemey/goakt/v3/actor"

	"github.com/lao-tseu-is-alive/go-flocking-engine/pb"
	"github.com/lao-tseu-is-alive/go-flocking-engine/pkg/flock"
	"github.com/lao-tseu-is-alive/go-flocking-engine/pkg/ui"
)

// maxFrameDelta caps the dt handed to the engine so a frame-rate hitch
// cannot destabilize the integration. The engine itself accepts any dt;
// pre-clamping is the host's job.
const maxFrameDelta = 1.0 / 30.0

var whiteImage = ebiten.NewImage(3, 3)

func init() {
	whiteImage.Fill(color.White)
}

// Game is the ebiten host: it owns the frame clock, the control panel and
// the snapshot it last received from the world actor.
type Game struct {
	ctx        context.Context
	System     actor.ActorSystem
	worldPID   *actor.PID
	snapshotCh chan *Snapshot
	lastState  *Snapshot
	cfg        *flock.Config

	panel *ui.Panel

	widgetSeparationRadius   *ui.Slider
	widgetAlignmentRadius    *ui.Slider
	widgetCohesionRadius     *ui.Slider
	widgetSeparationStrength *ui.Slider
	widgetAlignmentStrength  *ui.Slider
	widgetCohesionStrength   *ui.Slider
	widgetMaxSpeed           *ui.Slider
	widgetMaxForce           *ui.Slider
	widgetBoundaryMargin     *ui.Slider
	widgetBoundaryStrength   *ui.Slider
	widgetMinSpeed           *ui.Slider
	widgetJitter             *ui.Slider
	widgetShowMargin         *ui.Checkbox

	lastFrame time.Time
	updateAvg float64 // rolling average in ms
}

// GetNewGame spawns the world actor on the given system and builds the
// control panel from the starting configuration.
func GetNewGame(ctx context.Context, cfg *flock.Config, system actor.ActorSystem) *Game {
	snapshotCh := make(chan *Snapshot, 10) // buffered to avoid blocking the actor

	worldPID, err := system.Spawn(ctx, "world", NewWorldActor(snapshotCh, cfg))
	if err != nil {
		panic(fmt.Sprintf("Failed to spawn world: %v", err))
	}

	panel := ui.NewPanel(10, 10, 240, cfg.WorldHeight-20, "Flock Tuning")

	panel.AddSection("Rule Radii")
	widgetSeparationRadius := panel.AddSlider("Separation Radius", 1, 150, cfg.SeparationRadius)
	widgetAlignmentRadius := panel.AddSlider("Alignment Radius", 1, 150, cfg.AlignmentRadius)
	widgetCohesionRadius := panel.AddSlider("Cohesion Radius", 1, 150, cfg.CohesionRadius)

	panel.AddSection("Rule Strengths")
	widgetSeparationStrength := panel.AddSlider("Separation Strength", 0, 5, cfg.SeparationStrength)
	widgetAlignmentStrength := panel.AddSlider("Alignment Strength", 0, 5, cfg.AlignmentStrength)
	widgetCohesionStrength := panel.AddSlider("Cohesion Strength", 0, 5, cfg.CohesionStrength)

	panel.AddSection("Physics")
	widgetMaxSpeed := panel.AddSlider("Max Speed", 1, 200, cfg.MaxSpeed)
	widgetMaxForce := panel.AddSlider("Max Force", 0.1, 20, cfg.MaxForce)

	panel.AddSection("Boundary")
	widgetBoundaryMargin := panel.AddSlider("Margin", 0, min(cfg.WorldWidth, cfg.WorldHeight)/2-1, cfg.BoundaryMargin)
	widgetBoundaryStrength := panel.AddSlider("Strength", 0, 10, cfg.BoundaryStrength)

	panel.AddSection("Stability")
	widgetMinSpeed := panel.AddSlider("Min Speed", 0, 50, cfg.MinSpeed)
	widgetJitter := panel.AddSlider("Jitter", 0, 5, cfg.Jitter)
	widgetShowMargin := panel.AddCheckbox("Show Margin Band", true)

	return &Game{
		ctx:                      ctx,
		System:                   system,
		worldPID:                 worldPID,
		snapshotCh:               snapshotCh,
		lastState:                &Snapshot{},
		cfg:                      cfg,
		panel:                    panel,
		widgetSeparationRadius:   widgetSeparationRadius,
		widgetAlignmentRadius:    widgetAlignmentRadius,
		widgetCohesionRadius:     widgetCohesionRadius,
		widgetSeparationStrength: widgetSeparationStrength,
		widgetAlignmentStrength:  widgetAlignmentStrength,
		widgetCohesionStrength:   widgetCohesionStrength,
		widgetMaxSpeed:           widgetMaxSpeed,
		widgetMaxForce:           widgetMaxForce,
		widgetBoundaryMargin:     widgetBoundaryMargin,
		widgetBoundaryStrength:   widgetBoundaryStrength,
		widgetMinSpeed:           widgetMinSpeed,
		widgetJitter:             widgetJitter,
		widgetShowMargin:         widgetShowMargin,
		lastFrame:                time.Now(),
	}
}

func (g *Game) Update() error {
	start := time.Now()
	defer func() {
		elapsed := float64(time.Since(start).Microseconds()) / 1000.0
		g.updateAvg = g.updateAvg*0.95 + elapsed*0.05
	}()

	g.panel.Update()

	// Retrieve the latest snapshot (non-blocking); keep the previous one if
	// the world hasn't finished a frame yet.
	select {
	case snap := <-g.snapshotCh:
		g.lastState = snap
	default:
	}

	// Pre-clamp the frame delta before it reaches the engine.
	now := time.Now()
	dt := now.Sub(g.lastFrame).Seconds()
	g.lastFrame = now
	if dt > maxFrameDelta {
		dt = maxFrameDelta
	}

	actor.Tell(g.ctx, g.worldPID, &pb.UpdateSettings{
		SeparationRadius:   g.widgetSeparationRadius.Value,
		AlignmentRadius:    g.widgetAlignmentRadius.Value,
		CohesionRadius:     g.widgetCohesionRadius.Value,
		SeparationStrength: g.widgetSeparationStrength.Value,
		AlignmentStrength:  g.widgetAlignmentStrength.Value,
		CohesionStrength:   g.widgetCohesionStrength.Value,
		MaxSpeed:           g.widgetMaxSpeed.Value,
		MaxForce:           g.widgetMaxForce.Value,
		BoundaryMargin:     g.widgetBoundaryMargin.Value,
		BoundaryStrength:   g.widgetBoundaryStrength.Value,
		MinSpeed:           g.widgetMinSpeed.Value,
		Jitter:             g.widgetJitter.Value,
	})
	actor.Tell(g.ctx, g.worldPID, &pb.Tick{DeltaTime: dt})

	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{R: 10, G: 10, B: 30, A: 255})

	if g.widgetShowMargin.Value {
		m := g.widgetBoundaryMargin.Value
		vector.StrokeRect(screen,
			float32(m), float32(m),
			float32(g.cfg.WorldWidth-2*m), float32(g.cfg.WorldHeight-2*m),
			1, color.RGBA{R: 70, G: 70, B: 90, A: 255}, true)
	}

	for i := range g.lastState.Agents {
		drawAgent(screen, &g.lastState.Agents[i])
	}

	g.panel.Draw(screen)

	msg := fmt.Sprintf("FPS: %.1f\nTPS: %.1f\nUpdate: %.2fms\nAgents: %d\nIn margin: %d",
		ebiten.ActualFPS(),
		ebiten.ActualTPS(),
		g.updateAvg,
		len(g.lastState.Agents),
		g.lastState.InMargin)
	ebitenutil.DebugPrintAt(screen, msg, int(g.cfg.WorldWidth)-120, 10)
}

func (g *Game) Layout(w, h int) (int, int) {
	return int(g.cfg.WorldWidth), int(g.cfg.WorldHeight)
}

// drawAgent renders one agent as a heading-aligned triangle. Agents inside
// the boundary band are tinted orange so the containment flag is visible.
func drawAgent(screen *ebiten.Image, a *flock.Agent) {
	angle := math.Atan2(a.Vel.Y, a.Vel.X)

	tipX := a.Pos.X + math.Cos(angle)*6
	tipY := a.Pos.Y + math.Sin(angle)*6
	rightX := a.Pos.X + math.Cos(angle+2.5)*5
	rightY := a.Pos.Y + math.Sin(angle+2.5)*5
	leftX := a.Pos.X + math.Cos(angle-2.5)*5
	leftY := a.Pos.Y + math.Sin(angle-2.5)*5

	r, gc, b := float32(0.4), float32(0.8), float32(1.0)
	if a.InMargin() {
		r, gc, b = 1.0, 0.6, 0.2
	}

	vertices := []ebiten.Vertex{
		{DstX: float32(tipX), DstY: float32(tipY), SrcX: 1, SrcY: 1, ColorR: r, ColorG: gc, ColorB: b, ColorA: 1},
		{DstX: float32(rightX), DstY: float32(rightY), SrcX: 1, SrcY: 1, ColorR: r, ColorG: gc, ColorB: b, ColorA: 1},
		{DstX: float32(leftX), DstY: float32(leftY), SrcX: 1, SrcY: 1, ColorR: r, ColorG: gc, ColorB: b, ColorA: 1},
	}
	indices := []uint16{0, 1, 2}

	screen.DrawTriangles(vertices, indices, whiteImage, &ebiten.DrawTrianglesOptions{})
}
