// Package sim hosts the flocking engine behind a goakt actor and an ebiten
// front end. The WorldActor owns the one piece of persistent state the
// engine requires — the agent slice — and advances it once per Tick; the
// Game owns the window, the control panel and the frame clock.
package sim

import (
	"time"

	"github.com/tochemey/goakt/v3/actor"
	"github.com/tochemey/goakt/v3/goaktpb"

	"github.com/lao-tseu-is-alive/go-flocking-engine/pb"
	"github.com/lao-tseu-is-alive/go-flocking-engine/pkg/flock"
)

// Snapshot is one rendered frame's worth of world state, pushed from the
// world actor to the UI. Agents is a copy; the UI may hold it across frames
// while the actor keeps stepping.
type Snapshot struct {
	Agents   []flock.Agent
	Frame    uint64
	InMargin int // agents currently inside the boundary band
}

// WorldActor is the authoritative simulation state. It seeds the population
// on start, steps the engine on every Tick and publishes snapshots over a
// channel so the UI never touches the live slice.
type WorldActor struct {
	agents     []flock.Agent
	cfg        *flock.Config
	snapshotCh chan<- *Snapshot
	frame      uint64

	// benchmark stats
	stepCount   int
	stepTotalUs int64
	lastLogTime time.Time
}

var _ actor.Actor = (*WorldActor)(nil)

// NewWorldActor creates the world logic unit. cfg is copied so slider
// updates from the UI cannot race the caller's struct.
func NewWorldActor(snapshotCh chan<- *Snapshot, cfg *flock.Config) *WorldActor {
	c := *cfg
	return &WorldActor{
		cfg:         &c,
		snapshotCh:  snapshotCh,
		lastLogTime: time.Now(),
	}
}

func (w *WorldActor) PreStart(ctx *actor.Context) error {
	return w.cfg.Validate()
}

func (w *WorldActor) Receive(ctx *actor.ReceiveContext) {
	switch msg := ctx.Message().(type) {

	case *goaktpb.PostStart:
		ctx.Logger().Infof("World started, seeding %d agents", w.cfg.NumAgents)
		w.seed()

	case *pb.Tick:
		w.step(ctx, msg.GetDeltaTime())

	case *pb.UpdateSettings:
		w.applySettings(msg)

	default:
		ctx.Unhandled()
	}
}

func (w *WorldActor) PostStop(ctx *actor.Context) error {
	ctx.ActorSystem().Logger().Info("World is shutting down...")
	return nil
}

// seed creates the population through the same wire format external hosts
// use, keeping the codec on the hot path of at least one caller.
func (w *WorldActor) seed() {
	buf := flock.CreateRandom(w.cfg.NumAgents,
		w.cfg.BoundaryMargin, w.cfg.WorldWidth-w.cfg.BoundaryMargin,
		w.cfg.BoundaryMargin, w.cfg.WorldHeight-w.cfg.BoundaryMargin,
		w.cfg.MaxSpeed)
	agents, err := flock.DecodeBuffer(buf, flock.Stride4)
	if err != nil {
		// CreateRandom output is stride-exact by construction.
		panic(err)
	}
	w.agents = agents
}

func (w *WorldActor) step(ctx *actor.ReceiveContext, dt float64) {
	start := time.Now()
	if err := flock.Step(w.agents, w.cfg, dt); err != nil {
		// Invalid settings freeze the frame rather than corrupt the state;
		// no partial update has happened.
		ctx.Logger().Warnf("skipping frame: %v", err)
		return
	}
	w.frame++

	w.stepCount++
	w.stepTotalUs += time.Since(start).Microseconds()
	w.logBenchmarks(ctx)

	w.pushSnapshot()
}

func (w *WorldActor) applySettings(s *pb.UpdateSettings) {
	w.cfg.SeparationRadius = s.GetSeparationRadius()
	w.cfg.AlignmentRadius = s.GetAlignmentRadius()
	w.cfg.CohesionRadius = s.GetCohesionRadius()
	w.cfg.SeparationStrength = s.GetSeparationStrength()
	w.cfg.AlignmentStrength = s.GetAlignmentStrength()
	w.cfg.CohesionStrength = s.GetCohesionStrength()
	w.cfg.MaxSpeed = s.GetMaxSpeed()
	w.cfg.MaxForce = s.GetMaxForce()
	w.cfg.BoundaryMargin = s.GetBoundaryMargin()
	w.cfg.BoundaryStrength = s.GetBoundaryStrength()
	w.cfg.MinSpeed = s.GetMinSpeed()
	w.cfg.Jitter = s.GetJitter()
}

func (w *WorldActor) pushSnapshot() {
	snap := &Snapshot{
		Agents: make([]flock.Agent, len(w.agents)),
		Frame:  w.frame,
	}
	copy(snap.Agents, w.agents)
	for i := range snap.Agents {
		if snap.Agents[i].InMargin() {
			snap.InMargin++
		}
	}

	select {
	case w.snapshotCh <- snap:
	default:
		// UI busy, skip frame
	}
}

func (w *WorldActor) logBenchmarks(ctx *actor.ReceiveContext) {
	if time.Since(w.lastLogTime) < time.Second {
		return
	}
	avgMs := float64(w.stepTotalUs) / float64(w.stepCount) / 1000.0
	ctx.Logger().Infof("step avg: %.3fms over %d frames (%d agents)",
		avgMs, w.stepCount, len(w.agents))
	w.stepCount = 0
	w.stepTotalUs = 0
	w.lastLogTime = time.Now()
}
