package sim

import (
	"testing"

	"github.com/lao-tseu-is-alive/go-flocking-engine/pb"
	"github.com/lao-tseu-is-alive/go-flocking-engine/pkg/flock"
	"github.com/lao-tseu-is-alive/go-flocking-engine/pkg/geometry"
)

func TestWorldActor_Seed(t *testing.T) {
	cfg := flock.DefaultConfig()
	cfg.NumAgents = 40

	w := NewWorldActor(nil, cfg)
	w.seed()

	if len(w.agents) != cfg.NumAgents {
		t.Fatalf("Expected %d agents, got %d", cfg.NumAgents, len(w.agents))
	}

	// The population spawns inside the margin rectangle, so nobody starts
	// the simulation already flagged.
	for i := range w.agents {
		p := w.agents[i].Pos
		if p.X < cfg.BoundaryMargin || p.X > cfg.WorldWidth-cfg.BoundaryMargin ||
			p.Y < cfg.BoundaryMargin || p.Y > cfg.WorldHeight-cfg.BoundaryMargin {
			t.Errorf("Agent %d spawned inside the margin band: %v", i, p)
		}
	}
}

func TestWorldActor_ApplySettings(t *testing.T) {
	original := flock.DefaultConfig()
	w := NewWorldActor(nil, original)

	w.applySettings(&pb.UpdateSettings{
		SeparationRadius:   30,
		AlignmentRadius:    60,
		CohesionRadius:     70,
		SeparationStrength: 2,
		AlignmentStrength:  0.5,
		CohesionStrength:   0.25,
		MaxSpeed:           80,
		MaxForce:           4,
		BoundaryMargin:     40,
		BoundaryStrength:   1,
		MinSpeed:           2,
		Jitter:             0,
	})

	if w.cfg.SeparationRadius != 30 || w.cfg.MaxSpeed != 80 || w.cfg.Jitter != 0 {
		t.Errorf("Settings not applied: %+v", w.cfg)
	}

	// The actor works on its own copy; the caller's config is untouched.
	if original.SeparationRadius != 25 || original.MaxSpeed != 60 {
		t.Errorf("Caller config modified: %+v", original)
	}
}

func TestWorldActor_PushSnapshot(t *testing.T) {
	snapshotCh := make(chan *Snapshot, 1)
	cfg := flock.DefaultConfig()

	w := NewWorldActor(snapshotCh, cfg)
	w.agents = []flock.Agent{
		{Pos: geometry.Vector2D{X: 10, Y: 300}, Flags: flock.FlagInMargin},
		{Pos: geometry.Vector2D{X: 400, Y: 300}},
	}
	w.frame = 7

	w.pushSnapshot()

	snap := <-snapshotCh
	if snap.Frame != 7 {
		t.Errorf("Expected frame 7, got %d", snap.Frame)
	}
	if len(snap.Agents) != 2 {
		t.Fatalf("Expected 2 agents in snapshot, got %d", len(snap.Agents))
	}
	if snap.InMargin != 1 {
		t.Errorf("Expected 1 agent in margin, got %d", snap.InMargin)
	}

	// The snapshot is a copy: the live slice can keep mutating.
	w.agents[1].Pos.X = 999
	if snap.Agents[1].Pos.X != 400 {
		t.Error("Snapshot aliases the live agent slice")
	}
}

func TestWorldActor_PushSnapshotNonBlocking(t *testing.T) {
	// A full channel drops the frame instead of stalling the actor.
	snapshotCh := make(chan *Snapshot, 1)
	cfg := flock.DefaultConfig()

	w := NewWorldActor(snapshotCh, cfg)
	w.agents = []flock.Agent{{Pos: geometry.Vector2D{X: 400, Y: 300}}}

	w.pushSnapshot()
	w.pushSnapshot() // must not block

	if len(snapshotCh) != 1 {
		t.Errorf("Expected exactly one buffered snapshot, got %d", len(snapshotCh))
	}
}

func TestWorldActor_PreStartRejectsBadConfig(t *testing.T) {
	cfg := flock.DefaultConfig()
	cfg.MaxSpeed = -1

	w := NewWorldActor(nil, cfg)
	if err := w.PreStart(nil); err == nil {
		t.Error("Expected PreStart to reject an invalid config")
	}
}
