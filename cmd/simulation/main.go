// Command simulation runs the actor-hosted flock with the tuning panel.
// Configuration comes from a schema-validated JSON file when provided,
// otherwise from the built-in defaults.
package main

import (
	"context"
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/tochemey/goakt/v3/actor"
	golog "github.com/tochemey/goakt/v3/log"

	"github.com/lao-tseu-is-alive/go-flocking-engine/pkg/flock"
	"github.com/lao-tseu-is-alive/go-flocking-engine/pkg/sim"
)

func main() {
	configFile := flag.String("config", "", "path to JSON config file (default: built-in config)")
	schemaFile := flag.String("schema", "config.schema.json", "path to the config JSON schema")
	flag.Parse()

	cfg := flock.DefaultConfig()
	if *configFile != "" {
		loaded, err := flock.LoadConfig(*configFile, *schemaFile)
		if err != nil {
			log.Fatalf("config: %v", err)
		}
		cfg = loaded
	}

	ctx := context.Background()

	system, err := actor.NewActorSystem("FlockWorld",
		actor.WithLogger(golog.DiscardLogger),
		actor.WithActorInitMaxRetries(3))
	if err != nil {
		log.Fatalf("actor system: %v", err)
	}
	if err := system.Start(ctx); err != nil {
		log.Fatalf("actor system start: %v", err)
	}

	game := sim.GetNewGame(ctx, cfg, system)
	defer game.System.Stop(ctx)

	ebiten.SetWindowSize(int(cfg.WorldWidth), int(cfg.WorldHeight))
	ebiten.SetWindowTitle("Flocking Simulation")
	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
