package flock

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// ErrInvalidConfig marks a configuration that violates a constraint.
// The engine refuses to run with clamped or guessed values; callers must
// fix the configuration and try again.
var ErrInvalidConfig = errors.New("invalid flock config")

// Config is the immutable-per-call tuning record of the engine. All values
// are supplied fresh on every call; the engine keeps no configuration state.
type Config struct {
	// World dimensions. Containment is relative to the axis-aligned
	// rectangle (0,0)-(WorldWidth,WorldHeight).
	WorldWidth  float64 `json:"worldWidth"`
	WorldHeight float64 `json:"worldHeight"`

	// Neighbor search radius per rule.
	SeparationRadius float64 `json:"separationRadius"`
	AlignmentRadius  float64 `json:"alignmentRadius"`
	CohesionRadius   float64 `json:"cohesionRadius"`

	// Force multiplier per rule.
	SeparationStrength float64 `json:"separationStrength"`
	AlignmentStrength  float64 `json:"alignmentStrength"`
	CohesionStrength   float64 `json:"cohesionStrength"`

	// Physics limits.
	MaxSpeed float64 `json:"maxSpeed"` // velocity magnitude ceiling
	MaxForce float64 `json:"maxForce"` // steering force magnitude ceiling

	// Soft containment band near the world edges.
	BoundaryMargin   float64 `json:"boundaryMargin"`
	BoundaryStrength float64 `json:"boundaryStrength"`

	// Stability damping.
	MinSpeed float64 `json:"minSpeed"` // velocity magnitude floor
	Jitter   float64 `json:"jitter"`   // per-step random perturbation magnitude

	// Population size used by hosts when seeding; the engine itself never
	// creates or destroys agents.
	NumAgents int `json:"numAgents"`
}

// DefaultConfig returns a configuration tuned for a few hundred agents in
// an 800x600 world at interactive frame rates.
func DefaultConfig() *Config {
	return &Config{
		WorldWidth:         800,
		WorldHeight:        600,
		SeparationRadius:   25,
		AlignmentRadius:    50,
		CohesionRadius:     50,
		SeparationStrength: 1.5,
		AlignmentStrength:  1.0,
		CohesionStrength:   0.8,
		MaxSpeed:           60,
		MaxForce:           3,
		BoundaryMargin:     50,
		BoundaryStrength:   2,
		MinSpeed:           5,
		Jitter:             0.5,
		NumAgents:          250,
	}
}

// Validate checks every constraint of the configuration table. It returns
// an error wrapping ErrInvalidConfig naming the first violated field.
func (c *Config) Validate() error {
	switch {
	case c.WorldWidth <= 0:
		return fmt.Errorf("%w: worldWidth must be > 0, got %v", ErrInvalidConfig, c.WorldWidth)
	case c.WorldHeight <= 0:
		return fmt.Errorf("%w: worldHeight must be > 0, got %v", ErrInvalidConfig, c.WorldHeight)
	case c.SeparationRadius <= 0:
		return fmt.Errorf("%w: separationRadius must be > 0, got %v", ErrInvalidConfig, c.SeparationRadius)
	case c.AlignmentRadius <= 0:
		return fmt.Errorf("%w: alignmentRadius must be > 0, got %v", ErrInvalidConfig, c.AlignmentRadius)
	case c.CohesionRadius <= 0:
		return fmt.Errorf("%w: cohesionRadius must be > 0, got %v", ErrInvalidConfig, c.CohesionRadius)
	case c.SeparationStrength < 0:
		return fmt.Errorf("%w: separationStrength must be >= 0, got %v", ErrInvalidConfig, c.SeparationStrength)
	case c.AlignmentStrength < 0:
		return fmt.Errorf("%w: alignmentStrength must be >= 0, got %v", ErrInvalidConfig, c.AlignmentStrength)
	case c.CohesionStrength < 0:
		return fmt.Errorf("%w: cohesionStrength must be >= 0, got %v", ErrInvalidConfig, c.CohesionStrength)
	case c.MaxSpeed <= 0:
		return fmt.Errorf("%w: maxSpeed must be > 0, got %v", ErrInvalidConfig, c.MaxSpeed)
	case c.MaxForce <= 0:
		return fmt.Errorf("%w: maxForce must be > 0, got %v", ErrInvalidConfig, c.MaxForce)
	case c.BoundaryMargin < 0:
		return fmt.Errorf("%w: boundaryMargin must be >= 0, got %v", ErrInvalidConfig, c.BoundaryMargin)
	case c.BoundaryStrength < 0:
		return fmt.Errorf("%w: boundaryStrength must be >= 0, got %v", ErrInvalidConfig, c.BoundaryStrength)
	case c.MinSpeed < 0:
		return fmt.Errorf("%w: minSpeed must be >= 0, got %v", ErrInvalidConfig, c.MinSpeed)
	case c.Jitter < 0:
		return fmt.Errorf("%w: jitter must be >= 0, got %v", ErrInvalidConfig, c.Jitter)
	}

	// Cross-field constraints.
	if c.MinSpeed > c.MaxSpeed {
		return fmt.Errorf("%w: minSpeed %v exceeds maxSpeed %v", ErrInvalidConfig, c.MinSpeed, c.MaxSpeed)
	}
	if half := min(c.WorldWidth, c.WorldHeight) / 2; c.BoundaryMargin >= half {
		return fmt.Errorf("%w: boundaryMargin %v must be < half the smaller world extent (%v)",
			ErrInvalidConfig, c.BoundaryMargin, half)
	}
	return nil
}

// LoadConfig loads configuration from a JSON file and validates it against
// the JSON schema before unmarshalling. Schema validation catches the
// per-field range constraints; Validate is still run for the cross-field
// ones the schema cannot express.
func LoadConfig(configFile string, schemaFile string) (*Config, error) {
	sch, err := jsonschema.Compile(schemaFile)
	if err != nil {
		return nil, fmt.Errorf("failed to compile schema: %w", err)
	}

	b, err := os.ReadFile(configFile)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return nil, fmt.Errorf("failed to decode config json: %w", err)
	}
	if err := sch.Validate(v); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	var cfg Config
	if err := json.Unmarshal(b, &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}
