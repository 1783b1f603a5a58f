package simulation

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/aaratha/rope-survivor/pkg/physics"
)

// ErrInvalidConfig wraps every validation failure
var ErrInvalidConfig = errors.New("invalid config")

// Targeting selects how the rope head target is derived from input
type Targeting string

const (
	TargetCameraDrag Targeting = "camera-drag"
	TargetDirectLerp Targeting = "direct-lerp"
	TargetSpring     Targeting = "spring"
)

// Preset names
const (
	PresetDrag    = "drag"
	PresetPointer = "pointer"
	PresetGrowth  = "growth"
)

// Duration marshals as a Go duration string ("2s", "1500ms")
type Duration time.Duration

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}

func (d *Duration) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return fmt.Errorf("duration must be a string: %w", err)
	}
	v, err := time.ParseDuration(s)
	if err != nil {
		return err
	}
	*d = Duration(v)
	return nil
}

type RopeConfig struct {
	Particles            int     `json:"particles"`
	SegmentLength        float64 `json:"segment_length"`
	ConstraintIterations int     `json:"constraint_iterations"`
	ConstraintStrength   float64 `json:"constraint_strength"`
	Friction             float64 `json:"friction"`
	Thickness            float64 `json:"thickness"`
	BallRadius           float64 `json:"ball_radius"`
}

type EnemyConfig struct {
	Speed          float64  `json:"speed"`
	Radius         float64  `json:"radius"`
	Friction       float64  `json:"friction"`
	SpawnInterval  Duration `json:"spawn_interval"`
	CullOutOfFrame bool     `json:"cull_out_of_frame"`
	// Spawn bearing sweep: noise sampled at elapsed*BearingRate, scaled by BearingSpread turns
	BearingRate   float64 `json:"bearing_rate"`
	BearingSpread float64 `json:"bearing_spread"`
}

type PointConfig struct {
	Radius        float64  `json:"radius"`
	SpawnInterval Duration `json:"spawn_interval"`
	MaxLive       int      `json:"max_live"`
}

type ScoreConfig struct {
	Milestone     int     `json:"milestone"`
	GrowthEnabled bool    `json:"growth_enabled"`
	StrengthStep  float64 `json:"strength_step"`
	MaxStrength   float64 `json:"max_strength"`
}

// Config holds every tunable of the simulation
type Config struct {
	Rope  RopeConfig  `json:"rope"`
	Enemy EnemyConfig `json:"enemy"`
	Point PointConfig `json:"point"`
	Score ScoreConfig `json:"score"`

	Substeps        int          `json:"substeps"`
	TimeStep        float64      `json:"time_step"`
	Targeting       Targeting    `json:"targeting"`
	LerpFactor      float64      `json:"lerp_factor"`
	DragSensitivity float64      `json:"drag_sensitivity"`
	SpringFrequency float64      `json:"spring_frequency"`
	SpringDamping   float64      `json:"spring_damping"`
	Anchor          physics.Vec2 `json:"anchor"`
	Viewport        physics.Vec2 `json:"viewport"`
	Seed            int64        `json:"seed"`
}

// DefaultConfig returns the growth preset
func DefaultConfig() Config {
	viewport := physics.Vec2{X: 400, Y: 400 * 16.0 / 9.0}
	return Config{
		Rope: RopeConfig{
			Particles:            10,
			SegmentLength:        10,
			ConstraintIterations: 8,
			ConstraintStrength:   0.7,
			Friction:             0.98,
			Thickness:            4,
			BallRadius:           7,
		},
		Enemy: EnemyConfig{
			Speed:         2,
			Radius:        10,
			Friction:      0.98,
			SpawnInterval: Duration(2 * time.Second),
			BearingRate:   0.35,
			BearingSpread: 2,
		},
		Point: PointConfig{
			Radius:        5,
			SpawnInterval: Duration(time.Second),
			MaxLive:       20,
		},
		Score: ScoreConfig{
			Milestone:     10,
			GrowthEnabled: true,
			StrengthStep:  0.05,
			MaxStrength:   0.95,
		},
		Substeps:        5,
		TimeStep:        0.016,
		Targeting:       TargetDirectLerp,
		LerpFactor:      0.2,
		DragSensitivity: 1.9,
		SpringFrequency: 6,
		SpringDamping:   0.6,
		Anchor:          viewport.Mul(0.5),
		Viewport:        viewport,
		Seed:            1,
	}
}

// Preset returns one of the named variants
func Preset(name string) (Config, error) {
	cfg := DefaultConfig()
	switch name {
	case PresetGrowth, "":
	case PresetPointer:
		cfg.Score.GrowthEnabled = false
		cfg.Enemy.CullOutOfFrame = true
	case PresetDrag:
		cfg.Targeting = TargetCameraDrag
		cfg.Score.GrowthEnabled = false
		cfg.Enemy.CullOutOfFrame = true
		cfg.Anchor = physics.Vec2{}
	default:
		return Config{}, fmt.Errorf("unknown preset %q: %w", name, ErrInvalidConfig)
	}
	return cfg, nil
}

// LoadConfig overlays the JSON file at path on base and validates the result
func LoadConfig(path string, base Config) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config %s: %w", path, err)
	}

	cfg := base
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Resolve picks the named preset and, when path is set, overlays that file on it
func Resolve(variant, path string) (Config, error) {
	cfg, err := Preset(variant)
	if err != nil {
		return Config{}, err
	}
	if path == "" {
		return cfg, nil
	}
	return LoadConfig(path, cfg)
}

// Validate rejects values the solver cannot run with
func (c Config) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf(format, args...))
		}
	}

	check(c.Rope.Particles >= 2, "rope.particles = %d, need >= 2", c.Rope.Particles)
	check(c.Rope.SegmentLength > 0, "rope.segment_length must be positive")
	check(c.Rope.ConstraintIterations >= 0, "rope.constraint_iterations must not be negative")
	check(c.Rope.Friction > 0 && c.Rope.Friction <= 1, "rope.friction = %g, need (0,1]", c.Rope.Friction)
	check(c.Enemy.Friction > 0 && c.Enemy.Friction <= 1, "enemy.friction = %g, need (0,1]", c.Enemy.Friction)
	check(c.Enemy.Radius > 0, "enemy.radius must be positive")
	check(c.Enemy.SpawnInterval > 0, "enemy.spawn_interval must be positive")
	check(c.Point.Radius > 0, "point.radius must be positive")
	check(c.Point.SpawnInterval > 0, "point.spawn_interval must be positive")
	check(c.Point.MaxLive >= 0, "point.max_live must not be negative")
	check(c.Score.Milestone > 0, "score.milestone must be positive")
	check(c.Substeps >= 1, "substeps = %d, need >= 1", c.Substeps)
	check(c.TimeStep > 0, "time_step must be positive")
	check(c.LerpFactor > 0 && c.LerpFactor <= 1, "lerp_factor = %g, need (0,1]", c.LerpFactor)
	check(c.Viewport.X > 0 && c.Viewport.Y > 0, "viewport must be positive")

	switch c.Targeting {
	case TargetCameraDrag, TargetDirectLerp, TargetSpring:
	default:
		errs = append(errs, fmt.Errorf("unknown targeting %q", c.Targeting))
	}

	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, errors.Join(errs...))
	}
	return nil
}

func (c Config) ropeParams() physics.RopeParams {
	return physics.RopeParams{
		SegmentLength: c.Rope.SegmentLength,
		Iterations:    c.Rope.ConstraintIterations,
		Strength:      c.Rope.ConstraintStrength,
		Friction:      c.Rope.Friction,
		Substeps:      c.Substeps,
		TimeStep:      c.TimeStep,
	}
}
