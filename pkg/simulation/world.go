package simulation

import (
	"io"
	"log"
	"math/rand"
	"time"

	"github.com/aaratha/rope-survivor/pkg/physics"
)

// Body is a circle handed to presentation
type Body struct {
	Position physics.Vec2
	Radius   float64
}

// Snapshot is a copy of the world state for one frame
type Snapshot struct {
	Rope           []physics.Vec2
	RopeBallRadius float64
	RopeThickness  float64
	Enemies        []Body
	Points         []Body
	Score          int
	Best           int
	GameOver       bool
	Frame          Rect
	Tick           int
}

// World owns all simulation state and advances it once per rendered frame
type World struct {
	cfg    Config
	clock  Clock
	logger *log.Logger
	rng    *rand.Rand

	rope     *physics.Rope
	enemies  []Enemy
	points   []Point
	targeter targeter
	spawner  *spawner

	viewport  physics.Vec2
	frame     Rect
	score     int
	best      int
	milestone int
	gameOver  bool
	tick      int
}

// Option configures a World
type Option func(*World)

// WithClock replaces the system clock used by the spawn timers
func WithClock(c Clock) Option {
	return func(w *World) { w.clock = c }
}

// WithLogger enables event logging
func WithLogger(l *log.Logger) Option {
	return func(w *World) { w.logger = l }
}

// NewWorld validates cfg and builds a world in its initial state
func NewWorld(cfg Config, opts ...Option) (*World, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	w := &World{
		cfg:      cfg,
		clock:    systemClock{},
		logger:   log.New(io.Discard, "", 0),
		rng:      rand.New(rand.NewSource(cfg.Seed)),
		targeter: newTargeter(cfg),
		viewport: cfg.Viewport,
	}
	for _, opt := range opts {
		opt(w)
	}

	w.spawner = newSpawner(cfg.Seed, w.rng, w.clock.Now())
	if err := w.reset(); err != nil {
		return nil, err
	}
	return w, nil
}

// Reset rebuilds the rope at the anchor, clears enemies and points, and zeroes
// score and timers. The session best score survives.
func (w *World) Reset() {
	if err := w.reset(); err != nil {
		w.logger.Printf("reset: %v", err)
		return
	}
	w.logger.Printf("world reset (best %d)", w.best)
}

func (w *World) reset() error {
	rope, err := physics.NewRope(w.cfg.Anchor, w.cfg.Rope.Particles, w.cfg.ropeParams())
	if err != nil {
		return err
	}
	w.rope = rope
	w.enemies = w.enemies[:0]
	w.points = w.points[:0]
	w.score = 0
	w.milestone = 0
	w.gameOver = false
	w.tick = 0
	w.targeter.reset(w.cfg.Anchor)
	w.spawner.reset(w.clock.Now())
	w.updateFrame()
	return nil
}

// Step advances the world by one rendered frame
func (w *World) Step(in *InputState) {
	if in.ResetRequested {
		w.Reset()
	}
	if w.gameOver {
		return
	}
	if in.Viewport.X > 0 && in.Viewport.Y > 0 {
		w.viewport = in.Viewport
	}

	target := w.targeter.target(w.rope.Head().Position, in)
	w.updateFrame()

	head := w.rope.Head().Position
	for i := range w.enemies {
		if w.enemies[i].Active {
			w.enemies[i].HomeToward(head, w.cfg.Enemy.Speed, w.cfg.TimeStep)
		}
	}
	Separate(w.enemies)

	for range w.cfg.Substeps {
		w.rope.Update(target)

		if resolveRopeEnemies(w.rope, w.enemies, w.cfg.Rope.BallRadius) {
			w.gameOver = true
			w.logger.Printf("game over at tick %d, score %d", w.tick, w.score)
			return
		}
		if n := collectPoints(w.rope, w.points, w.cfg.Enemy.Radius); n > 0 {
			w.addScore(n)
		}
	}

	if w.cfg.Enemy.CullOutOfFrame {
		for i := range w.enemies {
			w.enemies[i].CullOutside(w.frame)
		}
	}
	w.enemies = compact(w.enemies, func(e Enemy) bool { return e.Active })
	w.points = compact(w.points, func(p Point) bool { return p.Active })

	w.spawn()
	w.tick++
}

func (w *World) updateFrame() {
	w.frame = Rect{
		Center: w.targeter.frameCenter(w.viewport),
		Half:   w.viewport.Mul(0.5),
	}
}

func (w *World) addScore(n int) {
	w.score += n
	if w.score > w.best {
		w.best = w.score
	}

	for w.score/w.cfg.Score.Milestone > w.milestone {
		w.milestone++
		w.rewardMilestone()
	}
}

// rewardMilestone grows the rope and stiffens it, once per milestone
func (w *World) rewardMilestone() {
	if w.cfg.Score.GrowthEnabled {
		w.rope.Extend()
	}
	strength := w.rope.Params.Strength + w.cfg.Score.StrengthStep
	w.rope.Params.Strength = min(strength, max(w.cfg.Score.MaxStrength, w.cfg.Rope.ConstraintStrength))
	w.logger.Printf("milestone %d: rope %d particles, strength %.2f",
		w.milestone, w.rope.Len(), w.rope.Params.Strength)
}

func (w *World) spawn() {
	now := w.clock.Now()

	if w.spawner.enemyDue(now, time.Duration(w.cfg.Enemy.SpawnInterval)) {
		pos := w.spawner.enemyPosition(now, w.frame, w.cfg.Enemy)
		w.enemies = append(w.enemies, NewEnemy(pos, w.cfg.Enemy.Radius, w.cfg.Enemy.Friction))
	}
	if w.spawner.pointDue(now, time.Duration(w.cfg.Point.SpawnInterval), len(w.points), w.cfg.Point.MaxLive) {
		pos := w.spawner.pointPosition(w.frame, w.cfg.Point.Radius)
		w.points = append(w.points, NewPoint(pos, w.cfg.Point.Radius))
	}
}

// Snapshot copies out everything presentation needs
func (w *World) Snapshot() Snapshot {
	snap := Snapshot{
		Rope:           w.rope.Positions(),
		RopeBallRadius: w.cfg.Rope.BallRadius,
		RopeThickness:  w.cfg.Rope.Thickness,
		Enemies:        make([]Body, 0, len(w.enemies)),
		Points:         make([]Body, 0, len(w.points)),
		Score:          w.score,
		Best:           w.best,
		GameOver:       w.gameOver,
		Frame:          w.frame,
		Tick:           w.tick,
	}
	for _, e := range w.enemies {
		if e.Active {
			snap.Enemies = append(snap.Enemies, Body{Position: e.Position, Radius: e.Radius})
		}
	}
	for _, p := range w.points {
		if p.Active {
			snap.Points = append(snap.Points, Body{Position: p.Position, Radius: p.Radius})
		}
	}
	return snap
}

func (w *World) Score() int     { return w.score }
func (w *World) Best() int      { return w.best }
func (w *World) GameOver() bool { return w.gameOver }
func (w *World) Tick() int      { return w.tick }
func (w *World) Config() Config { return w.cfg }

// compact filters s in place, keeping elements for which keep returns true
func compact[T any](s []T, keep func(T) bool) []T {
	out := s[:0]
	for _, v := range s {
		if keep(v) {
			out = append(out, v)
		}
	}
	clear(s[len(out):])
	return out
}
