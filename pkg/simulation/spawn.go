package simulation

import (
	"math"
	"math/rand"
	"time"

	"github.com/aquilax/go-perlin"

	"github.com/aaratha/rope-survivor/pkg/physics"
)

// Perlin octave settings for the spawn bearing sweep
const (
	noiseAlpha   = 2.0
	noiseBeta    = 2.0
	noiseOctaves = 3

	bearingJitter = 0.25 // radians
)

// spawner owns the two wall-clock spawn timers and spawn placement
type spawner struct {
	noise *perlin.Perlin
	rng   *rand.Rand

	start     time.Time
	lastEnemy time.Time
	lastPoint time.Time
}

func newSpawner(seed int64, rng *rand.Rand, now time.Time) *spawner {
	s := &spawner{
		noise: perlin.NewPerlin(noiseAlpha, noiseBeta, noiseOctaves, seed),
		rng:   rng,
	}
	s.reset(now)
	return s
}

func (s *spawner) reset(now time.Time) {
	s.start = now
	s.lastEnemy = now
	s.lastPoint = now
}

// enemyDue reports whether the enemy interval has elapsed, restarting the timer if so
func (s *spawner) enemyDue(now time.Time, interval time.Duration) bool {
	if now.Sub(s.lastEnemy) < interval {
		return false
	}
	s.lastEnemy = now
	return true
}

// pointDue reports whether a point may spawn. The timer only restarts when the
// live count leaves room, so a freed slot is refilled on the next tick.
func (s *spawner) pointDue(now time.Time, interval time.Duration, live, maxLive int) bool {
	if live >= maxLive || now.Sub(s.lastPoint) < interval {
		return false
	}
	s.lastPoint = now
	return true
}

// bearing returns the spawn direction angle at now
func (s *spawner) bearing(now time.Time, cfg EnemyConfig) float64 {
	elapsed := now.Sub(s.start).Seconds()
	n := s.noise.Noise1D(elapsed * cfg.BearingRate)
	jitter := (s.rng.Float64()*2 - 1) * bearingJitter
	return 2*math.Pi*n*cfg.BearingSpread + jitter
}

// enemyPosition places an enemy on the frame boundary along the current bearing,
// inset so it starts inside the frame
func (s *spawner) enemyPosition(now time.Time, frame Rect, cfg EnemyConfig) physics.Vec2 {
	angle := s.bearing(now, cfg)
	return edgePoint(frame.Inset(2*cfg.Radius), physics.Vec2{X: math.Cos(angle), Y: math.Sin(angle)})
}

// pointPosition picks a uniform position inside the frame, inset by radius
func (s *spawner) pointPosition(frame Rect, radius float64) physics.Vec2 {
	inner := frame.Inset(radius)
	return physics.Vec2{
		X: inner.Center.X + (s.rng.Float64()*2-1)*inner.Half.X,
		Y: inner.Center.Y + (s.rng.Float64()*2-1)*inner.Half.Y,
	}
}

// edgePoint casts a ray from the rect center along dir and returns where it
// leaves the rect. A zero dir returns the center.
func edgePoint(r Rect, dir physics.Vec2) physics.Vec2 {
	dir = dir.Normalize()
	t := math.Inf(1)
	if dir.X != 0 {
		t = math.Min(t, r.Half.X/math.Abs(dir.X))
	}
	if dir.Y != 0 {
		t = math.Min(t, r.Half.Y/math.Abs(dir.Y))
	}
	if math.IsInf(t, 1) {
		return r.Center
	}
	return r.Center.Add(dir.Mul(t))
}
