package simulation

import "github.com/aaratha/rope-survivor/pkg/physics"

// Enemy is a homing particle. Inactive enemies are removed at the end of the
// step and never reused.
type Enemy struct {
	physics.Particle
	Radius float64
	Active bool
}

// NewEnemy creates an active enemy at rest
func NewEnemy(pos physics.Vec2, radius, friction float64) Enemy {
	return Enemy{
		Particle: physics.NewParticle(pos, friction),
		Radius:   radius,
		Active:   true,
	}
}

// HomeToward steps the enemy toward target by speed*dt, then integrates its
// momentum. Both contributions land in the same tick.
func (e *Enemy) HomeToward(target physics.Vec2, speed, dt float64) {
	dir := target.Sub(e.Position)
	if dir.Len() > 0 {
		e.Position = e.Position.Add(dir.Normalize().Mul(speed * dt))
	}
	e.Advance(dt)
}

// CullOutside deactivates the enemy once it has left frame.
// Returns true if the enemy was deactivated by this call.
func (e *Enemy) CullOutside(frame Rect) bool {
	if !e.Active || frame.Contains(e.Position) {
		return false
	}
	e.Active = false
	return true
}

// Separate pushes overlapping active enemies apart, each by half the overlap.
// Coincident pairs are split along +x so the result stays deterministic.
func Separate(enemies []Enemy) {
	for i := 0; i < len(enemies); i++ {
		a := &enemies[i]
		if !a.Active {
			continue
		}
		for j := i + 1; j < len(enemies); j++ {
			b := &enemies[j]
			if !b.Active {
				continue
			}

			delta := b.Position.Sub(a.Position)
			dist := delta.Len()
			minDist := a.Radius + b.Radius
			if dist >= minDist {
				continue
			}

			dir := physics.Vec2{X: 1}
			if dist > 0 {
				dir = delta.Mul(1 / dist)
			}
			push := dir.Mul((minDist - dist) * 0.5)
			a.Position = a.Position.Sub(push)
			b.Position = b.Position.Add(push)
		}
	}
}
