package physics

// Particle is a point mass integrated with position-based (Verlet) dynamics.
// Velocity is implicit: Position - PrevPosition.
type Particle struct {
	Position     Vec2
	PrevPosition Vec2
	Acceleration Vec2
	Friction     float64 // velocity multiplier per step, in (0,1]
}

// NewParticle creates a particle at rest at pos
func NewParticle(pos Vec2, friction float64) Particle {
	return Particle{
		Position:     pos,
		PrevPosition: pos,
		Friction:     friction,
	}
}

// Velocity returns the implicit per-step velocity
func (p *Particle) Velocity() Vec2 {
	return p.Position.Sub(p.PrevPosition)
}

// Accelerate accumulates acceleration consumed by the next Advance
func (p *Particle) Accelerate(a Vec2) {
	p.Acceleration = p.Acceleration.Add(a)
}

// Advance carries damped momentum forward one step.
// dt only scales the acceleration term, which is zero unless Accelerate was called.
func (p *Particle) Advance(dt float64) {
	velocity := p.Velocity().Mul(p.Friction)
	p.PrevPosition = p.Position
	p.Position = p.Position.Add(velocity).Add(p.Acceleration.Mul(dt * dt))
	p.Acceleration = Vec2{}
}

// Teleport moves the particle and discards its velocity
func (p *Particle) Teleport(pos Vec2) {
	p.Position = pos
	p.PrevPosition = pos
}
