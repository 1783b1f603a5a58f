package physics

import (
	"errors"
	"fmt"
)

// ErrRopeTooShort is returned when a rope would have fewer than two particles
var ErrRopeTooShort = errors.New("rope needs at least two particles")

// RopeParams tunes the constraint solver
type RopeParams struct {
	SegmentLength float64 // rest distance between neighbours
	Iterations    int     // relaxation passes per Update
	Strength      float64 // relaxation coefficient
	Friction      float64 // friction for free particles
	Substeps      int     // caller substep count; corrections are scaled by 1/Substeps
	TimeStep      float64
}

// Rope is a chain of particles joined by distance constraints.
// Particle 0 is the head and is pinned to the target every Update.
type Rope struct {
	Particles []Particle
	Params    RopeParams
}

// NewRope lays count particles out along +x from anchor, SegmentLength apart
func NewRope(anchor Vec2, count int, params RopeParams) (*Rope, error) {
	if count < 2 {
		return nil, fmt.Errorf("new rope with %d particles: %w", count, ErrRopeTooShort)
	}
	if params.Substeps < 1 {
		params.Substeps = 1
	}

	particles := make([]Particle, count)
	for i := range particles {
		pos := anchor.Add(Vec2{X: float64(i) * params.SegmentLength})
		particles[i] = NewParticle(pos, params.Friction)
	}
	return &Rope{Particles: particles, Params: params}, nil
}

func (r *Rope) Len() int {
	return len(r.Particles)
}

func (r *Rope) Head() *Particle {
	return &r.Particles[0]
}

func (r *Rope) Tail() *Particle {
	return &r.Particles[len(r.Particles)-1]
}

// Positions copies particle positions in chain order
func (r *Rope) Positions() []Vec2 {
	out := make([]Vec2, len(r.Particles))
	for i := range r.Particles {
		out[i] = r.Particles[i].Position
	}
	return out
}

// Update pins the head to target, runs the relaxation passes, then integrates
// every particle but the head
func (r *Rope) Update(target Vec2) {
	r.Particles[0].Position = target

	for range r.Params.Iterations {
		r.Relax()
	}

	for i := 1; i < len(r.Particles); i++ {
		r.Particles[i].Advance(r.Params.TimeStep)
	}
}

// Relax runs one Gauss-Seidel pass over adjacent pairs in index order.
// Each pair is moved toward its rest distance; the head is never moved.
func (r *Rope) Relax() {
	substeps := r.Params.Substeps
	if substeps < 1 {
		substeps = 1
	}
	k := r.Params.Strength / float64(substeps)

	for i := 0; i < len(r.Particles)-1; i++ {
		a := &r.Particles[i]
		b := &r.Particles[i+1]

		delta := b.Position.Sub(a.Position)
		length := delta.Len()
		if length == 0 {
			continue
		}

		diff := (length - r.Params.SegmentLength) / length
		half := delta.Mul(diff * k * 0.5)

		if i != 0 {
			a.Position = a.Position.Add(half)
		}
		b.Position = b.Position.Sub(half)
	}
}

// Extend appends a particle one tail-segment further along the tail direction
func (r *Rope) Extend() {
	n := len(r.Particles)
	tail := r.Particles[n-1].Position
	prev := r.Particles[n-2].Position

	pos := tail.Add(tail.Sub(prev))
	r.Particles = append(r.Particles, NewParticle(pos, r.Params.Friction))
}
