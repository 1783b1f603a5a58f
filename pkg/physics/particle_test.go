package physics

import (
	"math"
	"testing"
)

func TestAdvanceAtRestStaysPut(t *testing.T) {
	p := NewParticle(Vec2{X: 3, Y: -7}, 0.98)

	for i := 0; i < 10; i++ {
		p.Advance(0.016)
	}

	if p.Position != (Vec2{X: 3, Y: -7}) {
		t.Fatalf("resting particle moved to %+v", p.Position)
	}
	if p.Velocity() != (Vec2{}) {
		t.Fatalf("resting particle gained velocity %+v", p.Velocity())
	}
}

func TestAdvanceCarriesDampedMomentum(t *testing.T) {
	p := NewParticle(Vec2{}, 0.5)
	p.Position = Vec2{X: 4}

	p.Advance(0.016)

	if p.PrevPosition != (Vec2{X: 4}) {
		t.Fatalf("prev position = %+v, want {4 0}", p.PrevPosition)
	}
	if p.Position != (Vec2{X: 6}) {
		t.Fatalf("position = %+v, want {6 0}", p.Position)
	}
}

func TestAdvanceConsumesAcceleration(t *testing.T) {
	p := NewParticle(Vec2{}, 1)
	p.Accelerate(Vec2{Y: 100})

	p.Advance(0.1)

	if math.Abs(p.Position.Y-1) > 1e-9 {
		t.Fatalf("position.Y = %f, want 1", p.Position.Y)
	}
	if p.Acceleration != (Vec2{}) {
		t.Fatalf("acceleration not reset: %+v", p.Acceleration)
	}
}

func TestTeleportDropsVelocity(t *testing.T) {
	p := NewParticle(Vec2{}, 1)
	p.Position = Vec2{X: 10, Y: 10}

	p.Teleport(Vec2{X: 50})

	if p.Velocity() != (Vec2{}) {
		t.Fatalf("velocity after teleport = %+v", p.Velocity())
	}
}

func TestNormalizeZeroVector(t *testing.T) {
	n := Vec2{}.Normalize()
	if n != (Vec2{}) || !n.IsFinite() {
		t.Fatalf("normalize(0) = %+v, want zero", n)
	}

	u := Vec2{X: 3, Y: 4}.Normalize()
	if math.Abs(u.Len()-1) > 1e-12 {
		t.Fatalf("unit length = %f", u.Len())
	}
}

func TestLerp(t *testing.T) {
	got := Vec2{}.Lerp(Vec2{X: 10, Y: -10}, 0.2)
	if got != (Vec2{X: 2, Y: -2}) {
		t.Fatalf("lerp = %+v", got)
	}
}
