package simulation

import (
	"math"
	"testing"

	"github.com/aaratha/rope-survivor/pkg/physics"
)

func newTestRope(t *testing.T, anchor physics.Vec2, n int) *physics.Rope {
	t.Helper()
	rope, err := physics.NewRope(anchor, n, DefaultConfig().ropeParams())
	if err != nil {
		t.Fatalf("NewRope: %v", err)
	}
	return rope
}

func TestResolveRopeEnemiesSplitsPenetration(t *testing.T) {
	rope := newTestRope(t, physics.Vec2{}, 3)
	// particle 2 sits at (20,0); enemy overlaps it by 5
	enemies := []Enemy{NewEnemy(physics.Vec2{X: 32}, 10, 1)}

	headHit := resolveRopeEnemies(rope, enemies, 7)

	if headHit {
		t.Fatalf("tail contact reported as head hit")
	}
	if got := enemies[0].Position.X; math.Abs(got-34.5) > 1e-9 {
		t.Errorf("enemy x = %f, want 34.5", got)
	}
	if got := rope.Particles[2].Position.X; math.Abs(got-17.5) > 1e-9 {
		t.Errorf("particle x = %f, want 17.5", got)
	}
	if d := enemies[0].Position.Dist(rope.Particles[2].Position); math.Abs(d-17) > 1e-9 {
		t.Errorf("separation = %f, want 17", d)
	}
}

func TestResolveRopeEnemiesHeadContact(t *testing.T) {
	rope := newTestRope(t, physics.Vec2{}, 3)
	enemies := []Enemy{NewEnemy(physics.Vec2{Y: -12}, 10, 1)}

	if !resolveRopeEnemies(rope, enemies, 7) {
		t.Fatalf("head contact not reported")
	}
}

func TestResolveRopeEnemiesIgnoresInactive(t *testing.T) {
	rope := newTestRope(t, physics.Vec2{}, 2)
	enemies := []Enemy{NewEnemy(physics.Vec2{}, 10, 1)}
	enemies[0].Active = false

	if resolveRopeEnemies(rope, enemies, 7) {
		t.Fatalf("inactive enemy ended the game")
	}
	if enemies[0].Position != (physics.Vec2{}) {
		t.Fatalf("inactive enemy moved")
	}
}

func TestResolveRopeEnemiesCoincidentStaysFinite(t *testing.T) {
	rope := newTestRope(t, physics.Vec2{}, 2)
	enemies := []Enemy{NewEnemy(physics.Vec2{X: 10}, 10, 1)}

	resolveRopeEnemies(rope, enemies, 7)

	if !enemies[0].Position.IsFinite() || !rope.Particles[1].Position.IsFinite() {
		t.Fatalf("NaN after coincident contact")
	}
}

func TestCollectPoints(t *testing.T) {
	rope := newTestRope(t, physics.Vec2{}, 3)
	points := []Point{
		NewPoint(physics.Vec2{X: 10, Y: 14}, 5), // within 5+10 of particle 1
		NewPoint(physics.Vec2{X: 10, Y: 16}, 5), // just out of reach
	}

	if n := collectPoints(rope, points, 10); n != 1 {
		t.Fatalf("collected %d, want 1", n)
	}
	if points[0].Active || !points[1].Active {
		t.Fatalf("active flags = %v %v", points[0].Active, points[1].Active)
	}
}

func TestCollectPointsOnlyOnce(t *testing.T) {
	rope := newTestRope(t, physics.Vec2{}, 3)
	points := []Point{NewPoint(physics.Vec2{X: 5}, 5)}

	first := collectPoints(rope, points, 10)
	second := collectPoints(rope, points, 10)

	if first != 1 || second != 0 {
		t.Fatalf("collected %d then %d, want 1 then 0", first, second)
	}
}
