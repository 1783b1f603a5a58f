package simulation

import (
	"math"
	"math/rand"
	"testing"
	"time"

	"github.com/aaratha/rope-survivor/pkg/physics"
)

func TestEdgePoint(t *testing.T) {
	r := Rect{Half: physics.Vec2{X: 10, Y: 5}}

	tests := []struct {
		dir  physics.Vec2
		want physics.Vec2
	}{
		{physics.Vec2{X: 1}, physics.Vec2{X: 10}},
		{physics.Vec2{Y: -3}, physics.Vec2{Y: -5}},
		{physics.Vec2{X: 1, Y: 1}, physics.Vec2{X: 5, Y: 5}},
		{physics.Vec2{}, physics.Vec2{}},
	}

	for _, tt := range tests {
		got := edgePoint(r, tt.dir)
		if math.Abs(got.X-tt.want.X) > 1e-9 || math.Abs(got.Y-tt.want.Y) > 1e-9 {
			t.Errorf("edgePoint(%+v) = %+v, want %+v", tt.dir, got, tt.want)
		}
	}
}

func TestSpawnerTimers(t *testing.T) {
	start := time.Unix(100, 0)
	s := newSpawner(1, rand.New(rand.NewSource(1)), start)

	if s.enemyDue(start.Add(time.Second), 2*time.Second) {
		t.Fatalf("enemy due before interval")
	}
	if !s.enemyDue(start.Add(2*time.Second), 2*time.Second) {
		t.Fatalf("enemy not due at interval")
	}
	if s.enemyDue(start.Add(3*time.Second), 2*time.Second) {
		t.Fatalf("timer did not restart after spawn")
	}
}

func TestSpawnerPointCap(t *testing.T) {
	start := time.Unix(100, 0)
	s := newSpawner(1, rand.New(rand.NewSource(1)), start)
	later := start.Add(5 * time.Second)

	if s.pointDue(later, time.Second, 3, 3) {
		t.Fatalf("point due at live cap")
	}
	if !s.pointDue(later, time.Second, 2, 3) {
		t.Fatalf("point not due below cap")
	}
}

func TestSpawnPositionsInsideFrame(t *testing.T) {
	start := time.Unix(0, 0)
	s := newSpawner(7, rand.New(rand.NewSource(7)), start)
	frame := Rect{Center: physics.Vec2{X: 200, Y: 300}, Half: physics.Vec2{X: 200, Y: 300}}
	cfg := DefaultConfig().Enemy

	for i := 0; i < 200; i++ {
		now := start.Add(time.Duration(i) * 137 * time.Millisecond)

		e := s.enemyPosition(now, frame, cfg)
		if !e.IsFinite() || !frame.Contains(e) {
			t.Fatalf("enemy spawn %d at %+v outside frame", i, e)
		}
		if frame.Inset(2*cfg.Radius + 1e-6).Contains(e) {
			t.Fatalf("enemy spawn %d at %+v not on the inset boundary", i, e)
		}
	}

	for i := 0; i < 200; i++ {
		p := s.pointPosition(frame, 5)
		if !frame.Inset(5).Contains(p) {
			t.Fatalf("point spawn %d at %+v outside inset frame", i, p)
		}
	}
}

func TestSpawnBearingIsDeterministic(t *testing.T) {
	start := time.Unix(0, 0)
	a := newSpawner(3, rand.New(rand.NewSource(3)), start)
	b := newSpawner(3, rand.New(rand.NewSource(3)), start)
	cfg := DefaultConfig().Enemy

	for i := 1; i < 20; i++ {
		now := start.Add(time.Duration(i) * time.Second)
		if a.bearing(now, cfg) != b.bearing(now, cfg) {
			t.Fatalf("bearing diverged at %d", i)
		}
	}
}
