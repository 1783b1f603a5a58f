// Package scene holds the presentation-side copy of the simulation.
//
// The simulation owns all state; a Scene is rebuilt from a snapshot once per
// frame and is only ever read by renderers.
package scene

import (
	"github.com/mlange-42/ark/ecs"

	"github.com/aaratha/rope-survivor/pkg/physics"
	"github.com/aaratha/rope-survivor/pkg/simulation"
)

// Kind tags what an entity draws as
type Kind uint8

const (
	KindRope Kind = iota
	KindEnemy
	KindPoint
	kindCount
)

// Transform is the drawn position of an entity
type Transform struct {
	X, Y float64
}

// Shape describes how to draw an entity
type Shape struct {
	Kind   Kind
	Radius float64
	Index  int  // position within its kind, rope order for KindRope
	Ball   bool // rope head or tail
}

// HUD is the non-spatial state shown next to the scene
type HUD struct {
	Score     int
	Best      int
	GameOver  bool
	Frame     simulation.Rect
	Thickness float64
}

// Scene mirrors a simulation.Snapshot into ECS entities
type Scene struct {
	world  *ecs.World
	mapper *ecs.Map2[Transform, Shape]
	filter *ecs.Filter2[Transform, Shape]

	entities [kindCount][]ecs.Entity
	hud      HUD
}

// New creates an empty scene
func New() *Scene {
	world := ecs.NewWorld()
	return &Scene{
		world:  world,
		mapper: ecs.NewMap2[Transform, Shape](world),
		filter: ecs.NewFilter2[Transform, Shape](world),
	}
}

// Sync copies snap into the scene, adding or removing entities so every kind
// has exactly as many entities as the snapshot has bodies
func (s *Scene) Sync(snap simulation.Snapshot) {
	last := len(snap.Rope) - 1
	s.syncKind(KindRope, len(snap.Rope), func(i int) (physics.Vec2, float64, bool) {
		if i == 0 || i == last {
			return snap.Rope[i], snap.RopeBallRadius, true
		}
		return snap.Rope[i], snap.RopeThickness, false
	})
	s.syncKind(KindEnemy, len(snap.Enemies), func(i int) (physics.Vec2, float64, bool) {
		return snap.Enemies[i].Position, snap.Enemies[i].Radius, false
	})
	s.syncKind(KindPoint, len(snap.Points), func(i int) (physics.Vec2, float64, bool) {
		return snap.Points[i].Position, snap.Points[i].Radius, false
	})

	s.hud = HUD{
		Score:     snap.Score,
		Best:      snap.Best,
		GameOver:  snap.GameOver,
		Frame:     snap.Frame,
		Thickness: snap.RopeThickness,
	}
}

func (s *Scene) syncKind(kind Kind, n int, body func(i int) (physics.Vec2, float64, bool)) {
	list := s.entities[kind]
	for len(list) > n {
		s.world.RemoveEntity(list[len(list)-1])
		list = list[:len(list)-1]
	}
	for len(list) < n {
		e := s.mapper.NewEntity(&Transform{}, &Shape{Kind: kind, Index: len(list)})
		list = append(list, e)
	}
	s.entities[kind] = list

	for i, e := range list {
		pos, radius, ball := body(i)
		tf, shape := s.mapper.Get(e)
		tf.X, tf.Y = pos.X, pos.Y
		shape.Radius = radius
		shape.Ball = ball
	}
}

// Each calls fn for every entity of kind, in snapshot order
func (s *Scene) Each(kind Kind, fn func(Transform, Shape)) {
	for _, e := range s.entities[kind] {
		tf, shape := s.mapper.Get(e)
		fn(*tf, *shape)
	}
}

// RopePath returns rope positions in chain order
func (s *Scene) RopePath() []physics.Vec2 {
	path := make([]physics.Vec2, 0, len(s.entities[KindRope]))
	s.Each(KindRope, func(tf Transform, _ Shape) {
		path = append(path, physics.Vec2{X: tf.X, Y: tf.Y})
	})
	return path
}

// Count returns the number of live entities across all kinds
func (s *Scene) Count() int {
	query := s.filter.Query()
	n := 0
	for query.Next() {
		n++
	}
	return n
}

func (s *Scene) HUD() HUD {
	return s.hud
}
