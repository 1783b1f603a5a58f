package simulation

import "github.com/aaratha/rope-survivor/pkg/physics"

// Point is a static collectible
type Point struct {
	Position physics.Vec2
	Radius   float64
	Active   bool
}

func NewPoint(pos physics.Vec2, radius float64) Point {
	return Point{Position: pos, Radius: radius, Active: true}
}
