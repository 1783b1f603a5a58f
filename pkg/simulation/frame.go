package simulation

import "github.com/aaratha/rope-survivor/pkg/physics"

// Rect is an axis-aligned rectangle given by center and half extents
type Rect struct {
	Center physics.Vec2
	Half   physics.Vec2
}

// Contains reports whether p lies inside r, edges included
func (r Rect) Contains(p physics.Vec2) bool {
	d := p.Sub(r.Center)
	return d.X >= -r.Half.X && d.X <= r.Half.X && d.Y >= -r.Half.Y && d.Y <= r.Half.Y
}

// Min returns the top-left corner
func (r Rect) Min() physics.Vec2 {
	return r.Center.Sub(r.Half)
}

// Inset shrinks r by m on every side, never below zero extent
func (r Rect) Inset(m float64) Rect {
	half := physics.Vec2{X: max(r.Half.X-m, 0), Y: max(r.Half.Y-m, 0)}
	return Rect{Center: r.Center, Half: half}
}
