package main

import (
	"math"

	"github.com/aaratha/rope-survivor/pkg/physics"
	"github.com/aaratha/rope-survivor/pkg/simulation"
)

// Terminal cells are about twice as tall as wide
const (
	cellWidth  = 4.0
	cellHeight = 8.0
)

// grid maps world units to terminal cells for one frame
type grid struct {
	cols, rows int
	origin     physics.Vec2 // world position of the top-left corner of cell (0,0)
}

func newGrid(frame simulation.Rect, cols, rows int) grid {
	half := physics.Vec2{X: float64(cols) * cellWidth / 2, Y: float64(rows) * cellHeight / 2}
	return grid{cols: cols, rows: rows, origin: frame.Center.Sub(half)}
}

// viewport is the world-space size covered by the terminal
func viewport(cols, rows int) physics.Vec2 {
	return physics.Vec2{X: float64(cols) * cellWidth, Y: float64(rows) * cellHeight}
}

func (g grid) toCell(p physics.Vec2) (int, int) {
	d := p.Sub(g.origin)
	return int(math.Floor(d.X / cellWidth)), int(math.Floor(d.Y / cellHeight))
}

// toWorld returns the world position at the center of cell (x, y)
func (g grid) toWorld(x, y int) physics.Vec2 {
	return g.origin.Add(physics.Vec2{X: (float64(x) + 0.5) * cellWidth, Y: (float64(y) + 0.5) * cellHeight})
}

func (g grid) inside(x, y int) bool {
	return x >= 0 && x < g.cols && y >= 0 && y < g.rows
}

// line calls plot for every cell on the segment a-b
func (g grid) line(a, b physics.Vec2, plot func(x, y int)) {
	x0, y0 := g.toCell(a)
	x1, y1 := g.toCell(b)
	n := max(abs(x1-x0), abs(y1-y0))
	if n == 0 {
		plot(x0, y0)
		return
	}
	for i := 0; i <= n; i++ {
		t := float64(i) / float64(n)
		plot(x0+int(math.Round(t*float64(x1-x0))), y0+int(math.Round(t*float64(y1-y0))))
	}
}

// disc calls plot for every cell whose center lies within r of c
func (g grid) disc(c physics.Vec2, r float64, plot func(x, y int)) {
	x0, y0 := g.toCell(c.Sub(physics.Vec2{X: r, Y: r}))
	x1, y1 := g.toCell(c.Add(physics.Vec2{X: r, Y: r}))
	hit := false
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			if g.toWorld(x, y).Dist(c) <= r {
				plot(x, y)
				hit = true
			}
		}
	}
	if !hit {
		plot(g.toCell(c))
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
