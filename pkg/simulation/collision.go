package simulation

import "github.com/aaratha/rope-survivor/pkg/physics"

// resolveRopeEnemies pushes every overlapping rope particle / enemy pair apart,
// splitting the penetration equally. Returns true when the head (index 0) was
// in contact with an enemy.
func resolveRopeEnemies(rope *physics.Rope, enemies []Enemy, ballRadius float64) bool {
	headHit := false

	for i := range rope.Particles {
		p := &rope.Particles[i]
		for j := range enemies {
			e := &enemies[j]
			if !e.Active {
				continue
			}

			delta := e.Position.Sub(p.Position)
			dist := delta.Len()
			minDist := ballRadius + e.Radius
			if dist >= minDist {
				continue
			}
			if i == 0 {
				headHit = true
			}
			if dist == 0 {
				continue
			}

			push := delta.Mul((minDist - dist) * 0.5 / dist)
			e.Position = e.Position.Add(push)
			p.Position = p.Position.Sub(push)
		}
	}
	return headHit
}

// collectPoints deactivates every active point any rope particle reaches and
// returns how many were collected. The pickup distance is point radius plus
// pickupRadius, which the world sets to the enemy radius.
func collectPoints(rope *physics.Rope, points []Point, pickupRadius float64) int {
	collected := 0
	for i := range points {
		pt := &points[i]
		if !pt.Active {
			continue
		}
		for j := range rope.Particles {
			if rope.Particles[j].Position.Dist(pt.Position) < pt.Radius+pickupRadius {
				pt.Active = false
				collected++
				break
			}
		}
	}
	return collected
}
