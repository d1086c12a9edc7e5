package level

import "github.com/vovakirdan/neon-runner/internal/core"

// surfaceEpsilon absorbs float error when feet rest exactly on a surface.
const surfaceEpsilon = 1e-6

// RaycastDown casts a ray of the given length straight down from origin and
// returns the height of the first platform surface it hits.
func (g *Generator) RaycastDown(origin core.Vec2, length float64) (float64, bool) {
	return g.highestSurface(origin.X, origin.Y-length, origin.Y)
}

// Land resolves a downward move of a point from prevY to newY at x.
// Platforms are one-way: only a surface crossed from above stops the fall.
func (g *Generator) Land(x, prevY, newY float64) (float64, bool) {
	if newY > prevY {
		return 0, false
	}
	return g.highestSurface(x, newY, prevY)
}

// highestSurface finds the highest platform top in [lo, hi] under x.
func (g *Generator) highestSurface(x, lo, hi float64) (float64, bool) {
	best, found := 0.0, false
	g.pool.Each(func(p Platform) bool {
		if p.Left() > x {
			// Active queue is spatially ordered
			return false
		}
		if x > p.Right() {
			return true
		}
		top := p.Top()
		if top >= lo-surfaceEpsilon && top <= hi+surfaceEpsilon && (!found || top > best) {
			best, found = top, true
		}
		return true
	})
	return best, found
}
