// Package level generates the endless platform track: an auto-scrolling camera
// rig, a pooled arena of platform segments spawned ahead of a generation cursor,
// and one-at-a-time recycling of segments that fall behind the camera.
package level

import (
	"io"
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/neon-runner/internal/config"
	"github.com/vovakirdan/neon-runner/internal/core"
)

// Camera is the auto-scrolling rig.
type Camera struct {
	X     float64
	Speed float64
}

// Generator owns the camera rig and the platform pool.
type Generator struct {
	cameraCfg config.CameraConfig
	cfg       config.GenerationConfig
	rng       *rand.Rand
	camera    Camera
	pool      *Pool
	lastEnd   core.Vec2 // Right edge (x) and height (y) of the newest platform
	logger    *log.Logger
}

// NewGenerator creates a generator with a pre-allocated pool.
// A nil logger discards output.
func NewGenerator(camera config.CameraConfig, gen config.GenerationConfig, seed int64, logger *log.Logger) *Generator {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	g := &Generator{
		cameraCfg: camera,
		cfg:       gen,
		rng:       rand.New(rand.NewSource(seed)),
		pool:      NewPool(gen.PoolSize),
		logger:    logger,
	}
	g.camera = Camera{X: camera.StartX, Speed: camera.InitialSpeed}
	g.lastEnd = core.Vec2{X: gen.Origin.X, Y: gen.Origin.Y}
	return g
}

// Reseed replaces the random source; the next StartGeneration uses it.
func (g *Generator) Reseed(seed int64) {
	g.rng = rand.New(rand.NewSource(seed))
}

// StartGeneration resets the camera, returns every platform to the pool and
// synchronously fills the track up to the generation cursor.
func (g *Generator) StartGeneration() {
	g.camera = Camera{X: g.cameraCfg.StartX, Speed: g.cameraCfg.InitialSpeed}
	g.pool.ReleaseAll()

	if end := g.cfg.FixedTerrainEnd; end != nil {
		for _, seg := range g.cfg.Terrain {
			g.acquire(core.Vec2{X: seg.X + seg.Width/2, Y: seg.Y}, seg.Width)
		}
		g.lastEnd = core.Vec2{X: end.X, Y: end.Y}
	} else {
		g.lastEnd = core.Vec2{X: g.cfg.Origin.X, Y: g.cfg.Origin.Y}
		g.place(g.cfg.InitialPlatformWidth, g.lastEnd.Y)
	}

	for g.lastEnd.X <= g.GenerationCursor() {
		g.generate()
	}

	g.logger.Debug("level generated",
		"platforms", g.pool.ActiveCount(),
		"last_end", g.lastEnd.X,
		"cursor", g.GenerationCursor())
}

// Tick scrolls the camera, ramps its speed and performs at most one spawn
// and one recycle check.
func (g *Generator) Tick(dt float64) {
	g.camera.X += g.camera.Speed * dt

	// Try to ramp speed toward the cap
	if g.camera.Speed < g.cameraCfg.MaxSpeed {
		g.camera.Speed = min(g.cameraCfg.MaxSpeed, g.camera.Speed+g.cameraCfg.RampRate*dt)
	}

	if g.GenerationCursor() > g.lastEnd.X {
		g.generate()
	}

	g.recycle()
}

// generate draws one platform to the right of the last one.
func (g *Generator) generate() {
	gap := g.uniform(g.cfg.MinGap, g.cfg.MaxGap)
	dy := g.uniform(-g.cfg.HeightDelta, g.cfg.HeightDelta)
	width := g.uniform(g.cfg.MinWidth, g.cfg.MaxWidth)

	g.lastEnd.X += gap
	y := core.ClampF(g.lastEnd.Y+dy, g.cfg.MinY, g.cfg.MaxY)
	g.place(width, y)
}

// place puts a platform whose left edge is the current last end.
func (g *Generator) place(width, y float64) {
	center := core.Vec2{X: g.lastEnd.X + width/2, Y: y}
	g.acquire(center, width)
	g.lastEnd = core.Vec2{X: center.X + width/2, Y: y}
}

func (g *Generator) acquire(center core.Vec2, width float64) {
	before := g.pool.Grown()
	g.pool.Acquire(center, width, g.cfg.Thickness)
	if g.pool.Grown() != before {
		g.logger.Debug("platform pool grew", "capacity", g.pool.Capacity())
	}
}

// recycle returns the head platform to the pool once it is far enough behind.
func (g *Generator) recycle() bool {
	head, ok := g.pool.Head()
	if !ok || head.Position.X >= g.camera.X-g.cfg.RecycleDistance {
		return false
	}
	return g.pool.ReleaseHead()
}

func (g *Generator) uniform(lo, hi float64) float64 {
	if hi <= lo {
		return lo
	}
	return lo + g.rng.Float64()*(hi-lo)
}

// Camera returns the current rig state.
func (g *Generator) Camera() Camera {
	return g.camera
}

// LeftEdge returns the x of the visible area's left boundary.
func (g *Generator) LeftEdge() float64 {
	return g.camera.X - g.cameraCfg.ViewHalfWidth
}

// GenerationCursor returns the x ahead of which platforms must exist.
func (g *Generator) GenerationCursor() float64 {
	return g.camera.X + g.cameraCfg.GenerationAhead
}

// LastEnd returns the right edge and height of the newest platform.
func (g *Generator) LastEnd() core.Vec2 {
	return g.lastEnd
}

// Platforms returns a copy of the active platforms in spawn order.
func (g *Generator) Platforms() []Platform {
	out := make([]Platform, 0, g.pool.ActiveCount())
	g.pool.Each(func(p Platform) bool {
		out = append(out, p)
		return true
	})
	return out
}

// Pool exposes the platform arena for inspection.
func (g *Generator) Pool() *Pool {
	return g.pool
}
