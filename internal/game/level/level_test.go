package level

import (
	"testing"

	"github.com/vovakirdan/neon-runner/internal/config"
	"github.com/vovakirdan/neon-runner/internal/core"
)

func testConfigs() (config.CameraConfig, config.GenerationConfig) {
	cfg := config.DefaultNeonConfig()
	return cfg.Camera, cfg.Generation
}

func newTestGenerator(seed int64) *Generator {
	cam, gen := testConfigs()
	return NewGenerator(cam, gen, seed, nil)
}

func TestPrefillFromFixedTerrain(t *testing.T) {
	cam, gen := testConfigs()
	cam.StartX = 30
	cam.GenerationAhead = 20 // Generation cursor at x=50
	gen.MinGap, gen.MaxGap = 2, 5
	gen.MinWidth, gen.MaxWidth = 2, 6
	gen.FixedTerrainEnd = &config.Point{X: -5, Y: 0}

	run := func() []Platform {
		g := NewGenerator(cam, gen, 7, nil)
		g.StartGeneration()
		if g.LastEnd().X <= 50 {
			t.Fatalf("pre-fill stopped at %f, expected past 50", g.LastEnd().X)
		}
		return g.Platforms()
	}

	first := run()
	second := run()

	if len(first) == 0 {
		t.Fatal("expected platforms after pre-fill")
	}
	if len(first) != len(second) {
		t.Fatalf("same seed produced %d and %d platforms", len(first), len(second))
	}

	prevEnd := -5.0
	for i, p := range first {
		if p != second[i] {
			t.Errorf("platform %d differs between identical seeds: %+v vs %+v", i, p, second[i])
		}
		if p.Right() <= prevEnd {
			t.Errorf("platform %d end %f does not exceed previous end %f", i, p.Right(), prevEnd)
		}
		gap := p.Left() - prevEnd
		if gap < 2-1e-9 || gap > 5+1e-9 {
			t.Errorf("platform %d gap %f outside [2, 5]", i, gap)
		}
		if p.Width < 2 || p.Width > 6 {
			t.Errorf("platform %d width %f outside [2, 6]", i, p.Width)
		}
		prevEnd = p.Right()
	}

	// The loop stops as soon as the cursor is passed
	if len(first) > 1 && first[len(first)-2].Right() > 50 {
		t.Error("pre-fill generated past the cursor more than once")
	}
}

func TestPrefillSafetyPlatform(t *testing.T) {
	g := newTestGenerator(1)
	g.StartGeneration()

	platforms := g.Platforms()
	if len(platforms) == 0 {
		t.Fatal("expected platforms")
	}
	_, gen := testConfigs()
	first := platforms[0]
	if first.Width != gen.InitialPlatformWidth {
		t.Errorf("first platform width = %f, expected safety width %f", first.Width, gen.InitialPlatformWidth)
	}
	if first.Left() != gen.Origin.X || first.Position.Y != gen.Origin.Y {
		t.Errorf("safety platform at %+v, expected to start at origin %+v", first.Position, gen.Origin)
	}
	if g.LastEnd().X <= g.GenerationCursor() {
		t.Error("no platform past the generation cursor at start")
	}
}

func TestFixedTerrainPlacedBeforeGeneration(t *testing.T) {
	cam, gen := testConfigs()
	gen.FixedTerrainEnd = &config.Point{X: 6, Y: 0}
	gen.Terrain = []config.Segment{{X: -4, Y: -1, Width: 6}, {X: 3, Y: 0, Width: 3}}
	g := NewGenerator(cam, gen, 3, nil)
	g.StartGeneration()

	platforms := g.Platforms()
	if len(platforms) < 3 {
		t.Fatalf("len = %d, expected terrain plus generated platforms", len(platforms))
	}
	for i, seg := range gen.Terrain {
		p := platforms[i]
		if p.Left() != seg.X || p.Width != seg.Width || p.Position.Y != seg.Y {
			t.Errorf("platform %d = %+v, expected terrain segment %+v", i, p, seg)
		}
	}
	if gap := platforms[2].Left() - 6; gap < gen.MinGap-1e-9 || gap > gen.MaxGap+1e-9 {
		t.Errorf("first generated gap %f outside [%g, %g]", gap, gen.MinGap, gen.MaxGap)
	}
}

func TestPrefillAnyValidRange(t *testing.T) {
	tests := []struct {
		name     string
		gaps     [2]float64
		widths   [2]float64
		ahead    float64
		poolSize int
	}{
		{"narrow", [2]float64{0.5, 0.5}, [2]float64{1, 1}, 40, 4},
		{"wide", [2]float64{4, 9}, [2]float64{1, 10}, 80, 8},
		{"zero gap", [2]float64{0, 0}, [2]float64{3, 3}, 30, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cam, gen := testConfigs()
			cam.GenerationAhead = tt.ahead
			gen.MinGap, gen.MaxGap = tt.gaps[0], tt.gaps[1]
			gen.MinWidth, gen.MaxWidth = tt.widths[0], tt.widths[1]
			gen.PoolSize = tt.poolSize

			g := NewGenerator(cam, gen, 99, nil)
			g.StartGeneration()
			if g.LastEnd().X <= g.GenerationCursor() {
				t.Errorf("last end %f not past cursor %f", g.LastEnd().X, g.GenerationCursor())
			}
		})
	}
}

func TestHeightClamped(t *testing.T) {
	cam, gen := testConfigs()
	gen.HeightDelta = 10
	gen.MinY, gen.MaxY = -1, 1
	g := NewGenerator(cam, gen, 3, nil)
	g.StartGeneration()

	for i := 0; i < 2000; i++ {
		g.Tick(1.0 / 60)
	}
	for _, p := range g.Platforms() {
		if p.Position.Y < -1 || p.Position.Y > 1 {
			t.Errorf("platform y %f outside clamp", p.Position.Y)
		}
	}
}

func TestSpeedRampSaturates(t *testing.T) {
	cam, gen := testConfigs()
	cam.InitialSpeed = 3
	cam.MaxSpeed = 4
	cam.RampRate = 2
	g := NewGenerator(cam, gen, 1, nil)
	g.StartGeneration()

	prev := g.Camera().Speed
	for i := 0; i < 120; i++ {
		g.Tick(1.0 / 60)
		s := g.Camera().Speed
		if s < prev {
			t.Fatalf("speed decreased at tick %d: %f -> %f", i, prev, s)
		}
		if s > cam.MaxSpeed {
			t.Fatalf("speed %f exceeded cap %f", s, cam.MaxSpeed)
		}
		prev = s
	}
	if prev != cam.MaxSpeed {
		t.Errorf("speed = %f, expected to reach cap %f", prev, cam.MaxSpeed)
	}

	g.StartGeneration()
	if g.Camera().Speed != cam.InitialSpeed {
		t.Errorf("StartGeneration must reset speed, got %f", g.Camera().Speed)
	}
}

func TestActiveQueueOrderedAndRecycled(t *testing.T) {
	g := newTestGenerator(2024)
	g.StartGeneration()
	_, gen := testConfigs()

	for i := 0; i < 3000; i++ {
		g.Tick(1.0 / 60)

		platforms := g.Platforms()
		for j := 1; j < len(platforms); j++ {
			if platforms[j].Position.X < platforms[j-1].Position.X {
				t.Fatalf("tick %d: active queue out of order at %d", i, j)
			}
		}
		limit := g.Camera().X - gen.RecycleDistance - 1e-9
		for _, p := range platforms {
			if p.Position.X < limit {
				t.Fatalf("tick %d: stale platform at %f behind camera %f", i, p.Position.X, g.Camera().X)
			}
		}
	}

	if g.LastEnd().X <= g.GenerationCursor()-gen.MaxGap-gen.MaxWidth {
		t.Error("generation fell behind the cursor")
	}
	if g.Pool().Grown() != 0 {
		t.Errorf("default pool size should cover the track, grew by %d", g.Pool().Grown())
	}
}

func TestRecycleOnePerTick(t *testing.T) {
	g := newTestGenerator(5)
	g.StartGeneration()
	active := g.Pool().ActiveCount()

	// Jump the camera far ahead: every platform is now eligible
	g.camera.X += 1000
	g.camera.Speed = 0
	g.Tick(0)

	// One spawn and at most one recycle
	if got := g.Pool().ActiveCount(); got != active {
		t.Errorf("active count = %d, expected %d (one spawn, one recycle)", got, active)
	}
}

func TestPoolReuseAndFallbackAllocation(t *testing.T) {
	p := NewPool(2)

	a := p.Acquire(core.Vec2{X: 0, Y: 0}, 2, 1)
	b := p.Acquire(core.Vec2{X: 5, Y: 0}, 2, 1)
	if a != 0 || b != 1 {
		t.Errorf("expected slots 0 and 1, got %d and %d", a, b)
	}
	if p.Grown() != 0 {
		t.Error("pool should not grow within capacity")
	}

	c := p.Acquire(core.Vec2{X: 10, Y: 0}, 2, 1)
	if c != 2 || p.Grown() != 1 || p.Capacity() != 3 {
		t.Errorf("fallback allocation: slot=%d grown=%d capacity=%d", c, p.Grown(), p.Capacity())
	}

	if !p.ReleaseHead() {
		t.Fatal("expected to release head")
	}
	head, _ := p.Head()
	if head.Position.X != 5 {
		t.Errorf("head after release = %f, expected 5", head.Position.X)
	}

	d := p.Acquire(core.Vec2{X: 15, Y: 0}, 2, 1)
	if d != a {
		t.Errorf("released slot %d should be reused, got %d", a, d)
	}

	var xs []float64
	p.Each(func(pl Platform) bool {
		xs = append(xs, pl.Position.X)
		return true
	})
	want := []float64{5, 10, 15}
	if len(xs) != len(want) {
		t.Fatalf("active = %v, expected %v", xs, want)
	}
	for i := range want {
		if xs[i] != want[i] {
			t.Errorf("active[%d] = %f, expected %f", i, xs[i], want[i])
		}
	}

	p.ReleaseAll()
	if p.ActiveCount() != 0 || p.FreeCount() != p.Capacity() {
		t.Errorf("ReleaseAll left active=%d free=%d", p.ActiveCount(), p.FreeCount())
	}
}

func TestRingWraps(t *testing.T) {
	r := newRing(2)
	for i := 0; i < 10; i++ {
		r.push(i)
		if i%2 == 1 {
			r.pop()
		}
	}
	if r.len() != 5 {
		t.Fatalf("len = %d, expected 5", r.len())
	}
	for want := 5; want < 10; want++ {
		v, ok := r.pop()
		if !ok || v != want {
			t.Fatalf("pop = %d, expected %d", v, want)
		}
	}
}

func TestRaycastAndLand(t *testing.T) {
	cam, gen := testConfigs()
	gen.FixedTerrainEnd = &config.Point{X: 1000, Y: 0} // No generation near origin
	g := NewGenerator(cam, gen, 1, nil)
	g.StartGeneration()
	g.pool.ReleaseAll()
	g.pool.Acquire(core.Vec2{X: 0, Y: 0}, 4, 1)  // Top at 0.5, spans [-2, 2]
	g.pool.Acquire(core.Vec2{X: 10, Y: 2}, 4, 1) // Top at 2.5, spans [8, 12]

	tests := []struct {
		name    string
		origin  core.Vec2
		length  float64
		wantHit bool
		wantTop float64
	}{
		{"standing", core.Vec2{X: 0, Y: 0.5}, 0.2, true, 0.5},
		{"just above", core.Vec2{X: 1, Y: 0.6}, 0.2, true, 0.5},
		{"too high", core.Vec2{X: 0, Y: 1}, 0.2, false, 0},
		{"beside", core.Vec2{X: 5, Y: 0.5}, 0.2, false, 0},
		{"second platform", core.Vec2{X: 9, Y: 2.55}, 0.2, true, 2.5},
		{"below surface", core.Vec2{X: 0, Y: 0.2}, 0.2, false, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			top, hit := g.RaycastDown(tt.origin, tt.length)
			if hit != tt.wantHit || (hit && top != tt.wantTop) {
				t.Errorf("RaycastDown(%v) = %f, %v; expected %f, %v", tt.origin, top, hit, tt.wantTop, tt.wantHit)
			}
		})
	}

	if top, ok := g.Land(0, 1, 0); !ok || top != 0.5 {
		t.Errorf("falling through a surface should land on it, got %f %v", top, ok)
	}
	if _, ok := g.Land(0, 0, 1); ok {
		t.Error("rising through a platform must not land (one-way)")
	}
	if _, ok := g.Land(0, 0.2, -1); ok {
		t.Error("falling from below the surface must not land")
	}
}
