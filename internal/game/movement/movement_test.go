package movement

import (
	"math"
	"testing"

	"github.com/vovakirdan/neon-runner/internal/config"
	"github.com/vovakirdan/neon-runner/internal/core"
)

const dt = 1.0 / 60

// flatWorld is an endless floor with its surface at y=floor.
type flatWorld struct {
	floor    float64
	hasFloor bool
	left     float64
}

func (w *flatWorld) RaycastDown(origin core.Vec2, length float64) (float64, bool) {
	if !w.hasFloor {
		return 0, false
	}
	if w.floor <= origin.Y+1e-6 && w.floor >= origin.Y-length-1e-6 {
		return w.floor, true
	}
	return 0, false
}

func (w *flatWorld) Land(x, prevY, newY float64) (float64, bool) {
	if !w.hasFloor || newY > prevY {
		return 0, false
	}
	if w.floor <= prevY+1e-6 && w.floor >= newY-1e-6 {
		return w.floor, true
	}
	return 0, false
}

func (w *flatWorld) LeftEdge() float64 { return w.left }

type fixedGauge float64

func (g fixedGauge) JumpMultiplier() float64 { return float64(g) }

type recorder struct {
	jumps   int
	dashes  int
	reasons []string
	ctrl    *Controller
	onDash  func()
}

func (r *recorder) OnPlayerJump() { r.jumps++ }
func (r *recorder) OnPlayerDash() {
	r.dashes++
	if r.onDash != nil {
		r.onDash()
	}
}
func (r *recorder) GameOver(reason string) {
	r.reasons = append(r.reasons, reason)
	if r.ctrl != nil {
		r.ctrl.Disable()
	}
}

func testConfig() config.MovementConfig {
	cfg := config.DefaultNeonConfig().Movement
	cfg.Spawn = config.Point{X: 0, Y: 0}
	return cfg
}

func newController(gauge SizeGauge) (*Controller, *flatWorld, *recorder) {
	world := &flatWorld{floor: 0, hasFloor: true, left: -100}
	rec := &recorder{}
	c := New(testConfig(), gauge, world, rec)
	rec.ctrl = c
	c.Enable()
	return c, world, rec
}

func TestDisabledControllerIgnoresTicks(t *testing.T) {
	world := &flatWorld{hasFloor: true, left: -100}
	c := New(testConfig(), fixedGauge(1), world, &recorder{})

	before := c.Kinematics()
	c.Tick(Input{Axis: 1, Jump: true}, dt)
	if c.Kinematics() != before {
		t.Error("controller must start disabled and ignore input")
	}
}

func TestRunSetsHorizontalVelocity(t *testing.T) {
	c, _, _ := newController(fixedGauge(1))
	cfg := testConfig()

	c.Tick(Input{Axis: 1}, dt)
	if got := c.Kinematics().Velocity.X; got != cfg.MoveSpeed {
		t.Errorf("vx = %f, expected %f", got, cfg.MoveSpeed)
	}
	c.Tick(Input{Axis: -1}, dt)
	if got := c.Kinematics().Velocity.X; got != -cfg.MoveSpeed {
		t.Errorf("vx = %f, expected %f", got, -cfg.MoveSpeed)
	}
	if !c.Kinematics().Grounded {
		t.Error("body resting on the floor should be grounded")
	}
}

func TestJumpImpulseScaledBySize(t *testing.T) {
	tests := []struct {
		name string
		mult float64
	}{
		{"normal", 1},
		{"large", 1 / 1.4},
		{"small", 1 / 0.6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _, rec := newController(fixedGauge(tt.mult))
			cfg := testConfig()

			c.Tick(Input{}, dt) // Settle on the floor
			c.Tick(Input{Jump: true}, dt)

			// One integration step has already applied gravity
			want := cfg.BaseJumpForce*tt.mult + cfg.Gravity*cfg.GravityScale*dt
			if got := c.Kinematics().Velocity.Y; math.Abs(got-want) > 1e-9 {
				t.Errorf("vy = %f, expected %f", got, want)
			}
			if rec.jumps != 1 {
				t.Errorf("jump notifications = %d, expected 1", rec.jumps)
			}
		})
	}
}

func TestJumpCountLimit(t *testing.T) {
	c, world, rec := newController(fixedGauge(1))
	cfg := testConfig()

	c.Tick(Input{}, dt)
	world.hasFloor = false // Stay airborne

	for i := 0; i < cfg.MaxJumps+2; i++ {
		c.Tick(Input{Jump: true}, dt)
	}
	if rec.jumps != cfg.MaxJumps {
		t.Errorf("jumps = %d, expected max %d", rec.jumps, cfg.MaxJumps)
	}
	if c.Kinematics().JumpCount != cfg.MaxJumps {
		t.Errorf("jump count = %d, expected %d", c.Kinematics().JumpCount, cfg.MaxJumps)
	}
}

func TestGroundedJumpResetsCount(t *testing.T) {
	c, _, rec := newController(fixedGauge(1))

	c.Tick(Input{}, dt)
	c.Tick(Input{Jump: true}, dt)
	c.Tick(Input{Jump: true}, dt)

	// Fall back onto the floor
	for i := 0; i < 300 && !c.Kinematics().Grounded; i++ {
		c.Tick(Input{}, dt)
	}
	if !c.Kinematics().Grounded {
		t.Fatal("expected to land")
	}

	c.Tick(Input{Jump: true}, dt)
	if rec.jumps != 3 || c.Kinematics().JumpCount != 1 {
		t.Errorf("jumps=%d count=%d, expected 3 and 1", rec.jumps, c.Kinematics().JumpCount)
	}
}

func TestJumpVelocityIndependentOfFallSpeed(t *testing.T) {
	c, world, _ := newController(fixedGauge(1))
	world.hasFloor = false
	cfg := testConfig()

	for i := 0; i < 30; i++ {
		c.Tick(Input{}, dt)
	}
	c.Tick(Input{Jump: true}, dt)

	want := cfg.BaseJumpForce + cfg.Gravity*cfg.GravityScale*dt
	if got := c.Kinematics().Velocity.Y; math.Abs(got-want) > 1e-9 {
		t.Errorf("vy after air jump = %f, expected %f", got, want)
	}
}

func TestDash(t *testing.T) {
	tests := []struct {
		name  string
		axis  float64
		wantX float64
	}{
		{"no input dashes right", 0, 1},
		{"right", 1, 1},
		{"left", -1, -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, world, rec := newController(fixedGauge(1))
			world.hasFloor = false
			cfg := testConfig()

			c.Tick(Input{}, dt)
			c.Tick(Input{Axis: tt.axis, Dash: true}, dt)

			k := c.Kinematics()
			if !k.IsDashing || k.GravityScale != 0 {
				t.Fatalf("dashing=%v gravity=%f, expected dashing with zero gravity", k.IsDashing, k.GravityScale)
			}
			if k.Velocity.X != tt.wantX*cfg.DashSpeed || k.Velocity.Y != 0 {
				t.Errorf("velocity = %+v, expected (%f, 0)", k.Velocity, tt.wantX*cfg.DashSpeed)
			}
			if rec.dashes != 1 {
				t.Errorf("dash notifications = %d", rec.dashes)
			}

			// Axis input does not steer the dash
			c.Tick(Input{Axis: -tt.wantX}, dt)
			if c.Kinematics().Velocity.X != tt.wantX*cfg.DashSpeed {
				t.Error("dash must own horizontal velocity")
			}
		})
	}
}

func TestDashEndsAfterDuration(t *testing.T) {
	c, world, _ := newController(fixedGauge(1))
	world.hasFloor = false
	cfg := testConfig()
	cfg.DashDuration = 0.25
	c.cfg = cfg

	c.Tick(Input{Dash: true}, 0.0625)
	// Three more ticks consume 0.1875s, the fourth reaches 0.25s
	for i := 0; i < 3; i++ {
		c.Tick(Input{}, 0.0625)
		if !c.Kinematics().IsDashing {
			t.Fatalf("dash ended early at tick %d", i)
		}
	}
	c.Tick(Input{}, 0.0625)

	k := c.Kinematics()
	if k.IsDashing || k.GravityScale != cfg.GravityScale {
		t.Errorf("dashing=%v gravity=%f, expected dash over with gravity restored", k.IsDashing, k.GravityScale)
	}
}

func TestDashTimerFrozenWithoutTime(t *testing.T) {
	c, world, _ := newController(fixedGauge(1))
	world.hasFloor = false

	c.Tick(Input{Dash: true}, dt)
	remaining := c.DashRemaining()

	// A paused host stops ticking or ticks with zero delta
	for i := 0; i < 100; i++ {
		c.Tick(Input{}, 0)
	}
	if !c.Kinematics().IsDashing || c.DashRemaining() != remaining {
		t.Error("dash timer advanced without simulation time")
	}
}

func TestNoJumpWhileDashing(t *testing.T) {
	c, world, rec := newController(fixedGauge(1))
	world.hasFloor = false

	c.Tick(Input{Dash: true}, dt)
	c.Tick(Input{Jump: true}, dt)

	if rec.jumps != 0 {
		t.Error("jump must be ignored during a dash")
	}
	if c.Kinematics().Velocity.Y != 0 {
		t.Error("vertical velocity must stay zero during a dash")
	}
}

func TestNoRedashDuringDash(t *testing.T) {
	c, _, rec := newController(fixedGauge(1))

	c.Tick(Input{Dash: true}, dt)
	c.Tick(Input{Dash: true}, dt)
	if rec.dashes != 1 {
		t.Errorf("dashes = %d, expected 1", rec.dashes)
	}
}

func TestDefeatDuringDashKeepsDashVelocity(t *testing.T) {
	c, world, rec := newController(fixedGauge(1))
	world.hasFloor = false
	cfg := testConfig()
	rec.onDash = func() { rec.GameOver("shrank to nothing") }

	c.Tick(Input{}, dt)
	pos := c.Kinematics().Position
	c.Tick(Input{Dash: true}, dt)

	k := c.Kinematics()
	if k.Velocity != (core.Vec2{X: cfg.DashSpeed}) {
		t.Errorf("velocity = %+v, expected (%f, 0)", k.Velocity, cfg.DashSpeed)
	}
	if k.Position != pos {
		t.Error("no integration may happen after defeat")
	}
	if c.Enabled() {
		t.Error("controller should be disabled")
	}
}

func TestFallDeath(t *testing.T) {
	c, world, rec := newController(fixedGauge(1))
	world.hasFloor = false

	for i := 0; i < 600 && c.Enabled(); i++ {
		c.Tick(Input{}, dt)
	}
	if len(rec.reasons) != 1 || rec.reasons[0] != ReasonFell {
		t.Errorf("reasons = %v, expected [%q]", rec.reasons, ReasonFell)
	}
}

func TestOutrunByCamera(t *testing.T) {
	c, world, rec := newController(fixedGauge(1))
	world.left = -1

	c.Tick(Input{}, dt)
	if len(rec.reasons) != 0 {
		t.Fatal("player ahead of the left edge must survive")
	}

	world.left = 0
	c.Tick(Input{}, dt)
	if len(rec.reasons) != 1 || rec.reasons[0] != ReasonTooSlow {
		t.Errorf("reasons = %v, expected [%q]", rec.reasons, ReasonTooSlow)
	}
}

func TestReset(t *testing.T) {
	c, _, _ := newController(fixedGauge(1))
	c.Tick(Input{Axis: 1, Dash: true}, dt)
	c.Reset()

	k := c.Kinematics()
	if k.IsDashing || k.JumpCount != 0 || k.Velocity != (core.Vec2{}) || c.Enabled() {
		t.Errorf("Reset left state: %+v enabled=%v", k, c.Enabled())
	}
}
