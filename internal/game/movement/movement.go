// Package movement turns player input into kinematics: horizontal running,
// size-scaled multi-jumps, gravity-free dashes and the fall/outrun defeat checks.
package movement

import (
	"github.com/vovakirdan/neon-runner/internal/config"
	"github.com/vovakirdan/neon-runner/internal/core"
	"github.com/vovakirdan/neon-runner/internal/physics"
)

// Defeat reasons reported by the controller.
const (
	ReasonFell    = "fell into the void"
	ReasonTooSlow = "too slow"
)

// Input is the per-tick control state. Jump and Dash are press edges.
type Input struct {
	Axis float64 // -1 left, 0 none, +1 right
	Jump bool
	Dash bool
}

// World answers spatial queries against the platform track.
type World interface {
	RaycastDown(origin core.Vec2, length float64) (float64, bool)
	Land(x, prevY, newY float64) (float64, bool)
	LeftEdge() float64
}

// SizeGauge provides the jump strength modifier.
type SizeGauge interface {
	JumpMultiplier() float64
}

// Listener receives gameplay notifications.
type Listener interface {
	OnPlayerJump()
	OnPlayerDash()
	GameOver(reason string)
}

// Kinematics is a read-only snapshot of the player's motion state.
type Kinematics struct {
	Position     core.Vec2
	Velocity     core.Vec2
	Scale        float64
	JumpCount    int
	IsDashing    bool
	Grounded     bool
	GravityScale float64
}

// Controller owns the player body.
type Controller struct {
	cfg          config.MovementConfig
	body         *physics.Body
	jumpCount    int
	isDashing    bool
	savedGravity float64
	dashTimer    physics.Timer
	grounded     bool
	enabled      bool

	size     SizeGauge
	world    World
	listener Listener
}

// New creates a disabled controller with the body at the spawn point.
func New(cfg config.MovementConfig, size SizeGauge, world World, listener Listener) *Controller {
	c := &Controller{
		cfg:      cfg,
		size:     size,
		world:    world,
		listener: listener,
	}
	c.Reset()
	return c
}

// Reset places a fresh body at the spawn point and clears all motion state.
func (c *Controller) Reset() {
	spawn := core.Vec2{X: c.cfg.Spawn.X, Y: c.cfg.Spawn.Y}
	size := core.Vec2{X: c.cfg.Width, Y: c.cfg.Height}
	c.body = physics.NewBody(spawn, size, c.cfg.GravityScale)
	c.jumpCount = 0
	c.isDashing = false
	c.savedGravity = c.cfg.GravityScale
	c.dashTimer.Cancel()
	c.grounded = false
	c.enabled = false
}

// Enable lets Tick mutate the body.
func (c *Controller) Enable() {
	c.enabled = true
}

// Disable freezes the controller. Velocity is left as is.
func (c *Controller) Disable() {
	c.enabled = false
}

// Enabled reports whether the controller reacts to Tick.
func (c *Controller) Enabled() bool {
	return c.enabled
}

// Tick runs one simulation step.
func (c *Controller) Tick(in Input, dt float64) {
	if !c.enabled {
		return
	}

	if c.dashTimer.Advance(dt) {
		c.endDash()
	}

	c.grounded = c.checkGround()

	// Dash owns horizontal velocity
	if !c.isDashing {
		c.body.Velocity.X = in.Axis * c.cfg.MoveSpeed
	}

	if in.Jump {
		c.jump()
		if !c.enabled {
			return
		}
	}

	if in.Dash {
		c.dash(in.Axis)
		if !c.enabled {
			return
		}
	}

	prevY := c.body.Position.Y
	c.body.Integrate(c.cfg.Gravity, dt)
	c.resolveLanding(prevY)

	c.checkBounds()
}

func (c *Controller) jump() {
	if c.isDashing {
		return
	}
	if !c.grounded && c.jumpCount >= c.cfg.MaxJumps {
		return
	}

	if c.grounded {
		c.jumpCount = 0
	}
	c.jumpCount++
	c.grounded = false

	c.body.Velocity.Y = 0
	c.body.AddImpulse(core.Vec2{Y: c.cfg.BaseJumpForce * c.size.JumpMultiplier()})

	if c.listener != nil {
		c.listener.OnPlayerJump()
	}
}

func (c *Controller) dash(axis float64) {
	if c.isDashing {
		return
	}

	dir := 1.0
	if axis < 0 {
		dir = -1
	}

	c.isDashing = true
	c.savedGravity = c.body.GravityScale
	c.body.GravityScale = 0
	c.body.Velocity = core.Vec2{}
	c.body.Velocity.X = dir * c.cfg.DashSpeed
	c.dashTimer.Schedule(c.cfg.DashDuration)

	if c.listener != nil {
		c.listener.OnPlayerDash()
	}
}

func (c *Controller) endDash() {
	c.body.GravityScale = c.savedGravity
	c.isDashing = false
}

// checkGround casts down from the feet. A rising body is never grounded.
func (c *Controller) checkGround() bool {
	if c.world == nil || c.body.Velocity.Y > 0 {
		return false
	}
	_, hit := c.world.RaycastDown(c.body.Position, c.cfg.GroundCheckDistance)
	return hit
}

func (c *Controller) resolveLanding(prevY float64) {
	if c.world == nil || c.body.Velocity.Y > 0 {
		return
	}
	top, ok := c.world.Land(c.body.Position.X, prevY, c.body.Position.Y)
	if !ok {
		return
	}
	c.body.Position.Y = top
	c.body.Velocity.Y = 0
}

func (c *Controller) checkBounds() {
	if c.listener == nil {
		return
	}
	if c.body.Position.Y < c.cfg.FallDeathY {
		c.listener.GameOver(ReasonFell)
		return
	}
	if c.world != nil && c.body.Position.X <= c.world.LeftEdge() {
		c.listener.GameOver(ReasonTooSlow)
	}
}

// Body returns the player body. The size engine animates its scale.
func (c *Controller) Body() *physics.Body {
	return c.body
}

// Kinematics returns a snapshot of the motion state.
func (c *Controller) Kinematics() Kinematics {
	return Kinematics{
		Position:     c.body.Position,
		Velocity:     c.body.Velocity,
		Scale:        c.body.Scale(),
		JumpCount:    c.jumpCount,
		IsDashing:    c.isDashing,
		Grounded:     c.grounded,
		GravityScale: c.body.GravityScale,
	}
}

// DashRemaining returns the seconds left in the current dash.
func (c *Controller) DashRemaining() float64 {
	return c.dashTimer.Remaining()
}
