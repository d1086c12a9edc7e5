package neon

import (
	"math"

	"github.com/vovakirdan/neon-runner/internal/game/movement"
	"github.com/vovakirdan/neon-runner/internal/physics"
)

// Frame is the sprite pose picked for the player.
type Frame int

const (
	FrameIdle Frame = iota
	FrameRun
	FrameJump
	FrameFall
	FrameDash
)

func (f Frame) String() string {
	switch f {
	case FrameIdle:
		return "idle"
	case FrameRun:
		return "run"
	case FrameJump:
		return "jump"
	case FrameFall:
		return "fall"
	case FrameDash:
		return "dash"
	default:
		return "unknown"
	}
}

// Animation timing
const (
	idleFrameRate    = 8.0
	runFrameRate     = 12.0
	idleFrameCount   = 2
	runFrameCount    = 4
	velocityDeadZone = 0.1
)

// Animator selects the player's sprite from its kinematics.
type Animator struct {
	dashDuration float64
	dash         physics.Timer
	facingLeft   bool
	frame        Frame
	cycle        Frame // Looping animation in progress, FrameJump when none
	index        int   // Position inside the looping animation
	timer        float64
}

// NewAnimator creates an animator whose dash pose lasts dashDuration seconds.
func NewAnimator(dashDuration float64) *Animator {
	return &Animator{dashDuration: dashDuration, cycle: FrameJump}
}

// PlayDash shows the dash pose until it expires.
func (a *Animator) PlayDash() {
	a.dash.Schedule(a.dashDuration)
}

// Tick advances the animation by dt seconds of game time.
func (a *Animator) Tick(k movement.Kinematics, dt float64) {
	a.dash.Advance(dt)

	vx := k.Velocity.X
	if vx > velocityDeadZone {
		a.facingLeft = false
	} else if vx < -velocityDeadZone {
		a.facingLeft = true
	}

	// Dash pose wins over everything else
	if a.dash.Armed() {
		a.frame = FrameDash
		return
	}

	if k.Grounded {
		if math.Abs(vx) > velocityDeadZone {
			a.play(FrameRun, runFrameRate, dt)
		} else {
			a.play(FrameIdle, idleFrameRate, dt)
		}
		return
	}

	a.cycle = FrameJump
	switch vy := k.Velocity.Y; {
	case vy > velocityDeadZone:
		a.frame = FrameJump
	case vy < -velocityDeadZone:
		a.frame = FrameFall
	}
}

func (a *Animator) play(cycle Frame, rate, dt float64) {
	if a.cycle != cycle {
		a.cycle = cycle
		a.index = 0
		a.timer = 0
	}
	a.frame = cycle

	count := idleFrameCount
	if cycle == FrameRun {
		count = runFrameCount
	}

	a.timer += dt
	if a.timer >= 1/rate {
		a.timer -= 1 / rate
		a.index = (a.index + 1) % count
	}
}

// Reset returns to the idle pose facing right.
func (a *Animator) Reset() {
	*a = Animator{dashDuration: a.dashDuration, cycle: FrameJump}
}

// Frame returns the current pose.
func (a *Animator) Frame() Frame { return a.frame }

// Index returns the sub-frame of a looping pose.
func (a *Animator) Index() int { return a.index }

// FacingLeft reports whether the sprite is flipped.
func (a *Animator) FacingLeft() bool { return a.facingLeft }
