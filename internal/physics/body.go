// Package physics provides the small amount of 2D kinematics the runner needs:
// a unit-mass body integrated with semi-implicit Euler, and a deferred timer
// driven by accumulated simulation time.
package physics

import "github.com/vovakirdan/neon-runner/internal/core"

// Body is a unit-mass kinematic body.
// Position is the bottom-centre (feet) of the body, so scaling never moves
// the feet relative to the ground.
type Body struct {
	Position     core.Vec2
	Velocity     core.Vec2
	GravityScale float64
	scale        float64
	size         core.Vec2 // Width and height at scale 1
}

// NewBody creates a body resting at pos.
func NewBody(pos, size core.Vec2, gravityScale float64) *Body {
	return &Body{
		Position:     pos,
		GravityScale: gravityScale,
		scale:        1,
		size:         size,
	}
}

// Integrate advances velocity by gravity, then position by velocity.
func (b *Body) Integrate(gravity, dt float64) {
	b.Velocity.Y += gravity * b.GravityScale * dt
	b.Position = b.Position.Add(b.Velocity.Scale(dt))
}

// AddImpulse applies an instantaneous velocity change.
func (b *Body) AddImpulse(j core.Vec2) {
	b.Velocity = b.Velocity.Add(j)
}

// Scale returns the current uniform scale.
func (b *Body) Scale() float64 {
	return b.scale
}

// SetScale sets the uniform scale.
func (b *Body) SetScale(s float64) {
	b.scale = s
}

// HalfWidth returns half the scaled width.
func (b *Body) HalfWidth() float64 {
	return b.size.X * b.scale / 2
}

// Height returns the scaled height.
func (b *Body) Height() float64 {
	return b.size.Y * b.scale
}

// Top returns the y of the body's head.
func (b *Body) Top() float64 {
	return b.Position.Y + b.Height()
}
