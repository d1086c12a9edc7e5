// Package size implements the size/risk gauge: a signed stage that every jump
// grows and every dash shrinks. The stage sets the jump strength immediately
// and the player's visual scale smoothly; reaching either bound is defeat.
package size

import (
	"math"

	"github.com/vovakirdan/neon-runner/internal/config"
	"github.com/vovakirdan/neon-runner/internal/core"
)

// Defeat reasons reported by the engine.
const (
	ReasonTooLarge = "grew too large"
	ReasonTooSmall = "shrank to nothing"
)

// ScaleTarget is the entity whose visual scale the engine animates.
type ScaleTarget interface {
	Scale() float64
	SetScale(s float64)
}

// Audio receives size feedback.
type Audio interface {
	PlaySound(s core.Sound)
	UpdatePitchByLevel(stage, maxStage int)
}

// DefeatFunc is called once the stage leaves the open interval (-max, +max).
type DefeatFunc func(reason string)

// Engine owns the stage and the target/current visual scale.
type Engine struct {
	cfg          config.SizeConfig
	stage        int
	targetScale  float64
	currentScale float64
	player       ScaleTarget // Held only while an interpolation is in flight
	audio        Audio
	onDefeat     DefeatFunc
}

// New creates an engine at stage 0.
func New(cfg config.SizeConfig, audio Audio, onDefeat DefeatFunc) *Engine {
	e := &Engine{
		cfg:      cfg,
		audio:    audio,
		onDefeat: onDefeat,
	}
	e.Reset()
	return e
}

// Reset returns to stage 0 at scale 1 and forgets the player.
func (e *Engine) Reset() {
	e.stage = 0
	e.targetScale = 1
	e.currentScale = 1
	e.player = nil
}

// ChangeSize moves the stage by amount (+1 on jump, -1 on dash).
func (e *Engine) ChangeSize(amount int, player ScaleTarget) {
	e.player = player
	e.stage += amount

	if e.stage >= e.cfg.MaxStage {
		e.defeat(ReasonTooLarge)
		return
	}
	if e.stage <= -e.cfg.MaxStage {
		e.defeat(ReasonTooSmall)
		return
	}

	e.targetScale = e.scaleFor(e.stage)

	if e.audio == nil {
		return
	}
	e.audio.UpdatePitchByLevel(e.stage, e.cfg.MaxStage)
	switch {
	case amount > 0:
		e.audio.PlaySound(core.SoundGrow)
	case amount < 0:
		e.audio.PlaySound(core.SoundShrink)
	}
}

func (e *Engine) defeat(reason string) {
	if e.onDefeat != nil {
		e.onDefeat(reason)
	}
}

// Tick moves the player's visual scale toward the target.
// The approach is exponential and frame-rate independent; within epsilon the
// scale snaps to the target and the player reference is released.
func (e *Engine) Tick(dt float64) {
	if e.player == nil {
		return
	}

	cur := e.player.Scale()
	diff := e.targetScale - cur
	if math.Abs(diff) <= e.cfg.Epsilon {
		e.player.SetScale(e.targetScale)
		e.currentScale = e.targetScale
		e.player = nil
		return
	}

	t := 1 - math.Exp(-e.cfg.LerpRate*dt)
	e.currentScale = cur + diff*t
	e.player.SetScale(e.currentScale)
}

// JumpMultiplier is the inverse of the stage's scale: bigger means weaker jumps.
func (e *Engine) JumpMultiplier() float64 {
	return 1 / e.scaleFor(e.stage)
}

func (e *Engine) scaleFor(stage int) float64 {
	return math.Max(e.cfg.MinScale, 1+float64(stage)*e.cfg.ScaleStep)
}

// Stage returns the current stage.
func (e *Engine) Stage() int {
	return e.stage
}

// MaxStage returns the exclusive stage bound.
func (e *Engine) MaxStage() int {
	return e.cfg.MaxStage
}

// TargetScale returns the scale the player is converging to.
func (e *Engine) TargetScale() float64 {
	return e.targetScale
}

// CurrentScale returns the last interpolated scale.
func (e *Engine) CurrentScale() float64 {
	return e.currentScale
}

// Interpolating reports whether a player scale animation is in flight.
func (e *Engine) Interpolating() bool {
	return e.player != nil
}
