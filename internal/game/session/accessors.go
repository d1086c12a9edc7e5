package session

import (
	"math"

	"github.com/vovakirdan/neon-runner/internal/config"
	"github.com/vovakirdan/neon-runner/internal/core"
	"github.com/vovakirdan/neon-runner/internal/game/level"
	"github.com/vovakirdan/neon-runner/internal/game/movement"
	"github.com/vovakirdan/neon-runner/internal/game/size"
)

// State returns the current state.
func (c *Controller) State() State { return c.state }

// Score returns the floored score.
func (c *Controller) Score() int { return int(math.Floor(c.score)) }

// RawScore returns the unfloored score.
func (c *Controller) RawScore() float64 { return c.score }

// TimeScale returns the simulation time multiplier.
func (c *Controller) TimeScale() float64 { return c.timeScale }

// Elapsed returns simulated seconds in the current run.
func (c *Controller) Elapsed() float64 { return c.elapsed }

// Reason returns the defeat reason of a finished run.
func (c *Controller) Reason() string { return c.reason }

// FinalScore returns the score recorded at game over.
func (c *Controller) FinalScore() int { return c.finalScore }

// NewRecord reports whether the finished run set a high score.
func (c *Controller) NewRecord() bool { return c.newRecord }

// HighScore returns the persisted best score.
func (c *Controller) HighScore() int { return c.saver.GetHighScore() }

// RunID returns the identifier of the current run.
func (c *Controller) RunID() string { return c.runID }

// Config returns the session configuration.
func (c *Controller) Config() config.NeonConfig { return c.cfg }

// Level returns the level generator.
func (c *Controller) Level() *level.Generator { return c.level }

// Size returns the size engine.
func (c *Controller) Size() *size.Engine { return c.size }

// Movement returns the movement controller.
func (c *Controller) Movement() *movement.Controller { return c.movement }

func (c *Controller) runResult() core.RunResult {
	return core.RunResult{
		ID:       c.runID,
		Score:    c.finalScore,
		Reason:   c.reason,
		Stage:    c.size.Stage(),
		Distance: c.level.Camera().X - c.cfg.Camera.StartX,
		Duration: c.elapsed,
	}
}
