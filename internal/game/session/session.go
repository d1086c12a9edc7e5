// Package session is the top-level game state machine. It owns the score and
// the time flow, and wires the level generator, the size engine and the
// movement controller into one per-tick loop.
package session

import (
	"fmt"
	"io"
	"math"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/neon-runner/internal/config"
	"github.com/vovakirdan/neon-runner/internal/core"
	"github.com/vovakirdan/neon-runner/internal/game/level"
	"github.com/vovakirdan/neon-runner/internal/game/movement"
	"github.com/vovakirdan/neon-runner/internal/game/size"
)

// State is a game state machine state.
type State int

const (
	StateMenu State = iota
	StatePlaying
	StatePaused
	StateGameOver
)

func (s State) String() string {
	switch s {
	case StateMenu:
		return "menu"
	case StatePlaying:
		return "playing"
	case StatePaused:
		return "paused"
	case StateGameOver:
		return "game_over"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// Deps are the external collaborators. Any nil field is replaced by a no-op.
type Deps struct {
	Audio     Audio
	UI        UI
	Animation Animation
	Saver     Saver
	Recorder  RunRecorder
	Logger    *log.Logger
}

// Controller runs one game session.
type Controller struct {
	cfg       config.NeonConfig
	state     State
	score     float64
	timeScale float64 // 1 while playing, 0 otherwise
	elapsed   float64

	runID      string
	reason     string
	finalScore int
	newRecord  bool

	level    *level.Generator
	size     *size.Engine
	movement *movement.Controller

	audio    Audio
	ui       UI
	anim     Animation
	saver    Saver
	recorder RunRecorder
	logger   *log.Logger
}

// New validates cfg and builds a session in the Menu state.
func New(cfg config.NeonConfig, seed int64, deps Deps) (*Controller, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("session: %w", err)
	}

	c := &Controller{
		cfg:      cfg,
		state:    StateMenu,
		audio:    deps.Audio,
		ui:       deps.UI,
		anim:     deps.Animation,
		saver:    deps.Saver,
		recorder: deps.Recorder,
		logger:   deps.Logger,
	}
	if c.audio == nil {
		c.audio = nopAudio{}
	}
	if c.ui == nil {
		c.ui = nopUI{}
	}
	if c.anim == nil {
		c.anim = nopAnimation{}
	}
	if c.saver == nil {
		c.saver = nopSaver{}
	}
	if c.recorder == nil {
		c.recorder = nopRecorder{}
	}
	if c.logger == nil {
		c.logger = log.New(io.Discard)
	}

	c.level = level.NewGenerator(cfg.Camera, cfg.Generation, seed, c.logger)
	c.size = size.New(cfg.Size, c.audio, c.GameOver)
	c.movement = movement.New(cfg.Movement, c.size, c.level, c)

	return c, nil
}

// StartGame leaves the menu and begins a fresh run.
func (c *Controller) StartGame() {
	if c.state != StateMenu {
		return
	}

	c.score = 0
	c.elapsed = 0
	c.reason = ""
	c.finalScore = 0
	c.newRecord = false
	c.runID = uuid.NewString()

	c.size.Reset()
	c.movement.Reset()
	c.level.StartGeneration()
	c.movement.Enable()

	c.timeScale = 1
	c.state = StatePlaying

	c.audio.UpdatePitchByLevel(0, c.cfg.Size.MaxStage)
	c.audio.SetMusicPaused(false)
	c.ui.ShowHUD()
	c.ui.UpdateScoreUI(0)

	c.logger.Debug("state changed", "state", c.state, "run", c.runID)
}

// TogglePause switches between Playing and Paused. Other states ignore it.
func (c *Controller) TogglePause() {
	switch c.state {
	case StatePlaying:
		c.state = StatePaused
		c.timeScale = 0
		c.audio.SetMusicPaused(true)
		c.ui.TogglePauseMenu(true)
	case StatePaused:
		c.state = StatePlaying
		c.timeScale = 1
		c.audio.SetMusicPaused(false)
		c.ui.TogglePauseMenu(false)
		c.ui.ClearSelection()
	default:
		return
	}
	c.logger.Debug("state changed", "state", c.state)
}

// Step advances the session by dt seconds of wall time.
// Nothing moves unless the session is playing.
func (c *Controller) Step(in movement.Input, dt float64) {
	if c.state != StatePlaying {
		return
	}
	dt *= c.timeScale

	c.level.Tick(dt)
	c.movement.Tick(in, dt)
	if c.state != StatePlaying {
		return
	}
	c.size.Tick(dt)

	c.elapsed += dt
	c.score += c.cfg.Score.Rate * dt
	c.ui.UpdateScoreUI(c.Score())
}

// GameOver ends the run. Only the first call while playing has any effect.
func (c *Controller) GameOver(reason string) {
	if c.state != StatePlaying {
		return
	}

	c.state = StateGameOver
	c.timeScale = 0
	c.reason = reason
	c.movement.Disable()
	c.audio.PlaySound(core.SoundGameOver)

	c.finalScore = int(math.Floor(c.score))
	c.newRecord = c.saver.SaveHighScore(c.finalScore)

	run := c.runResult()
	if err := c.recorder.RecordRun(run); err != nil {
		c.logger.Warn("could not record run", "run", run.ID, "error", err)
	}

	c.ui.ShowGameOver(reason, c.finalScore, c.newRecord)

	c.logger.Info("game over",
		"reason", reason,
		"score", c.finalScore,
		"record", c.newRecord,
		"stage", c.size.Stage())
}

// OnPlayerJump reacts to a successful jump: the player grows.
func (c *Controller) OnPlayerJump() {
	c.audio.PlaySound(core.SoundJump)
	c.size.ChangeSize(1, c.movement.Body())
}

// OnPlayerDash reacts to a dash start: the player shrinks.
func (c *Controller) OnPlayerDash() {
	c.audio.PlaySound(core.SoundDash)
	c.anim.PlayDash()
	c.size.ChangeSize(-1, c.movement.Body())
}

// Restart tears the run down and immediately plays a fresh one.
func (c *Controller) Restart() {
	c.reload()
	c.StartGame()
}

// GoToMainMenu tears the run down and shows the menu.
func (c *Controller) GoToMainMenu() {
	c.reload()
	c.ui.ShowMenu()
}

func (c *Controller) reload() {
	c.state = StateMenu
	c.timeScale = 0
	c.score = 0
	c.elapsed = 0
	c.size.Reset()
	c.movement.Reset()
	c.level.StartGeneration()
	c.ui.TogglePauseMenu(false)
	c.logger.Debug("state changed", "state", c.state)
}

// Reseed changes the level layout used by the next run.
func (c *Controller) Reseed(seed int64) {
	c.level.Reseed(seed)
}
