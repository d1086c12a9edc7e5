// Package neon adapts the runner session to the registry's frame-driven
// Game interface: it maps semantic actions onto session operations and
// draws the world, the HUD and the menu panels into a character screen.
package neon

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/neon-runner/internal/config"
	"github.com/vovakirdan/neon-runner/internal/core"
	"github.com/vovakirdan/neon-runner/internal/game/movement"
	"github.com/vovakirdan/neon-runner/internal/game/session"
	"github.com/vovakirdan/neon-runner/internal/registry"
	"github.com/vovakirdan/neon-runner/internal/storage"
)

// GameID is the registry identifier and the score table key.
const GameID = "neon"

// configPath stores the custom config path set via CLI
var configPath string
var difficultyPreset config.DifficultyPreset

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset. Unknown names keep the config value.
func SetDifficultyPreset(preset string) {
	p, err := config.ParsePreset(preset)
	if err != nil {
		p = ""
	}
	difficultyPreset = p
}

// Game wraps one session together with its HUD and sprite animator.
type Game struct {
	env     registry.Env
	runtime core.RuntimeConfig
	cfg     config.NeonConfig
	logger  *log.Logger

	session *session.Controller
	keeper  *storage.Keeper
	hud     *HUD
	anim    *Animator

	axis float64 // Latched run direction
	runs int64   // Runs started since Reset, used to vary the seed
}

// New creates an unstarted game. Reset must be called before Step.
func New(env registry.Env) *Game {
	logger := env.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Game{env: env, logger: logger}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return GameID
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Neon Ninja"
}

// Reset loads the configuration and builds a fresh session showing the menu.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.axis = 0
	g.runs = 0

	cfg, err := config.LoadNeon(configPath)
	if err != nil {
		g.logger.Warn("config load failed, using defaults", "path", configPath, "err", err)
		cfg = config.DefaultNeonConfig()
	}
	config.ApplyDifficulty(&cfg, difficultyPreset)

	g.keeper = storage.NewKeeper(g.env.Store, GameID, g.logger)
	g.hud = newHUD(g.keeper)
	g.anim = NewAnimator(cfg.Movement.DashDuration)

	deps := session.Deps{
		Audio:     g.env.Audio,
		UI:        g.hud,
		Animation: g.anim,
		Saver:     g.keeper,
		Recorder:  g.keeper,
		Logger:    g.logger,
	}

	s, err := session.New(cfg, runtime.Seed, deps)
	if err != nil {
		g.logger.Warn("invalid config, using defaults", "err", err)
		cfg = config.DefaultNeonConfig()
		g.anim = NewAnimator(cfg.Movement.DashDuration)
		deps.Animation = g.anim
		s, err = session.New(cfg, runtime.Seed, deps)
		if err != nil {
			g.logger.Error("default config rejected", "err", err)
			panic(fmt.Sprintf("neon: default config is invalid: %v", err))
		}
	}

	g.cfg = cfg
	g.session = s
	g.hud.ShowMenu()
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	switch g.session.State() {
	case session.StateMenu:
		if in.Has(core.ActionConfirm) || in.Has(core.ActionJump) {
			g.start()
		}

	case session.StatePaused:
		g.stepPauseMenu(in)

	case session.StateGameOver:
		switch {
		case in.Has(core.ActionRestart), in.Has(core.ActionConfirm):
			g.restart()
		case in.Has(core.ActionMenu):
			g.mainMenu()
		}

	case session.StatePlaying:
		if in.Has(core.ActionPause) {
			g.session.TogglePause()
			break
		}
		g.stepPlaying(in)
	}

	return core.StepResult{State: g.State()}
}

func (g *Game) stepPlaying(in core.InputFrame) {
	switch {
	case in.Has(core.ActionStop):
		g.axis = 0
	case in.Has(core.ActionLeft):
		g.axis = -1
	case in.Has(core.ActionRight):
		g.axis = 1
	}

	dt := g.runtime.DeltaSeconds()
	g.session.Step(movement.Input{
		Axis: g.axis,
		Jump: in.Has(core.ActionJump),
		Dash: in.Has(core.ActionDash),
	}, dt)

	if g.session.State() == session.StatePlaying {
		g.anim.Tick(g.session.Movement().Kinematics(), dt*g.session.TimeScale())
	}
}

func (g *Game) stepPauseMenu(in core.InputFrame) {
	switch {
	case in.Has(core.ActionPause):
		g.session.TogglePause()
	case in.Has(core.ActionRestart):
		g.restart()
	case in.Has(core.ActionMenu):
		g.mainMenu()
	case in.Has(core.ActionLeft):
		g.hud.moveSelection(-1)
	case in.Has(core.ActionRight):
		g.hud.moveSelection(1)
	case in.Has(core.ActionConfirm):
		switch g.hud.selection {
		case pauseResume:
			g.session.TogglePause()
		case pauseRestart:
			g.restart()
		case pauseMenu:
			g.mainMenu()
		}
	}
}

func (g *Game) start() {
	g.axis = 0
	g.anim.Reset()
	g.session.StartGame()
	g.runs++
}

// restart plays a new run on the next seed of the sequence.
func (g *Game) restart() {
	g.axis = 0
	g.anim.Reset()
	g.session.Reseed(g.runtime.Seed + g.runs)
	g.session.Restart()
	g.runs++
}

func (g *Game) mainMenu() {
	g.axis = 0
	g.anim.Reset()
	g.session.Reseed(g.runtime.Seed + g.runs)
	g.session.GoToMainMenu()
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	st := g.session.State()
	score := g.session.Score()
	if st == session.StateGameOver {
		score = g.session.FinalScore()
	}
	return core.GameState{
		Score:    score,
		InMenu:   st == session.StateMenu,
		GameOver: st == session.StateGameOver,
		Paused:   st == session.StatePaused,
	}
}

// Session exposes the underlying state machine.
func (g *Game) Session() *session.Controller {
	return g.session
}

// Register the game with the registry
func init() {
	registry.Register(GameID, func(env registry.Env) registry.Game {
		return New(env)
	})
}
