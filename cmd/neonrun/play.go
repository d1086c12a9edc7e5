package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/neon-runner/internal/audio"
	"github.com/vovakirdan/neon-runner/internal/config"
	"github.com/vovakirdan/neon-runner/internal/core"
	"github.com/vovakirdan/neon-runner/internal/game/neon"
	"github.com/vovakirdan/neon-runner/internal/platform/tui"
	"github.com/vovakirdan/neon-runner/internal/registry"
	"github.com/vovakirdan/neon-runner/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
	flagMute       bool
	flagGame       string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play the game",
	Long: `Start a run in the terminal.

Controls:
  A/D, Left/Right  - Run left/right (direction stays until changed)
  S/Down           - Stop running
  Space/W/Up       - Jump (grows you, weaker jumps when big)
  X/L, Shift+Arrow - Dash (shrinks you)
  P/Esc            - Pause
  Enter            - Start / select in menus
  R                - Restart
  M/B              - Back to title
  Ctrl+S           - Save a screenshot
  Q/Ctrl+C         - Quit

Difficulty options:
  easy   - Slower camera, gentler ramp, shorter gaps
  normal - Config values as-is
  hard   - Faster camera, steeper ramp, longer gaps
  fixed  - Camera never speeds up

Examples:
  neonrun play
  neonrun play --difficulty hard
  neonrun play --seed 42 --mute
  neonrun play --config ./my-neon.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	playCmd.Flags().BoolVar(&flagMute, "mute", false, "Disable music and sound effects")
	playCmd.Flags().StringVar(&flagGame, "game", neon.GameID, "Game mode to play")
}

func runPlay(cmd *cobra.Command, args []string) {
	if !registry.Exists(flagGame) {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", flagGame)
		fmt.Fprintln(os.Stderr, "Run 'neonrun list' to see available games.")
		os.Exit(1)
	}

	// play returns instead of exiting so its deferred closers run
	if err := play(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func play() error {
	logger, closeLog, err := newLogger(io.Discard)
	if err != nil {
		return err
	}
	defer closeLog()

	// Reject bad config before taking over the terminal
	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return err
	}
	cfg, err := config.LoadNeon(flagConfig)
	if err == nil {
		config.ApplyDifficulty(&cfg, preset)
		err = cfg.Validate()
	}
	if err != nil {
		return err
	}
	neon.SetConfigPath(flagConfig)
	neon.SetDifficultyPreset(string(preset))

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	runtime := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	sound, closeSound := openAudio(cfg.Audio, logger)
	defer closeSound()

	game, err := registry.Create(flagGame, registry.Env{
		Store:  store,
		Audio:  sound,
		Logger: logger,
	})
	if err != nil {
		return fmt.Errorf("creating game: %w", err)
	}

	if err := tui.Run(game, runtime); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}

// openAudio starts the speaker unless muted. Failure is not fatal: the game
// runs silently.
func openAudio(cfg config.AudioConfig, logger *log.Logger) (core.Audio, func()) {
	if flagMute || !cfg.Enabled {
		return audio.Nop{}, func() {}
	}

	player := audio.New(cfg, logger)
	if err := player.Init(); err != nil {
		logger.Warn("audio unavailable, playing silently", "err", err)
		return audio.Nop{}, func() {}
	}
	return player, player.Close
}
