package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/neon-runner/internal/game/neon"
	"github.com/vovakirdan/neon-runner/internal/platform/tui"
	"github.com/vovakirdan/neon-runner/internal/registry"
	"github.com/vovakirdan/neon-runner/internal/storage"
)

var (
	flagReset  bool
	flagBrowse bool
	flagLimit  int
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show high scores and how runs ended",
	Long: `Display the top high scores and a breakdown of death reasons.

Examples:
  neonrun scores
  neonrun scores --limit 25
  neonrun scores --browse   # Interactive score browser
  neonrun scores --reset    # Delete all scores and run history`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagReset, "reset", false, "Delete all stored scores and runs")
	scoresCmd.Flags().BoolVar(&flagBrowse, "browse", false, "Open the interactive score browser")
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of scores to show")
	scoresCmd.Flags().StringVar(&flagGame, "game", neon.GameID, "Game mode")
}

func runScores(cmd *cobra.Command, args []string) {
	if !registry.Exists(flagGame) {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", flagGame)
		fmt.Fprintln(os.Stderr, "Run 'neonrun list' to see available games.")
		os.Exit(1)
	}

	game, err := registry.Create(flagGame, registry.Env{})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}
	title := game.Title()

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagReset {
		if err := storage.NewKeeper(store, flagGame, nil).ResetData(); err != nil {
			fmt.Fprintf(os.Stderr, "Error resetting scores: %v\n", err)
			store.Close()
			os.Exit(1)
		}
		fmt.Printf("Cleared all scores and runs for %s.\n", title)
		return
	}

	if flagBrowse {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width, height = w, h
		}
		if _, err := tui.RunScoreboard(store, flagGame, title, width, height); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		return
	}

	scores, err := store.TopScores(flagGame, flagLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		return
	}

	fmt.Printf("High Scores - %s\n", title)
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Println("Play 'neonrun play' to set the first high score!")
		return
	}

	fmt.Printf("  %-4s  %-10s  %s\n", "Rank", "Score", "Date")
	fmt.Printf("  %-4s  %-10s  %s\n", "----", "-----", "----")

	for i, entry := range scores {
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-10d  %s\n", i+1, entry.Score, dateStr)
	}

	if stats, err := store.GetGameStats(flagGame); err == nil && stats != nil {
		fmt.Println()
		fmt.Printf("Best: %d  |  Games: %d  |  Average: %.0f\n", stats.HighScore, stats.GamesCount, stats.AvgScore)
	}

	reasons, err := store.DeathReasons(flagGame)
	if err != nil || len(reasons) == 0 {
		return
	}
	fmt.Println()
	fmt.Println("How runs ended:")
	for _, r := range reasons {
		fmt.Printf("  %-20s  %4d  (best %d)\n", r.Reason, r.Count, r.Best)
	}
}
