package storage

import (
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/neon-runner/internal/core"
)

// ErrNoStore is returned when a keeper has no database behind it.
var ErrNoStore = errors.New("storage: no database configured")

// Keeper is the high-score collaborator of one game mode.
// A keeper without a store is valid: it never reports a record and
// always answers 0.
type Keeper struct {
	store  *Store
	gameID string
	logger *log.Logger
}

// NewKeeper binds a keeper to a store and game mode. Both store and logger may be nil.
func NewKeeper(store *Store, gameID string, logger *log.Logger) *Keeper {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Keeper{store: store, gameID: gameID, logger: logger}
}

// SaveHighScore stores the score and reports whether it beats the previous best.
func (k *Keeper) SaveHighScore(score int) bool {
	if k.store == nil {
		return false
	}

	best, err := k.store.HighScore(k.gameID)
	if err != nil {
		k.logger.Warn("could not read high score", "game", k.gameID, "error", err)
		return false
	}

	if _, err := k.store.SaveScore(k.gameID, score); err != nil {
		k.logger.Warn("could not save score", "game", k.gameID, "error", err)
		return false
	}

	return score > best
}

// GetHighScore returns the best stored score, or 0.
func (k *Keeper) GetHighScore() int {
	if k.store == nil {
		return 0
	}
	best, err := k.store.HighScore(k.gameID)
	if err != nil {
		k.logger.Warn("could not read high score", "game", k.gameID, "error", err)
		return 0
	}
	return best
}

// RecordRun appends a run to the history.
func (k *Keeper) RecordRun(run core.RunResult) error {
	if k.store == nil {
		return nil
	}
	_, err := k.store.SaveRun(k.gameID, run)
	return err
}

// ResetData wipes the scores and run history of this mode.
func (k *Keeper) ResetData() error {
	if k.store == nil {
		return ErrNoStore
	}
	if err := k.store.ClearScores(k.gameID); err != nil {
		return err
	}
	if err := k.store.ClearRuns(k.gameID); err != nil {
		return fmt.Errorf("storage: scores cleared but runs kept: %w", err)
	}
	return nil
}
