package storage

import (
	"fmt"
	"time"

	"github.com/vovakirdan/neon-runner/internal/core"
)

// RunEntry is one finished run from the history.
type RunEntry struct {
	ID        int64
	GameID    string
	Run       core.RunResult
	CreatedAt time.Time
}

// ReasonCount is how many runs ended for one reason.
type ReasonCount struct {
	Reason string
	Count  int
	Best   int // Best score among those runs
}

// SaveRun records a finished run.
func (s *Store) SaveRun(gameID string, run core.RunResult) (int64, error) {
	res, err := s.db.Exec(
		`INSERT INTO runs
		 (run_id, game_id, score, reason, stage, distance, duration_secs)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		run.ID,
		gameID,
		run.Score,
		run.Reason,
		run.Stage,
		run.Distance,
		run.Duration,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save run: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// RecentRuns retrieves the most recent runs for the given game, newest first.
func (s *Store) RecentRuns(gameID string, limit int) ([]RunEntry, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT id, run_id, game_id, score, reason, stage, distance, duration_secs, created_at
		 FROM runs
		 WHERE game_id = ?
		 ORDER BY id DESC
		 LIMIT ?`,
		gameID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	var entries []RunEntry
	for rows.Next() {
		var e RunEntry
		var createdAt any
		if err := rows.Scan(
			&e.ID,
			&e.Run.ID,
			&e.GameID,
			&e.Run.Score,
			&e.Run.Reason,
			&e.Run.Stage,
			&e.Run.Distance,
			&e.Run.Duration,
			&createdAt,
		); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.CreatedAt = parseTime(createdAt)
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// DeathReasons groups the run history by defeat reason, most frequent first.
func (s *Store) DeathReasons(gameID string) ([]ReasonCount, error) {
	rows, err := s.db.Query(
		`SELECT reason, COUNT(*), MAX(score)
		 FROM runs
		 WHERE game_id = ?
		 GROUP BY reason
		 ORDER BY COUNT(*) DESC, reason ASC`,
		gameID,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query death reasons: %w", err)
	}
	defer rows.Close()

	var counts []ReasonCount
	for rows.Next() {
		var c ReasonCount
		if err := rows.Scan(&c.Reason, &c.Count, &c.Best); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		counts = append(counts, c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return counts, nil
}

// ClearRuns deletes the run history for the given game.
func (s *Store) ClearRuns(gameID string) error {
	_, err := s.db.Exec("DELETE FROM runs WHERE game_id = ?", gameID)
	if err != nil {
		return fmt.Errorf("storage: cannot clear runs: %w", err)
	}
	return nil
}
