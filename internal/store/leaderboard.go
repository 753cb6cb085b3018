package store

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
)

// Serializes snapshot writers per difficulty until the transaction ends
const sqlLockLeaderboardSnapshot = `SELECT pg_advisory_xact_lock(hashtext('leaderboard:' || $1::text))`

const sqlDeleteLeaderboardSnapshot = `DELETE FROM leaderboard_entries WHERE difficulty = $1`

const sqlInsertLeaderboardEntry = `
INSERT INTO leaderboard_entries (difficulty, rank, user_id, score, tasks_completed, plans_completed, last_completed_at, generated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
`

// ReplaceLeaderboardSnapshot swaps the stored standings of a difficulty in one transaction
func (s *Store) ReplaceLeaderboardSnapshot(ctx context.Context, difficulty Difficulty, entries []LeaderboardEntry) error {
	return s.withTx(ctx, func(tx *sqlx.Tx) error {
		if _, err := tx.ExecContext(ctx, sqlLockLeaderboardSnapshot, string(difficulty)); err != nil {
			return fmt.Errorf("failed to lock leaderboard: %w", err)
		}
		if _, err := tx.ExecContext(ctx, sqlDeleteLeaderboardSnapshot, difficulty); err != nil {
			return fmt.Errorf("failed to clear leaderboard: %w", err)
		}

		stmt, err := tx.PrepareContext(ctx, sqlInsertLeaderboardEntry)
		if err != nil {
			return fmt.Errorf("failed to prepare statement: %w", err)
		}
		defer stmt.Close()

		for _, e := range entries {
			_, err := stmt.ExecContext(ctx,
				difficulty,
				e.Rank,
				e.UserID,
				e.Score,
				e.TasksCompleted,
				e.PlansCompleted,
				e.LastCompletedAt,
				e.GeneratedAt,
			)
			if err != nil {
				return fmt.Errorf("failed to insert leaderboard entry: %w", err)
			}
		}
		return nil
	})
}

const sqlGetLeaderboardWindow = `
SELECT difficulty, rank, user_id, score, tasks_completed, plans_completed, last_completed_at, generated_at
FROM leaderboard_entries
WHERE difficulty = $1 AND rank BETWEEN $2 AND $3
ORDER BY rank ASC
`

// GetLeaderboardWindow retrieves the entries ranked fromRank..toRank inclusive (1-based)
func (s *Store) GetLeaderboardWindow(ctx context.Context, difficulty Difficulty, fromRank, toRank int) ([]LeaderboardEntry, error) {
	var entries []LeaderboardEntry
	if err := s.db.SelectContext(ctx, &entries, sqlGetLeaderboardWindow, difficulty, fromRank, toRank); err != nil {
		return nil, fmt.Errorf("failed to get leaderboard window: %w", err)
	}
	return entries, nil
}

const sqlCountLeaderboardEntries = `SELECT COUNT(*) FROM leaderboard_entries WHERE difficulty = $1`

// CountLeaderboardEntries returns the number of ranked users for a difficulty
func (s *Store) CountLeaderboardEntries(ctx context.Context, difficulty Difficulty) (int, error) {
	var count int
	if err := s.db.GetContext(ctx, &count, sqlCountLeaderboardEntries, difficulty); err != nil {
		return 0, fmt.Errorf("failed to count leaderboard entries: %w", err)
	}
	return count, nil
}
