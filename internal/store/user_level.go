package store

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

// GREATEST keeps the stored level monotonic even when two evaluations race.
const sqlUpsertUserLevelMax = `
INSERT INTO user_levels (user_id, difficulty, highest_level_reached, updated_at)
VALUES ($1, $2, $3, NOW())
ON CONFLICT (user_id, difficulty) DO UPDATE
SET highest_level_reached = GREATEST(user_levels.highest_level_reached, EXCLUDED.highest_level_reached),
    updated_at = CASE
        WHEN EXCLUDED.highest_level_reached > user_levels.highest_level_reached THEN NOW()
        ELSE user_levels.updated_at
    END
RETURNING user_id, difficulty, highest_level_reached, updated_at
`

// UpsertUserLevelMax raises the user's level for a difficulty, never lowering it.
func (s *Store) UpsertUserLevelMax(ctx context.Context, userID uuid.UUID, difficulty Difficulty, level int) (UserLevel, error) {
	var userLevel UserLevel
	err := s.db.GetContext(ctx, &userLevel, sqlUpsertUserLevelMax, userID, difficulty, level)
	if err != nil {
		return UserLevel{}, fmt.Errorf("failed to upsert user level: %w", err)
	}
	return userLevel, nil
}

const sqlGetUserLevels = `
SELECT user_id, difficulty, highest_level_reached, updated_at
FROM user_levels
WHERE user_id = $1
ORDER BY difficulty
`

// GetUserLevels retrieves the persisted levels of a user
func (s *Store) GetUserLevels(ctx context.Context, userID uuid.UUID) ([]UserLevel, error) {
	var levels []UserLevel
	if err := s.db.SelectContext(ctx, &levels, sqlGetUserLevels, userID); err != nil {
		return nil, fmt.Errorf("failed to get user levels: %w", err)
	}
	return levels, nil
}
