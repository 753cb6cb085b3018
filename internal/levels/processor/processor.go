package processor

//go:generate go run go.uber.org/mock/mockgen@latest -source=processor.go -destination=mocks_test.go -package=processor

import (
	"context"

	"hunt-server/internal/observability"
	policyProcessor "hunt-server/internal/policy/processor"
	"hunt-server/internal/store"

	"github.com/google/uuid"
)

// LevelStore defines the database operations required by LevelProcessor
type LevelStore interface {
	GetLevelProgress(ctx context.Context, userID uuid.UUID) ([]store.LevelProgress, error)
	UpsertUserLevelMax(ctx context.Context, userID uuid.UUID, difficulty store.Difficulty, level int) (store.UserLevel, error)
	GetUserLevels(ctx context.Context, userID uuid.UUID) ([]store.UserLevel, error)
}

// PolicyResolver returns the merged progression policy for a user
type PolicyResolver interface {
	ResolveForUser(ctx context.Context, userID uuid.UUID) (policyProcessor.EffectivePolicy, error)
}

type LevelProcessor struct {
	store    LevelStore
	policies PolicyResolver
	logger   *observability.Logger
}

func New(levelStore LevelStore, policies PolicyResolver, logger *observability.Logger) LevelProcessor {
	return LevelProcessor{
		store:    levelStore,
		policies: policies,
		logger:   logger,
	}
}

// LevelSummary is the outcome of evaluating one difficulty
type LevelSummary struct {
	LevelsCleared int `json:"levels_cleared"`
	// Reached is what the current progress and policy grant.
	Reached int `json:"reached"`
	// Highest is the stored level, which never decreases.
	Highest int `json:"highest_level_reached"`
}

// EvaluateOnTaskCompletion recomputes the level a user has reached in every difficulty
// they have activity or a policy floor in, and raises the stored level when it grew.
// Running it again without new progress changes nothing.
func (p *LevelProcessor) EvaluateOnTaskCompletion(ctx context.Context, userID uuid.UUID) (map[store.Difficulty]LevelSummary, error) {
	ctx = observability.WithFields(ctx, observability.Field{Key: "user_id", Value: userID.String()})

	policy, err := p.policies.ResolveForUser(ctx, userID)
	if err != nil {
		p.logger.Error(ctx, "failed to resolve policy", err)
		return nil, err
	}

	progress, err := p.store.GetLevelProgress(ctx, userID)
	if err != nil {
		p.logger.Error(ctx, "failed to load level progress", err)
		return nil, err
	}

	byDifficulty := make(map[store.Difficulty]map[int]store.LevelProgress)
	for _, row := range progress {
		if byDifficulty[row.Difficulty] == nil {
			byDifficulty[row.Difficulty] = make(map[int]store.LevelProgress)
		}
		byDifficulty[row.Difficulty][row.LevelNumber] = row
	}

	summary := make(map[store.Difficulty]LevelSummary)
	for _, difficulty := range store.Difficulties {
		levels := byDifficulty[difficulty]
		floor := policy.Floor(difficulty)
		if len(levels) == 0 && floor == 0 {
			continue
		}

		cleared := ConsecutiveCleared(levels, policy, difficulty)
		reached := ReachedLevel(cleared, policy.LevelCap(difficulty), floor)

		stored, err := p.store.UpsertUserLevelMax(ctx, userID, difficulty, reached)
		if err != nil {
			p.logger.Error(observability.WithFields(ctx, observability.Field{Key: "difficulty", Value: string(difficulty)}), "failed to store user level", err)
			return nil, err
		}

		summary[difficulty] = LevelSummary{
			LevelsCleared: cleared,
			Reached:       reached,
			Highest:       stored.HighestLevelReached,
		}
	}

	p.logger.Debug(ctx, "levels evaluated")
	return summary, nil
}

// GetUserLevels returns the stored levels for a user
func (p *LevelProcessor) GetUserLevels(ctx context.Context, userID uuid.UUID) ([]store.UserLevel, error) {
	levels, err := p.store.GetUserLevels(ctx, userID)
	if err != nil {
		p.logger.Error(observability.WithFields(ctx, observability.Field{Key: "user_id", Value: userID.String()}), "failed to get user levels", err)
		return nil, err
	}
	if levels == nil {
		levels = []store.UserLevel{}
	}
	return levels, nil
}

// LevelCleared reports whether a level's progress satisfies the policy.
func LevelCleared(row store.LevelProgress, policy policyProcessor.EffectivePolicy) bool {
	if row.TasksDone < policy.TasksPerLevel(row.Difficulty) {
		return false
	}
	if row.PlansCompleted < policy.PlansPerLevel(row.Difficulty) {
		return false
	}
	if policy.RequireAllCrucial() && row.CrucialDone < row.CrucialTotal {
		return false
	}
	return true
}

// ConsecutiveCleared counts cleared levels starting at level 1 and stopping at the first gap.
func ConsecutiveCleared(levels map[int]store.LevelProgress, policy policyProcessor.EffectivePolicy, difficulty store.Difficulty) int {
	cleared := 0
	for n := 1; ; n++ {
		row, ok := levels[n]
		if !ok {
			return cleared
		}
		row.Difficulty = difficulty
		if !LevelCleared(row, policy) {
			return cleared
		}
		cleared++
	}
}

// ReachedLevel is the level after the cleared run, capped, then raised to the floor.
func ReachedLevel(cleared, levelCap, floor int) int {
	return max(floor, min(levelCap, cleared+1))
}
