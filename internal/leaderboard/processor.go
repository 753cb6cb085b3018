package leaderboard

//go:generate go run go.uber.org/mock/mockgen@latest -source=processor.go -destination=mocks_test.go -package=leaderboard

import (
	"context"
	"fmt"
	"sort"
	"time"

	"hunt-server/internal/domainerr"
	"hunt-server/internal/observability"
	"hunt-server/internal/store"

	"golang.org/x/sync/errgroup"
)

var (
	ErrInvalidDifficulty  = domainerr.New("leaderboard", domainerr.ErrInvalidArgument, "unknown difficulty")
	ErrInvalidRank        = domainerr.New("leaderboard", domainerr.ErrInvalidArgument, "rank must be at least 1")
	ErrInvalidContextSize = domainerr.New("leaderboard", domainerr.ErrInvalidArgument, "context size must be between 0 and 50")
	ErrInvalidLimit       = domainerr.New("leaderboard", domainerr.ErrInvalidArgument, "limit must be between 1 and 100")
	ErrRankNotFound       = domainerr.New("leaderboard", domainerr.ErrNotFound, "rank is beyond the end of the leaderboard")
)

const (
	MaxContextSize = 50
	MaxTopLimit    = 100

	// planCompletionPoints is what a fully completed plan adds on top of its tasks
	planCompletionPoints = 5
)

// LeaderboardStore defines the database operations required by Processor
type LeaderboardStore interface {
	GetCompletionTotals(ctx context.Context, difficulty store.Difficulty) ([]store.CompletionTotals, error)
	ReplaceLeaderboardSnapshot(ctx context.Context, difficulty store.Difficulty, entries []store.LeaderboardEntry) error
	GetLeaderboardWindow(ctx context.Context, difficulty store.Difficulty, fromRank, toRank int) ([]store.LeaderboardEntry, error)
	CountLeaderboardEntries(ctx context.Context, difficulty store.Difficulty) (int, error)
}

// RankIndex serves snapshot reads from a fast secondary copy
type RankIndex interface {
	Replace(ctx context.Context, difficulty store.Difficulty, entries []store.LeaderboardEntry) error
	Window(ctx context.Context, difficulty store.Difficulty, fromRank, toRank int) ([]store.LeaderboardEntry, error)
	Count(ctx context.Context, difficulty store.Difficulty) (int, error)
}

// Processor handles leaderboard business logic
type Processor struct {
	store  LeaderboardStore
	index  RankIndex
	logger *observability.Logger
	now    func() time.Time
}

// NewProcessor creates a new leaderboard processor. index may be nil, in which
// case reads go straight to the database.
func NewProcessor(leaderboardStore LeaderboardStore, index RankIndex, logger *observability.Logger) Processor {
	return Processor{
		store:  leaderboardStore,
		index:  index,
		logger: logger,
		now:    time.Now,
	}
}

// Window is a slice of the standings around a rank
type Window struct {
	Difficulty store.Difficulty         `json:"difficulty"`
	Rank       int                      `json:"rank"`
	Total      int                      `json:"total"`
	Entries    []store.LeaderboardEntry `json:"entries"`
}

// Weight is the score multiplier of a difficulty tier
func Weight(difficulty store.Difficulty) int64 {
	switch difficulty {
	case store.DifficultyBeginner:
		return 1
	case store.DifficultyIntermediate:
		return 2
	case store.DifficultyAdvanced:
		return 3
	}
	return 0
}

// Score is weight × (tasks completed + 5 × plans completed)
func Score(difficulty store.Difficulty, tasksCompleted, plansCompleted int) int64 {
	return Weight(difficulty) * (int64(tasksCompleted) + planCompletionPoints*int64(plansCompleted))
}

// Rank orders users by score descending, then earliest last completion, then user id.
// Ranks are dense positions starting at 1.
func Rank(difficulty store.Difficulty, totals []store.CompletionTotals, generatedAt time.Time) []store.LeaderboardEntry {
	entries := make([]store.LeaderboardEntry, len(totals))
	for i, t := range totals {
		entries[i] = store.LeaderboardEntry{
			Difficulty:      difficulty,
			UserID:          t.UserID,
			Score:           Score(difficulty, t.TasksCompleted, t.PlansCompleted),
			TasksCompleted:  t.TasksCompleted,
			PlansCompleted:  t.PlansCompleted,
			LastCompletedAt: t.LastCompletedAt,
			GeneratedAt:     generatedAt,
		}
	}

	sort.Slice(entries, func(i, j int) bool {
		a, b := entries[i], entries[j]
		if a.Score != b.Score {
			return a.Score > b.Score
		}
		if !a.LastCompletedAt.Equal(b.LastCompletedAt) {
			return a.LastCompletedAt.Before(b.LastCompletedAt)
		}
		return a.UserID.String() < b.UserID.String()
	})
	for i := range entries {
		entries[i].Rank = i + 1
	}
	return entries
}

// RegenerateOverall rebuilds the standings of one difficulty and returns how many users are ranked
func (p *Processor) RegenerateOverall(ctx context.Context, difficulty store.Difficulty) (int, error) {
	if !difficulty.Valid() {
		return 0, ErrInvalidDifficulty
	}
	ctx = observability.WithFields(ctx, observability.Field{Key: "difficulty", Value: string(difficulty)})

	totals, err := p.store.GetCompletionTotals(ctx, difficulty)
	if err != nil {
		p.logger.Error(ctx, "failed to get completion totals", err)
		return 0, fmt.Errorf("failed to get completion totals: %w", err)
	}

	entries := Rank(difficulty, totals, p.now().UTC())
	if err := p.store.ReplaceLeaderboardSnapshot(ctx, difficulty, entries); err != nil {
		p.logger.Error(ctx, "failed to store leaderboard snapshot", err)
		return 0, fmt.Errorf("failed to store leaderboard snapshot: %w", err)
	}

	if p.index != nil {
		if err := p.index.Replace(ctx, difficulty, entries); err != nil {
			p.logger.Error(ctx, "failed to sync leaderboard to redis", err)
		}
	}

	p.logger.Info(ctx, fmt.Sprintf("regenerated leaderboard with %d entries", len(entries)))
	return len(entries), nil
}

// RegenerateAll rebuilds every difficulty concurrently
func (p *Processor) RegenerateAll(ctx context.Context) error {
	g, ctx := errgroup.WithContext(ctx)
	for _, difficulty := range store.Difficulties {
		difficulty := difficulty
		g.Go(func() error {
			_, err := p.RegenerateOverall(ctx, difficulty)
			return err
		})
	}
	return g.Wait()
}

// GetUsersAroundRank returns the entries ranked rank-contextSize..rank+contextSize,
// clamped to the ends of the leaderboard.
func (p *Processor) GetUsersAroundRank(ctx context.Context, difficulty store.Difficulty, rank, contextSize int) (Window, error) {
	if !difficulty.Valid() {
		return Window{}, ErrInvalidDifficulty
	}
	if rank < 1 {
		return Window{}, ErrInvalidRank
	}
	if contextSize < 0 || contextSize > MaxContextSize {
		return Window{}, ErrInvalidContextSize
	}
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "difficulty", Value: string(difficulty)},
		observability.Field{Key: "rank", Value: rank},
	)

	total, err := p.count(ctx, difficulty)
	if err != nil {
		return Window{}, err
	}
	if rank > total {
		return Window{}, ErrRankNotFound
	}

	from, to := WindowBounds(rank, contextSize, total)
	entries, err := p.window(ctx, difficulty, from, to)
	if err != nil {
		return Window{}, err
	}
	return Window{Difficulty: difficulty, Rank: rank, Total: total, Entries: entries}, nil
}

// GetTopUsers returns the first limit entries
func (p *Processor) GetTopUsers(ctx context.Context, difficulty store.Difficulty, limit int) (Window, error) {
	if !difficulty.Valid() {
		return Window{}, ErrInvalidDifficulty
	}
	if limit < 1 || limit > MaxTopLimit {
		return Window{}, ErrInvalidLimit
	}
	ctx = observability.WithFields(ctx, observability.Field{Key: "difficulty", Value: string(difficulty)})

	total, err := p.count(ctx, difficulty)
	if err != nil {
		return Window{}, err
	}
	entries := []store.LeaderboardEntry{}
	if total > 0 {
		if entries, err = p.window(ctx, difficulty, 1, min(limit, total)); err != nil {
			return Window{}, err
		}
	}
	return Window{Difficulty: difficulty, Rank: 1, Total: total, Entries: entries}, nil
}

// WindowBounds clamps [rank-contextSize, rank+contextSize] to [1, total]
func WindowBounds(rank, contextSize, total int) (int, int) {
	from := rank - contextSize
	if from < 1 {
		from = 1
	}
	to := rank + contextSize
	if to > total {
		to = total
	}
	return from, to
}

// count prefers the index and falls back to the database when it is unavailable or empty
func (p *Processor) count(ctx context.Context, difficulty store.Difficulty) (int, error) {
	if p.index != nil {
		n, err := p.index.Count(ctx, difficulty)
		if err == nil && n > 0 {
			return n, nil
		}
		if err != nil {
			p.logger.Warn(ctx, "leaderboard index unavailable, reading from database")
		}
	}

	n, err := p.store.CountLeaderboardEntries(ctx, difficulty)
	if err != nil {
		p.logger.Error(ctx, "failed to count leaderboard entries", err)
		return 0, fmt.Errorf("failed to count leaderboard entries: %w", err)
	}
	return n, nil
}

func (p *Processor) window(ctx context.Context, difficulty store.Difficulty, from, to int) ([]store.LeaderboardEntry, error) {
	if p.index != nil {
		entries, err := p.index.Window(ctx, difficulty, from, to)
		if err == nil && len(entries) == to-from+1 {
			return entries, nil
		}
		if err != nil {
			p.logger.Warn(ctx, "leaderboard index unavailable, reading from database")
		}
	}

	entries, err := p.store.GetLeaderboardWindow(ctx, difficulty, from, to)
	if err != nil {
		p.logger.Error(ctx, "failed to get leaderboard window", err)
		return nil, fmt.Errorf("failed to get leaderboard window: %w", err)
	}
	if entries == nil {
		entries = []store.LeaderboardEntry{}
	}
	return entries, nil
}
