package processor

//go:generate go run go.uber.org/mock/mockgen@latest -source=processor.go -destination=mocks_test.go -package=processor

import (
	"context"
	"errors"
	"strings"

	"hunt-server/internal/cache"
	"hunt-server/internal/config"
	"hunt-server/internal/domainerr"
	"hunt-server/internal/observability"
	"hunt-server/internal/store"

	"github.com/google/uuid"
)

var (
	ErrInvalidDifficulty = domainerr.New("search", domainerr.ErrInvalidArgument, "unknown difficulty")
	ErrInvalidLevel      = domainerr.New("search", domainerr.ErrInvalidArgument, "level must be at least 1")
	ErrInvalidDateRange  = domainerr.New("search", domainerr.ErrInvalidArgument, "from must not be after to")
	ErrInvalidPrice      = domainerr.New("search", domainerr.ErrInvalidArgument, "price bounds must be non-negative and min must not exceed max")
	ErrCurrencyRequired  = domainerr.New("search", domainerr.ErrInvalidArgument, "a price filter needs a currency")
	ErrPlanNotFound      = domainerr.New("search", domainerr.ErrNotFound, "plan not found")
)

// Cache namespaces
const (
	namespaceSearch     = "plans:search"
	namespacePlan       = "plans:detail"
	namespaceDictionary = "plans:filters"
)

// SearchStore defines the database operations required by SearchProcessor
type SearchStore interface {
	ListPublishedPlans(ctx context.Context) ([]store.Plan, error)
	GetPlanByID(ctx context.Context, planID uuid.UUID) (store.Plan, error)
	GetFilterDictionary(ctx context.Context) (store.FilterDictionary, error)
}

type SearchProcessor struct {
	store  SearchStore
	cache  *cache.Cache
	fence  GeoFence
	logger *observability.Logger
}

// New creates a search processor. A nil cache disables caching.
func New(searchStore SearchStore, planCache *cache.Cache, fence GeoFence, logger *observability.Logger) SearchProcessor {
	return SearchProcessor{
		store:  searchStore,
		cache:  planCache,
		fence:  fence,
		logger: logger,
	}
}

// GeoFenceFromConfig builds the platform geofence
func GeoFenceFromConfig(cfg config.GeoFenceConfig) GeoFence {
	return GeoFence{
		Enabled: cfg.Enabled,
		Scope:   store.GeoFenceScope(cfg.Scope),
		Allowed: cfg.Values,
	}
}

// searchKey is what a cached search result depends on
type searchKey struct {
	Request SearchRequest `json:"request"`
	Age     *int          `json:"age,omitempty"`
}

// Search returns the published plans matching every criterion of req that the caller may see
func (p *SearchProcessor) Search(ctx context.Context, req SearchRequest, userAge *int) ([]store.Plan, error) {
	req, err := normalize(req)
	if err != nil {
		return nil, err
	}

	return cache.Fetch(ctx, p.cache, namespaceSearch, searchKey{Request: req, Age: userAge}, func(ctx context.Context) ([]store.Plan, error) {
		plans, err := p.store.ListPublishedPlans(ctx)
		if err != nil {
			p.logger.Error(ctx, "failed to list published plans", err)
			return nil, err
		}
		return Filter(plans, Build(req, p.fence, userAge)), nil
	})
}

// GetPlan returns one published plan if the caller may see it
func (p *SearchProcessor) GetPlan(ctx context.Context, planID uuid.UUID, userAge *int) (store.Plan, error) {
	ctx = observability.WithFields(ctx, observability.Field{Key: "plan_id", Value: planID.String()})

	plan, err := cache.Fetch(ctx, p.cache, namespacePlan, planID, func(ctx context.Context) (store.Plan, error) {
		plan, err := p.store.GetPlanByID(ctx, planID)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return store.Plan{}, ErrPlanNotFound
			}
			p.logger.Error(ctx, "failed to get plan", err)
			return store.Plan{}, err
		}
		return plan, nil
	})
	if err != nil {
		return store.Plan{}, err
	}

	visible := Build(SearchRequest{}, p.fence, userAge)
	if !plan.Published || !Matches(plan, visible) {
		return store.Plan{}, ErrPlanNotFound
	}
	return plan, nil
}

// FilterDictionary lists the values clients can filter on
func (p *SearchProcessor) FilterDictionary(ctx context.Context) (store.FilterDictionary, error) {
	return cache.Fetch(ctx, p.cache, namespaceDictionary, struct{}{}, func(ctx context.Context) (store.FilterDictionary, error) {
		dict, err := p.store.GetFilterDictionary(ctx)
		if err != nil {
			p.logger.Error(ctx, "failed to load filter dictionary", err)
			return store.FilterDictionary{}, err
		}
		return dict, nil
	})
}

// normalize validates req and canonicalizes it so equivalent requests share a cache entry
func normalize(req SearchRequest) (SearchRequest, error) {
	if req.Difficulty != nil && !req.Difficulty.Valid() {
		return SearchRequest{}, ErrInvalidDifficulty
	}
	if req.Level != nil && *req.Level < 1 {
		return SearchRequest{}, ErrInvalidLevel
	}
	if req.From != nil && req.To != nil && req.From.After(*req.To) {
		return SearchRequest{}, ErrInvalidDateRange
	}
	if req.From != nil {
		from := req.From.UTC()
		req.From = &from
	}
	if req.To != nil {
		to := req.To.UTC()
		req.To = &to
	}

	req.Currency = strings.ToUpper(strings.TrimSpace(req.Currency))
	if req.MinPrice != nil || req.MaxPrice != nil {
		if req.Currency == "" {
			return SearchRequest{}, ErrCurrencyRequired
		}
		if (req.MinPrice != nil && *req.MinPrice < 0) || (req.MaxPrice != nil && *req.MaxPrice < 0) {
			return SearchRequest{}, ErrInvalidPrice
		}
		if req.MinPrice != nil && req.MaxPrice != nil && *req.MinPrice > *req.MaxPrice {
			return SearchRequest{}, ErrInvalidPrice
		}
	} else {
		req.Currency = ""
	}

	req.City = normalizeName(req.City)
	req.Country = normalizeName(req.Country)
	return req, nil
}

func normalizeName(v *string) *string {
	if v == nil {
		return nil
	}
	s := strings.ToLower(strings.TrimSpace(*v))
	if s == "" {
		return nil
	}
	return &s
}
