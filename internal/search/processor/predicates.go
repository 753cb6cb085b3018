package processor

import (
	"strings"
	"time"

	"hunt-server/internal/store"

	"github.com/google/uuid"
)

// Predicate reports whether a plan satisfies one search criterion
type Predicate func(plan store.Plan) bool

// SearchRequest holds the optional search criteria. A nil field places no restriction.
type SearchRequest struct {
	SubcategoryID  *uuid.UUID            `json:"subcategory_id,omitempty"`
	Difficulty     *store.Difficulty     `json:"difficulty,omitempty"`
	Level          *int                  `json:"level,omitempty"`
	From           *time.Time            `json:"from,omitempty"`
	To             *time.Time            `json:"to,omitempty"`
	TimeWindowType *store.TimeWindowType `json:"time_window_type,omitempty"`
	Currency       string                `json:"currency,omitempty"`
	MinPrice       *int64                `json:"min_price,omitempty"`
	MaxPrice       *int64                `json:"max_price,omitempty"`
	City           *string               `json:"city,omitempty"`
	Country        *string               `json:"country,omitempty"`
}

// GeoFence is an allow-list of cities or countries. An enabled fence with no
// values hides every plan.
type GeoFence struct {
	Enabled bool
	Scope   store.GeoFenceScope
	Allowed []string
}

// Build composes the predicates for a request. Age eligibility and the geofence
// always apply; every other predicate is present only when its criterion is.
func Build(req SearchRequest, fence GeoFence, userAge *int) []Predicate {
	predicates := []Predicate{
		AgeEligible(userAge),
		WithinGeoFence(fence),
	}

	if req.SubcategoryID != nil {
		predicates = append(predicates, SubcategoryIs(*req.SubcategoryID))
	}
	if req.Difficulty != nil || req.Level != nil {
		predicates = append(predicates, OffersDifficulty(req.Difficulty, req.Level))
	}
	if req.From != nil || req.To != nil {
		predicates = append(predicates, WithinDates(req.From, req.To))
	}
	if req.TimeWindowType != nil {
		predicates = append(predicates, TimeWindowIs(*req.TimeWindowType))
	}
	if req.MinPrice != nil || req.MaxPrice != nil {
		predicates = append(predicates, BasePriceBetween(req.Currency, req.MinPrice, req.MaxPrice))
	}
	if req.City != nil {
		predicates = append(predicates, CityIs(*req.City))
	}
	if req.Country != nil {
		predicates = append(predicates, CountryIs(*req.Country))
	}
	return predicates
}

// Matches reports whether plan satisfies every predicate
func Matches(plan store.Plan, predicates []Predicate) bool {
	for _, p := range predicates {
		if !p(plan) {
			return false
		}
	}
	return true
}

// Filter keeps the plans that satisfy every predicate, preserving order
func Filter(plans []store.Plan, predicates []Predicate) []store.Plan {
	out := make([]store.Plan, 0, len(plans))
	for _, plan := range plans {
		if Matches(plan, predicates) {
			out = append(out, plan)
		}
	}
	return out
}

func SubcategoryIs(id uuid.UUID) Predicate {
	return func(plan store.Plan) bool {
		return plan.SubcategoryID == id
	}
}

// OffersDifficulty matches plans with at least one difficulty entry of the
// given tier whose level is at or above level. Either argument may be nil.
func OffersDifficulty(difficulty *store.Difficulty, level *int) Predicate {
	return func(plan store.Plan) bool {
		for _, d := range plan.Difficulties {
			if difficulty != nil && d.Difficulty != *difficulty {
				continue
			}
			if level != nil && d.LevelNumber < *level {
				continue
			}
			return true
		}
		return false
	}
}

// WithinDates matches plans that start no earlier than from and end no later than to
func WithinDates(from, to *time.Time) Predicate {
	return func(plan store.Plan) bool {
		if from != nil && plan.StartsAt.Before(*from) {
			return false
		}
		if to != nil && plan.EndsAt.After(*to) {
			return false
		}
		return true
	}
}

func TimeWindowIs(t store.TimeWindowType) Predicate {
	return func(plan store.Plan) bool {
		return plan.TimeWindowType == t
	}
}

// BasePriceBetween bounds the BASE price in currency. Plans without a BASE
// price in that currency are kept.
func BasePriceBetween(currency string, min, max *int64) Predicate {
	return func(plan store.Plan) bool {
		price, ok := plan.BasePrice(currency)
		if !ok {
			return true
		}
		if min != nil && price.AmountMinor < *min {
			return false
		}
		if max != nil && price.AmountMinor > *max {
			return false
		}
		return true
	}
}

func CityIs(city string) Predicate {
	return func(plan store.Plan) bool {
		return sameName(plan.City, city)
	}
}

func CountryIs(country string) Predicate {
	return func(plan store.Plan) bool {
		return sameName(plan.Country, country)
	}
}

// AgeEligible matches plans whose subcategory admits age. Plans without age
// bands admit everyone, as does an unknown age.
func AgeEligible(age *int) Predicate {
	return func(plan store.Plan) bool {
		if age == nil || len(plan.AgeBands) == 0 {
			return true
		}
		for _, band := range plan.AgeBands {
			if band.Contains(*age) {
				return true
			}
		}
		return false
	}
}

func WithinGeoFence(fence GeoFence) Predicate {
	return func(plan store.Plan) bool {
		if !fence.Enabled {
			return true
		}
		value := plan.Country
		if fence.Scope == store.GeoFenceScopeCity {
			value = plan.City
		}
		for _, allowed := range fence.Allowed {
			if sameName(value, allowed) {
				return true
			}
		}
		return false
	}
}

func sameName(a, b string) bool {
	return strings.EqualFold(strings.TrimSpace(a), strings.TrimSpace(b))
}
