// Package pricing computes what an enrollment owes from a plan's price rows.
package pricing

import (
	"fmt"

	"hunt-server/internal/store"
)

// Total is an amount in minor units of Currency
type Total struct {
	AmountMinor int64
	Currency    string
}

// IsZero reports whether nothing is owed
func (t Total) IsZero() bool {
	return t.AmountMinor == 0
}

// Calculator sums plan price rows in the plan's primary currency
type Calculator struct{}

func New() Calculator {
	return Calculator{}
}

// PrimaryCurrency is the currency of the plan's BASE price, falling back to the
// first priced currency. Plans without prices have no primary currency.
func PrimaryCurrency(plan store.Plan) string {
	for _, p := range plan.Prices {
		if p.Component == store.PriceComponentBase {
			return p.Currency
		}
	}
	if len(plan.Prices) > 0 {
		return plan.Prices[0].Currency
	}
	return ""
}

// ComputeTotal sums the requested components (all when none are given) in the
// primary currency. TEAM enrollments pay once per seat.
func (Calculator) ComputeTotal(plan store.Plan, enrollment store.Enrollment, components ...string) (Total, error) {
	currency := PrimaryCurrency(plan)
	if currency == "" {
		return Total{}, nil
	}

	wanted := make(map[string]bool, len(components))
	for _, c := range components {
		wanted[c] = true
	}

	var sum int64
	for _, p := range plan.Prices {
		if p.Currency != currency {
			continue
		}
		if len(wanted) > 0 && !wanted[p.Component] {
			continue
		}
		sum += p.AmountMinor
	}

	seats := int64(1)
	if enrollment.Type == store.EnrollmentTypeTeam {
		if enrollment.TeamSize == nil || *enrollment.TeamSize < 1 {
			return Total{}, fmt.Errorf("team enrollment %s has no team size", enrollment.ID)
		}
		seats = int64(*enrollment.TeamSize)
	}

	return Total{AmountMinor: sum * seats, Currency: currency}, nil
}
