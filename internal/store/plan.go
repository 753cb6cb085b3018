package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

const planColumns = `id, code, subcategory_id, title, enrollment_mode, time_window_type, starts_at, ends_at,
	capacity, reserved_slots, city, country, latitude, longitude, rules, published, created_at`

const sqlGetPlanByID = `
SELECT ` + planColumns + `
FROM plans
WHERE id = $1
`

// GetPlanByID retrieves a plan with its difficulties, tasks, prices and age bands
func (s *Store) GetPlanByID(ctx context.Context, planID uuid.UUID) (Plan, error) {
	var plan Plan
	err := s.db.GetContext(ctx, &plan, sqlGetPlanByID, planID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Plan{}, ErrNotFound
		}
		return Plan{}, fmt.Errorf("failed to get plan: %w", err)
	}

	plans := []Plan{plan}
	if err := s.loadPlanDetails(ctx, plans); err != nil {
		return Plan{}, err
	}
	return plans[0], nil
}

const sqlListPublishedPlans = `
SELECT ` + planColumns + `
FROM plans
WHERE published = TRUE
ORDER BY starts_at ASC, id ASC
`

// ListPublishedPlans retrieves every published plan with details loaded
func (s *Store) ListPublishedPlans(ctx context.Context) ([]Plan, error) {
	var plans []Plan
	if err := s.db.SelectContext(ctx, &plans, sqlListPublishedPlans); err != nil {
		return nil, fmt.Errorf("failed to list published plans: %w", err)
	}
	if err := s.loadPlanDetails(ctx, plans); err != nil {
		return nil, err
	}
	return plans, nil
}

const (
	sqlPlanDifficulties = `
SELECT plan_id, difficulty, level_number
FROM plan_difficulties
WHERE plan_id = ANY($1::uuid[])
ORDER BY difficulty, level_number
`
	sqlPlanTasks = `
SELECT id, plan_id, title, difficulty, level_number, is_crucial, position
FROM plan_tasks
WHERE plan_id = ANY($1::uuid[])
ORDER BY position ASC
`
	sqlPlanPrices = `
SELECT plan_id, currency, component, amount_minor
FROM plan_prices
WHERE plan_id = ANY($1::uuid[])
ORDER BY currency, component
`
	sqlSubcategoryAgeBands = `
SELECT subcategory_id, min_age, max_age
FROM subcategory_age_bands
WHERE subcategory_id = ANY($1::uuid[])
ORDER BY min_age
`
)

func (s *Store) loadPlanDetails(ctx context.Context, plans []Plan) error {
	if len(plans) == 0 {
		return nil
	}

	planIDs := make([]string, len(plans))
	subcategorySet := make(map[uuid.UUID]struct{})
	for i, p := range plans {
		planIDs[i] = p.ID.String()
		subcategorySet[p.SubcategoryID] = struct{}{}
	}
	subcategoryIDs := make([]string, 0, len(subcategorySet))
	for id := range subcategorySet {
		subcategoryIDs = append(subcategoryIDs, id.String())
	}

	var difficulties []PlanDifficulty
	if err := s.db.SelectContext(ctx, &difficulties, sqlPlanDifficulties, pq.Array(planIDs)); err != nil {
		return fmt.Errorf("failed to load plan difficulties: %w", err)
	}
	var tasks []PlanTask
	if err := s.db.SelectContext(ctx, &tasks, sqlPlanTasks, pq.Array(planIDs)); err != nil {
		return fmt.Errorf("failed to load plan tasks: %w", err)
	}
	var prices []PlanPrice
	if err := s.db.SelectContext(ctx, &prices, sqlPlanPrices, pq.Array(planIDs)); err != nil {
		return fmt.Errorf("failed to load plan prices: %w", err)
	}
	var bands []AgeBand
	if err := s.db.SelectContext(ctx, &bands, sqlSubcategoryAgeBands, pq.Array(subcategoryIDs)); err != nil {
		return fmt.Errorf("failed to load age bands: %w", err)
	}

	index := make(map[uuid.UUID]int, len(plans))
	for i, p := range plans {
		index[p.ID] = i
	}
	for _, d := range difficulties {
		plans[index[d.PlanID]].Difficulties = append(plans[index[d.PlanID]].Difficulties, d)
	}
	for _, t := range tasks {
		plans[index[t.PlanID]].Tasks = append(plans[index[t.PlanID]].Tasks, t)
	}
	for _, p := range prices {
		plans[index[p.PlanID]].Prices = append(plans[index[p.PlanID]].Prices, p)
	}
	bandsBySubcategory := make(map[uuid.UUID][]AgeBand)
	for _, b := range bands {
		bandsBySubcategory[b.SubcategoryID] = append(bandsBySubcategory[b.SubcategoryID], b)
	}
	for i := range plans {
		plans[i].AgeBands = bandsBySubcategory[plans[i].SubcategoryID]
	}
	return nil
}

const sqlGetPlanTask = `
SELECT id, plan_id, title, difficulty, level_number, is_crucial, position
FROM plan_tasks
WHERE id = $1 AND plan_id = $2
`

// GetPlanTask retrieves a task that belongs to the given plan
func (s *Store) GetPlanTask(ctx context.Context, planID, taskID uuid.UUID) (PlanTask, error) {
	var task PlanTask
	err := s.db.GetContext(ctx, &task, sqlGetPlanTask, taskID, planID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return PlanTask{}, ErrNotFound
		}
		return PlanTask{}, fmt.Errorf("failed to get plan task: %w", err)
	}
	return task, nil
}

const (
	sqlDictionaryCities        = `SELECT DISTINCT city FROM plans WHERE published AND city <> '' ORDER BY city`
	sqlDictionaryCountries     = `SELECT DISTINCT country FROM plans WHERE published AND country <> '' ORDER BY country`
	sqlDictionarySubcategories = `SELECT DISTINCT subcategory_id FROM plans WHERE published ORDER BY subcategory_id`
	sqlDictionaryDifficulties  = `
SELECT DISTINCT d.difficulty
FROM plan_difficulties d
JOIN plans p ON p.id = d.plan_id
WHERE p.published
ORDER BY d.difficulty
`
	sqlDictionaryCurrencies = `
SELECT DISTINCT pr.currency
FROM plan_prices pr
JOIN plans p ON p.id = pr.plan_id
WHERE p.published
ORDER BY pr.currency
`
)

// GetFilterDictionary retrieves the distinct filterable values across published plans
func (s *Store) GetFilterDictionary(ctx context.Context) (FilterDictionary, error) {
	var dict FilterDictionary
	if err := s.db.SelectContext(ctx, &dict.Cities, sqlDictionaryCities); err != nil {
		return FilterDictionary{}, fmt.Errorf("failed to load cities: %w", err)
	}
	if err := s.db.SelectContext(ctx, &dict.Countries, sqlDictionaryCountries); err != nil {
		return FilterDictionary{}, fmt.Errorf("failed to load countries: %w", err)
	}
	if err := s.db.SelectContext(ctx, &dict.SubcategoryIDs, sqlDictionarySubcategories); err != nil {
		return FilterDictionary{}, fmt.Errorf("failed to load subcategories: %w", err)
	}
	if err := s.db.SelectContext(ctx, &dict.Difficulties, sqlDictionaryDifficulties); err != nil {
		return FilterDictionary{}, fmt.Errorf("failed to load difficulties: %w", err)
	}
	if err := s.db.SelectContext(ctx, &dict.Currencies, sqlDictionaryCurrencies); err != nil {
		return FilterDictionary{}, fmt.Errorf("failed to load currencies: %w", err)
	}
	return dict, nil
}
