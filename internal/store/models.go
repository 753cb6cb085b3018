package store

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
)

// JSONB is a custom type for JSONB fields
type JSONB map[string]interface{}

// Value implements the driver.Valuer interface for JSONB
func (j JSONB) Value() (driver.Value, error) {
	if j == nil {
		return nil, nil
	}
	return json.Marshal(j)
}

// Scan implements the sql.Scanner interface for JSONB
func (j *JSONB) Scan(value interface{}) error {
	if value == nil {
		*j = nil
		return nil
	}

	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return errors.New("incompatible type for JSONB")
	}

	if len(bytes) == 0 || string(bytes) == "null" {
		*j = make(JSONB)
		return nil
	}

	result := make(JSONB)
	if err := json.Unmarshal(bytes, &result); err != nil {
		return err
	}
	*j = result
	return nil
}

// Plan is a published treasure-hunt offering
type Plan struct {
	ID             uuid.UUID      `db:"id" json:"id"`
	Code           string         `db:"code" json:"code"`
	SubcategoryID  uuid.UUID      `db:"subcategory_id" json:"subcategory_id"`
	Title          string         `db:"title" json:"title"`
	EnrollmentMode EnrollmentMode `db:"enrollment_mode" json:"enrollment_mode"`
	TimeWindowType TimeWindowType `db:"time_window_type" json:"time_window_type"`
	StartsAt       time.Time      `db:"starts_at" json:"starts_at"`
	EndsAt         time.Time      `db:"ends_at" json:"ends_at"`
	Capacity       *int           `db:"capacity" json:"capacity,omitempty"`
	ReservedSlots  int            `db:"reserved_slots" json:"reserved_slots"`
	City           string         `db:"city" json:"city"`
	Country        string         `db:"country" json:"country"`
	Latitude       *float64       `db:"latitude" json:"latitude,omitempty"`
	Longitude      *float64       `db:"longitude" json:"longitude,omitempty"`
	Rules          JSONB          `db:"rules" json:"rules,omitempty"`
	Published      bool           `db:"published" json:"published"`
	CreatedAt      time.Time      `db:"created_at" json:"created_at"`

	Difficulties []PlanDifficulty `db:"-" json:"difficulties"`
	Tasks        []PlanTask       `db:"-" json:"tasks"`
	Prices       []PlanPrice      `db:"-" json:"prices"`
	AgeBands     []AgeBand        `db:"-" json:"age_bands"`
}

// BasePrice returns the BASE price row in the given currency
func (p Plan) BasePrice(currency string) (PlanPrice, bool) {
	for _, price := range p.Prices {
		if price.Component == PriceComponentBase && price.Currency == currency {
			return price, true
		}
	}
	return PlanPrice{}, false
}

// PlanDifficulty is a (difficulty, level) tuple offered by a plan
type PlanDifficulty struct {
	PlanID      uuid.UUID  `db:"plan_id" json:"-"`
	Difficulty  Difficulty `db:"difficulty" json:"difficulty"`
	LevelNumber int        `db:"level_number" json:"level_number"`
}

type PlanTask struct {
	ID          uuid.UUID  `db:"id" json:"id"`
	PlanID      uuid.UUID  `db:"plan_id" json:"plan_id"`
	Title       string     `db:"title" json:"title"`
	Difficulty  Difficulty `db:"difficulty" json:"difficulty"`
	LevelNumber int        `db:"level_number" json:"level_number"`
	Crucial     bool       `db:"is_crucial" json:"crucial"`
	Position    int        `db:"position" json:"position"`
}

// PlanPrice is one price component in minor currency units
type PlanPrice struct {
	PlanID      uuid.UUID `db:"plan_id" json:"-"`
	Currency    string    `db:"currency" json:"currency"`
	Component   string    `db:"component" json:"component"`
	AmountMinor int64     `db:"amount_minor" json:"amount_minor"`
}

// AgeBand is an inclusive age range permitted by a subcategory
type AgeBand struct {
	SubcategoryID uuid.UUID `db:"subcategory_id" json:"-"`
	MinAge        int       `db:"min_age" json:"min_age"`
	MaxAge        int       `db:"max_age" json:"max_age"`
}

// Contains reports whether age falls inside the band
func (b AgeBand) Contains(age int) bool {
	return age >= b.MinAge && age <= b.MaxAge
}

type Enrollment struct {
	ID             uuid.UUID        `db:"id" json:"id"`
	PlanID         uuid.UUID        `db:"plan_id" json:"plan_id"`
	UserID         uuid.UUID        `db:"user_id" json:"user_id"`
	Mode           EnrollmentMode   `db:"mode" json:"mode"`
	Status         EnrollmentStatus `db:"status" json:"status"`
	PaymentStatus  PaymentStatus    `db:"payment_status" json:"payment_status"`
	Type           EnrollmentType   `db:"enrollment_type" json:"type"`
	TeamName       *string          `db:"team_name" json:"team_name,omitempty"`
	TeamSize       *int             `db:"team_size" json:"team_size,omitempty"`
	RegistrationID string           `db:"registration_id" json:"registration_id"`
	ApprovedBy     *uuid.UUID       `db:"approved_by" json:"approved_by,omitempty"`
	HoldsSlot      bool             `db:"holds_slot" json:"-"`
	EnrolledAt     time.Time        `db:"enrolled_at" json:"enrolled_at"`
	UpdatedAt      time.Time        `db:"updated_at" json:"updated_at"`
}

// CreateEnrollmentParams represents parameters for creating an enrollment
type CreateEnrollmentParams struct {
	PlanID   uuid.UUID
	UserID   uuid.UUID
	Mode     EnrollmentMode
	Type     EnrollmentType
	TeamName *string
	TeamSize *int
	// RegistrationID builds the registration id from the plan code and
	// the plan's next registration sequence number.
	RegistrationID func(planCode string, seq int64) string
}

// LockedEnrollment is the state handed to a mutation running under the row lock
type LockedEnrollment struct {
	Enrollment
	StartedTasks int
}

type TaskProgress struct {
	ID           uuid.UUID  `db:"id" json:"id"`
	EnrollmentID uuid.UUID  `db:"enrollment_id" json:"enrollment_id"`
	TaskID       uuid.UUID  `db:"task_id" json:"task_id"`
	Status       TaskStatus `db:"status" json:"status"`
	UpdatedAt    time.Time  `db:"updated_at" json:"updated_at"`
}

// LevelProgress aggregates a user's completions for one (difficulty, level)
type LevelProgress struct {
	Difficulty     Difficulty `db:"difficulty"`
	LevelNumber    int        `db:"level_number"`
	TasksDone      int        `db:"tasks_done"`
	CrucialDone    int        `db:"crucial_done"`
	CrucialTotal   int        `db:"crucial_total"`
	PlansCompleted int        `db:"plans_completed"`
}

type UserLevel struct {
	UserID              uuid.UUID  `db:"user_id" json:"user_id"`
	Difficulty          Difficulty `db:"difficulty" json:"difficulty"`
	HighestLevelReached int        `db:"highest_level_reached" json:"highest_level_reached"`
	UpdatedAt           time.Time  `db:"updated_at" json:"updated_at"`
}

type ProgressionPolicy struct {
	ID        uuid.UUID   `db:"id" json:"id"`
	Scope     PolicyScope `db:"scope" json:"scope"`
	ScopeRef  *string     `db:"scope_ref" json:"scope_ref,omitempty"`
	Document  JSONB       `db:"document" json:"document"`
	Active    bool        `db:"active" json:"active"`
	CreatedAt time.Time   `db:"created_at" json:"created_at"`
	UpdatedAt time.Time   `db:"updated_at" json:"updated_at"`
}

// UpsertPolicyParams represents parameters for writing a policy row
type UpsertPolicyParams struct {
	ID       *uuid.UUID
	Scope    PolicyScope
	ScopeRef *string
	Document JSONB
	Active   bool
}

type UserStatistics struct {
	UserID    uuid.UUID  `db:"user_id" json:"user_id"`
	Status    UserStatus `db:"status" json:"status"`
	CreatedAt time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt time.Time  `db:"updated_at" json:"updated_at"`
}

// CompletionTotals is a user's completion history within one difficulty
type CompletionTotals struct {
	UserID          uuid.UUID `db:"user_id"`
	TasksCompleted  int       `db:"tasks_completed"`
	PlansCompleted  int       `db:"plans_completed"`
	LastCompletedAt time.Time `db:"last_completed_at"`
}

// LeaderboardEntry is one ranked row of a leaderboard snapshot
type LeaderboardEntry struct {
	Difficulty      Difficulty `db:"difficulty" json:"difficulty"`
	Rank            int        `db:"rank" json:"rank"`
	UserID          uuid.UUID  `db:"user_id" json:"user_id"`
	Score           int64      `db:"score" json:"score"`
	TasksCompleted  int        `db:"tasks_completed" json:"tasks_completed"`
	PlansCompleted  int        `db:"plans_completed" json:"plans_completed"`
	LastCompletedAt time.Time  `db:"last_completed_at" json:"last_completed_at"`
	GeneratedAt     time.Time  `db:"generated_at" json:"generated_at"`
}

// OutboxEvent is a domain event that has not reached the bus yet
type OutboxEvent struct {
	ID          uuid.UUID  `db:"id"`
	EventType   string     `db:"event_type"`
	AggregateID string     `db:"aggregate_id"`
	Payload     []byte     `db:"payload"`
	Attempts    int        `db:"attempts"`
	LastError   *string    `db:"last_error"`
	CreatedAt   time.Time  `db:"created_at"`
	DeliveredAt *time.Time `db:"delivered_at"`
}

// CreateOutboxEventParams represents parameters for queuing an undelivered event
type CreateOutboxEventParams struct {
	ID          uuid.UUID
	EventType   string
	AggregateID string
	Payload     []byte
	LastError   string
}

// FilterDictionary lists the values a search client can filter on
type FilterDictionary struct {
	Cities         []string     `json:"cities"`
	Countries      []string     `json:"countries"`
	SubcategoryIDs []uuid.UUID  `json:"subcategory_ids"`
	Difficulties   []Difficulty `json:"difficulties"`
	Currencies     []string     `json:"currencies"`
}
