package store

// EnrollmentMode decides how a PENDING enrollment moves forward
type EnrollmentMode string

const (
	EnrollmentModePayToEnroll      EnrollmentMode = "PAY_TO_ENROLL"
	EnrollmentModeApprovalRequired EnrollmentMode = "APPROVAL_REQUIRED"
)

// EnrollmentStatus is the lifecycle axis of an enrollment
type EnrollmentStatus string

const (
	EnrollmentStatusPending   EnrollmentStatus = "PENDING"
	EnrollmentStatusConfirmed EnrollmentStatus = "CONFIRMED"
	EnrollmentStatusRejected  EnrollmentStatus = "REJECTED"
	EnrollmentStatusCancelled EnrollmentStatus = "CANCELLED"
)

// PaymentStatus is the payment axis of an enrollment
type PaymentStatus string

const (
	PaymentStatusNone     PaymentStatus = "NONE"
	PaymentStatusAwaiting PaymentStatus = "AWAITING"
	PaymentStatusPaid     PaymentStatus = "PAID"
	PaymentStatusRefunded PaymentStatus = "REFUNDED"
)

type EnrollmentType string

const (
	EnrollmentTypeIndividual EnrollmentType = "INDIVIDUAL"
	EnrollmentTypeTeam       EnrollmentType = "TEAM"
)

type TaskStatus string

const (
	TaskStatusLocked  TaskStatus = "LOCKED"
	TaskStatusStarted TaskStatus = "STARTED"
	TaskStatusDone    TaskStatus = "DONE"
)

// Difficulty is a tier with its own level ladder
type Difficulty string

const (
	DifficultyBeginner     Difficulty = "BEGINNER"
	DifficultyIntermediate Difficulty = "INTERMEDIATE"
	DifficultyAdvanced     Difficulty = "ADVANCED"
)

// Difficulties lists every tier in ascending order
var Difficulties = []Difficulty{DifficultyBeginner, DifficultyIntermediate, DifficultyAdvanced}

// Valid reports whether d is a known tier
func (d Difficulty) Valid() bool {
	switch d {
	case DifficultyBeginner, DifficultyIntermediate, DifficultyAdvanced:
		return true
	}
	return false
}

type PolicyScope string

const (
	PolicyScopeGlobal PolicyScope = "GLOBAL"
	PolicyScopeCohort PolicyScope = "COHORT"
	PolicyScopeUser   PolicyScope = "USER"
)

type GeoFenceScope string

const (
	GeoFenceScopeCity    GeoFenceScope = "CITY"
	GeoFenceScopeCountry GeoFenceScope = "COUNTRY"
)

type TimeWindowType string

const (
	TimeWindowFixed     TimeWindowType = "FIXED"
	TimeWindowFlexible  TimeWindowType = "FLEXIBLE"
	TimeWindowRecurring TimeWindowType = "RECURRING"
)

type UserStatus string

const (
	UserStatusActive    UserStatus = "ACTIVE"
	UserStatusSuspended UserStatus = "SUSPENDED"
)

// PriceComponentBase is the component searched by price filters
const PriceComponentBase = "BASE"
