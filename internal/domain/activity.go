package domain

import "time"

// ActivityEntry is one immutable record in the append-only activity trail.
// Entries reference entities by id only and are never updated or deleted.
type ActivityEntry struct {
	ID         string
	UserID     string
	Action     ActivityAction
	EntityType EntityType
	EntityID   *string
	Details    string
	CreatedAt  time.Time
}

// ActivityAction tags the kind of state change an entry records.
type ActivityAction string

const (
	ActionLoanCreated         ActivityAction = "loan_created"
	ActionLoanPartiallyRepaid ActivityAction = "loan_partially_repaid"
	ActionLoanFullyRepaid     ActivityAction = "loan_fully_repaid"
	ActionExpenseCreated      ActivityAction = "expense_created"
	ActionOrderPriceIncreased ActivityAction = "order_price_increased"
)

// Valid reports whether a is a known activity action.
func (a ActivityAction) Valid() bool {
	switch a {
	case ActionLoanCreated, ActionLoanPartiallyRepaid, ActionLoanFullyRepaid,
		ActionExpenseCreated, ActionOrderPriceIncreased:
		return true
	}

	return false
}

// EntityType names the kind of entity an activity entry refers to.
type EntityType string

const (
	EntityLoan    EntityType = "loan"
	EntityExpense EntityType = "expense"
	EntityOrder   EntityType = "order"
)

// AppendPolicy controls the durability of an activity append.
type AppendPolicy int

const (
	// AppendBestEffort swallows append failures: the primary financial
	// mutation is authoritative, the trail entry is not.
	AppendBestEffort AppendPolicy = iota
	// AppendCritical surfaces append failures to the caller.
	AppendCritical
)

// MaxActivityQueryLimit caps how many entries a single query returns.
const MaxActivityQueryLimit = 1000

// ActivityFilter defines filters for querying the activity trail.
type ActivityFilter struct {
	Action     ActivityAction
	EntityType EntityType
	UserID     string
	From       *time.Time
	To         *time.Time
	Limit      int
}
