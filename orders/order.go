// Package orders holds the order domain model: the plan catalog, the
// in-memory order ledger, the synthetic payment link builder and the
// optional Postgres archive for completed orders.
package orders

import "time"

// Status is the lifecycle stage of an order. Transitions are forward only:
// created -> awaiting_payment -> completed.
type Status string

const (
	// StatusCreated marks a freshly created order without a plan yet.
	StatusCreated Status = "created"
	// StatusAwaitingPayment marks an order with accepted credentials and an issued payment link.
	StatusAwaitingPayment Status = "awaiting_payment"
	// StatusCompleted marks a paid order. Terminal.
	StatusCompleted Status = "completed"
)

// Plan is a static subscription tier from the catalog.
type Plan struct {
	ID       string `yaml:"id"`
	Name     string `yaml:"name"`
	Price    int    `yaml:"price"`
	Duration string `yaml:"duration"`
}

// Order is a single user's purchase in progress. Each user holds at most
// one order; starting a new one overwrites the previous.
type Order struct {
	ID          string
	UserID      int64
	FirstName   string
	Username    string
	Status      Status
	Plan        *Plan
	Credentials string
	PaymentURL  string
	CreatedAt   time.Time
	CompletedAt *time.Time
}

// clone returns a deep copy safe to hand out across the ledger lock.
func (o *Order) clone() Order {
	cp := *o
	if o.Plan != nil {
		plan := *o.Plan
		cp.Plan = &plan
	}
	if o.CompletedAt != nil {
		ts := *o.CompletedAt
		cp.CompletedAt = &ts
	}
	return cp
}
