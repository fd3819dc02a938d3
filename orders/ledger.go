package orders

import (
	"fmt"
	"sync"
	"time"

	"github.com/SummitSummer/zzxc/core/logger"
	"log/slog"
)

// Ledger is the authoritative in-memory order store: one active order per
// user, ids allocated from a process-wide counter. Contents are volatile
// and lost on restart.
type Ledger struct {
	mu      sync.RWMutex
	orders  map[int64]*Order
	counter int
	clock   func() time.Time
}

// NewLedger returns an empty ledger. The first allocated id is ORDER_00001.
func NewLedger() *Ledger {
	return &Ledger{
		orders: make(map[int64]*Order),
		clock:  time.Now,
	}
}

// Create allocates the next order id for the user. A previous order for
// the same user is overwritten regardless of its status; ids are never
// reused even then.
func (l *Ledger) Create(userID int64, firstName, username string) string {
	l.mu.Lock()
	l.counter++
	id := fmt.Sprintf("ORDER_%05d", l.counter)
	l.orders[userID] = &Order{
		ID:        id,
		UserID:    userID,
		FirstName: firstName,
		Username:  username,
		Status:    StatusCreated,
		CreatedAt: l.clock(),
	}
	l.mu.Unlock()

	logger.Info(logger.Background(), "service.orders", "order.create",
		slog.String("order_id", id),
		slog.Int64("user_id", userID),
	)
	return id
}

// SetPlan stores the chosen plan on the user's order. Returns false with a
// warn log when the user has no order.
func (l *Ledger) SetPlan(userID int64, plan Plan) bool {
	l.mu.Lock()
	o, ok := l.orders[userID]
	if ok {
		p := plan
		o.Plan = &p
	}
	l.mu.Unlock()

	if !ok {
		logger.Warn(logger.Background(), "service.orders", "order.update.miss",
			slog.Int64("user_id", userID),
			slog.String("fields", "plan"),
		)
		return false
	}
	logger.Info(logger.Background(), "service.orders", "order.update",
		slog.Int64("user_id", userID),
		slog.String("plan_id", plan.ID),
		slog.Int("price", plan.Price),
	)
	return true
}

// SetCredentials stores accepted credentials and the issued payment URL,
// moving the order to awaiting_payment. Returns false with a warn log when
// the user has no order.
func (l *Ledger) SetCredentials(userID int64, credentials, paymentURL string) bool {
	l.mu.Lock()
	o, ok := l.orders[userID]
	var id string
	if ok {
		o.Credentials = credentials
		o.PaymentURL = paymentURL
		o.Status = StatusAwaitingPayment
		id = o.ID
	}
	l.mu.Unlock()

	if !ok {
		logger.Warn(logger.Background(), "service.orders", "order.update.miss",
			slog.Int64("user_id", userID),
			slog.String("fields", "credentials,payment_url,status"),
		)
		return false
	}
	logger.Info(logger.Background(), "service.orders", "order.update",
		slog.String("order_id", id),
		slog.Int64("user_id", userID),
		slog.String("order_status", string(StatusAwaitingPayment)),
	)
	return true
}

// Get returns a copy of the user's order. A miss is not an error.
func (l *Ledger) Get(userID int64) (Order, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	o, ok := l.orders[userID]
	if !ok {
		return Order{}, false
	}
	return o.clone(), true
}

// Complete marks the user's order completed and stamps CompletedAt.
// The returned bool reports whether the transition happened: it is false
// both on a miss and when the order was already completed, so the caller
// can fire the operator notification exactly once.
func (l *Ledger) Complete(userID int64) (Order, bool) {
	l.mu.Lock()
	o, ok := l.orders[userID]
	if !ok {
		l.mu.Unlock()
		logger.Warn(logger.Background(), "service.orders", "order.complete.miss",
			slog.Int64("user_id", userID),
		)
		return Order{}, false
	}
	if o.Status == StatusCompleted {
		cp := o.clone()
		l.mu.Unlock()
		return cp, false
	}
	o.Status = StatusCompleted
	ts := l.clock()
	o.CompletedAt = &ts
	cp := o.clone()
	l.mu.Unlock()

	logger.Info(logger.Background(), "service.orders", "order.complete",
		slog.String("order_id", cp.ID),
		slog.Int64("user_id", userID),
	)
	return cp, true
}

// List returns a deep snapshot of all orders, safe to iterate without
// holding the ledger lock.
func (l *Ledger) List() map[int64]Order {
	l.mu.RLock()
	defer l.mu.RUnlock()
	out := make(map[int64]Order, len(l.orders))
	for uid, o := range l.orders {
		out[uid] = o.clone()
	}
	return out
}

// Len returns the number of stored orders (one per user).
func (l *Ledger) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.orders)
}
