package orders

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLedgerCreateAllocatesSequentialIDs(t *testing.T) {
	l := NewLedger()

	first := l.Create(42, "Alice", "alice")
	second := l.Create(7, "Bob", "bob")

	assert.Equal(t, "ORDER_00001", first)
	assert.Equal(t, "ORDER_00002", second)

	o, ok := l.Get(42)
	assert.True(t, ok)
	assert.Equal(t, StatusCreated, o.Status)
	assert.Equal(t, "Alice", o.FirstName)
	assert.Equal(t, "alice", o.Username)
	assert.False(t, o.CreatedAt.IsZero())
}

func TestLedgerCreateOverwritesWithoutReusingIDs(t *testing.T) {
	l := NewLedger()

	l.Create(42, "Alice", "alice")
	l.Create(42, "Alice", "alice")
	third := l.Create(42, "Alice", "alice")

	assert.Equal(t, "ORDER_00003", third)
	assert.Equal(t, 1, l.Len())

	o, _ := l.Get(42)
	assert.Equal(t, "ORDER_00003", o.ID)
	assert.Equal(t, StatusCreated, o.Status)
	assert.Nil(t, o.Plan)
}

func TestLedgerUpdateMissingOrderIsNoop(t *testing.T) {
	l := NewLedger()

	assert.False(t, l.SetPlan(99, Plan{ID: "1_month", Name: "1 месяц", Price: 150}))
	assert.False(t, l.SetCredentials(99, "me@x.com:abcdef", "https://pay"))
	assert.Equal(t, 0, l.Len())
}

func TestLedgerCredentialsMoveOrderToAwaitingPayment(t *testing.T) {
	l := NewLedger()
	l.Create(42, "Alice", "alice")
	assert.True(t, l.SetPlan(42, Plan{ID: "3_months", Name: "3 месяца", Price: 370}))
	assert.True(t, l.SetCredentials(42, "me@x.com:abcdef", "https://pay/1"))

	o, ok := l.Get(42)
	assert.True(t, ok)
	assert.Equal(t, StatusAwaitingPayment, o.Status)
	assert.Equal(t, "me@x.com:abcdef", o.Credentials)
	assert.Equal(t, "https://pay/1", o.PaymentURL)
	assert.Equal(t, "3 месяца", o.Plan.Name)
}

func TestLedgerCompleteHappensExactlyOnce(t *testing.T) {
	l := NewLedger()
	l.Create(42, "Alice", "alice")
	l.SetPlan(42, Plan{ID: "3_months", Name: "3 месяца", Price: 370})
	l.SetCredentials(42, "me@x.com:abcdef", "https://pay/1")

	o, changed := l.Complete(42)
	assert.True(t, changed)
	assert.Equal(t, StatusCompleted, o.Status)
	assert.NotNil(t, o.CompletedAt)

	again, changed := l.Complete(42)
	assert.False(t, changed)
	assert.Equal(t, o.CompletedAt.UnixNano(), again.CompletedAt.UnixNano())
}

func TestLedgerCompleteMissingOrder(t *testing.T) {
	l := NewLedger()
	_, changed := l.Complete(7)
	assert.False(t, changed)
}

func TestLedgerGetReturnsCopy(t *testing.T) {
	l := NewLedger()
	l.Create(42, "Alice", "alice")
	l.SetPlan(42, Plan{ID: "1_month", Name: "1 месяц", Price: 150})

	o, _ := l.Get(42)
	o.Plan.Price = 9999
	o.Credentials = "tampered"

	fresh, _ := l.Get(42)
	assert.Equal(t, 150, fresh.Plan.Price)
	assert.Empty(t, fresh.Credentials)
}

func TestLedgerListSnapshot(t *testing.T) {
	l := NewLedger()
	for i := int64(1); i <= 5; i++ {
		l.Create(i, fmt.Sprintf("User%d", i), "")
	}

	snap := l.List()
	assert.Len(t, snap, 5)

	// Mutating the snapshot must not leak back into the ledger.
	o := snap[3]
	o.FirstName = "tampered"
	snap[3] = o

	fresh, _ := l.Get(3)
	assert.Equal(t, "User3", fresh.FirstName)
}
