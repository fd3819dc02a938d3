package flow

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/SummitSummer/zzxc/orders"
)

func newTestService(t *testing.T) *Service {
	t.Helper()
	catalog, err := orders.NewCatalog(nil)
	assert.NoError(t, err)
	return NewService(orders.NewLedger(), catalog, orders.NewLinkBuilder(""), orders.NewArchive(nil))
}

func TestOrderFlowHappyPath(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	id := svc.StartOrder(ctx, 42, "Alice", "alice")
	assert.Equal(t, "ORDER_00001", id)

	plan, err := svc.ChoosePlan(ctx, 42, "3_months")
	assert.NoError(t, err)
	assert.Equal(t, "3 месяца", plan.Name)
	assert.Equal(t, 370, plan.Price)

	o, err := svc.SubmitCredentials(ctx, 42, "me@x.com:abcdef")
	assert.NoError(t, err)
	assert.Equal(t, orders.StatusAwaitingPayment, o.Status)
	assert.Equal(t, "me@x.com:abcdef", o.Credentials)
	assert.Equal(t,
		"https://payment-gateway.example.com/pay?order_id=ORDER_00001&amount=370",
		o.PaymentURL,
	)

	done, err := svc.ConfirmPayment(ctx, 42)
	assert.NoError(t, err)
	assert.Equal(t, orders.StatusCompleted, done.Status)
	assert.NotNil(t, done.CompletedAt)
}

func TestConfirmPaymentOnlyFirstWins(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	svc.StartOrder(ctx, 42, "Alice", "alice")
	_, err := svc.ChoosePlan(ctx, 42, "1_month")
	assert.NoError(t, err)
	_, err = svc.SubmitCredentials(ctx, 42, "me@x.com:abcdef")
	assert.NoError(t, err)

	_, err = svc.ConfirmPayment(ctx, 42)
	assert.NoError(t, err)

	_, err = svc.ConfirmPayment(ctx, 42)
	assert.ErrorIs(t, err, ErrAlreadyCompleted)
}

func TestShortCredentialsRejectedWithoutSideEffects(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	svc.StartOrder(ctx, 7, "Bob", "bob")
	_, err := svc.ChoosePlan(ctx, 7, "1_month")
	assert.NoError(t, err)

	_, err = svc.SubmitCredentials(ctx, 7, "ab:cd")
	assert.ErrorIs(t, err, ErrCredentialsShort)

	o := svc.Orders()[7]
	assert.Equal(t, orders.StatusCreated, o.Status)
	assert.Empty(t, o.Credentials)
	assert.Empty(t, o.PaymentURL)
}

func TestChoosePlanUnknownID(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	svc.StartOrder(ctx, 42, "Alice", "alice")
	_, err := svc.ChoosePlan(ctx, 42, "lifetime")
	assert.ErrorIs(t, err, ErrUnknownPlan)

	// The order keeps no plan after the rejected selection.
	o := svc.Orders()[42]
	assert.Nil(t, o.Plan)
}

func TestChoosePlanWithoutOrder(t *testing.T) {
	svc := newTestService(t)
	_, err := svc.ChoosePlan(context.Background(), 99, "1_month")
	assert.ErrorIs(t, err, ErrNoOrder)
}

func TestSubmitCredentialsWithoutOrder(t *testing.T) {
	svc := newTestService(t)
	_, err := svc.SubmitCredentials(context.Background(), 99, "me@x.com:abcdef")
	assert.ErrorIs(t, err, ErrNoOrder)
}

func TestSubmitCredentialsBeforePlan(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	svc.StartOrder(ctx, 42, "Alice", "alice")
	_, err := svc.SubmitCredentials(ctx, 42, "me@x.com:abcdef")
	assert.ErrorIs(t, err, ErrNoPlan)
}

func TestConfirmPaymentWithoutOrder(t *testing.T) {
	svc := newTestService(t)
	_, err := svc.ConfirmPayment(context.Background(), 99)
	assert.ErrorIs(t, err, ErrNoOrder)
}

func TestStartOrderReplacesPreviousOrder(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	svc.StartOrder(ctx, 42, "Alice", "alice")
	_, err := svc.ChoosePlan(ctx, 42, "6_months")
	assert.NoError(t, err)

	id := svc.StartOrder(ctx, 42, "Alice", "alice")
	assert.Equal(t, "ORDER_00002", id)

	o := svc.Orders()[42]
	assert.Equal(t, orders.StatusCreated, o.Status)
	assert.Nil(t, o.Plan)
	assert.Equal(t, 1, svc.OrdersCount())
}
