package flow

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/SummitSummer/zzxc/orders"

	tele "gopkg.in/telebot.v4"
)

type fakeSender struct {
	sent []string
	to   []tele.Recipient
	err  error
}

func (f *fakeSender) Send(to tele.Recipient, what interface{}, _ ...interface{}) (*tele.Message, error) {
	if f.err != nil {
		return nil, f.err
	}
	if s, ok := what.(string); ok {
		f.sent = append(f.sent, s)
	}
	f.to = append(f.to, to)
	return &tele.Message{}, nil
}

func completedOrder() orders.Order {
	plan := orders.Plan{ID: "3_months", Name: "3 месяца", Price: 370}
	ts := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	return orders.Order{
		ID:          "ORDER_00001",
		UserID:      42,
		FirstName:   "Alice",
		Username:    "alice",
		Status:      orders.StatusCompleted,
		Plan:        &plan,
		Credentials: "me@x.com:abcdef",
		PaymentURL:  "https://payment-gateway.example.com/pay?order_id=ORDER_00001&amount=370",
		CreatedAt:   ts,
		CompletedAt: &ts,
	}
}

func TestNotifyOrderDeliversFullSummary(t *testing.T) {
	sender := &fakeSender{}
	n := NewNotifier(777)

	err := n.NotifyOrder(context.Background(), sender, completedOrder())
	assert.NoError(t, err)
	assert.Len(t, sender.sent, 1)

	msg := sender.sent[0]
	assert.Contains(t, msg, "ORDER_00001")
	assert.Contains(t, msg, "3 месяца - 370₽")
	assert.Contains(t, msg, "me@x.com:abcdef")
	assert.Contains(t, msg, "Alice")
	assert.Contains(t, msg, "@alice")
	assert.Contains(t, msg, "User ID: 42")

	user, ok := sender.to[0].(*tele.User)
	assert.True(t, ok)
	assert.Equal(t, int64(777), user.ID)
}

func TestNotifyOrderWithoutOperatorIsSkipped(t *testing.T) {
	sender := &fakeSender{}
	n := NewNotifier(0)

	err := n.NotifyOrder(context.Background(), sender, completedOrder())
	assert.NoError(t, err)
	assert.Empty(t, sender.sent)
}

func TestNotifyOrderPropagatesSendFailure(t *testing.T) {
	sender := &fakeSender{err: errors.New("telegram: forbidden")}
	n := NewNotifier(777)

	err := n.NotifyOrder(context.Background(), sender, completedOrder())
	assert.Error(t, err)
}

func TestNotifyOrderMissingUsernameFallsBack(t *testing.T) {
	sender := &fakeSender{}
	n := NewNotifier(777)

	o := completedOrder()
	o.Username = ""
	assert.NoError(t, n.NotifyOrder(context.Background(), sender, o))
	assert.Contains(t, sender.sent[0], "@не указан")
}
