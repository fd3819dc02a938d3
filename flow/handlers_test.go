package flow

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/SummitSummer/zzxc/core/telegram/state"

	tele "gopkg.in/telebot.v4"
)

// botContext is a minimal recording tele.Context for handler tests.
// Only the methods the handlers touch are implemented.
type botContext struct {
	tele.Context
	user     *tele.User
	callback *tele.Callback
	text     string
	vals     map[string]interface{}
	responds []*tele.CallbackResponse
	sent     []string
	deleted  int
}

func newCallbackContext(userID int64, data string) *botContext {
	return &botContext{
		user:     &tele.User{ID: userID, FirstName: "Alice", Username: "alice"},
		callback: &tele.Callback{Data: data},
		vals:     make(map[string]interface{}),
	}
}

func (c *botContext) Sender() *tele.User       { return c.user }
func (c *botContext) Callback() *tele.Callback { return c.callback }
func (c *botContext) Text() string             { return c.text }
func (c *botContext) Chat() *tele.Chat         { return &tele.Chat{ID: c.user.ID} }
func (c *botContext) Bot() tele.API            { return nil }

func (c *botContext) Update() tele.Update {
	return tele.Update{Callback: c.callback}
}

func (c *botContext) Get(key string) interface{}      { return c.vals[key] }
func (c *botContext) Set(key string, val interface{}) { c.vals[key] = val }

func (c *botContext) Delete() error {
	c.deleted++
	return nil
}

func (c *botContext) Respond(resp ...*tele.CallbackResponse) error {
	if len(resp) > 0 {
		c.responds = append(c.responds, resp[0])
	} else {
		c.responds = append(c.responds, &tele.CallbackResponse{})
	}
	return nil
}

func (c *botContext) Send(what interface{}, _ ...interface{}) error {
	if s, ok := what.(string); ok {
		c.sent = append(c.sent, s)
	}
	return nil
}

func (c *botContext) EditOrSend(what interface{}, _ ...interface{}) error {
	return c.Send(what)
}

func newTestHandlers(t *testing.T) (*Handlers, state.Manager) {
	t.Helper()
	fsm := state.NewMemoryManager(nil)
	return NewHandlers(newTestService(t), fsm, NewNotifier(0), ""), fsm
}

func TestSelectPlanOutOfStateAnswersAlertOnce(t *testing.T) {
	h, _ := newTestHandlers(t)
	c := newCallbackContext(42, "select_plan|3_months")

	assert.NoError(t, h.SelectPlan(c))
	assert.Len(t, c.responds, 1)
	assert.Equal(t, unknownPlanAlert, c.responds[0].Text)
	assert.Empty(t, c.sent)
}

func TestSelectPlanUnknownPlanAnswersAlertOnce(t *testing.T) {
	h, fsm := newTestHandlers(t)
	h.svc.StartOrder(context.Background(), 42, "Alice", "alice")
	fsm.SetState(42, StateChoosingSubscription)

	c := newCallbackContext(42, "select_plan|lifetime")
	assert.NoError(t, h.SelectPlan(c))
	assert.Len(t, c.responds, 1)
	assert.Equal(t, unknownPlanAlert, c.responds[0].Text)
	assert.Equal(t, StateChoosingSubscription, fsm.GetState(42))
}

func TestSelectPlanHappyPathAcknowledgesOnce(t *testing.T) {
	h, fsm := newTestHandlers(t)
	h.svc.StartOrder(context.Background(), 42, "Alice", "alice")
	fsm.SetState(42, StateChoosingSubscription)

	c := newCallbackContext(42, "select_plan|3_months")
	assert.NoError(t, h.SelectPlan(c))

	assert.Len(t, c.responds, 1)
	assert.Empty(t, c.responds[0].Text)
	assert.Equal(t, StateEnteringCredentials, fsm.GetState(42))
	assert.Len(t, c.sent, 1)
	assert.Contains(t, c.sent[0], "Выбрана подписка")
}

func TestPaymentDoneWithoutOrderAnswersAlertOnce(t *testing.T) {
	h, fsm := newTestHandlers(t)
	fsm.SetState(42, StateAwaitingPayment)

	c := newCallbackContext(42, "payment_done")
	assert.NoError(t, h.PaymentDone(c))
	assert.Len(t, c.responds, 1)
	assert.Equal(t, orderNotFoundAlert, c.responds[0].Text)
}

func TestPaymentDoneHappyPathAnswersOnce(t *testing.T) {
	ctx := context.Background()
	h, fsm := newTestHandlers(t)
	h.svc.StartOrder(ctx, 42, "Alice", "alice")
	_, err := h.svc.ChoosePlan(ctx, 42, "3_months")
	assert.NoError(t, err)
	_, err = h.svc.SubmitCredentials(ctx, 42, "me@x.com:abcdef")
	assert.NoError(t, err)
	fsm.SetState(42, StateAwaitingPayment)

	c := newCallbackContext(42, "payment_done")
	assert.NoError(t, h.PaymentDone(c))

	assert.Equal(t, StateCompleted, fsm.GetState(42))
	assert.Len(t, c.responds, 1)
	assert.Equal(t, paymentDoneAlert, c.responds[0].Text)
	assert.Len(t, c.sent, 1)
	assert.Equal(t, successText, c.sent[0])
}

func TestBackToMenuAcknowledgesAndClearsState(t *testing.T) {
	h, fsm := newTestHandlers(t)
	fsm.SetState(42, StateAwaitingPayment)

	c := newCallbackContext(42, "back_to_menu")
	assert.NoError(t, h.BackToMenu(c))

	assert.Len(t, c.responds, 1)
	assert.Empty(t, c.responds[0].Text)
	assert.Equal(t, state.StateIdle, fsm.GetState(42))
	assert.Equal(t, 1, c.deleted)
	assert.Len(t, c.sent, 1)
	assert.Contains(t, c.sent[0], "Добро пожаловать")
}
