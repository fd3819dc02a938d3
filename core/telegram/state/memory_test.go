package state

import (
	"testing"

	tele "gopkg.in/telebot.v4"
)

const testState State = "entering_city"

type userContext struct {
	tele.Context
	user *tele.User
	vals map[string]interface{}
}

func newUserContext(id int64) *userContext {
	return &userContext{user: &tele.User{ID: id}, vals: make(map[string]interface{})}
}

func (c *userContext) Sender() *tele.User { return c.user }
func (c *userContext) Update() tele.Update {
	return tele.Update{Message: &tele.Message{Sender: c.user}}
}
func (c *userContext) Chat() *tele.Chat                { return &tele.Chat{ID: c.user.ID} }
func (c *userContext) Get(key string) interface{}      { return c.vals[key] }
func (c *userContext) Set(key string, val interface{}) { c.vals[key] = val }

func TestFreshUserIsIdle(t *testing.T) {
	m := NewMemoryManager(nil)

	if got := m.GetState(42); got != StateIdle {
		t.Fatalf("fresh user state = %q, want %q", got, StateIdle)
	}
	if m.InProgress(42) {
		t.Fatal("fresh user must not be in progress")
	}
}

func TestStateTransitions(t *testing.T) {
	m := NewMemoryManager(nil)

	m.SetState(7, testState)
	if got := m.GetState(7); got != testState {
		t.Fatalf("GetState = %q, want %q", got, testState)
	}
	if !m.InProgress(7) {
		t.Fatal("user with a state must be in progress")
	}

	m.Clear(7)
	if got := m.GetState(7); got != StateIdle {
		t.Fatalf("after Clear state = %q, want %q", got, StateIdle)
	}
	if m.InProgress(7) {
		t.Fatal("cleared user must not be in progress")
	}
}

func TestIdleStateNotInProgress(t *testing.T) {
	m := NewMemoryManager(nil)

	m.SetState(5, StateIdle)
	if m.InProgress(5) {
		t.Fatal("explicit idle state must not count as in progress")
	}
}

func TestStatesIsolatedPerUser(t *testing.T) {
	m := NewMemoryManager(nil)

	m.SetState(1, testState)
	if m.InProgress(2) {
		t.Fatal("state of one user must not leak to another")
	}
	m.Clear(2)
	if got := m.GetState(1); got != testState {
		t.Fatalf("clearing another user changed state to %q", got)
	}
}

func TestManagerHandlerDispatchesByState(t *testing.T) {
	m := NewMemoryManager(nil)

	var calls []State
	m.RegisterHandler(testState, func(tele.Context) error {
		calls = append(calls, testState)
		return nil
	})

	c := newUserContext(9)
	if err := m.ManagerHandler(c); err != nil {
		t.Fatal(err)
	}
	if len(calls) != 0 {
		t.Fatal("idle user must not trigger a state handler")
	}

	m.SetState(9, testState)
	if err := m.ManagerHandler(c); err != nil {
		t.Fatal(err)
	}
	if len(calls) != 1 {
		t.Fatalf("state handler called %d times, want 1", len(calls))
	}
}
