package middleware

import (
	"testing"

	tele "gopkg.in/telebot.v4"
)

type senderContext struct {
	tele.Context
	user *tele.User
}

func (c senderContext) Sender() *tele.User { return c.user }

func runAdminGate(t *testing.T, opts AdminOptions, userID int64) (handled, rejected bool) {
	t.Helper()
	next := func(tele.Context) error {
		handled = true
		return nil
	}
	opts.OnReject = func(tele.Context) error {
		rejected = true
		return nil
	}
	h := AdminOnlyMiddleware(opts)(next)
	if err := h(senderContext{user: &tele.User{ID: userID}}); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	return handled, rejected
}

func TestAdminOnlyAllowsAdmin(t *testing.T) {
	handled, rejected := runAdminGate(t, AdminOptions{AdminID: 777}, 777)
	if !handled || rejected {
		t.Fatalf("admin must reach the handler, got handled=%v rejected=%v", handled, rejected)
	}
}

func TestAdminOnlyRejectsOtherUsers(t *testing.T) {
	handled, rejected := runAdminGate(t, AdminOptions{AdminID: 777}, 42)
	if handled || !rejected {
		t.Fatalf("non-admin must be rejected, got handled=%v rejected=%v", handled, rejected)
	}
}

func TestAdminOnlyRejectsEveryoneWhenUnset(t *testing.T) {
	handled, rejected := runAdminGate(t, AdminOptions{AdminID: 0}, 42)
	if handled || !rejected {
		t.Fatalf("unset admin id must reject everyone, got handled=%v rejected=%v", handled, rejected)
	}
}

func TestAdminOnlySilentWithoutRejectHandler(t *testing.T) {
	handled := false
	h := AdminOnlyMiddleware(AdminOptions{AdminID: 777})(func(tele.Context) error {
		handled = true
		return nil
	})
	if err := h(senderContext{user: &tele.User{ID: 42}}); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if handled {
		t.Fatal("non-admin must not reach the handler")
	}
}
