package router

import (
	"testing"

	tg "github.com/SummitSummer/zzxc/core/telegram"

	tele "gopkg.in/telebot.v4"
)

type cbContext struct {
	tele.Context
	user     *tele.User
	callback *tele.Callback
	vals     map[string]interface{}
	responds []*tele.CallbackResponse
}

func newCBContext(data string) *cbContext {
	return &cbContext{
		user:     &tele.User{ID: 42},
		callback: &tele.Callback{Data: data},
		vals:     make(map[string]interface{}),
	}
}

func (c *cbContext) Sender() *tele.User       { return c.user }
func (c *cbContext) Callback() *tele.Callback { return c.callback }
func (c *cbContext) Chat() *tele.Chat         { return &tele.Chat{ID: c.user.ID} }
func (c *cbContext) Text() string             { return "" }

func (c *cbContext) Update() tele.Update {
	return tele.Update{ID: 1, Callback: c.callback}
}

func (c *cbContext) Get(key string) interface{}      { return c.vals[key] }
func (c *cbContext) Set(key string, val interface{}) { c.vals[key] = val }

func (c *cbContext) Respond(resp ...*tele.CallbackResponse) error {
	if len(resp) > 0 {
		c.responds = append(c.responds, resp[0])
	} else {
		c.responds = append(c.responds, &tele.CallbackResponse{})
	}
	return nil
}

func TestCallbackRouteHandlerOwnsAnswer(t *testing.T) {
	reg := tg.NewRegistry()
	err := reg.RegisterCallback("confirm", func(c tele.Context) error {
		return c.Respond(&tele.CallbackResponse{Text: "заказ не найден"})
	})
	if err != nil {
		t.Fatal(err)
	}

	route := CallbackRoute(reg, CallbackOptions{})
	c := newCBContext("\fconfirm|42")
	if err := route.Handler(c); err != nil {
		t.Fatal(err)
	}

	// The handler's answer must be the only one Telegram sees.
	if len(c.responds) != 1 {
		t.Fatalf("callback answered %d times, want 1", len(c.responds))
	}
	if got := c.responds[0].Text; got != "заказ не найден" {
		t.Fatalf("callback answer = %q, want the handler's alert", got)
	}
}

func TestCallbackRouteUnknownKeyAnswersOnce(t *testing.T) {
	reg := tg.NewRegistry()

	route := CallbackRoute(reg, CallbackOptions{})
	c := newCBContext("\fbogus|")
	if err := route.Handler(c); err != nil {
		t.Fatal(err)
	}

	if len(c.responds) != 1 {
		t.Fatalf("callback answered %d times, want 1", len(c.responds))
	}
	if got := c.responds[0].Text; got != "Unsupported action" {
		t.Fatalf("callback answer = %q, want the default fallback", got)
	}
}
