package flow

import (
	"errors"

	"github.com/SummitSummer/zzxc/core/telegram/callbacks"
	"github.com/SummitSummer/zzxc/core/telegram/commands"
	tghelpers "github.com/SummitSummer/zzxc/core/telegram/helpers"
	"github.com/SummitSummer/zzxc/core/telegram/state"

	tele "gopkg.in/telebot.v4"
)

// Registrar is the subset of the command/callback registry the flow wires into.
type Registrar interface {
	RegisterCommand(name string, cmd commands.Command)
	RegisterCallback(key string, handler tele.HandlerFunc) error
	SetTextFallback(h tele.HandlerFunc)
}

// Handlers glues the flow service to Telegram updates. All domain
// decisions live in Service; handlers only translate updates and render
// replies.
type Handlers struct {
	svc       *Service
	fsm       state.Manager
	notifier  *Notifier
	menuImage string
}

// NewHandlers builds the handler set. menuImage may be empty, in which
// case the main menu is plain text.
func NewHandlers(svc *Service, fsm state.Manager, notifier *Notifier, menuImage string) *Handlers {
	return &Handlers{
		svc:       svc,
		fsm:       fsm,
		notifier:  notifier,
		menuImage: menuImage,
	}
}

// Register wires commands, callbacks and FSM text handlers.
func (h *Handlers) Register(reg Registrar) {
	reg.RegisterCommand("/start", commands.Command{
		Handler:     h.Start,
		Description: "Главное меню",
	})
	reg.RegisterCommand("/orders", commands.Command{
		Handler:     h.AdminOrders,
		Description: "Список всех заказов",
		AdminOnly:   true,
		Hidden:      true,
	})

	_ = reg.RegisterCallback(cbOrderSubscription, h.OrderSubscription)
	_ = reg.RegisterCallback(cbSupport, h.Support)
	_ = reg.RegisterCallback(cbFAQ, h.FAQ)
	_ = reg.RegisterCallback(cbBackToMenu, h.BackToMenu)
	_ = reg.RegisterCallback(cbStartOver, h.StartOver)
	_ = reg.RegisterCallback(cbSelectPlan, h.SelectPlan)
	_ = reg.RegisterCallback(cbPaymentDone, h.PaymentDone)

	reg.SetTextFallback(h.UnknownText)

	h.fsm.RegisterHandler(StateEnteringCredentials, h.CredentialsInput)
	h.fsm.RegisterHandler(StateChoosingSubscription, h.UnknownText)
	h.fsm.RegisterHandler(StateAwaitingPayment, h.UnknownText)
	h.fsm.RegisterHandler(StateCompleted, h.UnknownText)
}

// Start resets the conversation and shows the main menu.
func (h *Handlers) Start(c tele.Context) error {
	h.fsm.Clear(c.Sender().ID)
	return h.sendMainMenu(c)
}

func (h *Handlers) sendMainMenu(c tele.Context) error {
	if h.menuImage != "" {
		return tghelpers.SendPhotoMD(c, h.menuImage, welcomeText, mainMenuKeyboard())
	}
	return tghelpers.SendMD(c, welcomeText, mainMenuKeyboard())
}

// OrderSubscription opens a fresh order and shows the plan keyboard.
func (h *Handlers) OrderSubscription(c tele.Context) error {
	user := c.Sender()
	ctx := tghelpers.WithHandler(c, "order_subscription")
	h.svc.StartOrder(ctx, user.ID, user.FirstName, user.Username)
	h.fsm.SetState(user.ID, StateChoosingSubscription)
	_ = c.Respond()

	// The menu message carries a photo, so replace it instead of editing.
	_ = c.Delete()
	return tghelpers.SendMD(c, plansText(h.svc.Plans()), planKeyboard(h.svc.Plans()))
}

// Support shows the support contact.
func (h *Handlers) Support(c tele.Context) error {
	_ = c.Respond()
	_ = c.Delete()
	return tghelpers.SendMD(c, supportText, backToMenuKeyboard())
}

// FAQ shows the FAQ screen.
func (h *Handlers) FAQ(c tele.Context) error {
	_ = c.Respond()
	_ = c.Delete()
	return tghelpers.SendMD(c, faqText, backToMenuKeyboard())
}

// BackToMenu clears the conversation and returns to the main menu.
// The current order, if any, stays in the ledger untouched.
func (h *Handlers) BackToMenu(c tele.Context) error {
	h.fsm.Clear(c.Sender().ID)
	_ = c.Respond()
	_ = c.Delete()
	return h.sendMainMenu(c)
}

// StartOver behaves like /start issued from a button.
func (h *Handlers) StartOver(c tele.Context) error {
	h.fsm.Clear(c.Sender().ID)
	_ = c.Respond()
	_ = c.Delete()
	return h.sendMainMenu(c)
}

// SelectPlan handles the select_plan|<id> callback. Valid only while
// choosing a subscription; anything else leaves state and ledger alone.
func (h *Handlers) SelectPlan(c tele.Context) error {
	user := c.Sender()
	if h.fsm.GetState(user.ID) != StateChoosingSubscription {
		return c.Respond(&tele.CallbackResponse{Text: unknownPlanAlert})
	}

	ctx := tghelpers.WithHandler(c, "select_plan")
	planID := callbacks.CallbackPayload(c)
	plan, err := h.svc.ChoosePlan(ctx, user.ID, planID)
	switch {
	case errors.Is(err, ErrUnknownPlan):
		return c.Respond(&tele.CallbackResponse{Text: unknownPlanAlert})
	case errors.Is(err, ErrNoOrder):
		return c.Respond(&tele.CallbackResponse{Text: orderNotFoundAlert})
	case err != nil:
		return err
	}

	h.fsm.SetState(user.ID, StateEnteringCredentials)
	_ = c.Respond()
	return tghelpers.EditOrSendMD(c, credentialsPromptText(plan), backToMenuKeyboard())
}

// CredentialsInput consumes free text while entering credentials.
func (h *Handlers) CredentialsInput(c tele.Context) error {
	user := c.Sender()
	ctx := tghelpers.WithHandler(c, "credentials_input")

	o, err := h.svc.SubmitCredentials(ctx, user.ID, c.Text())
	switch {
	case errors.Is(err, ErrCredentialsFormat):
		return tghelpers.SendText(c, credentialsFormatErrText, &tele.SendOptions{ReplyMarkup: backToStartKeyboard()})
	case errors.Is(err, ErrCredentialsShort):
		return tghelpers.SendText(c, credentialsShortErrText, &tele.SendOptions{ReplyMarkup: backToStartKeyboard()})
	case errors.Is(err, ErrNoOrder), errors.Is(err, ErrNoPlan):
		h.fsm.Clear(user.ID)
		return tghelpers.SendText(c, pressStartText, &tele.SendOptions{ReplyMarkup: backToStartKeyboard()})
	case err != nil:
		return err
	}

	h.fsm.SetState(user.ID, StateAwaitingPayment)
	return tghelpers.SendMD(c, paymentText(*o.Plan, o.Credentials), paymentKeyboard(o.PaymentURL))
}

// PaymentDone confirms the payment, completes the order and notifies the
// operator. Notification problems never reach the user.
func (h *Handlers) PaymentDone(c tele.Context) error {
	user := c.Sender()
	if h.fsm.GetState(user.ID) != StateAwaitingPayment {
		return c.Respond(&tele.CallbackResponse{Text: orderNotFoundAlert})
	}

	ctx := tghelpers.WithHandler(c, "payment_done")
	o, err := h.svc.ConfirmPayment(ctx, user.ID)
	switch {
	case errors.Is(err, ErrNoOrder):
		return c.Respond(&tele.CallbackResponse{Text: orderNotFoundAlert})
	case errors.Is(err, ErrAlreadyCompleted):
		h.fsm.SetState(user.ID, StateCompleted)
		return c.Respond(&tele.CallbackResponse{Text: paymentDoneAlert})
	case err != nil:
		return err
	}

	h.fsm.SetState(user.ID, StateCompleted)
	if err := tghelpers.EditOrSendMD(c, successText, backToStartKeyboard()); err != nil {
		return err
	}
	_ = h.notifier.NotifyOrder(ctx, c.Bot(), o)
	return c.Respond(&tele.CallbackResponse{Text: paymentDoneAlert})
}

// UnknownText reminds the user what the current step expects.
func (h *Handlers) UnknownText(c tele.Context) error {
	var text string
	switch h.fsm.GetState(c.Sender().ID) {
	case StateChoosingSubscription:
		text = remindPlanText
	case StateEnteringCredentials:
		text = remindLoginText
	case StateAwaitingPayment:
		text = remindPaymentText
	default:
		text = pressStartText
	}
	return tghelpers.SendText(c, text, &tele.SendOptions{ReplyMarkup: backToStartKeyboard()})
}

// AdminOrders lists every order in the ledger, chunked to fit Telegram
// message limits. Admin gating happens in the command router.
func (h *Handlers) AdminOrders(c tele.Context) error {
	chunks := buildOrdersReport(h.svc.Orders(), maxMessageLen)
	if len(chunks) == 0 {
		return tghelpers.SendText(c, noOrdersText)
	}
	for _, chunk := range chunks {
		if err := tghelpers.SendText(c, chunk); err != nil {
			return err
		}
	}
	return nil
}
