package flow

import (
	"fmt"

	"github.com/SummitSummer/zzxc/core/telegram/keyboard"
	"github.com/SummitSummer/zzxc/orders"

	tele "gopkg.in/telebot.v4"
)

// Callback keys of the order flow.
const (
	cbOrderSubscription = "order_subscription"
	cbSupport           = "support"
	cbFAQ               = "faq"
	cbBackToMenu        = "back_to_menu"
	cbStartOver         = "start_over"
	cbSelectPlan        = "select_plan"
	cbPaymentDone       = "payment_done"
)

func mainMenuKeyboard() *tele.ReplyMarkup {
	return keyboard.InlineButtons([]keyboard.InlineBtn{
		{Text: "🎟 Оформить подписку", Unique: cbOrderSubscription},
		{Text: "💬 Support", Unique: cbSupport},
		{Text: "📖 Наш FAQ", Unique: cbFAQ},
	})
}

func planKeyboard(plans []orders.Plan) *tele.ReplyMarkup {
	buttons := make([]keyboard.InlineBtn, 0, len(plans)+1)
	for _, p := range plans {
		buttons = append(buttons, keyboard.InlineBtn{
			Text:   fmt.Sprintf("💚%s💚 — %d₽", p.Name, p.Price),
			Unique: cbSelectPlan,
			Data:   p.ID,
		})
	}
	buttons = append(buttons, keyboard.InlineBtn{Text: "⬅️ Назад в меню", Unique: cbBackToMenu})
	return keyboard.InlineButtons(buttons)
}

func paymentKeyboard(paymentURL string) *tele.ReplyMarkup {
	return keyboard.InlineButtons([]keyboard.InlineBtn{
		{Text: "💳 Оплатить", URL: paymentURL},
		{Text: "✅ Я оплатил", Unique: cbPaymentDone},
	})
}

func backToStartKeyboard() *tele.ReplyMarkup {
	return keyboard.InlineButtons([]keyboard.InlineBtn{
		{Text: "🔄 Начать заново", Unique: cbStartOver},
	})
}

func backToMenuKeyboard() *tele.ReplyMarkup {
	return keyboard.InlineButtons([]keyboard.InlineBtn{
		{Text: "⬅️ Назад в меню", Unique: cbBackToMenu},
	})
}
