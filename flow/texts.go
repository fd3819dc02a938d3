package flow

import (
	"fmt"
	"strings"
	"time"

	"github.com/SummitSummer/zzxc/core/telegram/format"
	"github.com/SummitSummer/zzxc/orders"
)

const welcomeText = "🎵 **Добро пожаловать в Spotify Family Bot!** 🎵\n\n" +
	"🔥 Получите доступ к **Spotify Premium** по лучшим ценам!\n\n" +
	"✅ **Что вы получаете:**\n" +
	"• Безлимитная музыка без рекламы\n" +
	"• Высокое качество звука\n" +
	"• Скачивание треков для офлайн прослушивания\n" +
	"• Доступ ко всем функциям Spotify Premium\n\n" +
	"💚 **Выберите действие:**"

const supportText = "💬 **Поддержка**\n\n" +
	"Если возникли дополнительные вопросы, обратитесь по этому контакту:\n\n" +
	"👤 https://t.me/chanceofrain"

const faqText = "📖 **Часто задаваемые вопросы**\n\n" +
	"1️⃣ **Это официальная подписка?**\n" +
	"— Да, это настоящая подписка Spotify Premium через семейный план.\n\n" +
	"2️⃣ **Нужно ли что-то платить каждый месяц?**\n" +
	"— Нет. Вы платите один раз за выбранный срок (1 / 3 / 6 / 12 месяцев).\n\n" +
	"3️⃣ **Что мне нужно для подключения?**\n" +
	"— Логин и пароль от Spotify аккаунта.\n\n" +
	"4️⃣ **Как происходит добавление в семью?**\n" +
	"— Мы отправляем приглашение в семью Spotify, вы подтверждаете адрес.\n\n" +
	"5️⃣ **Это безопасно?**\n" +
	"— Да. Данные используются только для добавления в семью и не передаются третьим лицам.\n\n" +
	"6️⃣ **Сколько времени занимает подключение?**\n" +
	"— От 5 до 30 минут. Иногда до 2 часов.\n\n" +
	"7️⃣ **Что если меня удалят из семьи?**\n" +
	"— Мы восстановим вас бесплатно, если срок ещё не истёк.\n\n" +
	"8️⃣ **Можно ли продлить подписку?**\n" +
	"— Да, просто оформите новый срок через бота."

const (
	credentialsFormatErrText = "❌ Неверный формат данных. Введите в формате: логин:пароль\n\nПример: myemail@gmail.com:mypassword123"
	credentialsShortErrText  = "❌ Логин или пароль слишком короткие. Введите в формате: логин:пароль"

	successText = "✅ Оплата успешно обработана!\n\n" +
		"📞 Администратор свяжется с вами в ближайшее время для активации подписки.\n" +
		"Обычно это занимает до 24 часов."

	remindPlanText    = "Пожалуйста, выберите план подписки, используя кнопки выше."
	remindLoginText   = "Пожалуйста, введите ваши данные от Spotify в формате логин:пароль."
	remindPaymentText = "Пожалуйста, используйте кнопки для оплаты выше."
	pressStartText    = "Для начала работы с ботом нажмите /start"

	unknownPlanAlert   = "❌ Неверный план подписки"
	orderNotFoundAlert = "❌ Заказ не найден"
	paymentDoneAlert   = "✅ Оплата подтверждена!"

	noOrdersText     = "📋 Заказов пока нет."
	ordersHeaderText = "📋 Все заказы:\n"

	notSetText = "не указан"
)

// mdSafe escapes interpolated values for Markdown messages. Credentials
// are free text and would otherwise break Telegram entity parsing.
func mdSafe(s string) string {
	escaped, err := format.EscapeMarkdown(s, format.MarkdownV1, "")
	if err != nil {
		return s
	}
	return escaped
}

// plansText renders the plan selection screen from the catalog.
func plansText(plans []orders.Plan) string {
	var b strings.Builder
	b.WriteString("🎵 **Выберите план подписки Spotify Premium:**\n\n")
	b.WriteString("💚 **Доступные варианты:**\n")
	for _, p := range plans {
		fmt.Fprintf(&b, "🔸 **%s** — %d₽\n", mdSafe(p.Name), p.Price)
	}
	b.WriteString("\n✨ **Что включено в Premium:**\n")
	b.WriteString("• Безлимитная музыка без рекламы\n")
	b.WriteString("• Высокое качество звука (до 320 kbps)\n")
	b.WriteString("• Офлайн прослушивание\n")
	b.WriteString("• Пропуск треков без ограничений\n")
	b.WriteString("• Доступ к Spotify Connect\n\n")
	b.WriteString("💚 Выберите подходящий план:")
	return b.String()
}

// credentialsPromptText asks for the account credentials after a plan is chosen.
func credentialsPromptText(plan orders.Plan) string {
	return fmt.Sprintf("✅ **Выбрана подписка:** %s — %d₽\n\n", mdSafe(plan.Name), plan.Price) +
		"📧 **Введите данные от Spotify:**\n\n" +
		"⚠️ **ВАЖНО:**\n" +
		"• Введите данные в формате: **логин:пароль**\n" +
		"• Проверьте данные перед отправкой — **они должны быть точными**\n" +
		"• Используйте **точно такой же** логин и пароль, как в приложении Spotify\n\n" +
		"📝 **Пример:**\n" +
		"• your_email@gmail.com:yourpassword123\n" +
		"• spotify_username:yourpassword\n\n" +
		"🔒 **Безопасность:** Данные используются только для добавления в семью и не передаются третьим лицам"
}

// paymentText shows the order summary with the payment instructions.
func paymentText(plan orders.Plan, credentials string) string {
	return fmt.Sprintf("💳 **К оплате:** %d₽\n\n", plan.Price) +
		"📋 **Детали заказа:**\n" +
		fmt.Sprintf("• **Подписка:** %s\n", mdSafe(plan.Name)) +
		fmt.Sprintf("• **Spotify аккаунт:** %s\n\n", mdSafe(credentials)) +
		"🔥 **Что делать дальше:**\n" +
		"1️⃣ Нажмите кнопку **'💳 Оплатить'**\n" +
		"2️⃣ Совершите платеж\n" +
		"3️⃣ Нажмите **'✅ Я оплатил'**\n\n" +
		"⚡️ После подтверждения оплаты вы получите доступ к Spotify Premium в течение 5-30 минут!"
}

// operatorOrderText is the completed-order notification sent to the operator.
func operatorOrderText(o orders.Order) string {
	planName, planPrice := notSetText, 0
	if o.Plan != nil {
		planName = o.Plan.Name
		planPrice = o.Plan.Price
	}
	username := o.Username
	if username == "" {
		username = notSetText
	}
	return "🔔 Новый оплаченный заказ:\n\n" +
		fmt.Sprintf("📋 ID заказа: %s\n", o.ID) +
		fmt.Sprintf("📅 Подписка: %s - %d₽\n", planName, planPrice) +
		fmt.Sprintf("📧 Spotify логин: %s\n", o.Credentials) +
		fmt.Sprintf("👤 Пользователь: %s\n", o.FirstName) +
		fmt.Sprintf("📱 Telegram: @%s\n", username) +
		fmt.Sprintf("🆔 User ID: %d\n", o.UserID) +
		fmt.Sprintf("⏰ Время заказа: %s", o.CreatedAt.Format(time.RFC3339))
}

// orderRecordText is a single order entry in the /orders listing.
func orderRecordText(o orders.Order) string {
	planName, planPrice := "не выбрано", 0
	if o.Plan != nil {
		planName = o.Plan.Name
		planPrice = o.Plan.Price
	}
	username := o.Username
	if username == "" {
		username = notSetText
	}
	credentials := o.Credentials
	if credentials == "" {
		credentials = notSetText
	}
	return fmt.Sprintf("\n🆔 %s\n", o.ID) +
		fmt.Sprintf("👤 %s (@%s)\n", o.FirstName, username) +
		fmt.Sprintf("📧 %s\n", credentials) +
		fmt.Sprintf("📅 %s\n", planName) +
		fmt.Sprintf("💰 %d₽\n", planPrice) +
		fmt.Sprintf("📊 Статус: %s\n", o.Status) +
		fmt.Sprintf("⏰ %s\n", o.CreatedAt.Format(time.RFC3339)) +
		"─────────────────"
}
