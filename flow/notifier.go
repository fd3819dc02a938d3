package flow

import (
	"context"
	"fmt"

	"github.com/SummitSummer/zzxc/core/logger"
	"github.com/SummitSummer/zzxc/orders"
	"log/slog"

	tele "gopkg.in/telebot.v4"
)

// Sender is the outbound surface the notifier needs; *tele.Bot satisfies it.
type Sender interface {
	Send(to tele.Recipient, what interface{}, opts ...interface{}) (*tele.Message, error)
}

// Notifier delivers operator-facing messages. A zero operator id turns
// every delivery into a logged warning instead of an error: the bot can
// serve users without an operator configured.
type Notifier struct {
	operatorID int64
}

// NewNotifier builds a notifier for the given operator chat id.
func NewNotifier(operatorID int64) *Notifier {
	if operatorID == 0 {
		logger.Warn(logger.Background(), "service.flow", "notify.operator.unset")
	}
	return &Notifier{operatorID: operatorID}
}

// NotifyOrder sends the completed-order notification. Failures are
// logged and returned but must never surface to the ordering user.
func (n *Notifier) NotifyOrder(ctx context.Context, api Sender, o orders.Order) error {
	if n.operatorID == 0 {
		logger.Warn(ctx, "service.flow", "notify.skip",
			slog.String("order_id", o.ID),
			slog.String("reason", "operator_unset"),
		)
		return nil
	}
	if _, err := api.Send(&tele.User{ID: n.operatorID}, operatorOrderText(o)); err != nil {
		logger.Error(ctx, "service.flow", "notify.fail",
			slog.String("order_id", o.ID),
			slog.String("err", logger.SanitizeLimit(err.Error(), 256)),
		)
		return fmt.Errorf("flow: operator notification for %s: %w", o.ID, err)
	}
	logger.Info(ctx, "service.flow", "notify.sent",
		slog.String("order_id", o.ID),
	)
	return nil
}

// NotifyStartup tells the operator the bot is up.
func (n *Notifier) NotifyStartup(ctx context.Context, api Sender) error {
	if n.operatorID == 0 {
		return nil
	}
	if _, err := api.Send(&tele.User{ID: n.operatorID}, "✅ Бот запущен и готов принимать заказы."); err != nil {
		logger.Warn(ctx, "service.flow", "notify.startup.fail",
			slog.String("err", logger.SanitizeLimit(err.Error(), 256)),
		)
		return err
	}
	return nil
}
