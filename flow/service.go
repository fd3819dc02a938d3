package flow

import (
	"context"
	"errors"

	"github.com/SummitSummer/zzxc/core/logger"
	"github.com/SummitSummer/zzxc/orders"
	"log/slog"
)

var (
	// ErrUnknownPlan is returned for a plan id outside the catalog.
	ErrUnknownPlan = errors.New("unknown subscription plan")
	// ErrNoOrder is returned when the user has no order in the ledger.
	ErrNoOrder = errors.New("order not found")
	// ErrNoPlan is returned when credentials arrive before a plan was chosen.
	ErrNoPlan = errors.New("order has no plan")
	// ErrAlreadyCompleted is returned on a repeated payment confirmation.
	ErrAlreadyCompleted = errors.New("order already completed")
)

// Service holds the transport-agnostic order flow logic. It owns no
// conversation state; the FSM manager decides which operation applies.
type Service struct {
	ledger  *orders.Ledger
	catalog *orders.Catalog
	links   *orders.LinkBuilder
	archive *orders.Archive
}

// NewService wires the flow over the ledger, catalog, payment link
// builder and the optional completed-order archive.
func NewService(ledger *orders.Ledger, catalog *orders.Catalog, links *orders.LinkBuilder, archive *orders.Archive) *Service {
	return &Service{
		ledger:  ledger,
		catalog: catalog,
		links:   links,
		archive: archive,
	}
}

// Plans returns the catalog in display order.
func (s *Service) Plans() []orders.Plan {
	return s.catalog.List()
}

// StartOrder opens a fresh order for the user, replacing any previous one.
func (s *Service) StartOrder(ctx context.Context, userID int64, firstName, username string) string {
	id := s.ledger.Create(userID, firstName, username)
	logger.Info(ctx, "service.flow", "flow.order.start",
		slog.String("order_id", id),
		slog.Int64("user_id", userID),
	)
	return id
}

// ChoosePlan validates the plan id against the catalog and stores the
// plan on the user's order.
func (s *Service) ChoosePlan(ctx context.Context, userID int64, planID string) (orders.Plan, error) {
	plan, ok := s.catalog.Get(planID)
	if !ok {
		logger.Warn(ctx, "service.flow", "flow.plan.unknown",
			slog.Int64("user_id", userID),
			slog.String("plan_id", logger.SanitizeLimit(planID, 64)),
		)
		return orders.Plan{}, ErrUnknownPlan
	}
	if !s.ledger.SetPlan(userID, plan) {
		return orders.Plan{}, ErrNoOrder
	}
	return plan, nil
}

// SubmitCredentials validates the login:password message, issues the
// deterministic payment link and moves the order to awaiting_payment.
// On a validation error the ledger is untouched.
func (s *Service) SubmitCredentials(ctx context.Context, userID int64, raw string) (orders.Order, error) {
	creds, err := ValidateCredentials(raw)
	if err != nil {
		logger.Info(ctx, "service.flow", "flow.credentials.reject",
			slog.Int64("user_id", userID),
			slog.String("cause", err.Error()),
		)
		return orders.Order{}, err
	}

	o, ok := s.ledger.Get(userID)
	if !ok {
		return orders.Order{}, ErrNoOrder
	}
	if o.Plan == nil {
		return orders.Order{}, ErrNoPlan
	}

	payURL := s.links.URL(o.ID, o.Plan.Price)
	if !s.ledger.SetCredentials(userID, creds, payURL) {
		return orders.Order{}, ErrNoOrder
	}

	o, _ = s.ledger.Get(userID)
	logger.Info(ctx, "service.flow", "flow.payment.issued",
		slog.String("order_id", o.ID),
		slog.Int64("user_id", userID),
		slog.Int("price", o.Plan.Price),
	)
	return o, nil
}

// ConfirmPayment completes the user's order. The first confirmation wins:
// repeated calls return ErrAlreadyCompleted so the operator notification
// fires exactly once. Completed orders are mirrored to the archive when
// one is configured; archive failures degrade to a warning.
func (s *Service) ConfirmPayment(ctx context.Context, userID int64) (orders.Order, error) {
	if _, ok := s.ledger.Get(userID); !ok {
		return orders.Order{}, ErrNoOrder
	}

	o, changed := s.ledger.Complete(userID)
	if !changed {
		return o, ErrAlreadyCompleted
	}

	if s.archive.Enabled() {
		if err := s.archive.Store(ctx, o); err != nil {
			logger.Warn(ctx, "service.flow", "flow.archive.fail",
				slog.String("order_id", o.ID),
				slog.String("err", logger.SanitizeLimit(err.Error(), 256)),
			)
		}
	}
	return o, nil
}

// Orders returns a deep snapshot of the ledger for the admin listing.
func (s *Service) Orders() map[int64]orders.Order {
	return s.ledger.List()
}

// OrdersCount returns the number of live orders.
func (s *Service) OrdersCount() int {
	return s.ledger.Len()
}
