package orders

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/SummitSummer/zzxc/core/logger"
	"log/slog"
)

// Archive mirrors completed orders into Postgres. The ledger stays
// authoritative; the archive is a write-only sink and may be absent.
type Archive struct {
	db *sqlx.DB
}

// NewArchive wraps a database handle. A nil handle yields a disabled
// archive whose Store is a no-op.
func NewArchive(db *sqlx.DB) *Archive {
	return &Archive{db: db}
}

// Enabled reports whether the archive has a backing database.
func (a *Archive) Enabled() bool {
	return a != nil && a.db != nil
}

const insertCompletedOrder = `
INSERT INTO completed_orders
    (order_id, user_id, first_name, username, plan_id, plan_name, price, credentials, payment_url, created_at, completed_at)
VALUES
    (:order_id, :user_id, :first_name, :username, :plan_id, :plan_name, :price, :credentials, :payment_url, :created_at, :completed_at)
ON CONFLICT (order_id) DO NOTHING`

type archivedOrder struct {
	OrderID     string     `db:"order_id"`
	UserID      int64      `db:"user_id"`
	FirstName   string     `db:"first_name"`
	Username    string     `db:"username"`
	PlanID      string     `db:"plan_id"`
	PlanName    string     `db:"plan_name"`
	Price       int        `db:"price"`
	Credentials string     `db:"credentials"`
	PaymentURL  string     `db:"payment_url"`
	CreatedAt   time.Time  `db:"created_at"`
	CompletedAt *time.Time `db:"completed_at"`
}

// Store inserts a completed order. Duplicate order ids are ignored so a
// retried confirmation never produces a second row.
func (a *Archive) Store(ctx context.Context, o Order) error {
	if !a.Enabled() {
		return nil
	}
	if o.Status != StatusCompleted {
		return fmt.Errorf("archive: order %s is not completed", o.ID)
	}

	row := archivedOrder{
		OrderID:     o.ID,
		UserID:      o.UserID,
		FirstName:   o.FirstName,
		Username:    o.Username,
		Credentials: o.Credentials,
		PaymentURL:  o.PaymentURL,
		CreatedAt:   o.CreatedAt,
		CompletedAt: o.CompletedAt,
	}
	if o.Plan != nil {
		row.PlanID = o.Plan.ID
		row.PlanName = o.Plan.Name
		row.Price = o.Plan.Price
	}

	start := time.Now()
	if _, err := a.db.NamedExecContext(ctx, insertCompletedOrder, row); err != nil {
		return fmt.Errorf("archive: insert %s: %w", o.ID, err)
	}

	logger.Info(ctx, "db", "archive.store",
		slog.String("order_id", o.ID),
		slog.Duration("duration", logger.RoundMS(time.Since(start))),
	)
	return nil
}
