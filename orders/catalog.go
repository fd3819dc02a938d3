package orders

import (
	"fmt"

	"github.com/SummitSummer/zzxc/core/logger"
	"log/slog"
)

// Catalog is the read-only plan list. Insertion order is preserved for
// keyboard rendering.
type Catalog struct {
	plans []Plan
	byID  map[string]Plan
}

// DefaultPlans returns the built-in subscription tiers used when the
// config file does not override them.
func DefaultPlans() []Plan {
	return []Plan{
		{ID: "1_month", Name: "1 месяц", Price: 150, Duration: "1 месяц"},
		{ID: "3_months", Name: "3 месяца", Price: 370, Duration: "3 месяца"},
		{ID: "6_months", Name: "6 месяцев", Price: 690, Duration: "6 месяцев"},
		{ID: "12_months", Name: "12 месяцев", Price: 1300, Duration: "12 месяцев"},
	}
}

// NewCatalog validates the plan list and builds a catalog from it.
// An empty list falls back to DefaultPlans.
func NewCatalog(plans []Plan) (*Catalog, error) {
	if len(plans) == 0 {
		plans = DefaultPlans()
	}

	c := &Catalog{
		plans: make([]Plan, 0, len(plans)),
		byID:  make(map[string]Plan, len(plans)),
	}
	for _, p := range plans {
		if p.ID == "" {
			return nil, fmt.Errorf("catalog: plan with empty id")
		}
		if p.Name == "" {
			return nil, fmt.Errorf("catalog: plan %q has empty name", p.ID)
		}
		if p.Price <= 0 {
			return nil, fmt.Errorf("catalog: plan %q has non-positive price %d", p.ID, p.Price)
		}
		if _, dup := c.byID[p.ID]; dup {
			return nil, fmt.Errorf("catalog: duplicate plan id %q", p.ID)
		}
		if p.Duration == "" {
			p.Duration = p.Name
		}
		c.plans = append(c.plans, p)
		c.byID[p.ID] = p
	}

	logger.Info(logger.Background(), "service.catalog", "catalog.load",
		slog.Int("plans", len(c.plans)),
	)
	return c, nil
}

// Get returns a plan by id.
func (c *Catalog) Get(id string) (Plan, bool) {
	p, ok := c.byID[id]
	return p, ok
}

// List returns the plans in catalog order.
func (c *Catalog) List() []Plan {
	out := make([]Plan, len(c.plans))
	copy(out, c.plans)
	return out
}

// Len returns the number of plans.
func (c *Catalog) Len() int {
	return len(c.plans)
}
