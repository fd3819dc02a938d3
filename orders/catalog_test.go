package orders

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCatalogDefaults(t *testing.T) {
	c, err := NewCatalog(nil)
	assert.NoError(t, err)
	assert.Equal(t, 4, c.Len())

	plan, ok := c.Get("3_months")
	assert.True(t, ok)
	assert.Equal(t, "3 месяца", plan.Name)
	assert.Equal(t, 370, plan.Price)

	list := c.List()
	assert.Equal(t, "1_month", list[0].ID)
	assert.Equal(t, "12_months", list[3].ID)
}

func TestCatalogValidation(t *testing.T) {
	cases := []struct {
		name  string
		plans []Plan
	}{
		{"empty id", []Plan{{Name: "x", Price: 100}}},
		{"empty name", []Plan{{ID: "p", Price: 100}}},
		{"zero price", []Plan{{ID: "p", Name: "x", Price: 0}}},
		{"negative price", []Plan{{ID: "p", Name: "x", Price: -5}}},
		{"duplicate id", []Plan{{ID: "p", Name: "x", Price: 1}, {ID: "p", Name: "y", Price: 2}}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewCatalog(tc.plans)
			assert.Error(t, err)
		})
	}
}

func TestCatalogUnknownPlan(t *testing.T) {
	c, err := NewCatalog(nil)
	assert.NoError(t, err)
	_, ok := c.Get("lifetime")
	assert.False(t, ok)
}
