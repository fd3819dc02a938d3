package flow

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/SummitSummer/zzxc/orders"
)

func TestPaymentTextEscapesCredentials(t *testing.T) {
	plan := orders.Plan{ID: "3_months", Name: "3 месяца", Price: 370}

	text := paymentText(plan, "my_user:pa*ss")
	assert.Contains(t, text, `my\_user:pa\*ss`)
	assert.NotContains(t, text, "my_user:pa*ss")
	assert.NotContains(t, text, `my\\_user`)
}

func TestCredentialsPromptEscapesPlanName(t *testing.T) {
	plan := orders.Plan{ID: "promo", Name: "Premium_Family [акция]", Price: 99}

	text := credentialsPromptText(plan)
	assert.Contains(t, text, `Premium\_Family \[акция]`)
}

func TestPlansTextListsEveryPlan(t *testing.T) {
	plans := []orders.Plan{
		{ID: "1_month", Name: "1 месяц", Price: 150},
		{ID: "3_months", Name: "3 месяца", Price: 370},
	}

	text := plansText(plans)
	assert.Contains(t, text, "1 месяц")
	assert.Contains(t, text, "150₽")
	assert.Contains(t, text, "3 месяца")
	assert.Contains(t, text, "370₽")
}
