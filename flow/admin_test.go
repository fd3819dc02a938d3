package flow

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/SummitSummer/zzxc/orders"
)

func makeSnapshot(n int) map[int64]orders.Order {
	plan := orders.Plan{ID: "3_months", Name: "3 месяца", Price: 370}
	snap := make(map[int64]orders.Order, n)
	for i := 1; i <= n; i++ {
		p := plan
		snap[int64(i)] = orders.Order{
			ID:          fmt.Sprintf("ORDER_%05d", i),
			UserID:      int64(i),
			FirstName:   fmt.Sprintf("User%d", i),
			Username:    fmt.Sprintf("user%d", i),
			Status:      orders.StatusAwaitingPayment,
			Plan:        &p,
			Credentials: fmt.Sprintf("user%d@example.com:password%d", i, i),
			CreatedAt:   time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC),
		}
	}
	return snap
}

func TestOrdersReportEmpty(t *testing.T) {
	assert.Nil(t, buildOrdersReport(nil, maxMessageLen))
	assert.Nil(t, buildOrdersReport(map[int64]orders.Order{}, maxMessageLen))
}

func TestOrdersReportSingleMessage(t *testing.T) {
	chunks := buildOrdersReport(makeSnapshot(3), maxMessageLen)
	assert.Len(t, chunks, 1)
	assert.True(t, strings.HasPrefix(chunks[0], ordersHeaderText))
	assert.Contains(t, chunks[0], "ORDER_00001")
	assert.Contains(t, chunks[0], "ORDER_00003")
}

func TestOrdersReportChunksAtRecordBoundaries(t *testing.T) {
	snap := makeSnapshot(60)
	chunks := buildOrdersReport(snap, maxMessageLen)
	assert.Greater(t, len(chunks), 1)

	joined := strings.Join(chunks, "")
	for i := 1; i <= 60; i++ {
		assert.Contains(t, joined, fmt.Sprintf("ORDER_%05d", i))
	}
	for _, chunk := range chunks {
		assert.LessOrEqual(t, len(chunk), maxMessageLen)
	}
	// Later chunks begin with a whole record, never a torn one.
	for _, chunk := range chunks[1:] {
		assert.True(t, strings.HasPrefix(chunk, "\n🆔 ORDER_"))
	}
}

func TestOrdersReportSortedByID(t *testing.T) {
	snap := makeSnapshot(9)
	chunks := buildOrdersReport(snap, maxMessageLen)
	joined := strings.Join(chunks, "")

	prev := -1
	for i := 1; i <= 9; i++ {
		idx := strings.Index(joined, fmt.Sprintf("ORDER_%05d", i))
		assert.Greater(t, idx, prev)
		prev = idx
	}
}
