package flow

import (
	"sort"

	"github.com/SummitSummer/zzxc/orders"
)

// maxMessageLen is the Telegram message length we keep listings under.
const maxMessageLen = 4000

// buildOrdersReport renders the admin listing and splits it into
// messages no longer than limit characters. Splits happen only at record
// boundaries; a record never straddles two messages. Orders are sorted
// by id so consecutive listings stay comparable.
func buildOrdersReport(snapshot map[int64]orders.Order, limit int) []string {
	if len(snapshot) == 0 {
		return nil
	}
	if limit <= 0 {
		limit = maxMessageLen
	}

	list := make([]orders.Order, 0, len(snapshot))
	for _, o := range snapshot {
		list = append(list, o)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].ID < list[j].ID })

	var chunks []string
	current := ordersHeaderText
	for _, o := range list {
		record := orderRecordText(o)
		if len(current)+len(record) > limit {
			chunks = append(chunks, current)
			current = record
			continue
		}
		current += record
	}
	if current != "" {
		chunks = append(chunks, current)
	}
	return chunks
}
