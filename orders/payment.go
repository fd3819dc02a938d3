package orders

import (
	"fmt"
	"strings"
)

// DefaultPaymentBase is the synthetic payment gateway used when the
// config does not supply one.
const DefaultPaymentBase = "https://payment-gateway.example.com"

// LinkBuilder produces deterministic payment URLs for orders.
type LinkBuilder struct {
	base string
}

// NewLinkBuilder normalizes the gateway base URL.
func NewLinkBuilder(base string) *LinkBuilder {
	base = strings.TrimSpace(base)
	if base == "" {
		base = DefaultPaymentBase
	}
	return &LinkBuilder{base: strings.TrimRight(base, "/")}
}

// URL builds the payment link for an order id and amount.
// The same id and amount always produce the same URL.
func (b *LinkBuilder) URL(orderID string, amount int) string {
	return fmt.Sprintf("%s/pay?order_id=%s&amount=%d", b.base, orderID, amount)
}
