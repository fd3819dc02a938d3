package orders

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLinkBuilderURL(t *testing.T) {
	b := NewLinkBuilder("")
	url := b.URL("ORDER_00001", 370)
	assert.Equal(t, "https://payment-gateway.example.com/pay?order_id=ORDER_00001&amount=370", url)

	// Deterministic: same input, same link.
	assert.Equal(t, url, b.URL("ORDER_00001", 370))
}

func TestLinkBuilderTrimsTrailingSlash(t *testing.T) {
	b := NewLinkBuilder("https://gw.example.org/")
	assert.Equal(t, "https://gw.example.org/pay?order_id=ORDER_00002&amount=150", b.URL("ORDER_00002", 150))
}
