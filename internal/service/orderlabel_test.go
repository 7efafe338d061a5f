package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseOrderDescription(t *testing.T) {
	cases := []struct {
		name        string
		description string
		quantity    int
		wantBase    string
		wantQty     int
	}{
		{"plain", "Brahma", 1, "Brahma", 1},
		{"zero quantity defaults", "Brahma", 0, "Brahma", 1},
		{"structured quantity", "Brahma", 3, "Brahma", 3},
		{"legacy suffix", "Suco de laranja x3", 1, "Suco de laranja", 3},
		{"legacy suffix with space", "Brahma x 2", 1, "Brahma", 2},
		{"legacy uppercase", "Brahma X4", 1, "Brahma", 4},
		{"suffix wins over field", "Brahma x5", 2, "Brahma", 5},
		{"x inside word is not a suffix", "Caixa", 1, "Caixa", 1},
		{"trailing whitespace", "  Brahma x2  ", 1, "Brahma", 2},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			base, qty := ParseOrderDescription(tc.description, tc.quantity)
			assert.Equal(t, tc.wantBase, base)
			assert.Equal(t, tc.wantQty, qty)
		})
	}
}

func TestOrderLabel(t *testing.T) {
	assert.Equal(t, "Brahma", OrderLabel("Brahma", 1))
	assert.Equal(t, "Brahma x3", OrderLabel("Brahma", 3))
	assert.Equal(t, "Suco de laranja x3", OrderLabel("Suco de laranja x3", 1), "legacy suffix round-trips")
	assert.Equal(t, "Brahma x2", OrderLabel("Brahma x 2", 0))
}
