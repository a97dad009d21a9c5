package currency

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestFormatPrice(t *testing.T) {
	tests := []struct {
		amount   string
		expected string
	}{
		{"19.90", "R$ 19,90"},
		{"199.00", "R$ 199,00"},
		{"0", "R$ 0,00"},
		{"1234.56", "R$ 1.234,56"},
		{"649.70", "R$ 649,70"},
	}

	for _, tt := range tests {
		got := FormatPrice(decimal.RequireFromString(tt.amount))
		assert.Equal(t, tt.expected, got, "amount %s", tt.amount)
	}
}
