package format

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPrice(t *testing.T) {
	tests := []struct {
		name     string
		amount   float64
		currency string
		expected string
	}{
		{"grouping", 1234.56, "USD", "USD 1,234.56"},
		{"rounds to cents", 199.999, "USD", "USD 200.00"},
		{"small amount", 7.5, "EUR", "EUR 7.50"},
		{"zero", 0, "USD", "USD 0.00"},
		{"millions", 1250000, "IDR", "IDR 1,250,000.00"},
		{"lower case code", 10, "usd", "USD 10.00"},
		{"unknown code kept", 10, "XYZ1", "XYZ1 10.00"},
		{"no code", 2500, "", "2,500.00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Price(tt.amount, tt.currency))
		})
	}
}
