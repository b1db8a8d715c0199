package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPriceLabel(t *testing.T) {
	tests := []struct {
		price    string
		expected string
	}{
		{"199", "₽199"},
		{"249", "₽249"},
		{"1 299.90", "₽1 299.90"},
		{"", "₽"},
	}

	for _, tt := range tests {
		t.Run(tt.price, func(t *testing.T) {
			assert.Equal(t, tt.expected, PriceLabel(tt.price))
		})
	}
}
