package invoice

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatINR(t *testing.T) {
	tests := []struct {
		amount float64
		want   string
	}{
		{0, "₹ 0.00"},
		{1, "₹ 1.00"},
		{99.9, "₹ 99.90"},
		{100, "₹ 100.00"},
		{999, "₹ 999.00"},
		{1000, "₹ 1,000.00"},
		{1234.5, "₹ 1,234.50"},
		{99999, "₹ 99,999.00"},
		{100000, "₹ 1,00,000.00"},
		{123456.789, "₹ 1,23,456.79"},
		{1234567.89, "₹ 12,34,567.89"},
		{10000000, "₹ 1,00,00,000.00"},
		{123456789.01, "₹ 12,34,56,789.01"},
		{-1234.5, "₹ -1,234.50"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatINR(tt.amount), "amount %v", tt.amount)
	}
}
