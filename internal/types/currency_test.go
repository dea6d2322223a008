package types

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestGetCurrency(t *testing.T) {
	assert.Equal(t, "€", GetCurrency("EUR").Symbol)
	assert.Equal(t, "£", GetCurrency("gbp").Symbol)

	// unknown codes fall back to the default entry
	assert.Equal(t, "USD", GetCurrency("XXX").Code)
	assert.Equal(t, "USD", GetCurrency("").Code)
}

func TestFormatAmount(t *testing.T) {
	testCases := []struct {
		name     string
		code     string
		amount   string
		expected string
	}{
		{"plain", "EUR", "1234.56", "€1,234.56"},
		{"padded_fraction", "GBP", "292.9", "£292.90"},
		{"negative", "EUR", "-90.51", "-€90.51"},
		{"millions", "USD", "1234567.891", "$1,234,567.89"},
		{"zero", "GBP", "0", "£0.00"},
		{"zero_decimal_currency", "JPY", "1234.5", "¥1,235"},
		{"small", "USD", "999.99", "$999.99"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := FormatAmount(decimal.RequireFromString(tc.amount), tc.code)
			assert.Equal(t, tc.expected, got)
		})
	}
}

func TestExponent(t *testing.T) {
	assert.Equal(t, int32(2), GetCurrency("GBP").Exponent())
	assert.Equal(t, int32(0), GetCurrency("JPY").Exponent())
}
