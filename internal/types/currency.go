package types

import (
	"strings"

	"github.com/samber/lo"
	"github.com/shopspring/decimal"
)

// Currency is one entry of the fixed currency catalog. The catalog is
// statically known and not configurable at runtime.
type Currency struct {
	Code        string `json:"code"`
	Symbol      string `json:"symbol"`
	DisplayName string `json:"display_name"`
}

// Currencies is the fixed catalog, in display order. The first entry is the
// fallback for unknown codes.
var Currencies = []Currency{
	{Code: "USD", Symbol: "$", DisplayName: "US Dollar"},
	{Code: "EUR", Symbol: "€", DisplayName: "Euro"},
	{Code: "GBP", Symbol: "£", DisplayName: "British Pound"},
	{Code: "JPY", Symbol: "¥", DisplayName: "Japanese Yen"},
	{Code: "AUD", Symbol: "A$", DisplayName: "Australian Dollar"},
	{Code: "CAD", Symbol: "C$", DisplayName: "Canadian Dollar"},
	{Code: "CHF", Symbol: "CHF", DisplayName: "Swiss Franc"},
	{Code: "CNY", Symbol: "¥", DisplayName: "Chinese Yuan"},
	{Code: "NZD", Symbol: "NZ$", DisplayName: "New Zealand Dollar"},
	{Code: "ZAR", Symbol: "R", DisplayName: "South African Rand"},
}

// zero-decimal currencies are formatted without a fractional part
var zeroDecimalCurrencies = []string{"JPY"}

// GetCurrency returns the catalog entry for a given ISO-4217 code.
// Unknown codes fall back to the default entry (USD).
func GetCurrency(code string) Currency {
	cur, ok := lo.Find(Currencies, func(c Currency) bool {
		return c.Code == strings.ToUpper(code)
	})
	if !ok {
		return Currencies[0]
	}
	return cur
}

// Exponent returns the number of fractional digits for the currency.
func (c Currency) Exponent() int32 {
	if lo.Contains(zeroDecimalCurrencies, c.Code) {
		return 0
	}
	return 2
}

// FormatAmount renders a monetary amount in the currency's symbol convention,
// e.g. €1,234.56 or ¥1,235. Renderers receive money only in this form.
func (c Currency) FormatAmount(amount decimal.Decimal) string {
	fixed := amount.Abs().StringFixed(c.Exponent())

	intPart := fixed
	fracPart := ""
	if idx := strings.IndexByte(fixed, '.'); idx >= 0 {
		intPart, fracPart = fixed[:idx], fixed[idx:]
	}

	var b strings.Builder
	if amount.IsNegative() {
		b.WriteByte('-')
	}
	b.WriteString(c.Symbol)
	for i, digit := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(digit)
	}
	b.WriteString(fracPart)
	return b.String()
}

// FormatAmount formats an amount using the catalog entry for code.
func FormatAmount(amount decimal.Decimal, code string) string {
	return GetCurrency(code).FormatAmount(amount)
}
