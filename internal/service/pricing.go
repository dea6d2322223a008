package service

import (
	"github.com/cartology/tripquote/internal/domain/quote"
	"github.com/cartology/tripquote/internal/types"
	"github.com/shopspring/decimal"
)

// ffiFeeRate is the fixed 1% UK travel-package levy applied to items plus
// other fees. It never applies to itself or to the credit card fee.
var ffiFeeRate = decimal.NewFromFloat(0.01)

var hundred = decimal.NewFromInt(100)

// Totals is the full settlement breakdown for one quote, carried in both the
// base currency the agency prices in and the currency the client pays in.
type Totals struct {
	BaseCurrency   types.Currency `json:"base_currency"`
	ClientCurrency types.Currency `json:"client_currency"`

	// base currency
	ItemsCostBase        decimal.Decimal `json:"items_cost_base"`
	ItemsMarkupBase      decimal.Decimal `json:"items_markup_base"`
	ItemsTotalBase       decimal.Decimal `json:"items_total_base"`
	OtherFeesBase        decimal.Decimal `json:"other_fees_base"`
	FFIFeeBase           decimal.Decimal `json:"ffi_fee_base"`
	SubtotalBeforeCCBase decimal.Decimal `json:"subtotal_before_cc_base"`
	CCFeeBase            decimal.Decimal `json:"cc_fee_base"`
	GrandTotalBase       decimal.Decimal `json:"grand_total_base"`

	// client currency, converted at Rate
	OtherFees  decimal.Decimal `json:"other_fees"`
	FFIFee     decimal.Decimal `json:"ffi_fee"`
	CCFee      decimal.Decimal `json:"cc_fee"`
	GrandTotal decimal.Decimal `json:"grand_total"`

	Rate decimal.Decimal `json:"rate"`
}

// PricingService aggregates line items and fee configuration into a single
// settlement total. ComputeTotals is a pure function of its inputs: no I/O,
// no internal state, safe for repeated and concurrent calls.
type PricingService interface {
	ComputeTotals(items []quote.LineItem, fees quote.FeeConfig, settings quote.CurrencySettings) (*Totals, error)
}

type pricingService struct {
	ServiceParams
}

func NewPricingService(params ServiceParams) PricingService {
	return &pricingService{ServiceParams: params}
}

// ComputeTotals runs the settlement in a fixed operation order:
//
//  1. sum of nett costs over all items
//  2. sum of markups over all items
//  3. items total = cost + markup
//  4. FFI fee = 1% of (items total + other fees) when the UK package flag is
//     set; the levy never compounds on the credit card fee
//  5. subtotal before credit card fee
//  6. credit card fee on that subtotal (always computed; disclosure is
//     needed even when charged separately)
//  7. grand total includes the credit card fee only in "included" mode
//  8. client-currency conversion at the effective rate
//
// Bad numeric input (negative quantity, margin at or below -100, non-positive
// exchange rate) fails fast before any arithmetic runs.
func (s *pricingService) ComputeTotals(items []quote.LineItem, fees quote.FeeConfig, settings quote.CurrencySettings) (*Totals, error) {
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return nil, err
		}
	}
	if err := fees.Validate(); err != nil {
		return nil, err
	}
	if err := settings.Validate(); err != nil {
		return nil, err
	}

	itemsCost := decimal.Zero
	itemsMarkup := decimal.Zero
	for _, item := range items {
		cost := item.CostBasisUnitAmount.Mul(item.Quantity)
		itemsCost = itemsCost.Add(cost)
		itemsMarkup = itemsMarkup.Add(cost.Mul(item.MarginPercent.Div(hundred)))
	}
	itemsTotal := itemsCost.Add(itemsMarkup)

	ffiFee := decimal.Zero
	if fees.UKPackageSurcharge {
		ffiFee = itemsTotal.Add(fees.OtherFeesAmount).Mul(ffiFeeRate)
	}

	subtotalBeforeCC := itemsTotal.Add(fees.OtherFeesAmount).Add(ffiFee)
	ccFee := subtotalBeforeCC.Mul(fees.CreditCardFeePercent.Div(hundred))

	grandTotal := subtotalBeforeCC
	if fees.CreditCardFeeInclusion == types.CreditCardFeeIncluded {
		grandTotal = subtotalBeforeCC.Add(ccFee)
	}

	rate := settings.EffectiveRate()

	return &Totals{
		BaseCurrency:         types.GetCurrency(settings.BaseCurrencyCode),
		ClientCurrency:       types.GetCurrency(settings.ClientCurrencyCode),
		ItemsCostBase:        itemsCost,
		ItemsMarkupBase:      itemsMarkup,
		ItemsTotalBase:       itemsTotal,
		OtherFeesBase:        fees.OtherFeesAmount,
		FFIFeeBase:           ffiFee,
		SubtotalBeforeCCBase: subtotalBeforeCC,
		CCFeeBase:            ccFee,
		GrandTotalBase:       grandTotal,
		OtherFees:            fees.OtherFeesAmount.Mul(rate),
		FFIFee:               ffiFee.Mul(rate),
		CCFee:                ccFee.Mul(rate),
		GrandTotal:           grandTotal.Mul(rate),
		Rate:                 rate,
	}, nil
}
