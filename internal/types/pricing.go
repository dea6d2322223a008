package types

import (
	ierr "github.com/cartology/tripquote/internal/errors"
	"github.com/samber/lo"
)

// PricingModel defines how line item unit amounts are entered and derived.
// NETT: the agent enters their cost and a markup percentage on top.
// GROSS: the agent enters the client-facing price and a commission percentage
// that is backed out of it.
//
// The model is chosen once at quote setup, before any line items exist, and is
// never switched on an existing quote.
type PricingModel string

const (
	PricingModelNett  PricingModel = "nett"
	PricingModelGross PricingModel = "gross"
)

func (m PricingModel) String() string {
	return string(m)
}

func (m PricingModel) Validate() error {
	allowed := []PricingModel{
		PricingModelNett,
		PricingModelGross,
	}
	if !lo.Contains(allowed, m) {
		return ierr.NewError("invalid pricing model").
			WithHint("Please provide a valid pricing model").
			WithReportableDetails(map[string]any{
				"allowed": allowed,
			}).
			Mark(ierr.ErrValidation)
	}
	return nil
}

// CreditCardFeeInclusion controls whether the credit card fee is part of the
// amount the client is asked to pay, or disclosed but collected out of band.
type CreditCardFeeInclusion string

const (
	CreditCardFeeIncluded CreditCardFeeInclusion = "included"
	CreditCardFeeSeparate CreditCardFeeInclusion = "separate"
)

func (i CreditCardFeeInclusion) String() string {
	return string(i)
}

func (i CreditCardFeeInclusion) Validate() error {
	allowed := []CreditCardFeeInclusion{
		CreditCardFeeIncluded,
		CreditCardFeeSeparate,
	}
	if !lo.Contains(allowed, i) {
		return ierr.NewError("invalid credit card fee inclusion").
			WithHint("Please provide a valid credit card fee inclusion").
			WithReportableDetails(map[string]any{
				"allowed": allowed,
			}).
			Mark(ierr.ErrValidation)
	}
	return nil
}

// DepositKind selects how the deposit value is interpreted: a fixed amount in
// client currency, or a percentage of the grand total.
type DepositKind string

const (
	DepositKindAmount     DepositKind = "amount"
	DepositKindPercentage DepositKind = "percentage"
)

func (k DepositKind) String() string {
	return string(k)
}

func (k DepositKind) Validate() error {
	allowed := []DepositKind{
		DepositKindAmount,
		DepositKindPercentage,
	}
	if !lo.Contains(allowed, k) {
		return ierr.NewError("invalid deposit kind").
			WithHint("Please provide a valid deposit kind").
			WithReportableDetails(map[string]any{
				"allowed": allowed,
			}).
			Mark(ierr.ErrValidation)
	}
	return nil
}

// DisplayMode controls how line items appear on the rendered document.
// DETAILED emits one row per line item; SUMMARY collapses all items into a
// single free-text row carrying only the grand total.
type DisplayMode string

const (
	DisplayModeDetailed DisplayMode = "detailed"
	DisplayModeSummary  DisplayMode = "summary"
)

func (m DisplayMode) String() string {
	return string(m)
}

func (m DisplayMode) Validate() error {
	allowed := []DisplayMode{
		DisplayModeDetailed,
		DisplayModeSummary,
	}
	if !lo.Contains(allowed, m) {
		return ierr.NewError("invalid display mode").
			WithHint("Please provide a valid display mode").
			WithReportableDetails(map[string]any{
				"allowed": allowed,
			}).
			Mark(ierr.ErrValidation)
	}
	return nil
}
