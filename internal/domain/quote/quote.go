package quote

import (
	"time"

	ierr "github.com/cartology/tripquote/internal/errors"
	"github.com/cartology/tripquote/internal/types"
	"github.com/shopspring/decimal"
)

// FeeConfig holds the quote-level fee rules.
type FeeConfig struct {
	CreditCardFeePercent   decimal.Decimal              `json:"credit_card_fee_percent"`
	OtherFeesAmount        decimal.Decimal              `json:"other_fees_amount"`
	UKPackageSurcharge     bool                         `json:"uk_package_surcharge"`
	CreditCardFeeInclusion types.CreditCardFeeInclusion `json:"credit_card_fee_inclusion"`
}

func (f FeeConfig) Validate() error {
	if err := f.CreditCardFeeInclusion.Validate(); err != nil {
		return err
	}
	if f.CreditCardFeePercent.IsNegative() {
		return ierr.NewError("credit card fee percent must be non negative").
			WithHint("Credit card fee percent must be non negative").
			Mark(ierr.ErrValidation)
	}
	if f.OtherFeesAmount.IsNegative() {
		return ierr.NewError("other fees amount must be non negative").
			WithHint("Other fees amount must be non negative").
			Mark(ierr.ErrValidation)
	}
	return nil
}

// CurrencySettings holds the conversion between the agency's base currency
// (in which costs and fees are entered) and the currency the client is
// invoiced in. ExchangeRate means "1 unit of base = ExchangeRate units of
// client"; it is ignored and treated as 1 whenever the two codes match.
type CurrencySettings struct {
	BaseCurrencyCode   string          `json:"base_currency_code"`
	ClientCurrencyCode string          `json:"client_currency_code"`
	ExchangeRate       decimal.Decimal `json:"exchange_rate"`
}

// EffectiveRate returns the rate actually applied to conversions.
func (c CurrencySettings) EffectiveRate() decimal.Decimal {
	if c.BaseCurrencyCode == c.ClientCurrencyCode {
		return decimal.NewFromInt(1)
	}
	return c.ExchangeRate
}

func (c CurrencySettings) Validate() error {
	// same-currency quotes never consult the stored rate
	if c.BaseCurrencyCode == c.ClientCurrencyCode {
		return nil
	}
	if !c.ExchangeRate.IsPositive() {
		return ierr.NewError("exchange rate must be positive").
			WithHint("Exchange rate must be greater than zero").
			WithReportableDetails(map[string]any{
				"exchange_rate": c.ExchangeRate.String(),
			}).
			Mark(ierr.ErrValidation)
	}
	return nil
}

// QuoteMeta is purely descriptive and has zero calculation effect.
type QuoteMeta struct {
	Number    string     `json:"number"`
	IssueDate time.Time  `json:"issue_date"`
	DueDate   *time.Time `json:"due_date,omitempty"`
}

// NewQuoteMeta returns meta with a generated quote number and today's date.
func NewQuoteMeta() QuoteMeta {
	return QuoteMeta{
		Number:    types.GenerateQuoteNumber(),
		IssueDate: time.Now().UTC(),
	}
}

// DepositSpec describes how the grand total is split into deposit and
// balance. Value is a client-currency amount when Kind is amount, or a
// percentage of the grand total when Kind is percentage.
type DepositSpec struct {
	Kind  types.DepositKind `json:"kind"`
	Value decimal.Decimal   `json:"value"`
}

func (d DepositSpec) Validate() error {
	if err := d.Kind.Validate(); err != nil {
		return err
	}
	if d.Value.IsNegative() {
		return ierr.NewError("deposit value must be non negative").
			WithHint("Deposit value must be non negative").
			Mark(ierr.ErrValidation)
	}
	return nil
}

// ClientDetails is the billed-to block of the document.
type ClientDetails struct {
	Name    string `json:"name"`
	Company string `json:"company,omitempty"`
	Email   string `json:"email,omitempty"`
}

// SetupData is produced once on the setup screen and treated as read-only
// configuration for the life of the quote.
type SetupData struct {
	PricingModel  types.PricingModel `json:"pricing_model"`
	ClientID      string             `json:"client_id"`
	ClientDetails ClientDetails      `json:"client_details"`
}

func (s SetupData) Validate() error {
	return s.PricingModel.Validate()
}

// Quote is the full in-memory state of one payment request. It is never
// persisted; every total and document is recomputed from this snapshot.
type Quote struct {
	ID           string            `json:"id"`
	Setup        SetupData         `json:"setup"`
	Items        []LineItem        `json:"items"`
	Fees         FeeConfig         `json:"fees"`
	Currency     CurrencySettings  `json:"currency"`
	Meta         QuoteMeta         `json:"meta"`
	Deposit      DepositSpec       `json:"deposit"`
	DisplayMode  types.DisplayMode `json:"display_mode"`
	SummaryNotes string            `json:"summary_notes,omitempty"`
	BankDetails  string            `json:"bank_details,omitempty"`
	LogoRef      string            `json:"logo_ref,omitempty"`
}

func (q *Quote) Validate() error {
	if err := q.Setup.Validate(); err != nil {
		return err
	}
	if err := q.DisplayMode.Validate(); err != nil {
		return err
	}
	for _, item := range q.Items {
		if err := item.Validate(); err != nil {
			return err
		}
	}
	if err := q.Fees.Validate(); err != nil {
		return err
	}
	if err := q.Currency.Validate(); err != nil {
		return err
	}
	return q.Deposit.Validate()
}
