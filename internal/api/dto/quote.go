package dto

import (
	"time"

	"github.com/cartology/tripquote/internal/domain/quote"
	ierr "github.com/cartology/tripquote/internal/errors"
	"github.com/cartology/tripquote/internal/types"
	"github.com/cartology/tripquote/internal/validator"
	"github.com/shopspring/decimal"
)

// LineItemRequest is one priced service row of the quote payload. Under nett
// pricing cost_basis_unit_amount and margin_percent are authoritative; under
// gross pricing price_basis_unit_amount and margin_percent are. The dependent
// amount is re-derived server side either way.
type LineItemRequest struct {
	ID                   string                `json:"id,omitempty"`
	Category             types.ServiceCategory `json:"category"`
	SupplierRef          string                `json:"supplier_ref,omitempty"`
	Description          string                `json:"description"`
	Quantity             decimal.Decimal       `json:"quantity"`
	CostBasisUnitAmount  decimal.Decimal       `json:"cost_basis_unit_amount"`
	MarginPercent        decimal.Decimal       `json:"margin_percent"`
	PriceBasisUnitAmount decimal.Decimal       `json:"price_basis_unit_amount"`
}

// SetupRequest is the read-only setup block chosen before the builder opens.
type SetupRequest struct {
	PricingModel  types.PricingModel `json:"pricing_model" validate:"required"`
	ClientID      string             `json:"client_id"`
	ClientName    string             `json:"client_name" validate:"required"`
	ClientCompany string             `json:"client_company,omitempty"`
	ClientEmail   string             `json:"client_email,omitempty"`
}

// FeeConfigRequest mirrors quote.FeeConfig.
type FeeConfigRequest struct {
	CreditCardFeePercent   decimal.Decimal              `json:"credit_card_fee_percent"`
	OtherFeesAmount        decimal.Decimal              `json:"other_fees_amount"`
	UKPackageSurcharge     bool                         `json:"uk_package_surcharge"`
	CreditCardFeeInclusion types.CreditCardFeeInclusion `json:"credit_card_fee_inclusion"`
}

// CurrencySettingsRequest mirrors quote.CurrencySettings.
type CurrencySettingsRequest struct {
	BaseCurrencyCode   string          `json:"base_currency_code" validate:"required"`
	ClientCurrencyCode string          `json:"client_currency_code" validate:"required"`
	ExchangeRate       decimal.Decimal `json:"exchange_rate"`
}

// QuoteMetaRequest mirrors quote.QuoteMeta; absent fields are defaulted.
type QuoteMetaRequest struct {
	Number    string     `json:"number,omitempty"`
	IssueDate *time.Time `json:"issue_date,omitempty"`
	DueDate   *time.Time `json:"due_date,omitempty"`
}

// DepositRequest mirrors quote.DepositSpec.
type DepositRequest struct {
	Kind  types.DepositKind `json:"kind"`
	Value decimal.Decimal   `json:"value"`
}

// QuoteRequest is the full quote snapshot sent by the builder UI for preview
// and export. The server holds no quote state between calls.
type QuoteRequest struct {
	Setup         SetupRequest            `json:"setup" validate:"required"`
	Items         []LineItemRequest       `json:"items"`
	Fees          FeeConfigRequest        `json:"fees"`
	Currency      CurrencySettingsRequest `json:"currency" validate:"required"`
	Meta          *QuoteMetaRequest       `json:"meta,omitempty"`
	Deposit       DepositRequest          `json:"deposit"`
	DisplayMode   types.DisplayMode       `json:"display_mode,omitempty"`
	SummaryNotes  string                  `json:"summary_notes,omitempty"`
	BankAccountID string                  `json:"bank_account_id,omitempty"`
	BankDetails   string                  `json:"bank_details,omitempty"`
	LogoRef       string                  `json:"logo_ref,omitempty"`
}

func (r *QuoteRequest) Validate() error {
	if err := validator.ValidateRequest(r); err != nil {
		return err
	}
	if err := r.Setup.PricingModel.Validate(); err != nil {
		return err
	}
	if r.DisplayMode != "" {
		if err := r.DisplayMode.Validate(); err != nil {
			return err
		}
	}
	if r.Fees.CreditCardFeeInclusion != "" {
		if err := r.Fees.CreditCardFeeInclusion.Validate(); err != nil {
			return err
		}
	}
	if r.Deposit.Kind != "" {
		if err := r.Deposit.Kind.Validate(); err != nil {
			return err
		}
	}
	for _, item := range r.Items {
		if item.Quantity.IsNegative() {
			return ierr.NewError("quantity must be positive").
				WithHint("Line item quantity must be greater than zero").
				WithReportableDetails(map[string]any{
					"line_item_id": item.ID,
					"quantity":     item.Quantity.String(),
				}).
				Mark(ierr.ErrValidation)
		}
	}
	return nil
}

// ToQuote converts the request into the domain snapshot, applying defaults
// and re-deriving the dependent unit amount on every line item.
func (r *QuoteRequest) ToQuote() (*quote.Quote, error) {
	model := r.Setup.PricingModel

	items := make([]quote.LineItem, 0, len(r.Items))
	for _, in := range r.Items {
		item, err := in.toLineItem(model)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	meta := quote.NewQuoteMeta()
	if r.Meta != nil {
		if r.Meta.Number != "" {
			meta.Number = r.Meta.Number
		}
		if r.Meta.IssueDate != nil {
			meta.IssueDate = *r.Meta.IssueDate
		}
		meta.DueDate = r.Meta.DueDate
	}

	displayMode := r.DisplayMode
	if displayMode == "" {
		displayMode = types.DisplayModeDetailed
	}

	inclusion := r.Fees.CreditCardFeeInclusion
	if inclusion == "" {
		inclusion = types.CreditCardFeeIncluded
	}

	depositKind := r.Deposit.Kind
	if depositKind == "" {
		depositKind = types.DepositKindAmount
	}

	bankDetails := r.BankDetails
	if bankDetails == "" && r.BankAccountID != "" {
		bankDetails = types.GetBankAccount(r.BankAccountID).Details
	}

	return &quote.Quote{
		ID: types.GenerateUUIDWithPrefix(types.UUID_PREFIX_QUOTE),
		Setup: quote.SetupData{
			PricingModel: model,
			ClientID:     r.Setup.ClientID,
			ClientDetails: quote.ClientDetails{
				Name:    r.Setup.ClientName,
				Company: r.Setup.ClientCompany,
				Email:   r.Setup.ClientEmail,
			},
		},
		Items: items,
		Fees: quote.FeeConfig{
			CreditCardFeePercent:   r.Fees.CreditCardFeePercent,
			OtherFeesAmount:        r.Fees.OtherFeesAmount,
			UKPackageSurcharge:     r.Fees.UKPackageSurcharge,
			CreditCardFeeInclusion: inclusion,
		},
		Currency: quote.CurrencySettings{
			BaseCurrencyCode:   r.Currency.BaseCurrencyCode,
			ClientCurrencyCode: r.Currency.ClientCurrencyCode,
			ExchangeRate:       r.Currency.ExchangeRate,
		},
		Meta: meta,
		Deposit: quote.DepositSpec{
			Kind:  depositKind,
			Value: r.Deposit.Value,
		},
		DisplayMode:  displayMode,
		SummaryNotes: r.SummaryNotes,
		BankDetails:  bankDetails,
		LogoRef:      r.LogoRef,
	}, nil
}

func (in LineItemRequest) toLineItem(model types.PricingModel) (quote.LineItem, error) {
	item := quote.NewLineItem()
	if in.ID != "" {
		item.ID = in.ID
	}
	if in.Category != "" {
		item.Category = in.Category
	}
	item.SupplierRef = in.SupplierRef
	item.Description = in.Description
	if !in.Quantity.IsZero() {
		var err error
		item, err = item.DeriveUnitAmounts(model, quote.EditFieldQuantity, in.Quantity)
		if err != nil {
			return item, err
		}
	}

	item, err := item.DeriveUnitAmounts(model, quote.EditFieldMargin, in.MarginPercent)
	if err != nil {
		return item, err
	}

	switch model {
	case types.PricingModelNett:
		return item.DeriveUnitAmounts(model, quote.EditFieldCostBasis, in.CostBasisUnitAmount)
	case types.PricingModelGross:
		return item.DeriveUnitAmounts(model, quote.EditFieldPriceBasis, in.PriceBasisUnitAmount)
	}
	return item, nil
}
