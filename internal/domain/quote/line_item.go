package quote

import (
	ierr "github.com/cartology/tripquote/internal/errors"
	"github.com/cartology/tripquote/internal/types"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
)

var (
	hundred = decimal.NewFromInt(100)
	one     = decimal.NewFromInt(1)
)

// LineItem represents one priced travel service on a quote.
//
// Exactly one of the two unit amounts is authoritative depending on the
// pricing model: under nett pricing the agent enters CostBasisUnitAmount and
// MarginPercent and PriceBasisUnitAmount is derived; under gross pricing the
// agent enters PriceBasisUnitAmount and MarginPercent (read as commission)
// and CostBasisUnitAmount is derived. The invariant
//
//	price = cost × (1 + margin/100)
//
// holds for every item at every point in time.
type LineItem struct {
	ID                   string                `json:"id"`
	Category             types.ServiceCategory `json:"category"`
	SupplierRef          string                `json:"supplier_ref,omitempty"`
	Description          string                `json:"description"`
	Quantity             decimal.Decimal       `json:"quantity"`
	CostBasisUnitAmount  decimal.Decimal       `json:"cost_basis_unit_amount"`
	MarginPercent        decimal.Decimal       `json:"margin_percent"`
	PriceBasisUnitAmount decimal.Decimal       `json:"price_basis_unit_amount"`
}

// EditField identifies which line item field a mutation targets.
type EditField string

const (
	EditFieldQuantity   EditField = "quantity"
	EditFieldCostBasis  EditField = "cost_basis_unit_amount"
	EditFieldMargin     EditField = "margin_percent"
	EditFieldPriceBasis EditField = "price_basis_unit_amount"
)

func (f EditField) Validate() error {
	allowed := []EditField{
		EditFieldQuantity,
		EditFieldCostBasis,
		EditFieldMargin,
		EditFieldPriceBasis,
	}
	if !lo.Contains(allowed, f) {
		return ierr.NewError("invalid edit field").
			WithHint("Please provide a valid line item field").
			WithReportableDetails(map[string]any{
				"allowed": allowed,
			}).
			Mark(ierr.ErrValidation)
	}
	return nil
}

// NewLineItem returns a fresh line item with the builder defaults:
// quantity 1, hotel category, 20% margin.
func NewLineItem() LineItem {
	return LineItem{
		ID:            types.GenerateUUIDWithPrefix(types.UUID_PREFIX_LINE_ITEM),
		Category:      types.CategoryHotel,
		Quantity:      one,
		MarginPercent: decimal.NewFromInt(20),
	}
}

// DeriveUnitAmounts applies a single-field edit under the active pricing
// model and re-derives the dependent unit amount so the price/cost invariant
// keeps holding. It returns the updated item and never mutates the receiver;
// the caller owns the collection.
func (li LineItem) DeriveUnitAmounts(model types.PricingModel, field EditField, value decimal.Decimal) (LineItem, error) {
	if err := model.Validate(); err != nil {
		return li, err
	}
	if err := field.Validate(); err != nil {
		return li, err
	}

	updated := li

	switch field {
	case EditFieldQuantity:
		if !value.IsPositive() {
			return li, ierr.NewError("quantity must be positive").
				WithHint("Quantity must be greater than zero").
				WithReportableDetails(map[string]any{
					"quantity": value.String(),
				}).
				Mark(ierr.ErrValidation)
		}
		updated.Quantity = value
		return updated, nil

	case EditFieldCostBasis:
		if model != types.PricingModelNett {
			return li, ierr.NewError("cost basis is derived under gross pricing").
				WithHint("Edit the gross unit price or commission instead").
				Mark(ierr.ErrInvalidOperation)
		}
		updated.CostBasisUnitAmount = value

	case EditFieldPriceBasis:
		if model != types.PricingModelGross {
			return li, ierr.NewError("price basis is derived under nett pricing").
				WithHint("Edit the nett unit cost or markup instead").
				Mark(ierr.ErrInvalidOperation)
		}
		updated.PriceBasisUnitAmount = value

	case EditFieldMargin:
		updated.MarginPercent = value
	}

	if err := updated.derive(model); err != nil {
		return li, err
	}
	return updated, nil
}

// derive recomputes the non-authoritative unit amount for the given model.
func (li *LineItem) derive(model types.PricingModel) error {
	multiplier := one.Add(li.MarginPercent.Div(hundred))

	switch model {
	case types.PricingModelNett:
		li.PriceBasisUnitAmount = li.CostBasisUnitAmount.Mul(multiplier)
	case types.PricingModelGross:
		if multiplier.IsZero() {
			return ierr.NewError("commission of -100% is not allowed").
				WithHint("A commission of -100% would make the cost undefined").
				Mark(ierr.ErrValidation)
		}
		li.CostBasisUnitAmount = li.PriceBasisUnitAmount.Div(multiplier)
	}
	return nil
}

// LineTotalBase is the extended line total in base currency:
// cost × quantity × (1 + margin/100).
func (li LineItem) LineTotalBase() decimal.Decimal {
	return li.CostBasisUnitAmount.
		Mul(li.Quantity).
		Mul(one.Add(li.MarginPercent.Div(hundred)))
}

// Validate enforces the guards the pricing engine depends on. These are the
// only correctness-critical checks: the engine has no other defense against
// propagating a nonsense amount into a monetary total.
func (li LineItem) Validate() error {
	if li.Quantity.IsNegative() {
		return ierr.NewError("line item validation failed").
			WithHint("Quantity must be non negative").
			WithReportableDetails(map[string]any{
				"line_item_id": li.ID,
				"quantity":     li.Quantity.String(),
			}).
			Mark(ierr.ErrValidation)
	}

	// margin at or below -100% either zeroes the gross divisor or drives the
	// derived cost negative
	if li.MarginPercent.LessThanOrEqual(hundred.Neg()) {
		return ierr.NewError("line item validation failed").
			WithHint("Margin percent must be greater than -100").
			WithReportableDetails(map[string]any{
				"line_item_id":   li.ID,
				"margin_percent": li.MarginPercent.String(),
			}).
			Mark(ierr.ErrValidation)
	}

	if li.CostBasisUnitAmount.IsNegative() {
		return ierr.NewError("line item validation failed").
			WithHint("Derived cost must be non negative").
			WithReportableDetails(map[string]any{
				"line_item_id": li.ID,
			}).
			Mark(ierr.ErrValidation)
	}

	return nil
}
