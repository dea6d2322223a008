package quote

import (
	"testing"

	ierr "github.com/cartology/tripquote/internal/errors"
	"github.com/cartology/tripquote/internal/types"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLineItemDefaults(t *testing.T) {
	item := NewLineItem()
	assert.Equal(t, types.CategoryHotel, item.Category)
	assert.True(t, item.Quantity.Equal(decimal.NewFromInt(1)))
	assert.True(t, item.MarginPercent.Equal(decimal.NewFromInt(20)))
	assert.NotEmpty(t, item.ID)
}

func TestDeriveUnderNettPricing(t *testing.T) {
	item := NewLineItem()

	item, err := item.DeriveUnitAmounts(types.PricingModelNett, EditFieldCostBasis, decimal.NewFromInt(100))
	require.NoError(t, err)

	assert.True(t, item.PriceBasisUnitAmount.Equal(decimal.NewFromInt(120)),
		"got %s", item.PriceBasisUnitAmount.String())

	item, err = item.DeriveUnitAmounts(types.PricingModelNett, EditFieldMargin, decimal.NewFromInt(50))
	require.NoError(t, err)
	assert.True(t, item.PriceBasisUnitAmount.Equal(decimal.NewFromInt(150)))
	assert.True(t, item.CostBasisUnitAmount.Equal(decimal.NewFromInt(100)))
}

func TestDeriveUnderGrossPricing(t *testing.T) {
	item := NewLineItem()

	item, err := item.DeriveUnitAmounts(types.PricingModelGross, EditFieldPriceBasis, decimal.NewFromInt(120))
	require.NoError(t, err)

	assert.True(t, item.CostBasisUnitAmount.Equal(decimal.NewFromInt(100)),
		"got %s", item.CostBasisUnitAmount.String())
	assert.True(t, item.PriceBasisUnitAmount.Equal(decimal.NewFromInt(120)))
}

func TestRoundTripKeepsInvariant(t *testing.T) {
	// editing cost under nett then re-reading the derived price must land on
	// price = cost × (1 + margin/100) exactly
	item := NewLineItem()
	item, err := item.DeriveUnitAmounts(types.PricingModelNett, EditFieldMargin, decimal.RequireFromString("17.5"))
	require.NoError(t, err)
	item, err = item.DeriveUnitAmounts(types.PricingModelNett, EditFieldCostBasis, decimal.RequireFromString("243.80"))
	require.NoError(t, err)

	expected := decimal.RequireFromString("243.80").
		Mul(decimal.RequireFromString("1.175"))
	assert.True(t, item.PriceBasisUnitAmount.Equal(expected),
		"got %s want %s", item.PriceBasisUnitAmount.String(), expected.String())
}

func TestCrossModeEditsRejected(t *testing.T) {
	item := NewLineItem()

	_, err := item.DeriveUnitAmounts(types.PricingModelNett, EditFieldPriceBasis, decimal.NewFromInt(120))
	require.Error(t, err)
	assert.True(t, ierr.Is(err, ierr.ErrInvalidOperation))

	_, err = item.DeriveUnitAmounts(types.PricingModelGross, EditFieldCostBasis, decimal.NewFromInt(100))
	require.Error(t, err)
	assert.True(t, ierr.Is(err, ierr.ErrInvalidOperation))
}

func TestFullCommissionRejected(t *testing.T) {
	item := NewLineItem()
	item, err := item.DeriveUnitAmounts(types.PricingModelGross, EditFieldPriceBasis, decimal.NewFromInt(120))
	require.NoError(t, err)

	// -100% commission would divide by zero when deriving the cost
	_, err = item.DeriveUnitAmounts(types.PricingModelGross, EditFieldMargin, decimal.NewFromInt(-100))
	require.Error(t, err)
	assert.True(t, ierr.IsValidation(err))
}

func TestQuantityMustBePositive(t *testing.T) {
	item := NewLineItem()

	for _, qty := range []int64{0, -1} {
		_, err := item.DeriveUnitAmounts(types.PricingModelNett, EditFieldQuantity, decimal.NewFromInt(qty))
		require.Error(t, err)
		assert.True(t, ierr.IsValidation(err))
	}
}

func TestValidate(t *testing.T) {
	testCases := []struct {
		name        string
		mutate      func(*LineItem)
		expectError bool
	}{
		{
			name:   "defaults_are_valid",
			mutate: func(li *LineItem) {},
		},
		{
			name: "negative_quantity",
			mutate: func(li *LineItem) {
				li.Quantity = decimal.NewFromInt(-2)
			},
			expectError: true,
		},
		{
			name: "margin_below_minus_hundred",
			mutate: func(li *LineItem) {
				li.MarginPercent = decimal.NewFromInt(-150)
			},
			expectError: true,
		},
		{
			name: "negative_derived_cost",
			mutate: func(li *LineItem) {
				li.CostBasisUnitAmount = decimal.NewFromInt(-10)
			},
			expectError: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			item := NewLineItem()
			tc.mutate(&item)
			err := item.Validate()
			if tc.expectError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestLineTotalBase(t *testing.T) {
	item := NewLineItem()
	item.CostBasisUnitAmount = decimal.NewFromInt(100)
	item.Quantity = decimal.NewFromInt(3)

	assert.True(t, item.LineTotalBase().Equal(decimal.NewFromInt(360)),
		"got %s", item.LineTotalBase().String())
}
