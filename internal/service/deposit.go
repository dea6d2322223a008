package service

import (
	"github.com/cartology/tripquote/internal/domain/quote"
	"github.com/cartology/tripquote/internal/types"
	"github.com/shopspring/decimal"
)

// DepositBreakdown is the split of the grand total into an upfront deposit
// and the remaining balance, both in client currency.
type DepositBreakdown struct {
	DepositDue decimal.Decimal `json:"deposit_due"`
	BalanceDue decimal.Decimal `json:"balance_due"`

	// Applies is false when the deposit is zero or negative, in which case
	// the deposit/balance rows are omitted from the document entirely.
	Applies bool `json:"applies"`

	// ExceedsTotal flags a fixed-amount deposit larger than the grand total.
	// The split is deliberately not clamped; the negative balance is allowed
	// but surfaced so UIs and exports can call it out.
	ExceedsTotal bool `json:"exceeds_total"`
}

// DepositService derives the deposit/balance split from a deposit spec and
// the client-currency grand total.
type DepositService interface {
	ComputeDeposit(spec quote.DepositSpec, grandTotalClient decimal.Decimal) (*DepositBreakdown, error)
}

type depositService struct {
	ServiceParams
}

func NewDepositService(params ServiceParams) DepositService {
	return &depositService{ServiceParams: params}
}

func (s *depositService) ComputeDeposit(spec quote.DepositSpec, grandTotalClient decimal.Decimal) (*DepositBreakdown, error) {
	if err := spec.Validate(); err != nil {
		return nil, err
	}

	var deposit decimal.Decimal
	switch spec.Kind {
	case types.DepositKindAmount:
		deposit = spec.Value
	case types.DepositKindPercentage:
		deposit = grandTotalClient.Mul(spec.Value.Div(hundred))
	}

	return &DepositBreakdown{
		DepositDue:   deposit,
		BalanceDue:   grandTotalClient.Sub(deposit),
		Applies:      deposit.IsPositive(),
		ExceedsTotal: deposit.GreaterThan(grandTotalClient),
	}, nil
}
