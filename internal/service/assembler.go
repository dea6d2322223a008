package service

import (
	"fmt"

	"github.com/cartology/tripquote/internal/domain/directory"
	"github.com/cartology/tripquote/internal/domain/document"
	"github.com/cartology/tripquote/internal/domain/quote"
	"github.com/cartology/tripquote/internal/types"
)

const documentTitle = "Payment Request"

// AssemblerService combines quote state, computed totals and the deposit
// split into an abstract invoice document. The document is independent of any
// rendering target and carries money only as pre-formatted client-currency
// strings.
type AssemblerService interface {
	Assemble(q *quote.Quote, totals *Totals, deposit *DepositBreakdown, dir *directory.Directory) (*document.InvoiceDocument, error)
}

type assemblerService struct {
	ServiceParams
}

func NewAssemblerService(params ServiceParams) AssemblerService {
	return &assemblerService{ServiceParams: params}
}

func (s *assemblerService) Assemble(q *quote.Quote, totals *Totals, deposit *DepositBreakdown, dir *directory.Directory) (*document.InvoiceDocument, error) {
	if err := q.DisplayMode.Validate(); err != nil {
		return nil, err
	}

	clientCur := totals.ClientCurrency

	logoRef := q.LogoRef
	if logoRef == "" {
		logoRef = s.Config.Branding.LogoURL
	}

	doc := &document.InvoiceDocument{
		Header: document.Header{
			LogoRef:   logoRef,
			Title:     documentTitle,
			Number:    q.Meta.Number,
			IssueDate: q.Meta.IssueDate,
			DueDate:   q.Meta.DueDate,
		},
		BilledTo: document.BilledTo{
			Name:    q.Setup.ClientDetails.Name,
			Company: q.Setup.ClientDetails.Company,
		},
		PaymentInstructions: q.BankDetails,
	}

	switch q.DisplayMode {
	case types.DisplayModeDetailed:
		for _, item := range q.Items {
			doc.Rows = append(doc.Rows, document.NewLineItemRow(s.lineItemRow(item, totals, dir)))
		}
	case types.DisplayModeSummary:
		doc.Rows = append(doc.Rows, document.NewSummaryRow(document.SummaryRow{
			Notes:       q.SummaryNotes,
			TotalClient: clientCur.FormatAmount(totals.GrandTotal),
		}))
	}

	// fee rows follow the item rows in fixed order; a fee charged separately
	// must never appear as a line the client is asked to pay
	if totals.OtherFeesBase.IsPositive() {
		doc.Rows = append(doc.Rows, document.NewFeeRow(document.FeeRow{
			Label:        "Other Fees",
			AmountClient: clientCur.FormatAmount(totals.OtherFees),
		}))
	}
	if q.Fees.UKPackageSurcharge {
		doc.Rows = append(doc.Rows, document.NewFeeRow(document.FeeRow{
			Label:        "FFI Fee (1%)",
			AmountClient: clientCur.FormatAmount(totals.FFIFee),
		}))
	}
	if q.Fees.CreditCardFeeInclusion == types.CreditCardFeeIncluded && q.Fees.CreditCardFeePercent.IsPositive() {
		doc.Rows = append(doc.Rows, document.NewFeeRow(document.FeeRow{
			Label:        fmt.Sprintf("Credit Card Fee (%s%%)", q.Fees.CreditCardFeePercent.String()),
			AmountClient: clientCur.FormatAmount(totals.CCFee),
		}))
	}

	doc.Totals = document.Totals{
		GrandTotal: clientCur.FormatAmount(totals.GrandTotal),
	}
	if deposit != nil && deposit.Applies {
		doc.Totals.DepositDue = clientCur.FormatAmount(deposit.DepositDue)
		doc.Totals.BalanceDue = clientCur.FormatAmount(deposit.BalanceDue)
		doc.Totals.DepositExceedsTotal = deposit.ExceedsTotal
	}

	return doc, nil
}

func (s *assemblerService) lineItemRow(item quote.LineItem, totals *Totals, dir *directory.Directory) document.LineItemRow {
	clientCur := totals.ClientCurrency

	unitPriceClient := item.PriceBasisUnitAmount.Mul(totals.Rate)
	lineTotalClient := unitPriceClient.Mul(item.Quantity)

	supplierName := ""
	if dir != nil {
		supplierName = dir.SupplierName(item.SupplierRef)
	}

	return document.LineItemRow{
		Description:     item.Description,
		SupplierName:    supplierName,
		CategoryIconRef: item.Category.IconRef(),
		Quantity:        item.Quantity,
		UnitPriceClient: clientCur.FormatAmount(unitPriceClient),
		LineTotalClient: clientCur.FormatAmount(lineTotalClient),
	}
}
