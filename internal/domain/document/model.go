package document

import (
	"time"

	"github.com/shopspring/decimal"
)

// InvoiceDocument is the renderer-agnostic payment request document. Every
// monetary field is pre-formatted in the client currency's symbol convention;
// renderers must never receive raw numbers to format themselves.
type InvoiceDocument struct {
	Header              Header      `json:"header"`
	BilledTo            BilledTo    `json:"billed_to"`
	Rows                []RenderRow `json:"rows"`
	Totals              Totals      `json:"totals"`
	PaymentInstructions string      `json:"payment_instructions,omitempty"`
}

// Header is the document masthead.
type Header struct {
	LogoRef   string     `json:"logo_ref,omitempty"`
	Title     string     `json:"title"`
	Number    string     `json:"number"`
	IssueDate time.Time  `json:"issue_date"`
	DueDate   *time.Time `json:"due_date,omitempty"`
}

// BilledTo identifies the client the document is addressed to.
type BilledTo struct {
	Name    string `json:"name"`
	Company string `json:"company,omitempty"`
}

// RowType tags the variant carried by a RenderRow.
type RowType string

const (
	RowTypeLineItem RowType = "line_item"
	RowTypeSummary  RowType = "summary"
	RowTypeFee      RowType = "fee"
)

// RenderRow is a tagged variant: exactly one of the payload pointers is set,
// matching Type. Rows are ordered: item or summary rows first in input order,
// then fee rows in fixed order (Other Fees, FFI, Credit Card Fee).
type RenderRow struct {
	Type     RowType      `json:"type"`
	LineItem *LineItemRow `json:"line_item,omitempty"`
	Summary  *SummaryRow  `json:"summary,omitempty"`
	Fee      *FeeRow      `json:"fee,omitempty"`
}

// LineItemRow is one priced service row in detailed display mode.
type LineItemRow struct {
	Description     string          `json:"description"`
	SupplierName    string          `json:"supplier_name,omitempty"`
	CategoryIconRef string          `json:"category_icon_ref,omitempty"`
	Quantity        decimal.Decimal `json:"quantity"`
	UnitPriceClient string          `json:"unit_price_client"`
	LineTotalClient string          `json:"line_total_client"`
}

// SummaryRow replaces the per-item breakdown in summary display mode.
type SummaryRow struct {
	Notes       string `json:"notes"`
	TotalClient string `json:"total_client"`
}

// FeeRow is one disclosed fee line.
type FeeRow struct {
	Label        string `json:"label"`
	AmountClient string `json:"amount_client"`
}

// Totals is the document footer block. Deposit and balance are present only
// when a positive deposit applies; a zero deposit omits both rather than
// rendering them as zero.
type Totals struct {
	GrandTotal          string `json:"grand_total"`
	DepositDue          string `json:"deposit_due,omitempty"`
	BalanceDue          string `json:"balance_due,omitempty"`
	DepositExceedsTotal bool   `json:"deposit_exceeds_total,omitempty"`
}

// NewLineItemRow wraps a LineItemRow into a RenderRow.
func NewLineItemRow(row LineItemRow) RenderRow {
	return RenderRow{Type: RowTypeLineItem, LineItem: &row}
}

// NewSummaryRow wraps a SummaryRow into a RenderRow.
func NewSummaryRow(row SummaryRow) RenderRow {
	return RenderRow{Type: RowTypeSummary, Summary: &row}
}

// NewFeeRow wraps a FeeRow into a RenderRow.
func NewFeeRow(row FeeRow) RenderRow {
	return RenderRow{Type: RowTypeFee, Fee: &row}
}
