package pdf

import (
	"bytes"
	"context"
	"fmt"

	"github.com/cartology/tripquote/internal/domain/document"
	ierr "github.com/cartology/tripquote/internal/errors"
	"github.com/cartology/tripquote/internal/logger"
	"github.com/jung-kurt/gofpdf"
)

// Renderer turns an abstract payment request document into a paginated
// export artifact. The document arrives with every monetary value already
// formatted; renderers never format money themselves.
type Renderer interface {
	RenderPaymentRequest(ctx context.Context, doc *document.InvoiceDocument) (data []byte, filename string, err error)
}

type renderer struct {
	logger *logger.Logger
}

// NewRenderer creates the gofpdf-backed renderer.
func NewRenderer(logger *logger.Logger) Renderer {
	return &renderer{logger: logger}
}

func (r *renderer) RenderPaymentRequest(ctx context.Context, doc *document.InvoiceDocument) ([]byte, string, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.AddPage()

	// masthead
	pdf.SetFont("Arial", "B", 24)
	pdf.Cell(0, 12, tr(doc.Header.Title))
	pdf.Ln(10)
	pdf.SetFont("Arial", "", 11)
	pdf.SetTextColor(100, 116, 139)
	pdf.Cell(0, 6, tr("# "+doc.Header.Number))
	pdf.Ln(14)

	// billed-to block and dates
	pdf.SetTextColor(100, 116, 139)
	pdf.SetFont("Arial", "B", 8)
	pdf.Cell(95, 5, "BILLED TO")
	pdf.SetFont("Arial", "", 10)
	pdf.Cell(95, 5, "Invoice Date: "+doc.Header.IssueDate.Format("2006-01-02"))
	pdf.Ln(5)
	pdf.SetTextColor(15, 23, 42)
	pdf.SetFont("Arial", "B", 12)
	pdf.Cell(95, 6, tr(doc.BilledTo.Name))
	if doc.Header.DueDate != nil {
		pdf.SetFont("Arial", "", 10)
		pdf.SetTextColor(100, 116, 139)
		pdf.Cell(95, 6, "Due Date: "+doc.Header.DueDate.Format("2006-01-02"))
	}
	pdf.Ln(6)
	if doc.BilledTo.Company != "" {
		pdf.SetFont("Arial", "", 10)
		pdf.SetTextColor(71, 85, 105)
		pdf.Cell(95, 5, tr(doc.BilledTo.Company))
		pdf.Ln(5)
	}
	pdf.Ln(8)

	// table header
	pdf.SetFont("Arial", "B", 10)
	pdf.SetFillColor(248, 250, 252)
	pdf.SetTextColor(51, 65, 85)
	pdf.CellFormat(85, 8, "Description", "B", 0, "L", true, 0, "")
	pdf.CellFormat(20, 8, "Qty", "B", 0, "R", true, 0, "")
	pdf.CellFormat(40, 8, "Price", "B", 0, "R", true, 0, "")
	pdf.CellFormat(45, 8, "Total", "B", 1, "R", true, 0, "")

	pdf.SetTextColor(15, 23, 42)
	for _, row := range doc.Rows {
		switch row.Type {
		case document.RowTypeLineItem:
			li := row.LineItem
			pdf.SetFont("Arial", "", 10)
			description := li.Description
			if li.SupplierName != "" {
				description = fmt.Sprintf("%s (Supplier: %s)", li.Description, li.SupplierName)
			}
			pdf.CellFormat(85, 8, tr(description), "B", 0, "L", false, 0, "")
			pdf.CellFormat(20, 8, li.Quantity.String(), "B", 0, "R", false, 0, "")
			pdf.CellFormat(40, 8, tr(li.UnitPriceClient), "B", 0, "R", false, 0, "")
			pdf.SetFont("Arial", "B", 10)
			pdf.CellFormat(45, 8, tr(li.LineTotalClient), "B", 1, "R", false, 0, "")

		case document.RowTypeSummary:
			s := row.Summary
			left, _, _, _ := pdf.GetMargins()
			startY := pdf.GetY()
			pdf.SetFont("Arial", "", 10)
			pdf.MultiCell(145, 6, tr(s.Notes), "B", "L", false)
			endY := pdf.GetY()
			pdf.SetXY(left+145, startY)
			pdf.SetFont("Arial", "B", 10)
			pdf.CellFormat(45, endY-startY, tr(s.TotalClient), "B", 1, "R", false, 0, "")
			pdf.SetY(endY)

		case document.RowTypeFee:
			fee := row.Fee
			pdf.SetFont("Arial", "", 10)
			pdf.SetTextColor(71, 85, 105)
			pdf.CellFormat(145, 7, tr(fee.Label), "", 0, "R", false, 0, "")
			pdf.SetTextColor(15, 23, 42)
			pdf.CellFormat(45, 7, tr(fee.AmountClient), "", 1, "R", false, 0, "")
		}
	}

	// totals
	pdf.Ln(3)
	pdf.SetFont("Arial", "B", 13)
	pdf.CellFormat(145, 10, "Grand Total", "T", 0, "R", false, 0, "")
	pdf.CellFormat(45, 10, tr(doc.Totals.GrandTotal), "T", 1, "R", false, 0, "")
	if doc.Totals.DepositDue != "" {
		pdf.SetFont("Arial", "", 10)
		pdf.SetTextColor(100, 116, 139)
		pdf.CellFormat(145, 7, "Deposit Due", "", 0, "R", false, 0, "")
		pdf.SetTextColor(15, 23, 42)
		pdf.CellFormat(45, 7, tr(doc.Totals.DepositDue), "", 1, "R", false, 0, "")
		pdf.SetTextColor(100, 116, 139)
		pdf.CellFormat(145, 7, "Balance Due", "", 0, "R", false, 0, "")
		pdf.SetTextColor(15, 23, 42)
		pdf.CellFormat(45, 7, tr(doc.Totals.BalanceDue), "", 1, "R", false, 0, "")
	}

	// payment instructions footer
	if doc.PaymentInstructions != "" {
		pdf.Ln(10)
		pdf.SetFont("Arial", "B", 11)
		pdf.Cell(0, 7, "Payment Details")
		pdf.Ln(7)
		pdf.SetFont("Arial", "", 9)
		pdf.SetTextColor(100, 116, 139)
		pdf.MultiCell(190, 5, tr(doc.PaymentInstructions), "", "L", false)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", ierr.WithError(err).
			WithHint("Failed to render the payment request PDF").
			Mark(ierr.ErrExport)
	}

	filename := Filename(doc.Header.Number)
	r.logger.Debugw("rendered payment request", "filename", filename, "rows", len(doc.Rows))
	return buf.Bytes(), filename, nil
}

// Filename derives the export filename from the quote number, falling back
// to "invoice" for drafts without one.
func Filename(quoteNumber string) string {
	if quoteNumber == "" {
		quoteNumber = "invoice"
	}
	return quoteNumber + ".pdf"
}
