package service

import (
	"context"

	"github.com/cartology/tripquote/internal/domain/directory"
	"github.com/cartology/tripquote/internal/domain/document"
	"github.com/cartology/tripquote/internal/domain/quote"
	ierr "github.com/cartology/tripquote/internal/errors"
)

// QuoteService orchestrates one recompute pass: validate the quote snapshot,
// run the pricing engine, derive the deposit split and assemble the document.
// It holds no state of its own; every call recomputes from the inputs.
type QuoteService interface {
	// BuildDocument produces the abstract payment request document for the
	// quote, resolving supplier names against the given directory snapshot.
	// Callers are expected to fail on a directory load error rather than pass
	// a nil snapshot; a nil directory leaves every supplier name unresolved.
	BuildDocument(ctx context.Context, q *quote.Quote, dir *directory.Directory) (*document.InvoiceDocument, error)

	// ExportPDF renders the document to a paginated PDF. A render failure is
	// recoverable: the document itself is unaffected and the caller may retry.
	ExportPDF(ctx context.Context, q *quote.Quote, dir *directory.Directory) ([]byte, string, error)
}

type quoteService struct {
	ServiceParams
	pricingService   PricingService
	depositService   DepositService
	assemblerService AssemblerService
}

func NewQuoteService(params ServiceParams) QuoteService {
	return &quoteService{
		ServiceParams:    params,
		pricingService:   NewPricingService(params),
		depositService:   NewDepositService(params),
		assemblerService: NewAssemblerService(params),
	}
}

func (s *quoteService) BuildDocument(ctx context.Context, q *quote.Quote, dir *directory.Directory) (*document.InvoiceDocument, error) {
	if err := q.Validate(); err != nil {
		return nil, err
	}

	totals, err := s.pricingService.ComputeTotals(q.Items, q.Fees, q.Currency)
	if err != nil {
		return nil, err
	}

	deposit, err := s.depositService.ComputeDeposit(q.Deposit, totals.GrandTotal)
	if err != nil {
		return nil, err
	}

	return s.assemblerService.Assemble(q, totals, deposit, dir)
}

func (s *quoteService) ExportPDF(ctx context.Context, q *quote.Quote, dir *directory.Directory) ([]byte, string, error) {
	doc, err := s.BuildDocument(ctx, q, dir)
	if err != nil {
		return nil, "", err
	}

	data, filename, err := s.Renderer.RenderPaymentRequest(ctx, doc)
	if err != nil {
		s.Logger.Errorw("pdf export failed", "quote_number", q.Meta.Number, "error", err)
		return nil, "", ierr.WithError(err).
			WithHint("There was an issue generating the PDF").
			Mark(ierr.ErrExport)
	}

	s.Logger.Infow("exported payment request",
		"quote_number", q.Meta.Number,
		"filename", filename,
		"bytes", len(data),
	)
	return data, filename, nil
}
