package service

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/cartology/tripquote/internal/domain/quote"
	ierr "github.com/cartology/tripquote/internal/errors"
	"github.com/cartology/tripquote/internal/pdf"
	"github.com/cartology/tripquote/internal/testutil"
	"github.com/cartology/tripquote/internal/types"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type QuoteServiceSuite struct {
	suite.Suite
	ctx     context.Context
	service QuoteService
}

func TestQuoteService(t *testing.T) {
	suite.Run(t, new(QuoteServiceSuite))
}

func (s *QuoteServiceSuite) SetupTest() {
	s.ctx = testutil.SetupContext()
	deps := testutil.NewServiceDeps()
	renderer := pdf.NewRenderer(deps.Logger)
	params := NewServiceParams(deps.Logger, deps.Config, deps.DirectoryRepo, renderer)
	s.service = NewQuoteService(params)
}

func (s *QuoteServiceSuite) validQuote() *quote.Quote {
	item := quote.NewLineItem()
	item.Description = "Safari lodge, 4 nights"
	item.CostBasisUnitAmount = decimal.NewFromInt(500)
	item.PriceBasisUnitAmount = decimal.NewFromInt(600)

	return &quote.Quote{
		Setup: quote.SetupData{
			PricingModel:  types.PricingModelNett,
			ClientDetails: quote.ClientDetails{Name: "Ada Lovelace"},
		},
		Items: []quote.LineItem{item},
		Fees: quote.FeeConfig{
			CreditCardFeeInclusion: types.CreditCardFeeIncluded,
		},
		Currency: quote.CurrencySettings{
			BaseCurrencyCode:   "GBP",
			ClientCurrencyCode: "GBP",
		},
		Meta: quote.QuoteMeta{
			Number:    "Q-EXPORT1",
			IssueDate: time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
		},
		Deposit:     quote.DepositSpec{Kind: types.DepositKindAmount},
		DisplayMode: types.DisplayModeDetailed,
	}
}

func (s *QuoteServiceSuite) TestBuildDocument() {
	doc, err := s.service.BuildDocument(s.ctx, s.validQuote(), nil)
	s.NoError(err)
	s.Require().NotNil(doc)
	s.Equal("Payment Request", doc.Header.Title)
	s.Equal("£600.00", doc.Totals.GrandTotal)
}

func (s *QuoteServiceSuite) TestBuildDocumentRejectsInvalidQuote() {
	q := s.validQuote()
	q.Setup.PricingModel = types.PricingModel("wholesale")

	doc, err := s.service.BuildDocument(s.ctx, q, nil)
	s.Error(err)
	s.Nil(doc)
	s.True(ierr.IsValidation(err))
}

func (s *QuoteServiceSuite) TestExportPDF() {
	data, filename, err := s.service.ExportPDF(s.ctx, s.validQuote(), nil)
	s.NoError(err)
	s.Equal("Q-EXPORT1.pdf", filename)
	s.True(bytes.HasPrefix(data, []byte("%PDF")))
}

func (s *QuoteServiceSuite) TestExportPDFDraftFilename() {
	q := s.validQuote()
	q.Meta.Number = ""

	_, filename, err := s.service.ExportPDF(s.ctx, q, nil)
	s.NoError(err)
	s.Equal("invoice.pdf", filename)
}
