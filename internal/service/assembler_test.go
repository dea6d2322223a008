package service

import (
	"testing"
	"time"

	"github.com/cartology/tripquote/internal/config"
	"github.com/cartology/tripquote/internal/domain/directory"
	"github.com/cartology/tripquote/internal/domain/document"
	"github.com/cartology/tripquote/internal/domain/quote"
	"github.com/cartology/tripquote/internal/testutil"
	"github.com/cartology/tripquote/internal/types"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type AssemblerServiceSuite struct {
	suite.Suite
	cfg       *config.Configuration
	pricing   PricingService
	deposits  DepositService
	assembler AssemblerService
	dir       *directory.Directory
}

func TestAssemblerService(t *testing.T) {
	suite.Run(t, new(AssemblerServiceSuite))
}

func (s *AssemblerServiceSuite) SetupTest() {
	deps := testutil.NewServiceDeps()
	s.cfg = deps.Config
	s.cfg.Branding.LogoURL = "https://cdn.cartologytravel.com/brand/logo.png"

	params := NewServiceParams(deps.Logger, deps.Config, deps.DirectoryRepo, nil)
	s.pricing = NewPricingService(params)
	s.deposits = NewDepositService(params)
	s.assembler = NewAssemblerService(params)

	s.dir = directory.NewDirectory(
		[]directory.Client{{ID: "cl_1", FirstName: "Ada", LastName: "Lovelace"}},
		[]directory.Supplier{{ID: "sup_1", Name: "Belmond Hotels"}},
	)
}

func (s *AssemblerServiceSuite) buildQuote() *quote.Quote {
	item := quote.NewLineItem()
	item.Description = "Venice Simplon suite"
	item.SupplierRef = "sup_1"
	item.CostBasisUnitAmount = decimal.NewFromInt(100)
	item.Quantity = decimal.NewFromInt(2)
	item.PriceBasisUnitAmount = decimal.NewFromInt(120)

	return &quote.Quote{
		Setup: quote.SetupData{
			PricingModel: types.PricingModelNett,
			ClientDetails: quote.ClientDetails{
				Name:    "Ada Lovelace",
				Company: "Analytical Engines Ltd",
			},
		},
		Items: []quote.LineItem{item},
		Fees: quote.FeeConfig{
			CreditCardFeePercent:   decimal.NewFromInt(3),
			OtherFeesAmount:        decimal.NewFromInt(50),
			UKPackageSurcharge:     true,
			CreditCardFeeInclusion: types.CreditCardFeeIncluded,
		},
		Currency: quote.CurrencySettings{
			BaseCurrencyCode:   "GBP",
			ClientCurrencyCode: "GBP",
		},
		Meta: quote.QuoteMeta{
			Number:    "Q-TEST01",
			IssueDate: time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
		},
		Deposit:     quote.DepositSpec{Kind: types.DepositKindAmount},
		DisplayMode: types.DisplayModeDetailed,
		BankDetails: "Cartology Travel Ltd\nSort: 20-45-45",
	}
}

func (s *AssemblerServiceSuite) assemble(q *quote.Quote) *document.InvoiceDocument {
	s.T().Helper()
	totals, err := s.pricing.ComputeTotals(q.Items, q.Fees, q.Currency)
	s.Require().NoError(err)
	deposit, err := s.deposits.ComputeDeposit(q.Deposit, totals.GrandTotal)
	s.Require().NoError(err)
	doc, err := s.assembler.Assemble(q, totals, deposit, s.dir)
	s.Require().NoError(err)
	return doc
}

func (s *AssemblerServiceSuite) TestDetailedRowOrder() {
	doc := s.assemble(s.buildQuote())

	s.Require().Len(doc.Rows, 4)
	s.Equal(document.RowTypeLineItem, doc.Rows[0].Type)
	s.Equal(document.RowTypeFee, doc.Rows[1].Type)
	s.Equal("Other Fees", doc.Rows[1].Fee.Label)
	s.Equal("FFI Fee (1%)", doc.Rows[2].Fee.Label)
	s.Equal("Credit Card Fee (3%)", doc.Rows[3].Fee.Label)
}

func (s *AssemblerServiceSuite) TestLineItemRowContents() {
	doc := s.assemble(s.buildQuote())

	li := doc.Rows[0].LineItem
	s.Require().NotNil(li)
	s.Equal("Venice Simplon suite", li.Description)
	s.Equal("Belmond Hotels", li.SupplierName)
	s.Equal(types.CategoryHotel.IconRef(), li.CategoryIconRef)
	s.Equal("£120.00", li.UnitPriceClient)
	s.Equal("£240.00", li.LineTotalClient)
}

func (s *AssemblerServiceSuite) TestHeaderAndTotals() {
	doc := s.assemble(s.buildQuote())

	s.Equal("Payment Request", doc.Header.Title)
	s.Equal("Q-TEST01", doc.Header.Number)
	s.Equal("https://cdn.cartologytravel.com/brand/logo.png", doc.Header.LogoRef)
	s.Equal("Ada Lovelace", doc.BilledTo.Name)
	s.Equal("£301.69", doc.Totals.GrandTotal)

	// zero deposit leaves the deposit rows out entirely
	s.Empty(doc.Totals.DepositDue)
	s.Empty(doc.Totals.BalanceDue)
}

func (s *AssemblerServiceSuite) TestDepositRows() {
	q := s.buildQuote()
	q.Deposit = quote.DepositSpec{
		Kind:  types.DepositKindPercentage,
		Value: decimal.NewFromInt(30),
	}

	doc := s.assemble(q)
	s.Equal("£90.51", doc.Totals.DepositDue)
	s.Equal("£211.18", doc.Totals.BalanceDue)
	s.False(doc.Totals.DepositExceedsTotal)
}

func (s *AssemblerServiceSuite) TestSummaryMode() {
	q := s.buildQuote()
	q.DisplayMode = types.DisplayModeSummary
	q.SummaryNotes = "Full travel package as discussed"

	doc := s.assemble(q)

	s.Require().Len(doc.Rows, 4)
	s.Equal(document.RowTypeSummary, doc.Rows[0].Type)
	s.Equal("Full travel package as discussed", doc.Rows[0].Summary.Notes)
	s.Equal("£301.69", doc.Rows[0].Summary.TotalClient)
}

func (s *AssemblerServiceSuite) TestSeparateCardFeeHasNoRow() {
	q := s.buildQuote()
	q.Fees.CreditCardFeeInclusion = types.CreditCardFeeSeparate

	doc := s.assemble(q)

	for _, row := range doc.Rows {
		if row.Type == document.RowTypeFee {
			s.NotContains(row.Fee.Label, "Credit Card")
		}
	}
	s.Equal("£292.90", doc.Totals.GrandTotal)
}

func (s *AssemblerServiceSuite) TestFallbacksWithoutDirectory() {
	q := s.buildQuote()
	q.Items[0].Description = ""
	q.LogoRef = "https://example.com/custom.png"

	totals, err := s.pricing.ComputeTotals(q.Items, q.Fees, q.Currency)
	s.Require().NoError(err)
	deposit, err := s.deposits.ComputeDeposit(q.Deposit, totals.GrandTotal)
	s.Require().NoError(err)

	doc, err := s.assembler.Assemble(q, totals, deposit, nil)
	s.Require().NoError(err)

	li := doc.Rows[0].LineItem
	s.Empty(li.Description, "blank descriptions pass through unchanged")
	s.Empty(li.SupplierName)
	s.Equal("https://example.com/custom.png", doc.Header.LogoRef)
}
