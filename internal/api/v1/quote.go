package v1

import (
	"fmt"
	"net/http"

	"github.com/cartology/tripquote/internal/api/dto"
	"github.com/cartology/tripquote/internal/domain/quote"
	ierr "github.com/cartology/tripquote/internal/errors"
	"github.com/cartology/tripquote/internal/logger"
	"github.com/cartology/tripquote/internal/service"
	"github.com/gin-gonic/gin"
)

type QuoteHandler struct {
	quoteService     service.QuoteService
	directoryService service.DirectoryService
	log              *logger.Logger
}

func NewQuoteHandler(quoteService service.QuoteService, directoryService service.DirectoryService, log *logger.Logger) *QuoteHandler {
	return &QuoteHandler{
		quoteService:     quoteService,
		directoryService: directoryService,
		log:              log,
	}
}

// PreviewQuote recomputes the full payment request document for the posted
// quote snapshot. The server keeps no quote state between calls.
func (h *QuoteHandler) PreviewQuote(c *gin.Context) {
	ctx := c.Request.Context()

	q, err := h.bindQuote(c)
	if err != nil {
		c.Error(err)
		return
	}

	dir, err := h.directoryService.Load(ctx)
	if err != nil {
		h.log.Errorw("failed to load directory for preview", "error", err)
		c.Error(err)
		return
	}

	doc, err := h.quoteService.BuildDocument(ctx, q, dir)
	if err != nil {
		h.log.Errorw("failed to build quote preview", "error", err)
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, doc)
}

// ExportQuote renders the posted quote snapshot to a PDF and streams it back
// as an attachment.
func (h *QuoteHandler) ExportQuote(c *gin.Context) {
	ctx := c.Request.Context()

	q, err := h.bindQuote(c)
	if err != nil {
		c.Error(err)
		return
	}

	dir, err := h.directoryService.Load(ctx)
	if err != nil {
		h.log.Errorw("failed to load directory for export", "error", err)
		c.Error(err)
		return
	}

	data, filename, err := h.quoteService.ExportPDF(ctx, q, dir)
	if err != nil {
		h.log.Errorw("failed to export quote", "quote_number", q.Meta.Number, "error", err)
		c.Error(err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "application/pdf", data)
}

func (h *QuoteHandler) bindQuote(c *gin.Context) (*quote.Quote, error) {
	var req dto.QuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Errorw("failed to bind quote payload", "error", err)
		return nil, ierr.WithError(err).
			WithHint("Invalid request format").
			Mark(ierr.ErrValidation)
	}

	if err := req.Validate(); err != nil {
		return nil, err
	}

	return req.ToQuote()
}
