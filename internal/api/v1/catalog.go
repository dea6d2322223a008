package v1

import (
	"net/http"

	"github.com/cartology/tripquote/internal/api/dto"
	"github.com/cartology/tripquote/internal/logger"
	"github.com/gin-gonic/gin"
)

type CatalogHandler struct {
	log *logger.Logger
}

func NewCatalogHandler(log *logger.Logger) *CatalogHandler {
	return &CatalogHandler{log: log}
}

// GetCatalog returns the static reference data for the quote builder.
func (h *CatalogHandler) GetCatalog(c *gin.Context) {
	c.JSON(http.StatusOK, dto.ToCatalogResponse())
}
