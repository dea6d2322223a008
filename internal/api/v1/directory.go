package v1

import (
	"net/http"

	"github.com/cartology/tripquote/internal/api/dto"
	"github.com/cartology/tripquote/internal/logger"
	"github.com/cartology/tripquote/internal/service"
	"github.com/gin-gonic/gin"
)

type DirectoryHandler struct {
	service service.DirectoryService
	log     *logger.Logger
}

func NewDirectoryHandler(service service.DirectoryService, log *logger.Logger) *DirectoryHandler {
	return &DirectoryHandler{service: service, log: log}
}

// GetDirectory returns the combined client/supplier snapshot. The load is
// all-or-nothing; a partial directory is never returned.
func (h *DirectoryHandler) GetDirectory(c *gin.Context) {
	ctx := c.Request.Context()

	dir, err := h.service.Load(ctx)
	if err != nil {
		h.log.Errorw("failed to load directory", "error", err)
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, dto.ToDirectoryResponse(dir))
}
