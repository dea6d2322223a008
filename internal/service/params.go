package service

import (
	"github.com/cartology/tripquote/internal/config"
	"github.com/cartology/tripquote/internal/domain/directory"
	"github.com/cartology/tripquote/internal/logger"
	"github.com/cartology/tripquote/internal/pdf"
)

// ServiceParams holds common dependencies for services
type ServiceParams struct {
	Logger        *logger.Logger
	Config        *config.Configuration
	DirectoryRepo directory.Repository
	Renderer      pdf.Renderer
}

// NewServiceParams builds the shared dependency bundle.
func NewServiceParams(
	logger *logger.Logger,
	config *config.Configuration,
	directoryRepo directory.Repository,
	renderer pdf.Renderer,
) ServiceParams {
	return ServiceParams{
		Logger:        logger,
		Config:        config,
		DirectoryRepo: directoryRepo,
		Renderer:      renderer,
	}
}
