package testutil

import (
	"github.com/cartology/tripquote/internal/config"
	"github.com/cartology/tripquote/internal/logger"
)

// ServiceDeps bundles the common wiring every service suite needs.
type ServiceDeps struct {
	Config        *config.Configuration
	Logger        *logger.Logger
	DirectoryRepo *InMemoryDirectoryRepository
}

// NewServiceDeps builds test wiring with the default configuration and an
// empty in-memory directory.
func NewServiceDeps() ServiceDeps {
	return ServiceDeps{
		Config:        config.GetDefaultConfig(),
		Logger:        logger.L,
		DirectoryRepo: NewInMemoryDirectoryRepository(),
	}
}
