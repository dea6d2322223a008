package main

import (
	"context"
	"time"

	"github.com/cartology/tripquote/internal/api"
	v1 "github.com/cartology/tripquote/internal/api/v1"
	"github.com/cartology/tripquote/internal/config"
	"github.com/cartology/tripquote/internal/directory"
	"github.com/cartology/tripquote/internal/httpclient"
	"github.com/cartology/tripquote/internal/logger"
	"github.com/cartology/tripquote/internal/pdf"
	"github.com/cartology/tripquote/internal/service"
	"github.com/cartology/tripquote/internal/validator"
	"github.com/gin-gonic/gin"
	"go.uber.org/fx"
)

func init() {
	// Set UTC timezone for the entire application
	time.Local = time.UTC
}

func main() {
	app := fx.New(
		fx.Provide(
			// Validator
			validator.NewValidator,

			// Config
			config.NewConfig,

			// Logger
			logger.NewLogger,

			// HTTP Client
			provideHTTPClient,

			// Directory repository
			directory.NewClient,

			// PDF renderer
			pdf.NewRenderer,
		),
		fx.Provide(
			service.NewServiceParams,

			service.NewPricingService,
			service.NewDepositService,
			service.NewAssemblerService,
			service.NewDirectoryService,
			service.NewQuoteService,
		),
		fx.Provide(
			provideHandlers,
			provideRouter,
		),
		fx.Invoke(startServer),
	)
	app.Run()
}

func provideHTTPClient(cfg *config.Configuration) httpclient.Client {
	return httpclient.NewRetryableClient(cfg.Directory.Timeout, cfg.Directory.RetryMax)
}

func provideHandlers(
	logger *logger.Logger,
	quoteService service.QuoteService,
	directoryService service.DirectoryService,
) api.Handlers {
	return api.Handlers{
		Quote:     v1.NewQuoteHandler(quoteService, directoryService, logger),
		Directory: v1.NewDirectoryHandler(directoryService, logger),
		Catalog:   v1.NewCatalogHandler(logger),
		Health:    v1.NewHealthHandler(logger),
	}
}

func provideRouter(handlers api.Handlers) *gin.Engine {
	return api.NewRouter(handlers)
}

func startServer(
	lc fx.Lifecycle,
	cfg *config.Configuration,
	r *gin.Engine,
	log *logger.Logger,
) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Infow("starting API server", "address", cfg.Server.Address)
			go func() {
				if err := r.Run(cfg.Server.Address); err != nil {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info("Shutting down server...")
			return nil
		},
	})
}
