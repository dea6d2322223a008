package api

import (
	v1 "github.com/cartology/tripquote/internal/api/v1"
	"github.com/cartology/tripquote/internal/rest/middleware"
	"github.com/gin-gonic/gin"
)

type Handlers struct {
	Quote     *v1.QuoteHandler
	Directory *v1.DirectoryHandler
	Catalog   *v1.CatalogHandler
	Health    *v1.HealthHandler
}

func NewRouter(handlers Handlers) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware)
	router.Use(middleware.ErrorHandler())

	router.GET("/health", handlers.Health.Health)

	v1Group := router.Group("/v1")
	registerV1Routes(v1Group, handlers)

	return router
}

func registerV1Routes(router *gin.RouterGroup, handlers Handlers) {
	// Quote routes
	quotes := router.Group("/quotes")
	{
		quotes.POST("/preview", handlers.Quote.PreviewQuote)
		quotes.POST("/export", handlers.Quote.ExportQuote)
	}

	router.GET("/directory", handlers.Directory.GetDirectory)
	router.GET("/catalog", handlers.Catalog.GetCatalog)
}
