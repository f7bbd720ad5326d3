package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "docscan/docs" // registers the OpenAPI document with swag

	"docscan/internal/domain"
	"docscan/internal/handler"
	"docscan/internal/middleware"
)

// Options carries the middleware settings for Setup.
type Options struct {
	AllowedOrigins []string
	// MaxBodyBytes caps request bodies on the API routes; zero disables it.
	MaxBodyBytes int64
}

// Setup configures the Gin engine with all routes and middleware.
func Setup(
	log zerolog.Logger,
	opts Options,
	extractH *handler.ExtractHandler,
	healthH *handler.HealthHandler,
) *gin.Engine {
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery(log))
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(log))
	r.Use(middleware.CORS(opts.AllowedOrigins))

	// Health checks
	r.GET("/healthz", healthH.Liveness)
	r.GET("/readyz", healthH.Readiness)

	// API docs
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := r.Group("/api/v1")
	v1.Use(middleware.MaxBodySize(opts.MaxBodyBytes))

	extract := v1.Group("/extract/:class")
	extract.POST("", extractH.ExtractUpload)
	extract.POST("/base64", extractH.ExtractBase64)
	extract.POST("/text", extractH.ExtractText)

	v1.POST("/documents/detect", extractH.Detect)

	// Per-class routes kept for existing clients.
	legacy := r.Group("/api")
	legacy.Use(middleware.MaxBodySize(opts.MaxBodyBytes))
	for _, class := range domain.DocumentClasses {
		legacy.POST("/extract-"+string(class), extractH.LegacyUpload(class))
		legacy.POST("/extract-"+string(class)+"-base64", extractH.LegacyBase64(class))
	}

	r.NoRoute(func(c *gin.Context) {
		handler.RespondError(c, http.StatusNotFound, "NOT_FOUND", "endpoint not found; see /swagger/index.html for available endpoints")
	})

	return r
}
