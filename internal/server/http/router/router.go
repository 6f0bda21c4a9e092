package router

import (
	"log/slog"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/platefront/checkout/internal/metrics"
	"github.com/platefront/checkout/internal/server/http/handlers"
	"github.com/platefront/checkout/internal/server/http/middleware"
)

// Setup configures gin router with handlers and middleware.
func Setup(facade handlers.CheckoutFacade, logger *slog.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()

	engine.Use(gin.Recovery())
	engine.Use(middleware.RequestLogger(logger))
	engine.Use(middleware.DecompressRequest())
	engine.Use(gzip.Gzip(gzip.DefaultCompression))
	engine.Use(metrics.HTTPMiddleware())

	checkoutHandler := handlers.NewCheckoutHandler(facade)

	api := engine.Group("/api")
	api.GET("/health", checkoutHandler.Health)

	checkout := api.Group("/checkout")
	checkout.Use(middleware.TokenExtractor())
	checkout.POST("/place", checkoutHandler.Place)
	checkout.POST("/callback/:attemptID", checkoutHandler.Callback)
	checkout.GET("/verify", checkoutHandler.Verify)

	engine.GET("/metrics", gin.WrapH(promhttp.Handler()))

	return engine
}
