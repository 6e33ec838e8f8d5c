package api

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"trippin/internal/api/controllers"
	"trippin/internal/config"
	"trippin/pkg/middleware"
)

func ProvideRouter(
	cfg *config.Config,
	logger *zap.Logger,
	itineraryController *controllers.ItineraryController,
	healthController *controllers.HealthController) *gin.Engine {

	if cfg.GinMode != "" {
		gin.SetMode(cfg.GinMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.TraceIDMiddleware())
	r.Use(middleware.RequestLogger(logger))
	r.Use(middleware.Metrics())
	r.Use(middleware.CORSMiddleware(middleware.ParseOrigins(cfg.CORSAllowedOrigins)))

	RegisterRoutes(r, itineraryController, healthController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	itineraryController *controllers.ItineraryController,
	healthController *controllers.HealthController) {

	r.GET("/healthz", healthController.Healthz)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	r.POST("/generate-itinerary", itineraryController.GenerateItinerary)
	r.GET("/locations", itineraryController.ListDestinations)
	r.GET("/catalog/:location", itineraryController.GetCatalog)
}
