package itinerary_fx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"

	"trippin/internal/catalog"
	"trippin/internal/services"
)

var Module = fx.Provide(provideItineraryService)

func provideItineraryService(provider *catalog.ChainProvider, logger *zap.Logger) services.ItineraryServiceInterface {
	return services.NewItineraryService(provider, logger)
}
