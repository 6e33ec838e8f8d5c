package services

import (
	"context"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"trippin/internal/catalog"
	"trippin/internal/itinerary"
	"trippin/internal/models/request_models"
	"trippin/internal/models/response_models"
	"trippin/pkg/utils"
)

var itineraryTotalCost = promauto.NewHistogram(
	prometheus.HistogramOpts{
		Name:    "trippin_itinerary_total_cost",
		Help:    "Total cost of generated itineraries",
		Buckets: []float64{0, 10, 25, 50, 100, 250, 500, 1000},
	},
)

// CatalogResolver is the part of catalog.ChainProvider the service needs.
type CatalogResolver interface {
	Resolve(ctx context.Context, location string) catalog.Result
	Locations(ctx context.Context) ([]string, error)
}

type ItineraryServiceInterface interface {
	GenerateItinerary(ctx context.Context, req request_models.TripRequest) (response_models.ItineraryResponse, error)
	GetCatalog(ctx context.Context, location string) (response_models.CatalogResponse, error)
	ListDestinations(ctx context.Context) ([]response_models.DestinationResponse, error)
}

type ItineraryService struct {
	catalogs CatalogResolver
	logger   *zap.Logger
}

func NewItineraryService(catalogs CatalogResolver, logger *zap.Logger) ItineraryServiceInterface {
	return &ItineraryService{
		catalogs: catalogs,
		logger:   logger,
	}
}

func (s *ItineraryService) GenerateItinerary(ctx context.Context, req request_models.TripRequest) (response_models.ItineraryResponse, error) {
	if err := req.Validate(); err != nil {
		return response_models.ItineraryResponse{}, err
	}

	res := s.catalogs.Resolve(ctx, req.Location)
	allocation := itinerary.Allocate(res.Catalog, req.Days, decimal.NewFromFloat(req.Budget))

	totalCost := allocation.TotalCost.InexactFloat64()
	itineraryTotalCost.Observe(totalCost)
	s.logger.Info("itinerary generated",
		zap.String("location", req.Location),
		zap.String("source", res.Source),
		zap.Int("days", req.Days),
		zap.Float64("budget", req.Budget),
		zap.Float64("total_cost", totalCost))

	return response_models.ItineraryResponse{
		Location:  req.Location,
		Days:      req.Days,
		Budget:    req.Budget,
		TotalCost: totalCost,
		Places:    toPlaceResponses(allocation.Places),
	}, nil
}

func (s *ItineraryService) GetCatalog(ctx context.Context, location string) (response_models.CatalogResponse, error) {
	if location == "" {
		return response_models.CatalogResponse{}, utils.ErrLocationRequired
	}

	res := s.catalogs.Resolve(ctx, location)

	places := make(map[string][]response_models.Place, len(itinerary.Categories))
	for _, category := range itinerary.Categories {
		label := category.Label()
		places[label] = make([]response_models.Place, 0, len(res.Catalog[category]))
		for _, p := range res.Catalog[category] {
			places[label] = append(places[label], toPlaceResponse(p, label))
		}
	}

	return response_models.CatalogResponse{
		Location: location,
		Source:   res.Source,
		Places:   places,
	}, nil
}

func (s *ItineraryService) ListDestinations(ctx context.Context) ([]response_models.DestinationResponse, error) {
	names, err := s.catalogs.Locations(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}

	out := make([]response_models.DestinationResponse, 0, len(names))
	for _, name := range names {
		out = append(out, response_models.DestinationResponse{Name: name})
	}
	return out, nil
}

func toPlaceResponses(selected map[string][]itinerary.Place) map[string][]response_models.Place {
	out := make(map[string][]response_models.Place, len(selected))
	for label, places := range selected {
		converted := make([]response_models.Place, 0, len(places))
		for _, p := range places {
			converted = append(converted, toPlaceResponse(p, p.Category))
		}
		out[label] = converted
	}
	return out
}

func toPlaceResponse(p itinerary.Place, label string) response_models.Place {
	return response_models.Place{
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price.InexactFloat64(),
		Category:    label,
	}
}
