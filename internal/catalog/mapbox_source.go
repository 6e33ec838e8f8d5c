package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sony/gobreaker"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"trippin/internal/itinerary"
)

const defaultMapboxBaseURL = "https://api.mapbox.com"

// Mapbox search categories used for each itinerary category.
var mapboxCategories = map[itinerary.Category]string{
	itinerary.Historical: "museum",
	itinerary.Food:       "restaurant",
	itinerary.Scenic:     "park",
	itinerary.Nightlife:  "bar",
}

// Mapbox has no admission prices, so every hit gets its category's estimate.
var estimatedPrices = map[itinerary.Category]decimal.Decimal{
	itinerary.Historical: decimal.NewFromInt(15),
	itinerary.Food:       decimal.NewFromInt(20),
	itinerary.Scenic:     decimal.Zero,
	itinerary.Nightlife:  decimal.NewFromInt(30),
}

type MapboxConfig struct {
	AccessToken   string
	BaseURL       string
	RatePerSecond float64
	Limit         int
}

// MapboxSource geocodes a location and searches each category around it.
type MapboxSource struct {
	HTTP    *http.Client
	token   string
	baseURL string
	limit   int
	limiter *rate.Limiter
	breaker *gobreaker.CircuitBreaker
}

func NewMapboxSource(cfg MapboxConfig, logger *zap.Logger) *MapboxSource {
	if cfg.BaseURL == "" {
		cfg.BaseURL = defaultMapboxBaseURL
	}
	if cfg.Limit <= 0 {
		cfg.Limit = 5
	}
	if cfg.RatePerSecond <= 0 {
		cfg.RatePerSecond = 5
	}

	breaker := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        "mapbox",
		MaxRequests: 1,
		Interval:    time.Minute,
		Timeout:     30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 3
		},
		IsSuccessful: func(err error) bool {
			return err == nil || errors.Is(err, ErrLocationNotFound)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn("circuit breaker state changed",
				zap.String("breaker", name),
				zap.String("from", from.String()),
				zap.String("to", to.String()))
		},
	})

	return &MapboxSource{
		HTTP:    &http.Client{Timeout: 15 * time.Second},
		token:   cfg.AccessToken,
		baseURL: cfg.BaseURL,
		limit:   cfg.Limit,
		limiter: rate.NewLimiter(rate.Limit(cfg.RatePerSecond), 1),
		breaker: breaker,
	}
}

func (s *MapboxSource) Name() string { return "mapbox" }

func (s *MapboxSource) Lookup(ctx context.Context, location string) (itinerary.Catalog, error) {
	v, err := s.breaker.Execute(func() (any, error) {
		return s.lookup(ctx, location)
	})
	if err != nil {
		return nil, err
	}
	return v.(itinerary.Catalog), nil
}

func (s *MapboxSource) lookup(ctx context.Context, location string) (itinerary.Catalog, error) {
	lng, lat, err := s.geocode(ctx, location)
	if err != nil {
		return nil, err
	}

	catalog := make(itinerary.Catalog, len(itinerary.Categories))
	for _, category := range itinerary.Categories {
		places, err := s.searchCategory(ctx, mapboxCategories[category], lng, lat)
		if err != nil {
			return nil, fmt.Errorf("mapbox %s search: %w", category, err)
		}
		for _, f := range places {
			catalog[category] = append(catalog[category], itinerary.Place{
				Name:        f.Properties.Name,
				Description: f.description(),
				Price:       estimatedPrices[category],
			})
		}
	}
	return catalog, nil
}

type mapboxFeature struct {
	Geometry struct {
		Coordinates []float64 `json:"coordinates"`
	} `json:"geometry"`
	Properties struct {
		Name           string `json:"name"`
		FullAddress    string `json:"full_address"`
		PlaceFormatted string `json:"place_formatted"`
	} `json:"properties"`
}

func (f mapboxFeature) description() string {
	if f.Properties.FullAddress != "" {
		return f.Properties.FullAddress
	}
	return f.Properties.PlaceFormatted
}

func (s *MapboxSource) geocode(ctx context.Context, location string) (float64, float64, error) {
	q := url.Values{}
	q.Set("q", location)
	q.Set("limit", "1")

	features, err := s.get(ctx, "/search/geocode/v6/forward", q)
	if err != nil {
		return 0, 0, fmt.Errorf("mapbox geocode: %w", err)
	}
	if len(features) == 0 || len(features[0].Geometry.Coordinates) < 2 {
		return 0, 0, ErrLocationNotFound
	}
	c := features[0].Geometry.Coordinates
	return c[0], c[1], nil
}

func (s *MapboxSource) searchCategory(ctx context.Context, category string, lng, lat float64) ([]mapboxFeature, error) {
	q := url.Values{}
	q.Set("proximity", fmt.Sprintf("%f,%f", lng, lat))
	q.Set("limit", strconv.Itoa(s.limit))

	features, err := s.get(ctx, "/search/searchbox/v1/category/"+url.PathEscape(category), q)
	if err != nil {
		return nil, err
	}

	out := features[:0]
	for _, f := range features {
		if f.Properties.Name != "" {
			out = append(out, f)
		}
	}
	return out, nil
}

func (s *MapboxSource) get(ctx context.Context, path string, q url.Values) ([]mapboxFeature, error) {
	if err := s.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	q.Set("access_token", s.token)
	u := s.baseURL + path + "?" + q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}
	resp, err := s.HTTP.Do(req)
	if err != nil {
		return nil, fmt.Errorf("mapbox http error: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode/100 != 2 {
		return nil, fmt.Errorf("mapbox bad status: %s", resp.Status)
	}

	var payload struct {
		Features []mapboxFeature `json:"features"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("mapbox decode: %w", err)
	}
	return payload.Features, nil
}
