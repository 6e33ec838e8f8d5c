package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"sort"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"

	"trippin/internal/itinerary"
	"trippin/pkg/utils"
)

const (
	SourceCache    = "cache"
	SourceFallback = "fallback"
)

// Provider resolves a location to its candidate places. It never fails:
// unknown locations get FallbackCatalog.
type Provider interface {
	GetPlaces(ctx context.Context, location string) itinerary.Catalog
}

// Result is a resolved catalog along with the name of the source that
// answered.
type Result struct {
	Catalog itinerary.Catalog
	Source  string
}

type Options struct {
	CacheTTL      time.Duration
	LookupTimeout time.Duration
}

// ChainProvider asks its sources in order and serves the first non-empty
// catalog. Answers are cached in the store; the fallback never is.
type ChainProvider struct {
	sources []Source
	store   Store
	opts    Options
	logger  *zap.Logger
	group   singleflight.Group
}

func NewChainProvider(logger *zap.Logger, store Store, opts Options, sources ...Source) *ChainProvider {
	if opts.CacheTTL <= 0 {
		opts.CacheTTL = time.Hour
	}
	if opts.LookupTimeout <= 0 {
		opts.LookupTimeout = 8 * time.Second
	}
	return &ChainProvider{
		sources: sources,
		store:   store,
		opts:    opts,
		logger:  logger,
	}
}

func (p *ChainProvider) GetPlaces(ctx context.Context, location string) itinerary.Catalog {
	return p.Resolve(ctx, location).Catalog
}

// Resolve is GetPlaces plus the name of the answering source.
func (p *ChainProvider) Resolve(ctx context.Context, location string) Result {
	key := utils.NormalizeLocation(location)
	if key == "" {
		return p.fallback(location)
	}

	if catalog, ok := p.fromCache(ctx, key); ok {
		return Result{Catalog: catalog, Source: SourceCache}
	}

	// Lookups of the same key share one round of source calls.
	v, _, _ := p.group.Do(key, func() (any, error) {
		return p.lookup(context.WithoutCancel(ctx), location, key), nil
	})
	res := v.(Result)
	if res.Catalog == nil {
		return p.fallback(location)
	}
	return res
}

// Locations lists every destination known to a listing source, sorted and
// without duplicates.
func (p *ChainProvider) Locations(ctx context.Context) ([]string, error) {
	seen := make(map[string]bool)
	var names []string
	for _, src := range p.sources {
		lister, ok := src.(Lister)
		if !ok {
			continue
		}
		found, err := lister.Locations(ctx)
		if err != nil {
			return nil, err
		}
		for _, name := range found {
			key := utils.NormalizeLocation(name)
			if seen[key] {
				continue
			}
			seen[key] = true
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names, nil
}

func (p *ChainProvider) lookup(ctx context.Context, location, key string) Result {
	for _, src := range p.sources {
		catalog, err := p.ask(ctx, src, location)
		switch {
		case errors.Is(err, ErrLocationNotFound):
			catalogLookups.WithLabelValues(src.Name(), outcomeMiss).Inc()
			continue
		case err != nil:
			catalogLookups.WithLabelValues(src.Name(), outcomeError).Inc()
			p.logger.Warn("catalog source failed",
				zap.String("source", src.Name()),
				zap.String("location", location),
				zap.Error(err))
			continue
		case catalog.Empty():
			catalogLookups.WithLabelValues(src.Name(), outcomeEmpty).Inc()
			continue
		}

		catalogLookups.WithLabelValues(src.Name(), outcomeHit).Inc()
		p.toCache(ctx, key, catalog)
		return Result{Catalog: catalog, Source: src.Name()}
	}
	return Result{}
}

func (p *ChainProvider) ask(ctx context.Context, src Source, location string) (itinerary.Catalog, error) {
	ctx, cancel := context.WithTimeout(ctx, p.opts.LookupTimeout)
	defer cancel()
	return src.Lookup(ctx, location)
}

func (p *ChainProvider) fallback(location string) Result {
	catalogFallbacks.Inc()
	return Result{Catalog: FallbackCatalog(location), Source: SourceFallback}
}

func (p *ChainProvider) fromCache(ctx context.Context, key string) (itinerary.Catalog, bool) {
	if p.store == nil {
		return nil, false
	}
	raw, ok, err := p.store.Get(ctx, cacheKey(key))
	if err != nil {
		p.logger.Warn("catalog cache read failed", zap.String("key", key), zap.Error(err))
		return nil, false
	}
	if !ok {
		return nil, false
	}

	var catalog itinerary.Catalog
	if err := json.Unmarshal(raw, &catalog); err != nil {
		p.logger.Warn("catalog cache entry corrupt", zap.String("key", key), zap.Error(err))
		return nil, false
	}
	catalogLookups.WithLabelValues(SourceCache, outcomeHit).Inc()
	return catalog, true
}

func (p *ChainProvider) toCache(ctx context.Context, key string, catalog itinerary.Catalog) {
	if p.store == nil {
		return
	}
	raw, err := json.Marshal(catalog)
	if err != nil {
		p.logger.Warn("catalog encode failed", zap.String("key", key), zap.Error(err))
		return
	}
	if err := p.store.Set(ctx, cacheKey(key), raw, p.opts.CacheTTL); err != nil {
		p.logger.Warn("catalog cache write failed", zap.String("key", key), zap.Error(err))
	}
}
