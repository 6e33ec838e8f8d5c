package catalog_fx

import (
	"context"
	"time"

	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"trippin/internal/catalog"
	"trippin/internal/config"
	"trippin/internal/repositories"
)

var Module = fx.Provide(
	provideSources, provideCatalogProvider)

// provideSources orders the catalog sources: curated data first, then the
// remote ones that are configured.
func provideSources(cfg *config.Config, db *gorm.DB, logger *zap.Logger) ([]catalog.Source, error) {
	var sources []catalog.Source

	if db != nil {
		repo := repositories.NewDestinationRepository(db)
		if cfg.SeedCatalog {
			ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			defer cancel()
			if err := catalog.Seed(ctx, repo, catalog.BuiltinDestinations(), logger); err != nil {
				return nil, err
			}
		}
		sources = append(sources, catalog.NewDatabaseSource(repo))
	} else {
		sources = append(sources, catalog.NewStaticSource(catalog.BuiltinDestinations()))
	}

	if cfg.MapboxAccessToken != "" {
		sources = append(sources, catalog.NewMapboxSource(catalog.MapboxConfig{
			AccessToken:   cfg.MapboxAccessToken,
			BaseURL:       cfg.MapboxBaseURL,
			RatePerSecond: cfg.MapboxRatePerSecond,
			Limit:         cfg.MapboxResultsPerCategory,
		}, logger))
	}

	if cfg.OpenAIAPIKey != "" {
		sources = append(sources, catalog.NewOpenAISource(catalog.OpenAIConfig{
			APIKey:  cfg.OpenAIAPIKey,
			BaseURL: cfg.OpenAIBaseURL,
			Model:   cfg.OpenAIModel,
		}))
	}

	names := make([]string, 0, len(sources))
	for _, s := range sources {
		names = append(names, s.Name())
	}
	logger.Info("catalog sources configured", zap.Strings("sources", names))

	return sources, nil
}

func provideCatalogProvider(cfg *config.Config, store catalog.Store, sources []catalog.Source, logger *zap.Logger) *catalog.ChainProvider {
	return catalog.NewChainProvider(logger, store, catalog.Options{
		CacheTTL:      cfg.CatalogCacheTTL,
		LookupTimeout: cfg.CatalogLookupTimeout,
	}, sources...)
}
