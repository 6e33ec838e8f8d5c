package db_fx

import (
	"context"
	"time"

	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"trippin/internal/config"
	"trippin/internal/infra"
)

var Module = fx.Provide(
	provideDB)

// provideDB yields a nil *gorm.DB when POSTGRES_URL is unset.
func provideDB(lc fx.Lifecycle, cfg *config.Config, logger *zap.Logger) (*gorm.DB, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	db, err := infra.InitPostgresql(ctx, cfg.PostgresURL, logger)
	if err != nil || db == nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			infra.ClosePostgresql(db, logger)
			return nil
		},
	})
	return db, nil
}
