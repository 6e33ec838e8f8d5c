package catalog

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"trippin/internal/itinerary"
	"trippin/internal/models/db_models"
	"trippin/internal/repositories"
)

func newTestRepo(t *testing.T) repositories.DestinationRepository {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(db_models.AllModels()...))
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return repositories.NewDestinationRepository(db)
}

func TestSeedAndLookup(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo(t)
	builtin := BuiltinDestinations()

	require.NoError(t, Seed(ctx, repo, builtin, zap.NewNop()))
	// Seeding twice leaves existing destinations alone.
	require.NoError(t, Seed(ctx, repo, builtin, zap.NewNop()))

	src := NewDatabaseSource(repo)

	got, err := src.Lookup(ctx, "Paris")
	require.NoError(t, err)
	assert.Equal(t, 20, got.Size())

	want := builtin[0].Catalog
	for _, c := range itinerary.Categories {
		require.Len(t, got[c], len(want[c]), c)
		for i := range want[c] {
			assert.Equal(t, want[c][i].Name, got[c][i].Name)
			assert.True(t, want[c][i].Price.Equal(got[c][i].Price), "%s: %s vs %s", want[c][i].Name, want[c][i].Price, got[c][i].Price)
		}
	}

	names, err := src.Locations(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"New York", "Paris", "Tokyo"}, names)
}

func TestDatabaseSourceAliasesAndMisses(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo(t)
	require.NoError(t, Seed(ctx, repo, BuiltinDestinations(), zap.NewNop()))
	src := NewDatabaseSource(repo)

	got, err := src.Lookup(ctx, "nyc")
	require.NoError(t, err)
	assert.Equal(t, "Metropolitan Museum of Art", got[itinerary.Historical][0].Name)

	_, err = src.Lookup(ctx, "Atlantis")
	assert.ErrorIs(t, err, ErrLocationNotFound)
}
