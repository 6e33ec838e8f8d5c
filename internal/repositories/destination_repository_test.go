package repositories

import (
	"context"
	"fmt"
	"testing"

	"github.com/lib/pq"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"trippin/internal/models/db_models"
)

func newTestDB(t *testing.T) *gorm.DB {
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
	return db
}

func lisbon() *db_models.Destination {
	return &db_models.Destination{
		Name:    "Lisbon",
		Slug:    "lisbon",
		Aliases: pq.StringArray{"Lisboa"},
		Places: []db_models.Place{
			{Category: "food", Name: "Pastéis de Belém", Price: decimal.RequireFromString("1.5"), Position: 1},
			{Category: "historical", Name: "Jerónimos Monastery", Price: decimal.NewFromInt(10), Position: 0},
		},
	}
}

func TestDestinationRepositoryCreateAndGet(t *testing.T) {
	ctx := context.Background()
	repo := NewDestinationRepository(newTestDB(t))

	require.NoError(t, repo.Create(ctx, lisbon()))

	got, err := repo.GetBySlug(ctx, "lisbon")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "Lisbon", got.Name)
	assert.Equal(t, pq.StringArray{"Lisboa"}, got.Aliases)
	require.Len(t, got.Places, 2)
	assert.Equal(t, "Jerónimos Monastery", got.Places[0].Name)
	assert.True(t, decimal.RequireFromString("1.5").Equal(got.Places[1].Price))
	assert.Equal(t, got.ID, got.Places[0].DestinationID)

	missing, err := repo.GetBySlug(ctx, "porto")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestDestinationRepositoryFindByAlias(t *testing.T) {
	ctx := context.Background()
	repo := NewDestinationRepository(newTestDB(t))
	require.NoError(t, repo.Create(ctx, lisbon()))
	require.NoError(t, repo.Create(ctx, &db_models.Destination{Name: "Porto", Slug: "porto"}))

	got, err := repo.FindByAlias(ctx, "lisboa")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "lisbon", got.Slug)
	assert.Len(t, got.Places, 2)

	none, err := repo.FindByAlias(ctx, "oporto")
	require.NoError(t, err)
	assert.Nil(t, none)
}

func TestDestinationRepositoryListAndExists(t *testing.T) {
	ctx := context.Background()
	repo := NewDestinationRepository(newTestDB(t))
	require.NoError(t, repo.Create(ctx, &db_models.Destination{Name: "Porto", Slug: "porto"}))
	require.NoError(t, repo.Create(ctx, lisbon()))

	list, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "Lisbon", list[0].Name)
	assert.Equal(t, "Porto", list[1].Name)

	ok, err := repo.ExistsBySlug(ctx, "porto")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = repo.ExistsBySlug(ctx, "faro")
	require.NoError(t, err)
	assert.False(t, ok)

	assert.Error(t, repo.Create(ctx, &db_models.Destination{Name: "Porto again", Slug: "porto"}))
}
