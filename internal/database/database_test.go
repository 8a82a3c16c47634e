package database

import (
	"context"
	"testing"

	"catalog/internal/config"
	"catalog/internal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestDB(t *testing.T) config.DatabaseConfig {
	t.Helper()
	return config.DatabaseConfig{
		Driver: config.DriverSQLite,
		DSN:    "file:" + uuid.NewString() + "?mode=memory&cache=shared",
	}
}

func TestSeed_InsertsCatalogOnce(t *testing.T) {
	db, err := Open(openTestDB(t))
	require.NoError(t, err)
	t.Cleanup(func() { _ = Close(db) })

	seeded, err := Seed(context.Background(), db)
	require.NoError(t, err)
	assert.True(t, seeded)

	var categories, products int64
	require.NoError(t, db.Model(&models.Category{}).Count(&categories).Error)
	require.NoError(t, db.Model(&models.Product{}).Count(&products).Error)
	assert.Equal(t, int64(5), categories)
	assert.Equal(t, int64(20), products)

	seeded, err = Seed(context.Background(), db)
	require.NoError(t, err)
	assert.False(t, seeded)

	require.NoError(t, db.Model(&models.Product{}).Count(&products).Error)
	assert.Equal(t, int64(20), products)
}

func TestOpen_RejectsUnknownDriver(t *testing.T) {
	_, err := Open(config.DatabaseConfig{Driver: "oracle", DSN: "x"})
	assert.Error(t, err)
}

func TestSqliteDSN(t *testing.T) {
	assert.Equal(t, "catalog.db?_foreign_keys=on", sqliteDSN("catalog.db"))
	assert.Equal(t, "file:x?mode=memory&_foreign_keys=on", sqliteDSN("file:x?mode=memory"))
	assert.Equal(t, "catalog.db?_foreign_keys=off", sqliteDSN("catalog.db?_foreign_keys=off"))
}
