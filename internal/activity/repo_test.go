package activity

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupActivityTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{})
	require.NoError(t, err)

	activities := `
CREATE TABLE IF NOT EXISTS customer_activities (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  timestamp DATETIME NOT NULL,
  uid INTEGER NOT NULL,
  product_id TEXT NOT NULL,
  add_to_cart INTEGER NOT NULL DEFAULT 0,
  order_placed INTEGER NOT NULL DEFAULT 0
);`
	require.NoError(t, db.Exec(`DROP TABLE IF EXISTS customer_activities`).Error)
	require.NoError(t, db.Exec(activities).Error)
	return db
}

func TestRepositoryCreateDefaultsTimestamp(t *testing.T) {
	db := setupActivityTestDB(t)
	repo := NewRepository(db)

	before := time.Now().UTC().Add(-time.Second)
	event, err := repo.Create(context.Background(), RecordEventDTO{
		UserID:    3,
		ProductID: "sku-1",
		AddToCart: true,
	})
	require.NoError(t, err)
	require.NotZero(t, event.ID)
	assert.True(t, event.Timestamp.After(before), "timestamp defaults to now")
	assert.True(t, event.AddToCart)
	assert.False(t, event.OrderPlaced)
}

func TestRepositoryListForUserNewestFirst(t *testing.T) {
	db := setupActivityTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	base := time.Date(2026, time.March, 1, 12, 0, 0, 0, time.UTC)
	for i, productID := range []string{"sku-old", "sku-mid", "sku-new"} {
		at := base.Add(time.Duration(i) * time.Hour)
		_, err := repo.Create(ctx, RecordEventDTO{
			UserID:    7,
			ProductID: productID,
			Timestamp: &at,
		})
		require.NoError(t, err)
	}
	// another user's event must not leak in
	_, err := repo.Create(ctx, RecordEventDTO{UserID: 8, ProductID: "sku-other"})
	require.NoError(t, err)

	events, err := repo.ListForUser(ctx, 7, 0, 0)
	require.NoError(t, err)
	require.Len(t, events, 3)
	assert.Equal(t, "sku-new", events[0].ProductID)
	assert.Equal(t, "sku-mid", events[1].ProductID)
	assert.Equal(t, "sku-old", events[2].ProductID)
}

func TestRepositoryListForUserHonorsLimit(t *testing.T) {
	db := setupActivityTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		at := time.Date(2026, time.March, 1, 12, i, 0, 0, time.UTC)
		_, err := repo.Create(ctx, RecordEventDTO{UserID: 2, ProductID: "sku", Timestamp: &at})
		require.NoError(t, err)
	}

	events, err := repo.ListForUser(ctx, 2, 2, 0)
	require.NoError(t, err)
	assert.Len(t, events, 2)
}
