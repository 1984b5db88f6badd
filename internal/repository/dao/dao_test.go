package dao

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupTestDB boots a throwaway Postgres container. Tests are skipped when
// Docker is not available, e.g. in a sandboxed CI step.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	if testing.Short() {
		t.Skip("skipping dao integration test in short mode")
	}

	pool, err := dockertest.NewPool("")
	if err != nil {
		t.Skipf("docker is not available: %v", err)
	}
	if err = pool.Client.Ping(); err != nil {
		t.Skipf("docker is not available: %v", err)
	}

	resource, err := pool.RunWithOptions(&dockertest.RunOptions{
		Repository: "postgres",
		Tag:        "16-alpine",
		Env: []string{
			"POSTGRES_USER=test",
			"POSTGRES_PASSWORD=test",
			"POSTGRES_DB=lotecerto_test",
		},
	}, func(config *docker.HostConfig) {
		config.AutoRemove = true
		config.RestartPolicy = docker.RestartPolicy{Name: "no"}
	})
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = pool.Purge(resource)
	})
	_ = resource.Expire(300)

	dsn := fmt.Sprintf("host=localhost port=%v user=test password=test dbname=lotecerto_test sslmode=disable",
		resource.GetPort("5432/tcp"))

	var db *gorm.DB
	pool.MaxWait = 60 * time.Second
	err = pool.Retry(func() error {
		db, err = gorm.Open(postgres.Open(dsn), &gorm.Config{
			Logger: logger.Default.LogMode(logger.Silent),
		})
		if err != nil {
			return err
		}

		sqlDB, err := db.DB()
		if err != nil {
			return err
		}

		return sqlDB.Ping()
	})
	require.NoError(t, err)

	require.NoError(t, InitTables(db))

	return db
}

func TestDAOs_Integration(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	userDAO := NewUserDAO(db)
	auctionDAO := NewAuctionDAO(db)
	lotDAO := NewLotDAO(db)

	user, err := userDAO.Insert(ctx, User{Email: "ana@example.com", Password: "hash", Name: "Ana", Theme: "light"})
	require.NoError(t, err)
	require.NotZero(t, user.ID)

	t.Run("duplicate email maps to sentinel", func(t *testing.T) {
		_, err := userDAO.Insert(ctx, User{Email: "ana@example.com", Password: "hash", Name: "Ana 2", Theme: "light"})
		assert.ErrorIs(t, err, ErrUserEmailExists)
	})

	t.Run("update theme", func(t *testing.T) {
		require.NoError(t, userDAO.UpdateTheme(ctx, user.ID, "dark"))

		found, err := userDAO.FindByID(ctx, user.ID)
		require.NoError(t, err)
		assert.Equal(t, "dark", found.Theme)

		assert.ErrorIs(t, userDAO.UpdateTheme(ctx, 9999, "dark"), ErrUserNotFound)
	})

	auction, err := auctionDAO.Insert(ctx, Auction{
		UserID:                 user.ID,
		Name:                   "Leilão Detran SP",
		Budget:                 decimal.RequireFromString("5000"),
		Type:                   "Detran",
		DefaultFeePercent:      decimal.RequireFromString("5"),
		DefaultPatioFeePercent: decimal.Zero,
		Status:                 "active",
	})
	require.NoError(t, err)

	t.Run("numeric columns round-trip exactly", func(t *testing.T) {
		found, err := auctionDAO.FindByID(ctx, auction.ID)
		require.NoError(t, err)
		assert.True(t, found.Budget.Equal(decimal.RequireFromString("5000")), found.Budget.String())
		assert.True(t, found.DefaultFeePercent.Equal(decimal.RequireFromString("5")))
	})

	winning := decimal.RequireFromString("1000")
	lot, err := lotDAO.Insert(ctx, Lot{
		AuctionID:  auction.ID,
		Name:       "Gol G5",
		Status:     "purchased",
		WinningBid: &winning,
		Images:     []byte(`["data:image/jpeg;base64,xxx"]`),
		Items:      []byte(`[{"id":"a","name":"Despachante","cost":"350.5","checked":false}]`),
	})
	require.NoError(t, err)

	t.Run("jsonb columns round-trip", func(t *testing.T) {
		found, err := lotDAO.FindByID(ctx, lot.ID)
		require.NoError(t, err)
		assert.JSONEq(t, `["data:image/jpeg;base64,xxx"]`, string(found.Images))
		require.NotNil(t, found.WinningBid)
		assert.True(t, found.WinningBid.Equal(winning))
	})

	t.Run("purchased lots joined through auctions", func(t *testing.T) {
		lots, err := lotDAO.FindPurchasedByUserID(ctx, user.ID)
		require.NoError(t, err)
		require.Len(t, lots, 1)
		assert.Equal(t, lot.ID, lots[0].ID)

		lots, err = lotDAO.FindPurchasedByUserID(ctx, 9999)
		require.NoError(t, err)
		assert.Empty(t, lots)
	})

	t.Run("delete auction removes lots", func(t *testing.T) {
		require.NoError(t, auctionDAO.DeleteWithLots(ctx, auction.ID))

		_, err := auctionDAO.FindByID(ctx, auction.ID)
		assert.ErrorIs(t, err, ErrAuctionNotFound)

		_, err = lotDAO.FindByID(ctx, lot.ID)
		assert.ErrorIs(t, err, ErrLotNotFound)

		assert.ErrorIs(t, auctionDAO.DeleteWithLots(ctx, auction.ID), ErrAuctionNotFound)
	})
}
