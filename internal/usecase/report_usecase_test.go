package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/DRSN-tech/pos-backend/internal/domain"
	"github.com/DRSN-tech/pos-backend/internal/usecase"
	"github.com/DRSN-tech/pos-backend/pkg/e"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDashboardStats(t *testing.T) {
	t.Parallel()

	t.Run("empty store yields zeroes and formatted revenue", func(t *testing.T) {
		t.Parallel()

		productRepo := &stubProductRepo{
			countAndLowStockFn: func(ctx context.Context) (int64, int64, error) { return 0, 0, nil },
		}
		transactionRepo := &stubTransactionRepo{
			countAndRevenueFn: func(ctx context.Context) (int64, int64, error) { return 0, 0, nil },
		}
		cache := &stubCacheRepo{}
		uc := usecase.NewReportUC(productRepo, transactionRepo, cache, stubLogger{})

		stats, err := uc.DashboardStats(context.Background())
		require.NoError(t, err)
		assert.Zero(t, stats.TotalProducts)
		assert.Zero(t, stats.TotalTransactions)
		assert.Equal(t, "$0.00", stats.TotalRevenue)
		assert.Same(t, stats, cache.storedStats)
	})

	t.Run("warm cache skips repositories", func(t *testing.T) {
		t.Parallel()

		cached := usecase.NewDashboardStats(5, 1, 3, 1234)
		cache := &stubCacheRepo{stats: cached}
		uc := usecase.NewReportUC(&stubProductRepo{}, &stubTransactionRepo{}, cache, stubLogger{})

		stats, err := uc.DashboardStats(context.Background())
		require.NoError(t, err)
		assert.Same(t, cached, stats)
	})

	t.Run("cache failure falls through to repositories", func(t *testing.T) {
		t.Parallel()

		productRepo := &stubProductRepo{
			countAndLowStockFn: func(ctx context.Context) (int64, int64, error) { return 12, 2, nil },
		}
		transactionRepo := &stubTransactionRepo{
			countAndRevenueFn: func(ctx context.Context) (int64, int64, error) { return 4, 9999, nil },
		}
		cache := &stubCacheRepo{getErr: assert.AnError}
		uc := usecase.NewReportUC(productRepo, transactionRepo, cache, stubLogger{})

		stats, err := uc.DashboardStats(context.Background())
		require.NoError(t, err)
		assert.Equal(t, int64(12), stats.TotalProducts)
		assert.Equal(t, int64(2), stats.LowStockCount)
		assert.Equal(t, "$99.99", stats.TotalRevenue)
	})
}

func TestTopSellers(t *testing.T) {
	t.Parallel()

	transactionRepo := &stubTransactionRepo{
		listRecentFn: func(ctx context.Context, limit int) ([]domain.Transaction, error) {
			assert.Equal(t, 50, limit)
			return []domain.Transaction{
				{ID: 1, Items: []domain.SaleItem{
					{SKU: "SKU-1", Name: "Milk", Quantity: 3},
					{SKU: "SKU-2", Name: "Bread", Quantity: 1},
				}},
				{ID: 2, Items: []domain.SaleItem{
					{SKU: "SKU-1", Name: "Milk", Quantity: 2},
					{SKU: "SKU-3", Name: "Apples", Quantity: 5},
				}},
			}, nil
		},
	}
	uc := usecase.NewReportUC(&stubProductRepo{}, transactionRepo, &stubCacheRepo{}, stubLogger{})

	t.Run("aggregates by name descending", func(t *testing.T) {
		t.Parallel()

		rows, err := uc.TopSellers(context.Background(), 10)
		require.NoError(t, err)
		require.Len(t, rows, 3)
		assert.Equal(t, usecase.TopSellerRow{Name: "Apples", UnitsSold: 5}, rows[0])
		assert.Equal(t, usecase.TopSellerRow{Name: "Milk", UnitsSold: 5}, rows[1])
		assert.Equal(t, usecase.TopSellerRow{Name: "Bread", UnitsSold: 1}, rows[2])
	})

	t.Run("respects limit", func(t *testing.T) {
		t.Parallel()

		rows, err := uc.TopSellers(context.Background(), 1)
		require.NoError(t, err)
		require.Len(t, rows, 1)
		assert.Equal(t, "Apples", rows[0].Name)
	})
}

func TestListTransactions(t *testing.T) {
	t.Parallel()

	created := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	transactionRepo := &stubTransactionRepo{
		listFn: func(ctx context.Context) ([]domain.Transaction, error) {
			return []domain.Transaction{
				{ID: 2, TotalCents: 750, CreatedAt: created, Items: []domain.SaleItem{{SKU: "SKU-1", Name: "Milk", Quantity: 3}}},
			}, nil
		},
	}
	uc := usecase.NewReportUC(&stubProductRepo{}, transactionRepo, &stubCacheRepo{}, stubLogger{})

	summaries, err := uc.ListTransactions(context.Background())
	require.NoError(t, err)
	require.Len(t, summaries, 1)
	assert.Equal(t, int64(2), summaries[0].ID)
	assert.Equal(t, "$7.50", summaries[0].Total)
	assert.Equal(t, int32(3), summaries[0].ItemsCount)
}

func TestDeleteTransaction(t *testing.T) {
	t.Parallel()

	t.Run("deletes log entry without touching stock", func(t *testing.T) {
		t.Parallel()

		transactionRepo := &stubTransactionRepo{
			deleteFn: func(ctx context.Context, id int64) (bool, error) { return true, nil },
		}
		cache := &stubCacheRepo{}
		uc := usecase.NewReportUC(&stubProductRepo{}, transactionRepo, cache, stubLogger{})

		require.NoError(t, uc.DeleteTransaction(context.Background(), 42))
		assert.Equal(t, 1, cache.invalidated)
	})

	t.Run("missing entry", func(t *testing.T) {
		t.Parallel()

		transactionRepo := &stubTransactionRepo{
			deleteFn: func(ctx context.Context, id int64) (bool, error) { return false, nil },
		}
		uc := usecase.NewReportUC(&stubProductRepo{}, transactionRepo, &stubCacheRepo{}, stubLogger{})

		err := uc.DeleteTransaction(context.Background(), 404)
		assert.ErrorIs(t, err, e.ErrSaleNotFound)
	})
}

func TestWindowStart(t *testing.T) {
	t.Parallel()

	end := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, end.AddDate(0, 0, -7), usecase.WindowStart(end, "week"))
	assert.Equal(t, end.AddDate(0, 0, -30), usecase.WindowStart(end, "month"))
	assert.Equal(t, end.AddDate(0, 0, -365), usecase.WindowStart(end, "year"))
	assert.Equal(t, end.AddDate(0, 0, -30), usecase.WindowStart(end, "bogus"))
}
