package usecase_test

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/DRSN-tech/pos-backend/internal/domain"
	"github.com/DRSN-tech/pos-backend/internal/usecase"
	"github.com/DRSN-tech/pos-backend/pkg/e"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCheckoutFixture(productRepo *stubProductRepo) (*usecase.CheckoutUseCase, *fakeTx, *stubOutboxRepo, *stubCacheRepo, *stubReceipts) {
	tx := &fakeTx{}
	outbox := &stubOutboxRepo{}
	cache := &stubCacheRepo{}
	receipts := &stubReceipts{}

	transactionRepo := &stubTransactionRepo{
		createFn: func(ctx context.Context, trans *domain.Transaction) (*domain.Transaction, error) {
			created := *trans
			created.ID = 42
			return &created, nil
		},
	}

	uc := usecase.NewCheckoutUC(productRepo, transactionRepo, outbox, &fakeDBPool{tx: tx}, cache, receipts, stubLogger{})
	return uc, tx, outbox, cache, receipts
}

func TestCheckout(t *testing.T) {
	t.Parallel()

	t.Run("happy path commits and totals server side", func(t *testing.T) {
		t.Parallel()

		prices := map[string]int64{"SKU-1": 250, "SKU-2": 199}
		names := map[string]string{"SKU-1": "Milk", "SKU-2": "Bread"}
		productRepo := &stubProductRepo{
			decrementStockFn: func(ctx context.Context, sku string, qty int32) (*usecase.StockDecrementRes, error) {
				return usecase.NewStockDecrementRes(names[sku], prices[sku], 100), nil
			},
		}

		uc, tx, outbox, cache, receipts := newCheckoutFixture(productRepo)

		res, err := uc.Checkout(context.Background(), usecase.NewCheckoutReq([]usecase.CheckoutLine{
			{SKU: "SKU-1", Quantity: 2},
			{SKU: "SKU-2", Quantity: 3},
		}))
		require.NoError(t, err)

		assert.Equal(t, int64(42), res.TransactionID)
		assert.Equal(t, int64(2*250+3*199), res.TotalCents)
		assert.Equal(t, "$10.97", res.Total)
		require.Len(t, res.Items, 2)
		assert.Equal(t, "Milk", res.Items[0].Name)

		assert.True(t, tx.committed)
		assert.False(t, tx.rolledBack)
		assert.Equal(t, 1, cache.invalidated)
		require.Len(t, receipts.archived, 1)

		require.Len(t, outbox.created, 1)
		event := outbox.created[0]
		assert.Equal(t, usecase.SaleCompleted, event.EventType)
		assert.Equal(t, int64(42), event.TransactionID)
		assert.NotEmpty(t, event.EventID)

		var payload usecase.SaleCompletedPayload
		require.NoError(t, json.Unmarshal(event.Payload, &payload))
		assert.Equal(t, int64(42), payload.TransactionID)
		assert.Equal(t, res.TotalCents, payload.TotalCents)
	})

	t.Run("duplicate sku lines merge into one item", func(t *testing.T) {
		t.Parallel()

		decrements := make([]int32, 0, 2)
		productRepo := &stubProductRepo{
			decrementStockFn: func(ctx context.Context, sku string, qty int32) (*usecase.StockDecrementRes, error) {
				decrements = append(decrements, qty)
				return usecase.NewStockDecrementRes("Milk", 250, 100), nil
			},
		}

		uc, tx, _, _, _ := newCheckoutFixture(productRepo)

		res, err := uc.Checkout(context.Background(), usecase.NewCheckoutReq([]usecase.CheckoutLine{
			{SKU: "SKU-1", Quantity: 1},
			{SKU: "SKU-1", Quantity: 2},
		}))
		require.NoError(t, err)

		// Списывается каждая строка, но в записи продажи позиция одна
		assert.Equal(t, []int32{1, 2}, decrements)
		require.Len(t, res.Items, 1)
		assert.Equal(t, "SKU-1", res.Items[0].SKU)
		assert.Equal(t, int32(3), res.Items[0].Quantity)
		assert.Equal(t, int64(3*250), res.TotalCents)
		assert.True(t, tx.committed)
	})

	t.Run("insufficient stock rolls back everything", func(t *testing.T) {
		t.Parallel()

		calls := 0
		productRepo := &stubProductRepo{
			decrementStockFn: func(ctx context.Context, sku string, qty int32) (*usecase.StockDecrementRes, error) {
				calls++
				if sku == "SKU-2" {
					return nil, e.NewInsufficientStockError("Bread", qty, 1)
				}
				return usecase.NewStockDecrementRes("Milk", 250, 8), nil
			},
		}

		uc, tx, outbox, cache, receipts := newCheckoutFixture(productRepo)

		_, err := uc.Checkout(context.Background(), usecase.NewCheckoutReq([]usecase.CheckoutLine{
			{SKU: "SKU-1", Quantity: 2},
			{SKU: "SKU-2", Quantity: 5},
		}))
		require.Error(t, err)
		assert.ErrorIs(t, err, e.ErrInsufficientStock)

		var stockErr *e.InsufficientStockError
		require.ErrorAs(t, err, &stockErr)
		assert.Equal(t, "Bread", stockErr.Name)
		assert.Equal(t, int32(5), stockErr.Required)
		assert.Equal(t, int32(1), stockErr.Available)

		assert.Equal(t, 2, calls)
		assert.True(t, tx.rolledBack)
		assert.False(t, tx.committed)
		assert.Empty(t, outbox.created)
		assert.Zero(t, cache.invalidated)
		assert.Empty(t, receipts.archived)
	})

	t.Run("unknown sku fails the whole bill", func(t *testing.T) {
		t.Parallel()

		productRepo := &stubProductRepo{
			decrementStockFn: func(ctx context.Context, sku string, qty int32) (*usecase.StockDecrementRes, error) {
				return nil, e.ErrProductNotFound
			},
		}

		uc, tx, _, _, _ := newCheckoutFixture(productRepo)

		_, err := uc.Checkout(context.Background(), usecase.NewCheckoutReq([]usecase.CheckoutLine{
			{SKU: "SKU-404", Quantity: 1},
		}))
		assert.ErrorIs(t, err, e.ErrProductNotFound)
		assert.True(t, tx.rolledBack)
	})

	t.Run("validation", func(t *testing.T) {
		t.Parallel()

		uc, tx, _, _, _ := newCheckoutFixture(&stubProductRepo{})

		_, err := uc.Checkout(context.Background(), usecase.NewCheckoutReq(nil))
		assert.ErrorIs(t, err, e.ErrEmptyBill)

		_, err = uc.Checkout(context.Background(), usecase.NewCheckoutReq([]usecase.CheckoutLine{
			{SKU: "SKU-1", Quantity: 0},
		}))
		assert.ErrorIs(t, err, e.ErrInvalidQuantity)

		_, err = uc.Checkout(context.Background(), usecase.NewCheckoutReq([]usecase.CheckoutLine{
			{SKU: "", Quantity: 1},
		}))
		assert.ErrorIs(t, err, e.ErrMissingFields)

		// До транзакции дело не дошло
		assert.False(t, tx.committed)
		assert.False(t, tx.rolledBack)
	})
}
