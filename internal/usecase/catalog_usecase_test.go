package usecase_test

import (
	"context"
	"testing"

	"github.com/DRSN-tech/pos-backend/internal/domain"
	"github.com/DRSN-tech/pos-backend/internal/usecase"
	"github.com/DRSN-tech/pos-backend/pkg/e"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogAddProduct(t *testing.T) {
	t.Parallel()

	t.Run("creates product and invalidates stats", func(t *testing.T) {
		t.Parallel()

		productRepo := &stubProductRepo{
			createFn: func(ctx context.Context, product *domain.Product) (*domain.Product, error) {
				return product, nil
			},
		}
		cache := &stubCacheRepo{}
		uc := usecase.NewCatalogUC(productRepo, cache, &stubParser{}, stubLogger{})

		product, err := uc.AddProduct(context.Background(), usecase.NewAddProductReq("SKU-1", "Milk", 250, 10))
		require.NoError(t, err)
		assert.Equal(t, "SKU-1", product.SKU)
		assert.Equal(t, int64(250), product.PriceCents)
		assert.Equal(t, 1, cache.invalidated)
	})

	t.Run("rejects blank fields", func(t *testing.T) {
		t.Parallel()

		uc := usecase.NewCatalogUC(&stubProductRepo{}, &stubCacheRepo{}, &stubParser{}, stubLogger{})

		_, err := uc.AddProduct(context.Background(), usecase.NewAddProductReq("  ", "Milk", 250, 10))
		assert.ErrorIs(t, err, e.ErrMissingFields)

		_, err = uc.AddProduct(context.Background(), usecase.NewAddProductReq("SKU-1", "", 250, 10))
		assert.ErrorIs(t, err, e.ErrMissingFields)
	})

	t.Run("rejects negative price and quantity", func(t *testing.T) {
		t.Parallel()

		uc := usecase.NewCatalogUC(&stubProductRepo{}, &stubCacheRepo{}, &stubParser{}, stubLogger{})

		_, err := uc.AddProduct(context.Background(), usecase.NewAddProductReq("SKU-1", "Milk", -1, 10))
		assert.ErrorIs(t, err, e.ErrInvalidPrice)

		_, err = uc.AddProduct(context.Background(), usecase.NewAddProductReq("SKU-1", "Milk", 250, -1))
		assert.ErrorIs(t, err, e.ErrInvalidQuantity)
	})

	t.Run("propagates duplicate sku", func(t *testing.T) {
		t.Parallel()

		productRepo := &stubProductRepo{
			createFn: func(ctx context.Context, product *domain.Product) (*domain.Product, error) {
				return nil, e.ErrDuplicateSKU
			},
		}
		cache := &stubCacheRepo{}
		uc := usecase.NewCatalogUC(productRepo, cache, &stubParser{}, stubLogger{})

		_, err := uc.AddProduct(context.Background(), usecase.NewAddProductReq("SKU-1", "Milk", 250, 10))
		assert.ErrorIs(t, err, e.ErrDuplicateSKU)
		assert.Zero(t, cache.invalidated)
	})
}

func TestCatalogDeleteProduct(t *testing.T) {
	t.Parallel()

	t.Run("deletes existing product", func(t *testing.T) {
		t.Parallel()

		productRepo := &stubProductRepo{
			deleteFn: func(ctx context.Context, sku string) (bool, error) { return true, nil },
		}
		cache := &stubCacheRepo{}
		uc := usecase.NewCatalogUC(productRepo, cache, &stubParser{}, stubLogger{})

		require.NoError(t, uc.DeleteProduct(context.Background(), "SKU-1"))
		assert.Equal(t, 1, cache.invalidated)
	})

	t.Run("missing sku is a distinct outcome", func(t *testing.T) {
		t.Parallel()

		productRepo := &stubProductRepo{
			deleteFn: func(ctx context.Context, sku string) (bool, error) { return false, nil },
		}
		uc := usecase.NewCatalogUC(productRepo, &stubCacheRepo{}, &stubParser{}, stubLogger{})

		err := uc.DeleteProduct(context.Background(), "SKU-404")
		assert.ErrorIs(t, err, e.ErrProductNotFound)
	})
}

func TestCatalogAdjustQuantity(t *testing.T) {
	t.Parallel()

	t.Run("applies delta", func(t *testing.T) {
		t.Parallel()

		productRepo := &stubProductRepo{
			adjustQuantityFn: func(ctx context.Context, sku string, delta int32) (*domain.Product, error) {
				return &domain.Product{SKU: sku, Name: "Milk", Quantity: 7}, nil
			},
		}
		cache := &stubCacheRepo{}
		uc := usecase.NewCatalogUC(productRepo, cache, &stubParser{}, stubLogger{})

		product, err := uc.AdjustQuantity(context.Background(), usecase.NewAdjustQuantityReq("SKU-1", -3))
		require.NoError(t, err)
		assert.Equal(t, int32(7), product.Quantity)
		assert.Equal(t, 1, cache.invalidated)
	})

	t.Run("rejects going below zero", func(t *testing.T) {
		t.Parallel()

		productRepo := &stubProductRepo{
			adjustQuantityFn: func(ctx context.Context, sku string, delta int32) (*domain.Product, error) {
				return nil, e.NewInsufficientStockError("Milk", 5, 2)
			},
		}
		uc := usecase.NewCatalogUC(productRepo, &stubCacheRepo{}, &stubParser{}, stubLogger{})

		_, err := uc.AdjustQuantity(context.Background(), usecase.NewAdjustQuantityReq("SKU-1", -5))
		assert.ErrorIs(t, err, e.ErrInsufficientStock)
	})
}

func TestCatalogImportPriceList(t *testing.T) {
	t.Parallel()

	t.Run("creates rows and skips duplicates", func(t *testing.T) {
		t.Parallel()

		parser := &stubParser{rows: []usecase.PriceListRow{
			{SKU: "SKU-1", Name: "Milk", PriceCents: 250, Quantity: 10},
			{SKU: "SKU-2", Name: "Bread", PriceCents: 150, Quantity: 5},
			{SKU: "SKU-1", Name: "Milk again", PriceCents: 300, Quantity: 1},
		}}

		seen := map[string]bool{}
		productRepo := &stubProductRepo{
			createFn: func(ctx context.Context, product *domain.Product) (*domain.Product, error) {
				if seen[product.SKU] {
					return nil, e.ErrDuplicateSKU
				}
				seen[product.SKU] = true
				return product, nil
			},
		}
		cache := &stubCacheRepo{}
		uc := usecase.NewCatalogUC(productRepo, cache, parser, stubLogger{})

		res, err := uc.ImportPriceList(context.Background(), &usecase.ImportPriceListReq{Data: []byte("xlsx"), Filename: "price.xlsx"})
		require.NoError(t, err)
		assert.Equal(t, 2, res.Created)
		assert.Equal(t, []string{"SKU-1"}, res.SkippedSKUs)
		assert.Equal(t, 1, cache.invalidated)
	})

	t.Run("empty price list", func(t *testing.T) {
		t.Parallel()

		uc := usecase.NewCatalogUC(&stubProductRepo{}, &stubCacheRepo{}, &stubParser{err: e.ErrEmptyPriceList}, stubLogger{})

		_, err := uc.ImportPriceList(context.Background(), &usecase.ImportPriceListReq{Data: []byte{}})
		assert.ErrorIs(t, err, e.ErrEmptyPriceList)
	})
}
