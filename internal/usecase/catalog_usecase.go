package usecase

import (
	"context"
	"errors"
	"strings"

	"github.com/DRSN-tech/pos-backend/internal/domain"
	"github.com/DRSN-tech/pos-backend/pkg/e"
	"github.com/DRSN-tech/pos-backend/pkg/logger"
)

// CatalogUseCase реализует операции каталога товаров.
type CatalogUseCase struct {
	productRepo ProductRepository
	cacheRepo   CacheRepository
	parser      PriceListParser
	logger      logger.Logger
}

func NewCatalogUC(
	productRepo ProductRepository,
	cacheRepo CacheRepository,
	parser PriceListParser,
	logger logger.Logger,
) *CatalogUseCase {
	return &CatalogUseCase{
		productRepo: productRepo,
		cacheRepo:   cacheRepo,
		parser:      parser,
		logger:      logger,
	}
}

// AddProduct добавляет товар с уникальным SKU.
// Повторный SKU отклоняется с e.ErrDuplicateSKU, существующая запись не меняется.
func (c *CatalogUseCase) AddProduct(ctx context.Context, req *AddProductReq) (*domain.Product, error) {
	const op = "CatalogUseCase.AddProduct"

	if err := validateProduct(req); err != nil {
		return nil, e.Wrap(op, err)
	}

	product, err := c.productRepo.Create(ctx, domain.NewProduct(req.SKU, req.Name, req.PriceCents, req.Quantity))
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	c.invalidateStats(ctx, op)
	return product, nil
}

// DeleteProduct удаляет товар. Отсутствующий SKU — отдельный исход,
// а не молчаливый успех; прошлые продажи не затрагиваются.
func (c *CatalogUseCase) DeleteProduct(ctx context.Context, sku string) error {
	const op = "CatalogUseCase.DeleteProduct"

	if strings.TrimSpace(sku) == "" {
		return e.Wrap(op, e.ErrMissingFields)
	}

	found, err := c.productRepo.Delete(ctx, sku)
	if err != nil {
		return e.Wrap(op, err)
	}
	if !found {
		return e.Wrap(op, e.ErrProductNotFound)
	}

	c.invalidateStats(ctx, op)
	return nil
}

// ListProducts возвращает все товары, упорядоченные по имени.
func (c *CatalogUseCase) ListProducts(ctx context.Context) ([]domain.Product, error) {
	return c.productRepo.List(ctx)
}

// SearchProducts ищет товары по подстроке в имени или SKU.
func (c *CatalogUseCase) SearchProducts(ctx context.Context, term string) ([]domain.Product, error) {
	return c.productRepo.Search(ctx, term)
}

// AdjustQuantity применяет дельту к остатку. Результат ниже нуля
// отклоняется на уровне хранилища, остаток не меняется.
func (c *CatalogUseCase) AdjustQuantity(ctx context.Context, req *AdjustQuantityReq) (*domain.Product, error) {
	const op = "CatalogUseCase.AdjustQuantity"

	if strings.TrimSpace(req.SKU) == "" {
		return nil, e.Wrap(op, e.ErrMissingFields)
	}

	product, err := c.productRepo.AdjustQuantity(ctx, req.SKU, req.Delta)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	c.invalidateStats(ctx, op)
	return product, nil
}

// ImportPriceList создаёт товары из xlsx-прайса, пропуская дубликаты SKU.
func (c *CatalogUseCase) ImportPriceList(ctx context.Context, req *ImportPriceListReq) (*ImportPriceListRes, error) {
	const op = "CatalogUseCase.ImportPriceList"

	rows, err := c.parser.ParsePriceList(req.Data)
	if err != nil {
		return nil, e.Wrap(op, err)
	}
	if len(rows) == 0 {
		return nil, e.Wrap(op, e.ErrEmptyPriceList)
	}

	res := &ImportPriceListRes{}
	for _, row := range rows {
		addReq := NewAddProductReq(row.SKU, row.Name, row.PriceCents, row.Quantity)
		if err := validateProduct(addReq); err != nil {
			return nil, e.Wrap(op, e.Wrap(row.SKU, err))
		}

		_, err := c.productRepo.Create(ctx, domain.NewProduct(row.SKU, row.Name, row.PriceCents, row.Quantity))
		if err != nil {
			if errors.Is(err, e.ErrDuplicateSKU) {
				res.SkippedSKUs = append(res.SkippedSKUs, row.SKU)
				continue
			}
			return nil, e.Wrap(op, err)
		}
		res.Created++
	}

	c.invalidateStats(ctx, op)
	return res, nil
}

func (c *CatalogUseCase) invalidateStats(ctx context.Context, op string) {
	if err := c.cacheRepo.InvalidateDashboardStats(ctx); err != nil {
		c.logger.Warnf("failed to invalidate stats cache: %v", e.Wrap(op, err))
	}
}

// validateProduct проверяет корректность входных данных товара.
func validateProduct(req *AddProductReq) error {
	if strings.TrimSpace(req.SKU) == "" || strings.TrimSpace(req.Name) == "" {
		return e.ErrMissingFields
	}

	if req.PriceCents < 0 {
		return e.ErrInvalidPrice
	}

	if req.Quantity < 0 {
		return e.ErrInvalidQuantity
	}

	return nil
}
