package pgdb

import (
	"context"
	"errors"

	"github.com/DRSN-tech/pos-backend/internal/domain"
	"github.com/DRSN-tech/pos-backend/internal/repository/pgdb/converter"
	"github.com/DRSN-tech/pos-backend/internal/usecase"
	"github.com/DRSN-tech/pos-backend/pkg/e"
	"github.com/DRSN-tech/pos-backend/pkg/tr"
	"github.com/jackc/pgx/v5"
	"github.com/jimlawless/whereami"
)

// lowStockThreshold — остаток, ниже которого товар считается заканчивающимся.
const lowStockThreshold = 5

// ProductRepo реализует репозиторий каталога поверх PostgreSQL.
type ProductRepo struct {
	pool Querier
	conv converter.ProductConverter
}

func NewProductRepo(pool Querier, conv converter.ProductConverter) *ProductRepo {
	return &ProductRepo{
		pool: pool,
		conv: conv,
	}
}

// Create вставляет товар. Повторный SKU отклоняется с e.ErrDuplicateSKU,
// существующая запись остаётся нетронутой.
func (p *ProductRepo) Create(ctx context.Context, product *domain.Product) (*domain.Product, error) {
	query := `
		INSERT INTO products (sku, name, price_cents, quantity)
		VALUES ($1, $2, $3, $4)
		RETURNING sku, name, price_cents, quantity, created_at, updated_at;
	`

	var model converter.ProductModel
	err := p.pool.QueryRow(ctx, query, product.SKU, product.Name, product.PriceCents, product.Quantity).
		Scan(
			&model.SKU, &model.Name, &model.PriceCents, &model.Quantity,
			&model.CreatedAt, &model.UpdatedAt,
		)
	if err != nil {
		if postgresDuplicate(err) {
			return nil, e.Wrap(whereami.WhereAmI(), e.ErrDuplicateSKU)
		}
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return p.conv.ToEntity(&model), nil
}

// GetBySKU возвращает товар по SKU или e.ErrProductNotFound.
func (p *ProductRepo) GetBySKU(ctx context.Context, sku string) (*domain.Product, error) {
	query := `
		SELECT sku, name, price_cents, quantity, created_at, updated_at
		FROM products
		WHERE sku = $1;
	`

	var model converter.ProductModel
	err := p.pool.QueryRow(ctx, query, sku).
		Scan(
			&model.SKU, &model.Name, &model.PriceCents, &model.Quantity,
			&model.CreatedAt, &model.UpdatedAt,
		)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, e.Wrap(whereami.WhereAmI(), e.ErrProductNotFound)
		}
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return p.conv.ToEntity(&model), nil
}

// List возвращает все товары, упорядоченные по имени.
func (p *ProductRepo) List(ctx context.Context) ([]domain.Product, error) {
	query := `
		SELECT sku, name, price_cents, quantity, created_at, updated_at
		FROM products
		ORDER BY name;
	`

	return p.queryProducts(ctx, query)
}

// Search возвращает товары, имя или SKU которых содержит подстроку term.
// ILIKE повторяет регистронезависимое поведение LIKE исходного хранилища.
func (p *ProductRepo) Search(ctx context.Context, term string) ([]domain.Product, error) {
	query := `
		SELECT sku, name, price_cents, quantity, created_at, updated_at
		FROM products
		WHERE name ILIKE '%' || $1 || '%' OR sku ILIKE '%' || $1 || '%'
		ORDER BY name;
	`

	return p.queryProducts(ctx, query, term)
}

// Delete удаляет товар и сообщает, была ли запись найдена.
func (p *ProductRepo) Delete(ctx context.Context, sku string) (bool, error) {
	tag, err := p.pool.Exec(ctx, `DELETE FROM products WHERE sku = $1;`, sku)
	if err != nil {
		return false, e.Wrap(whereami.WhereAmI(), err)
	}

	return tag.RowsAffected() > 0, nil
}

// AdjustQuantity применяет дельту к остатку одним условным обновлением:
// результат ниже нуля не проходит, остаток не меняется.
func (p *ProductRepo) AdjustQuantity(ctx context.Context, sku string, delta int32) (*domain.Product, error) {
	query := `
		UPDATE products
		SET quantity = quantity + $2, updated_at = NOW()
		WHERE sku = $1 AND quantity + $2 >= 0
		RETURNING sku, name, price_cents, quantity, created_at, updated_at;
	`

	var model converter.ProductModel
	err := p.pool.QueryRow(ctx, query, sku, delta).
		Scan(
			&model.SKU, &model.Name, &model.PriceCents, &model.Quantity,
			&model.CreatedAt, &model.UpdatedAt,
		)
	if err == nil {
		return p.conv.ToEntity(&model), nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	// Либо товара нет, либо дельта увела бы остаток в минус.
	current, getErr := p.GetBySKU(ctx, sku)
	if getErr != nil {
		return nil, getErr
	}

	return nil, e.Wrap(whereami.WhereAmI(),
		e.NewInsufficientStockError(current.Name, -delta, current.Quantity))
}

// DecrementStock атомарно списывает qty единиц внутри транзакции из
// контекста. Проверка остатка и декремент — один оператор: второй
// оформляемый счёт не может прочитать остаток между ними.
func (p *ProductRepo) DecrementStock(ctx context.Context, sku string, qty int32) (*usecase.StockDecrementRes, error) {
	tx, err := tr.TxFromCtx(ctx)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	query := `
		UPDATE products
		SET quantity = quantity - $2, updated_at = NOW()
		WHERE sku = $1 AND quantity >= $2
		RETURNING name, price_cents, quantity;
	`

	var (
		name       string
		priceCents int64
		remaining  int32
	)
	err = tx.QueryRow(ctx, query, sku, qty).Scan(&name, &priceCents, &remaining)
	if err == nil {
		return usecase.NewStockDecrementRes(name, priceCents, remaining), nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	var available int32
	err = tx.QueryRow(ctx, `SELECT name, quantity FROM products WHERE sku = $1;`, sku).
		Scan(&name, &available)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, e.Wrap(whereami.WhereAmI(), e.ErrProductNotFound)
		}
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return nil, e.Wrap(whereami.WhereAmI(), e.NewInsufficientStockError(name, qty, available))
}

// CountAndLowStock возвращает число товаров и число заканчивающихся позиций.
func (p *ProductRepo) CountAndLowStock(ctx context.Context) (int64, int64, error) {
	query := `
		SELECT COUNT(*), COUNT(*) FILTER (WHERE quantity < $1)
		FROM products;
	`

	var total, lowStock int64
	if err := p.pool.QueryRow(ctx, query, lowStockThreshold).Scan(&total, &lowStock); err != nil {
		return 0, 0, e.Wrap(whereami.WhereAmI(), err)
	}

	return total, lowStock, nil
}

// LowStockItems возвращает товары с наименьшими остатками.
func (p *ProductRepo) LowStockItems(ctx context.Context, limit int) ([]domain.Product, error) {
	query := `
		SELECT sku, name, price_cents, quantity, created_at, updated_at
		FROM products
		ORDER BY quantity ASC, name
		LIMIT $1;
	`

	return p.queryProducts(ctx, query, limit)
}

func (p *ProductRepo) queryProducts(ctx context.Context, query string, args ...any) ([]domain.Product, error) {
	rows, err := p.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	defer rows.Close()

	models := make([]converter.ProductModel, 0)
	for rows.Next() {
		var model converter.ProductModel
		if err := rows.Scan(
			&model.SKU, &model.Name, &model.PriceCents, &model.Quantity,
			&model.CreatedAt, &model.UpdatedAt,
		); err != nil {
			return nil, e.Wrap(whereami.WhereAmI(), err)
		}

		models = append(models, model)
	}

	return p.conv.ToArrEntity(models), nil
}
