package pgdb

import (
	"context"
	"errors"
	"time"

	"github.com/DRSN-tech/pos-backend/internal/domain"
	"github.com/DRSN-tech/pos-backend/internal/repository/pgdb/converter"
	"github.com/DRSN-tech/pos-backend/internal/usecase"
	"github.com/DRSN-tech/pos-backend/pkg/e"
	"github.com/DRSN-tech/pos-backend/pkg/tr"
	"github.com/jackc/pgx/v5"
	"github.com/jimlawless/whereami"
)

// TransactionRepo реализует журнал продаж поверх PostgreSQL.
// Записи неизменяемы после вставки; допускается только удаление.
type TransactionRepo struct {
	pool Querier
	conv converter.TransactionConverter
}

func NewTransactionRepo(pool Querier, conv converter.TransactionConverter) *TransactionRepo {
	return &TransactionRepo{
		pool: pool,
		conv: conv,
	}
}

// Create вставляет запись продажи внутри транзакции из контекста.
func (t *TransactionRepo) Create(ctx context.Context, trans *domain.Transaction) (*domain.Transaction, error) {
	tx, err := tr.TxFromCtx(ctx)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	model, err := t.conv.ToModel(trans)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	query := `
		INSERT INTO transactions (total_cents, created_at, items)
		VALUES ($1, $2, $3)
		RETURNING id;
	`

	var id int64
	if err := tx.QueryRow(ctx, query, model.TotalCents, model.CreatedAt, model.Items).Scan(&id); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	created := *trans
	created.ID = id
	return &created, nil
}

// List возвращает журнал продаж, новые записи первыми.
func (t *TransactionRepo) List(ctx context.Context) ([]domain.Transaction, error) {
	query := `
		SELECT id, total_cents, created_at, items
		FROM transactions
		ORDER BY created_at DESC;
	`

	return t.queryTransactions(ctx, query)
}

// ListRecent возвращает не более limit последних продаж.
func (t *TransactionRepo) ListRecent(ctx context.Context, limit int) ([]domain.Transaction, error) {
	query := `
		SELECT id, total_cents, created_at, items
		FROM transactions
		ORDER BY created_at DESC
		LIMIT $1;
	`

	return t.queryTransactions(ctx, query, limit)
}

// GetByID возвращает продажу с позициями или e.ErrSaleNotFound.
func (t *TransactionRepo) GetByID(ctx context.Context, id int64) (*domain.Transaction, error) {
	query := `
		SELECT id, total_cents, created_at, items
		FROM transactions
		WHERE id = $1;
	`

	var model converter.TransactionModel
	err := t.pool.QueryRow(ctx, query, id).
		Scan(&model.ID, &model.TotalCents, &model.CreatedAt, &model.Items)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, e.Wrap(whereami.WhereAmI(), e.ErrSaleNotFound)
		}
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return t.conv.ToEntity(&model)
}

// Delete удаляет запись журнала и сообщает, была ли она найдена.
// Остатки товаров не трогаются.
func (t *TransactionRepo) Delete(ctx context.Context, id int64) (bool, error) {
	tag, err := t.pool.Exec(ctx, `DELETE FROM transactions WHERE id = $1;`, id)
	if err != nil {
		return false, e.Wrap(whereami.WhereAmI(), err)
	}

	return tag.RowsAffected() > 0, nil
}

// CountAndRevenue возвращает число продаж и суммарную выручку в центах.
// На пустом журнале — нули, не NULL.
func (t *TransactionRepo) CountAndRevenue(ctx context.Context) (int64, int64, error) {
	query := `
		SELECT COUNT(*), COALESCE(SUM(total_cents), 0)
		FROM transactions;
	`

	var count, revenue int64
	if err := t.pool.QueryRow(ctx, query).Scan(&count, &revenue); err != nil {
		return 0, 0, e.Wrap(whereami.WhereAmI(), err)
	}

	return count, revenue, nil
}

// RevenueByDay группирует выручку по датам внутри включающего диапазона.
// Дни без продаж в выборку не попадают.
func (t *TransactionRepo) RevenueByDay(ctx context.Context, start, end time.Time) ([]usecase.DailyRevenue, error) {
	query := `
		SELECT to_char(created_at::date, 'YYYY-MM-DD'), SUM(total_cents)
		FROM transactions
		WHERE created_at::date BETWEEN $1::date AND $2::date
		GROUP BY created_at::date
		ORDER BY created_at::date;
	`

	rows, err := t.pool.Query(ctx, query, start, end)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	defer rows.Close()

	result := make([]usecase.DailyRevenue, 0)
	for rows.Next() {
		var (
			date         string
			revenueCents int64
		)
		if err := rows.Scan(&date, &revenueCents); err != nil {
			return nil, e.Wrap(whereami.WhereAmI(), err)
		}

		result = append(result, usecase.NewDailyRevenue(date, revenueCents))
	}

	return result, nil
}

func (t *TransactionRepo) queryTransactions(ctx context.Context, query string, args ...any) ([]domain.Transaction, error) {
	rows, err := t.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	defer rows.Close()

	result := make([]domain.Transaction, 0)
	for rows.Next() {
		var model converter.TransactionModel
		if err := rows.Scan(&model.ID, &model.TotalCents, &model.CreatedAt, &model.Items); err != nil {
			return nil, e.Wrap(whereami.WhereAmI(), err)
		}

		trans, err := t.conv.ToEntity(&model)
		if err != nil {
			return nil, e.Wrap(whereami.WhereAmI(), err)
		}

		result = append(result, *trans)
	}

	return result, nil
}
