package usecase

import (
	"context"
	"sort"
	"time"

	"github.com/DRSN-tech/pos-backend/internal/domain"
	"github.com/DRSN-tech/pos-backend/pkg/e"
	"github.com/DRSN-tech/pos-backend/pkg/logger"
)

// recentTransactionsWindow — сколько последних продаж сканируется для топа.
const recentTransactionsWindow = 50

// ReportUseCase — read-only агрегации над каталогом и журналом продаж
// плюс операции просмотра/удаления записей журнала.
type ReportUseCase struct {
	productRepo     ProductRepository
	transactionRepo TransactionRepository
	cacheRepo       CacheRepository
	logger          logger.Logger
}

func NewReportUC(
	productRepo ProductRepository,
	transactionRepo TransactionRepository,
	cacheRepo CacheRepository,
	logger logger.Logger,
) *ReportUseCase {
	return &ReportUseCase{
		productRepo:     productRepo,
		transactionRepo: transactionRepo,
		cacheRepo:       cacheRepo,
		logger:          logger,
	}
}

// DashboardStats возвращает сводку главного экрана. На пустой базе —
// нули и "$0.00", не null. Тёплый кэш обслуживается из Redis.
func (r *ReportUseCase) DashboardStats(ctx context.Context) (*DashboardStats, error) {
	const op = "ReportUseCase.DashboardStats"

	if cached, err := r.cacheRepo.GetDashboardStats(ctx); err != nil {
		r.logger.Warnf("stats cache read failed: %v", e.Wrap(op, err))
	} else if cached != nil {
		return cached, nil
	}

	products, lowStock, err := r.productRepo.CountAndLowStock(ctx)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	transactions, revenueCents, err := r.transactionRepo.CountAndRevenue(ctx)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	stats := NewDashboardStats(products, lowStock, transactions, revenueCents)

	if err := r.cacheRepo.SetDashboardStats(ctx, stats); err != nil {
		r.logger.Warnf("stats cache write failed: %v", e.Wrap(op, err))
	}

	return stats, nil
}

// RevenueByDay возвращает выручку по дням за включающий диапазон дат.
// Дни без продаж отсутствуют в результате.
func (r *ReportUseCase) RevenueByDay(ctx context.Context, req *RevenueByDayReq) ([]DailyRevenue, error) {
	const op = "ReportUseCase.RevenueByDay"

	rows, err := r.transactionRepo.RevenueByDay(ctx, req.Start, req.End)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return rows, nil
}

// TopSellers суммирует количество проданных единиц по имени товара
// в последних продажах и возвращает лидеров по убыванию.
func (r *ReportUseCase) TopSellers(ctx context.Context, limit int) ([]TopSellerRow, error) {
	const op = "ReportUseCase.TopSellers"

	recent, err := r.transactionRepo.ListRecent(ctx, recentTransactionsWindow)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	sold := make(map[string]int32)
	for _, trans := range recent {
		for _, item := range trans.Items {
			sold[item.Name] += item.Quantity
		}
	}

	rows := make([]TopSellerRow, 0, len(sold))
	for name, units := range sold {
		rows = append(rows, TopSellerRow{Name: name, UnitsSold: units})
	}

	sort.Slice(rows, func(i, j int) bool {
		if rows[i].UnitsSold != rows[j].UnitsSold {
			return rows[i].UnitsSold > rows[j].UnitsSold
		}
		return rows[i].Name < rows[j].Name
	})

	if limit > 0 && len(rows) > limit {
		rows = rows[:limit]
	}

	return rows, nil
}

// LowStockItems возвращает товары с наименьшими остатками.
func (r *ReportUseCase) LowStockItems(ctx context.Context, limit int) ([]domain.Product, error) {
	return r.productRepo.LowStockItems(ctx, limit)
}

// ListTransactions возвращает журнал продаж, новые записи первыми.
func (r *ReportUseCase) ListTransactions(ctx context.Context) ([]TransactionSummary, error) {
	const op = "ReportUseCase.ListTransactions"

	transactions, err := r.transactionRepo.List(ctx)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	summaries := make([]TransactionSummary, 0, len(transactions))
	for i := range transactions {
		summaries = append(summaries, NewTransactionSummary(&transactions[i]))
	}

	return summaries, nil
}

// GetTransaction возвращает продажу с позициями.
func (r *ReportUseCase) GetTransaction(ctx context.Context, id int64) (*domain.Transaction, error) {
	const op = "ReportUseCase.GetTransaction"

	trans, err := r.transactionRepo.GetByID(ctx, id)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return trans, nil
}

// DeleteTransaction удаляет запись журнала. Остатки товаров не
// восстанавливаются: удаление записи — не отмена продажи.
func (r *ReportUseCase) DeleteTransaction(ctx context.Context, id int64) error {
	const op = "ReportUseCase.DeleteTransaction"

	found, err := r.transactionRepo.Delete(ctx, id)
	if err != nil {
		return e.Wrap(op, err)
	}
	if !found {
		return e.Wrap(op, e.ErrSaleNotFound)
	}

	if err := r.cacheRepo.InvalidateDashboardStats(ctx); err != nil {
		r.logger.Warnf("failed to invalidate stats cache: %v", e.Wrap(op, err))
	}

	return nil
}

// WindowStart возвращает начало фиксированного окна для графика выручки.
func WindowStart(end time.Time, window string) time.Time {
	switch window {
	case "week":
		return end.AddDate(0, 0, -7)
	case "year":
		return end.AddDate(0, 0, -365)
	default: // month
		return end.AddDate(0, 0, -30)
	}
}
