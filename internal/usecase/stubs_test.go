package usecase_test

import (
	"context"
	"time"

	"github.com/DRSN-tech/pos-backend/internal/domain"
	"github.com/DRSN-tech/pos-backend/internal/usecase"
	"github.com/jackc/pgx/v5"
)

type stubLogger struct{}

func (stubLogger) Debugf(format string, args ...any)            {}
func (stubLogger) Infof(format string, args ...any)             {}
func (stubLogger) Warnf(format string, args ...any)             {}
func (stubLogger) Errorf(err error, format string, args ...any) {}

type stubProductRepo struct {
	createFn           func(ctx context.Context, product *domain.Product) (*domain.Product, error)
	getBySKUFn         func(ctx context.Context, sku string) (*domain.Product, error)
	listFn             func(ctx context.Context) ([]domain.Product, error)
	searchFn           func(ctx context.Context, term string) ([]domain.Product, error)
	deleteFn           func(ctx context.Context, sku string) (bool, error)
	adjustQuantityFn   func(ctx context.Context, sku string, delta int32) (*domain.Product, error)
	decrementStockFn   func(ctx context.Context, sku string, qty int32) (*usecase.StockDecrementRes, error)
	countAndLowStockFn func(ctx context.Context) (int64, int64, error)
	lowStockItemsFn    func(ctx context.Context, limit int) ([]domain.Product, error)
}

func (s *stubProductRepo) Create(ctx context.Context, product *domain.Product) (*domain.Product, error) {
	return s.createFn(ctx, product)
}

func (s *stubProductRepo) GetBySKU(ctx context.Context, sku string) (*domain.Product, error) {
	return s.getBySKUFn(ctx, sku)
}

func (s *stubProductRepo) List(ctx context.Context) ([]domain.Product, error) {
	return s.listFn(ctx)
}

func (s *stubProductRepo) Search(ctx context.Context, term string) ([]domain.Product, error) {
	return s.searchFn(ctx, term)
}

func (s *stubProductRepo) Delete(ctx context.Context, sku string) (bool, error) {
	return s.deleteFn(ctx, sku)
}

func (s *stubProductRepo) AdjustQuantity(ctx context.Context, sku string, delta int32) (*domain.Product, error) {
	return s.adjustQuantityFn(ctx, sku, delta)
}

func (s *stubProductRepo) DecrementStock(ctx context.Context, sku string, qty int32) (*usecase.StockDecrementRes, error) {
	return s.decrementStockFn(ctx, sku, qty)
}

func (s *stubProductRepo) CountAndLowStock(ctx context.Context) (int64, int64, error) {
	return s.countAndLowStockFn(ctx)
}

func (s *stubProductRepo) LowStockItems(ctx context.Context, limit int) ([]domain.Product, error) {
	return s.lowStockItemsFn(ctx, limit)
}

type stubTransactionRepo struct {
	createFn          func(ctx context.Context, trans *domain.Transaction) (*domain.Transaction, error)
	listFn            func(ctx context.Context) ([]domain.Transaction, error)
	listRecentFn      func(ctx context.Context, limit int) ([]domain.Transaction, error)
	getByIDFn         func(ctx context.Context, id int64) (*domain.Transaction, error)
	deleteFn          func(ctx context.Context, id int64) (bool, error)
	countAndRevenueFn func(ctx context.Context) (int64, int64, error)
	revenueByDayFn    func(ctx context.Context, start, end time.Time) ([]usecase.DailyRevenue, error)
}

func (s *stubTransactionRepo) Create(ctx context.Context, trans *domain.Transaction) (*domain.Transaction, error) {
	return s.createFn(ctx, trans)
}

func (s *stubTransactionRepo) List(ctx context.Context) ([]domain.Transaction, error) {
	return s.listFn(ctx)
}

func (s *stubTransactionRepo) ListRecent(ctx context.Context, limit int) ([]domain.Transaction, error) {
	return s.listRecentFn(ctx, limit)
}

func (s *stubTransactionRepo) GetByID(ctx context.Context, id int64) (*domain.Transaction, error) {
	return s.getByIDFn(ctx, id)
}

func (s *stubTransactionRepo) Delete(ctx context.Context, id int64) (bool, error) {
	return s.deleteFn(ctx, id)
}

func (s *stubTransactionRepo) CountAndRevenue(ctx context.Context) (int64, int64, error) {
	return s.countAndRevenueFn(ctx)
}

func (s *stubTransactionRepo) RevenueByDay(ctx context.Context, start, end time.Time) ([]usecase.DailyRevenue, error) {
	return s.revenueByDayFn(ctx, start, end)
}

type stubOutboxRepo struct {
	created []*usecase.OutboxEvent
	err     error
}

func (s *stubOutboxRepo) Create(ctx context.Context, event *usecase.OutboxEvent) (*usecase.OutboxEvent, error) {
	if s.err != nil {
		return nil, s.err
	}
	s.created = append(s.created, event)
	return event, nil
}

func (s *stubOutboxRepo) GetAndMarkAsProcessing(ctx context.Context, limit int) ([]*usecase.OutboxEvent, error) {
	return nil, nil
}

func (s *stubOutboxRepo) MarkAsProcessed(ctx context.Context, ids []int64) error { return nil }

func (s *stubOutboxRepo) ResetToPending(ctx context.Context, ids []int64) error { return nil }

type stubCacheRepo struct {
	stats       *usecase.DashboardStats
	getErr      error
	invalidated int
	storedStats *usecase.DashboardStats
}

func (s *stubCacheRepo) GetDashboardStats(ctx context.Context) (*usecase.DashboardStats, error) {
	return s.stats, s.getErr
}

func (s *stubCacheRepo) SetDashboardStats(ctx context.Context, stats *usecase.DashboardStats) error {
	s.storedStats = stats
	return nil
}

func (s *stubCacheRepo) InvalidateDashboardStats(ctx context.Context) error {
	s.invalidated++
	return nil
}

type stubParser struct {
	rows []usecase.PriceListRow
	err  error
}

func (s *stubParser) ParsePriceList(data []byte) ([]usecase.PriceListRow, error) {
	return s.rows, s.err
}

type stubReceipts struct {
	archived []*usecase.CheckoutRes
}

func (s *stubReceipts) ArchiveReceipt(trans *usecase.CheckoutRes) {
	s.archived = append(s.archived, trans)
}

func (s *stubReceipts) WaitForUploads(ctx context.Context) error { return nil }

// fakeTx подменяет pgx.Tx: Commit и Rollback только отмечаются,
// остальные методы не используются юзкейсами.
type fakeTx struct {
	pgx.Tx
	committed  bool
	rolledBack bool
}

func (f *fakeTx) Commit(ctx context.Context) error {
	f.committed = true
	return nil
}

func (f *fakeTx) Rollback(ctx context.Context) error {
	f.rolledBack = true
	return nil
}

type fakeDBPool struct {
	tx *fakeTx
}

func (f *fakeDBPool) Begin(ctx context.Context) (pgx.Tx, error) {
	return f.tx, nil
}

func (f *fakeDBPool) BeginTx(ctx context.Context, opts pgx.TxOptions) (pgx.Tx, error) {
	return f.tx, nil
}
