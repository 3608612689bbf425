package usecase

import (
	"context"
	"time"

	"github.com/DRSN-tech/pos-backend/internal/domain"
)

type ProductRepository interface {
	Create(ctx context.Context, product *domain.Product) (*domain.Product, error)
	GetBySKU(ctx context.Context, sku string) (*domain.Product, error)
	List(ctx context.Context) ([]domain.Product, error)
	Search(ctx context.Context, term string) ([]domain.Product, error)
	Delete(ctx context.Context, sku string) (bool, error)
	AdjustQuantity(ctx context.Context, sku string, delta int32) (*domain.Product, error)
	// DecrementStock атомарно списывает qty единиц, если остатка достаточно.
	// Выполняется внутри транзакции из контекста.
	DecrementStock(ctx context.Context, sku string, qty int32) (*StockDecrementRes, error)
	CountAndLowStock(ctx context.Context) (total int64, lowStock int64, err error)
	LowStockItems(ctx context.Context, limit int) ([]domain.Product, error)
}

type TransactionRepository interface {
	// Create выполняется внутри транзакции из контекста.
	Create(ctx context.Context, trans *domain.Transaction) (*domain.Transaction, error)
	List(ctx context.Context) ([]domain.Transaction, error)
	ListRecent(ctx context.Context, limit int) ([]domain.Transaction, error)
	GetByID(ctx context.Context, id int64) (*domain.Transaction, error)
	Delete(ctx context.Context, id int64) (bool, error)
	CountAndRevenue(ctx context.Context) (count int64, revenueCents int64, err error)
	RevenueByDay(ctx context.Context, start, end time.Time) ([]DailyRevenue, error)
}

type OutboxRepository interface {
	// Create выполняется внутри транзакции из контекста.
	Create(ctx context.Context, event *OutboxEvent) (*OutboxEvent, error)
	GetAndMarkAsProcessing(ctx context.Context, limit int) ([]*OutboxEvent, error)
	MarkAsProcessed(ctx context.Context, ids []int64) error
	ResetToPending(ctx context.Context, ids []int64) error
}

type CacheRepository interface {
	// GetDashboardStats возвращает (nil, nil) при промахе кэша.
	GetDashboardStats(ctx context.Context) (*DashboardStats, error)
	SetDashboardStats(ctx context.Context, stats *DashboardStats) error
	InvalidateDashboardStats(ctx context.Context) error
}

type ReceiptRepository interface {
	Upload(ctx context.Context, receipt *domain.Receipt) (string, error)
}
