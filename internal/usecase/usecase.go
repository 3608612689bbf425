package usecase

import (
	"context"

	"github.com/DRSN-tech/pos-backend/internal/domain"
)

type CatalogUC interface {
	AddProduct(ctx context.Context, req *AddProductReq) (*domain.Product, error)
	DeleteProduct(ctx context.Context, sku string) error
	ListProducts(ctx context.Context) ([]domain.Product, error)
	SearchProducts(ctx context.Context, term string) ([]domain.Product, error)
	AdjustQuantity(ctx context.Context, req *AdjustQuantityReq) (*domain.Product, error)
	ImportPriceList(ctx context.Context, req *ImportPriceListReq) (*ImportPriceListRes, error)
}

type CheckoutUC interface {
	Checkout(ctx context.Context, req *CheckoutReq) (*CheckoutRes, error)
}

type ReportUC interface {
	DashboardStats(ctx context.Context) (*DashboardStats, error)
	RevenueByDay(ctx context.Context, req *RevenueByDayReq) ([]DailyRevenue, error)
	TopSellers(ctx context.Context, limit int) ([]TopSellerRow, error)
	LowStockItems(ctx context.Context, limit int) ([]domain.Product, error)
	ListTransactions(ctx context.Context) ([]TransactionSummary, error)
	GetTransaction(ctx context.Context, id int64) (*domain.Transaction, error)
	DeleteTransaction(ctx context.Context, id int64) error
}

type AdvisorUC interface {
	Ask(ctx context.Context, req *AskReq) (*AskRes, error)
}
