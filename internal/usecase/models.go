package usecase

import (
	"time"

	"github.com/DRSN-tech/pos-backend/internal/domain"
)

// CATALOG USECASE

// AddProductReq — запрос на добавление товара в каталог.
type AddProductReq struct {
	SKU        string
	Name       string
	PriceCents int64
	Quantity   int32
}

// AdjustQuantityReq — запрос на ручную корректировку остатка.
type AdjustQuantityReq struct {
	SKU   string
	Delta int32
}

// ImportPriceListReq — запрос на массовый импорт товаров из xlsx-прайса.
type ImportPriceListReq struct {
	Data     []byte
	Filename string
}

// PriceListRow — одна строка распознанного прайс-листа.
type PriceListRow struct {
	SKU        string
	Name       string
	PriceCents int64
	Quantity   int32
}

// ImportPriceListRes — итог импорта: создано и пропущено по дубликату SKU.
type ImportPriceListRes struct {
	Created     int
	SkippedSKUs []string
}

// CHECKOUT USECASE

// CheckoutLine — позиция счёта, присланная кассой. Ключ — SKU:
// имя и актуальная цена берутся из каталога при списании.
type CheckoutLine struct {
	SKU      string
	Quantity int32
}

// CheckoutReq — запрос на оформление счёта.
type CheckoutReq struct {
	Lines []CheckoutLine
}

// CheckoutRes — результат успешного оформления.
type CheckoutRes struct {
	TransactionID int64
	TotalCents    int64
	Total         string
	CreatedAt     time.Time
	Items         []domain.SaleItem
}

// REPORT USECASE

// DashboardStats — сводка для главного экрана; нулевые значения вместо null.
type DashboardStats struct {
	TotalProducts     int64  `json:"total_products"`
	LowStockCount     int64  `json:"low_stock_count"`
	TotalTransactions int64  `json:"total_transactions"`
	RevenueCents      int64  `json:"revenue_cents"`
	TotalRevenue      string `json:"total_revenue"`
}

// RevenueByDayReq — включающий диапазон дат для графика выручки.
type RevenueByDayReq struct {
	Start time.Time
	End   time.Time
}

// DailyRevenue — выручка за один день; дни без продаж не включаются.
type DailyRevenue struct {
	Date         string `json:"date"`
	RevenueCents int64  `json:"revenue_cents"`
	Revenue      string `json:"revenue"`
}

// TopSellerRow — товар из числа лидеров продаж за недавние транзакции.
type TopSellerRow struct {
	Name      string `json:"name"`
	UnitsSold int32  `json:"units_sold"`
}

// TransactionSummary — строка журнала продаж.
type TransactionSummary struct {
	ID         int64     `json:"id"`
	TotalCents int64     `json:"total_cents"`
	Total      string    `json:"total"`
	CreatedAt  time.Time `json:"created_at"`
	ItemsCount int32     `json:"items_count"`
}

// ADVISOR USECASE

type AskReq struct {
	Question string
}

type AskRes struct {
	Answer string
}

// ChatCompletionReq — запрос к внешнему chat-completions сервису.
type ChatCompletionReq struct {
	SystemPrompt string
	UserMessage  string
}

// REPOSITORIES

// StockDecrementRes — авторитетные данные товара после условного списания.
type StockDecrementRes struct {
	Name       string
	PriceCents int64
	Remaining  int32
}

type OutboxStatus string

const (
	Pending    OutboxStatus = "pending"
	Processing OutboxStatus = "processing"
	Processed  OutboxStatus = "processed"
)

type OutboxEventType string

const SaleCompleted OutboxEventType = "sale.completed"

// OutboxEvent — событие продажи, публикуемое в Kafka через outbox-таблицу.
type OutboxEvent struct {
	ID            int64
	EventID       string
	EventType     OutboxEventType
	TransactionID int64
	Payload       []byte
	Status        OutboxStatus
	CreatedAt     time.Time
	ProcessedAt   *time.Time
}

// SaleCompletedPayload — тело события sale.completed (JSON).
type SaleCompletedPayload struct {
	TransactionID int64             `json:"transaction_id"`
	TotalCents    int64             `json:"total_cents"`
	CreatedAt     time.Time         `json:"created_at"`
	Items         []domain.SaleItem `json:"items"`
}

// INFRASTRUCTURE

type WriteRawMessageReq struct {
	TransactionID int64
	Payload       []byte
}

// MAPPERS

func NewAddProductReq(sku, name string, priceCents int64, quantity int32) *AddProductReq {
	return &AddProductReq{
		SKU:        sku,
		Name:       name,
		PriceCents: priceCents,
		Quantity:   quantity,
	}
}

func NewAdjustQuantityReq(sku string, delta int32) *AdjustQuantityReq {
	return &AdjustQuantityReq{SKU: sku, Delta: delta}
}

func NewCheckoutReq(lines []CheckoutLine) *CheckoutReq {
	return &CheckoutReq{Lines: lines}
}

func NewCheckoutRes(id int64, totalCents int64, createdAt time.Time, items []domain.SaleItem) *CheckoutRes {
	return &CheckoutRes{
		TransactionID: id,
		TotalCents:    totalCents,
		Total:         domain.FormatUSD(totalCents),
		CreatedAt:     createdAt,
		Items:         items,
	}
}

func NewDashboardStats(products, lowStock, transactions, revenueCents int64) *DashboardStats {
	return &DashboardStats{
		TotalProducts:     products,
		LowStockCount:     lowStock,
		TotalTransactions: transactions,
		RevenueCents:      revenueCents,
		TotalRevenue:      domain.FormatUSD(revenueCents),
	}
}

func NewDailyRevenue(date string, revenueCents int64) DailyRevenue {
	return DailyRevenue{
		Date:         date,
		RevenueCents: revenueCents,
		Revenue:      domain.FormatUSD(revenueCents),
	}
}

func NewTransactionSummary(trans *domain.Transaction) TransactionSummary {
	return TransactionSummary{
		ID:         trans.ID,
		TotalCents: trans.TotalCents,
		Total:      domain.FormatUSD(trans.TotalCents),
		CreatedAt:  trans.CreatedAt,
		ItemsCount: trans.ItemsCount(),
	}
}

func NewStockDecrementRes(name string, priceCents int64, remaining int32) *StockDecrementRes {
	return &StockDecrementRes{
		Name:       name,
		PriceCents: priceCents,
		Remaining:  remaining,
	}
}

func NewOutboxEvent(eventID string, eventType OutboxEventType, transactionID int64, payload []byte) *OutboxEvent {
	return &OutboxEvent{
		EventID:       eventID,
		EventType:     eventType,
		TransactionID: transactionID,
		Payload:       payload,
		Status:        Pending,
	}
}

func NewChatCompletionReq(systemPrompt, userMessage string) *ChatCompletionReq {
	return &ChatCompletionReq{
		SystemPrompt: systemPrompt,
		UserMessage:  userMessage,
	}
}

func NewWriteRawMessageReq(transactionID int64, payload []byte) *WriteRawMessageReq {
	return &WriteRawMessageReq{
		TransactionID: transactionID,
		Payload:       payload,
	}
}
