package usecase

import (
	"context"
	"encoding/json"
	"time"

	"github.com/DRSN-tech/pos-backend/internal/domain"
	"github.com/DRSN-tech/pos-backend/pkg/e"
	"github.com/DRSN-tech/pos-backend/pkg/logger"
	transaction "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// CheckoutUseCase превращает эфемерный счёт в долговечную запись продажи,
// сохраняя согласованность остатков. Списание каждой позиции — условное
// обновление внутри одной транзакции БД: либо все списания и запись
// продажи фиксируются вместе, либо ничего.
type CheckoutUseCase struct {
	productRepo     ProductRepository
	transactionRepo TransactionRepository
	outboxRepo      OutboxRepository
	dbPool          transaction.Transactional
	cacheRepo       CacheRepository
	receipts        ReceiptsInfra
	logger          logger.Logger
}

func NewCheckoutUC(
	productRepo ProductRepository,
	transactionRepo TransactionRepository,
	outboxRepo OutboxRepository,
	dbPool transaction.Transactional,
	cacheRepo CacheRepository,
	receipts ReceiptsInfra,
	logger logger.Logger,
) *CheckoutUseCase {
	return &CheckoutUseCase{
		productRepo:     productRepo,
		transactionRepo: transactionRepo,
		outboxRepo:      outboxRepo,
		dbPool:          dbPool,
		cacheRepo:       cacheRepo,
		receipts:        receipts,
		logger:          logger,
	}
}

// Checkout оформляет счёт: списывает остатки и записывает продажу.
// Неудача любой позиции откатывает всё; состояние каталога и журнала
// при этом не меняется.
func (c *CheckoutUseCase) Checkout(ctx context.Context, req *CheckoutReq) (*CheckoutRes, error) {
	const op = "CheckoutUseCase.Checkout"

	var err error
	if err = validateBill(req); err != nil {
		return nil, e.Wrap(op, err)
	}

	ctx, tx, err := transaction.NewTransaction(ctx, pgx.TxOptions{}, c.dbPool)
	if err != nil {
		return nil, e.Wrap(op, err)
	}
	defer func() {
		if err != nil && tx.IsActive() {
			tx.Rollback(ctx)
		}
	}()
	ctx = context.WithValue(ctx, "tx", tx.Transaction())

	// Условное списание: проверка остатка и декремент — один оператор,
	// окна между валидацией и мутацией нет. Повторные строки одного SKU
	// сливаются счётом в одну позицию.
	bill := domain.NewBill()
	for _, line := range req.Lines {
		var res *StockDecrementRes
		res, err = c.productRepo.DecrementStock(ctx, line.SKU, line.Quantity)
		if err != nil {
			return nil, e.Wrap(op, err)
		}

		bill.AddLine(line.SKU, res.Name, res.PriceCents, line.Quantity)
	}

	trans, err := c.transactionRepo.Create(ctx, domain.NewTransaction(bill.TotalCents(), time.Now().UTC(), bill.SaleItems()))
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	err = c.createSaleEvent(ctx, trans)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	err = tx.Commit(ctx)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	if err := c.cacheRepo.InvalidateDashboardStats(ctx); err != nil {
		c.logger.Warnf("failed to invalidate stats cache: %v", e.Wrap(op, err))
	}

	res := NewCheckoutRes(trans.ID, trans.TotalCents, trans.CreatedAt, trans.Items)
	c.receipts.ArchiveReceipt(res)

	return res, nil
}

// createSaleEvent кладёт событие sale.completed в outbox той же транзакцией.
func (c *CheckoutUseCase) createSaleEvent(ctx context.Context, trans *domain.Transaction) error {
	payload, err := json.Marshal(SaleCompletedPayload{
		TransactionID: trans.ID,
		TotalCents:    trans.TotalCents,
		CreatedAt:     trans.CreatedAt,
		Items:         trans.Items,
	})
	if err != nil {
		return err
	}

	_, err = c.outboxRepo.Create(ctx, NewOutboxEvent(uuid.NewString(), SaleCompleted, trans.ID, payload))
	return err
}

// validateBill отклоняет пустой счёт и строки с некорректным количеством.
func validateBill(req *CheckoutReq) error {
	if len(req.Lines) == 0 {
		return e.ErrEmptyBill
	}

	for _, line := range req.Lines {
		if line.SKU == "" {
			return e.ErrMissingFields
		}
		if line.Quantity <= 0 {
			return e.ErrInvalidQuantity
		}
	}

	return nil
}
