package receipts

import (
	"bytes"
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/DRSN-tech/pos-backend/internal/domain"
	"github.com/DRSN-tech/pos-backend/internal/usecase"
	"github.com/DRSN-tech/pos-backend/pkg/jitter"
	"github.com/DRSN-tech/pos-backend/pkg/logger"
	"github.com/google/uuid"
)

// ReceiptsInfrastructure архивирует текстовые чеки продаж в объектное хранилище.
// Загрузка идёт в фоне: продажа уже зафиксирована, и её результат
// не должен зависеть от доступности архива.
type ReceiptsInfrastructure struct {
	receiptRepo usecase.ReceiptRepository
	logger      logger.Logger
	shutdownCtx context.Context
	wg          sync.WaitGroup
}

func NewReceiptsInfrastructure(receiptRepo usecase.ReceiptRepository, logger logger.Logger,
	shutdownCtx context.Context) *ReceiptsInfrastructure {
	return &ReceiptsInfrastructure{
		receiptRepo: receiptRepo,
		logger:      logger,
		shutdownCtx: shutdownCtx,
	}
}

// ArchiveReceipt рендерит чек и загружает его в фоне с retry-логикой.
func (r *ReceiptsInfrastructure) ArchiveReceipt(trans *usecase.CheckoutRes) {
	receipt := domain.NewReceipt(r.objectKey(trans), renderReceipt(trans))

	r.wg.Add(1)
	go r.uploadWithRetry(receipt)
}

// WaitForUploads блокируется до завершения фоновых загрузок или отмены контекста.
func (r *ReceiptsInfrastructure) WaitForUploads(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		r.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (r *ReceiptsInfrastructure) uploadWithRetry(receipt *domain.Receipt) {
	defer r.wg.Done()
	const (
		op         = "ReceiptsInfrastructure.uploadWithRetry"
		baseJitter = 1 * time.Second
		maxJitter  = 15 * time.Second
		attempts   = 3
	)

	ctx, cancel := context.WithTimeout(r.shutdownCtx, 30*time.Second)
	defer cancel()

	for attempt := 0; attempt < attempts; attempt++ {
		if _, err := r.receiptRepo.Upload(ctx, receipt); err == nil {
			r.logger.Debugf("%s: receipt archived, key=%s", op, receipt.ObjectKey)
			return
		}

		select {
		case <-ctx.Done():
			r.logger.Warnf("%s: interrupted by shutdown, key=%s", op, receipt.ObjectKey)
			return
		case <-time.After(jitter.ExponentialBackoff(baseJitter, maxJitter, attempt, jitter.DefaultJitter)):
		}
	}

	r.logger.Warnf("%s: giving up after %d attempts, key=%s", op, attempts, receipt.ObjectKey)
}

// objectKey раскладывает чеки по датам: receipts/YYYY/MM/DD/<id>-<uuid>.txt
func (r *ReceiptsInfrastructure) objectKey(trans *usecase.CheckoutRes) string {
	ts := trans.CreatedAt.UTC()
	return fmt.Sprintf("receipts/%04d/%02d/%02d/%d-%s.txt",
		ts.Year(), ts.Month(), ts.Day(), trans.TransactionID, uuid.NewString())
}

func renderReceipt(trans *usecase.CheckoutRes) []byte {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "Sale #%d\n", trans.TransactionID)
	fmt.Fprintf(&buf, "Date: %s\n\n", trans.CreatedAt.UTC().Format("2006-01-02 15:04:05"))
	for _, item := range trans.Items {
		fmt.Fprintf(&buf, "%s x%d\n", item.Name, item.Quantity)
	}
	fmt.Fprintf(&buf, "\nTotal: %s\n", domain.FormatUSD(trans.TotalCents))

	return buf.Bytes()
}
