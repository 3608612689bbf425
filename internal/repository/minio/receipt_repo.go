package minio

import (
	"bytes"
	"context"

	"github.com/DRSN-tech/pos-backend/internal/cfg"
	"github.com/DRSN-tech/pos-backend/internal/domain"
	"github.com/DRSN-tech/pos-backend/pkg/e"
	"github.com/jimlawless/whereami"
	"github.com/minio/minio-go/v7"
)

// ReceiptRepo хранит текстовые чеки продаж в MinIO.
type ReceiptRepo struct {
	mc  *minio.Client
	cfg *cfg.MinIOCfg
}

func NewReceiptRepo(mc *minio.Client, cfg *cfg.MinIOCfg) *ReceiptRepo {
	return &ReceiptRepo{
		mc:  mc,
		cfg: cfg,
	}
}

// Upload загружает чек в MinIO и возвращает ключ объекта.
func (r *ReceiptRepo) Upload(ctx context.Context, receipt *domain.Receipt) (string, error) {
	reader := bytes.NewReader(receipt.Body)

	info, err := r.mc.PutObject(ctx, r.cfg.BucketName, receipt.ObjectKey, reader, int64(len(receipt.Body)),
		minio.PutObjectOptions{
			ContentType: receipt.ContentType,
		})
	if err != nil {
		return "", e.Wrap(whereami.WhereAmI(), err)
	}

	return info.Key, nil
}
