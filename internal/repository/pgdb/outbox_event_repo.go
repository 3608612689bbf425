package pgdb

import (
	"context"

	"github.com/DRSN-tech/pos-backend/internal/repository/pgdb/converter"
	"github.com/DRSN-tech/pos-backend/internal/usecase"
	"github.com/DRSN-tech/pos-backend/pkg/e"
	"github.com/DRSN-tech/pos-backend/pkg/tr"
	"github.com/jimlawless/whereami"
)

// OutboxEventRepo хранит события продаж до их публикации в Kafka.
type OutboxEventRepo struct {
	pool Querier
	conv converter.OutboxEventConverter
}

func NewOutboxEventRepo(pool Querier, conv converter.OutboxEventConverter) *OutboxEventRepo {
	return &OutboxEventRepo{
		pool: pool,
		conv: conv,
	}
}

// Create вставляет событие в той же транзакции, что и продажа,
// и будит воркера через NOTIFY.
func (o *OutboxEventRepo) Create(ctx context.Context, event *usecase.OutboxEvent) (*usecase.OutboxEvent, error) {
	tx, err := tr.TxFromCtx(ctx)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	model := o.conv.ToModel(event)

	query := `
		INSERT INTO outbox_events (event_id, event_type, transaction_id, payload, status)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at;
	`

	err = tx.QueryRow(ctx, query,
		model.EventID, model.EventType, model.TransactionID, model.Payload, model.Status).
		Scan(&model.ID, &model.CreatedAt)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	if _, err := tx.Exec(ctx, `SELECT pg_notify('outbox_pending', $1);`, model.EventID); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return o.conv.ToEntity(model), nil
}

// GetAndMarkAsProcessing захватывает пачку ожидающих событий.
// SKIP LOCKED позволяет нескольким воркерам не мешать друг другу.
func (o *OutboxEventRepo) GetAndMarkAsProcessing(ctx context.Context, limit int) ([]*usecase.OutboxEvent, error) {
	query := `
		UPDATE outbox_events
		SET status = $1
		WHERE id IN (
			SELECT id
			FROM outbox_events
			WHERE status = $2
			ORDER BY id
			LIMIT $3
			FOR UPDATE SKIP LOCKED
		)
		RETURNING id, event_id, event_type, transaction_id, payload, status, created_at, processed_at;
	`

	rows, err := o.pool.Query(ctx, query, usecase.Processing, usecase.Pending, limit)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	defer rows.Close()

	result := make([]*usecase.OutboxEvent, 0, limit)
	for rows.Next() {
		var model converter.OutboxEventModel
		err := rows.Scan(&model.ID, &model.EventID, &model.EventType, &model.TransactionID,
			&model.Payload, &model.Status, &model.CreatedAt, &model.ProcessedAt)
		if err != nil {
			return nil, e.Wrap(whereami.WhereAmI(), err)
		}

		result = append(result, o.conv.ToEntity(&model))
	}

	return result, nil
}

// MarkAsProcessed помечает опубликованные события.
func (o *OutboxEventRepo) MarkAsProcessed(ctx context.Context, ids []int64) error {
	if len(ids) == 0 {
		return nil
	}

	query := `
		UPDATE outbox_events
		SET status = $1, processed_at = now()
		WHERE id = ANY($2);
	`

	if _, err := o.pool.Exec(ctx, query, usecase.Processed, ids); err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	return nil
}

// ResetToPending возвращает события в очередь после неудачной публикации.
func (o *OutboxEventRepo) ResetToPending(ctx context.Context, ids []int64) error {
	if len(ids) == 0 {
		return nil
	}

	query := `
		UPDATE outbox_events
		SET status = $1
		WHERE id = ANY($2);
	`

	if _, err := o.pool.Exec(ctx, query, usecase.Pending, ids); err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	return nil
}
