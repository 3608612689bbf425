package converter

import "time"

// ProductModel представляет запись таблицы products в PostgreSQL.
type ProductModel struct {
	SKU        string     `db:"sku"`
	Name       string     `db:"name"`
	PriceCents int64      `db:"price_cents"`
	Quantity   int32      `db:"quantity"`
	CreatedAt  time.Time  `db:"created_at"`
	UpdatedAt  *time.Time `db:"updated_at"`
}

// TransactionModel представляет запись таблицы transactions в PostgreSQL.
// Items хранится как JSONB-массив снимков позиций.
type TransactionModel struct {
	ID         int64     `db:"id"`
	TotalCents int64     `db:"total_cents"`
	CreatedAt  time.Time `db:"created_at"`
	Items      []byte    `db:"items"`
}

// OutboxEventModel представляет запись таблицы outbox_events в PostgreSQL.
type OutboxEventModel struct {
	ID            int64      `db:"id"`
	EventID       string     `db:"event_id"`
	EventType     string     `db:"event_type"`
	TransactionID int64      `db:"transaction_id"`
	Payload       []byte     `db:"payload"`
	Status        string     `db:"status"`
	CreatedAt     time.Time  `db:"created_at"`
	ProcessedAt   *time.Time `db:"processed_at"`
}
