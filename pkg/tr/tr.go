package tr

import (
	"context"

	"github.com/DRSN-tech/pos-backend/pkg/e"
	"github.com/jackc/pgx/v5"
)

// TxFromCtx достаёт pgx.Tx, положенный в контекст оформлением продажи.
// Вызов вне открытой транзакции возвращает e.ErrTransactionNotFound.
func TxFromCtx(ctx context.Context) (pgx.Tx, error) {
	txAny := ctx.Value("tx")
	tx, ok := txAny.(pgx.Tx)
	if !ok {
		return nil, e.ErrTransactionNotFound
	}
	return tx, nil
}
