package economy

import (
	"context"
	"database/sql"

	"github.com/uptrace/bun"
)

// TxRunner runs a function inside a database transaction. *bun.DB satisfies
// it directly; tests substitute a fake that invokes fn without a database.
type TxRunner interface {
	RunInTx(ctx context.Context, opts *sql.TxOptions, fn func(ctx context.Context, tx bun.Tx) error) error
}
