package repository

import (
	"context"
	"database/sql"
)

// DBTX is the subset of sqlx operations repositories need. Both *sqlx.DB and
// *sqlx.Tx satisfy it, so queries can run inside or outside a transaction
// without the repository knowing which.
type DBTX interface {
	GetContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
	SelectContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
	NamedExecContext(ctx context.Context, query string, arg interface{}) (sql.Result, error)
}
