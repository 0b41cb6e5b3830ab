package dbmetrics

import (
	"context"
	"database/sql"
)

// DBExecutor общий интерфейс для выполнения запросов
// Реализуется *sql.DB, *sql.Tx, *dbmetrics.DB и *dbmetrics.Tx
type DBExecutor interface {
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row
}

// TxExecutor интерфейс транзакции
type TxExecutor interface {
	DBExecutor
	Commit() error
	Rollback() error
}

// txKey ключ контекста для активной транзакции
type txKey struct{}

// WithTx кладет активную транзакцию в контекст
// Репозитории достают её через GetExecutor и выполняют запросы внутри транзакции
func WithTx(ctx context.Context, tx TxExecutor) context.Context {
	return context.WithValue(ctx, txKey{}, tx)
}

// GetExecutor возвращает активную транзакцию из контекста, если она есть,
// иначе возвращает fallback (обычное соединение с БД)
func GetExecutor(ctx context.Context, fallback DBExecutor) DBExecutor {
	if tx, ok := ctx.Value(txKey{}).(TxExecutor); ok {
		return tx
	}
	return fallback
}

// IsInTransaction сообщает, выполняется ли запрос внутри транзакции
func IsInTransaction(ctx context.Context) bool {
	_, ok := ctx.Value(txKey{}).(TxExecutor)
	return ok
}
