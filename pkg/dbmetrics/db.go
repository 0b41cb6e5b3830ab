package dbmetrics

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/bandhall/BRS-ReservationService/pkg/metrics"
)

// defaultPoolStatsInterval период сбора статистики connection pool
const defaultPoolStatsInterval = 15 * time.Second

// DB обертка над *sql.DB, записывающая метрики каждого запроса
type DB struct {
	db      *sql.DB
	metrics *metrics.Metrics
	dbName  string
}

// Wrap оборачивает соединение с БД сборщиком метрик
func Wrap(db *sql.DB, m *metrics.Metrics, dbName string) *DB {
	return &DB{db: db, metrics: m, dbName: dbName}
}

// WrapWithDefault оборачивает соединение и запускает периодический сбор
// статистики connection pool до закрытия stopCh
func WrapWithDefault(db *sql.DB, m *metrics.Metrics, dbName string, stopCh <-chan struct{}) *DB {
	wrapped := Wrap(db, m, dbName)
	go wrapped.collectPoolStats(defaultPoolStatsInterval, stopCh)
	return wrapped
}

// ExecContext выполняет запрос без результата, записывая метрики
func (d *DB) ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error) {
	start := time.Now()
	result, err := d.db.ExecContext(ctx, query, args...)
	d.metrics.ObserveDBQuery(queryOperation(query), time.Since(start), err)
	return result, err
}

// QueryContext выполняет запрос с результатом, записывая метрики
func (d *DB) QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error) {
	start := time.Now()
	rows, err := d.db.QueryContext(ctx, query, args...)
	d.metrics.ObserveDBQuery(queryOperation(query), time.Since(start), err)
	return rows, err
}

// QueryRowContext выполняет запрос одной строки, записывая метрики
// Ошибка выполнения доступна только при Scan, поэтому фиксируем только длительность
func (d *DB) QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row {
	start := time.Now()
	row := d.db.QueryRowContext(ctx, query, args...)
	d.metrics.ObserveDBQuery(queryOperation(query), time.Since(start), nil)
	return row
}

// BeginTx начинает транзакцию, возвращая обернутый метриками исполнитель
func (d *DB) BeginTx(ctx context.Context, opts *sql.TxOptions) (TxExecutor, error) {
	tx, err := d.db.BeginTx(ctx, opts)
	if err != nil {
		return nil, err
	}
	return &Tx{tx: tx, metrics: d.metrics}, nil
}

// collectPoolStats периодически публикует статистику connection pool
func (d *DB) collectPoolStats(interval time.Duration, stopCh <-chan struct{}) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-stopCh:
			return
		case <-ticker.C:
			stats := d.db.Stats()
			d.metrics.SetDBPoolStats(d.dbName, stats.OpenConnections, stats.InUse, stats.Idle)
		}
	}
}

// Tx транзакция с метриками
type Tx struct {
	tx      *sql.Tx
	metrics *metrics.Metrics
}

// ExecContext выполняет запрос в транзакции, записывая метрики
func (t *Tx) ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error) {
	start := time.Now()
	result, err := t.tx.ExecContext(ctx, query, args...)
	t.metrics.ObserveDBQuery(queryOperation(query), time.Since(start), err)
	return result, err
}

// QueryContext выполняет запрос с результатом в транзакции
func (t *Tx) QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error) {
	start := time.Now()
	rows, err := t.tx.QueryContext(ctx, query, args...)
	t.metrics.ObserveDBQuery(queryOperation(query), time.Since(start), err)
	return rows, err
}

// QueryRowContext выполняет запрос одной строки в транзакции
func (t *Tx) QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row {
	start := time.Now()
	row := t.tx.QueryRowContext(ctx, query, args...)
	t.metrics.ObserveDBQuery(queryOperation(query), time.Since(start), nil)
	return row
}

// Commit фиксирует транзакцию
func (t *Tx) Commit() error {
	return t.tx.Commit()
}

// Rollback откатывает транзакцию
func (t *Tx) Rollback() error {
	return t.tx.Rollback()
}

// queryOperation извлекает тип операции из SQL запроса (SELECT, INSERT, ...)
func queryOperation(query string) string {
	fields := strings.Fields(query)
	if len(fields) == 0 {
		return "unknown"
	}
	return strings.ToUpper(fields[0])
}
