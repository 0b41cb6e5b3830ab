package simpletxmanager

import "context"

// Logger интерфейс для логирования
type Logger interface {
	Warn(format string, v ...interface{})
}

// PassthroughManager деградированный режим без транзакций.
// Выполняет fn на обычном соединении: проверка доступности слота и вставка
// не изолированы друг от друга, возможна гонка между конкурентными запросами.
// Режим включается явно через конфигурацию ([database] transactions = false),
// при создании в лог пишется предупреждение.
type PassthroughManager struct {
	logger Logger
}

// NewPassthroughManager создает passthrough manager
func NewPassthroughManager(logger Logger) *PassthroughManager {
	logger.Warn("simpletxmanager: transactions disabled, booking checks run WITHOUT transactional isolation")
	return &PassthroughManager{logger: logger}
}

// Do выполняет fn без транзакции
func (m *PassthroughManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

// DoSerializable выполняет fn без транзакции (изоляция не гарантируется)
func (m *PassthroughManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

// DoReadOnly выполняет fn без транзакции
func (m *PassthroughManager) DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}
