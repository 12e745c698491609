package delete_exception

import "context"

// ConfigService интерфейс сервиса конфигурации
type ConfigService interface {
	DeleteException(ctx context.Context, exceptionID int64, userID int64) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, args ...any)
	Warn(format string, args ...any)
	Error(format string, args ...any)
}
