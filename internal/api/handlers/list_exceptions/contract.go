package list_exceptions

import (
	"context"

	"github.com/m04kA/SMC-SalonService/internal/service/config/models"
)

// ConfigService интерфейс сервиса конфигурации
type ConfigService interface {
	ListExceptions(ctx context.Context, req *models.ListExceptionsRequest) (*models.ExceptionListResponse, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, args ...any)
	Warn(format string, args ...any)
	Error(format string, args ...any)
}
