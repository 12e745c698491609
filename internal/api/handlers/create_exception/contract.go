package create_exception

import (
	"context"

	"github.com/m04kA/SMC-SalonService/internal/service/config/models"
)

// ConfigService интерфейс сервиса конфигурации
type ConfigService interface {
	CreateException(ctx context.Context, req *models.CreateExceptionRequest) (*models.ExceptionResponse, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, args ...any)
	Warn(format string, args ...any)
	Error(format string, args ...any)
}
