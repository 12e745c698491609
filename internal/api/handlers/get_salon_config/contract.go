package get_salon_config

import (
	"context"

	"github.com/m04kA/SMC-SalonService/internal/service/config/models"
)

// ConfigService интерфейс сервиса конфигурации
type ConfigService interface {
	GetBySalon(ctx context.Context, salonID int64) (*models.ConfigResponse, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, args ...any)
	Warn(format string, args ...any)
	Error(format string, args ...any)
}
