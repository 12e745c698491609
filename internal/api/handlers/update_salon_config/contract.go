package update_salon_config

import (
	"context"

	"github.com/m04kA/SMC-SalonService/internal/service/config/models"
)

// ConfigService интерфейс сервиса конфигурации
type ConfigService interface {
	Update(ctx context.Context, req *models.UpdateConfigRequest) (*models.ConfigResponse, error)
	Reset(ctx context.Context, salonID int64, userID int64) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, args ...any)
	Warn(format string, args ...any)
	Error(format string, args ...any)
}
