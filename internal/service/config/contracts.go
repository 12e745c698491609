package config

import (
	"context"
	"time"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	"github.com/m04kA/SMC-SalonService/internal/integrations/salondirectory"
)

// ConfigRepository интерфейс репозитория конфигурации бронирования
type ConfigRepository interface {
	GetBySalon(ctx context.Context, salonID int64) (*domain.SalonBookingConfig, error)
	Upsert(ctx context.Context, config *domain.SalonBookingConfig) (*domain.SalonBookingConfig, error)
	Delete(ctx context.Context, salonID int64) error
}

// ExceptionRepository интерфейс репозитория календаря исключений
type ExceptionRepository interface {
	Create(ctx context.Context, block *domain.ExceptionBlock) (*domain.ExceptionBlock, error)
	GetByID(ctx context.Context, id int64) (*domain.ExceptionBlock, error)
	ListByDateRange(ctx context.Context, salonID int64, from, to time.Time) ([]*domain.ExceptionBlock, error)
	Delete(ctx context.Context, id int64) error
}

// SalonDirectoryClient интерфейс клиента для SalonDirectory
type SalonDirectoryClient interface {
	GetSalon(ctx context.Context, salonID int64) (*salondirectory.Salon, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
