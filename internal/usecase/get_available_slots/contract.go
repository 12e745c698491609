package get_available_slots

import (
	"context"
	"time"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	"github.com/m04kA/SMC-SalonService/internal/integrations/salondirectory"
)

// ReservationRepository интерфейс репозитория бронирований
type ReservationRepository interface {
	// GetBySalonWithFilter получает бронирования салона по фильтру
	// Резолвер запрашивает активные бронирования одного мастера на дату
	GetBySalonWithFilter(ctx context.Context, filter domain.SalonReservationsFilter) ([]*domain.Reservation, error)
}

// ExceptionRepository интерфейс репозитория календаря исключений
type ExceptionRepository interface {
	// ListByDate получает все блоки-исключения салона на дату
	// (и салонные, и персональные)
	ListByDate(ctx context.Context, salonID int64, date time.Time) ([]*domain.ExceptionBlock, error)
}

// ConfigRepository интерфейс репозитория конфигурации бронирования
type ConfigRepository interface {
	GetBySalon(ctx context.Context, salonID int64) (*domain.SalonBookingConfig, error)
}

// SalonDirectoryClient интерфейс клиента для SalonDirectory
type SalonDirectoryClient interface {
	GetSalon(ctx context.Context, salonID int64) (*salondirectory.Salon, error)
	GetStaff(ctx context.Context, salonID, staffID int64) (*salondirectory.Staff, error)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
