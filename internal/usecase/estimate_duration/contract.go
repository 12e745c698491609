package estimate_duration

import (
	"context"

	"github.com/m04kA/SMC-SalonService/internal/integrations/salondirectory"
)

// SalonDirectoryClient интерфейс клиента для SalonDirectory
type SalonDirectoryClient interface {
	GetMenuItems(ctx context.Context, salonID int64) ([]*salondirectory.MenuItem, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
