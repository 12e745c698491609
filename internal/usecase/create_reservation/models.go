package create_reservation

import (
	"time"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	"github.com/m04kA/SMC-SalonService/pkg/types"
)

// Line одна выбранная позиция каталога
type Line struct {
	ItemID   int64 // ID позиции каталога
	Quantity int   // Количество, >= 1
}

// Request модель запроса на создание бронирования
type Request struct {
	UserID    int64            // ID клиента (из заголовка аутентификации)
	SalonID   int64            // ID салона
	StaffID   int64            // ID мастера
	Date      time.Time        // Дата бронирования (без времени)
	StartTime types.TimeString // Время начала окна (например, "10:00")
	Menus     []Line           // Выбранные меню
	Options   []Line           // Выбранные опции
	Notes     *string          // Дополнительные заметки (опционально)
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID              int64            // ID созданного бронирования
	CustomerID      int64            // ID клиента
	SalonID         int64            // ID салона
	StaffID         int64            // ID мастера
	Date            time.Time        // Дата бронирования
	StartTime       types.TimeString // Время начала
	DurationMinutes int              // Полная занятость места в минутах
	WorkingMinutes  int              // Активная работа мастера в минутах
	Status          string           // Статус бронирования

	// Денормализованные данные
	MenuSummary string  // Сводка выбора ("Cut x1, Color x1")
	TotalPrice  float64 // Итоговая цена выбора
	Notes       *string // Заметки

	CreatedAt time.Time // Время создания
	UpdatedAt time.Time // Время обновления
}

// toSelectionLines конвертирует строки запроса в domain модель
func toSelectionLines(lines []Line) []domain.SelectionLine {
	result := make([]domain.SelectionLine, len(lines))
	for i, line := range lines {
		result[i] = domain.SelectionLine{
			ItemID:   line.ItemID,
			Quantity: line.Quantity,
		}
	}
	return result
}
