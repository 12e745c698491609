package estimate_duration

import "github.com/m04kA/SMC-SalonService/internal/domain"

// Line одна выбранная позиция каталога
type Line struct {
	ItemID   int64 // ID позиции каталога
	Quantity int   // Количество, >= 1
}

// Request модель запроса на расчёт длительности выбора
type Request struct {
	UserID  int64  // ID пользователя (для логирования, не влияет на результат)
	SalonID int64  // ID салона
	Menus   []Line // Выбранные меню
	Options []Line // Выбранные опции
}

// Response модель ответа с агрегированной длительностью
// ReservedMinutes - полная занятость места, WorkingMinutes - активная работа
// мастера, DiffMinutes - пассивное время ожидания (показывается клиенту)
type Response struct {
	SalonID         int64
	WorkingMinutes  int
	ReservedMinutes int
	DiffMinutes     int
	TotalPrice      float64
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
