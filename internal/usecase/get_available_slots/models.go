package get_available_slots

import (
	"time"

	"github.com/m04kA/SMC-SalonService/internal/domain"
)

// Request модель запроса на получение доступных окон
type Request struct {
	UserID          int64     // ID пользователя (для логирования, не влияет на результат)
	SalonID         int64     // ID салона
	StaffID         int64     // ID мастера
	Date            time.Time // Дата для получения окон (без времени)
	DurationMinutes int       // Полная длительность занятости места (reservedMinutes агрегатора)
}

// Response модель ответа со списком доступных окон
type Response struct {
	Date               time.Time           // Дата, на которую запрашивались окна
	SalonID            int64               // ID салона
	StaffID            int64               // ID мастера
	DurationMinutes    int                 // Запрошенная длительность
	GranularityMinutes int                 // Шаг сетки, с которым сгенерированы окна
	Windows            []domain.TimeWindow // Список окон в хронологическом порядке
}
