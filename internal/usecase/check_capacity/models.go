package check_capacity

// Request модель запроса на проверку загрузки салона
// Временные метки в миллисекундах unix, окно полуоткрытое [start, end)
type Request struct {
	UserID         int64 // ID пользователя (для логирования, не влияет на результат)
	SalonID        int64 // ID салона
	StartUnixMilli int64 // Начало окна
	EndUnixMilli   int64 // Конец окна
}

// Response модель ответа проверки загрузки
type Response struct {
	SalonID       int64
	IsAvailable   bool // true, если в окне есть свободное место
	CurrentCount  int  // Количество активных бронирований, пересекающих окно
	MaxConcurrent int  // Вместимость салона
}
