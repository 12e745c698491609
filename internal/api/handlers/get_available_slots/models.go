package get_available_slots

import (
	"time"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	getAvailableSlots "github.com/m04kA/SMC-SalonService/internal/usecase/get_available_slots"
)

// AvailableSlotsResponse HTTP response model
type AvailableSlotsResponse struct {
	Date               string       `json:"date"`
	SalonID            int64        `json:"salonId"`
	StaffID            int64        `json:"staffId"`
	DurationMinutes    int          `json:"durationMinutes"`
	GranularityMinutes int          `json:"granularityMinutes"`
	Windows            []TimeWindow `json:"windows"`
}

// TimeWindow модель окна бронирования
// Unix-метки дублируют время начала и конца для клиентов,
// которым нужны абсолютные значения
type TimeWindow struct {
	StartTime      string `json:"startTime"` // "10:00"
	EndTime        string `json:"endTime"`   // "11:30"
	StartUnixMilli int64  `json:"startUnixMilli"`
	EndUnixMilli   int64  `json:"endUnixMilli"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableSlots.Response) *AvailableSlotsResponse {
	windows := make([]TimeWindow, len(resp.Windows))
	for i, window := range resp.Windows {
		windows[i] = TimeWindow{
			StartTime:      window.StartTime.String(),
			EndTime:        window.EndTime.String(),
			StartUnixMilli: window.StartUnixMilli,
			EndUnixMilli:   window.EndUnixMilli,
		}
	}

	return &AvailableSlotsResponse{
		Date:               resp.Date.Format(domain.DateFormat),
		SalonID:            resp.SalonID,
		StaffID:            resp.StaffID,
		DurationMinutes:    resp.DurationMinutes,
		GranularityMinutes: resp.GranularityMinutes,
		Windows:            windows,
	}
}

// ToUseCaseRequest создает запрос use case из параметров маршрута
func ToUseCaseRequest(userID, salonID, staffID int64, dateStr string, durationMinutes int) (*getAvailableSlots.Request, error) {
	// Парсим дату
	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		return nil, err
	}

	return &getAvailableSlots.Request{
		UserID:          userID,
		SalonID:         salonID,
		StaffID:         staffID,
		Date:            date,
		DurationMinutes: durationMinutes,
	}, nil
}
