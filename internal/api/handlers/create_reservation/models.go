package create_reservation

import (
	"time"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	createReservation "github.com/m04kA/SMC-SalonService/internal/usecase/create_reservation"
	"github.com/m04kA/SMC-SalonService/pkg/types"
)

// SelectionLine строка выбора в HTTP запросе
type SelectionLine struct {
	ItemID   int64 `json:"itemId"`
	Quantity int   `json:"quantity"`
}

// CreateReservationRequest HTTP request model
type CreateReservationRequest struct {
	SalonID   int64           `json:"salonId"`
	StaffID   int64           `json:"staffId"`
	Date      string          `json:"date"`      // "2025-10-15"
	StartTime string          `json:"startTime"` // "10:00"
	Menus     []SelectionLine `json:"menus"`
	Options   []SelectionLine `json:"options,omitempty"`
	Notes     *string         `json:"notes,omitempty"`
}

// ReservationResponse HTTP response model
type ReservationResponse struct {
	ID              int64   `json:"id"`
	CustomerID      int64   `json:"customerId"`
	SalonID         int64   `json:"salonId"`
	StaffID         int64   `json:"staffId"`
	Date            string  `json:"date"`
	StartTime       string  `json:"startTime"`
	DurationMinutes int     `json:"durationMinutes"`
	WorkingMinutes  int     `json:"workingMinutes"`
	Status          string  `json:"status"`
	MenuSummary     string  `json:"menuSummary"`
	TotalPrice      float64 `json:"totalPrice"`
	Notes           *string `json:"notes,omitempty"`
	CreatedAt       string  `json:"createdAt"`
	UpdatedAt       string  `json:"updatedAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateReservationRequest) ToUseCaseRequest(userID int64) (*createReservation.Request, error) {
	// Парсим дату
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}

	// Парсим время
	startTime, err := types.NewTimeStringFromString(r.StartTime)
	if err != nil {
		return nil, err
	}

	return &createReservation.Request{
		UserID:    userID,
		SalonID:   r.SalonID,
		StaffID:   r.StaffID,
		Date:      date,
		StartTime: startTime,
		Menus:     toUseCaseLines(r.Menus),
		Options:   toUseCaseLines(r.Options),
		Notes:     r.Notes,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createReservation.Response) *ReservationResponse {
	return &ReservationResponse{
		ID:              resp.ID,
		CustomerID:      resp.CustomerID,
		SalonID:         resp.SalonID,
		StaffID:         resp.StaffID,
		Date:            resp.Date.Format(domain.DateFormat),
		StartTime:       resp.StartTime.String(),
		DurationMinutes: resp.DurationMinutes,
		WorkingMinutes:  resp.WorkingMinutes,
		Status:          resp.Status,
		MenuSummary:     resp.MenuSummary,
		TotalPrice:      resp.TotalPrice,
		Notes:           resp.Notes,
		CreatedAt:       resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:       resp.UpdatedAt.Format(time.RFC3339),
	}
}

func toUseCaseLines(lines []SelectionLine) []createReservation.Line {
	result := make([]createReservation.Line, len(lines))
	for i, line := range lines {
		result[i] = createReservation.Line{
			ItemID:   line.ItemID,
			Quantity: line.Quantity,
		}
	}
	return result
}
