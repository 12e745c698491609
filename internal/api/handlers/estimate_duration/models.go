package estimate_duration

import (
	estimateDuration "github.com/m04kA/SMC-SalonService/internal/usecase/estimate_duration"
)

// SelectionLine строка выбора в HTTP запросе
type SelectionLine struct {
	ItemID   int64 `json:"itemId"`
	Quantity int   `json:"quantity"`
}

// EstimateDurationRequest HTTP request model
type EstimateDurationRequest struct {
	Menus   []SelectionLine `json:"menus"`
	Options []SelectionLine `json:"options,omitempty"`
}

// EstimateDurationResponse HTTP response model
type EstimateDurationResponse struct {
	SalonID         int64   `json:"salonId"`
	WorkingMinutes  int     `json:"workingMinutes"`
	ReservedMinutes int     `json:"reservedMinutes"`
	DiffMinutes     int     `json:"diffMinutes"`
	TotalPrice      float64 `json:"totalPrice"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *EstimateDurationRequest) ToUseCaseRequest(userID, salonID int64) *estimateDuration.Request {
	return &estimateDuration.Request{
		UserID:  userID,
		SalonID: salonID,
		Menus:   toUseCaseLines(r.Menus),
		Options: toUseCaseLines(r.Options),
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *estimateDuration.Response) *EstimateDurationResponse {
	return &EstimateDurationResponse{
		SalonID:         resp.SalonID,
		WorkingMinutes:  resp.WorkingMinutes,
		ReservedMinutes: resp.ReservedMinutes,
		DiffMinutes:     resp.DiffMinutes,
		TotalPrice:      resp.TotalPrice,
	}
}

func toUseCaseLines(lines []SelectionLine) []estimateDuration.Line {
	result := make([]estimateDuration.Line, len(lines))
	for i, line := range lines {
		result[i] = estimateDuration.Line{
			ItemID:   line.ItemID,
			Quantity: line.Quantity,
		}
	}
	return result
}
