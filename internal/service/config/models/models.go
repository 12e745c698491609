package models

import (
	"time"

	"github.com/m04kA/SMC-SalonService/internal/domain"
)

// Request модели

// UpdateConfigRequest запрос на обновление конфигурации бронирования
// Поддерживает частичное обновление - nil поля не изменяются
type UpdateConfigRequest struct {
	UserID                    int64 `json:"userId"`
	SalonID                   int64 `json:"salonId"`
	GranularityMinutes        *int  `json:"granularityMinutes,omitempty"`
	MaxConcurrentReservations *int  `json:"maxConcurrentReservations,omitempty"`
	ReservationLimitDays      *int  `json:"reservationLimitDays,omitempty"`
	MinNoticeMinutes          *int  `json:"minNoticeMinutes,omitempty"`
}

// ApplyToConfig применяет частичное обновление к конфигурации
func (r *UpdateConfigRequest) ApplyToConfig(config *domain.SalonBookingConfig) {
	if r.GranularityMinutes != nil {
		config.GranularityMinutes = *r.GranularityMinutes
	}
	if r.MaxConcurrentReservations != nil {
		config.MaxConcurrentReservations = *r.MaxConcurrentReservations
	}
	if r.ReservationLimitDays != nil {
		config.ReservationLimitDays = *r.ReservationLimitDays
	}
	if r.MinNoticeMinutes != nil {
		config.MinNoticeMinutes = *r.MinNoticeMinutes
	}
}

// CreateExceptionRequest запрос на создание блока-исключения
// StaffID == nil означает блокировку всего салона
type CreateExceptionRequest struct {
	UserID    int64     `json:"userId"`
	SalonID   int64     `json:"salonId"`
	StaffID   *int64    `json:"staffId,omitempty"`
	Date      time.Time `json:"date"`
	StartTime *string   `json:"startTime,omitempty"` // "HH:MM", игнорируется для all-day
	EndTime   *string   `json:"endTime,omitempty"`   // "HH:MM", игнорируется для all-day
	IsAllDay  bool      `json:"isAllDay"`
	Reason    *string   `json:"reason,omitempty"`
}

// ListExceptionsRequest запрос на получение блоков-исключений за период
type ListExceptionsRequest struct {
	UserID  int64     `json:"userId"`
	SalonID int64     `json:"salonId"`
	From    time.Time `json:"from"`
	To      time.Time `json:"to"`
}

// Response модели

// ConfigResponse ответ с конфигурацией бронирования
// IsDefault == true означает, что у салона нет сохранённой конфигурации
// и возвращены дефолтные значения
type ConfigResponse struct {
	SalonID                   int64 `json:"salonId"`
	GranularityMinutes        int   `json:"granularityMinutes"`
	MaxConcurrentReservations int   `json:"maxConcurrentReservations"`
	ReservationLimitDays      int   `json:"reservationLimitDays"`
	MinNoticeMinutes          int   `json:"minNoticeMinutes"`
	IsDefault                 bool  `json:"isDefault"`

	CreatedAt *time.Time `json:"createdAt,omitempty"`
	UpdatedAt *time.Time `json:"updatedAt,omitempty"`
}

// ExceptionResponse ответ с блоком-исключением
type ExceptionResponse struct {
	ID        int64   `json:"id"`
	SalonID   int64   `json:"salonId"`
	StaffID   *int64  `json:"staffId,omitempty"`
	Date      string  `json:"date"`                // "2025-10-15"
	StartTime *string `json:"startTime,omitempty"` // "HH:MM", nil для all-day
	EndTime   *string `json:"endTime,omitempty"`   // "HH:MM", nil для all-day
	IsAllDay  bool    `json:"isAllDay"`
	Reason    *string `json:"reason,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
}

// ExceptionListResponse ответ со списком блоков-исключений
type ExceptionListResponse struct {
	Exceptions []ExceptionResponse `json:"exceptions"`
}

// Методы конвертации

// FromDomainConfig конвертирует domain модель в DTO
func FromDomainConfig(c *domain.SalonBookingConfig, isDefault bool) *ConfigResponse {
	if c == nil {
		return nil
	}

	resp := &ConfigResponse{
		SalonID:                   c.SalonID,
		GranularityMinutes:        c.GranularityMinutes,
		MaxConcurrentReservations: c.MaxConcurrentReservations,
		ReservationLimitDays:      c.ReservationLimitDays,
		MinNoticeMinutes:          c.MinNoticeMinutes,
		IsDefault:                 isDefault,
	}

	// Для сохранённой конфигурации отдаём и временные метки
	if !isDefault {
		createdAt := c.CreatedAt
		updatedAt := c.UpdatedAt
		resp.CreatedAt = &createdAt
		resp.UpdatedAt = &updatedAt
	}

	return resp
}

// FromDomainException конвертирует domain модель в DTO
func FromDomainException(e *domain.ExceptionBlock) *ExceptionResponse {
	if e == nil {
		return nil
	}

	resp := &ExceptionResponse{
		ID:       e.ID,
		SalonID:  e.SalonID,
		StaffID:  e.StaffID,
		Date:     e.Date.Format(domain.DateFormat),
		IsAllDay: e.IsAllDay,
		Reason:   e.Reason,

		CreatedAt: e.CreatedAt,
	}

	// Для частичных блоков отдаём границы окна
	if !e.IsAllDay {
		startTime := e.StartTime.String()
		endTime := e.EndTime.String()
		resp.StartTime = &startTime
		resp.EndTime = &endTime
	}

	return resp
}

// FromDomainExceptionList конвертирует список domain моделей в DTO
func FromDomainExceptionList(blocks []*domain.ExceptionBlock) *ExceptionListResponse {
	if blocks == nil {
		return &ExceptionListResponse{
			Exceptions: []ExceptionResponse{},
		}
	}

	resp := &ExceptionListResponse{
		Exceptions: make([]ExceptionResponse, len(blocks)),
	}

	for i, block := range blocks {
		if blockResp := FromDomainException(block); blockResp != nil {
			resp.Exceptions[i] = *blockResp
		}
	}

	return resp
}
