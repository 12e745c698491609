package domain

import (
	"time"

	"github.com/m04kA/SMC-SalonService/pkg/types"
)

// ReservationStatus represents the status of a reservation
type ReservationStatus string

const (
	StatusPending             ReservationStatus = "pending"
	StatusConfirmed           ReservationStatus = "confirmed"
	StatusInProgress          ReservationStatus = "in_progress"
	StatusCompleted           ReservationStatus = "completed"
	StatusCancelledByCustomer ReservationStatus = "cancelled_by_customer"
	StatusCancelledBySalon    ReservationStatus = "cancelled_by_salon"
	StatusNoShow              ReservationStatus = "no_show"
)

// Reservation represents a confirmed salon appointment
// DurationMinutes is the full seat occupancy (reserved time); WorkingMinutes
// is the staff's hands-on part of it, kept for transparency in the UI
type Reservation struct {
	ID              int64
	CustomerID      int64
	SalonID         int64
	StaffID         int64
	Date            time.Time
	StartTime       types.TimeString
	DurationMinutes int
	WorkingMinutes  int
	Status          ReservationStatus

	// Denormalized data for history
	MenuSummary string
	TotalPrice  float64
	Notes       *string

	CancellationReason *string
	CancelledAt        *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive returns true if the reservation occupies staff time
// and counts toward salon capacity
func (r *Reservation) IsActive() bool {
	return r.Status != StatusCancelledByCustomer &&
		r.Status != StatusCancelledBySalon &&
		r.Status != StatusNoShow
}

// CanBeCancelled returns true if the reservation can be cancelled
func (r *Reservation) CanBeCancelled() bool {
	return r.Status == StatusPending || r.Status == StatusConfirmed
}

// CanBeUpdated returns true if the reservation can be updated
func (r *Reservation) CanBeUpdated() bool {
	return r.Status == StatusPending || r.Status == StatusConfirmed
}

// IsCancelled returns true if the reservation has been cancelled
func (r *Reservation) IsCancelled() bool {
	return r.Status == StatusCancelledByCustomer || r.Status == StatusCancelledBySalon
}

// IsCompleted returns true if the reservation is completed or was a no-show
func (r *Reservation) IsCompleted() bool {
	return r.Status == StatusCompleted || r.Status == StatusNoShow
}

// Interval returns the occupied time of day as a minute interval.
// Malformed start times yield an empty interval, so broken rows never
// block availability by accident.
func (r *Reservation) Interval() Interval {
	start, err := r.StartTime.Minutes()
	if err != nil {
		return Interval{}
	}
	return Interval{Start: start, End: start + r.DurationMinutes}
}

// SalonReservationsFilter фильтр для получения бронирований салона
type SalonReservationsFilter struct {
	SalonID         int64              // Обязательный параметр
	StaffID         *int64             // Фильтр по мастеру (опционально, если nil - все мастера)
	StartDate       *time.Time         // Начало периода (опционально)
	EndDate         *time.Time         // Конец периода (опционально)
	Status          *ReservationStatus // Фильтр по статусу (опционально)
	IncludeInactive bool               // Включать ли неактивные бронирования (отмененные, no-show)
}
