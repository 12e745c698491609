package domain

import "time"

// SalonBookingConfig represents the booking policy of a salon:
// the scheduling step for offered windows, the salon-wide concurrent
// capacity (seats), how far ahead reservations are accepted and the
// minimum notice before a same-day reservation
type SalonBookingConfig struct {
	ID                        int64
	SalonID                   int64
	GranularityMinutes        int
	MaxConcurrentReservations int
	ReservationLimitDays      int // 0 = unlimited
	MinNoticeMinutes          int
	CreatedAt                 time.Time
	UpdatedAt                 time.Time
}

// DefaultBookingConfig returns the config used when a salon has no stored row
func DefaultBookingConfig(salonID int64) *SalonBookingConfig {
	return &SalonBookingConfig{
		SalonID:                   salonID,
		GranularityMinutes:        DefaultGranularityMinutes,
		MaxConcurrentReservations: DefaultMaxConcurrentReservations,
		ReservationLimitDays:      DefaultReservationLimitDays,
		MinNoticeMinutes:          DefaultMinNoticeMinutes,
	}
}

// HasReservationLimit returns true if there's a limit on how far in advance
// reservations can be made
func (c *SalonBookingConfig) HasReservationLimit() bool {
	return c.ReservationLimitDays > 0
}

// SupportsParallelReservations returns true if multiple concurrent
// reservations are allowed
func (c *SalonBookingConfig) SupportsParallelReservations() bool {
	return c.MaxConcurrentReservations > 1
}
