package domain

// Default configuration values
const (
	DefaultGranularityMinutes        = 5
	DefaultMaxConcurrentReservations = 1
	DefaultReservationLimitDays      = 0  // 0 = unlimited
	DefaultMinNoticeMinutes          = 60 // 1 hour
)

// Business validation constants
const (
	MinGranularityMinutes       = 5
	MaxGranularityMinutes       = 120
	MinConcurrentReservations   = 1
	MaxConcurrentReservationCap = 100
	MinReservationLimitDays     = 0
	MaxReservationLimitDays     = 365 // 1 year
	MinNoticeMinutesLowerBound  = 0
	MinNoticeMinutesUpperBound  = 10080 // 1 week
	MaxMenuLines                = 5
	MaxOptionLines              = 5
	MaxLineQuantity             = 10
	MaxNotesLength              = 500
	MaxCancellationReasonLength = 500
	MaxExceptionReasonLength    = 200
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// InactiveStatuses список статусов неактивных бронирований
// Такие бронирования не занимают время мастера и не учитываются при подсчёте загрузки салона
var InactiveStatuses = []ReservationStatus{
	StatusCancelledByCustomer,
	StatusCancelledBySalon,
	StatusNoShow,
}

// ActiveStatuses список статусов активных бронирований
var ActiveStatuses = []ReservationStatus{
	StatusPending,
	StatusConfirmed,
	StatusInProgress,
	StatusCompleted,
}
