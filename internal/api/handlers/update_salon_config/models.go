package update_salon_config

// UpdateConfigRequest HTTP request model
// nil поля не изменяются
type UpdateConfigRequest struct {
	GranularityMinutes        *int `json:"granularityMinutes,omitempty"`
	MaxConcurrentReservations *int `json:"maxConcurrentReservations,omitempty"`
	ReservationLimitDays      *int `json:"reservationLimitDays,omitempty"`
	MinNoticeMinutes          *int `json:"minNoticeMinutes,omitempty"`
}
