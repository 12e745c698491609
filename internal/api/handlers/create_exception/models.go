package create_exception

// CreateExceptionRequest HTTP request model
// StaffID == nil означает блокировку всего салона
type CreateExceptionRequest struct {
	StaffID   *int64  `json:"staffId,omitempty"`
	Date      string  `json:"date"`                // "2025-10-15"
	StartTime *string `json:"startTime,omitempty"` // "HH:MM", игнорируется для all-day
	EndTime   *string `json:"endTime,omitempty"`   // "HH:MM", игнорируется для all-day
	IsAllDay  bool    `json:"isAllDay"`
	Reason    *string `json:"reason,omitempty"`
}
