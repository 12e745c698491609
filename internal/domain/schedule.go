package domain

import (
	"time"

	"github.com/m04kA/SMC-SalonService/pkg/types"
)

// ExceptionBlock is a one-off override of the recurring weekly schedule:
// a holiday, a training day, a partially blocked afternoon.
// StaffID == nil means the block applies to the whole salon.
type ExceptionBlock struct {
	ID        int64
	SalonID   int64
	StaffID   *int64
	Date      time.Time
	StartTime types.TimeString
	EndTime   types.TimeString
	IsAllDay  bool
	Reason    *string
	CreatedAt time.Time
}

// IsSalonWide returns true if the block applies to every staff member
func (e *ExceptionBlock) IsSalonWide() bool {
	return e.StaffID == nil
}

// AppliesToStaff returns true if the block removes availability for the
// given staff member
func (e *ExceptionBlock) AppliesToStaff(staffID int64) bool {
	return e.StaffID == nil || *e.StaffID == staffID
}

// OnDate returns true if the block falls on the given calendar day
func (e *ExceptionBlock) OnDate(date time.Time) bool {
	y1, m1, d1 := e.Date.Date()
	y2, m2, d2 := date.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// Interval returns the blocked time of day as a minute interval.
// All-day blocks and malformed times return an empty interval; all-day
// blocks are handled separately by the caller (they kill the whole day).
func (e *ExceptionBlock) Interval() Interval {
	if e.IsAllDay {
		return Interval{}
	}

	start, err := e.StartTime.Minutes()
	if err != nil {
		return Interval{}
	}
	end, err := e.EndTime.Minutes()
	if err != nil {
		return Interval{}
	}

	return Interval{Start: start, End: end}
}
