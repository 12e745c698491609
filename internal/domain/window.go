package domain

import (
	"time"

	"github.com/m04kA/SMC-SalonService/pkg/types"
)

// TimeWindow represents a candidate or confirmed booking slot on a
// specific date. Unix timestamps are in milliseconds; for every window
// built from an interval, EndUnixMilli-StartUnixMilli equals the interval
// length in minutes times 60000.
type TimeWindow struct {
	StartTime      types.TimeString
	EndTime        types.TimeString
	StartUnixMilli int64
	EndUnixMilli   int64
}

// NewTimeWindow builds a window from a minute interval on the given date
func NewTimeWindow(date time.Time, iv Interval) (TimeWindow, error) {
	startTime, err := types.NewTimeStringFromMinutes(iv.Start)
	if err != nil {
		return TimeWindow{}, err
	}
	endTime, err := types.NewTimeStringFromMinutes(iv.End)
	if err != nil {
		return TimeWindow{}, err
	}

	startAbs, err := startTime.OnDate(date)
	if err != nil {
		return TimeWindow{}, err
	}

	return TimeWindow{
		StartTime:      startTime,
		EndTime:        endTime,
		StartUnixMilli: startAbs.UnixMilli(),
		EndUnixMilli:   startAbs.Add(time.Duration(iv.Length()) * time.Minute).UnixMilli(),
	}, nil
}

// DurationMinutes returns the window length in minutes
func (w TimeWindow) DurationMinutes() int {
	return int((w.EndUnixMilli - w.StartUnixMilli) / 60000)
}

// Interval returns the window as a minute-of-day interval
func (w TimeWindow) Interval() Interval {
	start, err := w.StartTime.Minutes()
	if err != nil {
		return Interval{}
	}
	return Interval{Start: start, End: start + w.DurationMinutes()}
}
