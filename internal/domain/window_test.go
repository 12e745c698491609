package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeWindow(t *testing.T) {
	date := time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC)

	window, err := NewTimeWindow(date, Interval{Start: 600, End: 660})
	require.NoError(t, err)

	assert.Equal(t, "10:00", window.StartTime.String())
	assert.Equal(t, "11:00", window.EndTime.String())
	assert.Equal(t, 60, window.DurationMinutes())

	// unix millis span equals interval length
	assert.Equal(t, int64(60*60000), window.EndUnixMilli-window.StartUnixMilli)

	expectedStart := time.Date(2026, 9, 15, 10, 0, 0, 0, time.UTC).UnixMilli()
	assert.Equal(t, expectedStart, window.StartUnixMilli)
}

func TestNewTimeWindow_OutOfRange(t *testing.T) {
	date := time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC)

	_, err := NewTimeWindow(date, Interval{Start: -10, End: 60})
	assert.Error(t, err)

	_, err = NewTimeWindow(date, Interval{Start: 1400, End: 1500})
	assert.Error(t, err)
}

func TestTimeWindow_Interval(t *testing.T) {
	date := time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC)

	window, err := NewTimeWindow(date, Interval{Start: 615, End: 700})
	require.NoError(t, err)

	assert.Equal(t, Interval{Start: 615, End: 700}, window.Interval())
}
