package check_capacity

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	configRepo "github.com/m04kA/SMC-SalonService/internal/infra/storage/config"
)

// Стабы зависимостей

type stubReservationRepo struct {
	reservations []*domain.Reservation
	err          error
}

func (s *stubReservationRepo) GetBySalonWithFilter(_ context.Context, _ domain.SalonReservationsFilter) ([]*domain.Reservation, error) {
	return s.reservations, s.err
}

type stubConfigRepo struct {
	config *domain.SalonBookingConfig
}

func (s *stubConfigRepo) GetBySalon(_ context.Context, _ int64) (*domain.SalonBookingConfig, error) {
	if s.config == nil {
		return nil, configRepo.ErrConfigNotFound
	}
	return s.config, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

// Фикстуры

var testDate = time.Date(2026, 9, 15, 0, 0, 0, 0, time.Local)

func windowRequest(startHour, endHour int) *Request {
	start := time.Date(2026, 9, 15, startHour, 0, 0, 0, time.Local)
	end := time.Date(2026, 9, 15, endHour, 0, 0, 0, time.Local)
	return &Request{
		UserID:         42,
		SalonID:        1,
		StartUnixMilli: start.UnixMilli(),
		EndUnixMilli:   end.UnixMilli(),
	}
}

func TestExecute_CapacityCounting(t *testing.T) {
	// три мастера заняты в 12:00-13:00, один освобождается ровно в 12:00
	reservations := []*domain.Reservation{
		{SalonID: 1, StaffID: 1, Date: testDate, StartTime: "12:00", DurationMinutes: 60, Status: domain.StatusConfirmed},
		{SalonID: 1, StaffID: 2, Date: testDate, StartTime: "11:30", DurationMinutes: 90, Status: domain.StatusPending},
		{SalonID: 1, StaffID: 3, Date: testDate, StartTime: "12:30", DurationMinutes: 30, Status: domain.StatusInProgress},
		{SalonID: 1, StaffID: 4, Date: testDate, StartTime: "11:00", DurationMinutes: 60, Status: domain.StatusConfirmed},
	}

	uc := NewUseCase(
		&stubReservationRepo{reservations: reservations},
		&stubConfigRepo{config: &domain.SalonBookingConfig{SalonID: 1, MaxConcurrentReservations: 5}},
		nopLogger{},
	)

	resp, err := uc.Execute(context.Background(), windowRequest(12, 13))
	require.NoError(t, err)

	// бронирование, заканчивающееся ровно в начале окна, не считается
	assert.Equal(t, 3, resp.CurrentCount)
	assert.Equal(t, 5, resp.MaxConcurrent)
	assert.True(t, resp.IsAvailable)
}

func TestExecute_SalonFull(t *testing.T) {
	reservations := []*domain.Reservation{
		{SalonID: 1, StaffID: 1, Date: testDate, StartTime: "12:00", DurationMinutes: 60, Status: domain.StatusConfirmed},
	}

	uc := NewUseCase(
		&stubReservationRepo{reservations: reservations},
		&stubConfigRepo{config: &domain.SalonBookingConfig{SalonID: 1, MaxConcurrentReservations: 1}},
		nopLogger{},
	)

	resp, err := uc.Execute(context.Background(), windowRequest(12, 13))
	require.NoError(t, err)

	assert.Equal(t, 1, resp.CurrentCount)
	assert.False(t, resp.IsAvailable)
}

func TestExecute_CancelledReservationsIgnored(t *testing.T) {
	reservations := []*domain.Reservation{
		{SalonID: 1, StaffID: 1, Date: testDate, StartTime: "12:00", DurationMinutes: 60, Status: domain.StatusCancelledBySalon},
		{SalonID: 1, StaffID: 2, Date: testDate, StartTime: "12:00", DurationMinutes: 60, Status: domain.StatusNoShow},
	}

	uc := NewUseCase(
		&stubReservationRepo{reservations: reservations},
		&stubConfigRepo{config: &domain.SalonBookingConfig{SalonID: 1, MaxConcurrentReservations: 1}},
		nopLogger{},
	)

	resp, err := uc.Execute(context.Background(), windowRequest(12, 13))
	require.NoError(t, err)

	assert.Equal(t, 0, resp.CurrentCount)
	assert.True(t, resp.IsAvailable)
}

func TestExecute_DefaultConfig(t *testing.T) {
	uc := NewUseCase(&stubReservationRepo{}, &stubConfigRepo{}, nopLogger{})

	resp, err := uc.Execute(context.Background(), windowRequest(12, 13))
	require.NoError(t, err)

	assert.Equal(t, domain.DefaultMaxConcurrentReservations, resp.MaxConcurrent)
	assert.True(t, resp.IsAvailable)
}

func TestExecute_WindowEndingAtMidnight(t *testing.T) {
	reservations := []*domain.Reservation{
		{SalonID: 1, StaffID: 1, Date: testDate, StartTime: "23:00", DurationMinutes: 60, Status: domain.StatusConfirmed},
	}

	uc := NewUseCase(
		&stubReservationRepo{reservations: reservations},
		&stubConfigRepo{config: &domain.SalonBookingConfig{SalonID: 1, MaxConcurrentReservations: 1}},
		nopLogger{},
	)

	start := time.Date(2026, 9, 15, 23, 0, 0, 0, time.Local)
	end := time.Date(2026, 9, 16, 0, 0, 0, 0, time.Local)

	resp, err := uc.Execute(context.Background(), &Request{
		SalonID:        1,
		StartUnixMilli: start.UnixMilli(),
		EndUnixMilli:   end.UnixMilli(),
	})
	require.NoError(t, err)

	assert.Equal(t, 1, resp.CurrentCount)
	assert.False(t, resp.IsAvailable)
}

func TestExecute_Validation(t *testing.T) {
	uc := NewUseCase(&stubReservationRepo{}, &stubConfigRepo{}, nopLogger{})

	t.Run("zero salon ID", func(t *testing.T) {
		req := windowRequest(12, 13)
		req.SalonID = 0
		_, err := uc.Execute(context.Background(), req)
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("missing timestamps", func(t *testing.T) {
		_, err := uc.Execute(context.Background(), &Request{SalonID: 1})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("start after end", func(t *testing.T) {
		req := windowRequest(13, 12)
		_, err := uc.Execute(context.Background(), req)
		assert.ErrorIs(t, err, ErrInvalidTimeRange)
	})

	t.Run("window crossing midnight", func(t *testing.T) {
		start := time.Date(2026, 9, 15, 23, 0, 0, 0, time.Local)
		end := time.Date(2026, 9, 16, 1, 0, 0, 0, time.Local)
		_, err := uc.Execute(context.Background(), &Request{
			SalonID:        1,
			StartUnixMilli: start.UnixMilli(),
			EndUnixMilli:   end.UnixMilli(),
		})
		assert.ErrorIs(t, err, ErrInvalidTimeRange)
	})
}

func TestCountOverlapping(t *testing.T) {
	window := domain.Interval{Start: 720, End: 780} // 12:00-13:00

	reservations := []*domain.Reservation{
		nil,
		{StartTime: "11:00", DurationMinutes: 60, Status: domain.StatusConfirmed},  // touches start, no overlap
		{StartTime: "13:00", DurationMinutes: 60, Status: domain.StatusConfirmed},  // touches end, no overlap
		{StartTime: "12:30", DurationMinutes: 15, Status: domain.StatusConfirmed},  // inside
		{StartTime: "11:00", DurationMinutes: 180, Status: domain.StatusConfirmed}, // covers window
		{StartTime: "12:00", DurationMinutes: 60, Status: domain.StatusNoShow},     // inactive
		{StartTime: "bad", DurationMinutes: 60, Status: domain.StatusConfirmed},    // malformed start is empty
	}

	assert.Equal(t, 2, CountOverlapping(window, reservations))
}
