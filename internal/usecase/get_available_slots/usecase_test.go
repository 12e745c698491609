package get_available_slots

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	configRepo "github.com/m04kA/SMC-SalonService/internal/infra/storage/config"
	directory "github.com/m04kA/SMC-SalonService/internal/integrations/salondirectory"
	"github.com/m04kA/SMC-SalonService/pkg/ptr"
)

// Стабы зависимостей

type stubReservationRepo struct {
	reservations []*domain.Reservation
	err          error
}

func (s *stubReservationRepo) GetBySalonWithFilter(_ context.Context, _ domain.SalonReservationsFilter) ([]*domain.Reservation, error) {
	return s.reservations, s.err
}

type stubExceptionRepo struct {
	blocks []*domain.ExceptionBlock
	err    error
}

func (s *stubExceptionRepo) ListByDate(_ context.Context, _ int64, _ time.Time) ([]*domain.ExceptionBlock, error) {
	return s.blocks, s.err
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

type stubDirectoryClient struct {
	salon    *directory.Salon
	staff    *directory.Staff
	salonErr error
	staffErr error
}

func (s *stubDirectoryClient) GetSalon(_ context.Context, _ int64) (*directory.Salon, error) {
	if s.salonErr != nil {
		return nil, s.salonErr
	}
	return s.salon, nil
}

func (s *stubDirectoryClient) GetStaff(_ context.Context, _, _ int64) (*directory.Staff, error) {
	if s.staffErr != nil {
		return nil, s.staffErr
	}
	return s.staff, nil
}

type fixedTimeProvider struct {
	now time.Time
}

func (p *fixedTimeProvider) Now() time.Time {
	return p.now
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

// Фикстуры

// вторник 2026-09-15, текущее время за неделю до даты запроса
var (
	testNow  = time.Date(2026, 9, 8, 12, 0, 0, 0, time.UTC)
	testDate = time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC)
)

func workingStaff(open, close string) *directory.Staff {
	day := directory.DaySchedule{IsOpen: true, OpenTime: &open, CloseTime: &close}
	return &directory.Staff{
		ID:       7,
		SalonID:  1,
		Name:     "Test Staff",
		IsActive: true,
		WorkingHours: directory.WeekSchedule{
			Monday:    day,
			Tuesday:   day,
			Wednesday: day,
			Thursday:  day,
			Friday:    day,
		},
	}
}

func newUseCaseForTest(
	reservations *stubReservationRepo,
	exceptions *stubExceptionRepo,
	config *stubConfigRepo,
	dir *stubDirectoryClient,
) *UseCase {
	uc := NewUseCase(reservations, exceptions, config, dir, nopLogger{})
	uc.timeProvider = &fixedTimeProvider{now: testNow}
	return uc
}

func defaultRequest() *Request {
	return &Request{
		UserID:          42,
		SalonID:         1,
		StaffID:         7,
		Date:            testDate,
		DurationMinutes: 60,
	}
}

func windowStarts(windows []domain.TimeWindow) []string {
	starts := make([]string, len(windows))
	for i, w := range windows {
		starts[i] = w.StartTime.String()
	}
	return starts
}

func TestExecute_PlainDay(t *testing.T) {
	uc := newUseCaseForTest(
		&stubReservationRepo{},
		&stubExceptionRepo{},
		&stubConfigRepo{config: &domain.SalonBookingConfig{
			SalonID:            1,
			GranularityMinutes: 30,
		}},
		&stubDirectoryClient{salon: &directory.Salon{ID: 1}, staff: workingStaff("10:00", "13:00")},
	)

	resp, err := uc.Execute(context.Background(), defaultRequest())
	require.NoError(t, err)

	// 10:00-13:00, окно 60 минут, шаг 30: последний старт 12:00
	assert.Equal(t, []string{"10:00", "10:30", "11:00", "11:30", "12:00"}, windowStarts(resp.Windows))
	assert.Equal(t, 30, resp.GranularityMinutes)

	for _, w := range resp.Windows {
		assert.Equal(t, 60, w.DurationMinutes())
	}
}

func TestExecute_ReservationSplitsDay(t *testing.T) {
	reservation := &domain.Reservation{
		ID:              100,
		SalonID:         1,
		StaffID:         7,
		Date:            testDate,
		StartTime:       "12:00",
		DurationMinutes: 60,
		Status:          domain.StatusConfirmed,
	}

	uc := newUseCaseForTest(
		&stubReservationRepo{reservations: []*domain.Reservation{reservation}},
		&stubExceptionRepo{},
		&stubConfigRepo{config: &domain.SalonBookingConfig{SalonID: 1, GranularityMinutes: 30}},
		&stubDirectoryClient{salon: &directory.Salon{ID: 1}, staff: workingStaff("10:00", "15:00")},
	)

	resp, err := uc.Execute(context.Background(), defaultRequest())
	require.NoError(t, err)

	// Окно, заканчивающееся ровно в 12:00, и окно, начинающееся ровно
	// в 13:00, остаются доступными: границы не считаются пересечением
	assert.Equal(t, []string{"10:00", "10:30", "11:00", "13:00", "13:30", "14:00"}, windowStarts(resp.Windows))
}

func TestExecute_CancelledReservationIgnored(t *testing.T) {
	cancelled := &domain.Reservation{
		ID:              100,
		SalonID:         1,
		StaffID:         7,
		Date:            testDate,
		StartTime:       "12:00",
		DurationMinutes: 60,
		Status:          domain.StatusCancelledByCustomer,
	}

	uc := newUseCaseForTest(
		&stubReservationRepo{reservations: []*domain.Reservation{cancelled}},
		&stubExceptionRepo{},
		&stubConfigRepo{config: &domain.SalonBookingConfig{SalonID: 1, GranularityMinutes: 60}},
		&stubDirectoryClient{salon: &directory.Salon{ID: 1}, staff: workingStaff("10:00", "14:00")},
	)

	resp, err := uc.Execute(context.Background(), defaultRequest())
	require.NoError(t, err)

	assert.Equal(t, []string{"10:00", "11:00", "12:00", "13:00"}, windowStarts(resp.Windows))
}

func TestExecute_ClosedDay(t *testing.T) {
	// воскресенье не входит в расписание мастера
	sunday := time.Date(2026, 9, 13, 0, 0, 0, 0, time.UTC)

	uc := newUseCaseForTest(
		&stubReservationRepo{},
		&stubExceptionRepo{},
		&stubConfigRepo{},
		&stubDirectoryClient{salon: &directory.Salon{ID: 1}, staff: workingStaff("10:00", "18:00")},
	)

	req := defaultRequest()
	req.Date = sunday

	resp, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)
	assert.Empty(t, resp.Windows)
}

func TestExecute_InactiveStaff(t *testing.T) {
	staff := workingStaff("10:00", "18:00")
	staff.IsActive = false

	uc := newUseCaseForTest(
		&stubReservationRepo{},
		&stubExceptionRepo{},
		&stubConfigRepo{},
		&stubDirectoryClient{salon: &directory.Salon{ID: 1}, staff: staff},
	)

	resp, err := uc.Execute(context.Background(), defaultRequest())
	require.NoError(t, err)
	assert.Empty(t, resp.Windows)
}

func TestExecute_MalformedScheduleClosesDay(t *testing.T) {
	// открытие позже закрытия - день закрыт, а не открыт целиком
	staff := workingStaff("18:00", "10:00")

	uc := newUseCaseForTest(
		&stubReservationRepo{},
		&stubExceptionRepo{},
		&stubConfigRepo{},
		&stubDirectoryClient{salon: &directory.Salon{ID: 1}, staff: staff},
	)

	resp, err := uc.Execute(context.Background(), defaultRequest())
	require.NoError(t, err)
	assert.Empty(t, resp.Windows)
}

func TestExecute_AllDayException(t *testing.T) {
	block := &domain.ExceptionBlock{
		ID:       1,
		SalonID:  1,
		Date:     testDate,
		IsAllDay: true,
	}

	uc := newUseCaseForTest(
		&stubReservationRepo{},
		&stubExceptionRepo{blocks: []*domain.ExceptionBlock{block}},
		&stubConfigRepo{},
		&stubDirectoryClient{salon: &directory.Salon{ID: 1}, staff: workingStaff("10:00", "18:00")},
	)

	resp, err := uc.Execute(context.Background(), defaultRequest())
	require.NoError(t, err)
	assert.Empty(t, resp.Windows)
}

func TestExecute_PartialExceptionCutsWindow(t *testing.T) {
	// персональный блок 12:00-13:00
	block := &domain.ExceptionBlock{
		ID:        1,
		SalonID:   1,
		StaffID:   ptr.Ptr(int64(7)),
		Date:      testDate,
		StartTime: "12:00",
		EndTime:   "13:00",
	}

	uc := newUseCaseForTest(
		&stubReservationRepo{},
		&stubExceptionRepo{blocks: []*domain.ExceptionBlock{block}},
		&stubConfigRepo{config: &domain.SalonBookingConfig{SalonID: 1, GranularityMinutes: 30}},
		&stubDirectoryClient{salon: &directory.Salon{ID: 1}, staff: workingStaff("10:00", "15:00")},
	)

	resp, err := uc.Execute(context.Background(), defaultRequest())
	require.NoError(t, err)
	assert.Equal(t, []string{"10:00", "10:30", "11:00", "13:00", "13:30", "14:00"}, windowStarts(resp.Windows))
}

func TestExecute_OtherStaffExceptionIgnored(t *testing.T) {
	block := &domain.ExceptionBlock{
		ID:        1,
		SalonID:   1,
		StaffID:   ptr.Ptr(int64(99)), // чужой персональный блок
		Date:      testDate,
		StartTime: "10:00",
		EndTime:   "18:00",
	}

	uc := newUseCaseForTest(
		&stubReservationRepo{},
		&stubExceptionRepo{blocks: []*domain.ExceptionBlock{block}},
		&stubConfigRepo{config: &domain.SalonBookingConfig{SalonID: 1, GranularityMinutes: 60}},
		&stubDirectoryClient{salon: &directory.Salon{ID: 1}, staff: workingStaff("10:00", "12:00")},
	)

	resp, err := uc.Execute(context.Background(), defaultRequest())
	require.NoError(t, err)
	assert.Equal(t, []string{"10:00", "11:00"}, windowStarts(resp.Windows))
}

func TestExecute_DurationDoesNotFit(t *testing.T) {
	uc := newUseCaseForTest(
		&stubReservationRepo{},
		&stubExceptionRepo{},
		&stubConfigRepo{},
		&stubDirectoryClient{salon: &directory.Salon{ID: 1}, staff: workingStaff("10:00", "11:00")},
	)

	req := defaultRequest()
	req.DurationMinutes = 90

	resp, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)
	assert.Empty(t, resp.Windows)
}

func TestExecute_MinNoticeFiltersToday(t *testing.T) {
	// запрос на сегодня: сейчас 12:00, minNotice 120 минут
	uc := newUseCaseForTest(
		&stubReservationRepo{},
		&stubExceptionRepo{},
		&stubConfigRepo{config: &domain.SalonBookingConfig{
			SalonID:            1,
			GranularityMinutes: 60,
			MinNoticeMinutes:   120,
		}},
		&stubDirectoryClient{salon: &directory.Salon{ID: 1}, staff: workingStaff("10:00", "18:00")},
	)

	req := defaultRequest()
	req.Date = time.Date(testNow.Year(), testNow.Month(), testNow.Day(), 0, 0, 0, 0, time.UTC)

	resp, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)

	// окна раньше 14:00 отброшены
	assert.Equal(t, []string{"14:00", "15:00", "16:00", "17:00"}, windowStarts(resp.Windows))
}

func TestExecute_DateValidation(t *testing.T) {
	t.Run("date in the past", func(t *testing.T) {
		uc := newUseCaseForTest(
			&stubReservationRepo{},
			&stubExceptionRepo{},
			&stubConfigRepo{},
			&stubDirectoryClient{salon: &directory.Salon{ID: 1}, staff: workingStaff("10:00", "18:00")},
		)

		req := defaultRequest()
		req.Date = testNow.AddDate(0, 0, -1)

		_, err := uc.Execute(context.Background(), req)
		assert.ErrorIs(t, err, ErrInvalidDate)
	})

	t.Run("date beyond reservation limit", func(t *testing.T) {
		uc := newUseCaseForTest(
			&stubReservationRepo{},
			&stubExceptionRepo{},
			&stubConfigRepo{config: &domain.SalonBookingConfig{
				SalonID:              1,
				GranularityMinutes:   30,
				ReservationLimitDays: 3,
			}},
			&stubDirectoryClient{salon: &directory.Salon{ID: 1}, staff: workingStaff("10:00", "18:00")},
		)

		_, err := uc.Execute(context.Background(), defaultRequest())
		assert.ErrorIs(t, err, ErrDateTooFarInFuture)
	})

	t.Run("zero limit means unlimited", func(t *testing.T) {
		uc := newUseCaseForTest(
			&stubReservationRepo{},
			&stubExceptionRepo{},
			&stubConfigRepo{},
			&stubDirectoryClient{salon: &directory.Salon{ID: 1}, staff: workingStaff("10:00", "18:00")},
		)

		req := defaultRequest()
		req.Date = testNow.AddDate(1, 0, 0)

		_, err := uc.Execute(context.Background(), req)
		assert.NoError(t, err)
	})
}

func TestExecute_SalonNotFound(t *testing.T) {
	uc := newUseCaseForTest(
		&stubReservationRepo{},
		&stubExceptionRepo{},
		&stubConfigRepo{},
		&stubDirectoryClient{salonErr: directory.ErrSalonNotFound},
	)

	_, err := uc.Execute(context.Background(), defaultRequest())
	assert.ErrorIs(t, err, ErrSalonNotFound)
}

func TestExecute_StaffNotFound(t *testing.T) {
	uc := newUseCaseForTest(
		&stubReservationRepo{},
		&stubExceptionRepo{},
		&stubConfigRepo{},
		&stubDirectoryClient{salon: &directory.Salon{ID: 1}, staffErr: directory.ErrStaffNotFound},
	)

	_, err := uc.Execute(context.Background(), defaultRequest())
	assert.ErrorIs(t, err, ErrStaffNotFound)
}

func TestExecute_InvalidInput(t *testing.T) {
	uc := newUseCaseForTest(
		&stubReservationRepo{},
		&stubExceptionRepo{},
		&stubConfigRepo{},
		&stubDirectoryClient{salon: &directory.Salon{ID: 1}, staff: workingStaff("10:00", "18:00")},
	)

	tests := []struct {
		name   string
		mutate func(req *Request)
	}{
		{name: "zero salon ID", mutate: func(r *Request) { r.SalonID = 0 }},
		{name: "negative staff ID", mutate: func(r *Request) { r.StaffID = -1 }},
		{name: "zero duration", mutate: func(r *Request) { r.DurationMinutes = 0 }},
		{name: "zero date", mutate: func(r *Request) { r.Date = time.Time{} }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := defaultRequest()
			tt.mutate(req)
			_, err := uc.Execute(context.Background(), req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

// Один и тот же вход всегда даёт один и тот же список окон,
// окна идут строго по возрастанию начала
func TestExecute_Deterministic(t *testing.T) {
	reservation := &domain.Reservation{
		ID:              100,
		SalonID:         1,
		StaffID:         7,
		Date:            testDate,
		StartTime:       "11:30",
		DurationMinutes: 45,
		Status:          domain.StatusPending,
	}

	build := func() *UseCase {
		return newUseCaseForTest(
			&stubReservationRepo{reservations: []*domain.Reservation{reservation}},
			&stubExceptionRepo{},
			&stubConfigRepo{config: &domain.SalonBookingConfig{SalonID: 1, GranularityMinutes: 15}},
			&stubDirectoryClient{salon: &directory.Salon{ID: 1}, staff: workingStaff("09:00", "17:00")},
		)
	}

	first, err := build().Execute(context.Background(), defaultRequest())
	require.NoError(t, err)
	second, err := build().Execute(context.Background(), defaultRequest())
	require.NoError(t, err)

	assert.Equal(t, first.Windows, second.Windows)

	for i := 1; i < len(first.Windows); i++ {
		assert.Less(t, first.Windows[i-1].StartUnixMilli, first.Windows[i].StartUnixMilli)
	}
}
