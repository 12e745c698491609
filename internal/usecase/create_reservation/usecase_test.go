package create_reservation

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	configRepo "github.com/m04kA/SMC-SalonService/internal/infra/storage/config"
	customerClient "github.com/m04kA/SMC-SalonService/internal/integrations/customerservice"
	directory "github.com/m04kA/SMC-SalonService/internal/integrations/salondirectory"
	"github.com/m04kA/SMC-SalonService/pkg/types"
)

// Стабы зависимостей

type stubReservationRepo struct {
	reservations []*domain.Reservation
	created      *domain.Reservation
	createErr    error
}

func (s *stubReservationRepo) Create(_ context.Context, r *domain.Reservation) (*domain.Reservation, error) {
	if s.createErr != nil {
		return nil, s.createErr
	}
	created := *r
	created.ID = 500
	created.CreatedAt = time.Now()
	created.UpdatedAt = created.CreatedAt
	s.created = &created
	return &created, nil
}

func (s *stubReservationRepo) GetBySalonWithFilter(_ context.Context, _ domain.SalonReservationsFilter) ([]*domain.Reservation, error) {
	return s.reservations, nil
}

type stubExceptionRepo struct {
	blocks []*domain.ExceptionBlock
}

func (s *stubExceptionRepo) ListByDate(_ context.Context, _ int64, _ time.Time) ([]*domain.ExceptionBlock, error) {
	return s.blocks, nil
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
	items    []*directory.MenuItem
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

func (s *stubDirectoryClient) GetMenuItems(_ context.Context, _ int64) ([]*directory.MenuItem, error) {
	return s.items, nil
}

type stubCustomerClient struct {
	err error
}

func (s *stubCustomerClient) GetCustomerWithGracefulDegradation(_ context.Context, _ int64) (*customerClient.Customer, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &customerClient.Customer{ID: 42}, nil
}

// inlineTxManager выполняет функцию без реальной транзакции
type inlineTxManager struct {
	calls int
}

func (m *inlineTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	m.calls++
	return fn(ctx)
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

// вторник 2026-09-15, текущее время за неделю до даты бронирования
var (
	testNow  = time.Date(2026, 9, 8, 12, 0, 0, 0, time.UTC)
	testDate = time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC)
)

type fixture struct {
	reservations *stubReservationRepo
	exceptions   *stubExceptionRepo
	config       *stubConfigRepo
	dir          *stubDirectoryClient
	customers    *stubCustomerClient
	tx           *inlineTxManager
}

func newFixture() *fixture {
	open, close := "10:00", "18:00"
	day := directory.DaySchedule{IsOpen: true, OpenTime: &open, CloseTime: &close}

	return &fixture{
		reservations: &stubReservationRepo{},
		exceptions:   &stubExceptionRepo{},
		config: &stubConfigRepo{config: &domain.SalonBookingConfig{
			SalonID:                   1,
			GranularityMinutes:        30,
			MaxConcurrentReservations: 2,
			MinNoticeMinutes:          60,
		}},
		dir: &stubDirectoryClient{
			salon: &directory.Salon{ID: 1},
			staff: &directory.Staff{
				ID:       7,
				SalonID:  1,
				IsActive: true,
				WorkingHours: directory.WeekSchedule{
					Tuesday: day,
				},
			},
			items: []*directory.MenuItem{
				{ID: 1, SalonID: 1, Kind: "menu", Name: "Cut", Categories: []string{"cut"}, WorkingMinutes: 40, ReservedMinutes: 40, Price: 3000},
				{ID: 2, SalonID: 1, Kind: "menu", Name: "Color", Categories: []string{"color"}, WorkingMinutes: 30, ReservedMinutes: 90, Price: 7000},
				{ID: 10, SalonID: 1, Kind: "option", Name: "Head Spa", Categories: []string{"spa"}, WorkingMinutes: 20, Price: 1500},
			},
		},
		customers: &stubCustomerClient{},
		tx:        &inlineTxManager{},
	}
}

func (f *fixture) build() *UseCase {
	uc := NewUseCase(f.reservations, f.exceptions, f.config, f.dir, f.customers, f.tx, nopLogger{})
	uc.timeProvider = &fixedTimeProvider{now: testNow}
	return uc
}

func defaultRequest() *Request {
	return &Request{
		UserID:    42,
		SalonID:   1,
		StaffID:   7,
		Date:      testDate,
		StartTime: types.TimeString("12:00"),
		Menus:     []Line{{ItemID: 1, Quantity: 1}},
	}
}

func TestExecute_Success(t *testing.T) {
	f := newFixture()
	uc := f.build()

	resp, err := uc.Execute(context.Background(), defaultRequest())
	require.NoError(t, err)

	assert.Equal(t, int64(500), resp.ID)
	assert.Equal(t, int64(42), resp.CustomerID)
	assert.Equal(t, "confirmed", resp.Status)
	assert.Equal(t, 40, resp.DurationMinutes)
	assert.Equal(t, 40, resp.WorkingMinutes)
	assert.Equal(t, "Cut x1", resp.MenuSummary)
	assert.Equal(t, 3000.0, resp.TotalPrice)

	// создание прошло внутри сериализуемой транзакции
	assert.Equal(t, 1, f.tx.calls)
}

func TestExecute_DenormalizedSummaryAndTotals(t *testing.T) {
	f := newFixture()
	uc := f.build()

	req := defaultRequest()
	req.Menus = []Line{{ItemID: 2, Quantity: 1}}
	req.Options = []Line{{ItemID: 10, Quantity: 2}}

	resp, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, "Color x1, Head Spa x2", resp.MenuSummary)
	assert.Equal(t, 130, resp.DurationMinutes) // 90 + 2*20
	assert.Equal(t, 70, resp.WorkingMinutes)   // 30 + 2*20
	assert.Equal(t, 10000.0, resp.TotalPrice)
}

func TestExecute_StaffConflict(t *testing.T) {
	f := newFixture()
	f.reservations.reservations = []*domain.Reservation{
		{SalonID: 1, StaffID: 7, Date: testDate, StartTime: "11:30", DurationMinutes: 60, Status: domain.StatusConfirmed},
	}
	uc := f.build()

	_, err := uc.Execute(context.Background(), defaultRequest())
	assert.ErrorIs(t, err, ErrWindowNotAvailable)
}

func TestExecute_StaffBoundaryTouchAllowed(t *testing.T) {
	f := newFixture()
	// существующее бронирование заканчивается ровно в 12:00
	f.reservations.reservations = []*domain.Reservation{
		{SalonID: 1, StaffID: 7, Date: testDate, StartTime: "11:00", DurationMinutes: 60, Status: domain.StatusConfirmed},
	}
	uc := f.build()

	_, err := uc.Execute(context.Background(), defaultRequest())
	assert.NoError(t, err)
}

func TestExecute_CapacityExceeded(t *testing.T) {
	f := newFixture()
	// оба места заняты другими мастерами
	f.reservations.reservations = []*domain.Reservation{
		{SalonID: 1, StaffID: 8, Date: testDate, StartTime: "12:00", DurationMinutes: 60, Status: domain.StatusConfirmed},
		{SalonID: 1, StaffID: 9, Date: testDate, StartTime: "11:30", DurationMinutes: 90, Status: domain.StatusPending},
	}
	uc := f.build()

	_, err := uc.Execute(context.Background(), defaultRequest())
	assert.ErrorIs(t, err, ErrCapacityExceeded)
}

func TestExecute_CapacityHasFreeSeat(t *testing.T) {
	f := newFixture()
	// одно из двух мест занято - второе свободно
	f.reservations.reservations = []*domain.Reservation{
		{SalonID: 1, StaffID: 8, Date: testDate, StartTime: "12:00", DurationMinutes: 60, Status: domain.StatusConfirmed},
	}
	uc := f.build()

	_, err := uc.Execute(context.Background(), defaultRequest())
	assert.NoError(t, err)
}

func TestExecute_OutsideWorkingHours(t *testing.T) {
	f := newFixture()
	uc := f.build()

	req := defaultRequest()
	req.StartTime = types.TimeString("17:30") // окно 17:30-18:10 вылезает за 18:00

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrOutsideWorkingHours)
}

func TestExecute_ClosedDay(t *testing.T) {
	f := newFixture()
	uc := f.build()

	req := defaultRequest()
	req.Date = time.Date(2026, 9, 16, 0, 0, 0, 0, time.UTC) // среда не в расписании

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrStaffUnavailable)
}

func TestExecute_InactiveStaff(t *testing.T) {
	f := newFixture()
	f.dir.staff.IsActive = false
	uc := f.build()

	_, err := uc.Execute(context.Background(), defaultRequest())
	assert.ErrorIs(t, err, ErrStaffUnavailable)
}

func TestExecute_AllDayException(t *testing.T) {
	f := newFixture()
	f.exceptions.blocks = []*domain.ExceptionBlock{
		{SalonID: 1, Date: testDate, IsAllDay: true},
	}
	uc := f.build()

	_, err := uc.Execute(context.Background(), defaultRequest())
	assert.ErrorIs(t, err, ErrStaffUnavailable)
}

func TestExecute_PartialExceptionConflict(t *testing.T) {
	f := newFixture()
	f.exceptions.blocks = []*domain.ExceptionBlock{
		{SalonID: 1, Date: testDate, StartTime: "12:30", EndTime: "13:00"},
	}
	uc := f.build()

	_, err := uc.Execute(context.Background(), defaultRequest())
	assert.ErrorIs(t, err, ErrWindowNotAvailable)
}

func TestExecute_IncompatibleSelection(t *testing.T) {
	f := newFixture()
	// две позиции категории cut
	f.dir.items = append(f.dir.items, &directory.MenuItem{
		ID: 3, SalonID: 1, Kind: "menu", Name: "Premium Cut", Categories: []string{"cut"}, WorkingMinutes: 60, Price: 5000,
	})
	uc := f.build()

	req := defaultRequest()
	req.Menus = []Line{{ItemID: 1, Quantity: 1}, {ItemID: 3, Quantity: 1}}

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrIncompatibleSelection)
}

func TestExecute_UnknownMenuItem(t *testing.T) {
	f := newFixture()
	uc := f.build()

	req := defaultRequest()
	req.Menus = []Line{{ItemID: 99, Quantity: 1}}

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrMenuItemNotFound)
}

func TestExecute_MinNotice(t *testing.T) {
	f := newFixture()
	uc := f.build()

	// запись на сегодня: сейчас 12:00, minNotice 60 минут
	req := defaultRequest()
	req.Date = time.Date(testNow.Year(), testNow.Month(), testNow.Day(), 0, 0, 0, 0, time.UTC)
	req.StartTime = types.TimeString("12:30")

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrTooLateToBook)
}

func TestExecute_DateValidation(t *testing.T) {
	t.Run("date in the past", func(t *testing.T) {
		f := newFixture()
		uc := f.build()

		req := defaultRequest()
		req.Date = testNow.AddDate(0, 0, -1)

		_, err := uc.Execute(context.Background(), req)
		assert.ErrorIs(t, err, ErrInvalidDate)
	})

	t.Run("date beyond reservation limit", func(t *testing.T) {
		f := newFixture()
		f.config.config.ReservationLimitDays = 3
		uc := f.build()

		_, err := uc.Execute(context.Background(), defaultRequest())
		assert.ErrorIs(t, err, ErrDateTooFarInFuture)
	})
}

func TestExecute_WindowCrossingMidnight(t *testing.T) {
	f := newFixture()
	// круглосуточное расписание, чтобы дойти до проверки полуночи
	open, close := "00:00", "23:59"
	day := directory.DaySchedule{IsOpen: true, OpenTime: &open, CloseTime: &close}
	f.dir.staff.WorkingHours.Tuesday = day
	uc := f.build()

	req := defaultRequest()
	req.StartTime = types.TimeString("23:30") // 40 минут вылезают за полночь

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestExecute_CustomerChecks(t *testing.T) {
	t.Run("unknown customer is rejected", func(t *testing.T) {
		f := newFixture()
		f.customers.err = customerClient.ErrCustomerNotFound
		uc := f.build()

		_, err := uc.Execute(context.Background(), defaultRequest())
		assert.ErrorIs(t, err, ErrCustomerNotFound)
	})

	t.Run("degraded customer service does not block", func(t *testing.T) {
		f := newFixture()
		f.customers.err = customerClient.ErrServiceDegraded
		uc := f.build()

		_, err := uc.Execute(context.Background(), defaultRequest())
		assert.NoError(t, err)
	})
}

func TestExecute_SalonNotFound(t *testing.T) {
	f := newFixture()
	f.dir.salonErr = directory.ErrSalonNotFound
	uc := f.build()

	_, err := uc.Execute(context.Background(), defaultRequest())
	assert.ErrorIs(t, err, ErrSalonNotFound)
}

func TestExecute_StaffNotFound(t *testing.T) {
	f := newFixture()
	f.dir.staffErr = directory.ErrStaffNotFound
	uc := f.build()

	_, err := uc.Execute(context.Background(), defaultRequest())
	assert.ErrorIs(t, err, ErrStaffNotFound)
}

func TestExecute_Validation(t *testing.T) {
	f := newFixture()
	uc := f.build()

	tests := []struct {
		name    string
		mutate  func(req *Request)
		wantErr error
	}{
		{name: "zero salon ID", mutate: func(r *Request) { r.SalonID = 0 }, wantErr: ErrInvalidInput},
		{name: "zero staff ID", mutate: func(r *Request) { r.StaffID = 0 }, wantErr: ErrInvalidInput},
		{name: "zero date", mutate: func(r *Request) { r.Date = time.Time{} }, wantErr: ErrInvalidInput},
		{name: "empty start time", mutate: func(r *Request) { r.StartTime = "" }, wantErr: ErrInvalidInput},
		{name: "malformed start time", mutate: func(r *Request) { r.StartTime = "25:00" }, wantErr: ErrInvalidInput},
		{name: "no menus selected", mutate: func(r *Request) { r.Menus = nil }, wantErr: ErrInvalidInput},
		{name: "duplicate menu line", mutate: func(r *Request) {
			r.Menus = []Line{{ItemID: 1, Quantity: 1}, {ItemID: 1, Quantity: 1}}
		}, wantErr: ErrInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := defaultRequest()
			tt.mutate(req)
			_, err := uc.Execute(context.Background(), req)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
