package create_reservation

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	configRepo "github.com/m04kA/SMC-SalonService/internal/infra/storage/config"
	customerClient "github.com/m04kA/SMC-SalonService/internal/integrations/customerservice"
	directory "github.com/m04kA/SMC-SalonService/internal/integrations/salondirectory"
	"github.com/m04kA/SMC-SalonService/internal/usecase/check_capacity"
	"github.com/m04kA/SMC-SalonService/pkg/ptr"
)

// UseCase use case для создания бронирования
type UseCase struct {
	reservationRepo ReservationRepository
	exceptionRepo   ExceptionRepository
	configRepo      ConfigRepository
	directoryClient SalonDirectoryClient
	customerClient  CustomerServiceClient
	txManager       TransactionManager
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	reservationRepo ReservationRepository,
	exceptionRepo ExceptionRepository,
	configRepo ConfigRepository,
	directoryClient SalonDirectoryClient,
	customerClient CustomerServiceClient,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		reservationRepo: reservationRepo,
		exceptionRepo:   exceptionRepo,
		configRepo:      configRepo,
		directoryClient: directoryClient,
		customerClient:  customerClient,
		txManager:       txManager,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute выполняет use case создания бронирования
// Проверки занятости мастера и вместимости салона выполняются в
// сериализуемой транзакции с блокировкой строк дня (FOR UPDATE):
// два конкурирующих запроса на последнее место не могут пройти оба
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateReservation: user=%d, salon=%d, staff=%d, date=%s, time=%s",
		req.UserID, req.SalonID, req.StaffID, req.Date.Format(domain.DateFormat), req.StartTime)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateReservation: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущее время
	now := uc.timeProvider.Now()

	// 3. Получаем салон
	if _, err := uc.directoryClient.GetSalon(ctx, req.SalonID); err != nil {
		if errors.Is(err, directory.ErrSalonNotFound) {
			uc.logger.Warn("CreateReservation: salon id=%d not found", req.SalonID)
			return nil, ErrSalonNotFound
		}
		uc.logger.Error("CreateReservation: failed to get salon id=%d: %v", req.SalonID, err)
		return nil, fmt.Errorf("%w: failed to get salon: %v", ErrInternal, err)
	}

	// 4. Получаем мастера вместе с недельным расписанием
	staff, err := uc.directoryClient.GetStaff(ctx, req.SalonID, req.StaffID)
	if err != nil {
		if errors.Is(err, directory.ErrStaffNotFound) {
			uc.logger.Warn("CreateReservation: staff id=%d not found in salon id=%d", req.StaffID, req.SalonID)
			return nil, ErrStaffNotFound
		}
		uc.logger.Error("CreateReservation: failed to get staff id=%d: %v", req.StaffID, err)
		return nil, fmt.Errorf("%w: failed to get staff: %v", ErrInternal, err)
	}

	if !staff.IsActive {
		uc.logger.Warn("CreateReservation: staff id=%d is not active", req.StaffID)
		return nil, ErrStaffUnavailable
	}

	// 5. Получаем каталог салона и проверяем выбор
	items, err := uc.directoryClient.GetMenuItems(ctx, req.SalonID)
	if err != nil {
		uc.logger.Error("CreateReservation: failed to get menu items for salon id=%d: %v", req.SalonID, err)
		return nil, fmt.Errorf("%w: failed to get menu items: %v", ErrInternal, err)
	}

	catalog := directory.BuildCatalog(items)
	if err := validateSelection(req, catalog); err != nil {
		uc.logger.Warn("CreateReservation: selection validation failed: %v", err)
		return nil, err
	}

	// 6. Агрегируем длительность и цену выбора
	lines := append(toSelectionLines(req.Menus), toSelectionLines(req.Options)...)
	totals := domain.AggregateDurations(lines, catalog)
	if totals.ReservedMinutes <= 0 {
		uc.logger.Warn("CreateReservation: selection has zero duration")
		return nil, ErrEmptySelection
	}

	// Окно бронирования в минутах от полуночи
	startMinutes, err := req.StartTime.Minutes()
	if err != nil {
		return nil, fmt.Errorf("%w: invalid startTime: %v", ErrInvalidInput, err)
	}

	window := domain.Interval{Start: startMinutes, End: startMinutes + totals.ReservedMinutes}
	if window.End > 24*60 {
		uc.logger.Warn("CreateReservation: window crosses midnight")
		return nil, fmt.Errorf("%w: window must not cross midnight", ErrInvalidInput)
	}

	// 7. Проверяем существование клиента
	// При недоступности CustomerService бронирование создается без профиля
	if _, err := uc.customerClient.GetCustomerWithGracefulDegradation(ctx, req.UserID); err != nil {
		if errors.Is(err, customerClient.ErrCustomerNotFound) {
			uc.logger.Warn("CreateReservation: customer id=%d not found", req.UserID)
			return nil, ErrCustomerNotFound
		}
		uc.logger.Warn("CreateReservation: customer profile degraded for user=%d: %v", req.UserID, err)
	}

	// Переменная для хранения результата
	var result *domain.Reservation

	// 8. Выполняем операции с БД в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 8.1. Получаем конфигурацию бронирования салона
		config, err := uc.configRepo.GetBySalon(txCtx, req.SalonID)
		if err != nil && !errors.Is(err, configRepo.ErrConfigNotFound) {
			uc.logger.Error("CreateReservation: failed to get config: %v", err)
			return fmt.Errorf("%w: failed to get config: %v", ErrInternal, err)
		}

		// Если конфигурация не найдена, используем дефолтные значения
		if config == nil {
			config = domain.DefaultBookingConfig(req.SalonID)
			uc.logger.Info("CreateReservation: using default config for salon=%d", req.SalonID)
		} else {
			uc.logger.Info("CreateReservation: using config id=%d", config.ID)
		}

		// 8.2. Валидация даты с учетом конфигурации
		if err := validateDate(req.Date, now, config.ReservationLimitDays); err != nil {
			uc.logger.Warn("CreateReservation: date validation failed: %v", err)
			return err
		}

		// 8.3. Окно должно целиком лежать в рабочих часах мастера
		// Некорректное расписание трактуется как закрытый день
		openInterval, isOpen := staff.WorkingHours.ScheduleFor(req.Date.Weekday()).OpenInterval()
		if !isOpen {
			uc.logger.Warn("CreateReservation: staff id=%d does not work on %s",
				req.StaffID, req.Date.Format(domain.DateFormat))
			return ErrStaffUnavailable
		}

		if window.Start < openInterval.Start || window.End > openInterval.End {
			uc.logger.Warn("CreateReservation: window [%d, %d) is outside working hours [%d, %d)",
				window.Start, window.End, openInterval.Start, openInterval.End)
			return ErrOutsideWorkingHours
		}

		// 8.4. Валидация времени бронирования (minNoticeMinutes)
		if err := validateNotice(req.Date, req.StartTime, now, config.MinNoticeMinutes); err != nil {
			uc.logger.Warn("CreateReservation: notice validation failed: %v", err)
			return err
		}

		// 8.5. Проверяем окно против блоков-исключений
		blocks, err := uc.exceptionRepo.ListByDate(txCtx, req.SalonID, req.Date)
		if err != nil {
			uc.logger.Error("CreateReservation: failed to get exception blocks: %v", err)
			return fmt.Errorf("%w: failed to get exception blocks: %v", ErrInternal, err)
		}

		if allDay, blocked := exceptionBlocksWindow(blocks, req.StaffID, req.Date, window); blocked {
			if allDay {
				uc.logger.Warn("CreateReservation: staff id=%d is blocked all day on %s",
					req.StaffID, req.Date.Format(domain.DateFormat))
				return ErrStaffUnavailable
			}
			uc.logger.Warn("CreateReservation: window overlaps an exception block")
			return ErrWindowNotAvailable
		}

		// 8.6. Получаем все активные бронирования салона на дату с блокировкой
		// (FOR UPDATE). Один запрос покрывает обе проверки: занятость мастера
		// и вместимость салона
		filter := domain.SalonReservationsFilter{
			SalonID:         req.SalonID,
			StartDate:       ptr.Ptr(req.Date),
			EndDate:         ptr.Ptr(req.Date),
			IncludeInactive: false, // Только активные бронирования
		}

		reservations, err := uc.reservationRepo.GetBySalonWithFilter(txCtx, filter)
		if err != nil {
			uc.logger.Error("CreateReservation: failed to get reservations: %v", err)
			return fmt.Errorf("%w: failed to get reservations: %v", ErrInternal, err)
		}

		// 8.7. Мастер не может обслуживать два окна одновременно
		if hasStaffConflict(window, req.StaffID, reservations) {
			uc.logger.Warn("CreateReservation: staff id=%d already has a reservation overlapping [%d, %d)",
				req.StaffID, window.Start, window.End)
			return ErrWindowNotAvailable
		}

		// 8.8. Проверяем вместимость салона
		// При MaxConcurrentReservations = 3 допустимо overlappingCount = 0, 1, 2
		overlappingCount := check_capacity.CountOverlapping(window, reservations)
		if overlappingCount >= config.MaxConcurrentReservations {
			uc.logger.Warn("CreateReservation: capacity exceeded, %d/%d seats taken",
				overlappingCount, config.MaxConcurrentReservations)
			return ErrCapacityExceeded
		}

		uc.logger.Info("CreateReservation: window available, %d/%d seats taken",
			overlappingCount, config.MaxConcurrentReservations)

		// 8.9. Создаем бронирование с денормализацией выбора
		reservation := &domain.Reservation{
			CustomerID:      req.UserID,
			SalonID:         req.SalonID,
			StaffID:         req.StaffID,
			Date:            req.Date,
			StartTime:       req.StartTime,
			DurationMinutes: totals.ReservedMinutes,
			WorkingMinutes:  totals.WorkingMinutes,
			Status:          domain.StatusConfirmed,
			// Денормализация выбора для истории
			MenuSummary: buildMenuSummary(req, catalog),
			TotalPrice:  totals.TotalPrice,
			// Заметки
			Notes: req.Notes,
		}

		// 8.10. Сохраняем бронирование
		created, err := uc.reservationRepo.Create(txCtx, reservation)
		if err != nil {
			uc.logger.Error("CreateReservation: failed to create reservation: %v", err)
			return fmt.Errorf("%w: failed to create reservation: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateReservation: successfully created reservation id=%d", result.ID)

	// Конвертируем в response
	return &Response{
		ID:              result.ID,
		CustomerID:      result.CustomerID,
		SalonID:         result.SalonID,
		StaffID:         result.StaffID,
		Date:            result.Date,
		StartTime:       result.StartTime,
		DurationMinutes: result.DurationMinutes,
		WorkingMinutes:  result.WorkingMinutes,
		Status:          string(result.Status),
		MenuSummary:     result.MenuSummary,
		TotalPrice:      result.TotalPrice,
		Notes:           result.Notes,
		CreatedAt:       result.CreatedAt,
		UpdatedAt:       result.UpdatedAt,
	}, nil
}
