package get_available_slots

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	configRepo "github.com/m04kA/SMC-SalonService/internal/infra/storage/config"
	directory "github.com/m04kA/SMC-SalonService/internal/integrations/salondirectory"
	"github.com/m04kA/SMC-SalonService/pkg/ptr"
)

// UseCase use case для получения доступных окон бронирования
// Реализует детерминированное разрешение доступности: недельное расписание
// мастера минус исключения (салонные и персональные) минус активные
// бронирования, нарезка окон по сетке салона
type UseCase struct {
	reservationRepo ReservationRepository
	exceptionRepo   ExceptionRepository
	configRepo      ConfigRepository
	directoryClient SalonDirectoryClient
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	reservationRepo ReservationRepository,
	exceptionRepo ExceptionRepository,
	configRepo ConfigRepository,
	directoryClient SalonDirectoryClient,
	logger Logger,
) *UseCase {
	return &UseCase{
		reservationRepo: reservationRepo,
		exceptionRepo:   exceptionRepo,
		configRepo:      configRepo,
		directoryClient: directoryClient,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute выполняет use case получения доступных окон
// Один и тот же набор входных данных всегда даёт один и тот же
// упорядоченный список окон
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: user=%d, salon=%d, staff=%d, date=%s, duration=%d",
		req.UserID, req.SalonID, req.StaffID, req.Date.Format(domain.DateFormat), req.DurationMinutes)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущее время
	now := uc.timeProvider.Now()

	// 3. Получаем салон
	if _, err := uc.directoryClient.GetSalon(ctx, req.SalonID); err != nil {
		if errors.Is(err, directory.ErrSalonNotFound) {
			uc.logger.Warn("GetAvailableSlots: salon id=%d not found", req.SalonID)
			return nil, ErrSalonNotFound
		}
		uc.logger.Error("GetAvailableSlots: failed to get salon id=%d: %v", req.SalonID, err)
		return nil, fmt.Errorf("%w: failed to get salon: %v", ErrInternal, err)
	}

	// 4. Получаем мастера вместе с недельным расписанием
	staff, err := uc.directoryClient.GetStaff(ctx, req.SalonID, req.StaffID)
	if err != nil {
		if errors.Is(err, directory.ErrStaffNotFound) {
			uc.logger.Warn("GetAvailableSlots: staff id=%d not found in salon id=%d", req.StaffID, req.SalonID)
			return nil, ErrStaffNotFound
		}
		uc.logger.Error("GetAvailableSlots: failed to get staff id=%d: %v", req.StaffID, err)
		return nil, fmt.Errorf("%w: failed to get staff: %v", ErrInternal, err)
	}

	// 5. Получаем конфигурацию бронирования салона
	config, err := uc.configRepo.GetBySalon(ctx, req.SalonID)
	if err != nil && !errors.Is(err, configRepo.ErrConfigNotFound) {
		uc.logger.Error("GetAvailableSlots: failed to get config: %v", err)
		return nil, fmt.Errorf("%w: failed to get config: %v", ErrInternal, err)
	}

	// Если конфигурация не найдена, используем дефолтные значения
	if config == nil {
		config = domain.DefaultBookingConfig(req.SalonID)
		uc.logger.Info("GetAvailableSlots: using default config for salon=%d", req.SalonID)
	} else {
		uc.logger.Info("GetAvailableSlots: using config id=%d", config.ID)
	}

	// 6. Валидация даты с учетом конфигурации
	if err := validateDate(req.Date, now, config.ReservationLimitDays); err != nil {
		uc.logger.Warn("GetAvailableSlots: date validation failed: %v", err)
		return nil, err
	}

	// 7. Определяем рабочие часы мастера на указанную дату
	// Неактивный мастер и некорректное расписание дают закрытый день
	openInterval, isOpen := staff.WorkingHours.ScheduleFor(req.Date.Weekday()).OpenInterval()
	if !staff.IsActive || !isOpen {
		uc.logger.Info("GetAvailableSlots: staff id=%d is not available on %s",
			req.StaffID, req.Date.Format(domain.DateFormat))
		return uc.emptyResponse(req, config), nil
	}

	// 8. Получаем блоки-исключения на дату
	blocks, err := uc.exceptionRepo.ListByDate(ctx, req.SalonID, req.Date)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get exception blocks: %v", err)
		return nil, fmt.Errorf("%w: failed to get exception blocks: %v", ErrInternal, err)
	}

	cuts, allDayBlocked := exceptionCuts(blocks, req.StaffID, req.Date)
	if allDayBlocked {
		uc.logger.Info("GetAvailableSlots: staff id=%d is blocked all day on %s",
			req.StaffID, req.Date.Format(domain.DateFormat))
		return uc.emptyResponse(req, config), nil
	}

	// 9. Получаем активные бронирования мастера на дату
	filter := domain.SalonReservationsFilter{
		SalonID:         req.SalonID,
		StaffID:         ptr.Ptr(req.StaffID),
		StartDate:       ptr.Ptr(req.Date),
		EndDate:         ptr.Ptr(req.Date),
		IncludeInactive: false, // Только активные бронирования
	}

	reservations, err := uc.reservationRepo.GetBySalonWithFilter(ctx, filter)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get reservations: %v", err)
		return nil, fmt.Errorf("%w: failed to get reservations: %v", ErrInternal, err)
	}

	// 10. Вычитаем исключения и бронирования из рабочих часов
	// Пересекающиеся вырезки объединяются внутри SubtractIntervals
	cuts = append(cuts, reservationCuts(reservations)...)
	free := domain.SubtractIntervals([]domain.Interval{openInterval}, cuts)

	// 11. Нарезаем окна по сетке салона
	windows, err := slideWindows(free, req.Date, req.DurationMinutes, config.GranularityMinutes)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to build windows: %v", err)
		return nil, fmt.Errorf("%w: failed to build windows: %v", ErrInternal, err)
	}

	// 12. Для сегодняшней даты отбрасываем окна, нарушающие минимальное
	// время до записи
	windows = filterByNotice(windows, req.Date, now, config.MinNoticeMinutes)

	uc.logger.Info("GetAvailableSlots: generated %d windows for salon=%d, staff=%d, date=%s",
		len(windows), req.SalonID, req.StaffID, req.Date.Format(domain.DateFormat))

	return &Response{
		Date:               req.Date,
		SalonID:            req.SalonID,
		StaffID:            req.StaffID,
		DurationMinutes:    req.DurationMinutes,
		GranularityMinutes: config.GranularityMinutes,
		Windows:            windows,
	}, nil
}

// emptyResponse ответ "нет доступных окон" - это нормальный результат
// (закрытый день, выходной мастера), а не ошибка
func (uc *UseCase) emptyResponse(req *Request, config *domain.SalonBookingConfig) *Response {
	return &Response{
		Date:               req.Date,
		SalonID:            req.SalonID,
		StaffID:            req.StaffID,
		DurationMinutes:    req.DurationMinutes,
		GranularityMinutes: config.GranularityMinutes,
		Windows:            []domain.TimeWindow{},
	}
}
