package check_capacity

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	configRepo "github.com/m04kA/SMC-SalonService/internal/infra/storage/config"
)

// UseCase use case для проверки загрузки салона в окне времени
// Авторитетная проверка перед фиксацией бронирования: список окон,
// показанный клиенту, мог устареть, пока он выбирал
type UseCase struct {
	reservationRepo ReservationRepository
	configRepo      ConfigRepository
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	reservationRepo ReservationRepository,
	configRepo ConfigRepository,
	logger Logger,
) *UseCase {
	return &UseCase{
		reservationRepo: reservationRepo,
		configRepo:      configRepo,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute выполняет проверку загрузки
// Пересечение считается строгим: бронирование, заканчивающееся ровно в
// начале окна (или начинающееся ровно в его конце), окно не занимает
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CheckCapacity: user=%d, salon=%d, window=[%d, %d)",
		req.UserID, req.SalonID, req.StartUnixMilli, req.EndUnixMilli)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CheckCapacity: validation failed: %v", err)
		return nil, err
	}

	// Временные метки интерпретируются в зоне сервера, как и остальные
	// наивные времена сервиса
	start := time.UnixMilli(req.StartUnixMilli)
	end := time.UnixMilli(req.EndUnixMilli)
	date := time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, start.Location())

	// 2. Получаем конфигурацию бронирования салона
	config, err := uc.configRepo.GetBySalon(ctx, req.SalonID)
	if err != nil && !errors.Is(err, configRepo.ErrConfigNotFound) {
		uc.logger.Error("CheckCapacity: failed to get config: %v", err)
		return nil, fmt.Errorf("%w: failed to get config: %v", ErrInternal, err)
	}
	if config == nil {
		config = domain.DefaultBookingConfig(req.SalonID)
	}

	// 3. Получаем активные бронирования всех мастеров на дату окна
	filter := domain.SalonReservationsFilter{
		SalonID:         req.SalonID,
		StartDate:       &date,
		EndDate:         &date,
		IncludeInactive: false, // Только активные бронирования
	}

	reservations, err := uc.reservationRepo.GetBySalonWithFilter(ctx, filter)
	if err != nil {
		uc.logger.Error("CheckCapacity: failed to get reservations: %v", err)
		return nil, fmt.Errorf("%w: failed to get reservations: %v", ErrInternal, err)
	}

	// 4. Считаем бронирования, строго пересекающие окно
	window := domain.Interval{
		Start: start.Hour()*60 + start.Minute(),
		End:   end.Hour()*60 + end.Minute(),
	}
	// Окно, заканчивающееся в полночь, принадлежит дню начала
	if window.End == 0 {
		window.End = 24 * 60
	}
	currentCount := CountOverlapping(window, reservations)

	isAvailable := currentCount < config.MaxConcurrentReservations

	uc.logger.Info("CheckCapacity: salon=%d, window=%s, occupied %d/%d, available=%t",
		req.SalonID, date.Format(domain.DateFormat), currentCount, config.MaxConcurrentReservations, isAvailable)

	return &Response{
		SalonID:       req.SalonID,
		IsAvailable:   isAvailable,
		CurrentCount:  currentCount,
		MaxConcurrent: config.MaxConcurrentReservations,
	}, nil
}

// CountOverlapping подсчитывает активные бронирования, строго пересекающие окно
// Используется и здесь, и в usecase создания бронирования - подсчёт должен
// совпадать в обоих местах
func CountOverlapping(window domain.Interval, reservations []*domain.Reservation) int {
	count := 0

	for _, reservation := range reservations {
		if reservation == nil || !reservation.IsActive() {
			continue
		}
		if reservation.Interval().Overlaps(window) {
			count++
		}
	}

	return count
}

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.SalonID <= 0 {
		return fmt.Errorf("%w: salonID must be positive", ErrInvalidInput)
	}

	if req.StartUnixMilli <= 0 || req.EndUnixMilli <= 0 {
		return fmt.Errorf("%w: startTime and endTime are required", ErrInvalidInput)
	}

	if req.StartUnixMilli >= req.EndUnixMilli {
		return fmt.Errorf("%w: startTime must be before endTime", ErrInvalidTimeRange)
	}

	// Окно не должно пересекать полночь: бронирования привязаны к одному дню
	start := time.UnixMilli(req.StartUnixMilli)
	end := time.UnixMilli(req.EndUnixMilli)
	sameDay := start.Year() == end.Year() && start.YearDay() == end.YearDay()
	endsAtMidnight := end.Hour() == 0 && end.Minute() == 0 && end.Sub(start) <= 24*time.Hour
	if !sameDay && !endsAtMidnight {
		return fmt.Errorf("%w: window must not cross midnight", ErrInvalidTimeRange)
	}

	return nil
}
