package config

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	configRepo "github.com/m04kA/SMC-SalonService/internal/infra/storage/config"
	exceptionRepo "github.com/m04kA/SMC-SalonService/internal/infra/storage/exception"
	directory "github.com/m04kA/SMC-SalonService/internal/integrations/salondirectory"
	"github.com/m04kA/SMC-SalonService/internal/service/config/models"
	"github.com/m04kA/SMC-SalonService/pkg/types"
)

// Service сервис для работы с политикой бронирования салона:
// конфигурация (сетка, вместимость, ограничения) и календарь исключений
type Service struct {
	configRepo      ConfigRepository
	exceptionRepo   ExceptionRepository
	directoryClient SalonDirectoryClient
	logger          Logger
}

// NewService создает новый экземпляр сервиса конфигурации
func NewService(
	configRepo ConfigRepository,
	exceptionRepo ExceptionRepository,
	directoryClient SalonDirectoryClient,
	logger Logger,
) *Service {
	return &Service{
		configRepo:      configRepo,
		exceptionRepo:   exceptionRepo,
		directoryClient: directoryClient,
		logger:          logger,
	}
}

// GetBySalon получает конфигурацию бронирования салона
// Публичный метод - доступен всем
// Если у салона нет сохранённой конфигурации, возвращает дефолтные значения
func (s *Service) GetBySalon(ctx context.Context, salonID int64) (*models.ConfigResponse, error) {
	s.logger.Info("GetBySalon: fetching config for salon=%d", salonID)

	config, err := s.configRepo.GetBySalon(ctx, salonID)
	if err != nil {
		if errors.Is(err, configRepo.ErrConfigNotFound) {
			s.logger.Info("GetBySalon: no stored config for salon=%d, returning defaults", salonID)
			return models.FromDomainConfig(domain.DefaultBookingConfig(salonID), true), nil
		}
		s.logger.Error("GetBySalon: repository error for salon=%d: %v", salonID, err)
		return nil, fmt.Errorf("%w: GetBySalon - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetBySalon: successfully fetched config id=%d", config.ID)
	return models.FromDomainConfig(config, false), nil
}

// Update обновляет конфигурацию бронирования салона
// Доступно только менеджерам салона
// Поддерживает частичное обновление - обновляются только указанные поля
func (s *Service) Update(ctx context.Context, req *models.UpdateConfigRequest) (*models.ConfigResponse, error) {
	s.logger.Info("Update: updating config for salon=%d by user=%d", req.SalonID, req.UserID)

	// 1. Проверяем права доступа (только менеджер салона)
	if err := s.checkManagerAccess(ctx, req.SalonID, req.UserID); err != nil {
		return nil, err
	}

	// 2. Получаем существующую конфигурацию или дефолтную как основу
	config, err := s.configRepo.GetBySalon(ctx, req.SalonID)
	if err != nil {
		if !errors.Is(err, configRepo.ErrConfigNotFound) {
			s.logger.Error("Update: repository error for salon=%d: %v", req.SalonID, err)
			return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
		}
		config = domain.DefaultBookingConfig(req.SalonID)
	}

	// 3. Применяем частичное обновление и валидируем результат
	req.ApplyToConfig(config)

	if err := s.validateConfigData(config); err != nil {
		s.logger.Warn("Update: validation failed for salon=%d: %v", req.SalonID, err)
		return nil, err
	}

	// 4. Сохраняем конфигурацию (insert или update одной строки салона)
	updated, err := s.configRepo.Upsert(ctx, config)
	if err != nil {
		s.logger.Error("Update: repository error for salon=%d: %v", req.SalonID, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Update: successfully updated config id=%d for salon=%d", updated.ID, req.SalonID)
	return models.FromDomainConfig(updated, false), nil
}

// Reset удаляет сохранённую конфигурацию салона, возвращая его к дефолтам
// Доступно только менеджерам салона
func (s *Service) Reset(ctx context.Context, salonID int64, userID int64) error {
	s.logger.Info("Reset: resetting config for salon=%d by user=%d", salonID, userID)

	// Проверяем права доступа (только менеджер салона)
	if err := s.checkManagerAccess(ctx, salonID, userID); err != nil {
		return err
	}

	if err := s.configRepo.Delete(ctx, salonID); err != nil {
		if errors.Is(err, configRepo.ErrConfigNotFound) {
			s.logger.Warn("Reset: no stored config for salon=%d", salonID)
			return ErrConfigNotFound
		}
		s.logger.Error("Reset: repository error for salon=%d: %v", salonID, err)
		return fmt.Errorf("%w: Reset - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Reset: successfully reset config for salon=%d", salonID)
	return nil
}

// CreateException создает блок-исключение в календаре салона
// Доступно только менеджерам салона
// Если указан staffID, проверяет что мастер числится в салоне
func (s *Service) CreateException(ctx context.Context, req *models.CreateExceptionRequest) (*models.ExceptionResponse, error) {
	s.logger.Info("CreateException: creating exception for salon=%d, staff=%v, date=%s by user=%d",
		req.SalonID, req.StaffID, req.Date.Format(domain.DateFormat), req.UserID)

	// 1. Валидируем входные данные
	block, err := s.buildExceptionBlock(req)
	if err != nil {
		s.logger.Warn("CreateException: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем салон для проверки прав доступа и состава мастеров
	salon, err := s.getSalon(ctx, req.SalonID)
	if err != nil {
		return nil, err
	}

	// 3. Проверяем права доступа (только менеджер салона)
	if !salon.IsManager(req.UserID) {
		s.logger.Warn("CreateException: user=%d is not a manager of salon=%d", req.UserID, req.SalonID)
		return nil, ErrAccessDenied
	}

	// 4. Персональный блок должен ссылаться на мастера салона
	if req.StaffID != nil && !salon.HasStaff(*req.StaffID) {
		s.logger.Warn("CreateException: staff id=%d not found in salon=%d", *req.StaffID, req.SalonID)
		return nil, ErrStaffNotFound
	}

	// 5. Создаем блок-исключение
	created, err := s.exceptionRepo.Create(ctx, block)
	if err != nil {
		s.logger.Error("CreateException: repository error: %v", err)
		return nil, fmt.Errorf("%w: CreateException - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("CreateException: successfully created exception id=%d", created.ID)
	return models.FromDomainException(created), nil
}

// ListExceptions получает блоки-исключения салона за период
// Доступно только менеджерам салона
func (s *Service) ListExceptions(ctx context.Context, req *models.ListExceptionsRequest) (*models.ExceptionListResponse, error) {
	s.logger.Info("ListExceptions: fetching exceptions for salon=%d, period=%s to %s by user=%d",
		req.SalonID, req.From.Format(domain.DateFormat), req.To.Format(domain.DateFormat), req.UserID)

	if req.From.IsZero() || req.To.IsZero() {
		return nil, fmt.Errorf("%w: from and to dates are required", ErrInvalidInput)
	}
	if req.To.Before(req.From) {
		return nil, fmt.Errorf("%w: to date must not be before from date", ErrInvalidInput)
	}

	// Проверяем права доступа (только менеджер салона)
	if err := s.checkManagerAccess(ctx, req.SalonID, req.UserID); err != nil {
		return nil, err
	}

	blocks, err := s.exceptionRepo.ListByDateRange(ctx, req.SalonID, req.From, req.To)
	if err != nil {
		s.logger.Error("ListExceptions: repository error for salon=%d: %v", req.SalonID, err)
		return nil, fmt.Errorf("%w: ListExceptions - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ListExceptions: successfully fetched %d exceptions for salon=%d", len(blocks), req.SalonID)
	return models.FromDomainExceptionList(blocks), nil
}

// DeleteException удаляет блок-исключение
// Доступно только менеджерам салона, которому принадлежит блок
func (s *Service) DeleteException(ctx context.Context, exceptionID int64, userID int64) error {
	s.logger.Info("DeleteException: deleting exception id=%d by user=%d", exceptionID, userID)

	// 1. Получаем блок для проверки принадлежности салону
	block, err := s.exceptionRepo.GetByID(ctx, exceptionID)
	if err != nil {
		if errors.Is(err, exceptionRepo.ErrExceptionNotFound) {
			s.logger.Warn("DeleteException: exception id=%d not found", exceptionID)
			return ErrExceptionNotFound
		}
		s.logger.Error("DeleteException: repository error for exception id=%d: %v", exceptionID, err)
		return fmt.Errorf("%w: DeleteException - repository error: %v", ErrInternal, err)
	}

	// 2. Проверяем права доступа (только менеджер салона)
	if err := s.checkManagerAccess(ctx, block.SalonID, userID); err != nil {
		return err
	}

	// 3. Удаляем блок
	if err := s.exceptionRepo.Delete(ctx, exceptionID); err != nil {
		if errors.Is(err, exceptionRepo.ErrExceptionNotFound) {
			s.logger.Warn("DeleteException: exception id=%d not found during deletion", exceptionID)
			return ErrExceptionNotFound
		}
		s.logger.Error("DeleteException: repository error for exception id=%d: %v", exceptionID, err)
		return fmt.Errorf("%w: DeleteException - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("DeleteException: successfully deleted exception id=%d", exceptionID)
	return nil
}

// Вспомогательные методы

// getSalon получает салон через SalonDirectory
func (s *Service) getSalon(ctx context.Context, salonID int64) (*directory.Salon, error) {
	salon, err := s.directoryClient.GetSalon(ctx, salonID)
	if err != nil {
		if errors.Is(err, directory.ErrSalonNotFound) {
			s.logger.Warn("getSalon: salon id=%d not found", salonID)
			return nil, ErrSalonNotFound
		}
		s.logger.Error("getSalon: failed to get salon id=%d: %v", salonID, err)
		return nil, fmt.Errorf("%w: failed to get salon: %v", ErrInternal, err)
	}
	return salon, nil
}

// checkManagerAccess проверяет, что пользователь является менеджером салона
func (s *Service) checkManagerAccess(ctx context.Context, salonID int64, userID int64) error {
	salon, err := s.getSalon(ctx, salonID)
	if err != nil {
		return err
	}

	if !salon.IsManager(userID) {
		s.logger.Warn("checkManagerAccess: user=%d is not a manager of salon=%d", userID, salonID)
		return ErrAccessDenied
	}

	return nil
}

// validateConfigData валидирует параметры конфигурации
func (s *Service) validateConfigData(config *domain.SalonBookingConfig) error {
	// Проверяем granularityMinutes
	if config.GranularityMinutes < domain.MinGranularityMinutes || config.GranularityMinutes > domain.MaxGranularityMinutes {
		return fmt.Errorf("%w: granularityMinutes must be between %d and %d",
			ErrInvalidInput, domain.MinGranularityMinutes, domain.MaxGranularityMinutes)
	}

	// Проверяем maxConcurrentReservations
	if config.MaxConcurrentReservations < domain.MinConcurrentReservations || config.MaxConcurrentReservations > domain.MaxConcurrentReservationCap {
		return fmt.Errorf("%w: maxConcurrentReservations must be between %d and %d",
			ErrInvalidInput, domain.MinConcurrentReservations, domain.MaxConcurrentReservationCap)
	}

	// Проверяем reservationLimitDays
	if config.ReservationLimitDays < 0 || config.ReservationLimitDays > domain.MaxReservationLimitDays {
		return fmt.Errorf("%w: reservationLimitDays must be between 0 and %d",
			ErrInvalidInput, domain.MaxReservationLimitDays)
	}

	// Проверяем minNoticeMinutes
	if config.MinNoticeMinutes < 0 || config.MinNoticeMinutes > domain.MinNoticeMinutesUpperBound {
		return fmt.Errorf("%w: minNoticeMinutes must be between 0 and %d",
			ErrInvalidInput, domain.MinNoticeMinutesUpperBound)
	}

	return nil
}

// buildExceptionBlock валидирует запрос и собирает domain модель блока
func (s *Service) buildExceptionBlock(req *models.CreateExceptionRequest) (*domain.ExceptionBlock, error) {
	if req.SalonID <= 0 {
		return nil, fmt.Errorf("%w: salonID must be positive", ErrInvalidInput)
	}

	if req.StaffID != nil && *req.StaffID <= 0 {
		return nil, fmt.Errorf("%w: staffID must be positive", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return nil, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if req.Reason != nil && len(*req.Reason) > domain.MaxExceptionReasonLength {
		return nil, fmt.Errorf("%w: reason must be at most %d characters",
			ErrInvalidInput, domain.MaxExceptionReasonLength)
	}

	block := &domain.ExceptionBlock{
		SalonID:  req.SalonID,
		StaffID:  req.StaffID,
		Date:     req.Date,
		IsAllDay: req.IsAllDay,
		Reason:   req.Reason,
	}

	// Для all-day блоков время не задается
	if req.IsAllDay {
		return block, nil
	}

	if req.StartTime == nil || req.EndTime == nil {
		return nil, fmt.Errorf("%w: startTime and endTime are required for partial blocks", ErrInvalidInput)
	}

	startTime, err := types.NewTimeStringFromString(*req.StartTime)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid startTime format: %v", ErrInvalidInput, err)
	}

	endTime, err := types.NewTimeStringFromString(*req.EndTime)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid endTime format: %v", ErrInvalidInput, err)
	}

	if !startTime.IsBefore(endTime) {
		return nil, fmt.Errorf("%w: startTime must be before endTime", ErrInvalidInput)
	}

	block.StartTime = startTime
	block.EndTime = endTime

	return block, nil
}
