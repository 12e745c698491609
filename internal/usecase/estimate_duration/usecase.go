package estimate_duration

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	directory "github.com/m04kA/SMC-SalonService/internal/integrations/salondirectory"
)

// UseCase use case для расчёта суммарной длительности выбранных услуг
// Чистая агрегация по каталогу: сумма активной работы мастера и полной
// занятости места (с пассивным ожиданием) по всем выбранным позициям
type UseCase struct {
	directoryClient SalonDirectoryClient
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(directoryClient SalonDirectoryClient, logger Logger) *UseCase {
	return &UseCase{
		directoryClient: directoryClient,
		logger:          logger,
	}
}

// Execute выполняет use case расчёта длительности
// Позиции, отсутствующие в каталоге, дают нулевой вклад: частично
// загруженный каталог не должен ронять расчёт
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("EstimateDuration: user=%d, salon=%d, menus=%d, options=%d",
		req.UserID, req.SalonID, len(req.Menus), len(req.Options))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("EstimateDuration: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем каталог салона
	items, err := uc.directoryClient.GetMenuItems(ctx, req.SalonID)
	if err != nil {
		if errors.Is(err, directory.ErrSalonNotFound) {
			uc.logger.Warn("EstimateDuration: salon id=%d not found", req.SalonID)
			return nil, ErrSalonNotFound
		}
		uc.logger.Error("EstimateDuration: failed to get menu items for salon id=%d: %v", req.SalonID, err)
		return nil, fmt.Errorf("%w: failed to get menu items: %v", ErrInternal, err)
	}

	catalog := directory.BuildCatalog(items)

	// 3. Агрегируем длительность и цену по всем позициям
	lines := append(toSelectionLines(req.Menus), toSelectionLines(req.Options)...)
	totals := domain.AggregateDurations(lines, catalog)

	uc.logger.Info("EstimateDuration: salon=%d, working=%d, reserved=%d, diff=%d",
		req.SalonID, totals.WorkingMinutes, totals.ReservedMinutes, totals.DiffMinutes)

	return &Response{
		SalonID:         req.SalonID,
		WorkingMinutes:  totals.WorkingMinutes,
		ReservedMinutes: totals.ReservedMinutes,
		DiffMinutes:     totals.DiffMinutes,
		TotalPrice:      totals.TotalPrice,
	}, nil
}
