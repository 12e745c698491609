package create_reservation

import (
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	"github.com/m04kA/SMC-SalonService/pkg/types"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.UserID <= 0 {
		return fmt.Errorf("%w: userID must be positive", ErrInvalidInput)
	}

	if req.SalonID <= 0 {
		return fmt.Errorf("%w: salonID must be positive", ErrInvalidInput)
	}

	if req.StaffID <= 0 {
		return fmt.Errorf("%w: staffID must be positive", ErrInvalidInput)
	}

	// Проверяем, что дата не является нулевой
	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	// Проверяем, что время начала указано
	if req.StartTime.IsZero() {
		return fmt.Errorf("%w: startTime is required", ErrInvalidInput)
	}

	// Валидируем формат времени
	if err := req.StartTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid startTime format: %v", ErrInvalidInput, err)
	}

	// Бронирование без меню не имеет смысла
	if len(req.Menus) == 0 {
		return fmt.Errorf("%w: at least one menu is required", ErrInvalidInput)
	}

	if len(req.Menus) > domain.MaxMenuLines {
		return fmt.Errorf("%w: at most %d menu lines allowed", ErrInvalidInput, domain.MaxMenuLines)
	}

	if len(req.Options) > domain.MaxOptionLines {
		return fmt.Errorf("%w: at most %d option lines allowed", ErrInvalidInput, domain.MaxOptionLines)
	}

	if err := validateLines(req.Menus, "menus"); err != nil {
		return err
	}

	if err := validateLines(req.Options, "options"); err != nil {
		return err
	}

	if req.Notes != nil && len(*req.Notes) > domain.MaxNotesLength {
		return fmt.Errorf("%w: notes must be at most %d characters", ErrInvalidInput, domain.MaxNotesLength)
	}

	return nil
}

// validateLines проверяет количество и уникальность позиций
func validateLines(lines []Line, field string) error {
	seen := make(map[int64]struct{}, len(lines))

	for _, line := range lines {
		if line.ItemID <= 0 {
			return fmt.Errorf("%w: %s - itemID must be positive", ErrInvalidInput, field)
		}
		if line.Quantity < 1 || line.Quantity > domain.MaxLineQuantity {
			return fmt.Errorf("%w: %s - quantity must be between 1 and %d", ErrInvalidInput, field, domain.MaxLineQuantity)
		}
		if _, ok := seen[line.ItemID]; ok {
			return fmt.Errorf("%w: %s - duplicate itemID %d", ErrInvalidInput, field, line.ItemID)
		}
		seen[line.ItemID] = struct{}{}
	}

	return nil
}

// validateSelection проверяет выбор против каталога салона:
// каждая позиция существует, тип строки совпадает с типом позиции,
// меню не пересекаются по категориям
func validateSelection(req *Request, catalog map[int64]*domain.ServiceItem) error {
	selectedMenus := make([]*domain.ServiceItem, 0, len(req.Menus))

	for _, line := range req.Menus {
		item, ok := catalog[line.ItemID]
		if !ok || item == nil {
			return fmt.Errorf("%w: menu id=%d", ErrMenuItemNotFound, line.ItemID)
		}
		if item.Kind != domain.ItemKindMenu {
			return fmt.Errorf("%w: item id=%d is not a menu", ErrInvalidInput, line.ItemID)
		}

		// Сет и обычное меню не могут занимать одну категорию
		if conflict := domain.FindSelectionConflict(selectedMenus, item); conflict != nil {
			return fmt.Errorf("%w: items %d and %d both occupy category %q",
				ErrIncompatibleSelection, conflict.ExistingItemID, conflict.CandidateID, conflict.Category)
		}

		selectedMenus = append(selectedMenus, item)
	}

	for _, line := range req.Options {
		item, ok := catalog[line.ItemID]
		if !ok || item == nil {
			return fmt.Errorf("%w: option id=%d", ErrMenuItemNotFound, line.ItemID)
		}
		if item.Kind != domain.ItemKindOption {
			return fmt.Errorf("%w: item id=%d is not an option", ErrInvalidInput, line.ItemID)
		}
	}

	return nil
}

// validateDate проверяет, что дата подходит для бронирования
func validateDate(reservationDate time.Time, now time.Time, reservationLimitDays int) error {
	// Проверяем, что дата не в прошлом
	if isDateInPast(reservationDate, now) {
		return ErrInvalidDate
	}

	// Если reservationLimitDays = 0, нет ограничений на дату
	if reservationLimitDays == 0 {
		return nil
	}

	// Проверяем, что дата не превышает ограничение reservationLimitDays
	maxDate := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location()).
		AddDate(0, 0, reservationLimitDays)

	reservationDateOnly := time.Date(reservationDate.Year(), reservationDate.Month(), reservationDate.Day(), 0, 0, 0, 0, reservationDate.Location())

	if reservationDateOnly.After(maxDate) {
		return fmt.Errorf("%w: can only book %d days in advance", ErrDateTooFarInFuture, reservationLimitDays)
	}

	return nil
}

// validateNotice проверяет, что бронирование не нарушает minNoticeMinutes
func validateNotice(
	reservationDate time.Time,
	startTime types.TimeString,
	now time.Time,
	minNoticeMinutes int,
) error {
	// Если дата бронирования не сегодня, проверка не нужна
	if !isSameDay(reservationDate, now) {
		return nil
	}

	// Вычисляем минимальное допустимое время
	currentTime := types.NewTimeString(now)
	minAllowedTime, err := currentTime.AddMinutes(minNoticeMinutes)
	if err != nil {
		return fmt.Errorf("%w: failed to calculate min allowed time: %v", ErrInternal, err)
	}

	// Проверяем, что время начала не раньше минимального
	if startTime.IsBefore(minAllowedTime) {
		return fmt.Errorf("%w: must book at least %d minutes in advance", ErrTooLateToBook, minNoticeMinutes)
	}

	return nil
}

// exceptionBlocksWindow проверяет окно против блоков-исключений на дату.
// Один применимый all-day блок или пересечение с частичным блоком
// делают окно недоступным.
func exceptionBlocksWindow(
	blocks []*domain.ExceptionBlock,
	staffID int64,
	date time.Time,
	window domain.Interval,
) (allDay bool, blocked bool) {
	for _, block := range blocks {
		if block == nil || !block.AppliesToStaff(staffID) || !block.OnDate(date) {
			continue
		}

		if block.IsAllDay {
			return true, true
		}

		if block.Interval().Overlaps(window) {
			blocked = true
		}
	}

	return false, blocked
}

// hasStaffConflict проверяет пересечение окна с активными бронированиями мастера
func hasStaffConflict(window domain.Interval, staffID int64, reservations []*domain.Reservation) bool {
	for _, reservation := range reservations {
		if reservation == nil || reservation.StaffID != staffID || !reservation.IsActive() {
			continue
		}
		if reservation.Interval().Overlaps(window) {
			return true
		}
	}
	return false
}

// buildMenuSummary собирает денормализованную сводку выбора для истории,
// в порядке строк запроса: сначала меню, затем опции
func buildMenuSummary(req *Request, catalog map[int64]*domain.ServiceItem) string {
	parts := make([]string, 0, len(req.Menus)+len(req.Options))

	appendLines := func(lines []Line) {
		for _, line := range lines {
			item, ok := catalog[line.ItemID]
			if !ok || item == nil {
				continue
			}
			parts = append(parts, fmt.Sprintf("%s x%d", item.Name, line.Quantity))
		}
	}

	appendLines(req.Menus)
	appendLines(req.Options)

	return strings.Join(parts, ", ")
}

// isSameDay проверяет, что две даты относятся к одному и тому же дню
func isSameDay(date1, date2 time.Time) bool {
	y1, m1, d1 := date1.Date()
	y2, m2, d2 := date2.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// isDateInPast проверяет, что дата в прошлом (раньше сегодняшнего дня)
func isDateInPast(date, now time.Time) bool {
	// Обнуляем время, чтобы сравнивать только даты
	dateOnly := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	nowOnly := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return dateOnly.Before(nowOnly)
}
