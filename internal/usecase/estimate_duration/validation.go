package estimate_duration

import (
	"fmt"

	"github.com/m04kA/SMC-SalonService/internal/domain"
)

// validateRequest валидирует входные данные запроса
// Пустой выбор допустим (нулевой результат), но строки должны быть корректными
func validateRequest(req *Request) error {
	if req.SalonID <= 0 {
		return fmt.Errorf("%w: salonID must be positive", ErrInvalidInput)
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

	return validateLines(req.Options, "options")
}

// validateLines проверяет количество и уникальность позиций
// Повторный выбор позиции должен увеличивать количество, а не добавлять строку
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
