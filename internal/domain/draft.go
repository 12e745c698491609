package domain

import (
	"errors"
	"time"
)

var (
	// ErrTooManyMenuLines возвращается при превышении лимита выбранных меню
	ErrTooManyMenuLines = errors.New("domain: too many menu lines selected")

	// ErrTooManyOptionLines возвращается при превышении лимита выбранных опций
	ErrTooManyOptionLines = errors.New("domain: too many option lines selected")

	// ErrLineNotSelected возвращается при удалении невыбранной позиции
	ErrLineNotSelected = errors.New("domain: item is not selected")
)

// BookingDraft неизменяемый снимок черновика бронирования.
// Каждый переход (добавить меню, выбрать мастера, выбрать окно) возвращает
// новый черновик; агрегация длительности и запрос доступных окон - чистые
// проекции текущего состояния.
//
// Смена мастера, даты или состава услуг сбрасывает выбранное окно:
// окно, посчитанное для старых входных данных, для новых недействительно.
type BookingDraft struct {
	SalonID int64
	StaffID *int64
	Date    *time.Time
	Menus   []SelectionLine
	Options []SelectionLine
	Window  *TimeWindow
}

// NewBookingDraft создает пустой черновик для салона
func NewBookingDraft(salonID int64) BookingDraft {
	return BookingDraft{SalonID: salonID}
}

// AddMenu добавляет меню в черновик
// Повторный выбор того же меню увеличивает количество, а не добавляет строку
func (d BookingDraft) AddMenu(itemID int64) (BookingDraft, error) {
	lines, err := addLine(d.Menus, itemID, MaxMenuLines, ErrTooManyMenuLines)
	if err != nil {
		return d, err
	}
	next := d
	next.Menus = lines
	next.Window = nil
	return next, nil
}

// RemoveMenu уменьшает количество выбранного меню, удаляя строку при нуле
func (d BookingDraft) RemoveMenu(itemID int64) (BookingDraft, error) {
	lines, err := removeLine(d.Menus, itemID)
	if err != nil {
		return d, err
	}
	next := d
	next.Menus = lines
	next.Window = nil
	return next, nil
}

// AddOption добавляет опцию в черновик
func (d BookingDraft) AddOption(itemID int64) (BookingDraft, error) {
	lines, err := addLine(d.Options, itemID, MaxOptionLines, ErrTooManyOptionLines)
	if err != nil {
		return d, err
	}
	next := d
	next.Options = lines
	next.Window = nil
	return next, nil
}

// RemoveOption уменьшает количество выбранной опции
func (d BookingDraft) RemoveOption(itemID int64) (BookingDraft, error) {
	lines, err := removeLine(d.Options, itemID)
	if err != nil {
		return d, err
	}
	next := d
	next.Options = lines
	next.Window = nil
	return next, nil
}

// SetStaff выбирает мастера и сбрасывает выбранное окно
func (d BookingDraft) SetStaff(staffID int64) BookingDraft {
	next := d
	next.StaffID = &staffID
	next.Window = nil
	return next
}

// SetDate выбирает дату и сбрасывает выбранное окно
func (d BookingDraft) SetDate(date time.Time) BookingDraft {
	day := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	next := d
	next.Date = &day
	next.Window = nil
	return next
}

// SelectWindow фиксирует выбранное окно
func (d BookingDraft) SelectWindow(window TimeWindow) BookingDraft {
	next := d
	next.Window = &window
	return next
}

// Lines возвращает все выбранные позиции (меню + опции)
func (d BookingDraft) Lines() []SelectionLine {
	lines := make([]SelectionLine, 0, len(d.Menus)+len(d.Options))
	lines = append(lines, d.Menus...)
	lines = append(lines, d.Options...)
	return lines
}

// Totals возвращает агрегированную длительность и цену текущего выбора
func (d BookingDraft) Totals(catalog map[int64]*ServiceItem) DurationTotals {
	return AggregateDurations(d.Lines(), catalog)
}

// IsReadyForSlots проверяет, что черновик готов к запросу доступных окон
func (d BookingDraft) IsReadyForSlots() bool {
	return d.StaffID != nil && d.Date != nil && len(d.Menus) > 0
}

func addLine(lines []SelectionLine, itemID int64, maxLines int, limitErr error) ([]SelectionLine, error) {
	next := make([]SelectionLine, len(lines))
	copy(next, lines)

	for i := range next {
		if next[i].ItemID == itemID {
			if next[i].Quantity >= MaxLineQuantity {
				return nil, limitErr
			}
			next[i].Quantity++
			return next, nil
		}
	}

	if len(next) >= maxLines {
		return nil, limitErr
	}

	return append(next, SelectionLine{ItemID: itemID, Quantity: 1}), nil
}

func removeLine(lines []SelectionLine, itemID int64) ([]SelectionLine, error) {
	next := make([]SelectionLine, 0, len(lines))
	found := false

	for _, line := range lines {
		if line.ItemID != itemID {
			next = append(next, line)
			continue
		}
		found = true
		if line.Quantity > 1 {
			line.Quantity--
			next = append(next, line)
		}
	}

	if !found {
		return nil, ErrLineNotSelected
	}

	return next, nil
}
