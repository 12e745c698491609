package get_available_slots

import (
	"time"

	"github.com/m04kA/SMC-SalonService/internal/domain"
)

// Границы суток в минутах для отсечения данных, вылезающих за день
var dayBounds = domain.Interval{Start: 0, End: 24 * 60}

// exceptionCuts отбирает блоки-исключения, применимые к мастеру на дату.
// Возвращает вырезаемые интервалы и признак all-day блокировки:
// один all-day блок (салонный или персональный) снимает весь день.
func exceptionCuts(blocks []*domain.ExceptionBlock, staffID int64, date time.Time) ([]domain.Interval, bool) {
	cuts := make([]domain.Interval, 0, len(blocks))

	for _, block := range blocks {
		if block == nil || !block.AppliesToStaff(staffID) || !block.OnDate(date) {
			continue
		}

		if block.IsAllDay {
			return nil, true
		}

		cut := block.Interval().Clip(dayBounds)
		if !cut.IsEmpty() {
			cuts = append(cuts, cut)
		}
	}

	return cuts, false
}

// reservationCuts возвращает интервалы, занятые активными бронированиями
func reservationCuts(reservations []*domain.Reservation) []domain.Interval {
	cuts := make([]domain.Interval, 0, len(reservations))

	for _, reservation := range reservations {
		if reservation == nil || !reservation.IsActive() {
			continue
		}

		cut := reservation.Interval().Clip(dayBounds)
		if !cut.IsEmpty() {
			cuts = append(cuts, cut)
		}
	}

	return cuts
}

// slideWindows генерирует окна-кандидаты по свободным интервалам.
// По каждому свободному интервалу длины L скользит окно шириной durationMinutes
// с шагом granularityMinutes, пока конец окна не выйдет за интервал:
// floor((L - duration) / granularity) + 1 окон на интервал, ноль при L < duration.
// Интервалы обходятся по возрастанию начала, поэтому итоговый список
// хронологически упорядочен без дополнительной сортировки.
func slideWindows(free []domain.Interval, date time.Time, durationMinutes, granularityMinutes int) ([]domain.TimeWindow, error) {
	if durationMinutes <= 0 {
		return []domain.TimeWindow{}, nil
	}
	if granularityMinutes <= 0 {
		granularityMinutes = domain.DefaultGranularityMinutes
	}

	windows := make([]domain.TimeWindow, 0)

	for _, interval := range free {
		for start := interval.Start; start+durationMinutes <= interval.End; start += granularityMinutes {
			window, err := domain.NewTimeWindow(date, domain.Interval{
				Start: start,
				End:   start + durationMinutes,
			})
			if err != nil {
				return nil, err
			}
			windows = append(windows, window)
		}
	}

	return windows, nil
}

// filterByNotice отбрасывает окна, начинающиеся раньше, чем now + minNoticeMinutes
// Применяется только если запрошенная дата - сегодня
func filterByNotice(windows []domain.TimeWindow, date, now time.Time, minNoticeMinutes int) []domain.TimeWindow {
	if !isSameDay(date, now) {
		return windows
	}

	minAllowed := now.Add(time.Duration(minNoticeMinutes) * time.Minute).UnixMilli()

	filtered := make([]domain.TimeWindow, 0, len(windows))
	for _, window := range windows {
		if window.StartUnixMilli >= minAllowed {
			filtered = append(filtered, window)
		}
	}

	return filtered
}
