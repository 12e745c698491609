package salondirectory

import (
	"time"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	"github.com/m04kA/SMC-SalonService/pkg/types"
)

// Salon модель салона из SalonDirectory
type Salon struct {
	ID         int64   `json:"id"`
	Name       string  `json:"name"`
	Timezone   string  `json:"timezone"`
	ManagerIDs []int64 `json:"manager_ids"`
	StaffIDs   []int64 `json:"staff_ids"`
}

// IsManager проверяет, что пользователь является менеджером салона
func (s *Salon) IsManager(userID int64) bool {
	for _, id := range s.ManagerIDs {
		if id == userID {
			return true
		}
	}
	return false
}

// HasStaff проверяет, что мастер числится в салоне
func (s *Salon) HasStaff(staffID int64) bool {
	for _, id := range s.StaffIDs {
		if id == staffID {
			return true
		}
	}
	return false
}

// Staff модель мастера из SalonDirectory
type Staff struct {
	ID           int64        `json:"id"`
	SalonID      int64        `json:"salon_id"`
	Name         string       `json:"name"`
	IsActive     bool         `json:"is_active"`
	WorkingHours WeekSchedule `json:"working_hours"`
}

// WeekSchedule недельное расписание мастера
type WeekSchedule struct {
	Monday    DaySchedule `json:"monday"`
	Tuesday   DaySchedule `json:"tuesday"`
	Wednesday DaySchedule `json:"wednesday"`
	Thursday  DaySchedule `json:"thursday"`
	Friday    DaySchedule `json:"friday"`
	Saturday  DaySchedule `json:"saturday"`
	Sunday    DaySchedule `json:"sunday"`
}

// ScheduleFor возвращает рабочие часы мастера на день недели
func (w WeekSchedule) ScheduleFor(weekday time.Weekday) DaySchedule {
	switch weekday {
	case time.Monday:
		return w.Monday
	case time.Tuesday:
		return w.Tuesday
	case time.Wednesday:
		return w.Wednesday
	case time.Thursday:
		return w.Thursday
	case time.Friday:
		return w.Friday
	case time.Saturday:
		return w.Saturday
	case time.Sunday:
		return w.Sunday
	default:
		return DaySchedule{IsOpen: false}
	}
}

// DaySchedule рабочие часы на один день недели
// Если IsOpen == false, остальные поля игнорируются
type DaySchedule struct {
	IsOpen    bool    `json:"is_open"`
	OpenTime  *string `json:"open_time,omitempty"`  // "HH:MM"
	CloseTime *string `json:"close_time,omitempty"` // "HH:MM"
}

// OpenInterval конвертирует расписание дня в интервал рабочих часов.
// Любые некорректные данные (нет времени, неверный формат, открытие не
// раньше закрытия) трактуются как закрытый день: ошибка доступности должна
// закрывать запись, а не открывать весь день.
func (d DaySchedule) OpenInterval() (domain.Interval, bool) {
	if !d.IsOpen || d.OpenTime == nil || d.CloseTime == nil {
		return domain.Interval{}, false
	}

	openTime, err := types.NewTimeStringFromString(*d.OpenTime)
	if err != nil {
		return domain.Interval{}, false
	}
	closeTime, err := types.NewTimeStringFromString(*d.CloseTime)
	if err != nil {
		return domain.Interval{}, false
	}

	openMin, err := openTime.Minutes()
	if err != nil {
		return domain.Interval{}, false
	}
	closeMin, err := closeTime.Minutes()
	if err != nil {
		return domain.Interval{}, false
	}

	interval := domain.Interval{Start: openMin, End: closeMin}
	if interval.IsEmpty() {
		return domain.Interval{}, false
	}

	return interval, true
}

// MenuItem позиция каталога салона (меню или опция)
type MenuItem struct {
	ID              int64    `json:"id"`
	SalonID         int64    `json:"salon_id"`
	Kind            string   `json:"kind"` // "menu" или "option"
	Name            string   `json:"name"`
	Categories      []string `json:"categories"`
	WorkingMinutes  int      `json:"working_minutes"`
	ReservedMinutes int      `json:"reserved_minutes"` // 0 = совпадает с working_minutes
	Price           float64  `json:"price"`
}

// ToDomain конвертирует позицию каталога в domain модель
func (m *MenuItem) ToDomain() *domain.ServiceItem {
	return &domain.ServiceItem{
		ID:              m.ID,
		SalonID:         m.SalonID,
		Kind:            domain.ItemKind(m.Kind),
		Name:            m.Name,
		Categories:      m.Categories,
		WorkingMinutes:  m.WorkingMinutes,
		ReservedMinutes: m.ReservedMinutes,
		Price:           m.Price,
	}
}

// BuildCatalog строит индекс каталога по ID позиции
func BuildCatalog(items []*MenuItem) map[int64]*domain.ServiceItem {
	catalog := make(map[int64]*domain.ServiceItem, len(items))
	for _, item := range items {
		catalog[item.ID] = item.ToDomain()
	}
	return catalog
}

// ErrorResponse модель ошибки от SalonDirectory
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
