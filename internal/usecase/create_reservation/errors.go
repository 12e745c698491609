package create_reservation

import "errors"

var (
	// ErrSalonNotFound возвращается, когда салон не найден
	ErrSalonNotFound = errors.New("create_reservation: salon not found")

	// ErrStaffNotFound возвращается, когда мастер не найден в салоне
	ErrStaffNotFound = errors.New("create_reservation: staff not found")

	// ErrStaffUnavailable возвращается, когда мастер неактивен,
	// не работает в указанную дату или заблокирован на весь день
	ErrStaffUnavailable = errors.New("create_reservation: staff is not available on this date")

	// ErrMenuItemNotFound возвращается, когда позиция каталога не найдена в салоне
	ErrMenuItemNotFound = errors.New("create_reservation: menu item not found")

	// ErrIncompatibleSelection возвращается, когда выбранные позиции
	// пересекаются по категориям (например, сет уже покрывает категорию)
	ErrIncompatibleSelection = errors.New("create_reservation: incompatible menu selection")

	// ErrEmptySelection возвращается, когда выбор не дает положительной длительности
	ErrEmptySelection = errors.New("create_reservation: selection is empty")

	// ErrCustomerNotFound возвращается, когда клиент не найден
	ErrCustomerNotFound = errors.New("create_reservation: customer not found")

	// ErrInvalidDate возвращается при некорректной дате бронирования
	ErrInvalidDate = errors.New("create_reservation: invalid reservation date")

	// ErrDateTooFarInFuture возвращается, когда дата превышает ограничение reservationLimitDays
	ErrDateTooFarInFuture = errors.New("create_reservation: date is too far in the future")

	// ErrOutsideWorkingHours возвращается, когда окно выходит за рабочие часы мастера
	ErrOutsideWorkingHours = errors.New("create_reservation: window is outside working hours")

	// ErrWindowNotAvailable возвращается, когда окно пересекается с исключением
	// календаря или другим активным бронированием мастера
	ErrWindowNotAvailable = errors.New("create_reservation: window is not available")

	// ErrCapacityExceeded возвращается, когда все параллельные места салона заняты
	ErrCapacityExceeded = errors.New("create_reservation: salon capacity exceeded")

	// ErrTooLateToBook возвращается, когда бронирование нарушает minNoticeMinutes
	ErrTooLateToBook = errors.New("create_reservation: too late to book this window")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_reservation: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_reservation: internal error")
)
