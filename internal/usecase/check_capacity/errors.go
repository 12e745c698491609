package check_capacity

import "errors"

var (
	// ErrInvalidTimeRange возвращается при некорректном временном окне
	ErrInvalidTimeRange = errors.New("check_capacity: invalid time range")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("check_capacity: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("check_capacity: internal error")
)
