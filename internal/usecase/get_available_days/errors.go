package get_available_days

import "errors"

var (
	// ErrInvalidRange возвращается, когда начало периода позже его конца
	ErrInvalidRange = errors.New("get_available_days: fromDate is after toDate")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("get_available_days: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("get_available_days: internal error")
)
