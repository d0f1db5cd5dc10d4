package appointments

import "errors"

var (
	// ErrAppointmentNotFound возвращается, когда запись не найдена
	ErrAppointmentNotFound = errors.New("appointment not found")

	// ErrClientNotFound возвращается, когда клиент из фильтра не найден
	ErrClientNotFound = errors.New("client not found")

	// ErrDayClosed возвращается, когда новый интервал попадает на нерабочий день недели
	ErrDayClosed = errors.New("no such working day")

	// ErrNonWorkingDay возвращается, когда новый интервал попадает на разовый нерабочий день
	ErrNonWorkingDay = errors.New("non-working day")

	// ErrOutsideWorkingHours возвращается, когда новый интервал выходит за рабочие часы
	ErrOutsideWorkingHours = errors.New("outside working hours")

	// ErrInvalidRange возвращается при некорректном диапазоне дат
	ErrInvalidRange = errors.New("invalid date range")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
