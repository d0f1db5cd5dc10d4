package create_admin_appointment

import "errors"

var (
	// ErrClientNotFound возвращается, когда клиент не найден ни по первичному,
	// ни по telegram идентификатору
	ErrClientNotFound = errors.New("create_admin_appointment: client not found")

	// ErrServiceNotFound возвращается, когда услуга не найдена
	ErrServiceNotFound = errors.New("create_admin_appointment: service not found")

	// ErrDayClosed возвращается, когда для дня недели нет рабочего правила
	// или день помечен нерабочим в недельном шаблоне
	ErrDayClosed = errors.New("create_admin_appointment: no such working day")

	// ErrNonWorkingDay возвращается, когда дата попадает на разовый нерабочий день
	ErrNonWorkingDay = errors.New("create_admin_appointment: non-working day")

	// ErrEndOfDayExceeded возвращается, когда интервал записи выходит
	// за час закрытия
	ErrEndOfDayExceeded = errors.New("create_admin_appointment: end of day exceeded")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_admin_appointment: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_admin_appointment: internal error")
)
