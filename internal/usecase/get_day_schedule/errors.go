package get_day_schedule

import "errors"

var (
	// ErrDayClosed возвращается, когда день закрыт: правила для дня недели нет
	// либо оно помечено нерабочим
	ErrDayClosed = errors.New("get_day_schedule: day is closed")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("get_day_schedule: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("get_day_schedule: internal error")
)
