package schedule

import "errors"

var (
	// ErrRuleNotFound возвращается, когда правило рабочего дня не найдено
	ErrRuleNotFound = errors.New("working day rule not found")

	// ErrNonWorkingDayNotFound возвращается, когда нерабочий день не найден
	ErrNonWorkingDayNotFound = errors.New("non-working day not found")

	// ErrNonWorkingDayExists возвращается при попытке создать нерабочий день
	// на уже занятую дату
	ErrNonWorkingDayExists = errors.New("non-working day already exists")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
