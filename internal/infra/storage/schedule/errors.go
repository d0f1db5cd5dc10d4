package schedule

import "errors"

var (
	// ErrRuleNotFound возвращается, когда правило рабочего дня не найдено
	ErrRuleNotFound = errors.New("schedule.repository: working day rule not found")

	// ErrNonWorkingDayNotFound возвращается, когда нерабочий день не найден
	ErrNonWorkingDayNotFound = errors.New("schedule.repository: non-working day not found")

	// ErrNonWorkingDayExists возвращается при попытке создать второй нерабочий
	// день на ту же дату (уникальность даты обеспечивается на уровне БД)
	ErrNonWorkingDayExists = errors.New("schedule.repository: non-working day already exists")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("schedule.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("schedule.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("schedule.repository: failed to scan row")
)
