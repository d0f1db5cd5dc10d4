package support

import "errors"

var (
	// ErrRequestNotFound возвращается, когда обращение не найдено
	ErrRequestNotFound = errors.New("support.repository: support request not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("support.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("support.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("support.repository: failed to scan row")
)
