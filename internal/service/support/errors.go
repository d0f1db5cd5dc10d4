package support

import "errors"

var (
	// ErrRequestNotFound возвращается, когда обращение не найдено
	ErrRequestNotFound = errors.New("support request not found")

	// ErrClientNotFound возвращается, когда клиент обращения не найден
	ErrClientNotFound = errors.New("client not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
