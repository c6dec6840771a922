package holds

import "errors"

var (
	// ErrHoldNotFound возвращается, когда hold не найден
	ErrHoldNotFound = errors.New("hold not found")

	// ErrNotOwner возвращается, когда токен не совпадает с владельцем hold'а
	ErrNotOwner = errors.New("hold belongs to another owner")

	// ErrHoldExpired возвращается, когда TTL hold'а истёк или hold уже
	// в терминальном состоянии
	ErrHoldExpired = errors.New("hold is expired or no longer active")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
