package consume_hold

import "errors"

var (
	// ErrHoldNotFound возвращается, когда hold не найден
	ErrHoldNotFound = errors.New("consume_hold: hold not found")

	// ErrNotOwner возвращается, когда токен не совпадает с владельцем hold'а
	ErrNotOwner = errors.New("consume_hold: hold belongs to another owner")

	// ErrHoldExpired возвращается, когда TTL hold'а истёк или hold уже
	// в терминальном состоянии; клиент должен заново пройти выбор слота
	ErrHoldExpired = errors.New("consume_hold: hold is expired or no longer active")

	// ErrSlotConflict возвращается, когда к моменту consume слот уже занят
	// бронированием или чужим hold'ом
	ErrSlotConflict = errors.New("consume_hold: slot is already held or booked")

	// ErrServiceNotFound возвращается, когда услуга не найдена
	ErrServiceNotFound = errors.New("consume_hold: service not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("consume_hold: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("consume_hold: internal error")
)
