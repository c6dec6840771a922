package create_hold

import "errors"

var (
	// ErrSlotConflict возвращается, когда интервал пересекается с живым
	// hold'ом или активным бронированием того же мастера
	ErrSlotConflict = errors.New("create_hold: slot is already held or booked")

	// ErrInvalidDate возвращается при дате в прошлом
	ErrInvalidDate = errors.New("create_hold: invalid date")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_hold: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_hold: internal error")
)
