package resolve_overlaps

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("resolve_overlaps: invalid input data")
)
