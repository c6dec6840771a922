package hours

import (
	"errors"
	"fmt"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
)

var (
	// ErrHoursNotFound возвращается, когда рабочие часы ещё не настроены
	ErrHoursNotFound = errors.New("business hours not found")

	// ErrValidation возвращается при нарушении правил недельного расписания
	// Запись отклоняется целиком, детали - в ValidationError
	ErrValidation = errors.New("business hours validation failed")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)

// ValidationError несёт полный список ошибок по полям
type ValidationError struct {
	Fields []domain.FieldError
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%v: %d field error(s)", ErrValidation, len(e.Fields))
}

// Unwrap позволяет errors.Is(err, ErrValidation)
func (e *ValidationError) Unwrap() error {
	return ErrValidation
}
