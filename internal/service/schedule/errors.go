package schedule

import (
	"errors"
	"fmt"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
)

var (
	// ErrScheduleNotFound возвращается, когда расписание не найдено
	ErrScheduleNotFound = errors.New("staff schedule not found")

	// ErrPolicyViolation возвращается при попытке включить день мастера,
	// когда салон в этот день закрыт
	ErrPolicyViolation = errors.New("staff day cannot be enabled when the salon is closed")

	// ErrValidation возвращается при нарушении правил расписания
	ErrValidation = errors.New("staff schedule validation failed")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

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
