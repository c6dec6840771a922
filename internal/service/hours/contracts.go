package hours

import (
	"context"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
)

// HoursRepository интерфейс репозитория рабочих часов салона
type HoursRepository interface {
	Get(ctx context.Context) (*domain.BusinessHours, error)
	// Replace перезаписывает недельное расписание целиком
	Replace(ctx context.Context, hours *domain.BusinessHours) error
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
