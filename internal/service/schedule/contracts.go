package schedule

import (
	"context"
	"time"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
)

// ScheduleRepository интерфейс репозитория расписаний мастеров
type ScheduleRepository interface {
	GetByStaff(ctx context.Context, staffID int64) ([]*domain.StaffDaySchedule, error)
	// UpsertDay создает или обновляет расписание одного дня недели
	UpsertDay(ctx context.Context, schedule *domain.StaffDaySchedule) (*domain.StaffDaySchedule, error)
	SetDayEnabled(ctx context.Context, staffID int64, weekday time.Weekday, enabled bool) error
}

// HoursRepository интерфейс репозитория рабочих часов салона
type HoursRepository interface {
	Get(ctx context.Context) (*domain.BusinessHours, error)
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
