package get_available_slots

import (
	"context"
	"time"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	// GetByStaffWithFilter получает бронирования мастера на конкретную дату
	GetByStaffWithFilter(ctx context.Context, filter domain.StaffBookingsFilter) ([]*domain.Booking, error)
}

// HoldRepository интерфейс репозитория hold'ов
type HoldRepository interface {
	// GetLiveByStaffAndDate получает живые hold'ы мастера: active и не истекшие к now
	GetLiveByStaffAndDate(ctx context.Context, staffID int64, date time.Time, now time.Time) ([]*domain.Hold, error)
}

// HoursRepository интерфейс репозитория рабочих часов салона
type HoursRepository interface {
	Get(ctx context.Context) (*domain.BusinessHours, error)
}

// ScheduleRepository интерфейс репозитория расписаний мастеров
type ScheduleRepository interface {
	GetDay(ctx context.Context, staffID int64, weekday time.Weekday) (*domain.StaffDaySchedule, error)
	GetEnabledByWeekday(ctx context.Context, weekday time.Weekday) ([]*domain.StaffDaySchedule, error)
}

// ServiceRepository интерфейс репозитория каталога услуг
type ServiceRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Service, error)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
