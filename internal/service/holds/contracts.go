package holds

import (
	"context"
	"time"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
)

// HoldRepository интерфейс репозитория hold'ов
type HoldRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Hold, error)
	// Renew продлевает hold условным UPDATE'ом (владелец, active, не истёк)
	Renew(ctx context.Context, id int64, ownerToken string, now time.Time, expiresAt time.Time) error
	// Transition переводит hold из active в терминальное состояние
	Transition(ctx context.Context, id int64, ownerToken string, to domain.HoldState) error
	// ExpireStale физически помечает истекшие active-строки как expired
	ExpireStale(ctx context.Context, now time.Time) (int64, error)
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
