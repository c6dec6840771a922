package consume_hold

import (
	"time"

	"github.com/m04kA/SMC-ReservationService/pkg/types"
)

// Request модель запроса на превращение hold'а в бронирование
type Request struct {
	HoldID     int64   // ID hold'а
	OwnerToken string  // Токен владельца checkout-сессии
	ClientID   int64   // ID клиента, на которого оформляется бронирование
	ServiceID  int64   // ID услуги
	Notes      *string // Заметки клиента (опционально)
}

// Response модель ответа с созданным бронированием
// Время начала и длительность скопированы из hold'а без изменений
type Response struct {
	BookingID       int64            `json:"bookingId"`
	ClientID        int64            `json:"clientId"`
	StaffID         int64            `json:"staffId"`
	ServiceID       int64            `json:"serviceId"`
	BookingDate     time.Time        `json:"bookingDate"`
	StartTime       types.TimeString `json:"startTime"`
	DurationMinutes int              `json:"durationMinutes"`
	Status          string           `json:"status"`
	ServiceName     string           `json:"serviceName"`
	ServicePrice    float64          `json:"servicePrice"`
	Notes           *string          `json:"notes,omitempty"`
	CreatedAt       time.Time        `json:"createdAt"`
}
