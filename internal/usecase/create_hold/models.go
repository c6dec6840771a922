package create_hold

import (
	"time"

	"github.com/m04kA/SMC-ReservationService/pkg/types"
)

// Request модель запроса на создание hold'а
// OwnerToken опционален: пустое значение означает новую checkout-сессию,
// токен генерируется сервером и возвращается клиенту
type Request struct {
	StaffID         int64            // ID мастера
	Date            time.Time        // Дата слота (без времени)
	StartTime       types.TimeString // Время начала слота
	DurationMinutes int              // Длительность слота в минутах
	OwnerToken      string           // Токен владельца checkout-сессии (опционально)
}

// Response модель ответа на создание hold'а
// ExpiresInSeconds - производное значение (expires_at - now), не хранится
type Response struct {
	HoldID           int64            `json:"holdId"`
	StaffID          int64            `json:"staffId"`
	Date             time.Time        `json:"date"`
	StartTime        types.TimeString `json:"startTime"`
	DurationMinutes  int              `json:"durationMinutes"`
	OwnerToken       string           `json:"ownerToken"`
	ExpiresAt        time.Time        `json:"expiresAt"`
	ExpiresInSeconds int64            `json:"expiresInSeconds"`
}
