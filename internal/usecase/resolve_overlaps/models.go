package resolve_overlaps

import (
	"github.com/m04kA/SMC-ReservationService/pkg/types"
)

// Appointment входной элемент раскладки: подтверждённая запись в календаре
type Appointment struct {
	ID              int64            `json:"id"`
	StartTime       types.TimeString `json:"startTime"`
	DurationMinutes int              `json:"durationMinutes"`
}

// Request модель запроса на раскладку пересекающихся записей
type Request struct {
	Appointments []Appointment `json:"appointments"`
}

// LaidOutAppointment запись с назначенной колонкой отображения
type LaidOutAppointment struct {
	ID              int64            `json:"id"`
	StartTime       types.TimeString `json:"startTime"`
	DurationMinutes int              `json:"durationMinutes"`
	Lane            int              `json:"lane"`
}

// Response модель ответа с раскладкой
// Lanes равно максимальному числу одновременно идущих записей
type Response struct {
	Appointments []LaidOutAppointment `json:"appointments"`
	Lanes        int                  `json:"lanes"`
}
