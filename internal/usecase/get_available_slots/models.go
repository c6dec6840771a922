package get_available_slots

import (
	"time"

	"github.com/m04kA/SMC-ReservationService/pkg/types"
)

// Request модель запроса на получение доступных слотов
// StaffID = nil означает "любой мастер": кандидаты собираются по всем
// мастерам, работающим в этот день недели
type Request struct {
	Date      time.Time // Дата для получения слотов (без времени)
	ServiceID int64     // ID услуги (длительность + политика бронирования)
	StaffID   *int64    // ID мастера, nil = любой
}

// Response модель ответа со списком доступных слотов
type Response struct {
	Date      time.Time // Дата, на которую запрашивались слоты
	ServiceID int64     // ID услуги
	Slots     []Slot    // Список доступных слотов, по возрастанию времени
}

// Slot модель временного слота
// StaffIDs - все мастера, свободные в это время (отсортированы по возрастанию)
type Slot struct {
	StartTime       types.TimeString // Время начала слота (например, "10:00")
	DurationMinutes int              // Длительность слота в минутах
	StaffIDs        []int64          // Мастера, доступные в этот слот
}
