package domain

// Default configuration values
const (
	DefaultHoldTTLMinutes         = 10
	DefaultSlotGranularityMinutes = 0 // 0 = шаг равен длительности услуги
)

// Business validation constants
const (
	MinServiceDurationMinutes = 5
	MaxServiceDurationMinutes = 480 // 8 hours
	MinAdvanceHoursLimit      = 0
	MaxAdvanceHoursLimit      = 168 // 1 week
	MinAdvanceDaysLimit       = 0
	MaxAdvanceDaysLimit       = 365 // 1 year
	MaxNotesLength            = 500
	MaxCancellationReasonLen  = 500
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// InactiveStatuses список статусов, не занимающих время
// Используется для фильтрации при подсчёте доступных слотов
var InactiveStatuses = []BookingStatus{
	StatusCancelled,
	StatusNoShow,
}

// OccupyingStatuses список статусов, занимающих время в расписании
var OccupyingStatuses = []BookingStatus{
	StatusScheduled,
	StatusConfirmed,
}
