package domain

import "time"

// Service represents a bookable service with its booking-policy constraints
type Service struct {
	ID              int64
	Name            string
	Price           float64
	DurationMinutes int
	MinAdvanceHours int // минимальное время до начала слота при бронировании
	MaxAdvanceDays  int // максимальный горизонт бронирования, 0 = без ограничения
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// HasAdvanceBookingLimit returns true if there's a limit on how far in advance
// the service can be booked
func (s *Service) HasAdvanceBookingLimit() bool {
	return s.MaxAdvanceDays > 0
}
