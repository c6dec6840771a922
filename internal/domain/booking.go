package domain

import (
	"time"

	"github.com/m04kA/SMC-ReservationService/pkg/types"
)

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	StatusScheduled BookingStatus = "scheduled"
	StatusConfirmed BookingStatus = "confirmed"
	StatusCompleted BookingStatus = "completed"
	StatusCancelled BookingStatus = "cancelled"
	StatusNoShow    BookingStatus = "no_show"
)

// Booking represents a confirmed appointment in the system
// Bookings are only ever created by consuming a hold
type Booking struct {
	ID              int64
	ClientID        int64
	StaffID         int64
	ServiceID       int64
	BookingDate     time.Time
	StartTime       types.TimeString
	DurationMinutes int
	Status          BookingStatus

	// Denormalized data for history
	ServiceName  string
	ServicePrice float64
	Notes        *string

	CancellationReason *string
	CancelledAt        *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// OccupiesSlot returns true if the booking blocks its time interval
// Only scheduled and confirmed bookings occupy time; cancelled and
// no_show bookings free it
func (b *Booking) OccupiesSlot() bool {
	return b.Status == StatusScheduled || b.Status == StatusConfirmed
}

// IsActive returns true if the booking is in an active state
func (b *Booking) IsActive() bool {
	return b.Status != StatusCancelled && b.Status != StatusNoShow
}

// CanBeCancelled returns true if the booking can be cancelled
func (b *Booking) CanBeCancelled() bool {
	return b.Status == StatusScheduled || b.Status == StatusConfirmed
}

// Interval returns the occupied interval [StartTime, StartTime+Duration)
func (b *Booking) Interval() (MinuteRange, error) {
	start, err := b.StartTime.Minutes()
	if err != nil {
		return MinuteRange{}, err
	}
	return MinuteRange{Start: start, End: start + b.DurationMinutes}, nil
}

// StaffBookingsFilter фильтр для получения бронирований мастера
type StaffBookingsFilter struct {
	StaffID         int64          // Обязательный параметр
	StartDate       *time.Time     // Начало периода (опционально)
	EndDate         *time.Time     // Конец периода (опционально)
	Status          *BookingStatus // Фильтр по статусу (опционально)
	IncludeInactive bool           // Включать ли отмененные и no-show бронирования
}
