package domain

import "github.com/m04kA/SMC-ReservationService/pkg/types"

// AvailableSlot represents a time slot available for booking
// When the request asks for "any staff", StaffIDs holds every staff member
// free at this start time, sorted ascending
type AvailableSlot struct {
	StartTime       types.TimeString
	DurationMinutes int
	StaffIDs        []int64
}
