package consume_hold

import (
	"time"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
	consumeHold "github.com/m04kA/SMC-ReservationService/internal/usecase/consume_hold"
)

// ConsumeHoldRequest HTTP request model
type ConsumeHoldRequest struct {
	OwnerToken string  `json:"ownerToken"`
	ServiceID  int64   `json:"serviceId"`
	Notes      *string `json:"notes,omitempty"`
}

// BookingResponse HTTP response model с созданным бронированием
type BookingResponse struct {
	BookingID       int64     `json:"bookingId"`
	ClientID        int64     `json:"clientId"`
	StaffID         int64     `json:"staffId"`
	ServiceID       int64     `json:"serviceId"`
	BookingDate     string    `json:"bookingDate"`
	StartTime       string    `json:"startTime"`
	DurationMinutes int       `json:"durationMinutes"`
	Status          string    `json:"status"`
	ServiceName     string    `json:"serviceName"`
	ServicePrice    float64   `json:"servicePrice"`
	Notes           *string   `json:"notes,omitempty"`
	CreatedAt       time.Time `json:"createdAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в запрос use case
func (r *ConsumeHoldRequest) ToUseCaseRequest(holdID, clientID int64) *consumeHold.Request {
	return &consumeHold.Request{
		HoldID:     holdID,
		OwnerToken: r.OwnerToken,
		ClientID:   clientID,
		ServiceID:  r.ServiceID,
		Notes:      r.Notes,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *consumeHold.Response) *BookingResponse {
	return &BookingResponse{
		BookingID:       resp.BookingID,
		ClientID:        resp.ClientID,
		StaffID:         resp.StaffID,
		ServiceID:       resp.ServiceID,
		BookingDate:     resp.BookingDate.Format(domain.DateFormat),
		StartTime:       resp.StartTime.String(),
		DurationMinutes: resp.DurationMinutes,
		Status:          resp.Status,
		ServiceName:     resp.ServiceName,
		ServicePrice:    resp.ServicePrice,
		Notes:           resp.Notes,
		CreatedAt:       resp.CreatedAt,
	}
}
