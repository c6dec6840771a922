package create_hold

import (
	"time"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
	createHold "github.com/m04kA/SMC-ReservationService/internal/usecase/create_hold"
	"github.com/m04kA/SMC-ReservationService/pkg/types"
)

// CreateHoldRequest HTTP request model
type CreateHoldRequest struct {
	StaffID         int64  `json:"staffId"`
	Date            string `json:"date"`      // "2025-10-15"
	StartTime       string `json:"startTime"` // "10:00"
	DurationMinutes int    `json:"durationMinutes"`
	OwnerToken      string `json:"ownerToken,omitempty"` // пусто = новая checkout-сессия
}

// CreateHoldResponse HTTP response model
type CreateHoldResponse struct {
	HoldID           int64     `json:"holdId"`
	StaffID          int64     `json:"staffId"`
	Date             string    `json:"date"`
	StartTime        string    `json:"startTime"`
	DurationMinutes  int       `json:"durationMinutes"`
	OwnerToken       string    `json:"ownerToken"`
	ExpiresAt        time.Time `json:"expiresAt"`
	ExpiresInSeconds int64     `json:"expiresInSeconds"`
}

// ToUseCaseRequest конвертирует HTTP запрос в запрос use case
func (r *CreateHoldRequest) ToUseCaseRequest() (*createHold.Request, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}

	return &createHold.Request{
		StaffID:         r.StaffID,
		Date:            date,
		StartTime:       types.TimeString(r.StartTime),
		DurationMinutes: r.DurationMinutes,
		OwnerToken:      r.OwnerToken,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createHold.Response) *CreateHoldResponse {
	return &CreateHoldResponse{
		HoldID:           resp.HoldID,
		StaffID:          resp.StaffID,
		Date:             resp.Date.Format(domain.DateFormat),
		StartTime:        resp.StartTime.String(),
		DurationMinutes:  resp.DurationMinutes,
		OwnerToken:       resp.OwnerToken,
		ExpiresAt:        resp.ExpiresAt,
		ExpiresInSeconds: resp.ExpiresInSeconds,
	}
}
