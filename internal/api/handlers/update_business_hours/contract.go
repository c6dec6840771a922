package update_business_hours

import (
	"context"

	"github.com/m04kA/SMC-ReservationService/internal/service/hours/models"
)

type HoursService interface {
	Update(ctx context.Context, req *models.UpdateHoursRequest) (*models.HoursResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
