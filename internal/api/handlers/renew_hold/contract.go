package renew_hold

import (
	"context"

	"github.com/m04kA/SMC-ReservationService/internal/service/holds/models"
)

type HoldService interface {
	Renew(ctx context.Context, holdID int64, ownerToken string) (*models.RenewHoldResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
