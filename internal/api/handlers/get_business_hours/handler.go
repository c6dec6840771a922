package get_business_hours

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-ReservationService/internal/api/handlers"
	"github.com/m04kA/SMC-ReservationService/internal/service/hours"
)

const (
	msgHoursNotFound = "рабочие часы салона не настроены"
)

type Handler struct {
	service HoursService
	logger  Logger
}

func NewHandler(service HoursService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/business-hours
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.Get(r.Context())
	if err != nil {
		switch {
		case errors.Is(err, hours.ErrHoursNotFound):
			h.logger.Warn("GET /business-hours - Hours not configured")
			handlers.RespondNotFound(w, msgHoursNotFound)

		default:
			h.logger.Error("GET /business-hours - Failed to get hours: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /business-hours - Hours retrieved successfully")
	handlers.RespondJSON(w, http.StatusOK, result)
}
