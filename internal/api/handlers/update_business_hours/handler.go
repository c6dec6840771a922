package update_business_hours

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-ReservationService/internal/api/handlers"
	"github.com/m04kA/SMC-ReservationService/internal/service/hours"
	"github.com/m04kA/SMC-ReservationService/internal/service/hours/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgValidationFailed   = "недельное расписание содержит ошибки"
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

// Handle PUT /api/v1/business-hours
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.UpdateHoursRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /business-hours - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Update(r.Context(), &req)
	if err != nil {
		var validationErr *hours.ValidationError
		switch {
		case errors.As(err, &validationErr):
			h.logger.Warn("PUT /business-hours - Validation failed: %d field error(s)", len(validationErr.Fields))
			handlers.RespondJSON(w, http.StatusBadRequest, ValidationErrorResponse{
				Error:  msgValidationFailed,
				Fields: validationErr.Fields,
			})

		case errors.Is(err, hours.ErrValidation):
			h.logger.Warn("PUT /business-hours - Validation failed: %v", err)
			handlers.RespondBadRequest(w, msgValidationFailed)

		default:
			h.logger.Error("PUT /business-hours - Failed to update hours: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /business-hours - Hours updated successfully")
	handlers.RespondJSON(w, http.StatusOK, result)
}
