package update_staff_schedule

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-ReservationService/internal/api/handlers"
	"github.com/m04kA/SMC-ReservationService/internal/service/schedule"
	"github.com/m04kA/SMC-ReservationService/internal/service/schedule/models"
)

const (
	msgInvalidStaffID     = "некорректный ID мастера"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgValidationFailed   = "расписание мастера содержит ошибки"
	msgPolicyViolation    = "нельзя включить рабочий день мастера, когда салон закрыт"
)

type Handler struct {
	service ScheduleService
	logger  Logger
}

func NewHandler(service ScheduleService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PUT /api/v1/staff/{staffId}/schedule
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	staffID, err := strconv.ParseInt(vars["staffId"], 10, 64)
	if err != nil {
		h.logger.Warn("PUT /staff/{id}/schedule - Invalid staff ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidStaffID)
		return
	}

	var req models.UpdateScheduleRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /staff/{id}/schedule - Invalid request body: staff_id=%d, error=%v", staffID, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.UpdateWeek(r.Context(), staffID, &req)
	if err != nil {
		var validationErr *schedule.ValidationError
		switch {
		case errors.As(err, &validationErr):
			h.logger.Warn("PUT /staff/{id}/schedule - Validation failed: staff_id=%d, %d field error(s)",
				staffID, len(validationErr.Fields))
			handlers.RespondJSON(w, http.StatusBadRequest, ValidationErrorResponse{
				Error:  msgValidationFailed,
				Fields: validationErr.Fields,
			})

		case errors.Is(err, schedule.ErrPolicyViolation):
			h.logger.Warn("PUT /staff/{id}/schedule - Policy violation: staff_id=%d, error=%v", staffID, err)
			handlers.RespondError(w, http.StatusConflict, msgPolicyViolation)

		case errors.Is(err, schedule.ErrInvalidInput):
			h.logger.Warn("PUT /staff/{id}/schedule - Invalid input: staff_id=%d, error=%v", staffID, err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("PUT /staff/{id}/schedule - Failed to update schedule: staff_id=%d, error=%v", staffID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /staff/{id}/schedule - Schedule updated successfully: staff_id=%d", staffID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
