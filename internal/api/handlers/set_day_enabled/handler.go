package set_day_enabled

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-ReservationService/internal/api/handlers"
	"github.com/m04kA/SMC-ReservationService/internal/service/schedule"
)

const (
	msgInvalidStaffID     = "некорректный ID мастера"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgScheduleNotFound   = "расписание мастера не найдено"
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

// Handle PATCH /api/v1/staff/{staffId}/schedule/{weekday}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	staffID, err := strconv.ParseInt(vars["staffId"], 10, 64)
	if err != nil {
		h.logger.Warn("PATCH /staff/{id}/schedule/{weekday} - Invalid staff ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidStaffID)
		return
	}

	weekday := vars["weekday"]

	var req SetDayEnabledRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /staff/{id}/schedule/{weekday} - Invalid request body: staff_id=%d, error=%v", staffID, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if err := h.service.SetDayEnabled(r.Context(), staffID, weekday, req.Enabled); err != nil {
		switch {
		case errors.Is(err, schedule.ErrScheduleNotFound):
			h.logger.Warn("PATCH /staff/{id}/schedule/{weekday} - Schedule not found: staff_id=%d, weekday=%s",
				staffID, weekday)
			handlers.RespondNotFound(w, msgScheduleNotFound)

		case errors.Is(err, schedule.ErrPolicyViolation):
			h.logger.Warn("PATCH /staff/{id}/schedule/{weekday} - Policy violation: staff_id=%d, weekday=%s",
				staffID, weekday)
			handlers.RespondError(w, http.StatusConflict, msgPolicyViolation)

		case errors.Is(err, schedule.ErrInvalidInput):
			h.logger.Warn("PATCH /staff/{id}/schedule/{weekday} - Invalid input: staff_id=%d, weekday=%s, error=%v",
				staffID, weekday, err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("PATCH /staff/{id}/schedule/{weekday} - Failed to set day enabled: staff_id=%d, weekday=%s, error=%v",
				staffID, weekday, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /staff/{id}/schedule/{weekday} - Day updated successfully: staff_id=%d, weekday=%s, enabled=%t",
		staffID, weekday, req.Enabled)
	handlers.RespondJSON(w, http.StatusOK, nil)
}
