package renew_hold

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-ReservationService/internal/api/handlers"
	"github.com/m04kA/SMC-ReservationService/internal/service/holds"
)

const (
	msgInvalidHoldID      = "некорректный ID удержания"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgHoldNotFound       = "удержание не найдено"
	msgNotOwner           = "удержание принадлежит другой сессии"
	msgHoldExpired        = "удержание истекло, выберите слот заново"
)

type Handler struct {
	service HoldService
	logger  Logger
}

func NewHandler(service HoldService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/holds/{holdId}/renew
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	holdID, err := strconv.ParseInt(vars["holdId"], 10, 64)
	if err != nil {
		h.logger.Warn("POST /holds/{id}/renew - Invalid hold ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidHoldID)
		return
	}

	var req RenewHoldRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /holds/{id}/renew - Invalid request body: hold_id=%d, error=%v", holdID, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Renew(r.Context(), holdID, req.OwnerToken)
	if err != nil {
		switch {
		case errors.Is(err, holds.ErrHoldNotFound):
			h.logger.Warn("POST /holds/{id}/renew - Hold not found: hold_id=%d", holdID)
			handlers.RespondNotFound(w, msgHoldNotFound)

		case errors.Is(err, holds.ErrNotOwner):
			h.logger.Warn("POST /holds/{id}/renew - Not owner: hold_id=%d", holdID)
			handlers.RespondForbidden(w, msgNotOwner)

		case errors.Is(err, holds.ErrHoldExpired):
			h.logger.Warn("POST /holds/{id}/renew - Hold expired: hold_id=%d", holdID)
			handlers.RespondError(w, http.StatusGone, msgHoldExpired)

		case errors.Is(err, holds.ErrInvalidInput):
			h.logger.Warn("POST /holds/{id}/renew - Invalid input: hold_id=%d, error=%v", holdID, err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("POST /holds/{id}/renew - Failed to renew hold: hold_id=%d, error=%v", holdID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /holds/{id}/renew - Hold renewed successfully: hold_id=%d, expires_in=%ds",
		holdID, result.ExpiresInSeconds)
	handlers.RespondJSON(w, http.StatusOK, result)
}
