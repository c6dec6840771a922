package release_hold

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

// Handle POST /api/v1/holds/{holdId}/release
// Release идемпотентен: повторный вызов для уже снятого hold'а возвращает 200
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	holdID, err := strconv.ParseInt(vars["holdId"], 10, 64)
	if err != nil {
		h.logger.Warn("POST /holds/{id}/release - Invalid hold ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidHoldID)
		return
	}

	var req ReleaseHoldRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /holds/{id}/release - Invalid request body: hold_id=%d, error=%v", holdID, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if err := h.service.Release(r.Context(), holdID, req.OwnerToken); err != nil {
		switch {
		case errors.Is(err, holds.ErrHoldNotFound):
			h.logger.Warn("POST /holds/{id}/release - Hold not found: hold_id=%d", holdID)
			handlers.RespondNotFound(w, msgHoldNotFound)

		case errors.Is(err, holds.ErrNotOwner):
			h.logger.Warn("POST /holds/{id}/release - Not owner: hold_id=%d", holdID)
			handlers.RespondForbidden(w, msgNotOwner)

		case errors.Is(err, holds.ErrHoldExpired):
			// Hold уже в терминальном состоянии - снимать нечего, отвечаем успехом
			h.logger.Info("POST /holds/{id}/release - Hold already inactive: hold_id=%d", holdID)
			handlers.RespondJSON(w, http.StatusOK, nil)

		case errors.Is(err, holds.ErrInvalidInput):
			h.logger.Warn("POST /holds/{id}/release - Invalid input: hold_id=%d, error=%v", holdID, err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("POST /holds/{id}/release - Failed to release hold: hold_id=%d, error=%v", holdID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /holds/{id}/release - Hold released successfully: hold_id=%d", holdID)
	handlers.RespondJSON(w, http.StatusOK, nil)
}
