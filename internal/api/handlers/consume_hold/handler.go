package consume_hold

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-ReservationService/internal/api/handlers"
	"github.com/m04kA/SMC-ReservationService/internal/api/middleware"
	consumeHold "github.com/m04kA/SMC-ReservationService/internal/usecase/consume_hold"
)

const (
	msgInvalidHoldID      = "некорректный ID удержания"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgMissingUserID      = "отсутствует ID пользователя"
	msgHoldNotFound       = "удержание не найдено"
	msgNotOwner           = "удержание принадлежит другой сессии"
	msgHoldExpired        = "удержание истекло, выберите слот заново"
	msgSlotConflict       = "слот уже занят бронированием или удержанием"
	msgServiceNotFound    = "услуга не найдена"
)

type Handler struct {
	useCase ConsumeHoldUseCase
	logger  Logger
}

func NewHandler(useCase ConsumeHoldUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/holds/{holdId}/consume
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	holdID, err := strconv.ParseInt(vars["holdId"], 10, 64)
	if err != nil {
		h.logger.Warn("POST /holds/{id}/consume - Invalid hold ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidHoldID)
		return
	}

	// Получаем userID из контекста (через middleware Auth)
	clientID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /holds/{id}/consume - Missing user ID: hold_id=%d", holdID)
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req ConsumeHoldRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /holds/{id}/consume - Invalid request body: hold_id=%d, error=%v", holdID, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest(holdID, clientID))
	if err != nil {
		switch {
		case errors.Is(err, consumeHold.ErrHoldNotFound):
			h.logger.Warn("POST /holds/{id}/consume - Hold not found: hold_id=%d", holdID)
			handlers.RespondNotFound(w, msgHoldNotFound)

		case errors.Is(err, consumeHold.ErrNotOwner):
			h.logger.Warn("POST /holds/{id}/consume - Not owner: hold_id=%d, client_id=%d", holdID, clientID)
			handlers.RespondForbidden(w, msgNotOwner)

		case errors.Is(err, consumeHold.ErrHoldExpired):
			h.logger.Warn("POST /holds/{id}/consume - Hold expired: hold_id=%d, client_id=%d", holdID, clientID)
			handlers.RespondError(w, http.StatusGone, msgHoldExpired)

		case errors.Is(err, consumeHold.ErrSlotConflict):
			h.logger.Warn("POST /holds/{id}/consume - Slot conflict: hold_id=%d, client_id=%d", holdID, clientID)
			handlers.RespondError(w, http.StatusConflict, msgSlotConflict)

		case errors.Is(err, consumeHold.ErrServiceNotFound):
			h.logger.Warn("POST /holds/{id}/consume - Service not found: hold_id=%d, service_id=%d", holdID, req.ServiceID)
			handlers.RespondNotFound(w, msgServiceNotFound)

		case errors.Is(err, consumeHold.ErrInvalidInput):
			h.logger.Warn("POST /holds/{id}/consume - Invalid input: hold_id=%d, error=%v", holdID, err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("POST /holds/{id}/consume - Failed to consume hold: hold_id=%d, client_id=%d, error=%v",
				holdID, clientID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseResponse(result)

	h.logger.Info("POST /holds/{id}/consume - Booking created successfully: hold_id=%d, booking_id=%d, client_id=%d",
		holdID, result.BookingID, clientID)
	handlers.RespondJSON(w, http.StatusCreated, response)
}
