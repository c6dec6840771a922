package resolve_overlaps

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-ReservationService/internal/api/handlers"
	resolveOverlaps "github.com/m04kA/SMC-ReservationService/internal/usecase/resolve_overlaps"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
)

type Handler struct {
	useCase ResolveOverlapsUseCase
	logger  Logger
}

func NewHandler(useCase ResolveOverlapsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/calendar/layout
// Раскладка пересекающихся записей по колонкам для отображения календаря.
// Use case чистый, поэтому модели use case используются как HTTP DTO напрямую.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req resolveOverlaps.Request
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /calendar/layout - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(&req)
	if err != nil {
		switch {
		case errors.Is(err, resolveOverlaps.ErrInvalidInput):
			h.logger.Warn("POST /calendar/layout - Invalid input: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("POST /calendar/layout - Failed to resolve overlaps: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /calendar/layout - Layout resolved successfully: appointments=%d, lanes=%d",
		len(result.Appointments), result.Lanes)
	handlers.RespondJSON(w, http.StatusOK, result)
}
