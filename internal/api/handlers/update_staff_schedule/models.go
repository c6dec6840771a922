package update_staff_schedule

import "github.com/m04kA/SMC-ReservationService/internal/domain"

// ValidationErrorResponse ответ с полным списком ошибок по полям
type ValidationErrorResponse struct {
	Error  string              `json:"error"`
	Fields []domain.FieldError `json:"fields"`
}
