package update_business_hours

import "github.com/m04kA/SMC-ReservationService/internal/domain"

// ValidationErrorResponse ответ с полным списком ошибок по полям.
// Неделя отклоняется целиком, клиент получает все нарушения сразу.
type ValidationErrorResponse struct {
	Error  string              `json:"error"`
	Fields []domain.FieldError `json:"fields"`
}
