package domain

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-ReservationService/pkg/types"
)

// DaySchedule рабочие часы салона на один день недели
type DaySchedule struct {
	Closed bool
	Open   types.TimeString
	Close  types.TimeString
	Breaks []TimeRange
}

// BusinessHours рабочие часы салона на неделю
// Days индексируется time.Weekday (0 = воскресенье)
type BusinessHours struct {
	ID        int64
	Days      [7]DaySchedule
	UpdatedAt time.Time
}

// Day возвращает расписание на указанный день недели
func (h *BusinessHours) Day(weekday time.Weekday) DaySchedule {
	return h.Days[weekday]
}

// FieldError ошибка валидации с привязкой к полю
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Validate проверяет корректность расписания на неделю
// Возвращает полный список ошибок по полям; запись отклоняется целиком
// при любом нарушении
func (h *BusinessHours) Validate() []FieldError {
	var errs []FieldError

	for weekday := time.Sunday; weekday <= time.Saturday; weekday++ {
		day := h.Days[weekday]
		prefix := WeekdayName(weekday)

		if day.Closed {
			continue
		}

		if err := day.Open.Validate(); err != nil {
			errs = append(errs, FieldError{Field: prefix + ".open", Message: "некорректный формат времени, ожидается HH:MM"})
			continue
		}
		if err := day.Close.Validate(); err != nil {
			errs = append(errs, FieldError{Field: prefix + ".close", Message: "некорректный формат времени, ожидается HH:MM"})
			continue
		}
		if !day.Open.IsBefore(day.Close) {
			errs = append(errs, FieldError{Field: prefix, Message: "время открытия должно быть раньше времени закрытия"})
			continue
		}

		errs = append(errs, validateBreaks(prefix, day)...)
	}

	return errs
}

// validateBreaks проверяет перерывы одного дня: формат, start < end,
// вложенность в [open, close), сортировку и попарное непересечение
func validateBreaks(prefix string, day DaySchedule) []FieldError {
	var errs []FieldError

	for i, br := range day.Breaks {
		field := fmt.Sprintf("%s.breaks[%d]", prefix, i)

		if err := br.Start.Validate(); err != nil {
			errs = append(errs, FieldError{Field: field + ".start", Message: "некорректный формат времени, ожидается HH:MM"})
			continue
		}
		if err := br.End.Validate(); err != nil {
			errs = append(errs, FieldError{Field: field + ".end", Message: "некорректный формат времени, ожидается HH:MM"})
			continue
		}
		if !br.Start.IsBefore(br.End) {
			errs = append(errs, FieldError{Field: field, Message: "начало перерыва должно быть раньше его конца"})
			continue
		}
		if br.Start.IsBefore(day.Open) || br.End.IsAfter(day.Close) {
			errs = append(errs, FieldError{Field: field, Message: "перерыв должен лежать внутри рабочих часов"})
			continue
		}

		if i > 0 {
			prev := day.Breaks[i-1]
			if br.Start.IsBefore(prev.Start) {
				errs = append(errs, FieldError{Field: field, Message: "перерывы должны быть отсортированы по времени начала"})
				continue
			}
			if br.Start.IsBefore(prev.End) {
				errs = append(errs, FieldError{Field: field, Message: "перерывы не должны пересекаться"})
			}
		}
	}

	return errs
}

// IsOpenAt проверяет, что салон открыт в указанный момент дня
// (внутри рабочих часов и не в перерыве)
func (h *BusinessHours) IsOpenAt(weekday time.Weekday, at types.TimeString) (bool, error) {
	subintervals, err := h.Day(weekday).WorkingSubintervals()
	if err != nil {
		return false, err
	}

	minutes, err := at.Minutes()
	if err != nil {
		return false, err
	}

	for _, r := range subintervals {
		if minutes >= r.Start && minutes < r.End {
			return true, nil
		}
	}
	return false, nil
}

// WorkingSubintervals возвращает [open, close) за вычетом перерывов
// Перерывы могут разбить день на несколько непересекающихся подинтервалов
// Для закрытого дня возвращает пустой список
func (d DaySchedule) WorkingSubintervals() ([]MinuteRange, error) {
	if d.Closed {
		return nil, nil
	}

	open, err := d.Open.Minutes()
	if err != nil {
		return nil, err
	}
	closeAt, err := d.Close.Minutes()
	if err != nil {
		return nil, err
	}

	breaks := make([]MinuteRange, 0, len(d.Breaks))
	for _, br := range d.Breaks {
		r, err := br.Minutes()
		if err != nil {
			return nil, err
		}
		breaks = append(breaks, r)
	}

	return SubtractAll(MinuteRange{Start: open, End: closeAt}, breaks), nil
}
