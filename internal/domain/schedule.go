package domain

import (
	"time"

	"github.com/m04kA/SMC-ReservationService/pkg/types"
)

// StaffDaySchedule рабочее расписание мастера на один день недели
// Weekday хранится как time.Weekday (0 = воскресенье)
type StaffDaySchedule struct {
	ID        int64
	StaffID   int64
	Weekday   time.Weekday
	Enabled   bool
	Start     types.TimeString
	End       types.TimeString
	CreatedAt time.Time
	UpdatedAt time.Time
}

// RawWindow возвращает сырое рабочее окно мастера [Start, End)
// Для выключенного дня возвращает пустой интервал
// Потребители НЕ должны использовать сырое окно напрямую - только
// пересечение с рабочими часами салона (EffectiveWindow в service/schedule)
func (s *StaffDaySchedule) RawWindow() (MinuteRange, bool, error) {
	if !s.Enabled {
		return MinuteRange{}, false, nil
	}

	start, err := s.Start.Minutes()
	if err != nil {
		return MinuteRange{}, false, err
	}
	end, err := s.End.Minutes()
	if err != nil {
		return MinuteRange{}, false, err
	}

	window := MinuteRange{Start: start, End: end}
	if window.IsEmpty() {
		return MinuteRange{}, false, nil
	}

	return window, true, nil
}

// EffectiveWindow пересекает сырое окно мастера с рабочими подинтервалами салона
// Гарантирует, что окно мастера всегда вложено в рабочие часы (минус перерывы),
// даже если в хранилище попали рассогласованные данные
func (s *StaffDaySchedule) EffectiveWindow(day DaySchedule) ([]MinuteRange, error) {
	raw, ok, err := s.RawWindow()
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}

	subintervals, err := day.WorkingSubintervals()
	if err != nil {
		return nil, err
	}

	return IntersectRanges(subintervals, raw), nil
}

// Validate проверяет расписание дня мастера
func (s *StaffDaySchedule) Validate() []FieldError {
	var errs []FieldError
	prefix := WeekdayName(s.Weekday)

	if !s.Enabled {
		return nil
	}

	if err := s.Start.Validate(); err != nil {
		errs = append(errs, FieldError{Field: prefix + ".start", Message: "некорректный формат времени, ожидается HH:MM"})
	}
	if err := s.End.Validate(); err != nil {
		errs = append(errs, FieldError{Field: prefix + ".end", Message: "некорректный формат времени, ожидается HH:MM"})
	}
	if len(errs) == 0 && !s.Start.IsBefore(s.End) {
		errs = append(errs, FieldError{Field: prefix, Message: "начало работы должно быть раньше конца"})
	}

	return errs
}
