package models

import (
	"time"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
	"github.com/m04kA/SMC-ReservationService/pkg/types"
)

// TimeRangeDTO перерыв в формате "HH:MM"
type TimeRangeDTO struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// DayScheduleDTO рабочие часы одного дня недели
type DayScheduleDTO struct {
	Closed bool           `json:"closed"`
	Open   string         `json:"open,omitempty"`
	Close  string         `json:"close,omitempty"`
	Breaks []TimeRangeDTO `json:"breaks,omitempty"`
}

// WeekSchedule недельное расписание салона, ключи - дни недели
type WeekSchedule struct {
	Sunday    DayScheduleDTO `json:"sunday"`
	Monday    DayScheduleDTO `json:"monday"`
	Tuesday   DayScheduleDTO `json:"tuesday"`
	Wednesday DayScheduleDTO `json:"wednesday"`
	Thursday  DayScheduleDTO `json:"thursday"`
	Friday    DayScheduleDTO `json:"friday"`
	Saturday  DayScheduleDTO `json:"saturday"`
}

// UpdateHoursRequest запрос на полную перезапись недельного расписания
type UpdateHoursRequest struct {
	Week WeekSchedule `json:"week"`
}

// HoursResponse ответ с недельным расписанием
type HoursResponse struct {
	Week      WeekSchedule `json:"week"`
	UpdatedAt time.Time    `json:"updatedAt"`
}

// days возвращает дни в порядке time.Weekday (0 = воскресенье)
func (w *WeekSchedule) days() [7]DayScheduleDTO {
	return [7]DayScheduleDTO{
		w.Sunday, w.Monday, w.Tuesday, w.Wednesday, w.Thursday, w.Friday, w.Saturday,
	}
}

func (w *WeekSchedule) setDay(weekday time.Weekday, day DayScheduleDTO) {
	switch weekday {
	case time.Sunday:
		w.Sunday = day
	case time.Monday:
		w.Monday = day
	case time.Tuesday:
		w.Tuesday = day
	case time.Wednesday:
		w.Wednesday = day
	case time.Thursday:
		w.Thursday = day
	case time.Friday:
		w.Friday = day
	case time.Saturday:
		w.Saturday = day
	}
}

// ToDomainHours конвертирует request в domain модель
// Форматы времени здесь не проверяются - полную проверку с ошибками
// по полям делает domain.BusinessHours.Validate
func (r *UpdateHoursRequest) ToDomainHours() *domain.BusinessHours {
	hours := &domain.BusinessHours{}

	for weekday, day := range r.Week.days() {
		breaks := make([]domain.TimeRange, 0, len(day.Breaks))
		for _, br := range day.Breaks {
			breaks = append(breaks, domain.TimeRange{
				Start: types.TimeString(br.Start),
				End:   types.TimeString(br.End),
			})
		}

		hours.Days[weekday] = domain.DaySchedule{
			Closed: day.Closed,
			Open:   types.TimeString(day.Open),
			Close:  types.TimeString(day.Close),
			Breaks: breaks,
		}
	}

	return hours
}

// FromDomainHours конвертирует domain модель в DTO
func FromDomainHours(hours *domain.BusinessHours) *HoursResponse {
	resp := &HoursResponse{UpdatedAt: hours.UpdatedAt}

	for weekday := time.Sunday; weekday <= time.Saturday; weekday++ {
		day := hours.Days[weekday]

		dto := DayScheduleDTO{Closed: day.Closed}
		if !day.Closed {
			dto.Open = day.Open.String()
			dto.Close = day.Close.String()
			for _, br := range day.Breaks {
				dto.Breaks = append(dto.Breaks, TimeRangeDTO{
					Start: br.Start.String(),
					End:   br.End.String(),
				})
			}
		}

		resp.Week.setDay(weekday, dto)
	}

	return resp
}
