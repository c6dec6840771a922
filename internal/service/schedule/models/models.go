package models

import (
	"github.com/m04kA/SMC-ReservationService/internal/domain"
	"github.com/m04kA/SMC-ReservationService/pkg/types"
)

// StaffDayDTO расписание мастера на один день недели
type StaffDayDTO struct {
	Weekday string `json:"weekday"` // "monday" ... "sunday"
	Enabled bool   `json:"enabled"`
	Start   string `json:"start,omitempty"` // "HH:MM"
	End     string `json:"end,omitempty"`   // "HH:MM"
}

// UpdateScheduleRequest запрос на перезапись недельного расписания мастера
type UpdateScheduleRequest struct {
	Days []StaffDayDTO `json:"days"`
}

// ScheduleResponse ответ с недельным расписанием мастера
type ScheduleResponse struct {
	StaffID int64         `json:"staffId"`
	Days    []StaffDayDTO `json:"days"`
}

// ToDomainDay конвертирует DTO в domain модель
// Ошибка разбора дня недели - это ошибка входных данных, остальное
// проверяет domain.StaffDaySchedule.Validate
func (d *StaffDayDTO) ToDomainDay(staffID int64) (*domain.StaffDaySchedule, error) {
	weekday, err := domain.ParseWeekday(d.Weekday)
	if err != nil {
		return nil, err
	}

	return &domain.StaffDaySchedule{
		StaffID: staffID,
		Weekday: weekday,
		Enabled: d.Enabled,
		Start:   types.TimeString(d.Start),
		End:     types.TimeString(d.End),
	}, nil
}

// FromDomainSchedule конвертирует domain модели в DTO
func FromDomainSchedule(staffID int64, schedules []*domain.StaffDaySchedule) *ScheduleResponse {
	resp := &ScheduleResponse{
		StaffID: staffID,
		Days:    make([]StaffDayDTO, 0, len(schedules)),
	}

	for _, s := range schedules {
		dto := StaffDayDTO{
			Weekday: domain.WeekdayName(s.Weekday),
			Enabled: s.Enabled,
		}
		if s.Enabled {
			dto.Start = s.Start.String()
			dto.End = s.End.String()
		}
		resp.Days = append(resp.Days, dto)
	}

	return resp
}
