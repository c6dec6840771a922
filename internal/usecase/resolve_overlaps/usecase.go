package resolve_overlaps

import (
	"fmt"
	"sort"
)

// UseCase use case раскладки пересекающихся записей по колонкам календаря
//
// Чистая функция над интервалами: не читает хранилище и не знает про
// резервирование. Инвариант отсутствия двойных бронирований живёт в
// create_hold/consume_hold, здесь решается только задача отображения
type UseCase struct {
	logger Logger
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(logger Logger) *UseCase {
	return &UseCase{logger: logger}
}

// Execute назначает каждой записи колонку (lane) жадным алгоритмом:
// записи сортируются по времени начала (при равенстве - по ID), каждой
// назначается первая колонка, освободившаяся к её началу. Число колонок
// равно максимальному количеству одновременно идущих записей
func (uc *UseCase) Execute(req *Request) (*Response, error) {
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("ResolveOverlaps: validation failed: %v", err)
		return nil, err
	}

	type interval struct {
		appointment Appointment
		start       int
		end         int
	}

	intervals := make([]interval, 0, len(req.Appointments))
	for _, a := range req.Appointments {
		start, err := a.StartTime.Minutes()
		if err != nil {
			return nil, fmt.Errorf("%w: appointment id=%d has malformed start time", ErrInvalidInput, a.ID)
		}
		intervals = append(intervals, interval{
			appointment: a,
			start:       start,
			end:         start + a.DurationMinutes,
		})
	}

	sort.Slice(intervals, func(i, j int) bool {
		if intervals[i].start != intervals[j].start {
			return intervals[i].start < intervals[j].start
		}
		return intervals[i].appointment.ID < intervals[j].appointment.ID
	})

	// laneEnds[i] - время, когда колонка i освобождается
	laneEnds := make([]int, 0)
	laidOut := make([]LaidOutAppointment, 0, len(intervals))

	for _, iv := range intervals {
		lane := -1
		for i, end := range laneEnds {
			if end <= iv.start {
				lane = i
				break
			}
		}
		if lane == -1 {
			lane = len(laneEnds)
			laneEnds = append(laneEnds, 0)
		}
		laneEnds[lane] = iv.end

		laidOut = append(laidOut, LaidOutAppointment{
			ID:              iv.appointment.ID,
			StartTime:       iv.appointment.StartTime,
			DurationMinutes: iv.appointment.DurationMinutes,
			Lane:            lane,
		})
	}

	uc.logger.Info("ResolveOverlaps: laid out %d appointments into %d lanes", len(laidOut), len(laneEnds))

	return &Response{
		Appointments: laidOut,
		Lanes:        len(laneEnds),
	}, nil
}

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	for _, a := range req.Appointments {
		if a.ID <= 0 {
			return fmt.Errorf("%w: appointment id must be positive", ErrInvalidInput)
		}
		if err := a.StartTime.Validate(); err != nil {
			return fmt.Errorf("%w: appointment id=%d has malformed start time", ErrInvalidInput, a.ID)
		}
		if a.DurationMinutes <= 0 {
			return fmt.Errorf("%w: appointment id=%d must have positive duration", ErrInvalidInput, a.ID)
		}
	}
	return nil
}
