package get_available_slots

import (
	"sort"
	"time"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
	"github.com/m04kA/SMC-ReservationService/pkg/types"
)

// occupiedRanges собирает занятые интервалы мастера на дату:
// бронирования в статусах scheduled/confirmed плюс живые hold'ы
// Истекшие hold'ы сюда не попадают - репозиторий фильтрует их по expires_at
func occupiedRanges(bookings []*domain.Booking, holds []*domain.Hold) ([]domain.MinuteRange, error) {
	occupied := make([]domain.MinuteRange, 0, len(bookings)+len(holds))

	for _, b := range bookings {
		if !b.OccupiesSlot() {
			continue
		}
		interval, err := b.Interval()
		if err != nil {
			return nil, err
		}
		occupied = append(occupied, interval)
	}

	for _, h := range holds {
		interval, err := h.Interval()
		if err != nil {
			return nil, err
		}
		occupied = append(occupied, interval)
	}

	return occupied, nil
}

// freeRanges вычитает занятые интервалы из эффективных окон мастера
func freeRanges(effective []domain.MinuteRange, occupied []domain.MinuteRange) []domain.MinuteRange {
	free := make([]domain.MinuteRange, 0, len(effective))
	for _, window := range effective {
		free = append(free, domain.SubtractAll(window, occupied)...)
	}
	return free
}

// enumerateStarts перебирает допустимые времена начала слота длиной duration
// внутри свободных подинтервалов с шагом step
// Кандидат валиден, только если [start, start+duration) целиком помещается
// в один свободный подинтервал; касание границы концом слота допустимо
func enumerateStarts(free []domain.MinuteRange, duration, step int) []int {
	if duration <= 0 || step <= 0 {
		return nil
	}

	starts := make([]int, 0)
	for _, r := range free {
		for start := r.Start; start+duration <= r.End; start += step {
			starts = append(starts, start)
		}
	}
	return starts
}

// withinAdvanceWindow проверяет политику бронирования услуги:
// now + minAdvanceHours <= start <= now + maxAdvanceDays
// maxAdvanceDays = 0 означает отсутствие верхней границы
func withinAdvanceWindow(start time.Time, now time.Time, minAdvanceHours, maxAdvanceDays int) bool {
	earliest := now.Add(time.Duration(minAdvanceHours) * time.Hour)
	if start.Before(earliest) {
		return false
	}

	if maxAdvanceDays > 0 {
		latest := now.AddDate(0, 0, maxAdvanceDays)
		if start.After(latest) {
			return false
		}
	}

	return true
}

// mergeCandidates объединяет кандидатов всех мастеров:
// дедупликация по времени начала с накоплением множества доступных мастеров,
// сортировка по возрастанию времени; внутри слота мастера отсортированы по ID
func mergeCandidates(candidates map[int64][]int, duration int) ([]Slot, error) {
	staffByStart := make(map[int][]int64)
	for staffID, starts := range candidates {
		for _, start := range starts {
			staffByStart[start] = append(staffByStart[start], staffID)
		}
	}

	starts := make([]int, 0, len(staffByStart))
	for start := range staffByStart {
		starts = append(starts, start)
	}
	sort.Ints(starts)

	slots := make([]Slot, 0, len(starts))
	for _, start := range starts {
		startTime, err := types.NewTimeStringFromMinutes(start)
		if err != nil {
			return nil, err
		}

		staffIDs := staffByStart[start]
		sort.Slice(staffIDs, func(i, j int) bool { return staffIDs[i] < staffIDs[j] })

		slots = append(slots, Slot{
			StartTime:       startTime,
			DurationMinutes: duration,
			StaffIDs:        staffIDs,
		})
	}

	return slots, nil
}

// isDateInPast проверяет, что дата в прошлом (раньше сегодняшнего дня)
func isDateInPast(date, now time.Time) bool {
	dateOnly := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	nowOnly := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return dateOnly.Before(nowOnly)
}
