package domain

import (
	"sort"

	"github.com/m04kA/SMC-ReservationService/pkg/types"
)

// TimeRange полуоткрытый интервал времени суток [Start, End)
// Используется и для перерывов в рабочих часах, и для занятых интервалов
type TimeRange struct {
	Start types.TimeString `json:"start"`
	End   types.TimeString `json:"end"`
}

// Minutes конвертирует интервал в минутное представление
func (r TimeRange) Minutes() (MinuteRange, error) {
	start, err := r.Start.Minutes()
	if err != nil {
		return MinuteRange{}, err
	}
	end, err := r.End.Minutes()
	if err != nil {
		return MinuteRange{}, err
	}
	return MinuteRange{Start: start, End: end}, nil
}

// MinuteRange полуоткрытый интервал [Start, End) в минутах с начала суток
// Вся интервальная арифметика движка выполняется в этом представлении
type MinuteRange struct {
	Start int
	End   int
}

// IsEmpty проверяет, что интервал пуст или вырожден
func (r MinuteRange) IsEmpty() bool {
	return r.End <= r.Start
}

// Duration возвращает длину интервала в минутах
func (r MinuteRange) Duration() int {
	if r.IsEmpty() {
		return 0
	}
	return r.End - r.Start
}

// Overlaps проверяет реальное пересечение полуоткрытых интервалов
// Граничащие интервалы (конец одного == начало другого) НЕ пересекаются
func (r MinuteRange) Overlaps(other MinuteRange) bool {
	return r.Start < other.End && other.Start < r.End
}

// Contains проверяет, что other целиком лежит внутри r
func (r MinuteRange) Contains(other MinuteRange) bool {
	return other.Start >= r.Start && other.End <= r.End
}

// Intersect возвращает пересечение двух интервалов
// Второе значение false, если пересечение пусто
func (r MinuteRange) Intersect(other MinuteRange) (MinuteRange, bool) {
	result := MinuteRange{
		Start: max(r.Start, other.Start),
		End:   min(r.End, other.End),
	}
	if result.IsEmpty() {
		return MinuteRange{}, false
	}
	return result, true
}

// TimeRange конвертирует минутное представление обратно в TimeRange
func (r MinuteRange) TimeRange() (TimeRange, error) {
	start, err := types.NewTimeStringFromMinutes(r.Start)
	if err != nil {
		return TimeRange{}, err
	}
	// конец суток (24:00) - валидная эксклюзивная граница
	var end types.TimeString
	if r.End == 24*60 {
		end = types.TimeString("24:00")
	} else {
		end, err = types.NewTimeStringFromMinutes(r.End)
		if err != nil {
			return TimeRange{}, err
		}
	}
	return TimeRange{Start: start, End: end}, nil
}

// SubtractAll вычитает из base все интервалы busy
// Возвращает отсортированный список непересекающихся свободных подинтервалов
func SubtractAll(base MinuteRange, busy []MinuteRange) []MinuteRange {
	if base.IsEmpty() {
		return nil
	}

	sorted := make([]MinuteRange, 0, len(busy))
	for _, b := range busy {
		if !b.IsEmpty() && b.Overlaps(base) {
			sorted = append(sorted, b)
		}
	}
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Start < sorted[j].Start })

	free := make([]MinuteRange, 0, len(sorted)+1)
	cursor := base.Start

	for _, b := range sorted {
		if b.Start > cursor {
			free = append(free, MinuteRange{Start: cursor, End: min(b.Start, base.End)})
		}
		if b.End > cursor {
			cursor = b.End
		}
		if cursor >= base.End {
			return free
		}
	}

	if cursor < base.End {
		free = append(free, MinuteRange{Start: cursor, End: base.End})
	}

	return free
}

// IntersectRanges пересекает набор интервалов с одним интервалом window
func IntersectRanges(ranges []MinuteRange, window MinuteRange) []MinuteRange {
	result := make([]MinuteRange, 0, len(ranges))
	for _, r := range ranges {
		if intersection, ok := r.Intersect(window); ok {
			result = append(result, intersection)
		}
	}
	return result
}
