package domain

import (
	"fmt"
	"strings"
	"time"
)

var weekdayNames = [7]string{
	"sunday", "monday", "tuesday", "wednesday", "thursday", "friday", "saturday",
}

// WeekdayName возвращает имя дня недели в нижнем регистре ("monday")
func WeekdayName(weekday time.Weekday) string {
	return weekdayNames[weekday]
}

// ParseWeekday разбирает имя дня недели ("monday") или номер ("1", 0 = воскресенье)
func ParseWeekday(s string) (time.Weekday, error) {
	normalized := strings.ToLower(strings.TrimSpace(s))

	for i, name := range weekdayNames {
		if normalized == name || normalized == fmt.Sprintf("%d", i) {
			return time.Weekday(i), nil
		}
	}

	return 0, fmt.Errorf("invalid weekday: %q", s)
}
