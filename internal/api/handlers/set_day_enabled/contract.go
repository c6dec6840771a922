package set_day_enabled

import "context"

type ScheduleService interface {
	SetDayEnabled(ctx context.Context, staffID int64, weekdayName string, enabled bool) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
