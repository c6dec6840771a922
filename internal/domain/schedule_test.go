package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStaffDaySchedule_EffectiveWindow_ClampedToBusinessHours(t *testing.T) {
	day := openDay("09:00", "18:00")
	schedule := &StaffDaySchedule{
		StaffID: 1,
		Weekday: time.Tuesday,
		Enabled: true,
		Start:   "08:00", // раньше открытия салона
		End:     "19:00", // позже закрытия
	}

	windows, err := schedule.EffectiveWindow(day)

	require.NoError(t, err)
	require.Len(t, windows, 1)
	assert.Equal(t, MinuteRange{Start: 540, End: 1080}, windows[0])
}

func TestStaffDaySchedule_EffectiveWindow_SplitByBreak(t *testing.T) {
	day := openDay("09:00", "18:00", TimeRange{Start: "12:30", End: "13:30"})
	schedule := &StaffDaySchedule{
		Enabled: true,
		Start:   "10:00",
		End:     "17:00",
	}

	windows, err := schedule.EffectiveWindow(day)

	require.NoError(t, err)
	require.Len(t, windows, 2)
	assert.Equal(t, MinuteRange{Start: 600, End: 750}, windows[0])
	assert.Equal(t, MinuteRange{Start: 810, End: 1020}, windows[1])
}

func TestStaffDaySchedule_EffectiveWindow_DisabledDay(t *testing.T) {
	day := openDay("09:00", "18:00")
	schedule := &StaffDaySchedule{Enabled: false, Start: "10:00", End: "17:00"}

	windows, err := schedule.EffectiveWindow(day)

	require.NoError(t, err)
	assert.Empty(t, windows)
}

func TestStaffDaySchedule_EffectiveWindow_ClosedSalon(t *testing.T) {
	schedule := &StaffDaySchedule{Enabled: true, Start: "10:00", End: "17:00"}

	windows, err := schedule.EffectiveWindow(DaySchedule{Closed: true})

	require.NoError(t, err)
	assert.Empty(t, windows)
}

func TestStaffDaySchedule_Validate(t *testing.T) {
	valid := &StaffDaySchedule{Weekday: time.Monday, Enabled: true, Start: "10:00", End: "17:00"}
	assert.Empty(t, valid.Validate())

	inverted := &StaffDaySchedule{Weekday: time.Monday, Enabled: true, Start: "17:00", End: "10:00"}
	errs := inverted.Validate()
	require.Len(t, errs, 1)
	assert.Equal(t, "monday", errs[0].Field)

	badFormat := &StaffDaySchedule{Weekday: time.Friday, Enabled: true, Start: "ten", End: "17:00"}
	errs = badFormat.Validate()
	require.Len(t, errs, 1)
	assert.Equal(t, "friday.start", errs[0].Field)

	// выключенный день не проверяется
	disabled := &StaffDaySchedule{Weekday: time.Monday, Enabled: false}
	assert.Empty(t, disabled.Validate())
}
