package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ReservationService/pkg/types"
)

func openDay(open, close types.TimeString, breaks ...TimeRange) DaySchedule {
	return DaySchedule{Open: open, Close: close, Breaks: breaks}
}

func TestBusinessHours_Validate_CollectsAllErrors(t *testing.T) {
	hours := &BusinessHours{}
	hours.Days[time.Sunday] = DaySchedule{Closed: true}
	hours.Days[time.Monday] = openDay("nine", "18:00")
	hours.Days[time.Tuesday] = openDay("18:00", "09:00")
	hours.Days[time.Wednesday] = openDay("09:00", "18:00",
		TimeRange{Start: "08:00", End: "08:30"}) // перерыв вне рабочих часов
	hours.Days[time.Thursday] = openDay("09:00", "18:00")
	hours.Days[time.Friday] = openDay("09:00", "18:00")
	hours.Days[time.Saturday] = openDay("09:00", "18:00")

	errs := hours.Validate()

	require.Len(t, errs, 3)
	assert.Equal(t, "monday.open", errs[0].Field)
	assert.Equal(t, "tuesday", errs[1].Field)
	assert.Equal(t, "wednesday.breaks[0]", errs[2].Field)
}

func TestBusinessHours_Validate_UnsortedBreaks(t *testing.T) {
	hours := &BusinessHours{}
	for weekday := time.Sunday; weekday <= time.Saturday; weekday++ {
		hours.Days[weekday] = DaySchedule{Closed: true}
	}
	hours.Days[time.Monday] = openDay("09:00", "18:00",
		TimeRange{Start: "14:00", End: "15:00"},
		TimeRange{Start: "12:00", End: "13:00"},
	)

	errs := hours.Validate()

	require.Len(t, errs, 1)
	assert.Equal(t, "monday.breaks[1]", errs[0].Field)
}

func TestBusinessHours_Validate_OverlappingBreaks(t *testing.T) {
	hours := &BusinessHours{}
	for weekday := time.Sunday; weekday <= time.Saturday; weekday++ {
		hours.Days[weekday] = DaySchedule{Closed: true}
	}
	hours.Days[time.Monday] = openDay("09:00", "18:00",
		TimeRange{Start: "12:00", End: "13:00"},
		TimeRange{Start: "12:30", End: "14:00"},
	)

	errs := hours.Validate()

	require.Len(t, errs, 1)
	assert.Contains(t, errs[0].Message, "пересекаться")
}

func TestBusinessHours_Validate_ClosedDayNeverChecked(t *testing.T) {
	hours := &BusinessHours{}
	for weekday := time.Sunday; weekday <= time.Saturday; weekday++ {
		// у закрытого дня время может быть пустым - это не ошибка
		hours.Days[weekday] = DaySchedule{Closed: true}
	}

	assert.Empty(t, hours.Validate())
}

func TestDaySchedule_WorkingSubintervals(t *testing.T) {
	day := openDay("09:00", "18:00",
		TimeRange{Start: "12:30", End: "13:30"},
	)

	subintervals, err := day.WorkingSubintervals()

	require.NoError(t, err)
	require.Len(t, subintervals, 2)
	assert.Equal(t, MinuteRange{Start: 540, End: 750}, subintervals[0])
	assert.Equal(t, MinuteRange{Start: 810, End: 1080}, subintervals[1])
}

func TestDaySchedule_WorkingSubintervals_ClosedDay(t *testing.T) {
	subintervals, err := DaySchedule{Closed: true}.WorkingSubintervals()

	require.NoError(t, err)
	assert.Empty(t, subintervals)
}

func TestBusinessHours_IsOpenAt(t *testing.T) {
	hours := &BusinessHours{}
	hours.Days[time.Tuesday] = openDay("09:00", "18:00",
		TimeRange{Start: "12:30", End: "13:30"},
	)

	open, err := hours.IsOpenAt(time.Tuesday, "10:00")
	require.NoError(t, err)
	assert.True(t, open)

	open, err = hours.IsOpenAt(time.Tuesday, "12:30")
	require.NoError(t, err)
	assert.False(t, open)

	// конец дня эксклюзивен
	open, err = hours.IsOpenAt(time.Tuesday, "18:00")
	require.NoError(t, err)
	assert.False(t, open)
}
