package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMinuteRange_Overlaps(t *testing.T) {
	base := MinuteRange{Start: 600, End: 645} // [10:00, 10:45)

	assert.True(t, base.Overlaps(MinuteRange{Start: 630, End: 700}))
	assert.True(t, base.Overlaps(MinuteRange{Start: 540, End: 610}))
	assert.True(t, base.Overlaps(MinuteRange{Start: 610, End: 620}))

	// Полуоткрытые интервалы: граничащие не пересекаются
	assert.False(t, base.Overlaps(MinuteRange{Start: 645, End: 700}))
	assert.False(t, base.Overlaps(MinuteRange{Start: 540, End: 600}))
}

func TestMinuteRange_Intersect(t *testing.T) {
	r, ok := MinuteRange{Start: 540, End: 720}.Intersect(MinuteRange{Start: 600, End: 780})
	require.True(t, ok)
	assert.Equal(t, MinuteRange{Start: 600, End: 720}, r)

	_, ok = MinuteRange{Start: 540, End: 600}.Intersect(MinuteRange{Start: 600, End: 700})
	assert.False(t, ok)
}

func TestSubtractAll_SplitsBaseAroundBusy(t *testing.T) {
	base := MinuteRange{Start: 540, End: 1080} // [09:00, 18:00)
	busy := []MinuteRange{
		{Start: 750, End: 810}, // [12:30, 13:30)
		{Start: 600, End: 645}, // [10:00, 10:45) - намеренно не отсортировано
	}

	free := SubtractAll(base, busy)

	require.Len(t, free, 3)
	assert.Equal(t, MinuteRange{Start: 540, End: 600}, free[0])
	assert.Equal(t, MinuteRange{Start: 645, End: 750}, free[1])
	assert.Equal(t, MinuteRange{Start: 810, End: 1080}, free[2])
}

func TestSubtractAll_OverlappingBusyIntervals(t *testing.T) {
	base := MinuteRange{Start: 540, End: 720}
	busy := []MinuteRange{
		{Start: 570, End: 630},
		{Start: 600, End: 660},
	}

	free := SubtractAll(base, busy)

	require.Len(t, free, 2)
	assert.Equal(t, MinuteRange{Start: 540, End: 570}, free[0])
	assert.Equal(t, MinuteRange{Start: 660, End: 720}, free[1])
}

func TestSubtractAll_BusyCoversBase(t *testing.T) {
	base := MinuteRange{Start: 600, End: 660}
	busy := []MinuteRange{{Start: 540, End: 720}}

	assert.Empty(t, SubtractAll(base, busy))
}

func TestSubtractAll_IgnoresBusyOutsideBase(t *testing.T) {
	base := MinuteRange{Start: 600, End: 660}
	busy := []MinuteRange{
		{Start: 0, End: 540},
		{Start: 720, End: 780},
	}

	free := SubtractAll(base, busy)

	require.Len(t, free, 1)
	assert.Equal(t, base, free[0])
}

func TestIntersectRanges(t *testing.T) {
	ranges := []MinuteRange{
		{Start: 540, End: 600},
		{Start: 660, End: 720},
		{Start: 780, End: 840},
	}
	window := MinuteRange{Start: 570, End: 800}

	result := IntersectRanges(ranges, window)

	require.Len(t, result, 3)
	assert.Equal(t, MinuteRange{Start: 570, End: 600}, result[0])
	assert.Equal(t, MinuteRange{Start: 660, End: 720}, result[1])
	assert.Equal(t, MinuteRange{Start: 780, End: 800}, result[2])
}

func TestMinuteRange_TimeRange_EndOfDay(t *testing.T) {
	tr, err := MinuteRange{Start: 1380, End: 1440}.TimeRange()

	require.NoError(t, err)
	assert.Equal(t, "23:00", tr.Start.String())
	assert.Equal(t, "24:00", tr.End.String())
}
