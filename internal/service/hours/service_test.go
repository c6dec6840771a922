package hours

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
	hoursRepo "github.com/m04kA/SMC-ReservationService/internal/infra/storage/businesshours"
	"github.com/m04kA/SMC-ReservationService/internal/service/hours/models"
)

type fakeHoursRepo struct {
	hours *domain.BusinessHours
}

func (f *fakeHoursRepo) Get(_ context.Context) (*domain.BusinessHours, error) {
	if f.hours == nil {
		return nil, hoursRepo.ErrHoursNotFound
	}
	return f.hours, nil
}

func (f *fakeHoursRepo) Replace(_ context.Context, hours *domain.BusinessHours) error {
	f.hours = hours
	return nil
}

type fakeTxManager struct{}

func (fakeTxManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func validWeek() models.WeekSchedule {
	open := models.DayScheduleDTO{Open: "09:00", Close: "18:00"}
	return models.WeekSchedule{
		Sunday:    models.DayScheduleDTO{Closed: true},
		Monday:    open,
		Tuesday:   models.DayScheduleDTO{Open: "09:00", Close: "18:00", Breaks: []models.TimeRangeDTO{{Start: "12:30", End: "13:30"}}},
		Wednesday: open,
		Thursday:  open,
		Friday:    open,
		Saturday:  models.DayScheduleDTO{Open: "10:00", Close: "16:00"},
	}
}

func TestUpdate_ReplacesWeek(t *testing.T) {
	repo := &fakeHoursRepo{}
	svc := NewService(repo, fakeTxManager{}, nopLogger{})

	resp, err := svc.Update(context.Background(), &models.UpdateHoursRequest{Week: validWeek()})

	require.NoError(t, err)
	assert.True(t, resp.Week.Sunday.Closed)
	assert.Equal(t, "09:00", resp.Week.Monday.Open)
	require.Len(t, resp.Week.Tuesday.Breaks, 1)
	assert.Equal(t, "12:30", resp.Week.Tuesday.Breaks[0].Start)

	require.NotNil(t, repo.hours)
	assert.True(t, repo.hours.Days[time.Sunday].Closed)
}

func TestUpdate_RejectsWholeWeekOnAnyViolation(t *testing.T) {
	repo := &fakeHoursRepo{}
	svc := NewService(repo, fakeTxManager{}, nopLogger{})

	week := validWeek()
	week.Friday = models.DayScheduleDTO{Open: "18:00", Close: "09:00"}

	_, err := svc.Update(context.Background(), &models.UpdateHoursRequest{Week: week})

	require.ErrorIs(t, err, ErrValidation)
	assert.Nil(t, repo.hours) // ничего не записано
}

func TestUpdate_CollectsAllFieldErrors(t *testing.T) {
	svc := NewService(&fakeHoursRepo{}, fakeTxManager{}, nopLogger{})

	week := validWeek()
	week.Monday = models.DayScheduleDTO{Open: "nine", Close: "18:00"}
	week.Tuesday = models.DayScheduleDTO{
		Open:  "09:00",
		Close: "18:00",
		Breaks: []models.TimeRangeDTO{
			{Start: "08:00", End: "08:30"}, // перерыв вне рабочих часов
		},
	}
	week.Friday = models.DayScheduleDTO{Open: "18:00", Close: "09:00"}

	_, err := svc.Update(context.Background(), &models.UpdateHoursRequest{Week: week})

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Len(t, validationErr.Fields, 3)
}

func TestUpdate_OverlappingBreaks(t *testing.T) {
	svc := NewService(&fakeHoursRepo{}, fakeTxManager{}, nopLogger{})

	week := validWeek()
	week.Monday = models.DayScheduleDTO{
		Open:  "09:00",
		Close: "18:00",
		Breaks: []models.TimeRangeDTO{
			{Start: "12:00", End: "13:00"},
			{Start: "12:30", End: "14:00"},
		},
	}

	_, err := svc.Update(context.Background(), &models.UpdateHoursRequest{Week: week})

	assert.ErrorIs(t, err, ErrValidation)
}

func TestGet_NotConfigured(t *testing.T) {
	svc := NewService(&fakeHoursRepo{}, fakeTxManager{}, nopLogger{})

	_, err := svc.Get(context.Background())

	assert.ErrorIs(t, err, ErrHoursNotFound)
}

func TestGet_ReturnsWeek(t *testing.T) {
	repo := &fakeHoursRepo{}
	svc := NewService(repo, fakeTxManager{}, nopLogger{})

	_, err := svc.Update(context.Background(), &models.UpdateHoursRequest{Week: validWeek()})
	require.NoError(t, err)

	resp, err := svc.Get(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "10:00", resp.Week.Saturday.Open)
	assert.True(t, resp.Week.Sunday.Closed)
}
