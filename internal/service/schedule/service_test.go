package schedule

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
	hoursRepo "github.com/m04kA/SMC-ReservationService/internal/infra/storage/businesshours"
	scheduleRepo "github.com/m04kA/SMC-ReservationService/internal/infra/storage/staffschedule"
	"github.com/m04kA/SMC-ReservationService/internal/service/schedule/models"
)

type fakeScheduleRepo struct {
	schedules map[int64]map[time.Weekday]*domain.StaffDaySchedule
}

func newFakeScheduleRepo() *fakeScheduleRepo {
	return &fakeScheduleRepo{schedules: make(map[int64]map[time.Weekday]*domain.StaffDaySchedule)}
}

func (f *fakeScheduleRepo) GetByStaff(_ context.Context, staffID int64) ([]*domain.StaffDaySchedule, error) {
	out := make([]*domain.StaffDaySchedule, 0)
	for _, s := range f.schedules[staffID] {
		out = append(out, s)
	}
	return out, nil
}

func (f *fakeScheduleRepo) UpsertDay(_ context.Context, schedule *domain.StaffDaySchedule) (*domain.StaffDaySchedule, error) {
	if f.schedules[schedule.StaffID] == nil {
		f.schedules[schedule.StaffID] = make(map[time.Weekday]*domain.StaffDaySchedule)
	}
	f.schedules[schedule.StaffID][schedule.Weekday] = schedule
	return schedule, nil
}

func (f *fakeScheduleRepo) SetDayEnabled(_ context.Context, staffID int64, weekday time.Weekday, enabled bool) error {
	day, ok := f.schedules[staffID][weekday]
	if !ok {
		return scheduleRepo.ErrScheduleNotFound
	}
	day.Enabled = enabled
	return nil
}

type fakeHoursRepo struct {
	hours *domain.BusinessHours
	err   error
}

func (f *fakeHoursRepo) Get(_ context.Context) (*domain.BusinessHours, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.hours, nil
}

type fakeTxManager struct{}

func (fakeTxManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

// салон открыт каждый день кроме воскресенья
func weekHours() *domain.BusinessHours {
	hours := &domain.BusinessHours{}
	for weekday := time.Sunday; weekday <= time.Saturday; weekday++ {
		hours.Days[weekday] = domain.DaySchedule{Open: "09:00", Close: "18:00"}
	}
	hours.Days[time.Sunday] = domain.DaySchedule{Closed: true}
	return hours
}

func newTestService(repo *fakeScheduleRepo, hours *fakeHoursRepo) *Service {
	return NewService(repo, hours, fakeTxManager{}, nopLogger{})
}

func TestUpdateWeek_ReplacesSchedule(t *testing.T) {
	repo := newFakeScheduleRepo()
	svc := newTestService(repo, &fakeHoursRepo{hours: weekHours()})

	resp, err := svc.UpdateWeek(context.Background(), 1, &models.UpdateScheduleRequest{
		Days: []models.StaffDayDTO{
			{Weekday: "monday", Enabled: true, Start: "09:00", End: "17:00"},
			{Weekday: "tuesday", Enabled: true, Start: "10:00", End: "18:00"},
			{Weekday: "sunday", Enabled: false},
		},
	})

	require.NoError(t, err)
	assert.Equal(t, int64(1), resp.StaffID)
	assert.Len(t, resp.Days, 3)
	assert.True(t, repo.schedules[1][time.Monday].Enabled)
	assert.False(t, repo.schedules[1][time.Sunday].Enabled)
}

func TestUpdateWeek_EnabledDayOnClosedWeekdayIsPolicyViolation(t *testing.T) {
	svc := newTestService(newFakeScheduleRepo(), &fakeHoursRepo{hours: weekHours()})

	_, err := svc.UpdateWeek(context.Background(), 1, &models.UpdateScheduleRequest{
		Days: []models.StaffDayDTO{
			{Weekday: "sunday", Enabled: true, Start: "09:00", End: "17:00"},
		},
	})

	assert.ErrorIs(t, err, ErrPolicyViolation)
}

func TestUpdateWeek_CollectsFieldErrors(t *testing.T) {
	svc := newTestService(newFakeScheduleRepo(), &fakeHoursRepo{hours: weekHours()})

	_, err := svc.UpdateWeek(context.Background(), 1, &models.UpdateScheduleRequest{
		Days: []models.StaffDayDTO{
			{Weekday: "monday", Enabled: true, Start: "17:00", End: "09:00"},
			{Weekday: "tuesday", Enabled: true, Start: "morning", End: "18:00"},
		},
	})

	require.ErrorIs(t, err, ErrValidation)

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Len(t, validationErr.Fields, 2)
}

func TestUpdateWeek_DuplicateWeekday(t *testing.T) {
	svc := newTestService(newFakeScheduleRepo(), &fakeHoursRepo{hours: weekHours()})

	_, err := svc.UpdateWeek(context.Background(), 1, &models.UpdateScheduleRequest{
		Days: []models.StaffDayDTO{
			{Weekday: "monday", Enabled: true, Start: "09:00", End: "17:00"},
			{Weekday: "monday", Enabled: false},
		},
	})

	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestSetDayEnabled_DisableAlwaysAllowed(t *testing.T) {
	repo := newFakeScheduleRepo()
	_, err := repo.UpsertDay(context.Background(), &domain.StaffDaySchedule{
		StaffID: 1, Weekday: time.Monday, Enabled: true, Start: "09:00", End: "17:00",
	})
	require.NoError(t, err)

	svc := newTestService(repo, &fakeHoursRepo{hours: weekHours()})

	err = svc.SetDayEnabled(context.Background(), 1, "monday", false)

	require.NoError(t, err)
	assert.False(t, repo.schedules[1][time.Monday].Enabled)
}

func TestSetDayEnabled_ClosedWeekdayIsPolicyViolation(t *testing.T) {
	repo := newFakeScheduleRepo()
	_, err := repo.UpsertDay(context.Background(), &domain.StaffDaySchedule{
		StaffID: 1, Weekday: time.Sunday, Enabled: false, Start: "09:00", End: "17:00",
	})
	require.NoError(t, err)

	svc := newTestService(repo, &fakeHoursRepo{hours: weekHours()})

	err = svc.SetDayEnabled(context.Background(), 1, "sunday", true)

	assert.ErrorIs(t, err, ErrPolicyViolation)
	assert.False(t, repo.schedules[1][time.Sunday].Enabled)
}

func TestSetDayEnabled_MissingHoursMeansClosed(t *testing.T) {
	repo := newFakeScheduleRepo()
	_, err := repo.UpsertDay(context.Background(), &domain.StaffDaySchedule{
		StaffID: 1, Weekday: time.Monday, Enabled: false, Start: "09:00", End: "17:00",
	})
	require.NoError(t, err)

	svc := newTestService(repo, &fakeHoursRepo{err: hoursRepo.ErrHoursNotFound})

	err = svc.SetDayEnabled(context.Background(), 1, "monday", true)

	assert.ErrorIs(t, err, ErrPolicyViolation)
}

func TestSetDayEnabled_ScheduleNotFound(t *testing.T) {
	svc := newTestService(newFakeScheduleRepo(), &fakeHoursRepo{hours: weekHours()})

	err := svc.SetDayEnabled(context.Background(), 1, "monday", true)

	assert.ErrorIs(t, err, ErrScheduleNotFound)
}

func TestSetDayEnabled_InvalidWeekday(t *testing.T) {
	svc := newTestService(newFakeScheduleRepo(), &fakeHoursRepo{hours: weekHours()})

	err := svc.SetDayEnabled(context.Background(), 1, "someday", true)

	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestGetWeek_NotFound(t *testing.T) {
	svc := newTestService(newFakeScheduleRepo(), &fakeHoursRepo{hours: weekHours()})

	_, err := svc.GetWeek(context.Background(), 1)

	assert.ErrorIs(t, err, ErrScheduleNotFound)
}
