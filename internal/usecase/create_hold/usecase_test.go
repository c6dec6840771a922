package create_hold

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
)

type fakeHoldRepo struct {
	holds  []*domain.Hold
	nextID int64
}

func (f *fakeHoldRepo) Create(_ context.Context, hold *domain.Hold) (*domain.Hold, error) {
	f.nextID++
	hold.ID = f.nextID
	f.holds = append(f.holds, hold)
	return hold, nil
}

func (f *fakeHoldRepo) GetLiveByStaffAndDate(_ context.Context, staffID int64, _ time.Time, now time.Time) ([]*domain.Hold, error) {
	out := make([]*domain.Hold, 0)
	for _, h := range f.holds {
		if h.StaffID == staffID && h.IsLiveAt(now) {
			out = append(out, h)
		}
	}
	return out, nil
}

type fakeBookingRepo struct {
	bookings []*domain.Booking
}

func (f *fakeBookingRepo) GetByStaffWithFilter(_ context.Context, filter domain.StaffBookingsFilter) ([]*domain.Booking, error) {
	out := make([]*domain.Booking, 0)
	for _, b := range f.bookings {
		if b.StaffID == filter.StaffID && b.IsActive() {
			out = append(out, b)
		}
	}
	return out, nil
}

type fakeTxManager struct{}

func (fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fixedClock struct {
	now time.Time
}

func (c *fixedClock) Now() time.Time {
	return c.now
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

var (
	testDate = time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC)
	testNow  = time.Date(2026, 9, 14, 12, 0, 0, 0, time.UTC)
)

func newTestUseCase(holds *fakeHoldRepo, bookings *fakeBookingRepo, ttlMinutes int, now time.Time) *UseCase {
	uc := NewUseCase(holds, bookings, fakeTxManager{}, ttlMinutes, nopLogger{})
	uc.timeProvider = &fixedClock{now: now}
	return uc
}

func TestExecute_CreatesHoldWithTTL(t *testing.T) {
	holds := &fakeHoldRepo{}
	uc := newTestUseCase(holds, &fakeBookingRepo{}, 10, testNow)

	resp, err := uc.Execute(context.Background(), &Request{
		StaffID:         1,
		Date:            testDate,
		StartTime:       "10:00",
		DurationMinutes: 45,
	})

	require.NoError(t, err)
	assert.Equal(t, int64(1), resp.HoldID)
	assert.NotEmpty(t, resp.OwnerToken) // токен сгенерирован сервером
	assert.Equal(t, testNow.Add(10*time.Minute), resp.ExpiresAt)
	assert.Equal(t, int64(600), resp.ExpiresInSeconds)

	require.Len(t, holds.holds, 1)
	assert.Equal(t, domain.HoldActive, holds.holds[0].State)
}

func TestExecute_KeepsClientOwnerToken(t *testing.T) {
	uc := newTestUseCase(&fakeHoldRepo{}, &fakeBookingRepo{}, 10, testNow)

	resp, err := uc.Execute(context.Background(), &Request{
		StaffID:         1,
		Date:            testDate,
		StartTime:       "10:00",
		DurationMinutes: 45,
		OwnerToken:      "client-session-token",
	})

	require.NoError(t, err)
	assert.Equal(t, "client-session-token", resp.OwnerToken)
}

func TestExecute_ConflictWithLiveHold(t *testing.T) {
	holds := &fakeHoldRepo{holds: []*domain.Hold{
		{
			ID:              100,
			StaffID:         1,
			HoldDate:        testDate,
			StartTime:       "10:00",
			DurationMinutes: 45,
			State:           domain.HoldActive,
			ExpiresAt:       testNow.Add(5 * time.Minute),
		},
	}}
	holds.nextID = 100
	uc := newTestUseCase(holds, &fakeBookingRepo{}, 10, testNow)

	_, err := uc.Execute(context.Background(), &Request{
		StaffID:         1,
		Date:            testDate,
		StartTime:       "10:30",
		DurationMinutes: 45,
	})

	assert.ErrorIs(t, err, ErrSlotConflict)
}

func TestExecute_ExpiredHoldDoesNotConflict(t *testing.T) {
	// TTL истёк, state всё ещё active: hold невидим для проверки конфликтов
	holds := &fakeHoldRepo{holds: []*domain.Hold{
		{
			ID:              100,
			StaffID:         1,
			HoldDate:        testDate,
			StartTime:       "10:00",
			DurationMinutes: 45,
			State:           domain.HoldActive,
			ExpiresAt:       testNow.Add(-time.Second),
		},
	}}
	holds.nextID = 100
	uc := newTestUseCase(holds, &fakeBookingRepo{}, 10, testNow)

	resp, err := uc.Execute(context.Background(), &Request{
		StaffID:         1,
		Date:            testDate,
		StartTime:       "10:00",
		DurationMinutes: 45,
	})

	require.NoError(t, err)
	assert.Equal(t, int64(101), resp.HoldID)
}

func TestExecute_ConflictWithBooking(t *testing.T) {
	bookings := &fakeBookingRepo{bookings: []*domain.Booking{
		{
			ID:              1,
			StaffID:         1,
			BookingDate:     testDate,
			StartTime:       "10:00",
			DurationMinutes: 45,
			Status:          domain.StatusScheduled,
		},
	}}
	uc := newTestUseCase(&fakeHoldRepo{}, bookings, 10, testNow)

	_, err := uc.Execute(context.Background(), &Request{
		StaffID:         1,
		Date:            testDate,
		StartTime:       "09:30",
		DurationMinutes: 45,
	})

	assert.ErrorIs(t, err, ErrSlotConflict)
}

func TestExecute_AdjacentIntervalsDoNotConflict(t *testing.T) {
	bookings := &fakeBookingRepo{bookings: []*domain.Booking{
		{
			ID:              1,
			StaffID:         1,
			BookingDate:     testDate,
			StartTime:       "10:00",
			DurationMinutes: 45,
			Status:          domain.StatusConfirmed,
		},
	}}
	uc := newTestUseCase(&fakeHoldRepo{}, bookings, 10, testNow)

	// [10:45, 11:30) касается [10:00, 10:45) только границей
	resp, err := uc.Execute(context.Background(), &Request{
		StaffID:         1,
		Date:            testDate,
		StartTime:       "10:45",
		DurationMinutes: 45,
	})

	require.NoError(t, err)
	assert.NotZero(t, resp.HoldID)
}

func TestExecute_OtherStaffDoesNotConflict(t *testing.T) {
	holds := &fakeHoldRepo{holds: []*domain.Hold{
		{
			ID:              100,
			StaffID:         2,
			HoldDate:        testDate,
			StartTime:       "10:00",
			DurationMinutes: 45,
			State:           domain.HoldActive,
			ExpiresAt:       testNow.Add(5 * time.Minute),
		},
	}}
	holds.nextID = 100
	uc := newTestUseCase(holds, &fakeBookingRepo{}, 10, testNow)

	resp, err := uc.Execute(context.Background(), &Request{
		StaffID:         1,
		Date:            testDate,
		StartTime:       "10:00",
		DurationMinutes: 45,
	})

	require.NoError(t, err)
	assert.NotZero(t, resp.HoldID)
}

func TestExecute_InvalidInput(t *testing.T) {
	uc := newTestUseCase(&fakeHoldRepo{}, &fakeBookingRepo{}, 10, testNow)

	cases := []struct {
		name string
		req  *Request
	}{
		{"zero staff", &Request{Date: testDate, StartTime: "10:00", DurationMinutes: 45}},
		{"zero date", &Request{StaffID: 1, StartTime: "10:00", DurationMinutes: 45}},
		{"bad time", &Request{StaffID: 1, Date: testDate, StartTime: "25:00", DurationMinutes: 45}},
		{"zero duration", &Request{StaffID: 1, Date: testDate, StartTime: "10:00"}},
		{"slot past midnight", &Request{StaffID: 1, Date: testDate, StartTime: "23:30", DurationMinutes: 45}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := uc.Execute(context.Background(), tc.req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestExecute_PastDate(t *testing.T) {
	uc := newTestUseCase(&fakeHoldRepo{}, &fakeBookingRepo{}, 10, testNow)

	_, err := uc.Execute(context.Background(), &Request{
		StaffID:         1,
		Date:            testDate.AddDate(0, 0, -10),
		StartTime:       "10:00",
		DurationMinutes: 45,
	})

	assert.ErrorIs(t, err, ErrInvalidDate)
}
