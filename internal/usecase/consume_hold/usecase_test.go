package consume_hold

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
	storageHold "github.com/m04kA/SMC-ReservationService/internal/infra/storage/hold"
	storageService "github.com/m04kA/SMC-ReservationService/internal/infra/storage/service"
	"github.com/m04kA/SMC-ReservationService/pkg/ptr"
	"github.com/m04kA/SMC-ReservationService/pkg/types"
)

type fakeHoldRepo struct {
	holds map[int64]*domain.Hold
}

func (f *fakeHoldRepo) GetByID(_ context.Context, id int64) (*domain.Hold, error) {
	h, ok := f.holds[id]
	if !ok {
		return nil, storageHold.ErrHoldNotFound
	}
	return h, nil
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

func (f *fakeHoldRepo) Transition(_ context.Context, id int64, ownerToken string, to domain.HoldState) error {
	h, ok := f.holds[id]
	if !ok || h.OwnerToken != ownerToken || h.State != domain.HoldActive {
		return storageHold.ErrStaleHold
	}
	h.State = to
	return nil
}

type fakeBookingRepo struct {
	bookings []*domain.Booking
	nextID   int64
}

func (f *fakeBookingRepo) Create(_ context.Context, booking *domain.Booking) (*domain.Booking, error) {
	f.nextID++
	booking.ID = f.nextID
	f.bookings = append(f.bookings, booking)
	return booking, nil
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

type fakeServiceRepo struct {
	services map[int64]*domain.Service
}

func (f *fakeServiceRepo) GetByID(_ context.Context, id int64) (*domain.Service, error) {
	svc, ok := f.services[id]
	if !ok {
		return nil, storageService.ErrServiceNotFound
	}
	return svc, nil
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

func liveHold(id int64) *domain.Hold {
	return &domain.Hold{
		ID:              id,
		StaffID:         1,
		HoldDate:        testDate,
		StartTime:       "10:00",
		DurationMinutes: 45,
		OwnerToken:      "owner-token",
		ExpiresAt:       testNow.Add(5 * time.Minute),
		State:           domain.HoldActive,
	}
}

func testService() *domain.Service {
	return &domain.Service{ID: 10, Name: "Стрижка", Price: 1500, DurationMinutes: 45}
}

func newTestUseCase(holds *fakeHoldRepo, bookings *fakeBookingRepo, services *fakeServiceRepo) *UseCase {
	uc := NewUseCase(holds, bookings, services, fakeTxManager{}, nopLogger{})
	uc.timeProvider = &fixedClock{now: testNow}
	return uc
}

func validRequest() *Request {
	return &Request{
		HoldID:     1,
		OwnerToken: "owner-token",
		ClientID:   7,
		ServiceID:  10,
	}
}

func TestExecute_ConsumesHoldIntoBooking(t *testing.T) {
	holds := &fakeHoldRepo{holds: map[int64]*domain.Hold{1: liveHold(1)}}
	bookings := &fakeBookingRepo{}
	services := &fakeServiceRepo{services: map[int64]*domain.Service{10: testService()}}

	uc := newTestUseCase(holds, bookings, services)

	req := validRequest()
	req.Notes = ptr.Ptr("просьба не опаздывать")

	resp, err := uc.Execute(context.Background(), req)

	require.NoError(t, err)
	assert.Equal(t, int64(1), resp.BookingID)
	assert.Equal(t, int64(7), resp.ClientID)
	assert.Equal(t, int64(1), resp.StaffID)
	assert.Equal(t, string(domain.StatusConfirmed), resp.Status)
	assert.Equal(t, "Стрижка", resp.ServiceName)
	assert.Equal(t, 1500.0, resp.ServicePrice)

	// Время начала и длительность скопированы без изменений
	assert.Equal(t, types.TimeString("10:00"), resp.StartTime)
	assert.Equal(t, 45, resp.DurationMinutes)
	assert.Equal(t, testDate, resp.BookingDate)

	// Hold переведён в consumed
	assert.Equal(t, domain.HoldConsumed, holds.holds[1].State)
	require.Len(t, bookings.bookings, 1)
}

func TestExecute_HoldNotFound(t *testing.T) {
	uc := newTestUseCase(
		&fakeHoldRepo{holds: map[int64]*domain.Hold{}},
		&fakeBookingRepo{},
		&fakeServiceRepo{services: map[int64]*domain.Service{10: testService()}},
	)

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrHoldNotFound)
}

func TestExecute_NotOwner(t *testing.T) {
	holds := &fakeHoldRepo{holds: map[int64]*domain.Hold{1: liveHold(1)}}
	uc := newTestUseCase(holds, &fakeBookingRepo{},
		&fakeServiceRepo{services: map[int64]*domain.Service{10: testService()}})

	req := validRequest()
	req.OwnerToken = "stranger-token"

	_, err := uc.Execute(context.Background(), req)

	assert.ErrorIs(t, err, ErrNotOwner)
	assert.Equal(t, domain.HoldActive, holds.holds[1].State)
}

func TestExecute_ExpiredHold(t *testing.T) {
	hold := liveHold(1)
	hold.ExpiresAt = testNow.Add(-time.Second) // state всё ещё active

	holds := &fakeHoldRepo{holds: map[int64]*domain.Hold{1: hold}}
	uc := newTestUseCase(holds, &fakeBookingRepo{},
		&fakeServiceRepo{services: map[int64]*domain.Service{10: testService()}})

	_, err := uc.Execute(context.Background(), validRequest())

	assert.ErrorIs(t, err, ErrHoldExpired)
}

func TestExecute_TerminalHold(t *testing.T) {
	for _, state := range []domain.HoldState{domain.HoldReleased, domain.HoldConsumed, domain.HoldExpired} {
		t.Run(string(state), func(t *testing.T) {
			hold := liveHold(1)
			hold.State = state

			holds := &fakeHoldRepo{holds: map[int64]*domain.Hold{1: hold}}
			uc := newTestUseCase(holds, &fakeBookingRepo{},
				&fakeServiceRepo{services: map[int64]*domain.Service{10: testService()}})

			_, err := uc.Execute(context.Background(), validRequest())

			assert.ErrorIs(t, err, ErrHoldExpired)
			// Терминальное состояние финально
			assert.Equal(t, state, holds.holds[1].State)
		})
	}
}

func TestExecute_ConflictWithBooking(t *testing.T) {
	holds := &fakeHoldRepo{holds: map[int64]*domain.Hold{1: liveHold(1)}}
	bookings := &fakeBookingRepo{bookings: []*domain.Booking{
		{
			ID:              99,
			StaffID:         1,
			BookingDate:     testDate,
			StartTime:       "10:30",
			DurationMinutes: 30,
			Status:          domain.StatusScheduled,
		},
	}}
	bookings.nextID = 99

	uc := newTestUseCase(holds, bookings,
		&fakeServiceRepo{services: map[int64]*domain.Service{10: testService()}})

	_, err := uc.Execute(context.Background(), validRequest())

	assert.ErrorIs(t, err, ErrSlotConflict)
	assert.Equal(t, domain.HoldActive, holds.holds[1].State)
}

func TestExecute_OwnHoldDoesNotConflict(t *testing.T) {
	// Чужой hold на другое время не мешает, собственный не считается конфликтом
	other := liveHold(2)
	other.StartTime = "12:00"
	other.OwnerToken = "someone-else"

	holds := &fakeHoldRepo{holds: map[int64]*domain.Hold{1: liveHold(1), 2: other}}
	uc := newTestUseCase(holds, &fakeBookingRepo{},
		&fakeServiceRepo{services: map[int64]*domain.Service{10: testService()}})

	resp, err := uc.Execute(context.Background(), validRequest())

	require.NoError(t, err)
	assert.NotZero(t, resp.BookingID)
}

func TestExecute_ConflictWithForeignHold(t *testing.T) {
	other := liveHold(2)
	other.StartTime = "10:15"
	other.OwnerToken = "someone-else"

	holds := &fakeHoldRepo{holds: map[int64]*domain.Hold{1: liveHold(1), 2: other}}
	uc := newTestUseCase(holds, &fakeBookingRepo{},
		&fakeServiceRepo{services: map[int64]*domain.Service{10: testService()}})

	_, err := uc.Execute(context.Background(), validRequest())

	assert.ErrorIs(t, err, ErrSlotConflict)
}

func TestExecute_ServiceNotFound(t *testing.T) {
	holds := &fakeHoldRepo{holds: map[int64]*domain.Hold{1: liveHold(1)}}
	uc := newTestUseCase(holds, &fakeBookingRepo{},
		&fakeServiceRepo{services: map[int64]*domain.Service{}})

	_, err := uc.Execute(context.Background(), validRequest())

	assert.ErrorIs(t, err, ErrServiceNotFound)
}

func TestExecute_InvalidInput(t *testing.T) {
	uc := newTestUseCase(
		&fakeHoldRepo{holds: map[int64]*domain.Hold{}},
		&fakeBookingRepo{},
		&fakeServiceRepo{},
	)

	cases := []struct {
		name string
		req  *Request
	}{
		{"zero hold", &Request{OwnerToken: "t", ClientID: 1, ServiceID: 1}},
		{"empty token", &Request{HoldID: 1, ClientID: 1, ServiceID: 1}},
		{"zero client", &Request{HoldID: 1, OwnerToken: "t", ServiceID: 1}},
		{"zero service", &Request{HoldID: 1, OwnerToken: "t", ClientID: 1}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := uc.Execute(context.Background(), tc.req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}
