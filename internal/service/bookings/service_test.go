package bookings

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-ReservationService/internal/infra/storage/booking"
	"github.com/m04kA/SMC-ReservationService/internal/service/bookings/models"
)

type fakeBookingRepo struct {
	bookings map[int64]*domain.Booking

	cancelledID     int64
	cancelledReason string
	updatedStatus   domain.BookingStatus
}

func newFakeBookingRepo(bookings ...*domain.Booking) *fakeBookingRepo {
	repo := &fakeBookingRepo{bookings: make(map[int64]*domain.Booking)}
	for _, b := range bookings {
		repo.bookings[b.ID] = b
	}
	return repo
}

func (f *fakeBookingRepo) GetByID(_ context.Context, id int64) (*domain.Booking, error) {
	b, ok := f.bookings[id]
	if !ok {
		return nil, bookingRepo.ErrBookingNotFound
	}
	return b, nil
}

func (f *fakeBookingRepo) GetByClientID(_ context.Context, clientID int64, status *domain.BookingStatus) ([]*domain.Booking, error) {
	var result []*domain.Booking
	for _, b := range f.bookings {
		if b.ClientID != clientID {
			continue
		}
		if status != nil && b.Status != *status {
			continue
		}
		result = append(result, b)
	}
	return result, nil
}

func (f *fakeBookingRepo) GetByStaffWithFilter(_ context.Context, filter domain.StaffBookingsFilter) ([]*domain.Booking, error) {
	var result []*domain.Booking
	for _, b := range f.bookings {
		if b.StaffID == filter.StaffID {
			result = append(result, b)
		}
	}
	return result, nil
}

func (f *fakeBookingRepo) UpdateStatus(_ context.Context, id int64, status domain.BookingStatus) error {
	b, ok := f.bookings[id]
	if !ok {
		return bookingRepo.ErrBookingNotFound
	}
	b.Status = status
	f.updatedStatus = status
	return nil
}

func (f *fakeBookingRepo) Cancel(_ context.Context, id int64, reason string) error {
	b, ok := f.bookings[id]
	if !ok {
		return bookingRepo.ErrBookingNotFound
	}
	b.Status = domain.StatusCancelled
	f.cancelledID = id
	f.cancelledReason = reason
	return nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func confirmedBooking() *domain.Booking {
	return &domain.Booking{
		ID:              1,
		ClientID:        100,
		StaffID:         7,
		ServiceID:       3,
		BookingDate:     time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC),
		StartTime:       "10:00",
		DurationMinutes: 45,
		Status:          domain.StatusConfirmed,
		ServiceName:     "Стрижка",
		ServicePrice:    1500,
	}
}

func TestGetByID_OwnerAndStaffHaveAccess(t *testing.T) {
	svc := NewService(newFakeBookingRepo(confirmedBooking()), nopLogger{})

	byClient, err := svc.GetByID(context.Background(), 1, 100)
	require.NoError(t, err)
	assert.Equal(t, int64(1), byClient.ID)

	byStaff, err := svc.GetByID(context.Background(), 1, 7)
	require.NoError(t, err)
	assert.Equal(t, int64(1), byStaff.ID)
}

func TestGetByID_StrangerIsDenied(t *testing.T) {
	svc := NewService(newFakeBookingRepo(confirmedBooking()), nopLogger{})

	_, err := svc.GetByID(context.Background(), 1, 999)

	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestGetByID_NotFound(t *testing.T) {
	svc := NewService(newFakeBookingRepo(), nopLogger{})

	_, err := svc.GetByID(context.Background(), 42, 100)

	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestCancel_ByOwner(t *testing.T) {
	repo := newFakeBookingRepo(confirmedBooking())
	svc := NewService(repo, nopLogger{})

	err := svc.Cancel(context.Background(), 1, &models.CancelBookingRequest{
		UserID:             100,
		CancellationReason: "не смогу прийти",
	})

	require.NoError(t, err)
	assert.Equal(t, int64(1), repo.cancelledID)
	assert.Equal(t, "не смогу прийти", repo.cancelledReason)
}

func TestCancel_CompletedBookingCannotBeCancelled(t *testing.T) {
	booking := confirmedBooking()
	booking.Status = domain.StatusCompleted
	svc := NewService(newFakeBookingRepo(booking), nopLogger{})

	err := svc.Cancel(context.Background(), 1, &models.CancelBookingRequest{UserID: 100})

	assert.ErrorIs(t, err, ErrCannotCancel)
}

func TestCancel_ReasonTooLong(t *testing.T) {
	svc := NewService(newFakeBookingRepo(confirmedBooking()), nopLogger{})

	longReason := make([]byte, domain.MaxCancellationReasonLen+1)
	for i := range longReason {
		longReason[i] = 'a'
	}

	err := svc.Cancel(context.Background(), 1, &models.CancelBookingRequest{
		UserID:             100,
		CancellationReason: string(longReason),
	})

	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestUpdateStatus_OnlyStaffAllowed(t *testing.T) {
	repo := newFakeBookingRepo(confirmedBooking())
	svc := NewService(repo, nopLogger{})

	// клиент не может менять статус
	err := svc.UpdateStatus(context.Background(), 1, &models.UpdateStatusRequest{UserID: 100, Status: "completed"})
	assert.ErrorIs(t, err, ErrAccessDenied)

	// мастер может
	err = svc.UpdateStatus(context.Background(), 1, &models.UpdateStatusRequest{UserID: 7, Status: "completed"})
	require.NoError(t, err)
	assert.Equal(t, domain.StatusCompleted, repo.updatedStatus)
}

func TestUpdateStatus_CancellationGoesThroughCancel(t *testing.T) {
	svc := NewService(newFakeBookingRepo(confirmedBooking()), nopLogger{})

	err := svc.UpdateStatus(context.Background(), 1, &models.UpdateStatusRequest{UserID: 7, Status: "cancelled"})

	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestUpdateStatus_InvalidStatus(t *testing.T) {
	svc := NewService(newFakeBookingRepo(confirmedBooking()), nopLogger{})

	err := svc.UpdateStatus(context.Background(), 1, &models.UpdateStatusRequest{UserID: 7, Status: "done"})

	assert.ErrorIs(t, err, ErrInvalidStatus)
}

func TestGetClientBookings_FiltersByStatus(t *testing.T) {
	cancelled := confirmedBooking()
	cancelled.ID = 2
	cancelled.Status = domain.StatusCancelled
	svc := NewService(newFakeBookingRepo(confirmedBooking(), cancelled), nopLogger{})

	status := "confirmed"
	resp, err := svc.GetClientBookings(context.Background(), &models.GetClientBookingsRequest{
		ClientID: 100,
		Status:   &status,
	})

	require.NoError(t, err)
	require.Len(t, resp.Bookings, 1)
	assert.Equal(t, int64(1), resp.Bookings[0].ID)
}

func TestGetClientBookings_InvalidStatus(t *testing.T) {
	svc := NewService(newFakeBookingRepo(), nopLogger{})

	status := "done"
	_, err := svc.GetClientBookings(context.Background(), &models.GetClientBookingsRequest{
		ClientID: 100,
		Status:   &status,
	})

	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestGetStaffBookings_RejectsInvalidStaffID(t *testing.T) {
	svc := NewService(newFakeBookingRepo(), nopLogger{})

	_, err := svc.GetStaffBookings(context.Background(), &models.GetStaffBookingsRequest{StaffID: 0})

	assert.ErrorIs(t, err, ErrInvalidInput)
}
