package resolve_overlaps

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{}) {}
func (nopLogger) Warn(string, ...interface{}) {}

func laneByID(t *testing.T, resp *Response, id int64) int {
	t.Helper()
	for _, a := range resp.Appointments {
		if a.ID == id {
			return a.Lane
		}
	}
	t.Fatalf("appointment id=%d not found in response", id)
	return -1
}

func TestExecute_NonOverlappingShareOneLane(t *testing.T) {
	uc := NewUseCase(nopLogger{})

	resp, err := uc.Execute(&Request{Appointments: []Appointment{
		{ID: 1, StartTime: "09:00", DurationMinutes: 60},
		{ID: 2, StartTime: "10:00", DurationMinutes: 60},
		{ID: 3, StartTime: "11:00", DurationMinutes: 60},
	}})

	require.NoError(t, err)
	assert.Equal(t, 1, resp.Lanes)
	for _, a := range resp.Appointments {
		assert.Equal(t, 0, a.Lane)
	}
}

func TestExecute_OverlappingGetSeparateLanes(t *testing.T) {
	uc := NewUseCase(nopLogger{})

	resp, err := uc.Execute(&Request{Appointments: []Appointment{
		{ID: 1, StartTime: "09:00", DurationMinutes: 120},
		{ID: 2, StartTime: "09:30", DurationMinutes: 60},
		{ID: 3, StartTime: "10:00", DurationMinutes: 60},
	}})

	require.NoError(t, err)
	// В 10:00-10:30 идут все три записи одновременно
	assert.Equal(t, 3, resp.Lanes)
	assert.Equal(t, 0, laneByID(t, resp, 1))
	assert.Equal(t, 1, laneByID(t, resp, 2))
	assert.Equal(t, 2, laneByID(t, resp, 3))
}

func TestExecute_LaneIsReusedAfterItFrees(t *testing.T) {
	uc := NewUseCase(nopLogger{})

	resp, err := uc.Execute(&Request{Appointments: []Appointment{
		{ID: 1, StartTime: "09:00", DurationMinutes: 60},
		{ID: 2, StartTime: "09:30", DurationMinutes: 30},
		{ID: 3, StartTime: "10:00", DurationMinutes: 60}, // колонка 0 уже свободна
	}})

	require.NoError(t, err)
	assert.Equal(t, 2, resp.Lanes)
	assert.Equal(t, 0, laneByID(t, resp, 1))
	assert.Equal(t, 1, laneByID(t, resp, 2))
	assert.Equal(t, 0, laneByID(t, resp, 3))
}

func TestExecute_TouchingBoundariesShareLane(t *testing.T) {
	uc := NewUseCase(nopLogger{})

	// [09:00, 10:00) и [10:00, 11:00) не пересекаются
	resp, err := uc.Execute(&Request{Appointments: []Appointment{
		{ID: 1, StartTime: "09:00", DurationMinutes: 60},
		{ID: 2, StartTime: "10:00", DurationMinutes: 60},
	}})

	require.NoError(t, err)
	assert.Equal(t, 1, resp.Lanes)
}

func TestExecute_EqualStartsOrderedByID(t *testing.T) {
	uc := NewUseCase(nopLogger{})

	resp, err := uc.Execute(&Request{Appointments: []Appointment{
		{ID: 5, StartTime: "09:00", DurationMinutes: 30},
		{ID: 2, StartTime: "09:00", DurationMinutes: 30},
	}})

	require.NoError(t, err)
	assert.Equal(t, 2, resp.Lanes)
	assert.Equal(t, 0, laneByID(t, resp, 2))
	assert.Equal(t, 1, laneByID(t, resp, 5))
}

func TestExecute_LanesEqualMaxSimultaneous(t *testing.T) {
	uc := NewUseCase(nopLogger{})

	// Максимум одновременно: 2 (в 09:30-10:00 и в 10:30-11:00)
	resp, err := uc.Execute(&Request{Appointments: []Appointment{
		{ID: 1, StartTime: "09:00", DurationMinutes: 60},
		{ID: 2, StartTime: "09:30", DurationMinutes: 90},
		{ID: 3, StartTime: "10:30", DurationMinutes: 30},
	}})

	require.NoError(t, err)
	assert.Equal(t, 2, resp.Lanes)
}

func TestExecute_EmptyInput(t *testing.T) {
	uc := NewUseCase(nopLogger{})

	resp, err := uc.Execute(&Request{})

	require.NoError(t, err)
	assert.Equal(t, 0, resp.Lanes)
	assert.Empty(t, resp.Appointments)
}

func TestExecute_InvalidInput(t *testing.T) {
	uc := NewUseCase(nopLogger{})

	cases := []struct {
		name string
		req  *Request
	}{
		{"zero id", &Request{Appointments: []Appointment{{StartTime: "09:00", DurationMinutes: 30}}}},
		{"bad time", &Request{Appointments: []Appointment{{ID: 1, StartTime: "9 am", DurationMinutes: 30}}}},
		{"zero duration", &Request{Appointments: []Appointment{{ID: 1, StartTime: "09:00"}}}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := uc.Execute(tc.req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}
