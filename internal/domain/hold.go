package domain

import (
	"time"

	"github.com/m04kA/SMC-ReservationService/pkg/types"
)

// HoldState represents the lifecycle state of a hold
type HoldState string

const (
	HoldActive   HoldState = "active"
	HoldReleased HoldState = "released"
	HoldConsumed HoldState = "consumed"
	HoldExpired  HoldState = "expired"
)

// Hold is a time-boxed soft lock on a staff+time slot, created during
// checkout before the booking is confirmed
//
// Expiry is lazy: a hold with ExpiresAt <= now is treated as absent by
// every reader regardless of the stored State. The reaper only flips
// stale rows for bookkeeping, correctness never depends on it
type Hold struct {
	ID              int64
	StaffID         int64
	HoldDate        time.Time
	StartTime       types.TimeString
	DurationMinutes int
	OwnerToken      string
	ExpiresAt       time.Time
	State           HoldState
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// IsTerminal returns true if the hold reached a final state
// No transitions are permitted out of a terminal state
func (h *Hold) IsTerminal() bool {
	return h.State == HoldReleased || h.State == HoldConsumed || h.State == HoldExpired
}

// IsExpiredAt returns true if the hold's TTL passed at the given moment,
// regardless of the stored state
func (h *Hold) IsExpiredAt(now time.Time) bool {
	return !h.ExpiresAt.After(now)
}

// IsLiveAt returns true if the hold still blocks its slot at the given moment
func (h *Hold) IsLiveAt(now time.Time) bool {
	return h.State == HoldActive && !h.IsExpiredAt(now)
}

// IsOwnedBy returns true if the given token owns the hold
func (h *Hold) IsOwnedBy(ownerToken string) bool {
	return h.OwnerToken == ownerToken
}

// RemainingSeconds returns the client-facing countdown, derived on demand
// as max(0, ExpiresAt - now); no countdown state is ever persisted
func (h *Hold) RemainingSeconds(now time.Time) int64 {
	remaining := h.ExpiresAt.Sub(now)
	if remaining < 0 {
		return 0
	}
	return int64(remaining.Seconds())
}

// Interval returns the held interval [StartTime, StartTime+Duration)
func (h *Hold) Interval() (MinuteRange, error) {
	start, err := h.StartTime.Minutes()
	if err != nil {
		return MinuteRange{}, err
	}
	return MinuteRange{Start: start, End: start + h.DurationMinutes}, nil
}
