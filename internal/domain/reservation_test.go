package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testReservation(status ReservationStatus) *Reservation {
	return &Reservation{
		ID:         "r1",
		ListingID:  "l1",
		GuestID:    "g1",
		Stay:       NewStay(date(2025, time.April, 10), date(2025, time.April, 15)),
		Guests:     2,
		TotalPrice: 1_000_000,
		Status:     status,
	}
}

func TestReservation_Confirm(t *testing.T) {
	now := date(2025, time.April, 1)

	r := testReservation(StatusRequested)
	require.NoError(t, r.Confirm(now))
	assert.Equal(t, StatusConfirmed, r.Status)
	require.NotNil(t, r.DecidedAt)
	assert.Equal(t, now, *r.DecidedAt)

	for _, status := range []ReservationStatus{StatusConfirmed, StatusRejected, StatusCancelled, StatusCompleted} {
		r := testReservation(status)
		assert.ErrorIs(t, r.Confirm(now), ErrInvalidState)
		assert.Equal(t, status, r.Status, "failed transition must not mutate")
	}
}

func TestReservation_Reject(t *testing.T) {
	now := date(2025, time.April, 1)

	r := testReservation(StatusRequested)
	require.NoError(t, r.Reject(now))
	assert.Equal(t, StatusRejected, r.Status)

	for _, status := range []ReservationStatus{StatusConfirmed, StatusRejected, StatusCancelled, StatusCompleted} {
		r := testReservation(status)
		assert.ErrorIs(t, r.Reject(now), ErrInvalidState)
		assert.Equal(t, status, r.Status)
	}
}

func TestReservation_Cancel(t *testing.T) {
	now := date(2025, time.April, 1)

	for _, status := range []ReservationStatus{StatusRequested, StatusConfirmed} {
		r := testReservation(status)
		require.NoError(t, r.Cancel("g1", "plans changed", 50, now))
		assert.Equal(t, StatusCancelled, r.Status)
		require.NotNil(t, r.CancelledBy)
		assert.Equal(t, "g1", *r.CancelledBy)
		assert.Equal(t, "plans changed", r.CancellationReason)
		assert.Equal(t, 50, r.RefundPercent)
	}

	for _, status := range []ReservationStatus{StatusRejected, StatusCancelled, StatusCompleted} {
		r := testReservation(status)
		assert.ErrorIs(t, r.Cancel("g1", "", 0, now), ErrInvalidState)
		assert.Equal(t, status, r.Status)
		assert.Nil(t, r.CancelledBy)
	}
}

func TestReservation_Complete(t *testing.T) {
	r := testReservation(StatusConfirmed)

	// До чек-аута завершать нельзя.
	assert.ErrorIs(t, r.Complete(date(2025, time.April, 14)), ErrInvalidState)
	assert.Equal(t, StatusConfirmed, r.Status)

	require.NoError(t, r.Complete(date(2025, time.April, 15)))
	assert.Equal(t, StatusCompleted, r.Status)

	for _, status := range []ReservationStatus{StatusRequested, StatusRejected, StatusCancelled, StatusCompleted} {
		r := testReservation(status)
		assert.ErrorIs(t, r.Complete(date(2025, time.April, 20)), ErrInvalidState)
		assert.Equal(t, status, r.Status)
	}
}

func TestReservation_EffectiveStatus(t *testing.T) {
	r := testReservation(StatusConfirmed)

	assert.Equal(t, StatusConfirmed, r.EffectiveStatus(date(2025, time.April, 14)))
	assert.Equal(t, StatusCompleted, r.EffectiveStatus(date(2025, time.April, 15)))
	assert.Equal(t, StatusCompleted, r.EffectiveStatus(date(2025, time.April, 20)))

	// Хранимый статус не меняется, это только представление для чтения.
	assert.Equal(t, StatusConfirmed, r.Status)

	requested := testReservation(StatusRequested)
	assert.Equal(t, StatusRequested, requested.EffectiveStatus(date(2025, time.April, 20)))
}

func TestReservation_RefundAmount(t *testing.T) {
	r := testReservation(StatusCancelled)
	r.TotalPrice = 3_685_000

	r.RefundPercent = 100
	assert.Equal(t, int64(3_685_000), r.RefundAmount())

	r.RefundPercent = 50
	assert.Equal(t, int64(1_842_500), r.RefundAmount())

	r.RefundPercent = 0
	assert.Equal(t, int64(0), r.RefundAmount())
}

func TestReservationStatus_Occupies(t *testing.T) {
	assert.True(t, StatusRequested.Occupies())
	assert.True(t, StatusConfirmed.Occupies())
	assert.False(t, StatusRejected.Occupies())
	assert.False(t, StatusCancelled.Occupies())
	assert.False(t, StatusCompleted.Occupies())
}

func TestReservationStatus_Terminal(t *testing.T) {
	assert.False(t, StatusRequested.Terminal())
	assert.False(t, StatusConfirmed.Terminal())
	assert.True(t, StatusRejected.Terminal())
	assert.True(t, StatusCancelled.Terminal())
	assert.True(t, StatusCompleted.Terminal())
}
