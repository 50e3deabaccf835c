package domain

import "time"

type ReservationStatus string

const (
	StatusRequested ReservationStatus = "requested"
	StatusConfirmed ReservationStatus = "confirmed"
	StatusRejected  ReservationStatus = "rejected"
	StatusCancelled ReservationStatus = "cancelled"
	StatusCompleted ReservationStatus = "completed"
)

// OccupyingStatuses are the statuses that hold the calendar.
var OccupyingStatuses = []ReservationStatus{StatusRequested, StatusConfirmed}

func (s ReservationStatus) Occupies() bool {
	return s == StatusRequested || s == StatusConfirmed
}

func (s ReservationStatus) Terminal() bool {
	return s == StatusRejected || s == StatusCancelled || s == StatusCompleted
}

type Reservation struct {
	ID                 string            `json:"id"`
	ListingID          string            `json:"listing_id"`
	GuestID            string            `json:"guest_id"`
	Stay               Stay              `json:"stay"`
	Guests             int               `json:"guests"`
	TotalPrice         int64             `json:"total_price"`
	Status             ReservationStatus `json:"status"`
	CreatedAt          time.Time         `json:"created_at"`
	UpdatedAt          time.Time         `json:"updated_at"`
	DecidedAt          *time.Time        `json:"decided_at,omitempty"`
	CancelledBy        *string           `json:"cancelled_by,omitempty"`
	CancellationReason string            `json:"cancellation_reason,omitempty"`
	RefundPercent      int               `json:"refund_percent"`
}

// Confirm applies the ownerAccept transition.
func (r *Reservation) Confirm(now time.Time) error {
	if r.Status != StatusRequested {
		return ErrInvalidState
	}
	r.Status = StatusConfirmed
	r.DecidedAt = &now
	r.UpdatedAt = now
	return nil
}

// Reject applies the ownerReject transition. The caller must release the
// calendar hold in the same critical section.
func (r *Reservation) Reject(now time.Time) error {
	if r.Status != StatusRequested {
		return ErrInvalidState
	}
	r.Status = StatusRejected
	r.DecidedAt = &now
	r.UpdatedAt = now
	return nil
}

// Cancel applies the cancel transition from requested or confirmed. The
// refund percent is evaluated once, here, and never recomputed.
func (r *Reservation) Cancel(actorID, reason string, refundPercent int, now time.Time) error {
	if r.Status != StatusRequested && r.Status != StatusConfirmed {
		return ErrInvalidState
	}
	r.Status = StatusCancelled
	r.CancelledBy = &actorID
	r.CancellationReason = reason
	r.RefundPercent = refundPercent
	r.DecidedAt = &now
	r.UpdatedAt = now
	return nil
}

// Complete applies the time-driven checkOutElapsed transition.
func (r *Reservation) Complete(now time.Time) error {
	if r.Status != StatusConfirmed {
		return ErrInvalidState
	}
	if now.Before(r.Stay.CheckOut) {
		return ErrInvalidState
	}
	r.Status = StatusCompleted
	r.UpdatedAt = now
	return nil
}

// EffectiveStatus treats a confirmed stay whose check-out has passed as
// completed, so reads do not depend on the sweep having run.
func (r *Reservation) EffectiveStatus(now time.Time) ReservationStatus {
	if r.Status == StatusConfirmed && !now.Before(r.Stay.CheckOut) {
		return StatusCompleted
	}
	return r.Status
}

// RefundAmount derives the refund from the stored percent; integer division,
// remainder stays with the platform.
func (r *Reservation) RefundAmount() int64 {
	return r.TotalPrice * int64(r.RefundPercent) / 100
}

type ProposeInput struct {
	ListingID string
	GuestID   string
	Stay      Stay
	Guests    int
}

// Availability is the advisory answer of CheckAvailability; Conflicts lists
// the occupying stays that collide with the requested range.
type Availability struct {
	Available bool   `json:"available"`
	Conflicts []Stay `json:"conflicts"`
}

type CancellationResult struct {
	Reservation  *Reservation `json:"reservation"`
	RefundAmount int64        `json:"refund_amount"`
}
