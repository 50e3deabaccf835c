package ports

import (
	"context"

	"github.com/stpnv0/StayBooker/internal/domain"
)

// ReservationNotifier receives a domain event after every state transition.
// Delivery is fire-and-forget; the engine never waits on it.
type ReservationNotifier interface {
	NotifyRequested(ctx context.Context, r *domain.Reservation)
	NotifyConfirmed(ctx context.Context, r *domain.Reservation)
	NotifyRejected(ctx context.Context, r *domain.Reservation)
	NotifyCancelled(ctx context.Context, r *domain.Reservation)
	NotifyCompleted(ctx context.Context, r *domain.Reservation)
}
