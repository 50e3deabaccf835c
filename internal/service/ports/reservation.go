package ports

import (
	"context"
	"time"

	"github.com/stpnv0/StayBooker/internal/domain"
)

type ReservationRepo interface {
	Create(ctx context.Context, r *domain.Reservation) error
	GetByID(ctx context.Context, id string) (*domain.Reservation, error)
	Update(ctx context.Context, r *domain.Reservation) error
	ListByGuest(ctx context.Context, guestID string) ([]*domain.Reservation, error)
	ListByListing(ctx context.Context, listingID string) ([]*domain.Reservation, error)
	ListOccupying(ctx context.Context) ([]*domain.Reservation, error)
	ListElapsedConfirmed(ctx context.Context, before time.Time) ([]*domain.Reservation, error)
}
