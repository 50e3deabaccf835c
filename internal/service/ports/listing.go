package ports

import (
	"context"

	"github.com/stpnv0/StayBooker/internal/domain"
)

type ListingRepo interface {
	Create(ctx context.Context, l *domain.Listing) error
	GetByID(ctx context.Context, id string) (*domain.Listing, error)
	List(ctx context.Context) ([]*domain.Listing, error)
	GetRateConfig(ctx context.Context, id string) (*domain.RateConfig, error)
	GetOwnerID(ctx context.Context, id string) (string, error)
}
