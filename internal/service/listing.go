package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/stpnv0/StayBooker/internal/domain"
	"github.com/stpnv0/StayBooker/internal/service/ports"
)

type ListingService struct {
	repo ports.ListingRepo
}

func NewListingService(repo ports.ListingRepo) *ListingService {
	return &ListingService{repo: repo}
}

func (s *ListingService) Create(ctx context.Context, input domain.CreateListingInput) (*domain.Listing, error) {
	if input.OwnerID == "" {
		return nil, fmt.Errorf("%w: owner_id is required", domain.ErrValidation)
	}
	if input.Title == "" {
		return nil, fmt.Errorf("%w: title is required", domain.ErrValidation)
	}
	if input.Rates.NightlyRate <= 0 {
		return nil, fmt.Errorf("%w: nightly_rate must be positive", domain.ErrValidation)
	}
	if input.Rates.WeekendSurcharge < 0 || input.Rates.ExtraGuestFee < 0 {
		return nil, fmt.Errorf("%w: fees must be non-negative", domain.ErrValidation)
	}
	if input.Rates.MaxGuests <= 0 {
		return nil, fmt.Errorf("%w: max_guests must be positive", domain.ErrValidation)
	}
	if input.Rates.BaseGuests <= 0 || input.Rates.BaseGuests > input.Rates.MaxGuests {
		return nil, fmt.Errorf("%w: base_guests must be within [1, max_guests]", domain.ErrValidation)
	}
	if input.Rates.MinStay < 0 || (input.Rates.MaxStay > 0 && input.Rates.MaxStay < input.Rates.MinStay) {
		return nil, fmt.Errorf("%w: invalid stay bounds", domain.ErrValidation)
	}
	if input.Rates.Policy == "" {
		input.Rates.Policy = domain.PolicyModerate
	}
	if !input.Rates.Policy.Valid() {
		return nil, fmt.Errorf("%w: unknown cancellation policy", domain.ErrValidation)
	}

	now := time.Now().UTC()
	listing := &domain.Listing{
		ID:          uuid.New().String(),
		OwnerID:     input.OwnerID,
		Title:       input.Title,
		Description: input.Description,
		Rates:       input.Rates,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.repo.Create(ctx, listing); err != nil {
		return nil, fmt.Errorf("create listing: %w", err)
	}

	return listing, nil
}

func (s *ListingService) GetByID(ctx context.Context, id string) (*domain.Listing, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *ListingService) List(ctx context.Context) ([]*domain.Listing, error) {
	return s.repo.List(ctx)
}
