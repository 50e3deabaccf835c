package service

import (
	"context"
	"testing"

	"github.com/stpnv0/StayBooker/internal/domain"
	"github.com/stpnv0/StayBooker/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func validListingInput() domain.CreateListingInput {
	return domain.CreateListingInput{
		OwnerID:     "owner",
		Title:       "Cabin by the lake",
		Description: "Quiet place",
		Rates: domain.RateConfig{
			NightlyRate:      1_000_000,
			WeekendSurcharge: 200_000,
			ExtraGuestFee:    50_000,
			BaseGuests:       2,
			MaxGuests:        4,
			MinStay:          1,
			Policy:           domain.PolicyModerate,
		},
	}
}

func TestListingService_Create(t *testing.T) {
	repo := mocks.NewMockListingRepo(t)
	svc := NewListingService(repo)

	repo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)

	listing, err := svc.Create(context.Background(), validListingInput())

	require.NoError(t, err)
	assert.NotEmpty(t, listing.ID)
	assert.Equal(t, "owner", listing.OwnerID)
	assert.Equal(t, domain.PolicyModerate, listing.Rates.Policy)
}

func TestListingService_Create_DefaultsPolicyToModerate(t *testing.T) {
	repo := mocks.NewMockListingRepo(t)
	svc := NewListingService(repo)

	repo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)

	input := validListingInput()
	input.Rates.Policy = ""

	listing, err := svc.Create(context.Background(), input)

	require.NoError(t, err)
	assert.Equal(t, domain.PolicyModerate, listing.Rates.Policy)
}

func TestListingService_Create_Validation(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*domain.CreateListingInput)
	}{
		{"missing owner", func(in *domain.CreateListingInput) { in.OwnerID = "" }},
		{"missing title", func(in *domain.CreateListingInput) { in.Title = "" }},
		{"zero nightly rate", func(in *domain.CreateListingInput) { in.Rates.NightlyRate = 0 }},
		{"negative surcharge", func(in *domain.CreateListingInput) { in.Rates.WeekendSurcharge = -1 }},
		{"negative guest fee", func(in *domain.CreateListingInput) { in.Rates.ExtraGuestFee = -1 }},
		{"zero max guests", func(in *domain.CreateListingInput) { in.Rates.MaxGuests = 0 }},
		{"base above max", func(in *domain.CreateListingInput) { in.Rates.BaseGuests = 5 }},
		{"zero base guests", func(in *domain.CreateListingInput) { in.Rates.BaseGuests = 0 }},
		{"max stay below min", func(in *domain.CreateListingInput) { in.Rates.MinStay = 5; in.Rates.MaxStay = 2 }},
		{"unknown policy", func(in *domain.CreateListingInput) { in.Rates.Policy = "super" }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			repo := mocks.NewMockListingRepo(t)
			svc := NewListingService(repo)

			input := validListingInput()
			tc.mutate(&input)

			_, err := svc.Create(context.Background(), input)

			assert.ErrorIs(t, err, domain.ErrValidation)
		})
	}
}

func TestListingService_GetByID_NotFound(t *testing.T) {
	repo := mocks.NewMockListingRepo(t)
	svc := NewListingService(repo)

	repo.EXPECT().GetByID(mock.Anything, "missing").Return(nil, domain.ErrListingNotFound)

	_, err := svc.GetByID(context.Background(), "missing")

	assert.ErrorIs(t, err, domain.ErrListingNotFound)
}
