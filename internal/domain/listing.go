package domain

import "time"

// RateConfig holds the pricing and stay rules of a listing. All money values
// are integers in the smallest currency unit. The reservation engine only
// reads it.
type RateConfig struct {
	NightlyRate      int64              `json:"nightly_rate"`
	WeekendSurcharge int64              `json:"weekend_surcharge"`
	ExtraGuestFee    int64              `json:"extra_guest_fee"`
	BaseGuests       int                `json:"base_guests"`
	MaxGuests        int                `json:"max_guests"`
	MinStay          int                `json:"min_stay"`
	MaxStay          int                `json:"max_stay"` // 0 = unbounded
	Policy           CancellationPolicy `json:"cancellation_policy"`
}

type Listing struct {
	ID          string     `json:"id"`
	OwnerID     string     `json:"owner_id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Rates       RateConfig `json:"rates"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

type CreateListingInput struct {
	OwnerID     string
	Title       string
	Description string
	Rates       RateConfig
}
