package dto

type CreateListingRequest struct {
	OwnerID            string `json:"owner_id" binding:"required,uuid"`
	Title              string `json:"title" binding:"required"`
	Description        string `json:"description"`
	NightlyRate        int64  `json:"nightly_rate" binding:"required,gt=0"`
	WeekendSurcharge   int64  `json:"weekend_surcharge" binding:"gte=0"`
	ExtraGuestFee      int64  `json:"extra_guest_fee" binding:"gte=0"`
	BaseGuests         int    `json:"base_guests" binding:"required,gt=0"`
	MaxGuests          int    `json:"max_guests" binding:"required,gt=0"`
	MinStay            int    `json:"min_stay" binding:"gte=0"`
	MaxStay            int    `json:"max_stay" binding:"gte=0"`
	CancellationPolicy string `json:"cancellation_policy"`
}

type AvailabilityRequest struct {
	CheckIn  string `json:"check_in" binding:"required"`
	CheckOut string `json:"check_out" binding:"required"`
	Guests   int    `json:"guests" binding:"required,gt=0"`
}

type QuoteRequest struct {
	CheckIn  string `json:"check_in" binding:"required"`
	CheckOut string `json:"check_out" binding:"required"`
	Guests   int    `json:"guests" binding:"required,gt=0"`
}

type ProposeRequest struct {
	GuestID  string `json:"guest_id" binding:"required,uuid"`
	CheckIn  string `json:"check_in" binding:"required"`
	CheckOut string `json:"check_out" binding:"required"`
	Guests   int    `json:"guests" binding:"required,gt=0"`
}

type RespondRequest struct {
	ActorID string `json:"actor_id" binding:"required,uuid"`
	Accept  *bool  `json:"accept" binding:"required"`
}

type CancelRequest struct {
	ActorID string `json:"actor_id" binding:"required,uuid"`
	Reason  string `json:"reason"`
}
