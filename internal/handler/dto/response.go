package dto

import (
	"time"

	"github.com/stpnv0/StayBooker/internal/domain"
	"github.com/stpnv0/StayBooker/internal/pricing"
)

const dateLayout = "2006-01-02"

type ListingResponse struct {
	ID                 string `json:"id"`
	OwnerID            string `json:"owner_id"`
	Title              string `json:"title"`
	Description        string `json:"description"`
	NightlyRate        int64  `json:"nightly_rate"`
	WeekendSurcharge   int64  `json:"weekend_surcharge"`
	ExtraGuestFee      int64  `json:"extra_guest_fee"`
	BaseGuests         int    `json:"base_guests"`
	MaxGuests          int    `json:"max_guests"`
	MinStay            int    `json:"min_stay"`
	MaxStay            int    `json:"max_stay"`
	CancellationPolicy string `json:"cancellation_policy"`
	CreatedAt          string `json:"created_at"`
}

type StayResponse struct {
	CheckIn  string `json:"check_in"`
	CheckOut string `json:"check_out"`
}

type ReservationResponse struct {
	ID                 string       `json:"id"`
	ListingID          string       `json:"listing_id"`
	GuestID            string       `json:"guest_id"`
	Stay               StayResponse `json:"stay"`
	Guests             int          `json:"guests"`
	TotalPrice         int64        `json:"total_price"`
	Status             string       `json:"status"`
	CreatedAt          string       `json:"created_at"`
	DecidedAt          *string      `json:"decided_at,omitempty"`
	CancelledBy        *string      `json:"cancelled_by,omitempty"`
	CancellationReason string       `json:"cancellation_reason,omitempty"`
	RefundPercent      int          `json:"refund_percent,omitempty"`
}

type AvailabilityResponse struct {
	Available bool           `json:"available"`
	Conflicts []StayResponse `json:"conflicts"`
}

type NightPriceResponse struct {
	Date    string `json:"date"`
	Price   int64  `json:"price"`
	Weekend bool   `json:"weekend"`
}

type QuoteResponse struct {
	Nights        int                  `json:"nights"`
	Breakdown     []NightPriceResponse `json:"breakdown"`
	BasePrice     int64                `json:"base_price"`
	WeekendNights int                  `json:"weekend_nights"`
	ExtraGuestFee int64                `json:"extra_guest_fee"`
	ServiceFee    int64                `json:"service_fee"`
	Total         int64                `json:"total"`
}

type CancellationResponse struct {
	Reservation  ReservationResponse `json:"reservation"`
	RefundAmount int64               `json:"refund_amount"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

func ToListingResponse(l *domain.Listing) ListingResponse {
	return ListingResponse{
		ID:                 l.ID,
		OwnerID:            l.OwnerID,
		Title:              l.Title,
		Description:        l.Description,
		NightlyRate:        l.Rates.NightlyRate,
		WeekendSurcharge:   l.Rates.WeekendSurcharge,
		ExtraGuestFee:      l.Rates.ExtraGuestFee,
		BaseGuests:         l.Rates.BaseGuests,
		MaxGuests:          l.Rates.MaxGuests,
		MinStay:            l.Rates.MinStay,
		MaxStay:            l.Rates.MaxStay,
		CancellationPolicy: string(l.Rates.Policy),
		CreatedAt:          l.CreatedAt.Format(time.RFC3339),
	}
}

func ToStayResponse(s domain.Stay) StayResponse {
	return StayResponse{
		CheckIn:  s.CheckIn.Format(dateLayout),
		CheckOut: s.CheckOut.Format(dateLayout),
	}
}

func ToReservationResponse(r *domain.Reservation) ReservationResponse {
	resp := ReservationResponse{
		ID:                 r.ID,
		ListingID:          r.ListingID,
		GuestID:            r.GuestID,
		Stay:               ToStayResponse(r.Stay),
		Guests:             r.Guests,
		TotalPrice:         r.TotalPrice,
		Status:             string(r.Status),
		CreatedAt:          r.CreatedAt.Format(time.RFC3339),
		CancelledBy:        r.CancelledBy,
		CancellationReason: r.CancellationReason,
		RefundPercent:      r.RefundPercent,
	}
	if r.DecidedAt != nil {
		decided := r.DecidedAt.Format(time.RFC3339)
		resp.DecidedAt = &decided
	}
	return resp
}

func ToAvailabilityResponse(a *domain.Availability) AvailabilityResponse {
	conflicts := make([]StayResponse, 0, len(a.Conflicts))
	for _, c := range a.Conflicts {
		conflicts = append(conflicts, ToStayResponse(c))
	}
	return AvailabilityResponse{Available: a.Available, Conflicts: conflicts}
}

func ToQuoteResponse(q *pricing.Quote) QuoteResponse {
	breakdown := make([]NightPriceResponse, 0, len(q.Breakdown))
	for _, n := range q.Breakdown {
		breakdown = append(breakdown, NightPriceResponse{
			Date:    n.Date.Format(dateLayout),
			Price:   n.Price,
			Weekend: n.Weekend,
		})
	}
	return QuoteResponse{
		Nights:        q.Nights,
		Breakdown:     breakdown,
		BasePrice:     q.BasePrice,
		WeekendNights: q.WeekendNights,
		ExtraGuestFee: q.ExtraGuestFee,
		ServiceFee:    q.ServiceFee,
		Total:         q.Total,
	}
}

func ToCancellationResponse(c *domain.CancellationResult) CancellationResponse {
	return CancellationResponse{
		Reservation:  ToReservationResponse(c.Reservation),
		RefundAmount: c.RefundAmount,
	}
}
