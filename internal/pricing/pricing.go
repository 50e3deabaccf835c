package pricing

import (
	"fmt"
	"time"

	"github.com/stpnv0/StayBooker/internal/domain"
)

// serviceFeePercent is the platform cut applied on top of the subtotal.
const serviceFeePercent = 10

type NightPrice struct {
	Date    time.Time `json:"date"`
	Price   int64     `json:"price"`
	Weekend bool      `json:"weekend"`
}

type Quote struct {
	Nights        int          `json:"nights"`
	Breakdown     []NightPrice `json:"breakdown"`
	BasePrice     int64        `json:"base_price"`
	WeekendNights int          `json:"weekend_nights"`
	ExtraGuestFee int64        `json:"extra_guest_fee"`
	ServiceFee    int64        `json:"service_fee"`
	Total         int64        `json:"total"`
}

// Calculate prices a candidate stay against a listing's rate config. It is a
// pure function: same inputs, same quote. All arithmetic is in integer minor
// units.
func Calculate(rates domain.RateConfig, stay domain.Stay, guests int) (*Quote, error) {
	if !stay.Valid() {
		return nil, fmt.Errorf("%w: check-in must be before check-out", domain.ErrInvalidStayLength)
	}

	nights := stay.Nights()
	if nights < rates.MinStay {
		return nil, fmt.Errorf("%w: minimum stay is %d nights", domain.ErrInvalidStayLength, rates.MinStay)
	}
	if rates.MaxStay > 0 && nights > rates.MaxStay {
		return nil, fmt.Errorf("%w: maximum stay is %d nights", domain.ErrInvalidStayLength, rates.MaxStay)
	}
	if guests > rates.MaxGuests {
		return nil, fmt.Errorf("%w: maximum is %d guests", domain.ErrGuestCountExceeded, rates.MaxGuests)
	}

	q := &Quote{
		Nights:    nights,
		Breakdown: make([]NightPrice, 0, nights),
	}

	for d := stay.CheckIn; d.Before(stay.CheckOut); d = d.AddDate(0, 0, 1) {
		price := rates.NightlyRate
		weekend := isWeekend(d)
		if weekend {
			price += rates.WeekendSurcharge
			q.WeekendNights++
		}
		q.Breakdown = append(q.Breakdown, NightPrice{Date: d, Price: price, Weekend: weekend})
		q.BasePrice += price
	}

	// Flat multiplication, not re-derived per night.
	if guests > rates.BaseGuests {
		q.ExtraGuestFee = int64(guests-rates.BaseGuests) * rates.ExtraGuestFee * int64(nights)
	}

	subtotal := q.BasePrice + q.ExtraGuestFee
	q.ServiceFee = roundHalfUpPercent(subtotal, serviceFeePercent)
	q.Total = subtotal + q.ServiceFee

	return q, nil
}

func isWeekend(d time.Time) bool {
	wd := d.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}

// roundHalfUpPercent computes amount*percent/100 rounded half-up in integers.
func roundHalfUpPercent(amount int64, percent int64) int64 {
	return (amount*percent + 50) / 100
}
