package domain

import "time"

// Stay is a half-open date range [CheckIn, CheckOut) at day granularity.
// Both bounds are UTC midnights.
type Stay struct {
	CheckIn  time.Time `json:"check_in"`
	CheckOut time.Time `json:"check_out"`
}

func NewStay(checkIn, checkOut time.Time) Stay {
	return Stay{CheckIn: DateOf(checkIn), CheckOut: DateOf(checkOut)}
}

// DateOf truncates t to its UTC calendar date.
func DateOf(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func (s Stay) Valid() bool {
	return s.CheckIn.Before(s.CheckOut)
}

func (s Stay) Nights() int {
	return int(s.CheckOut.Sub(s.CheckIn).Hours() / 24)
}

// Overlaps reports whether two half-open ranges intersect. Adjacent stays
// (one's check-out equals the other's check-in) do not overlap, which is what
// allows back-to-back bookings.
func (s Stay) Overlaps(other Stay) bool {
	return s.CheckIn.Before(other.CheckOut) && other.CheckIn.Before(s.CheckOut)
}

// DaysUntil returns the number of whole calendar days from `from` until
// check-in. Negative once the stay has started.
func (s Stay) DaysUntil(from time.Time) int {
	return int(s.CheckIn.Sub(DateOf(from)).Hours() / 24)
}
