package calendar

import (
	"sync"

	"github.com/stpnv0/StayBooker/internal/domain"
)

// Index keeps the occupying stays of every listing in memory and answers
// overlap queries. Writers must hold the listing's exclusion lock (see
// internal/locker) so that check-and-occupy stays atomic; the internal RWMutex
// only protects the maps themselves and lets advisory reads run lock-free
// with respect to listings.
type Index struct {
	mu       sync.RWMutex
	listings map[string]map[string]domain.Stay // listingID -> reservationID -> stay
}

func NewIndex() *Index {
	return &Index{listings: make(map[string]map[string]domain.Stay)}
}

// IsFree reports whether stay does not overlap any occupying reservation of
// the listing. excludeID skips one reservation, used when re-validating an
// existing record.
func (i *Index) IsFree(listingID string, stay domain.Stay, excludeID string) bool {
	i.mu.RLock()
	defer i.mu.RUnlock()

	for id, existing := range i.listings[listingID] {
		if id == excludeID {
			continue
		}
		if existing.Overlaps(stay) {
			return false
		}
	}
	return true
}

// Conflicts returns the occupying stays that overlap the given range, for
// display to the caller.
func (i *Index) Conflicts(listingID string, stay domain.Stay) []domain.Stay {
	i.mu.RLock()
	defer i.mu.RUnlock()

	var res []domain.Stay
	for _, existing := range i.listings[listingID] {
		if existing.Overlaps(stay) {
			res = append(res, existing)
		}
	}
	return res
}

// Occupy inserts the stay. Call only while holding the listing's exclusion.
func (i *Index) Occupy(listingID, reservationID string, stay domain.Stay) {
	i.mu.Lock()
	defer i.mu.Unlock()

	m, ok := i.listings[listingID]
	if !ok {
		m = make(map[string]domain.Stay)
		i.listings[listingID] = m
	}
	m[reservationID] = stay
}

// Release removes the reservation's stay; releasing an absent entry is a
// no-op, which keeps rejection/cancellation idempotent at the index level.
func (i *Index) Release(listingID, reservationID string) {
	i.mu.Lock()
	defer i.mu.Unlock()

	m, ok := i.listings[listingID]
	if !ok {
		return
	}
	delete(m, reservationID)
	if len(m) == 0 {
		delete(i.listings, listingID)
	}
}
