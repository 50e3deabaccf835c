package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/stpnv0/StayBooker/internal/calendar"
	"github.com/stpnv0/StayBooker/internal/domain"
	"github.com/stpnv0/StayBooker/internal/locker"
	"github.com/stpnv0/StayBooker/internal/pricing"
	"github.com/stpnv0/StayBooker/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

// ReservationService is the reservation engine: it composes the calendar
// index, the pricing calculator and the reservation state machine under a
// per-listing exclusion discipline.
type ReservationService struct {
	reservationRepo ports.ReservationRepo
	listingRepo     ports.ListingRepo
	notifier        ports.ReservationNotifier
	payments        ports.PaymentGateway
	calendar        *calendar.Index
	locks           *locker.KeyedMutex
	logger          logger.Logger
	now             func() time.Time
}

func NewReservationService(
	reservationRepo ports.ReservationRepo,
	listingRepo ports.ListingRepo,
	notifier ports.ReservationNotifier,
	payments ports.PaymentGateway,
	lockTimeout time.Duration,
	log logger.Logger,
) *ReservationService {
	return &ReservationService{
		reservationRepo: reservationRepo,
		listingRepo:     listingRepo,
		notifier:        notifier,
		payments:        payments,
		calendar:        calendar.NewIndex(),
		locks:           locker.New(lockTimeout),
		logger:          log,
		now:             time.Now,
	}
}

// WarmCalendar loads every occupying reservation into the in-memory index.
// Called once at startup, before the service takes traffic.
func (s *ReservationService) WarmCalendar(ctx context.Context) error {
	occupying, err := s.reservationRepo.ListOccupying(ctx)
	if err != nil {
		return fmt.Errorf("list occupying reservations: %w", err)
	}

	for _, r := range occupying {
		s.calendar.Occupy(r.ListingID, r.ID, r.Stay)
	}

	s.logger.Info("calendar index warmed",
		logger.Int("reservations", len(occupying)),
	)
	return nil
}

// CheckAvailability is advisory: it runs without the listing lock and may
// return a stale answer. Propose re-validates under the lock regardless.
func (s *ReservationService) CheckAvailability(ctx context.Context, listingID string, stay domain.Stay, guests int) (*domain.Availability, error) {
	if !stay.Valid() {
		return nil, fmt.Errorf("%w: check-in must be before check-out", domain.ErrInvalidStayLength)
	}

	rates, err := s.listingRepo.GetRateConfig(ctx, listingID)
	if err != nil {
		return nil, fmt.Errorf("get rate config: %w", err)
	}
	if guests > rates.MaxGuests {
		return nil, fmt.Errorf("%w: maximum is %d guests", domain.ErrGuestCountExceeded, rates.MaxGuests)
	}

	conflicts := s.calendar.Conflicts(listingID, stay)
	return &domain.Availability{
		Available: len(conflicts) == 0,
		Conflicts: conflicts,
	}, nil
}

// Quote prices a candidate stay without creating anything.
func (s *ReservationService) Quote(ctx context.Context, listingID string, stay domain.Stay, guests int) (*pricing.Quote, error) {
	rates, err := s.listingRepo.GetRateConfig(ctx, listingID)
	if err != nil {
		return nil, fmt.Errorf("get rate config: %w", err)
	}
	return pricing.Calculate(*rates, stay, guests)
}

// Propose creates a requested reservation. The availability re-check, the
// record insert and the calendar occupation happen inside the listing's
// critical section; a prior CheckAvailability result is never trusted.
func (s *ReservationService) Propose(ctx context.Context, input domain.ProposeInput) (*domain.Reservation, error) {
	rates, err := s.listingRepo.GetRateConfig(ctx, input.ListingID)
	if err != nil {
		return nil, fmt.Errorf("get rate config: %w", err)
	}

	// Цена считается до захвата лока, она чистая.
	quote, err := pricing.Calculate(*rates, input.Stay, input.Guests)
	if err != nil {
		return nil, err
	}

	now := s.now().UTC()
	res := &domain.Reservation{
		ID:         uuid.New().String(),
		ListingID:  input.ListingID,
		GuestID:    input.GuestID,
		Stay:       input.Stay,
		Guests:     input.Guests,
		TotalPrice: quote.Total,
		Status:     domain.StatusRequested,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	unlock, err := s.locks.Lock(ctx, input.ListingID)
	if err != nil {
		return nil, err
	}

	if !s.calendar.IsFree(input.ListingID, input.Stay, "") {
		unlock()
		return nil, domain.ErrUnavailable
	}

	if err = s.reservationRepo.Create(ctx, res); err != nil {
		unlock()
		return nil, fmt.Errorf("create reservation: %w", err)
	}
	s.calendar.Occupy(input.ListingID, res.ID, input.Stay)
	unlock()

	s.logger.Info("reservation requested",
		logger.String("reservation_id", res.ID),
		logger.String("listing_id", res.ListingID),
		logger.String("guest_id", res.GuestID),
		logger.Int64("total_price", res.TotalPrice),
	)

	go s.notifier.NotifyRequested(context.WithoutCancel(ctx), res)
	go s.payments.Charge(context.WithoutCancel(ctx), res)

	return res, nil
}

// Respond applies the owner's accept/reject decision.
func (s *ReservationService) Respond(ctx context.Context, reservationID, actorID string, accept bool) (*domain.Reservation, error) {
	res, err := s.reservationRepo.GetByID(ctx, reservationID)
	if err != nil {
		return nil, fmt.Errorf("get reservation: %w", err)
	}

	ownerID, err := s.listingRepo.GetOwnerID(ctx, res.ListingID)
	if err != nil {
		return nil, fmt.Errorf("get owner: %w", err)
	}
	if actorID != ownerID {
		return nil, domain.ErrNotOwner
	}

	unlock, err := s.locks.Lock(ctx, res.ListingID)
	if err != nil {
		return nil, err
	}

	// Перечитываем под локом: состояние могло измениться.
	res, err = s.reservationRepo.GetByID(ctx, reservationID)
	if err != nil {
		unlock()
		return nil, fmt.Errorf("get reservation: %w", err)
	}

	now := s.now().UTC()
	if accept {
		err = res.Confirm(now)
	} else {
		err = res.Reject(now)
	}
	if err != nil {
		unlock()
		return nil, err
	}

	if err = s.reservationRepo.Update(ctx, res); err != nil {
		unlock()
		return nil, fmt.Errorf("update reservation: %w", err)
	}
	if res.Status == domain.StatusRejected {
		s.calendar.Release(res.ListingID, res.ID)
	}
	unlock()

	s.logger.Info("reservation decided",
		logger.String("reservation_id", res.ID),
		logger.String("status", string(res.Status)),
	)

	if res.Status == domain.StatusConfirmed {
		go s.notifier.NotifyConfirmed(context.WithoutCancel(ctx), res)
	} else {
		go s.notifier.NotifyRejected(context.WithoutCancel(ctx), res)
	}

	return res, nil
}

// Cancel cancels a requested or confirmed reservation. The refund policy is
// evaluated once, against the current date, and the resulting amount goes to
// the payment collaborator.
func (s *ReservationService) Cancel(ctx context.Context, reservationID, actorID, reason string) (*domain.CancellationResult, error) {
	res, err := s.reservationRepo.GetByID(ctx, reservationID)
	if err != nil {
		return nil, fmt.Errorf("get reservation: %w", err)
	}

	ownerID, err := s.listingRepo.GetOwnerID(ctx, res.ListingID)
	if err != nil {
		return nil, fmt.Errorf("get owner: %w", err)
	}
	if actorID != res.GuestID && actorID != ownerID {
		return nil, domain.ErrNotParticipant
	}

	rates, err := s.listingRepo.GetRateConfig(ctx, res.ListingID)
	if err != nil {
		return nil, fmt.Errorf("get rate config: %w", err)
	}

	unlock, err := s.locks.Lock(ctx, res.ListingID)
	if err != nil {
		return nil, err
	}

	res, err = s.reservationRepo.GetByID(ctx, reservationID)
	if err != nil {
		unlock()
		return nil, fmt.Errorf("get reservation: %w", err)
	}

	now := s.now().UTC()
	if res.EffectiveStatus(now) == domain.StatusCompleted {
		// Заезд уже завершился, отменять нечего.
		unlock()
		return nil, domain.ErrInvalidState
	}

	percent := rates.Policy.RefundPercent(res.Stay.DaysUntil(now))
	if err = res.Cancel(actorID, reason, percent, now); err != nil {
		unlock()
		return nil, err
	}

	if err = s.reservationRepo.Update(ctx, res); err != nil {
		unlock()
		return nil, fmt.Errorf("update reservation: %w", err)
	}
	s.calendar.Release(res.ListingID, res.ID)
	unlock()

	refund := res.RefundAmount()

	s.logger.Info("reservation cancelled",
		logger.String("reservation_id", res.ID),
		logger.String("cancelled_by", actorID),
		logger.Int("refund_percent", res.RefundPercent),
		logger.Int64("refund_amount", refund),
	)

	go s.notifier.NotifyCancelled(context.WithoutCancel(ctx), res)
	if refund > 0 {
		go s.payments.Refund(context.WithoutCancel(ctx), res, refund)
	}

	return &domain.CancellationResult{Reservation: res, RefundAmount: refund}, nil
}

// CompleteElapsed sweeps confirmed reservations whose check-out has passed
// and transitions them to completed. Re-running it is a no-op for records
// that are already completed.
func (s *ReservationService) CompleteElapsed(ctx context.Context) ([]*domain.Reservation, error) {
	now := s.now().UTC()
	elapsed, err := s.reservationRepo.ListElapsedConfirmed(ctx, domain.DateOf(now))
	if err != nil {
		return nil, fmt.Errorf("list elapsed reservations: %w", err)
	}

	var completed []*domain.Reservation
	for _, r := range elapsed {
		unlock, err := s.locks.Lock(ctx, r.ListingID)
		if err != nil {
			s.logger.Warn("skip elapsed reservation, listing busy",
				logger.String("reservation_id", r.ID),
			)
			continue
		}

		res, err := s.reservationRepo.GetByID(ctx, r.ID)
		if err != nil {
			unlock()
			s.logger.Error("failed to reload elapsed reservation",
				logger.String("reservation_id", r.ID),
				logger.String("error", err.Error()),
			)
			continue
		}

		if err = res.Complete(now); err != nil {
			// Проиграли гонку с отменой — пропускаем.
			unlock()
			continue
		}

		if err = s.reservationRepo.Update(ctx, res); err != nil {
			unlock()
			s.logger.Error("failed to complete reservation",
				logger.String("reservation_id", res.ID),
				logger.String("error", err.Error()),
			)
			continue
		}
		s.calendar.Release(res.ListingID, res.ID)
		unlock()

		completed = append(completed, res)
		go s.notifier.NotifyCompleted(context.WithoutCancel(ctx), res)
	}

	if len(completed) > 0 {
		s.logger.Info("stays completed",
			logger.Int("count", len(completed)),
		)
	}

	return completed, nil
}

// GetByID returns a reservation to one of its participants, with the
// elapsed-stay read guard applied.
func (s *ReservationService) GetByID(ctx context.Context, id, actorID string) (*domain.Reservation, error) {
	res, err := s.reservationRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get reservation: %w", err)
	}

	ownerID, err := s.listingRepo.GetOwnerID(ctx, res.ListingID)
	if err != nil {
		return nil, fmt.Errorf("get owner: %w", err)
	}
	if actorID != res.GuestID && actorID != ownerID {
		return nil, domain.ErrNotParticipant
	}

	res.Status = res.EffectiveStatus(s.now().UTC())
	return res, nil
}

func (s *ReservationService) ListByGuest(ctx context.Context, guestID string) ([]*domain.Reservation, error) {
	list, err := s.reservationRepo.ListByGuest(ctx, guestID)
	if err != nil {
		return nil, err
	}
	s.applyEffectiveStatus(list)
	return list, nil
}

// ListByListing returns a listing's reservations to its owner.
func (s *ReservationService) ListByListing(ctx context.Context, listingID, actorID string) ([]*domain.Reservation, error) {
	ownerID, err := s.listingRepo.GetOwnerID(ctx, listingID)
	if err != nil {
		return nil, fmt.Errorf("get owner: %w", err)
	}
	if actorID != ownerID {
		return nil, domain.ErrNotOwner
	}

	list, err := s.reservationRepo.ListByListing(ctx, listingID)
	if err != nil {
		return nil, err
	}
	s.applyEffectiveStatus(list)
	return list, nil
}

func (s *ReservationService) applyEffectiveStatus(list []*domain.Reservation) {
	now := s.now().UTC()
	for _, r := range list {
		r.Status = r.EffectiveStatus(now)
	}
}
