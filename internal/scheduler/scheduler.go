package scheduler

import (
	"context"
	"time"

	"github.com/stpnv0/StayBooker/internal/domain"
	"github.com/wb-go/wbf/logger"
)

type staySweeper interface {
	CompleteElapsed(ctx context.Context) ([]*domain.Reservation, error)
}

// Scheduler periodically applies the checkOutElapsed transition to confirmed
// reservations whose stay has ended.
type Scheduler struct {
	reservations staySweeper
	interval     time.Duration
	logger       logger.Logger
}

func New(
	reservations staySweeper,
	interval time.Duration,
	logger logger.Logger,
) *Scheduler {
	return &Scheduler{
		reservations: reservations,
		interval:     interval,
		logger:       logger,
	}
}

func (s *Scheduler) Start(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.logger.Info("scheduler started",
		logger.Duration("interval", s.interval),
	)

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("scheduler stopped")
			return
		case <-ticker.C:
			s.tick(ctx)
		}
	}
}

func (s *Scheduler) tick(ctx context.Context) {
	completed, err := s.reservations.CompleteElapsed(ctx)
	if err != nil {
		s.logger.Error("failed to complete elapsed stays",
			logger.String("error", err.Error()),
		)
		return
	}

	for _, r := range completed {
		s.logger.Info("stay completed",
			logger.String("reservation_id", r.ID),
			logger.String("listing_id", r.ListingID),
			logger.String("guest_id", r.GuestID),
		)
	}
}
