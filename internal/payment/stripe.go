package payment

import (
	"context"
	"sync"

	"github.com/stpnv0/StayBooker/internal/domain"
	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/client"
	"github.com/wb-go/wbf/logger"
)

// StripeGateway charges the reservation total on propose and refunds the
// computed amount on cancel. Failures are logged, never propagated back into
// reservation state: a failed charge is handled outside the engine by a
// compensating cancellation.
type StripeGateway struct {
	api      *client.API
	currency string
	logger   logger.Logger

	mu      sync.Mutex
	intents map[string]string // reservationID -> payment intent ID
}

func NewStripeGateway(apiKey, currency string, logger logger.Logger) *StripeGateway {
	g := &StripeGateway{
		currency: currency,
		logger:   logger,
		intents:  make(map[string]string),
	}

	if apiKey == "" {
		logger.Warn("stripe api key is empty, payments disabled")
		return g
	}

	g.api = &client.API{}
	g.api.Init(apiKey, nil)
	return g
}

func (g *StripeGateway) Charge(ctx context.Context, r *domain.Reservation) {
	if g.api == nil {
		g.logger.Debug("charge skipped (payments disabled)",
			logger.String("reservation_id", r.ID),
		)
		return
	}
	if err := ctx.Err(); err != nil {
		return
	}

	params := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(r.TotalPrice),
		Currency: stripe.String(g.currency),
	}
	params.AddMetadata("reservation_id", r.ID)
	params.AddMetadata("listing_id", r.ListingID)

	intent, err := g.api.PaymentIntents.New(params)
	if err != nil {
		g.logger.Error("failed to create payment intent",
			logger.String("reservation_id", r.ID),
			logger.String("error", err.Error()),
		)
		return
	}

	g.mu.Lock()
	g.intents[r.ID] = intent.ID
	g.mu.Unlock()

	g.logger.Info("payment intent created",
		logger.String("reservation_id", r.ID),
		logger.String("payment_intent", intent.ID),
		logger.Int64("amount", r.TotalPrice),
	)
}

func (g *StripeGateway) Refund(ctx context.Context, r *domain.Reservation, amount int64) {
	if g.api == nil {
		g.logger.Debug("refund skipped (payments disabled)",
			logger.String("reservation_id", r.ID),
		)
		return
	}
	if err := ctx.Err(); err != nil {
		return
	}

	g.mu.Lock()
	intentID, ok := g.intents[r.ID]
	g.mu.Unlock()
	if !ok {
		g.logger.Warn("no payment intent for reservation, refund skipped",
			logger.String("reservation_id", r.ID),
		)
		return
	}

	params := &stripe.RefundParams{
		PaymentIntent: stripe.String(intentID),
		Amount:        stripe.Int64(amount),
	}
	params.AddMetadata("reservation_id", r.ID)

	if _, err := g.api.Refunds.New(params); err != nil {
		g.logger.Error("failed to create refund",
			logger.String("reservation_id", r.ID),
			logger.String("error", err.Error()),
		)
		return
	}

	g.logger.Info("refund created",
		logger.String("reservation_id", r.ID),
		logger.Int64("amount", amount),
	)
}
