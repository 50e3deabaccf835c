package ports

import (
	"context"

	"github.com/stpnv0/StayBooker/internal/domain"
)

// PaymentGateway executes the actual money movement. A payment failure is the
// gateway's concern, never a reason to revert reservation state, so the
// methods report nothing back.
type PaymentGateway interface {
	Charge(ctx context.Context, r *domain.Reservation)
	Refund(ctx context.Context, r *domain.Reservation, amount int64)
}
