package service

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stpnv0/StayBooker/internal/domain"
	"github.com/stpnv0/StayBooker/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/logger"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

type reservationFixture struct {
	svc             *ReservationService
	reservationRepo *mocks.MockReservationRepo
	listingRepo     *mocks.MockListingRepo
	notifier        *mocks.MockReservationNotifier
	payments        *mocks.MockPaymentGateway
}

func newReservationFixture(t *testing.T) *reservationFixture {
	f := &reservationFixture{
		reservationRepo: mocks.NewMockReservationRepo(t),
		listingRepo:     mocks.NewMockListingRepo(t),
		notifier:        mocks.NewMockReservationNotifier(t),
		payments:        mocks.NewMockPaymentGateway(t),
	}
	f.svc = NewReservationService(f.reservationRepo, f.listingRepo, f.notifier, f.payments, 100*time.Millisecond, newTestLogger(t))
	f.svc.now = func() time.Time { return date(2025, time.April, 1) }
	return f
}

func testRates() *domain.RateConfig {
	return &domain.RateConfig{
		NightlyRate:      1_000_000,
		WeekendSurcharge: 200_000,
		ExtraGuestFee:    50_000,
		BaseGuests:       2,
		MaxGuests:        4,
		Policy:           domain.PolicyModerate,
	}
}

func TestReservationService_Propose_Success(t *testing.T) {
	f := newReservationFixture(t)

	f.listingRepo.EXPECT().GetRateConfig(mock.Anything, "l1").Return(testRates(), nil)
	f.reservationRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)
	f.notifier.EXPECT().NotifyRequested(mock.Anything, mock.Anything).Return()
	f.payments.EXPECT().Charge(mock.Anything, mock.Anything).Return()

	res, err := f.svc.Propose(context.Background(), domain.ProposeInput{
		ListingID: "l1",
		GuestID:   "g1",
		Stay:      domain.NewStay(date(2025, time.April, 10), date(2025, time.April, 13)),
		Guests:    2,
	})

	require.NoError(t, err)
	assert.Equal(t, domain.StatusRequested, res.Status)
	assert.NotEmpty(t, res.ID)
	assert.Positive(t, res.TotalPrice)
	assert.False(t, f.svc.calendar.IsFree("l1", res.Stay, ""))

	time.Sleep(50 * time.Millisecond) // goroutine notify + charge
}

func TestReservationService_Propose_Unavailable(t *testing.T) {
	f := newReservationFixture(t)

	f.svc.calendar.Occupy("l1", "existing", domain.NewStay(date(2025, time.April, 11), date(2025, time.April, 14)))
	f.listingRepo.EXPECT().GetRateConfig(mock.Anything, "l1").Return(testRates(), nil)

	_, err := f.svc.Propose(context.Background(), domain.ProposeInput{
		ListingID: "l1",
		GuestID:   "g1",
		Stay:      domain.NewStay(date(2025, time.April, 10), date(2025, time.April, 13)),
		Guests:    2,
	})

	assert.ErrorIs(t, err, domain.ErrUnavailable)
}

func TestReservationService_Propose_AdjacentStays(t *testing.T) {
	f := newReservationFixture(t)

	f.listingRepo.EXPECT().GetRateConfig(mock.Anything, "l1").Return(testRates(), nil)
	f.reservationRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)
	f.notifier.EXPECT().NotifyRequested(mock.Anything, mock.Anything).Return()
	f.payments.EXPECT().Charge(mock.Anything, mock.Anything).Return()

	_, err := f.svc.Propose(context.Background(), domain.ProposeInput{
		ListingID: "l1",
		GuestID:   "g1",
		Stay:      domain.NewStay(date(2025, time.April, 10), date(2025, time.April, 13)),
		Guests:    2,
	})
	require.NoError(t, err)

	// Чек-ин стык-в-стык с чужим чек-аутом — допустим.
	_, err = f.svc.Propose(context.Background(), domain.ProposeInput{
		ListingID: "l1",
		GuestID:   "g2",
		Stay:      domain.NewStay(date(2025, time.April, 13), date(2025, time.April, 16)),
		Guests:    2,
	})
	require.NoError(t, err)

	time.Sleep(50 * time.Millisecond)
}

func TestReservationService_Propose_ConcurrentSameStay(t *testing.T) {
	f := newReservationFixture(t)

	f.listingRepo.EXPECT().GetRateConfig(mock.Anything, "l1").Return(testRates(), nil)
	f.reservationRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)
	f.notifier.EXPECT().NotifyRequested(mock.Anything, mock.Anything).Return()
	f.payments.EXPECT().Charge(mock.Anything, mock.Anything).Return()

	const workers = 16
	var succeeded, unavailable atomic.Int32
	var wg sync.WaitGroup

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := f.svc.Propose(context.Background(), domain.ProposeInput{
				ListingID: "l1",
				GuestID:   "g1",
				Stay:      domain.NewStay(date(2025, time.April, 10), date(2025, time.April, 13)),
				Guests:    2,
			})
			switch {
			case err == nil:
				succeeded.Add(1)
			case assert.ErrorIs(t, err, domain.ErrUnavailable):
				unavailable.Add(1)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), succeeded.Load())
	assert.Equal(t, int32(workers-1), unavailable.Load())

	time.Sleep(50 * time.Millisecond)
}

func TestReservationService_Propose_LockTimeout(t *testing.T) {
	f := newReservationFixture(t)

	f.listingRepo.EXPECT().GetRateConfig(mock.Anything, "l1").Return(testRates(), nil)

	unlock, err := f.svc.locks.Lock(context.Background(), "l1")
	require.NoError(t, err)
	defer unlock()

	_, err = f.svc.Propose(context.Background(), domain.ProposeInput{
		ListingID: "l1",
		GuestID:   "g1",
		Stay:      domain.NewStay(date(2025, time.April, 10), date(2025, time.April, 13)),
		Guests:    2,
	})

	assert.ErrorIs(t, err, domain.ErrLockTimeout)
}

func requestedReservation() *domain.Reservation {
	return &domain.Reservation{
		ID:         "r1",
		ListingID:  "l1",
		GuestID:    "g1",
		Stay:       domain.NewStay(date(2025, time.April, 10), date(2025, time.April, 15)),
		Guests:     2,
		TotalPrice: 3_685_000,
		Status:     domain.StatusRequested,
	}
}

func TestReservationService_Respond_Accept(t *testing.T) {
	f := newReservationFixture(t)
	res := requestedReservation()

	f.reservationRepo.EXPECT().GetByID(mock.Anything, "r1").Return(res, nil)
	f.listingRepo.EXPECT().GetOwnerID(mock.Anything, "l1").Return("owner", nil)
	f.reservationRepo.EXPECT().Update(mock.Anything, mock.Anything).Return(nil)
	f.notifier.EXPECT().NotifyConfirmed(mock.Anything, mock.Anything).Return()

	got, err := f.svc.Respond(context.Background(), "r1", "owner", true)

	require.NoError(t, err)
	assert.Equal(t, domain.StatusConfirmed, got.Status)
	require.NotNil(t, got.DecidedAt)

	time.Sleep(50 * time.Millisecond)
}

func TestReservationService_Respond_RejectReleasesCalendar(t *testing.T) {
	f := newReservationFixture(t)
	res := requestedReservation()
	f.svc.calendar.Occupy("l1", "r1", res.Stay)

	f.reservationRepo.EXPECT().GetByID(mock.Anything, "r1").Return(res, nil)
	f.listingRepo.EXPECT().GetOwnerID(mock.Anything, "l1").Return("owner", nil)
	f.reservationRepo.EXPECT().Update(mock.Anything, mock.Anything).Return(nil)
	f.notifier.EXPECT().NotifyRejected(mock.Anything, mock.Anything).Return()

	got, err := f.svc.Respond(context.Background(), "r1", "owner", false)

	require.NoError(t, err)
	assert.Equal(t, domain.StatusRejected, got.Status)
	assert.True(t, f.svc.calendar.IsFree("l1", res.Stay, ""))

	time.Sleep(50 * time.Millisecond)
}

func TestReservationService_Respond_NotOwner(t *testing.T) {
	f := newReservationFixture(t)

	f.reservationRepo.EXPECT().GetByID(mock.Anything, "r1").Return(requestedReservation(), nil)
	f.listingRepo.EXPECT().GetOwnerID(mock.Anything, "l1").Return("owner", nil)

	_, err := f.svc.Respond(context.Background(), "r1", "stranger", true)

	assert.ErrorIs(t, err, domain.ErrNotOwner)
}

func TestReservationService_Respond_AlreadyDecided(t *testing.T) {
	f := newReservationFixture(t)
	res := requestedReservation()
	res.Status = domain.StatusConfirmed

	f.reservationRepo.EXPECT().GetByID(mock.Anything, "r1").Return(res, nil)
	f.listingRepo.EXPECT().GetOwnerID(mock.Anything, "l1").Return("owner", nil)

	_, err := f.svc.Respond(context.Background(), "r1", "owner", true)

	assert.ErrorIs(t, err, domain.ErrInvalidState)
}

func TestReservationService_Cancel_WithRefund(t *testing.T) {
	f := newReservationFixture(t)
	res := requestedReservation()
	res.Status = domain.StatusConfirmed
	f.svc.calendar.Occupy("l1", "r1", res.Stay)

	f.reservationRepo.EXPECT().GetByID(mock.Anything, "r1").Return(res, nil)
	f.listingRepo.EXPECT().GetOwnerID(mock.Anything, "l1").Return("owner", nil)
	f.listingRepo.EXPECT().GetRateConfig(mock.Anything, "l1").Return(testRates(), nil)
	f.reservationRepo.EXPECT().Update(mock.Anything, mock.Anything).Return(nil)
	f.notifier.EXPECT().NotifyCancelled(mock.Anything, mock.Anything).Return()
	f.payments.EXPECT().Refund(mock.Anything, mock.Anything, int64(3_685_000)).Return()

	// До чек-ина 9 дней, moderate возвращает 100%.
	result, err := f.svc.Cancel(context.Background(), "r1", "g1", "plans changed")

	require.NoError(t, err)
	assert.Equal(t, domain.StatusCancelled, result.Reservation.Status)
	assert.Equal(t, 100, result.Reservation.RefundPercent)
	assert.Equal(t, int64(3_685_000), result.RefundAmount)
	assert.True(t, f.svc.calendar.IsFree("l1", res.Stay, ""))

	time.Sleep(50 * time.Millisecond)
}

func TestReservationService_Cancel_NoRefundCloseToCheckIn(t *testing.T) {
	f := newReservationFixture(t)
	f.svc.now = func() time.Time { return date(2025, time.April, 9) }

	res := requestedReservation()
	res.Status = domain.StatusConfirmed

	f.reservationRepo.EXPECT().GetByID(mock.Anything, "r1").Return(res, nil)
	f.listingRepo.EXPECT().GetOwnerID(mock.Anything, "l1").Return("owner", nil)
	f.listingRepo.EXPECT().GetRateConfig(mock.Anything, "l1").Return(testRates(), nil)
	f.reservationRepo.EXPECT().Update(mock.Anything, mock.Anything).Return(nil)
	f.notifier.EXPECT().NotifyCancelled(mock.Anything, mock.Anything).Return()

	result, err := f.svc.Cancel(context.Background(), "r1", "g1", "")

	require.NoError(t, err)
	assert.Equal(t, 0, result.Reservation.RefundPercent)
	assert.Equal(t, int64(0), result.RefundAmount)

	time.Sleep(50 * time.Millisecond)
}

func TestReservationService_Cancel_NotParticipant(t *testing.T) {
	f := newReservationFixture(t)

	f.reservationRepo.EXPECT().GetByID(mock.Anything, "r1").Return(requestedReservation(), nil)
	f.listingRepo.EXPECT().GetOwnerID(mock.Anything, "l1").Return("owner", nil)

	_, err := f.svc.Cancel(context.Background(), "r1", "stranger", "")

	assert.ErrorIs(t, err, domain.ErrNotParticipant)
}

func TestReservationService_Cancel_ElapsedStay(t *testing.T) {
	f := newReservationFixture(t)
	f.svc.now = func() time.Time { return date(2025, time.April, 20) }

	res := requestedReservation()
	res.Status = domain.StatusConfirmed

	f.reservationRepo.EXPECT().GetByID(mock.Anything, "r1").Return(res, nil)
	f.listingRepo.EXPECT().GetOwnerID(mock.Anything, "l1").Return("owner", nil)
	f.listingRepo.EXPECT().GetRateConfig(mock.Anything, "l1").Return(testRates(), nil)

	_, err := f.svc.Cancel(context.Background(), "r1", "g1", "")

	assert.ErrorIs(t, err, domain.ErrInvalidState)
}

func TestReservationService_CompleteElapsed(t *testing.T) {
	f := newReservationFixture(t)
	f.svc.now = func() time.Time { return date(2025, time.April, 20) }

	confirmed := requestedReservation()
	confirmed.Status = domain.StatusConfirmed
	f.svc.calendar.Occupy("l1", "r1", confirmed.Stay)

	cancelled := requestedReservation()
	cancelled.ID = "r2"
	cancelled.Status = domain.StatusCancelled

	f.reservationRepo.EXPECT().ListElapsedConfirmed(mock.Anything, date(2025, time.April, 20)).
		Return([]*domain.Reservation{confirmed, cancelled}, nil)
	f.reservationRepo.EXPECT().GetByID(mock.Anything, "r1").Return(confirmed, nil)
	f.reservationRepo.EXPECT().GetByID(mock.Anything, "r2").Return(cancelled, nil)
	f.reservationRepo.EXPECT().Update(mock.Anything, mock.Anything).Return(nil)
	f.notifier.EXPECT().NotifyCompleted(mock.Anything, mock.Anything).Return()

	completed, err := f.svc.CompleteElapsed(context.Background())

	require.NoError(t, err)
	// Проигравшая гонку отмена пропущена молча.
	require.Len(t, completed, 1)
	assert.Equal(t, "r1", completed[0].ID)
	assert.Equal(t, domain.StatusCompleted, completed[0].Status)
	assert.True(t, f.svc.calendar.IsFree("l1", confirmed.Stay, ""))

	time.Sleep(50 * time.Millisecond)
}

func TestReservationService_CompleteElapsed_NothingToDo(t *testing.T) {
	f := newReservationFixture(t)

	f.reservationRepo.EXPECT().ListElapsedConfirmed(mock.Anything, mock.Anything).
		Return(nil, nil)

	completed, err := f.svc.CompleteElapsed(context.Background())

	require.NoError(t, err)
	assert.Empty(t, completed)
}

func TestReservationService_GetByID_EffectiveStatus(t *testing.T) {
	f := newReservationFixture(t)
	f.svc.now = func() time.Time { return date(2025, time.April, 20) }

	res := requestedReservation()
	res.Status = domain.StatusConfirmed

	f.reservationRepo.EXPECT().GetByID(mock.Anything, "r1").Return(res, nil)
	f.listingRepo.EXPECT().GetOwnerID(mock.Anything, "l1").Return("owner", nil)

	got, err := f.svc.GetByID(context.Background(), "r1", "g1")

	require.NoError(t, err)
	assert.Equal(t, domain.StatusCompleted, got.Status)
}

func TestReservationService_GetByID_NotParticipant(t *testing.T) {
	f := newReservationFixture(t)

	f.reservationRepo.EXPECT().GetByID(mock.Anything, "r1").Return(requestedReservation(), nil)
	f.listingRepo.EXPECT().GetOwnerID(mock.Anything, "l1").Return("owner", nil)

	_, err := f.svc.GetByID(context.Background(), "r1", "stranger")

	assert.ErrorIs(t, err, domain.ErrNotParticipant)
}

func TestReservationService_ListByListing_NotOwner(t *testing.T) {
	f := newReservationFixture(t)

	f.listingRepo.EXPECT().GetOwnerID(mock.Anything, "l1").Return("owner", nil)

	_, err := f.svc.ListByListing(context.Background(), "l1", "stranger")

	assert.ErrorIs(t, err, domain.ErrNotOwner)
}

func TestReservationService_CheckAvailability(t *testing.T) {
	f := newReservationFixture(t)

	f.svc.calendar.Occupy("l1", "r1", domain.NewStay(date(2025, time.April, 10), date(2025, time.April, 15)))
	f.listingRepo.EXPECT().GetRateConfig(mock.Anything, "l1").Return(testRates(), nil)

	availability, err := f.svc.CheckAvailability(context.Background(), "l1",
		domain.NewStay(date(2025, time.April, 12), date(2025, time.April, 17)), 2)

	require.NoError(t, err)
	assert.False(t, availability.Available)
	assert.Len(t, availability.Conflicts, 1)
}

func TestReservationService_WarmCalendar(t *testing.T) {
	f := newReservationFixture(t)

	res := requestedReservation()
	f.reservationRepo.EXPECT().ListOccupying(mock.Anything).Return([]*domain.Reservation{res}, nil)

	require.NoError(t, f.svc.WarmCalendar(context.Background()))
	assert.False(t, f.svc.calendar.IsFree("l1", res.Stay, ""))
}
