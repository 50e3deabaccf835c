package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"
	"github.com/stpnv0/StayBooker/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

const reservationColumns = `id, listing_id, guest_id, check_in, check_out, guests,
	total_price, status, created_at, updated_at, decided_at,
	cancelled_by, cancellation_reason, refund_percent`

type ReservationRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewReservationRepo(db *dbpg.DB) *ReservationRepository {
	return &ReservationRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *ReservationRepository) Create(ctx context.Context, res *domain.Reservation) error {
	query := `INSERT INTO reservations (id, listing_id, guest_id, check_in, check_out,
				guests, total_price, status, created_at, updated_at, refund_percent)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		res.ID, res.ListingID, res.GuestID, res.Stay.CheckIn, res.Stay.CheckOut,
		res.Guests, res.TotalPrice, string(res.Status),
		res.CreatedAt, res.UpdatedAt, res.RefundPercent,
	)
	if err != nil {
		return fmt.Errorf("insert reservation: %w", err)
	}

	return nil
}

func (r *ReservationRepository) GetByID(ctx context.Context, id string) (*domain.Reservation, error) {
	query := `SELECT ` + reservationColumns + `
			  FROM reservations
			  WHERE id = $1`
	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get reservation: %w", err)
	}

	res, err := scanReservation(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrReservationNotFound
		}
		return nil, fmt.Errorf("scan reservation: %w", err)
	}

	return res, nil
}

// Update persists a state transition. Records are never deleted, the full
// history stays in the table.
func (r *ReservationRepository) Update(ctx context.Context, res *domain.Reservation) error {
	query := `UPDATE reservations
			  SET status = $2, updated_at = $3, decided_at = $4,
				  cancelled_by = $5, cancellation_reason = $6, refund_percent = $7
			  WHERE id = $1`
	result, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		res.ID, string(res.Status), res.UpdatedAt, res.DecidedAt,
		res.CancelledBy, res.CancellationReason, res.RefundPercent,
	)
	if err != nil {
		return fmt.Errorf("update reservation: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("reservation rows affected: %w", err)
	}
	if rows == 0 {
		return domain.ErrReservationNotFound
	}

	return nil
}

func (r *ReservationRepository) ListByGuest(ctx context.Context, guestID string) ([]*domain.Reservation, error) {
	query := `SELECT ` + reservationColumns + `
			  FROM reservations
			  WHERE guest_id = $1
			  ORDER BY created_at DESC`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, guestID)
	if err != nil {
		return nil, fmt.Errorf("list reservations by guest: %w", err)
	}
	defer rows.Close()

	return collectReservations(rows)
}

func (r *ReservationRepository) ListByListing(ctx context.Context, listingID string) ([]*domain.Reservation, error) {
	query := `SELECT ` + reservationColumns + `
			  FROM reservations
			  WHERE listing_id = $1
			  ORDER BY check_in`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, listingID)
	if err != nil {
		return nil, fmt.Errorf("list reservations by listing: %w", err)
	}
	defer rows.Close()

	return collectReservations(rows)
}

// ListOccupying returns every reservation that holds the calendar, across all
// listings. Used to warm the in-memory index at startup.
func (r *ReservationRepository) ListOccupying(ctx context.Context) ([]*domain.Reservation, error) {
	query := `SELECT ` + reservationColumns + `
			  FROM reservations
			  WHERE status = ANY($1)`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, pq.Array(domain.OccupyingStatuses))
	if err != nil {
		return nil, fmt.Errorf("list occupying reservations: %w", err)
	}
	defer rows.Close()

	return collectReservations(rows)
}

func (r *ReservationRepository) ListElapsedConfirmed(ctx context.Context, before time.Time) ([]*domain.Reservation, error) {
	query := `SELECT ` + reservationColumns + `
			  FROM reservations
			  WHERE status = $1 AND check_out <= $2`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, string(domain.StatusConfirmed), before)
	if err != nil {
		return nil, fmt.Errorf("list elapsed reservations: %w", err)
	}
	defer rows.Close()

	return collectReservations(rows)
}

func collectReservations(rows *sql.Rows) ([]*domain.Reservation, error) {
	var res []*domain.Reservation
	for rows.Next() {
		rec, err := scanReservation(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("scan reservation: %w", err)
		}
		res = append(res, rec)
	}

	return res, rows.Err()
}

func scanReservation(scan func(dest ...any) error) (*domain.Reservation, error) {
	var res domain.Reservation
	var status string
	var reason sql.NullString
	err := scan(
		&res.ID, &res.ListingID, &res.GuestID, &res.Stay.CheckIn, &res.Stay.CheckOut,
		&res.Guests, &res.TotalPrice, &status, &res.CreatedAt, &res.UpdatedAt,
		&res.DecidedAt, &res.CancelledBy, &reason, &res.RefundPercent,
	)
	if err != nil {
		return nil, err
	}
	res.Status = domain.ReservationStatus(status)
	res.CancellationReason = reason.String
	// Даты в БД лежат как date, приводим к UTC-полуночи.
	res.Stay = domain.NewStay(res.Stay.CheckIn, res.Stay.CheckOut)
	return &res, nil
}
