package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/stpnv0/StayBooker/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

type ListingRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewListingRepo(db *dbpg.DB) *ListingRepository {
	return &ListingRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *ListingRepository) Create(ctx context.Context, l *domain.Listing) error {
	query := `INSERT INTO listings (id, owner_id, title, description,
				nightly_rate, weekend_surcharge, extra_guest_fee,
				base_guests, max_guests, min_stay, max_stay, cancellation_policy,
				created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`
	_, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		l.ID, l.OwnerID, l.Title, l.Description,
		l.Rates.NightlyRate, l.Rates.WeekendSurcharge, l.Rates.ExtraGuestFee,
		l.Rates.BaseGuests, l.Rates.MaxGuests, l.Rates.MinStay, l.Rates.MaxStay,
		string(l.Rates.Policy), l.CreatedAt, l.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert listing: %w", err)
	}

	return nil
}

func (r *ListingRepository) GetByID(ctx context.Context, id string) (*domain.Listing, error) {
	query := `SELECT id, owner_id, title, description,
				nightly_rate, weekend_surcharge, extra_guest_fee,
				base_guests, max_guests, min_stay, max_stay, cancellation_policy,
				created_at, updated_at
			  FROM listings
			  WHERE id = $1`
	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get listing: %w", err)
	}

	l, err := scanListing(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrListingNotFound
		}
		return nil, fmt.Errorf("scan listing: %w", err)
	}

	return l, nil
}

func (r *ListingRepository) List(ctx context.Context) ([]*domain.Listing, error) {
	query := `SELECT id, owner_id, title, description,
				nightly_rate, weekend_surcharge, extra_guest_fee,
				base_guests, max_guests, min_stay, max_stay, cancellation_policy,
				created_at, updated_at
			  FROM listings
			  ORDER BY created_at DESC`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query)
	if err != nil {
		return nil, fmt.Errorf("list listings: %w", err)
	}
	defer rows.Close()

	var res []*domain.Listing
	for rows.Next() {
		l, err := scanListing(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("scan listing: %w", err)
		}
		res = append(res, l)
	}

	return res, rows.Err()
}

func (r *ListingRepository) GetRateConfig(ctx context.Context, id string) (*domain.RateConfig, error) {
	query := `SELECT nightly_rate, weekend_surcharge, extra_guest_fee,
				base_guests, max_guests, min_stay, max_stay, cancellation_policy
			  FROM listings
			  WHERE id = $1`
	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get rate config: %w", err)
	}

	var rc domain.RateConfig
	var policy string
	if err = row.Scan(
		&rc.NightlyRate, &rc.WeekendSurcharge, &rc.ExtraGuestFee,
		&rc.BaseGuests, &rc.MaxGuests, &rc.MinStay, &rc.MaxStay, &policy,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrListingNotFound
		}
		return nil, fmt.Errorf("scan rate config: %w", err)
	}
	rc.Policy = domain.CancellationPolicy(policy)

	return &rc, nil
}

func (r *ListingRepository) GetOwnerID(ctx context.Context, id string) (string, error) {
	query := `SELECT owner_id FROM listings WHERE id = $1`
	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return "", fmt.Errorf("get owner: %w", err)
	}

	var ownerID string
	if err = row.Scan(&ownerID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", domain.ErrListingNotFound
		}
		return "", fmt.Errorf("scan owner: %w", err)
	}

	return ownerID, nil
}

func scanListing(scan func(dest ...any) error) (*domain.Listing, error) {
	var l domain.Listing
	var policy string
	err := scan(
		&l.ID, &l.OwnerID, &l.Title, &l.Description,
		&l.Rates.NightlyRate, &l.Rates.WeekendSurcharge, &l.Rates.ExtraGuestFee,
		&l.Rates.BaseGuests, &l.Rates.MaxGuests, &l.Rates.MinStay, &l.Rates.MaxStay,
		&policy, &l.CreatedAt, &l.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	l.Rates.Policy = domain.CancellationPolicy(policy)
	return &l, nil
}
