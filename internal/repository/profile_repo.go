package repository

import (
	"context"
	"errors"

	"intern_rewards/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var ErrProfileNotFound = errors.New("profile not found")

type ProfileRepository struct {
	db     *pgxpool.Pool
	tenant string
}

func NewProfileRepository(db *pgxpool.Pool, tenant string) *ProfileRepository {
	return &ProfileRepository{db: db, tenant: tenant}
}

func (r *ProfileRepository) GetByUserID(ctx context.Context, userID int64) (*domain.Profile, error) {
	row := r.db.QueryRow(ctx,
		`SELECT user_id, name, referral_code, total_donations, donations_count, created_at
		 FROM profiles
		 WHERE tenant_id = $1 AND user_id = $2`,
		r.tenant, userID,
	)

	var p domain.Profile
	if err := row.Scan(
		&p.UserID,
		&p.Name,
		&p.ReferralCode,
		&p.TotalDonations,
		&p.DonationsCount,
		&p.CreatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}
	return &p, nil
}

// CreateWithLeaderboardEntry inserts the private profile and its public
// leaderboard projection in one transaction, so the two copies can never
// be created half-way.
func (r *ProfileRepository) CreateWithLeaderboardEntry(ctx context.Context, p *domain.Profile) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	if err := tx.QueryRow(ctx,
		`INSERT INTO profiles (tenant_id, user_id, name, referral_code, total_donations, donations_count)
		 VALUES ($1, $2, $3, $4, 0, 0)
		 RETURNING created_at`,
		r.tenant, p.UserID, p.Name, p.ReferralCode,
	).Scan(&p.CreatedAt); err != nil {
		return err
	}

	if _, err := tx.Exec(ctx,
		`INSERT INTO leaderboard_entries (tenant_id, user_id, name, referral_code, total_donations)
		 VALUES ($1, $2, $3, $4, 0)`,
		r.tenant, p.UserID, p.Name, p.ReferralCode,
	); err != nil {
		return err
	}

	p.TotalDonations = 0
	p.DonationsCount = 0

	return tx.Commit(ctx)
}

// Rename updates the display name on both the private profile and the public
// leaderboard entry atomically.
func (r *ProfileRepository) Rename(ctx context.Context, userID int64, name string) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	res, err := tx.Exec(ctx,
		`UPDATE profiles SET name = $1 WHERE tenant_id = $2 AND user_id = $3`,
		name, r.tenant, userID,
	)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return ErrProfileNotFound
	}

	if _, err := tx.Exec(ctx,
		`UPDATE leaderboard_entries SET name = $1 WHERE tenant_id = $2 AND user_id = $3`,
		name, r.tenant, userID,
	); err != nil {
		return err
	}

	return tx.Commit(ctx)
}

func (r *ProfileRepository) GetUserIDByReferralCode(ctx context.Context, code string) (int64, error) {
	var userID int64
	err := r.db.QueryRow(ctx,
		`SELECT user_id FROM profiles WHERE tenant_id = $1 AND referral_code = $2`,
		r.tenant, code,
	).Scan(&userID)
	if errors.Is(err, pgx.ErrNoRows) {
		return 0, ErrProfileNotFound
	}
	return userID, err
}

// RecordDonation adds an incoming donation to the profile totals and mirrors
// the new total onto the leaderboard entry, atomically.
func (r *ProfileRepository) RecordDonation(ctx context.Context, userID int64, amount float64) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	res, err := tx.Exec(ctx,
		`UPDATE profiles
		 SET total_donations = total_donations + $1,
		     donations_count = donations_count + 1
		 WHERE tenant_id = $2 AND user_id = $3`,
		amount, r.tenant, userID,
	)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return ErrProfileNotFound
	}

	if _, err := tx.Exec(ctx,
		`UPDATE leaderboard_entries
		 SET total_donations = total_donations + $1
		 WHERE tenant_id = $2 AND user_id = $3`,
		amount, r.tenant, userID,
	); err != nil {
		return err
	}

	return tx.Commit(ctx)
}

// ListLeaderboard returns every public leaderboard entry, unordered.
// Callers sort with domain.SortLeaderboard before use.
func (r *ProfileRepository) ListLeaderboard(ctx context.Context) ([]domain.LeaderboardEntry, error) {
	rows, err := r.db.Query(ctx,
		`SELECT user_id, name, referral_code, total_donations
		 FROM leaderboard_entries
		 WHERE tenant_id = $1`,
		r.tenant,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []domain.LeaderboardEntry
	for rows.Next() {
		var e domain.LeaderboardEntry
		if err := rows.Scan(&e.UserID, &e.Name, &e.ReferralCode, &e.TotalDonations); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}
