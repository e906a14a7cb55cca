package repository

import (
	"context"
	"errors"

	"intern_rewards/internal/domain"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

var ErrEmailTaken = errors.New("email already registered")

type AccountRepository struct {
	db     *pgxpool.Pool
	tenant string
}

func NewAccountRepository(db *pgxpool.Pool, tenant string) *AccountRepository {
	return &AccountRepository{db: db, tenant: tenant}
}

func (r *AccountRepository) Create(ctx context.Context, a *domain.Account) error {
	err := r.db.QueryRow(ctx,
		`INSERT INTO accounts (tenant_id, email, password_hash)
		 VALUES ($1, NULLIF($2, ''), $3)
		 RETURNING id, created_at`,
		r.tenant, a.Email, a.PasswordHash,
	).Scan(&a.ID, &a.CreatedAt)

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return ErrEmailTaken
	}
	return err
}

func (r *AccountRepository) GetByEmail(ctx context.Context, email string) (*domain.Account, error) {
	row := r.db.QueryRow(ctx,
		`SELECT id, COALESCE(email, ''), password_hash, created_at
		 FROM accounts
		 WHERE tenant_id = $1 AND email = $2`,
		r.tenant, email,
	)

	var a domain.Account
	if err := row.Scan(&a.ID, &a.Email, &a.PasswordHash, &a.CreatedAt); err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *AccountRepository) GetByID(ctx context.Context, id int64) (*domain.Account, error) {
	row := r.db.QueryRow(ctx,
		`SELECT id, COALESCE(email, ''), password_hash, created_at
		 FROM accounts
		 WHERE tenant_id = $1 AND id = $2`,
		r.tenant, id,
	)

	var a domain.Account
	if err := row.Scan(&a.ID, &a.Email, &a.PasswordHash, &a.CreatedAt); err != nil {
		return nil, err
	}
	return &a, nil
}
