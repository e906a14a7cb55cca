package repository

import (
	"context"

	"intern_rewards/internal/domain"

	"github.com/jackc/pgx/v5/pgxpool"
)

type RewardRepository struct {
	db     *pgxpool.Pool
	tenant string
}

func NewRewardRepository(db *pgxpool.Pool, tenant string) *RewardRepository {
	return &RewardRepository{db: db, tenant: tenant}
}

// List returns the full catalog, unordered. Callers sort with
// domain.SortRewards before use.
func (r *RewardRepository) List(ctx context.Context) ([]domain.Reward, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, title, description, icon, points, sort_order
		 FROM rewards
		 WHERE tenant_id = $1`,
		r.tenant,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var rewards []domain.Reward
	for rows.Next() {
		var rw domain.Reward
		if err := rows.Scan(&rw.ID, &rw.Title, &rw.Description, &rw.Icon, &rw.Points, &rw.SortOrder); err != nil {
			return nil, err
		}
		rewards = append(rewards, rw)
	}
	return rewards, rows.Err()
}

// Upsert writes a catalog item, keyed by title within the tenant. Used by the
// seeding tool; the running service never writes the catalog.
func (r *RewardRepository) Upsert(ctx context.Context, rw *domain.Reward) error {
	return r.db.QueryRow(ctx,
		`INSERT INTO rewards (tenant_id, title, description, icon, points, sort_order)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 ON CONFLICT (tenant_id, title) DO UPDATE
		 SET description = EXCLUDED.description,
		     icon = EXCLUDED.icon,
		     points = EXCLUDED.points,
		     sort_order = EXCLUDED.sort_order
		 RETURNING id`,
		r.tenant, rw.Title, rw.Description, rw.Icon, rw.Points, rw.SortOrder,
	).Scan(&rw.ID)
}
