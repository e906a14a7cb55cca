package service

import (
	"context"
	"errors"

	"intern_rewards/internal/domain"
	"intern_rewards/internal/logger"
	"intern_rewards/internal/repository"
)

var (
	ErrEmptyTitle    = errors.New("reward title must not be empty")
	ErrInvalidPoints = errors.New("reward points must not be negative")
)

// CatalogService is the write path for the externally curated reward catalog.
// Routing curation through here (instead of straight to Postgres) is what
// lets connected clients see catalog changes on their rewards feed.
type CatalogService struct {
	rewards *repository.RewardRepository
	feeds   FeedNotifier
}

func NewCatalogService(rewards *repository.RewardRepository, feeds FeedNotifier) *CatalogService {
	if feeds == nil {
		feeds = noopNotifier{}
	}
	return &CatalogService{rewards: rewards, feeds: feeds}
}

// UpsertReward writes a catalog item (keyed by title) and pushes the updated
// catalog to every connected client.
func (s *CatalogService) UpsertReward(ctx context.Context, rw *domain.Reward) error {
	if rw.Title == "" {
		return ErrEmptyTitle
	}
	if rw.Points < 0 {
		return ErrInvalidPoints
	}

	if err := s.rewards.Upsert(ctx, rw); err != nil {
		logger.Error("reward upsert failed", "title", rw.Title, "error", err)
		return err
	}

	s.feeds.NotifyRewards()
	return nil
}
