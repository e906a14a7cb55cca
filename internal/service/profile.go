package service

import (
	"context"
	"errors"
	"strings"

	"intern_rewards/internal/logger"
	"intern_rewards/internal/repository"
)

var (
	ErrEmptyName     = errors.New("name must not be empty")
	ErrInvalidAmount = errors.New("donation amount must be positive")
	ErrUnknownCode   = errors.New("unknown referral code")
)

// ProfileService covers the two write paths on profile data: the owner's
// rename and the external donation recorder.
type ProfileService struct {
	profiles *repository.ProfileRepository
	feeds    FeedNotifier
}

func NewProfileService(profiles *repository.ProfileRepository, feeds FeedNotifier) *ProfileService {
	if feeds == nil {
		feeds = noopNotifier{}
	}
	return &ProfileService{profiles: profiles, feeds: feeds}
}

// Rename sets a new display name on the private profile and the public
// leaderboard entry in one transaction. A name that is empty after trimming
// is rejected before any write happens.
func (s *ProfileService) Rename(ctx context.Context, userID int64, name string) (string, error) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return "", ErrEmptyName
	}

	if err := s.profiles.Rename(ctx, userID, trimmed); err != nil {
		logger.Error("rename failed", "user_id", userID, "error", err)
		return "", err
	}

	s.feeds.NotifyProfile(userID)
	s.feeds.NotifyLeaderboard()
	return trimmed, nil
}

// RecordDonation credits a donation to the intern owning the referral code.
func (s *ProfileService) RecordDonation(ctx context.Context, referralCode string, amount float64) (int64, error) {
	if amount <= 0 {
		return 0, ErrInvalidAmount
	}

	userID, err := s.profiles.GetUserIDByReferralCode(ctx, strings.ToUpper(strings.TrimSpace(referralCode)))
	if err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			return 0, ErrUnknownCode
		}
		return 0, err
	}

	if err := s.profiles.RecordDonation(ctx, userID, amount); err != nil {
		logger.Error("donation recording failed", "user_id", userID, "error", err)
		return 0, err
	}

	s.feeds.NotifyProfile(userID)
	s.feeds.NotifyLeaderboard()
	return userID, nil
}
