package service

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	mrand "math/rand/v2"
	"strings"

	"intern_rewards/internal/domain"
	"intern_rewards/internal/logger"
	"intern_rewards/internal/repository"
)

const referralAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// Bootstrapper lazily creates the profile and its leaderboard projection the
// first time an account authenticates.
type Bootstrapper struct {
	profiles *repository.ProfileRepository
	feeds    FeedNotifier
}

func NewBootstrapper(profiles *repository.ProfileRepository, feeds FeedNotifier) *Bootstrapper {
	if feeds == nil {
		feeds = noopNotifier{}
	}
	return &Bootstrapper{profiles: profiles, feeds: feeds}
}

// EnsureProfile returns the account's profile, creating it (together with the
// leaderboard entry, in one transaction) if this is the first session.
func (b *Bootstrapper) EnsureProfile(ctx context.Context, account *domain.Account) (*domain.Profile, error) {
	existing, err := b.profiles.GetByUserID(ctx, account.ID)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, repository.ErrProfileNotFound) {
		return nil, err
	}

	p := &domain.Profile{
		UserID:       account.ID,
		Name:         DefaultName(account.Email),
		ReferralCode: GenerateReferralCode(),
	}

	if err := b.profiles.CreateWithLeaderboardEntry(ctx, p); err != nil {
		logger.Error("profile bootstrap failed", "user_id", account.ID, "error", err)
		return nil, err
	}

	logger.Info("profile created", "user_id", account.ID, "name", p.Name)
	b.feeds.NotifyProfile(account.ID)
	b.feeds.NotifyLeaderboard()

	return p, nil
}

// DefaultName derives the initial display name: the local part of the email,
// or a random "Intern #NNNN" placeholder. Addresses with an empty local part
// get the placeholder too, never the bare "@domain" string.
func DefaultName(email string) string {
	if at := strings.Index(email, "@"); at > 0 {
		return email[:at]
	}
	if email != "" && !strings.Contains(email, "@") {
		return email
	}
	return fmt.Sprintf("Intern #%d", 1000+mrand.IntN(9000))
}

// GenerateReferralCode draws 6 independent uniform characters from [A-Z0-9].
// Codes are not checked for collisions; at 36^6 combinations that is accepted.
func GenerateReferralCode() string {
	var sb strings.Builder
	for i := 0; i < 6; i++ {
		n, err := rand.Int(rand.Reader, big.NewInt(int64(len(referralAlphabet))))
		if err != nil {
			// crypto/rand never fails on supported platforms
			panic(err)
		}
		sb.WriteByte(referralAlphabet[n.Int64()])
	}
	return sb.String()
}
