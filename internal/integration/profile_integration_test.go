package integration

import (
	"context"
	"errors"
	"fmt"
	"os"
	"testing"
	"time"

	"intern_rewards/internal/domain"
	"intern_rewards/internal/repository"
	"intern_rewards/internal/service"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Integration tests run only with DATABASE_URL set and migrations applied
// (cmd/migrate_apply -apply). Each run uses a fresh tenant so state from
// earlier runs cannot interfere.

func setup(t *testing.T) (*pgxpool.Pool, string) {
	t.Helper()
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		t.Skip("DATABASE_URL not set; skipping integration test")
	}

	pool, err := pgxpool.New(context.Background(), dsn)
	if err != nil {
		t.Fatalf("connect: %v", err)
	}
	t.Cleanup(pool.Close)

	tenant := fmt.Sprintf("it-%d", time.Now().UnixNano())
	return pool, tenant
}

func createAccount(t *testing.T, pool *pgxpool.Pool, tenant, email string) *domain.Account {
	t.Helper()
	accounts := repository.NewAccountRepository(pool, tenant)
	a := &domain.Account{Email: email, PasswordHash: "x"}
	if err := accounts.Create(context.Background(), a); err != nil {
		t.Fatalf("create account: %v", err)
	}
	return a
}

func TestBootstrapCreatesBothCopies(t *testing.T) {
	pool, tenant := setup(t)
	ctx := context.Background()

	profiles := repository.NewProfileRepository(pool, tenant)
	bootstrap := service.NewBootstrapper(profiles, nil)

	account := createAccount(t, pool, tenant, "jane.doe@x.com")

	p, err := bootstrap.EnsureProfile(ctx, account)
	if err != nil {
		t.Fatalf("bootstrap: %v", err)
	}
	if p.Name != "jane.doe" {
		t.Errorf("default name = %q, want %q", p.Name, "jane.doe")
	}
	if p.TotalDonations != 0 || p.DonationsCount != 0 {
		t.Errorf("fresh profile has totals %v/%d, want 0/0", p.TotalDonations, p.DonationsCount)
	}

	entries, err := profiles.ListLeaderboard(ctx)
	if err != nil {
		t.Fatalf("list leaderboard: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("leaderboard has %d entries, want 1", len(entries))
	}
	if entries[0].Name != p.Name || entries[0].ReferralCode != p.ReferralCode {
		t.Errorf("leaderboard entry %+v diverges from profile %+v", entries[0], p)
	}

	// a second session must reuse the profile, not recreate it
	again, err := bootstrap.EnsureProfile(ctx, account)
	if err != nil {
		t.Fatalf("second bootstrap: %v", err)
	}
	if again.ReferralCode != p.ReferralCode {
		t.Errorf("referral code changed across sessions: %q -> %q", p.ReferralCode, again.ReferralCode)
	}
}

func TestRenameUpdatesBothCopies(t *testing.T) {
	pool, tenant := setup(t)
	ctx := context.Background()

	profiles := repository.NewProfileRepository(pool, tenant)
	bootstrap := service.NewBootstrapper(profiles, nil)
	svc := service.NewProfileService(profiles, nil)

	account := createAccount(t, pool, tenant, "bob@x.com")
	if _, err := bootstrap.EnsureProfile(ctx, account); err != nil {
		t.Fatalf("bootstrap: %v", err)
	}

	name, err := svc.Rename(ctx, account.ID, "  Alice B  ")
	if err != nil {
		t.Fatalf("rename: %v", err)
	}
	if name != "Alice B" {
		t.Errorf("rename returned %q, want trimmed %q", name, "Alice B")
	}

	p, err := profiles.GetByUserID(ctx, account.ID)
	if err != nil {
		t.Fatalf("get profile: %v", err)
	}
	if p.Name != "Alice B" {
		t.Errorf("profile name = %q, want %q", p.Name, "Alice B")
	}

	entries, _ := profiles.ListLeaderboard(ctx)
	if len(entries) != 1 || entries[0].Name != "Alice B" {
		t.Errorf("leaderboard name not mirrored: %+v", entries)
	}
}

func TestWhitespaceRenameLeavesBothCopiesUntouched(t *testing.T) {
	pool, tenant := setup(t)
	ctx := context.Background()

	profiles := repository.NewProfileRepository(pool, tenant)
	bootstrap := service.NewBootstrapper(profiles, nil)
	svc := service.NewProfileService(profiles, nil)

	account := createAccount(t, pool, tenant, "carol@x.com")
	p, err := bootstrap.EnsureProfile(ctx, account)
	if err != nil {
		t.Fatalf("bootstrap: %v", err)
	}

	if _, err := svc.Rename(ctx, account.ID, "   "); !errors.Is(err, service.ErrEmptyName) {
		t.Fatalf("rename error = %v, want ErrEmptyName", err)
	}

	after, _ := profiles.GetByUserID(ctx, account.ID)
	if after.Name != p.Name {
		t.Errorf("profile name changed to %q on rejected rename", after.Name)
	}
	entries, _ := profiles.ListLeaderboard(ctx)
	if len(entries) != 1 || entries[0].Name != p.Name {
		t.Errorf("leaderboard name changed on rejected rename: %+v", entries)
	}
}

func TestRecordDonationUpdatesTotalsAndPoints(t *testing.T) {
	pool, tenant := setup(t)
	ctx := context.Background()

	profiles := repository.NewProfileRepository(pool, tenant)
	bootstrap := service.NewBootstrapper(profiles, nil)
	svc := service.NewProfileService(profiles, nil)

	account := createAccount(t, pool, tenant, "dave@x.com")
	p, err := bootstrap.EnsureProfile(ctx, account)
	if err != nil {
		t.Fatalf("bootstrap: %v", err)
	}

	userID, err := svc.RecordDonation(ctx, p.ReferralCode, 95)
	if err != nil {
		t.Fatalf("record donation: %v", err)
	}
	if userID != account.ID {
		t.Errorf("donation credited to %d, want %d", userID, account.ID)
	}

	after, _ := profiles.GetByUserID(ctx, account.ID)
	if after.TotalDonations != 95 || after.DonationsCount != 1 {
		t.Errorf("totals = %v/%d, want 95/1", after.TotalDonations, after.DonationsCount)
	}
	if after.Points() != 9 {
		t.Errorf("points = %d, want 9", after.Points())
	}

	entries, _ := profiles.ListLeaderboard(ctx)
	if len(entries) != 1 || entries[0].TotalDonations != 95 {
		t.Errorf("leaderboard total not mirrored: %+v", entries)
	}
}
