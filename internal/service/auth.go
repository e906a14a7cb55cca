package service

import (
	"context"
	"errors"
	"strings"

	"intern_rewards/internal/domain"
	"intern_rewards/internal/logger"
	"intern_rewards/internal/repository"

	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrEmailTaken         = errors.New("an account with this email already exists")
	ErrWeakPassword       = errors.New("password must be at least 6 characters")
	ErrBadEmail           = errors.New("a valid email is required")
)

// AuthService is the auth gateway: account creation, sign-in, and best-effort
// token session restoration. Every successful authentication runs the profile
// bootstrapper, so a profile exists iff the account authenticated at least once.
type AuthService struct {
	accounts  *repository.AccountRepository
	bootstrap *Bootstrapper
}

func NewAuthService(accounts *repository.AccountRepository, bootstrap *Bootstrapper) *AuthService {
	return &AuthService{accounts: accounts, bootstrap: bootstrap}
}

// SignUp creates an account and its initial profile, and issues a session token.
func (s *AuthService) SignUp(ctx context.Context, email, password string) (*domain.Account, string, error) {
	email = strings.TrimSpace(strings.ToLower(email))
	// both sides of the @ must be non-empty
	if at := strings.Index(email, "@"); at < 1 || at == len(email)-1 {
		return nil, "", ErrBadEmail
	}
	if len(password) < 6 {
		return nil, "", ErrWeakPassword
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", err
	}

	account := &domain.Account{Email: email, PasswordHash: string(hash)}
	if err := s.accounts.Create(ctx, account); err != nil {
		if errors.Is(err, repository.ErrEmailTaken) {
			return nil, "", ErrEmailTaken
		}
		return nil, "", err
	}

	if _, err := s.bootstrap.EnsureProfile(ctx, account); err != nil {
		return nil, "", err
	}

	token, err := GenerateSessionToken(account.ID)
	if err != nil {
		return nil, "", err
	}
	return account, token, nil
}

// SignIn authenticates an existing account and issues a session token.
// The profile is created lazily here too, in case an earlier bootstrap failed.
func (s *AuthService) SignIn(ctx context.Context, email, password string) (*domain.Account, string, error) {
	email = strings.TrimSpace(strings.ToLower(email))

	account, err := s.accounts.GetByEmail(ctx, email)
	if err != nil {
		return nil, "", ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(password)); err != nil {
		return nil, "", ErrInvalidCredentials
	}

	if _, err := s.bootstrap.EnsureProfile(ctx, account); err != nil {
		return nil, "", err
	}

	token, err := GenerateSessionToken(account.ID)
	if err != nil {
		return nil, "", err
	}
	return account, token, nil
}

// RestoreSession validates a pre-provisioned session token and returns the
// account with a fresh token. Best-effort: callers log failures and fall back
// to the login surface.
func (s *AuthService) RestoreSession(ctx context.Context, token string) (*domain.Account, string, error) {
	accountID, err := ParseSessionToken(token)
	if err != nil {
		logger.Warn("session restoration failed", "error", err)
		return nil, "", ErrInvalidCredentials
	}

	account, err := s.accounts.GetByID(ctx, accountID)
	if err != nil {
		logger.Warn("session restoration failed", "account_id", accountID, "error", err)
		return nil, "", ErrInvalidCredentials
	}

	if _, err := s.bootstrap.EnsureProfile(ctx, account); err != nil {
		return nil, "", err
	}

	fresh, err := GenerateSessionToken(account.ID)
	if err != nil {
		return nil, "", err
	}
	return account, fresh, nil
}
