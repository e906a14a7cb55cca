package handlers

import (
	"intern_rewards/internal/repository"
	"intern_rewards/internal/service"
	"intern_rewards/internal/ws"

	"github.com/jackc/pgx/v5/pgxpool"
)

type Handler struct {
	DB          *pgxpool.Pool
	Auth        *service.AuthService
	Profiles    *service.ProfileService
	ProfileRepo *repository.ProfileRepository
	RewardRepo  *repository.RewardRepository
	Hub         *ws.Hub
}

func NewHandler(db *pgxpool.Pool, tenant string, hub *ws.Hub) *Handler {
	accountRepo := repository.NewAccountRepository(db, tenant)
	profileRepo := repository.NewProfileRepository(db, tenant)
	rewardRepo := repository.NewRewardRepository(db, tenant)

	var feeds service.FeedNotifier
	if hub != nil {
		feeds = hub
	}
	bootstrap := service.NewBootstrapper(profileRepo, feeds)

	return &Handler{
		DB:          db,
		Auth:        service.NewAuthService(accountRepo, bootstrap),
		Profiles:    service.NewProfileService(profileRepo, feeds),
		ProfileRepo: profileRepo,
		RewardRepo:  rewardRepo,
		Hub:         hub,
	}
}

// getUserID extracts the authenticated account ID set by the JWT middleware.
func getUserID(c interface{ Get(string) (any, bool) }) (int64, bool) {
	uidVal, ok := c.Get("user_id")
	if !ok {
		return 0, false
	}
	switch v := uidVal.(type) {
	case int64:
		return v, true
	case float64:
		return int64(v), true
	default:
		return 0, false
	}
}
