package http

import (
	"intern_rewards/internal/config"
	"intern_rewards/internal/http/handlers"
	"intern_rewards/internal/http/middleware"
	"intern_rewards/internal/repository"
	"intern_rewards/internal/service"
	"intern_rewards/internal/ws"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
)

func RegisterRoutes(r *gin.Engine, db *pgxpool.Pool, cfg *config.Config) {
	profileRepo := repository.NewProfileRepository(db, cfg.TenantID)
	rewardRepo := repository.NewRewardRepository(db, cfg.TenantID)
	hub := ws.NewHub(profileRepo, rewardRepo)

	h := handlers.NewHandler(db, cfg.TenantID, hub)
	healthHandler := handlers.NewHealthHandler(db)
	donationHandler := handlers.NewDonationHandler(h.Profiles, cfg.InternalAPIKey)
	catalogHandler := handlers.NewCatalogHandler(service.NewCatalogService(rewardRepo, hub), cfg.InternalAPIKey)

	// Health checks (no rate limiting)
	r.GET("/healthz", healthHandler.Liveness)
	r.GET("/readyz", healthHandler.Readiness)

	v1 := r.Group("/api/v1")
	v1.Use(middleware.RedisRateLimit(cfg.APIRateLimit, cfg.APIRateWindow))

	// Auth gateway, with a tighter limit than the rest of the API
	authRL := middleware.RedisRateLimit(cfg.AuthRateLimit, cfg.AuthRateWindow)
	auth := v1.Group("/auth")
	{
		auth.POST("/signup", authRL, h.SignUp)
		auth.POST("/signin", authRL, h.SignIn)
		auth.POST("/token", authRL, h.RestoreSession)
		auth.POST("/signout", middleware.JWT(), h.SignOut)
	}

	// Own profile
	v1.GET("/me/profile", middleware.JWT(), h.MyProfile)
	v1.PUT("/me/name", middleware.JWT(), h.UpdateName)

	// Public collections (REST mirrors of the live feeds)
	v1.GET("/leaderboard", middleware.JWT(), h.GetLeaderboard)
	v1.GET("/rewards", middleware.JWT(), h.ListRewards)

	// External donation recorder and catalog curation (keyed, see the handlers)
	v1.POST("/donations", donationHandler.Record)
	v1.PUT("/rewards", catalogHandler.Upsert)

	// Live feeds: own profile + leaderboard + rewards over one connection
	r.GET("/ws", ws.HandleFeeds(hub, cfg.AllowedOrigin))
}
