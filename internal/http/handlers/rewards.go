package handlers

import (
	"crypto/subtle"
	"errors"
	"net/http"

	"intern_rewards/internal/domain"
	"intern_rewards/internal/service"

	"github.com/gin-gonic/gin"
)

// ListRewards returns the catalog sorted ascending by points threshold.
func (h *Handler) ListRewards(c *gin.Context) {
	rewards, err := h.RewardRepo.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to get rewards"})
		return
	}

	domain.SortRewards(rewards)
	c.JSON(http.StatusOK, gin.H{"rewards": rewards})
}

type RewardUpsertRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
	Points      int64  `json:"points"`
	SortOrder   int    `json:"sort_order"`
}

// CatalogHandler is the surface for external catalog curation. Like the
// donation recorder it is keyed, not session-authenticated. Writing through
// here (instead of straight to Postgres) is what pushes catalog changes to
// connected clients.
type CatalogHandler struct {
	catalog     *service.CatalogService
	internalKey string
}

func NewCatalogHandler(catalog *service.CatalogService, internalKey string) *CatalogHandler {
	return &CatalogHandler{catalog: catalog, internalKey: internalKey}
}

// Upsert creates or updates a catalog item, keyed by title.
func (h *CatalogHandler) Upsert(c *gin.Context) {
	if h.internalKey == "" {
		c.JSON(http.StatusNotFound, gin.H{"error": "catalog curation disabled"})
		return
	}
	key := c.GetHeader("X-Internal-Key")
	if subtle.ConstantTimeCompare([]byte(key), []byte(h.internalKey)) != 1 {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var req RewardUpsertRequest
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "title is required"})
		return
	}

	rw := &domain.Reward{
		Title:       req.Title,
		Description: req.Description,
		Icon:        req.Icon,
		Points:      req.Points,
		SortOrder:   req.SortOrder,
	}
	if err := h.catalog.UpsertReward(c.Request.Context(), rw); err != nil {
		switch {
		case errors.Is(err, service.ErrEmptyTitle), errors.Is(err, service.ErrInvalidPoints):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save reward"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true, "id": rw.ID})
}
