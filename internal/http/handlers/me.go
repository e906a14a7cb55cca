package handlers

import (
	"errors"
	"net/http"

	"intern_rewards/internal/repository"
	"intern_rewards/internal/service"

	"github.com/gin-gonic/gin"
)

// MyProfile returns the caller's private profile with derived points.
// 404 means the profile is not bootstrapped yet; clients treat it as loading.
func (h *Handler) MyProfile(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	p, err := h.ProfileRepo.GetByUserID(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "profile not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load profile"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"id":              p.UserID,
		"name":            p.Name,
		"referral_code":   p.ReferralCode,
		"total_donations": p.TotalDonations,
		"donations_count": p.DonationsCount,
		"points":          p.Points(),
		"created_at":      p.CreatedAt,
	})
}

type RenameRequest struct {
	Name string `json:"name"`
}

// UpdateName renames the caller on both the private profile and the public
// leaderboard entry. Whitespace-only names are rejected without writing.
func (h *Handler) UpdateName(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var req RenameRequest
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "bad request"})
		return
	}

	name, err := h.Profiles.Rename(c.Request.Context(), userID, req.Name)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrEmptyName):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, repository.ErrProfileNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "profile not found"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update name"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"name": name})
}
