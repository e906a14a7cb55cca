package handlers

import (
	"net/http"

	"intern_rewards/internal/domain"

	"github.com/gin-gonic/gin"
)

// GetLeaderboard returns every public entry, ranked by total donations
// descending with deterministic tie-breaking on user ID.
func (h *Handler) GetLeaderboard(c *gin.Context) {
	entries, err := h.ProfileRepo.ListLeaderboard(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to get leaderboard"})
		return
	}

	domain.SortLeaderboard(entries)

	rows := make([]gin.H, 0, len(entries))
	for i, e := range entries {
		rows = append(rows, gin.H{
			"rank":            i + 1,
			"id":              e.UserID,
			"name":            e.Name,
			"referral_code":   e.ReferralCode,
			"total_donations": e.TotalDonations,
			"points":          e.Points(),
		})
	}

	c.JSON(http.StatusOK, gin.H{"leaderboard": rows})
}
