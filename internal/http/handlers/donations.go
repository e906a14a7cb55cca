package handlers

import (
	"crypto/subtle"
	"errors"
	"net/http"

	"intern_rewards/internal/service"

	"github.com/gin-gonic/gin"
)

type DonationRequest struct {
	ReferralCode string  `json:"referral_code" binding:"required"`
	Amount       float64 `json:"amount" binding:"required"`
}

// DonationHandler is the surface for external donation-recording processes.
// It is keyed, not session-authenticated: donors are not interns.
type DonationHandler struct {
	profiles    *service.ProfileService
	internalKey string
}

func NewDonationHandler(profiles *service.ProfileService, internalKey string) *DonationHandler {
	return &DonationHandler{profiles: profiles, internalKey: internalKey}
}

// Record credits a donation to the intern owning the referral code.
func (h *DonationHandler) Record(c *gin.Context) {
	if h.internalKey == "" {
		c.JSON(http.StatusNotFound, gin.H{"error": "donation recording disabled"})
		return
	}
	key := c.GetHeader("X-Internal-Key")
	if subtle.ConstantTimeCompare([]byte(key), []byte(h.internalKey)) != 1 {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var req DonationRequest
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "referral_code and amount are required"})
		return
	}

	userID, err := h.profiles.RecordDonation(c.Request.Context(), req.ReferralCode, req.Amount)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidAmount):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, service.ErrUnknownCode):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to record donation"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true, "user_id": userID})
}
