package handlers

import (
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
)

func withUser(userID int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("user_id", userID)
		c.Next()
	}
}

func TestUpdateNameRejectsWhitespace(t *testing.T) {
	r, h := newTestRouter()
	r.PUT("/me/name", withUser(1), h.UpdateName)

	// whitespace-only names are rejected before any store access
	w := httptest.NewRecorder()
	req := httptest.NewRequest("PUT", "/me/name", strings.NewReader(`{"name":"   "}`))
	r.ServeHTTP(w, req)

	if w.Code != 400 {
		t.Errorf("status = %d, want 400", w.Code)
	}
}

func TestUpdateNameRequiresSession(t *testing.T) {
	r, h := newTestRouter()
	r.PUT("/me/name", h.UpdateName)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("PUT", "/me/name", strings.NewReader(`{"name":"Alice"}`))
	r.ServeHTTP(w, req)

	if w.Code != 401 {
		t.Errorf("status = %d, want 401", w.Code)
	}
}
