package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/mekdahl/barkassa-api/internal/config"
	"github.com/mekdahl/barkassa-api/pkg/utils"
)

func newAuthTestRouter(t *testing.T) (*gin.Engine, *utils.JWTManager) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	hash, err := bcrypt.GenerateFromPassword([]byte("1234"), bcrypt.MinCost)
	require.NoError(t, err)

	cfg := &config.Config{}
	cfg.App.Name = "front-bar"
	cfg.Auth.PINHash = string(hash)
	cfg.Auth.SessionTTL = time.Hour

	jwtManager := utils.NewJWTManager("test-secret", time.Hour)

	router := gin.New()
	h := NewAuthHandler(cfg, jwtManager)
	router.POST("/auth/unlock", h.Unlock)
	return router, jwtManager
}

func TestUnlockWithCorrectPIN(t *testing.T) {
	router, jwtManager := newAuthTestRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/auth/unlock", strings.NewReader(`{"pin":"1234"}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "token")

	// The issued token must validate against the same manager.
	body := w.Body.String()
	start := strings.Index(body, `"token":"`) + len(`"token":"`)
	end := strings.Index(body[start:], `"`)
	_, err := jwtManager.ValidateSessionToken(body[start : start+end])
	assert.NoError(t, err)
}

func TestUnlockWithWrongPIN(t *testing.T) {
	router, _ := newAuthTestRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/auth/unlock", strings.NewReader(`{"pin":"9999"}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestUnlockWithoutPIN(t *testing.T) {
	router, _ := newAuthTestRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/auth/unlock", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
