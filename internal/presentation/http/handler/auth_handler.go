package handler

import (
	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"

	"github.com/mekdahl/barkassa-api/internal/config"
	"github.com/mekdahl/barkassa-api/internal/presentation/http/dto/request"
	"github.com/mekdahl/barkassa-api/internal/presentation/http/dto/response"
	"github.com/mekdahl/barkassa-api/pkg/utils"
)

// AuthHandler unlocks the register with a PIN and issues session tokens.
type AuthHandler struct {
	cfg        *config.Config
	jwtManager *utils.JWTManager
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(cfg *config.Config, jwtManager *utils.JWTManager) *AuthHandler {
	return &AuthHandler{cfg: cfg, jwtManager: jwtManager}
}

// Unlock verifies the register PIN and returns a session token.
func (h *AuthHandler) Unlock(c *gin.Context) {
	var req request.UnlockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "PIN is required")
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(h.cfg.Auth.PINHash), []byte(req.PIN)); err != nil {
		response.Unauthorized(c, "Invalid PIN")
		return
	}

	token, err := h.jwtManager.GenerateSessionToken(h.cfg.App.Name)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Register unlocked", gin.H{
		"token":      token,
		"expires_in": int(h.cfg.Auth.SessionTTL.Seconds()),
	})
}
