package handlers

import (
	"net/http"

	"psrcustoms/middleware"
	"psrcustoms/models"
	"psrcustoms/services/auth"
	"psrcustoms/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AuthHandler exposes admin login and token verification.
type AuthHandler struct {
	Auth auth.AuthService
}

// NewAuthHandler creates an AuthHandler.
func NewAuthHandler(svc auth.AuthService) *AuthHandler {
	return &AuthHandler{Auth: svc}
}

// LoginHandler handles POST /api/auth/login.
func (h *AuthHandler) LoginHandler(c *gin.Context) {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.GetLogger().Warn("Invalid login request", zap.Error(err))
		badRequest(c, err)
		return
	}

	resp, err := h.Auth.Login(req.Email, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// MeHandler handles GET /api/auth/me. The auth middleware has already
// verified the token and loaded the admin.
func (h *AuthHandler) MeHandler(c *gin.Context) {
	val, ok := c.Get(middleware.ContextAdminKey)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authorized"})
		return
	}
	admin, ok := val.(*models.AdminUser)
	if !ok {
		utils.GetLogger().Error("Invalid admin type in context", zap.Any("admin", val))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Server error"})
		return
	}
	c.JSON(http.StatusOK, admin)
}
