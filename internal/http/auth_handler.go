package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"adopta-gatos/internal/service"
)

// AuthHandler expone login, logout e introspección de sesión.
type AuthHandler struct {
	logger *zap.Logger
	auth   *service.AuthService
	cookie *SessionCookie
}

func NewAuthHandler(logger *zap.Logger, auth *service.AuthService, cookie *SessionCookie) *AuthHandler {
	return &AuthHandler{
		logger: logger,
		auth:   auth,
		cookie: cookie,
	}
}

// Login maneja POST /auth/login.
func (h *AuthHandler) Login(c *gin.Context) {
	var req struct {
		Username string `json:"username" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	result, err := h.auth.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
			return
		}
		h.logger.Error("login failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "unexpected error"})
		return
	}

	h.cookie.Write(c, result.Token)
	c.JSON(http.StatusOK, gin.H{"user": result.User})
}

// Logout maneja POST /auth/logout. Siempre responde ok: destruir una
// sesión inexistente no es un error.
func (h *AuthHandler) Logout(c *gin.Context) {
	h.cookie.Clear(c)
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// Session maneja GET /auth/session.
func (h *AuthHandler) Session(c *gin.Context) {
	token, ok := h.cookie.Read(c)
	if !ok {
		c.JSON(http.StatusOK, gin.H{"authenticated": false})
		return
	}
	claim, valid := h.auth.VerifySession(token)
	if !valid {
		c.JSON(http.StatusOK, gin.H{"authenticated": false})
		return
	}
	c.JSON(http.StatusOK, gin.H{"authenticated": true, "user": claim})
}
