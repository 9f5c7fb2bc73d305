package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/cadastra/backend/internal/middleware"
	"github.com/cadastra/backend/internal/service"
	"github.com/cadastra/backend/internal/types"
)

// AuthHandler exposes registration and login.
type AuthHandler struct {
	authService *service.AuthService
}

func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// RegisterRoutes mounts the auth endpoints. The rate limiter is optional;
// without Redis the endpoints are simply unthrottled.
func (h *AuthHandler) RegisterRoutes(router *gin.RouterGroup, limiter *middleware.RateLimiter) {
	auth := router.Group("/auth")
	if limiter != nil {
		auth.Use(limiter.ByClientIP())
	}
	{
		auth.POST("/register", h.Register)
		auth.POST("/login", h.Login)
	}
}

func (h *AuthHandler) Register(c *gin.Context) {
	var input map[string]string
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	user, err := h.authService.Register(c.Request.Context(), input)
	if err != nil {
		if validationFailed(c, err) {
			return
		}
		internalError(c, err)
		return
	}

	c.JSON(http.StatusOK, user)
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req types.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	token, err := h.authService.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
			return
		}
		internalError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"type": "bearer", "token": token})
}
