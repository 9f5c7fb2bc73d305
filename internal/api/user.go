package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/cadastra/backend/internal/middleware"
	"github.com/cadastra/backend/internal/service"
	"github.com/cadastra/backend/internal/types"
)

// UserHandler exposes the user resource. Listing and lookup are public;
// mutation is owner-only.
type UserHandler struct {
	userService *service.UserService
	validator   middleware.TokenValidator
}

func NewUserHandler(userService *service.UserService, validator middleware.TokenValidator) *UserHandler {
	return &UserHandler{userService: userService, validator: validator}
}

func (h *UserHandler) RegisterRoutes(router *gin.RouterGroup) {
	users := router.Group("/users")
	{
		users.GET("", h.List)
		users.GET("/:id", h.Get)
	}

	owned := router.Group("/users")
	owned.Use(middleware.AuthMiddleware(h.validator))
	{
		owned.PUT("/:id", h.Update)
		owned.DELETE("/:id", h.Delete)
	}
}

func (h *UserHandler) List(c *gin.Context) {
	users, err := h.userService.List(c.Request.Context())
	if err != nil {
		internalError(c, err)
		return
	}
	c.JSON(http.StatusOK, users)
}

func (h *UserHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	user, err := h.userService.Get(c.Request.Context(), id)
	if err != nil {
		if isNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Nenhum usuário localizado"})
			return
		}
		internalError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

func (h *UserHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	caller, ok := middleware.CallerID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var req types.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	user, err := h.userService.Update(c.Request.Context(), id, caller, &req)
	if err != nil {
		switch {
		case isNotFound(err):
			c.JSON(http.StatusNotFound, gin.H{"message": "Nenhum usuário localizado"})
		case isNotOwner(err):
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Não autorizado"})
		default:
			internalError(c, err)
		}
		return
	}
	c.JSON(http.StatusOK, user)
}

func (h *UserHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	caller, ok := middleware.CallerID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	if err := h.userService.Delete(c.Request.Context(), id, caller); err != nil {
		if isNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Nenhum usuário localizado"})
			return
		}
		internalError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
