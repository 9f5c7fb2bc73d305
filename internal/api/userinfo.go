package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/cadastra/backend/internal/middleware"
	"github.com/cadastra/backend/internal/service"
)

// UserInfoHandler exposes the personal-info resource. Listing is a public
// directory; everything else is owner-only.
type UserInfoHandler struct {
	infoService *service.UserInfoService
	validator   middleware.TokenValidator
}

func NewUserInfoHandler(infoService *service.UserInfoService, validator middleware.TokenValidator) *UserInfoHandler {
	return &UserInfoHandler{infoService: infoService, validator: validator}
}

func (h *UserInfoHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/userinfos", h.List)

	owned := router.Group("/userinfos")
	owned.Use(middleware.AuthMiddleware(h.validator))
	{
		owned.POST("", h.Create)
		owned.GET("/:id", h.Get)
		owned.PUT("/:id", h.Update)
		owned.DELETE("/:id", h.Delete)
	}
}

func (h *UserInfoHandler) List(c *gin.Context) {
	infos, err := h.infoService.List(c.Request.Context())
	if err != nil {
		internalError(c, err)
		return
	}
	c.JSON(http.StatusOK, infos)
}

func (h *UserInfoHandler) Create(c *gin.Context) {
	caller, ok := middleware.CallerID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var input map[string]string
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	info, err := h.infoService.Create(c.Request.Context(), caller, input)
	if err != nil {
		switch {
		case validationFailed(c, err):
		case isNotFound(err):
			c.JSON(http.StatusNotFound, gin.H{"message": "Usuário não encontrado"})
		default:
			internalError(c, err)
		}
		return
	}
	c.JSON(http.StatusOK, info)
}

func (h *UserInfoHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	caller, ok := middleware.CallerID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	info, err := h.infoService.Get(c.Request.Context(), id, caller)
	if err != nil {
		if isNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Nenhum registro localizado"})
			return
		}
		internalError(c, err)
		return
	}
	c.JSON(http.StatusOK, info)
}

func (h *UserInfoHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	caller, ok := middleware.CallerID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var input map[string]string
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	info, err := h.infoService.Update(c.Request.Context(), id, caller, input)
	if err != nil {
		switch {
		case validationFailed(c, err):
		case isNotFound(err):
			c.JSON(http.StatusNotFound, gin.H{"message": "Registro não encontrado"})
		case isNotOwner(err):
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Não autorizado"})
		default:
			internalError(c, err)
		}
		return
	}
	c.JSON(http.StatusOK, info)
}

func (h *UserInfoHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	caller, ok := middleware.CallerID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	if err := h.infoService.Delete(c.Request.Context(), id, caller); err != nil {
		if isNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Nenhum registro localizado"})
			return
		}
		internalError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
