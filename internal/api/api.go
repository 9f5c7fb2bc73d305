package api

import (
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/cadastra/backend/internal/middleware"
	"github.com/cadastra/backend/internal/service"
)

// SetupAPI wires services and handlers onto the router. redisClient may be
// nil, which disables rate limiting.
func SetupAPI(router *gin.Engine, db *gorm.DB, jwtSecret string, redisClient *redis.Client) {
	router.GET("/health", HealthCheck)

	authService := service.NewAuthService(db, jwtSecret)
	userService := service.NewUserService(db)
	infoService := service.NewUserInfoService(db)

	authHandler := NewAuthHandler(authService)
	userHandler := NewUserHandler(userService, authService)
	infoHandler := NewUserInfoHandler(infoService, authService)

	var authLimiter *middleware.RateLimiter
	if redisClient != nil {
		authLimiter = middleware.NewAuthRateLimiter(redisClient)
	}

	v1 := router.Group("/api/v1")
	authHandler.RegisterRoutes(v1, authLimiter)
	userHandler.RegisterRoutes(v1)
	infoHandler.RegisterRoutes(v1)
}
