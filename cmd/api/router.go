package main

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"

	"portfolio-backend/internal/shared/middleware"
	"portfolio-backend/pkg/container"
)

func SetupRouter(c *container.Container) (*gin.Engine, error) {
	router := gin.New()

	// Global middlewares
	router.Use(
		middleware.RequestID(),
		middleware.Logger(),
		middleware.Recovery(),
		middleware.Metrics(),
	)

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	v1 := router.Group("/api/v1")
	v1.GET("/health", healthCheckHandler(c))

	if err := setupAuthRoutes(v1, c); err != nil {
		return nil, err
	}

	admin := v1.Group("/admin", middleware.AuthMiddleware(c.JWTManager))
	{
		admin.GET("/dashboard-stats", c.DashboardHandler.Stats)
		admin.GET("/audit-log", c.AuditHandler.List)
	}

	// public list + admin CRUD/import cho từng entity kind
	c.Projects.Handler.RegisterRoutes(v1, admin)
	c.Experience.Handler.RegisterRoutes(v1, admin)
	c.Skills.Handler.RegisterRoutes(v1, admin)
	c.Certifications.Handler.RegisterRoutes(v1, admin)

	return router, nil
}

// ========================================
// AUTH ROUTES
// ========================================
func setupAuthRoutes(v1 *gin.RouterGroup, c *container.Container) error {
	auth := v1.Group("/auth")

	login := []gin.HandlerFunc{}
	if c.Config.RateLimit.Enabled {
		var client *redis.Client
		if c.Redis != nil {
			client = c.Redis.Client
		}
		limit, err := middleware.RateLimit(c.Config.RateLimit.LoginRate, "portfolio:ratelimit:login", client)
		if err != nil {
			return fmt.Errorf("login rate limit: %w", err)
		}
		login = append(login, limit)
	}
	login = append(login, c.AdminHandler.Login)

	auth.POST("/login", login...)
	auth.GET("/me", middleware.AuthMiddleware(c.JWTManager), c.AdminHandler.Me)
	return nil
}

func healthCheckHandler(appCtx *container.Container) gin.HandlerFunc {
	return func(c *gin.Context) {
		health := gin.H{
			"status":    "ok",
			"timestamp": time.Now().Format(time.RFC3339),
			"version":   appCtx.Config.App.Version,
		}

		// Check database
		dbStatus := "ok"
		if appCtx.DB == nil || appCtx.DB.Pool == nil {
			dbStatus = "disconnected"
		} else {
			ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
			defer cancel()

			if err := appCtx.DB.HealthCheck(ctx); err != nil {
				log.Warn().Err(err).Msg("Health check: database unreachable")
				dbStatus = "error"
			}
		}

		// Check redis
		redisStatus := "ok"
		if appCtx.Redis == nil {
			redisStatus = "disconnected"
		} else if err := appCtx.Redis.HealthCheck(c.Request.Context()); err != nil {
			log.Warn().Err(err).Msg("Health check: redis unreachable")
			redisStatus = "error"
		}

		health["services"] = gin.H{
			"database": dbStatus,
			"redis":    redisStatus,
		}

		statusCode := http.StatusOK
		if dbStatus != "ok" {
			health["status"] = "unavailable"
			statusCode = http.StatusServiceUnavailable
		} else if redisStatus != "ok" {
			health["status"] = "degraded"
		}

		c.JSON(statusCode, health)
	}
}
