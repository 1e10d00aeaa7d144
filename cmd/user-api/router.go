package main

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"bookgallery-backend/internal/shared/middleware"
	"bookgallery-backend/pkg/container"
)

func setupRouter(c *container.UserContainer) *gin.Engine {
	router := gin.New()

	router.Use(
		middleware.Recovery(),
		middleware.Logger(),
	)

	router.GET("/healthz", healthHandler(c))

	api := router.Group("/api")
	{
		auth := api.Group("/Auth")
		{
			auth.POST("/register", c.AuthHandler.Register)
			auth.POST("/login", c.AuthHandler.Login)
		}

		users := api.Group("/User")
		users.Use(middleware.Auth(c.JWTManager))
		{
			users.GET("/profile", c.UserHandler.Profile)
		}
	}

	return router
}

// healthHandler reports liveness of the service and its database.
func healthHandler(c *container.UserContainer) gin.HandlerFunc {
	return func(gc *gin.Context) {
		ctx, cancel := context.WithTimeout(gc.Request.Context(), 2*time.Second)
		defer cancel()

		status := http.StatusOK
		overall := "ok"
		dbStatus := "ok"
		if err := c.DB.HealthCheck(ctx); err != nil {
			dbStatus = "unreachable"
			overall = "degraded"
			status = http.StatusServiceUnavailable
		}

		gc.JSON(status, gin.H{
			"status": overall,
			"services": gin.H{
				"database": dbStatus,
			},
		})
	}
}
