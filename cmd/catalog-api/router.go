package main

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"bookgallery-backend/internal/shared/middleware"
	"bookgallery-backend/pkg/container"
)

func setupRouter(c *container.CatalogContainer) *gin.Engine {
	router := gin.New()

	router.Use(
		middleware.Recovery(),
		middleware.Logger(),
	)

	router.GET("/healthz", healthHandler(c))

	api := router.Group("/api")
	api.Use(middleware.Auth(c.JWTManager))
	{
		authors := api.Group("/Author")
		{
			authors.POST("", c.AuthorHandler.Create)
			authors.GET("", c.AuthorHandler.List)
			authors.GET("/:id", c.AuthorHandler.GetByID)
			authors.PUT("/:id", c.AuthorHandler.Update)
			authors.DELETE("/:id", c.AuthorHandler.Delete)
		}

		books := api.Group("/Book")
		{
			books.POST("", c.BookHandler.Create)
			books.GET("", c.BookHandler.List)
			// Static route before the id parameter so "genres" is not
			// parsed as a uuid.
			books.GET("/genres", c.BookHandler.Genres)
			books.GET("/:id", c.BookHandler.GetByID)
			books.PUT("/:id", c.BookHandler.Update)
			books.DELETE("/:id", c.BookHandler.Delete)
		}
	}

	return router
}

// healthHandler reports liveness of the service and its backing stores.
func healthHandler(c *container.CatalogContainer) gin.HandlerFunc {
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

		redisStatus := "ok"
		if err := c.Cache.Ping(ctx); err != nil {
			redisStatus = "unreachable"
		}

		gc.JSON(status, gin.H{
			"status": overall,
			"services": gin.H{
				"database": dbStatus,
				"redis":    redisStatus,
			},
		})
	}
}
