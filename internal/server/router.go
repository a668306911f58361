// Package server wires the HTTP routes.
package server

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/spellingplay/worksheetgen/internal/handlers"
)

// RouterConfig collects the handlers and cross-cutting settings for the
// HTTP surface.
type RouterConfig struct {
	WorksheetHandler *handlers.WorksheetHandler
	ContactHandler   *handlers.ContactHandler
	HealthHandler    *handlers.HealthHandler
	CORSOrigins      []string
}

// NewRouter builds the gin engine with all routes registered.
func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())

	if len(cfg.CORSOrigins) > 0 {
		router.Use(cors.New(cors.Config{
			AllowOrigins: cfg.CORSOrigins,
			AllowMethods: []string{"GET", "POST", "OPTIONS"},
			AllowHeaders: []string{"Content-Type"},
		}))
	}

	router.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "Spelling Play server is running.")
	})

	api := router.Group("/api")
	{
		api.GET("/health", cfg.HealthHandler.Health)
		api.GET("/activities", cfg.WorksheetHandler.ListActivities)
		api.POST("/generate-pdf", cfg.WorksheetHandler.GeneratePDF)
		api.POST("/generate-preview", cfg.WorksheetHandler.GeneratePreview)
		api.POST("/contact", cfg.ContactHandler.Contact)
	}

	return router
}
