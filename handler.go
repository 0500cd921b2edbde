package main

import (
	"math"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"lg/diet-planner/internal/diet"
)

// Handler holds shared dependencies (food catalog, logger) for all route
// handlers. Nothing on it is mutated after construction, so one Handler
// serves concurrent requests.
type Handler struct {
	catalog diet.Catalog
	log     zerolog.Logger
}

func newHandler(log zerolog.Logger) *Handler {
	return &Handler{catalog: diet.DefaultCatalog(), log: log}
}

// apiError returns a consistent JSON error response: {"error": "message"}.
func apiError(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"error": message})
}

// roundTo rounds v to the given number of decimal places for JSON output.
func roundTo(v float64, places int) float64 {
	p := math.Pow(10, float64(places))
	return math.Round(v*p) / p
}

// registerRoutes registers all API routes on the router.
func (h *Handler) registerRoutes(router *gin.Engine) {
	api := router.Group("/api", requestIDMiddleware(), requestLogger(h.log), recoverer(h.log))
	api.POST("/plan", h.createPlan)
	api.POST("/metrics", h.computeMetrics)
	api.GET("/meal-plan", h.getMealPlan)
	api.GET("/catalog", h.getCatalog)
	api.GET("/activity-levels", h.getActivityLevels)
}
