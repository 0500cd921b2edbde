package main

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"lg/diet-planner/internal/diet"
)

// getCatalog returns the unscaled food options for every tier along with
// the calorie band that selects it.
// GET /api/catalog.
func (h *Handler) getCatalog(c *gin.Context) {
	tiers := make([]catalogTierResponse, 0, diet.NumTiers)
	for _, t := range diet.Tiers() {
		lo, hi := t.CalorieRange()
		entry := h.catalog.Entry(t)
		resp := catalogTierResponse{
			Tier:        t.String(),
			MinCalories: lo,
			Meals:       entry,
			Totals:      entry.Totals(),
		}
		if hi > 0 {
			resp.MaxCalories = &hi
		}
		tiers = append(tiers, resp)
	}
	c.JSON(http.StatusOK, tiers)
}

// getActivityLevels lists the valid activity levels and their multipliers.
// GET /api/activity-levels.
func (h *Handler) getActivityLevels(c *gin.Context) {
	levels := diet.ActivityLevels()
	result := make([]activityLevelResponse, len(levels))
	for i, level := range levels {
		result[i] = activityLevelResponse{
			Level:       int(level),
			Label:       level.Label(),
			Description: level.Description(),
			Multiplier:  level.Multiplier(),
		}
	}
	c.JSON(http.StatusOK, result)
}
