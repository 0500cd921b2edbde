package main

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"lg/diet-planner/internal/diet"
)

// bindProfile decodes and validates the profile body. On failure it writes a
// 400 and returns ok=false; the caller just returns.
func bindProfile(c *gin.Context) (diet.UserProfile, bool) {
	var body profileRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		apiError(c, http.StatusBadRequest, "invalid request body")
		return diet.UserProfile{}, false
	}
	p, err := body.toProfile()
	if err != nil {
		apiError(c, http.StatusBadRequest, err.Error())
		return diet.UserProfile{}, false
	}
	return p, true
}

func newMetricsResponse(p diet.UserProfile, m diet.Metrics) metricsResponse {
	return metricsResponse{
		BMI:                roundTo(m.BMI, 1),
		BMICategory:        string(m.Category),
		BMR:                int(roundTo(m.BMR, 0)),
		DailyCalories:      m.DailyCalories,
		ActivityLevel:      int(p.ActivityLevel),
		ActivityLabel:      p.ActivityLevel.Label(),
		ActivityMultiplier: p.ActivityLevel.Multiplier(),
	}
}

// newMealPlanResponse selects and scales the plan for dailyCalories.
func (h *Handler) newMealPlanResponse(dailyCalories int) mealPlanResponse {
	plan := h.catalog.Plan(dailyCalories)
	return mealPlanResponse{
		DailyCalories: dailyCalories,
		Tier:          diet.SelectTier(dailyCalories).String(),
		CalorieFactor: roundTo(diet.CalorieFactor(dailyCalories), 4),
		Meals:         plan,
		Totals:        plan.Totals(),
	}
}

// createPlan computes metrics for the posted profile and the meal plan for
// its daily calorie estimate.
// POST /api/plan.
func (h *Handler) createPlan(c *gin.Context) {
	p, ok := bindProfile(c)
	if !ok {
		return
	}

	m := diet.Compute(p)
	resp := planResponse{
		Name:     p.Name,
		Metrics:  newMetricsResponse(p, m),
		MealPlan: h.newMealPlanResponse(m.DailyCalories),
	}

	h.log.Debug().
		Str("request_id", c.GetString("request_id")).
		Int("daily_calories", m.DailyCalories).
		Str("tier", resp.MealPlan.Tier).
		Msg("plan generated")

	c.JSON(http.StatusOK, resp)
}

// computeMetrics returns BMI, BMR and the daily calorie estimate without a plan.
// POST /api/metrics.
func (h *Handler) computeMetrics(c *gin.Context) {
	p, ok := bindProfile(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, newMetricsResponse(p, diet.Compute(p)))
}

// getMealPlan returns the scaled plan for an explicit calorie target.
// GET /api/meal-plan?calories=N. N must be a positive integer.
func (h *Handler) getMealPlan(c *gin.Context) {
	raw := c.Query("calories")
	if raw == "" {
		apiError(c, http.StatusBadRequest, "calories query param is required")
		return
	}
	calories, err := strconv.Atoi(raw)
	if err != nil || calories <= 0 {
		apiError(c, http.StatusBadRequest, "calories must be a positive integer")
		return
	}

	c.JSON(http.StatusOK, h.newMealPlanResponse(calories))
}
