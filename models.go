package main

import (
	"lg/diet-planner/internal/diet"
)

/* ─── Request types ──────────────────────────────────────────────────── */

// profileRequest is the request body for POST /api/plan and POST /api/metrics.
// Sex accepts "male"/"female" or "M"/"F" in any case.
type profileRequest struct {
	Name          string  `json:"name"`
	Age           int     `json:"age"`
	Sex           string  `json:"sex"`
	WeightKG      float64 `json:"weight_kg"`
	HeightCM      float64 `json:"height_cm"`
	ActivityLevel int     `json:"activity_level"`
}

// toProfile validates the request and converts it to a domain profile.
func (r profileRequest) toProfile() (diet.UserProfile, error) {
	sex, err := diet.ParseSex(r.Sex)
	if err != nil {
		return diet.UserProfile{}, err
	}
	return diet.NewUserProfile(r.Name, r.Age, sex, r.WeightKG, r.HeightCM, diet.ActivityLevel(r.ActivityLevel))
}

/* ─── Response types ─────────────────────────────────────────────────── */

// metricsResponse is the response for POST /api/metrics. BMI is rounded to
// one decimal and BMR to a whole kcal; daily_calories is the exact value
// used for tier selection.
type metricsResponse struct {
	BMI                float64 `json:"bmi"`
	BMICategory        string  `json:"bmi_category"`
	BMR                int     `json:"bmr"`
	DailyCalories      int     `json:"daily_calories"`
	ActivityLevel      int     `json:"activity_level"`
	ActivityLabel      string  `json:"activity_label"`
	ActivityMultiplier float64 `json:"activity_multiplier"`
}

// mealPlanResponse is the response for GET /api/meal-plan and the meal_plan
// section of POST /api/plan.
type mealPlanResponse struct {
	DailyCalories int            `json:"daily_calories"`
	Tier          string         `json:"tier"`
	CalorieFactor float64        `json:"calorie_factor"`
	Meals         diet.MealPlan  `json:"meals"`
	Totals        diet.Nutrition `json:"totals"`
}

// planResponse is the response for POST /api/plan.
type planResponse struct {
	Name     string           `json:"name"`
	Metrics  metricsResponse  `json:"metrics"`
	MealPlan mealPlanResponse `json:"meal_plan"`
}

// catalogTierResponse is one entry of GET /api/catalog. MaxCalories is null
// for the open-ended top tier.
type catalogTierResponse struct {
	Tier        string         `json:"tier"`
	MinCalories int            `json:"min_calories"`
	MaxCalories *int           `json:"max_calories"`
	Meals       diet.MealPlan  `json:"meals"`
	Totals      diet.Nutrition `json:"totals"`
}

// activityLevelResponse is one entry of GET /api/activity-levels.
type activityLevelResponse struct {
	Level       int     `json:"level"`
	Label       string  `json:"label"`
	Description string  `json:"description"`
	Multiplier  float64 `json:"multiplier"`
}
