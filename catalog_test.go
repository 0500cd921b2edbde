package main

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetCatalog(t *testing.T) {
	router := setupRouter()
	w := doRequest(router, http.MethodGet, "/api/catalog", "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var tiers []catalogTierResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &tiers))
	require.Len(t, tiers, 3)

	assert.Equal(t, "low", tiers[0].Tier)
	assert.Equal(t, 0, tiers[0].MinCalories)
	require.NotNil(t, tiers[0].MaxCalories)
	assert.Equal(t, 1800, *tiers[0].MaxCalories)
	assert.Equal(t, 350, tiers[0].Meals.Breakfast.Calories)
	assert.Equal(t, 1450, tiers[0].Totals.Calories)

	assert.Equal(t, "medium", tiers[1].Tier)
	assert.Equal(t, 1800, tiers[1].MinCalories)
	require.NotNil(t, tiers[1].MaxCalories)
	assert.Equal(t, 2200, *tiers[1].MaxCalories)
	assert.Equal(t, "Turkey breast with brown rice", tiers[1].Meals.Dinner.Name)

	assert.Equal(t, "high", tiers[2].Tier)
	assert.Equal(t, 2200, tiers[2].MinCalories)
	assert.Nil(t, tiers[2].MaxCalories)
	assert.Equal(t, 1600, tiers[2].Totals.Calories)
}

func TestGetActivityLevels(t *testing.T) {
	router := setupRouter()
	w := doRequest(router, http.MethodGet, "/api/activity-levels", "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var levels []activityLevelResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &levels))
	require.Len(t, levels, 5)
	assert.Equal(t, activityLevelResponse{
		Level:       1,
		Label:       "Sedentary",
		Description: "little or no exercise",
		Multiplier:  1.2,
	}, levels[0])
	assert.Equal(t, 5, levels[4].Level)
	assert.Equal(t, 1.9, levels[4].Multiplier)
}
