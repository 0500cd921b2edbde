package diet

import "math"

// ActivityLevel is the 1-5 ordinal exercise frequency chosen by the user.
type ActivityLevel int

const (
	Sedentary ActivityLevel = iota + 1
	LightlyActive
	ModeratelyActive
	VeryActive
	ExtraActive
)

// defaultActivityMultiplier applies to levels missing from activityLevels.
const defaultActivityMultiplier = 1.2

type activityInfo struct {
	multiplier  float64
	label       string
	description string
}

// activityLevels maps each level to its TDEE multiplier and display text.
// This is the single source of truth for valid levels; Valid and
// ActivityLevels both read from it.
var activityLevels = map[ActivityLevel]activityInfo{
	Sedentary:        {1.2, "Sedentary", "little or no exercise"},
	LightlyActive:    {1.375, "Lightly active", "light exercise 1-3 days/week"},
	ModeratelyActive: {1.55, "Moderately active", "moderate exercise 3-5 days/week"},
	VeryActive:       {1.725, "Very active", "hard exercise 6-7 days/week"},
	ExtraActive:      {1.9, "Extra active", "very hard exercise & physical job"},
}

// ActivityLevels returns every valid level in ascending order.
func ActivityLevels() []ActivityLevel {
	return []ActivityLevel{Sedentary, LightlyActive, ModeratelyActive, VeryActive, ExtraActive}
}

// Valid reports whether a is one of the five known levels.
func (a ActivityLevel) Valid() bool {
	_, ok := activityLevels[a]
	return ok
}

// Multiplier returns the factor applied to BMR. Unknown levels fall back
// to the sedentary multiplier.
func (a ActivityLevel) Multiplier() float64 {
	if info, ok := activityLevels[a]; ok {
		return info.multiplier
	}
	return defaultActivityMultiplier
}

// Label returns e.g. "Moderately active", or "Unknown".
func (a ActivityLevel) Label() string {
	if info, ok := activityLevels[a]; ok {
		return info.label
	}
	return "Unknown"
}

// Description returns the exercise-frequency hint shown in the level menu,
// or "unknown activity level".
func (a ActivityLevel) Description() string {
	if info, ok := activityLevels[a]; ok {
		return info.description
	}
	return "unknown activity level"
}

// BMICategory is the coarse interpretation of a BMI value.
type BMICategory string

const (
	Underweight  BMICategory = "Underweight"
	NormalWeight BMICategory = "Normal weight"
	Overweight   BMICategory = "Overweight"
	Obese        BMICategory = "Obese"
)

// ClassifyBMI buckets a BMI value using the WHO adult cut-offs.
func ClassifyBMI(bmi float64) BMICategory {
	switch {
	case bmi < 18.5:
		return Underweight
	case bmi < 25:
		return NormalWeight
	case bmi < 30:
		return Overweight
	default:
		return Obese
	}
}

// BMI returns weight (kg) divided by height (m) squared.
func BMI(p UserProfile) float64 {
	heightM := p.HeightCM / 100
	return p.WeightKG / (heightM * heightM)
}

// BMR estimates resting energy expenditure with the revised Harris-Benedict
// equation. Any sex other than male uses the female constants.
func BMR(p UserProfile) float64 {
	age := float64(p.Age)
	if p.Sex == SexMale {
		return 88.362 + 13.397*p.WeightKG + 4.799*p.HeightCM - 5.677*age
	}
	return 447.593 + 9.247*p.WeightKG + 3.098*p.HeightCM - 4.330*age
}

// DailyCalories is BMR scaled by the activity multiplier, rounded half away
// from zero.
func DailyCalories(p UserProfile) int {
	return int(math.Round(BMR(p) * p.ActivityLevel.Multiplier()))
}

// Metrics bundles everything derived from a single profile.
type Metrics struct {
	BMI           float64
	Category      BMICategory
	BMR           float64
	DailyCalories int
}

// Compute derives all metrics for p. It does not validate p.
func Compute(p UserProfile) Metrics {
	bmi := BMI(p)
	return Metrics{
		BMI:           bmi,
		Category:      ClassifyBMI(bmi),
		BMR:           BMR(p),
		DailyCalories: DailyCalories(p),
	}
}
