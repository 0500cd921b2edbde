package diet

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// makeProfile constructs a validated profile for metric tests. Individual
// tests override single fields to exercise one formula input at a time.
func makeProfile(t *testing.T, sex Sex, age int, weightKG, heightCM float64, level ActivityLevel) UserProfile {
	t.Helper()
	p, err := NewUserProfile("Test User", age, sex, weightKG, heightCM, level)
	require.NoError(t, err)
	return p
}

/* ─── BMI tests ──────────────────────────────────────────────────────── */

// TestBMI_MatchesFormula checks BMI against weight / (height/100)^2 for a
// spread of body sizes.
func TestBMI_MatchesFormula(t *testing.T) {
	cases := []struct {
		weightKG, heightCM float64
	}{
		{80, 180},
		{45.5, 152.4},
		{120, 195},
		{3.2, 50},
	}
	for _, tc := range cases {
		p := makeProfile(t, SexMale, 30, tc.weightKG, tc.heightCM, Sedentary)
		want := tc.weightKG / ((tc.heightCM / 100) * (tc.heightCM / 100))
		got := BMI(p)
		assert.Greater(t, got, 0.0)
		assert.InDelta(t, want, got, 1e-9, "weight=%v height=%v", tc.weightKG, tc.heightCM)
	}
}

func TestClassifyBMI(t *testing.T) {
	tests := []struct {
		name     string
		bmi      float64
		expected BMICategory
	}{
		{"very low", 15.2, Underweight},
		{"just under normal", 18.49, Underweight},
		{"normal boundary", 18.5, NormalWeight},
		{"normal", 22.0, NormalWeight},
		{"overweight boundary", 25.0, Overweight},
		{"overweight", 27.3, Overweight},
		{"obese boundary", 30.0, Obese},
		{"obese", 41.8, Obese},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ClassifyBMI(tt.bmi))
		})
	}
}

/* ─── BMR / daily calorie tests ──────────────────────────────────────── */

// TestCompute_MaleModeratelyActive is the reference scenario:
// BMR = 88.362 + 13.397*80 + 4.799*180 - 5.677*30 = 1853.632,
// daily = round(1853.632 * 1.55) = round(2873.1296) = 2873.
func TestCompute_MaleModeratelyActive(t *testing.T) {
	p := makeProfile(t, SexMale, 30, 80, 180, ModeratelyActive)
	m := Compute(p)

	assert.InDelta(t, 24.69, m.BMI, 0.01)
	assert.Equal(t, NormalWeight, m.Category)
	assert.InDelta(t, 1853.632, m.BMR, 1e-9)
	assert.Equal(t, 2873, m.DailyCalories)
	assert.Equal(t, TierHigh, SelectTier(m.DailyCalories))
	assert.InDelta(t, 1.5961, CalorieFactor(m.DailyCalories), 1e-4)
}

// TestDailyCalories_Female uses the female constants:
// BMR = 447.593 + 9.247*60 + 3.098*165 - 4.330*25 = 1405.333,
// daily = round(1405.333 * 1.2) = round(1686.3996) = 1686.
func TestDailyCalories_Female(t *testing.T) {
	p := makeProfile(t, SexFemale, 25, 60, 165, Sedentary)
	assert.InDelta(t, 1405.333, BMR(p), 1e-9)
	assert.Equal(t, 1686, DailyCalories(p))
}

// TestDailyCalories_ActivityMultipliers walks every level for one profile
// and checks each against BMR * multiplier.
func TestDailyCalories_ActivityMultipliers(t *testing.T) {
	expected := map[ActivityLevel]int{
		Sedentary:        2224, // 1853.632 * 1.2   = 2224.3584
		LightlyActive:    2549, // 1853.632 * 1.375 = 2548.744
		ModeratelyActive: 2873, // 1853.632 * 1.55  = 2873.1296
		VeryActive:       3198, // 1853.632 * 1.725 = 3197.5152
		ExtraActive:      3522, // 1853.632 * 1.9   = 3521.9008
	}
	for _, level := range ActivityLevels() {
		t.Run(level.Label(), func(t *testing.T) {
			p := makeProfile(t, SexMale, 30, 80, 180, level)
			assert.Equal(t, expected[level], DailyCalories(p))
		})
	}
}

// TestDailyCalories_UnknownLevelFallsBack verifies that an unmapped level
// uses the sedentary multiplier instead of failing.
func TestDailyCalories_UnknownLevelFallsBack(t *testing.T) {
	p := makeProfile(t, SexMale, 30, 80, 180, Sedentary)
	p.ActivityLevel = ActivityLevel(9)

	assert.Equal(t, 1.2, p.ActivityLevel.Multiplier())
	assert.Equal(t, "Unknown", p.ActivityLevel.Label())
	assert.Equal(t, "unknown activity level", p.ActivityLevel.Description())
	assert.Equal(t, 2224, DailyCalories(p))
}

/* ─── Monotonicity tests ─────────────────────────────────────────────── */

// TestDailyCalories_Monotonic holds all but one input fixed and checks the
// direction of change: up with weight and height, down with age.
func TestDailyCalories_Monotonic(t *testing.T) {
	t.Run("weight", func(t *testing.T) {
		prev := 0
		for w := 40.0; w <= 160; w += 7.3 {
			got := DailyCalories(makeProfile(t, SexMale, 40, w, 175, VeryActive))
			assert.GreaterOrEqual(t, got, prev, "weight=%v", w)
			prev = got
		}
	})
	t.Run("height", func(t *testing.T) {
		prev := 0
		for h := 140.0; h <= 210; h += 3.7 {
			got := DailyCalories(makeProfile(t, SexMale, 40, 75, h, VeryActive))
			assert.GreaterOrEqual(t, got, prev, "height=%v", h)
			prev = got
		}
	})
	t.Run("age", func(t *testing.T) {
		prev := int(^uint(0) >> 1)
		for age := 18; age <= 90; age += 3 {
			got := DailyCalories(makeProfile(t, SexMale, age, 75, 175, VeryActive))
			assert.LessOrEqual(t, got, prev, "age=%d", age)
			prev = got
		}
	})
}

/* ─── Activity table tests ───────────────────────────────────────────── */

func TestActivityLevels_Table(t *testing.T) {
	levels := ActivityLevels()
	require.Len(t, levels, 5)
	for i, level := range levels {
		assert.Equal(t, ActivityLevel(i+1), level)
		assert.True(t, level.Valid())
		assert.NotEmpty(t, level.Description())
	}
	assert.Equal(t, "Lightly active", LightlyActive.Label())
	assert.Equal(t, 1.725, VeryActive.Multiplier())
	assert.False(t, ActivityLevel(0).Valid())
	assert.False(t, ActivityLevel(6).Valid())
}
