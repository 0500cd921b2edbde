package diet

import "math"

// FoodItem is one catalog option with its nutrition.
type FoodItem struct {
	Name     string  `json:"name"`
	Calories int     `json:"calories"`
	ProteinG float64 `json:"protein_g"`
	CarbsG   float64 `json:"carbs_g"`
	FatG     float64 `json:"fat_g"`
}

// Scale returns a copy of f with calories rounded to the nearest kcal and
// macros rounded to one decimal place.
func (f FoodItem) Scale(factor float64) FoodItem {
	return FoodItem{
		Name:     f.Name,
		Calories: int(math.Round(float64(f.Calories) * factor)),
		ProteinG: roundTenth(f.ProteinG * factor),
		CarbsG:   roundTenth(f.CarbsG * factor),
		FatG:     roundTenth(f.FatG * factor),
	}
}

func roundTenth(v float64) float64 {
	return math.Round(v*10) / 10
}

// MealSlot names a position in the daily plan.
type MealSlot string

const (
	Breakfast MealSlot = "breakfast"
	Lunch     MealSlot = "lunch"
	Dinner    MealSlot = "dinner"
	Snack     MealSlot = "snack"
)

// MealPlan is a full day: exactly one item per slot.
type MealPlan struct {
	Breakfast FoodItem `json:"breakfast"`
	Lunch     FoodItem `json:"lunch"`
	Dinner    FoodItem `json:"dinner"`
	Snack     FoodItem `json:"snack"`
}

// Meal pairs a slot with the item planned for it.
type Meal struct {
	Slot MealSlot `json:"slot"`
	Item FoodItem `json:"item"`
}

// Meals lists the plan in eating order.
func (m MealPlan) Meals() []Meal {
	return []Meal{
		{Slot: Breakfast, Item: m.Breakfast},
		{Slot: Lunch, Item: m.Lunch},
		{Slot: Dinner, Item: m.Dinner},
		{Slot: Snack, Item: m.Snack},
	}
}

// Scale applies FoodItem.Scale to every slot.
func (m MealPlan) Scale(factor float64) MealPlan {
	return MealPlan{
		Breakfast: m.Breakfast.Scale(factor),
		Lunch:     m.Lunch.Scale(factor),
		Dinner:    m.Dinner.Scale(factor),
		Snack:     m.Snack.Scale(factor),
	}
}

// Nutrition is a summed calorie and macro total.
type Nutrition struct {
	Calories int     `json:"calories"`
	ProteinG float64 `json:"protein_g"`
	CarbsG   float64 `json:"carbs_g"`
	FatG     float64 `json:"fat_g"`
}

// Totals sums the four items. Macro sums are rounded to one decimal to hide
// float accumulation noise.
func (m MealPlan) Totals() Nutrition {
	var n Nutrition
	for _, meal := range m.Meals() {
		n.Calories += meal.Item.Calories
		n.ProteinG += meal.Item.ProteinG
		n.CarbsG += meal.Item.CarbsG
		n.FatG += meal.Item.FatG
	}
	n.ProteinG = roundTenth(n.ProteinG)
	n.CarbsG = roundTenth(n.CarbsG)
	n.FatG = roundTenth(n.FatG)
	return n
}

// CalorieFactor is the ratio of the target to the 1800 kcal baseline.
func CalorieFactor(dailyCalories int) float64 {
	return float64(dailyCalories) / ReferenceCalories
}

// GenerateMealPlan selects and scales a plan from the default catalog.
func GenerateMealPlan(dailyCalories int) MealPlan {
	return defaultCatalog.Plan(dailyCalories)
}
