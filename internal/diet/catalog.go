package diet

// Tier is one of the three calorie bands used to pick catalog entries.
type Tier int

const (
	TierLow Tier = iota
	TierMedium
	TierHigh
)

// NumTiers is the number of entries in every catalog table.
const NumTiers = 3

// Tier thresholds and the scaling baseline. All are fixed configuration
// values. ReferenceCalories is a fixed reference constant, not the total of
// any tier.
const (
	MediumTierMinCalories = 1800
	HighTierMinCalories   = 2200
	ReferenceCalories     = 1800.0
)

// Tiers returns all tiers in ascending order.
func Tiers() []Tier {
	return []Tier{TierLow, TierMedium, TierHigh}
}

// String names the band for logs and JSON.
func (t Tier) String() string {
	switch t {
	case TierLow:
		return "low"
	case TierMedium:
		return "medium"
	case TierHigh:
		return "high"
	}
	return "unknown"
}

// CalorieRange returns the half-open [min, max) band selected by t.
// max is 0 for the open-ended top tier.
func (t Tier) CalorieRange() (minCalories, maxCalories int) {
	switch t {
	case TierLow:
		return 0, MediumTierMinCalories
	case TierMedium:
		return MediumTierMinCalories, HighTierMinCalories
	default:
		return HighTierMinCalories, 0
	}
}

// SelectTier maps a daily calorie target to its band:
// below 1800 is low, 1800 up to 2199 is medium, 2200 and above is high.
func SelectTier(dailyCalories int) Tier {
	switch {
	case dailyCalories < MediumTierMinCalories:
		return TierLow
	case dailyCalories < HighTierMinCalories:
		return TierMedium
	default:
		return TierHigh
	}
}

// Catalog holds one fixed-size option table per meal slot, indexed by Tier.
// Arrays keep it a plain value: copies never alias the default catalog.
type Catalog struct {
	Breakfast [NumTiers]FoodItem
	Lunch     [NumTiers]FoodItem
	Dinner    [NumTiers]FoodItem
	Snack     [NumTiers]FoodItem
}

var defaultCatalog = Catalog{
	Breakfast: [NumTiers]FoodItem{
		{Name: "Oatmeal with berries and nuts", Calories: 350, ProteinG: 10, CarbsG: 50, FatG: 12},
		{Name: "Greek yogurt with honey and granola", Calories: 300, ProteinG: 20, CarbsG: 35, FatG: 8},
		{Name: "Avocado toast with eggs", Calories: 400, ProteinG: 15, CarbsG: 35, FatG: 20},
	},
	Lunch: [NumTiers]FoodItem{
		{Name: "Grilled chicken salad", Calories: 450, ProteinG: 35, CarbsG: 20, FatG: 25},
		{Name: "Quinoa bowl with vegetables", Calories: 400, ProteinG: 15, CarbsG: 60, FatG: 12},
		{Name: "Salmon with sweet potato", Calories: 500, ProteinG: 30, CarbsG: 45, FatG: 20},
	},
	Dinner: [NumTiers]FoodItem{
		{Name: "Grilled fish with vegetables", Calories: 450, ProteinG: 35, CarbsG: 20, FatG: 20},
		{Name: "Turkey breast with brown rice", Calories: 500, ProteinG: 40, CarbsG: 45, FatG: 15},
		{Name: "Tofu stir-fry with quinoa", Calories: 400, ProteinG: 20, CarbsG: 50, FatG: 12},
	},
	Snack: [NumTiers]FoodItem{
		{Name: "Handful of almonds", Calories: 200, ProteinG: 6, CarbsG: 6, FatG: 16},
		{Name: "Apple with peanut butter", Calories: 250, ProteinG: 5, CarbsG: 30, FatG: 12},
		{Name: "Protein smoothie", Calories: 300, ProteinG: 20, CarbsG: 30, FatG: 8},
	},
}

// DefaultCatalog returns a copy of the built-in food options.
func DefaultCatalog() Catalog {
	return defaultCatalog
}

// Entry returns the unscaled base plan for tier t. Out-of-range tiers are
// clamped to the nearest band.
func (c Catalog) Entry(t Tier) MealPlan {
	if t < TierLow {
		t = TierLow
	}
	if t > TierHigh {
		t = TierHigh
	}
	return MealPlan{
		Breakfast: c.Breakfast[t],
		Lunch:     c.Lunch[t],
		Dinner:    c.Dinner[t],
		Snack:     c.Snack[t],
	}
}

// Plan picks the tier for dailyCalories and scales its entries to the target.
func (c Catalog) Plan(dailyCalories int) MealPlan {
	return c.Entry(SelectTier(dailyCalories)).Scale(CalorieFactor(dailyCalories))
}
