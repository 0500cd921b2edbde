package session

import (
	"fmt"
	"strings"

	"lg/diet-planner/internal/diet"
)

const banner = "============================================"

func (s *Session) writeWelcome() {
	fmt.Fprintln(s.out, banner)
	fmt.Fprintln(s.out, "       HEALTHY DIET PLANNER PROGRAM")
	fmt.Fprintln(s.out, banner)
	fmt.Fprintln(s.out, "This program will help you plan a healthy diet")
	fmt.Fprint(s.out, "based on your personal information and activity level.\n\n")
}

func (s *Session) writeActivityMenu() {
	fmt.Fprintln(s.out, "\nActivity Level:")
	for _, level := range diet.ActivityLevels() {
		fmt.Fprintf(s.out, "%d. %s (%s)\n", int(level), level.Label(), level.Description())
	}
}

// writeResults prints the stats, metrics and plan block for one profile.
func (s *Session) writeResults(p diet.UserProfile, m diet.Metrics, plan diet.MealPlan) {
	fmt.Fprintf(s.out, "\n\n%s\n", banner)
	fmt.Fprintf(s.out, "          HEALTHY DIET PLAN FOR %s\n", p.Name)
	fmt.Fprintln(s.out, banner)

	fmt.Fprintln(s.out, "\nYOUR STATS:")
	fmt.Fprintf(s.out, "Age: %d years\n", p.Age)
	fmt.Fprintf(s.out, "Gender: %s\n", p.Sex.Label())
	fmt.Fprintf(s.out, "Weight: %.1f kg\n", p.WeightKG)
	fmt.Fprintf(s.out, "Height: %.1f cm\n", p.HeightCM)
	fmt.Fprintf(s.out, "Activity Level: %s\n", p.ActivityLevel.Label())

	fmt.Fprintf(s.out, "\nBMI: %.1f - %s\n", m.BMI, m.Category)
	fmt.Fprintf(s.out, "\nEstimated Daily Calorie Needs: %d kcal\n", m.DailyCalories)

	fmt.Fprintln(s.out, "\nRECOMMENDED MEAL PLAN:")
	fmt.Fprintln(s.out, "----------------------")
	for _, meal := range plan.Meals() {
		fmt.Fprintf(s.out, "\n%s:\n", strings.ToUpper(string(meal.Slot)))
		s.writeFoodItem(meal.Item)
	}

	totals := plan.Totals()
	fmt.Fprintln(s.out, "\nTOTAL DAILY NUTRITION:")
	fmt.Fprintf(s.out, "Calories: %d kcal\n", totals.Calories)
	fmt.Fprintf(s.out, "Protein: %.1f g\n", totals.ProteinG)
	fmt.Fprintf(s.out, "Carbohydrates: %.1f g\n", totals.CarbsG)
	fmt.Fprintf(s.out, "Fats: %.1f g\n", totals.FatG)
}

func (s *Session) writeFoodItem(item diet.FoodItem) {
	fmt.Fprintln(s.out, item.Name)
	fmt.Fprintf(s.out, "  Calories: %d kcal\n", item.Calories)
	fmt.Fprintf(s.out, "  Protein: %.1f g\n", item.ProteinG)
	fmt.Fprintf(s.out, "  Carbs: %.1f g\n", item.CarbsG)
	fmt.Fprintf(s.out, "  Fats: %.1f g\n", item.FatG)
}

// writeCurrentInfo lists the editable fields, numbered as in the update menu.
func (s *Session) writeCurrentInfo(p diet.UserProfile) {
	fmt.Fprintln(s.out, "\nCURRENT INFORMATION:")
	fmt.Fprintf(s.out, "%d. Name: %s\n", fieldName, p.Name)
	fmt.Fprintf(s.out, "%d. Age: %d\n", fieldAge, p.Age)
	fmt.Fprintf(s.out, "%d. Gender: %s\n", fieldSex, p.Sex.Initial())
	fmt.Fprintf(s.out, "%d. Weight: %.1f kg\n", fieldWeight, p.WeightKG)
	fmt.Fprintf(s.out, "%d. Height: %.1f cm\n", fieldHeight, p.HeightCM)
	fmt.Fprintf(s.out, "%d. Activity Level: %d\n", fieldActivity, int(p.ActivityLevel))
}
