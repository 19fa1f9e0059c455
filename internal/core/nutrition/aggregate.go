package nutrition

import (
	"nutrition-estimator/internal/infrastructure/data"
	"nutrition-estimator/internal/pkg/common"

	"go.uber.org/zap"
)

// Calculator looks up and sums nutrition for standardized ingredients.
type Calculator struct {
	table *data.NutritionTable
}

// NewCalculator creates a calculator over the given nutrition table.
func NewCalculator(table *data.NutritionTable) *Calculator {
	return &Calculator{table: table}
}

// IngredientNutrition returns the nutrition contributed by grams of one
// canonical ingredient. Table entries are per 100g and scale linearly.
// Ingredients absent from the table are estimated by category heuristics
// with a note; the result never has missing fields.
func (c *Calculator) IngredientNutrition(name string, grams float64, notes *common.Notes) common.NutritionVector {
	if per100, ok := c.table.Lookup(name); ok {
		return per100.Scale(grams / 100)
	}

	notes.Addf("ingredient %q not in nutrition table, estimated by category", name)
	common.LogDegraded("aggregator", "nutrition table miss", zap.String("ingredient", name))

	// Pure fats: 9 kcal/g.
	if containsAny(name, "oil", "ghee", "butter") {
		return common.NutritionVector{Calories: 9 * grams, Fat: grams}
	}

	// Pure carbs: 4 kcal/g.
	if containsAny(name, "sugar", "jaggery") {
		return common.NutritionVector{Calories: 4 * grams, Carbs: grams}
	}

	// Seasonings contribute nothing measurable.
	if containsAny(name, "salt", "spices") {
		return common.NutritionVector{}
	}

	// Generic food: 2 kcal/g with modest macros.
	return common.NutritionVector{
		Calories: 2 * grams,
		Protein:  0.05 * grams,
		Carbs:    0.1 * grams,
		Fat:      0.02 * grams,
		Fiber:    0.01 * grams,
	}
}

// Total folds every ingredient's vector into dish totals. Rounding to one
// decimal happens once at the end so per-ingredient rounding error cannot
// compound.
func (c *Calculator) Total(ingredients []common.StandardizedIngredient, notes *common.Notes) common.NutritionVector {
	var total common.NutritionVector
	for _, ing := range ingredients {
		total = total.Add(c.IngredientNutrition(ing.CanonicalName, ing.Grams, notes))
	}
	return total.Round1()
}
