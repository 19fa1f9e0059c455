package nutrition

import (
	"nutrition-estimator/internal/infrastructure/data"
	"nutrition-estimator/internal/pkg/common"

	"go.uber.org/zap"
)

// ServingsPerRecipe is the assumed yield of a whole recipe. This is a policy
// assumption about recipe-source conventions, not a derived fact; the
// plausibility check below is advisory only.
const ServingsPerRecipe = 4

// Bounds of the advisory total-weight plausibility window, as multiples of
// the expected whole-dish weight.
const (
	weightWindowLow  = 0.5
	weightWindowHigh = 2.0
)

// ServingEstimate is the per-serving view of dish totals.
type ServingEstimate struct {
	Nutrition common.NutritionVector
	Unit      string
	SizeGrams float64
}

// Extrapolator rescales dish totals to one standard household serving.
type Extrapolator struct {
	table *data.ServingTable
}

// NewExtrapolator creates an extrapolator over the serving-size table.
func NewExtrapolator(table *data.ServingTable) *Extrapolator {
	return &Extrapolator{table: table}
}

// Extrapolate scales dish totals down to the standard serving for the
// category. Unknown categories default to a 100g "serving" with a note. A
// total weight far from the expected whole-dish weight is noted but never
// blocks. A zero total weight yields a zero vector rather than a fault.
func (e *Extrapolator) Extrapolate(totals common.NutritionVector, category string, totalWeightGrams float64, notes *common.Notes) ServingEstimate {
	def, ok := e.table.Lookup(category)
	if !ok {
		notes.Addf("no standard serving size for %q, using 100g", category)
		common.LogDegraded("extrapolator", "serving table miss", zap.String("category", category))
		def = data.ServingDef{Unit: "serving", Grams: 100}
	}

	expected := def.Grams * ServingsPerRecipe
	if totalWeightGrams < expected*weightWindowLow || totalWeightGrams > expected*weightWindowHigh {
		notes.Addf("total dish weight %.0fg differs significantly from the %.0fg expected for %d servings",
			totalWeightGrams, expected, ServingsPerRecipe)
		common.LogWarn("implausible total dish weight",
			zap.Float64("total_g", totalWeightGrams),
			zap.Float64("expected_g", expected),
			zap.String("category", category),
		)
	}

	if totalWeightGrams <= 0 {
		notes.Addf("total dish weight is zero, per-serving nutrition unavailable")
		return ServingEstimate{Unit: def.Unit, SizeGrams: def.Grams}
	}

	ratio := def.Grams / totalWeightGrams
	return ServingEstimate{
		Nutrition: totals.Scale(ratio).Round1(),
		Unit:      def.Unit,
		SizeGrams: def.Grams,
	}
}
