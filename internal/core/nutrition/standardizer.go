package nutrition

import (
	"math"

	"nutrition-estimator/internal/infrastructure/data"
	"nutrition-estimator/internal/pkg/common"

	"go.uber.org/zap"
)

// Standardizer turns raw ingredient lines into standardized ingredients:
// canonical name, weight in grams, household-measure text. All lookup tables
// are injected at construction and never mutated.
type Standardizer struct {
	table     *data.NutritionTable
	volumes   map[common.CanonicalUnit]float64
	densities []data.DensityRule
	synonyms  map[string]string
	counts    []data.CountWeightRule
}

// NewStandardizer creates a standardizer over the given reference tables.
func NewStandardizer(
	table *data.NutritionTable,
	volumes map[common.CanonicalUnit]float64,
	densities []data.DensityRule,
	synonyms map[string]string,
	counts []data.CountWeightRule,
) *Standardizer {
	return &Standardizer{
		table:     table,
		volumes:   volumes,
		densities: densities,
		synonyms:  synonyms,
		counts:    counts,
	}
}

// Standardize resolves one raw ingredient line. It never fails: ambiguous
// input degrades through documented fallbacks and the taken fallbacks are
// recorded as notes.
func (s *Standardizer) Standardize(line common.IngredientLine) (common.StandardizedIngredient, *common.Notes) {
	notes := &common.Notes{}

	name := s.ResolveName(line.Ingredient, notes)
	parsed := ParseQuantity(line.Quantity, notes)
	grams := s.ConvertToGrams(parsed.Value, parsed.Unit, name, notes)

	// Grams must stay finite and non-negative whatever the input was.
	if math.IsNaN(grams) || math.IsInf(grams, 0) || grams < 0 {
		notes.Addf("non-finite weight for %q, using 0g", line.Ingredient)
		grams = 0
	}

	std := common.StandardizedIngredient{
		RawIngredient:    line.Ingredient,
		CanonicalName:    name,
		RawQuantity:      line.Quantity,
		Grams:            grams,
		HouseholdMeasure: s.HouseholdMeasure(grams, name),
	}

	common.LogDebug("ingredient standardized",
		zap.String("raw", line.Ingredient),
		zap.String("canonical", name),
		zap.Float64("grams", grams),
	)

	return std, notes
}
