package nutrition

import (
	"strings"

	"nutrition-estimator/internal/infrastructure/data"
	"nutrition-estimator/internal/pkg/common"

	"go.uber.org/zap"
)

// spice name fragments that get the full 1g pinch instead of the 0.5g default.
var pinchHeavy = []string{"salt", "powder", "masala", "spice"}

// ConvertToGrams converts a parsed quantity to grams for the given canonical
// ingredient name. Conversion never fails; missing table data degrades to
// documented defaults and records a note.
func (s *Standardizer) ConvertToGrams(value float64, unit common.CanonicalUnit, ingredient string, notes *common.Notes) float64 {
	switch unit {
	case common.UnitGram:
		return value
	case common.UnitKilogram:
		return value * 1000
	}

	// Volume units: to milliliters, then through the ingredient density.
	if perUnitML, ok := s.volumes[unit]; ok {
		volumeML := value * perUnitML
		if density, ok := s.densityFor(ingredient); ok {
			return volumeML * density
		}
		notes.Addf("no density for %q, assuming 1.0 g/ml", ingredient)
		common.LogDegraded("converter", "density fallback", zap.String("ingredient", ingredient))
		return volumeML * 1.0
	}

	// Count units: per-ingredient weight table, then the generic size table.
	switch unit {
	case common.UnitPiece, common.UnitSmall, common.UnitMedium, common.UnitLarge:
		for _, rule := range s.counts {
			if strings.Contains(ingredient, rule.Match) {
				if w, ok := rule.Weights[unit]; ok {
					return value * w
				}
				// Size key absent: fall back to that ingredient's piece weight.
				return value * rule.Weights[common.UnitPiece]
			}
		}
		notes.Addf("no count weight for %q (%s), using generic size weights", ingredient, unit)
		common.LogDegraded("converter", "count weight fallback",
			zap.String("ingredient", ingredient),
			zap.String("unit", string(unit)),
		)
		return value * data.DefaultCountWeights[unit]
	}

	if unit == common.UnitPinch {
		for _, frag := range pinchHeavy {
			if strings.Contains(ingredient, frag) {
				return value * 1
			}
		}
		return value * 0.5
	}

	notes.Addf("unhandled unit %q for %q, assuming 10g", unit, ingredient)
	common.LogWarn("unhandled unit conversion",
		zap.Float64("value", value),
		zap.String("unit", string(unit)),
		zap.String("ingredient", ingredient),
	)
	return value * 10
}

// densityFor finds the first density rule whose fragment occurs in the name.
func (s *Standardizer) densityFor(ingredient string) (float64, bool) {
	for _, rule := range s.densities {
		if strings.Contains(ingredient, rule.Match) {
			return rule.GramsPerML, true
		}
	}
	return 0, false
}
