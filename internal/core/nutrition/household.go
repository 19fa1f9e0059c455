package nutrition

import (
	"fmt"
	"math"
	"strings"
)

// HouseholdMeasure renders a gram weight as a kitchen-friendly measure for
// the ingredient, e.g. "2.0 tablespoons" or "medium piece".
func (s *Standardizer) HouseholdMeasure(grams float64, ingredient string) string {
	// Fats are spooned.
	if containsAny(ingredient, "oil", "ghee", "butter") {
		density, ok := s.densityFor(ingredient)
		if !ok {
			density = 0.9
		}
		teaspoons := grams / (density * 5)
		if teaspoons < 3 {
			return fmt.Sprintf("%.1f teaspoons", teaspoons)
		}
		return fmt.Sprintf("%.1f tablespoons", teaspoons/3)
	}

	// Liquids are poured.
	if containsAny(ingredient, "milk", "water", "juice", "cream") {
		density, ok := s.densityFor(ingredient)
		if !ok {
			density = 1.0
		}
		ml := grams / density
		switch {
		case ml < 30:
			return fmt.Sprintf("%.1f teaspoons", ml/5)
		case ml < 100:
			return fmt.Sprintf("%.1f tablespoons", ml/15)
		case ml < 500:
			return fmt.Sprintf("%.2f cups", ml/240)
		default:
			return fmt.Sprintf("%.2f liters", ml/1000)
		}
	}

	if strings.Contains(ingredient, "paneer") {
		return fmt.Sprintf("%.2f cup cubes", grams/180)
	}

	if containsAny(ingredient, "onion", "tomato") {
		switch {
		case grams < 100:
			return "small piece"
		case grams < 150:
			return "medium piece"
		default:
			return "large piece"
		}
	}

	if grams < 10 {
		return fmt.Sprintf("%.1f grams", grams)
	}
	return fmt.Sprintf("%d grams", int(math.Round(grams)))
}

func containsAny(s string, fragments ...string) bool {
	for _, f := range fragments {
		if strings.Contains(s, f) {
			return true
		}
	}
	return false
}
