package nutrition

import (
	"strings"

	"nutrition-estimator/internal/infrastructure/data"
	"nutrition-estimator/internal/pkg/common"

	"go.uber.org/zap"
)

// Ingredients heavier than this count as main ingredients for classification.
const mainIngredientGrams = 100

var (
	gravySignals = []string{"tomato", "onion", "cream", "coconut milk"}
	meatSignals  = []string{"chicken", "mutton", "fish", "egg"}
)

// Classifier assigns dishes to food-type categories.
type Classifier struct {
	rules []data.ClassificationRule
}

// NewClassifier creates a classifier over ordered keyword rules.
func NewClassifier(rules []data.ClassificationRule) *Classifier {
	return &Classifier{rules: rules}
}

// Classify returns the food-type category for a dish. Dish-name keywords are
// checked first in rule order; otherwise a fixed decision tree over the
// ingredient signals decides. The branch order is deliberate: it is the
// tie-break for dishes matching several signals.
func (c *Classifier) Classify(dishName string, ingredients []common.StandardizedIngredient) string {
	normalized := strings.ToLower(dishName)

	for _, rule := range c.rules {
		if strings.Contains(normalized, rule.Keyword) {
			common.LogDebug("dish classified by name",
				zap.String("dish", dishName),
				zap.String("keyword", rule.Keyword),
				zap.String("category", rule.Category),
			)
			return rule.Category
		}
	}

	hasGravy := false
	var mainIngredients []string
	for _, ing := range ingredients {
		if containsAny(ing.CanonicalName, gravySignals...) {
			hasGravy = true
		}
		if ing.Grams > mainIngredientGrams {
			mainIngredients = append(mainIngredients, ing.CanonicalName)
		}
	}

	if anyContains(mainIngredients, meatSignals...) {
		return gravyOrFry(hasGravy, "Non - Veg Gravy", "Non - Veg Fry")
	}

	if anyContains(mainIngredients, "dal", "lentil") {
		return "Dals"
	}

	if anyContains(mainIngredients, "rice") {
		return "Wet Rice Item"
	}

	if anyContains(mainIngredients, "paneer") {
		return gravyOrFry(hasGravy, "Veg Gravy", "Veg Fry")
	}

	return gravyOrFry(hasGravy, "Veg Gravy", "Veg Fry")
}

func anyContains(names []string, fragments ...string) bool {
	for _, name := range names {
		if containsAny(name, fragments...) {
			return true
		}
	}
	return false
}

func gravyOrFry(hasGravy bool, gravy, fry string) string {
	if hasGravy {
		return gravy
	}
	return fry
}
