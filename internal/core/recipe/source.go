package recipe

import (
	"context"
	"strings"

	"nutrition-estimator/internal/pkg/common"

	"go.uber.org/zap"
)

// Source supplies the raw ingredient list for a dish. Implementations must
// resolve for any dish name: unknown dishes fall back to a generic template,
// never to an empty list.
type Source interface {
	Fetch(ctx context.Context, dishName string) ([]common.IngredientLine, error)
}

// StaticSource serves the bundled sample recipes and keyword templates
// without any external call. It backs the LLM source as its fallback and
// serves everything when the recipe API is disabled.
type StaticSource struct{}

// NewStaticSource creates a static recipe source.
func NewStaticSource() *StaticSource {
	return &StaticSource{}
}

// Fetch returns the sample recipe for the dish, or a keyword template.
func (s *StaticSource) Fetch(_ context.Context, dishName string) ([]common.IngredientLine, error) {
	normalized := common.NormalizeName(dishName)

	if lines, ok := sampleRecipes[normalized]; ok {
		common.LogInfo("using sample recipe", zap.String("dish", dishName))
		return lines, nil
	}

	common.LogWarn("no recipe found, using fallback template", zap.String("dish", dishName))
	return FallbackRecipe(normalized), nil
}

// FallbackRecipe builds a generic recipe guessed from keywords in the dish
// name. Always non-empty.
func FallbackRecipe(normalizedDishName string) []common.IngredientLine {
	switch {
	case strings.Contains(normalizedDishName, "paneer"):
		return []common.IngredientLine{
			{Ingredient: "Paneer", Quantity: "250g"},
			{Ingredient: "Onion", Quantity: "1 medium"},
			{Ingredient: "Tomato", Quantity: "2 medium"},
			{Ingredient: "Ginger", Quantity: "1 inch piece"},
			{Ingredient: "Garlic", Quantity: "3-4 cloves"},
			{Ingredient: "Green Chilli", Quantity: "2"},
			{Ingredient: "Spices", Quantity: "2 tsp"},
		}
	case strings.Contains(normalizedDishName, "chicken"):
		return []common.IngredientLine{
			{Ingredient: "Chicken", Quantity: "500g"},
			{Ingredient: "Onion", Quantity: "2 medium"},
			{Ingredient: "Tomato", Quantity: "2 medium"},
			{Ingredient: "Ginger", Quantity: "1 inch piece"},
			{Ingredient: "Garlic", Quantity: "5-6 cloves"},
			{Ingredient: "Spices", Quantity: "2 tbsp"},
		}
	case strings.Contains(normalizedDishName, "dal"):
		return []common.IngredientLine{
			{Ingredient: "Lentils", Quantity: "1 cup"},
			{Ingredient: "Onion", Quantity: "1 medium"},
			{Ingredient: "Tomato", Quantity: "1 medium"},
			{Ingredient: "Spices", Quantity: "1 tbsp"},
		}
	}

	return []common.IngredientLine{
		{Ingredient: "Main Ingredient", Quantity: "250g"},
		{Ingredient: "Onion", Quantity: "1 medium"},
		{Ingredient: "Tomato", Quantity: "2 medium"},
		{Ingredient: "Spices", Quantity: "2 tsp"},
	}
}
