package nutrition

import (
	"context"
	"fmt"

	"nutrition-estimator/internal/core/recipe"
	"nutrition-estimator/internal/infrastructure/data"
	"nutrition-estimator/internal/pkg/common"

	"go.uber.org/zap"
)

// Estimator orchestrates the full pipeline for one dish: fetch recipe,
// standardize ingredients, total nutrition, classify, extrapolate to one
// serving. It holds only immutable tables and a recipe source, so concurrent
// estimations need no locking.
type Estimator struct {
	source       recipe.Source
	standardizer *Standardizer
	calculator   *Calculator
	classifier   *Classifier
	extrapolator *Extrapolator
}

// New wires the pipeline over a recipe source and the reference tables.
func New(source recipe.Source, table *data.NutritionTable, servings *data.ServingTable) *Estimator {
	return &Estimator{
		source:       source,
		standardizer: NewStandardizer(table, data.UnitVolumesML, data.Densities, data.Synonyms, data.CountWeights),
		calculator:   NewCalculator(table),
		classifier:   NewClassifier(data.ClassificationRules),
		extrapolator: NewExtrapolator(servings),
	}
}

// NewWithComponents wires the pipeline from explicit components.
func NewWithComponents(source recipe.Source, standardizer *Standardizer, calculator *Calculator, classifier *Classifier, extrapolator *Extrapolator) *Estimator {
	return &Estimator{
		source:       source,
		standardizer: standardizer,
		calculator:   calculator,
		classifier:   classifier,
		extrapolator: extrapolator,
	}
}

// Estimate produces nutrition facts per standard serving for a dish. It
// always returns a complete result: pipeline ambiguity degrades to defaults
// with warnings, and any unexpected fault is captured into the result's
// error field rather than surfaced to the caller.
func (e *Estimator) Estimate(ctx context.Context, dishName string) (result common.EstimationResult) {
	defer func() {
		if r := recover(); r != nil {
			common.LogError("estimation panic recovered",
				zap.Any("error", r),
				zap.String("dish", dishName),
			)
			result = failureResult(dishName, fmt.Sprintf("%v", r))
		}
	}()

	common.LogInfo("estimating nutrition", zap.String("dish", dishName))
	notes := &common.Notes{}

	// The recipe fetch is the pipeline's only suspension point; it completes
	// before any ingredient is standardized.
	rawLines, err := e.source.Fetch(ctx, dishName)
	if err != nil {
		common.LogError("recipe source failed", zap.Error(err), zap.String("dish", dishName))
		return failureResult(dishName, err.Error())
	}

	standardized := make([]common.StandardizedIngredient, 0, len(rawLines))
	totalWeight := 0.0
	for _, line := range rawLines {
		std, stdNotes := e.standardizer.Standardize(line)
		notes.Merge(stdNotes)
		standardized = append(standardized, std)
		totalWeight += std.Grams
	}

	totals := e.calculator.Total(standardized, notes)
	foodType := e.classifier.Classify(dishName, standardized)
	serving := e.extrapolator.Extrapolate(totals, foodType, totalWeight, notes)

	used := make([]common.IngredientUsed, 0, len(standardized))
	for _, std := range standardized {
		used = append(used, common.IngredientUsed{
			Ingredient: std.RawIngredient,
			Quantity:   std.HouseholdMeasure,
		})
	}

	common.LogInfo("nutrition estimated",
		zap.String("dish", dishName),
		zap.String("dish_type", foodType),
		zap.Float64("total_weight_g", totalWeight),
		zap.Int("warnings", notes.Len()),
	)

	return common.EstimationResult{
		DishName:             dishName,
		DishType:             foodType,
		NutritionPerServing:  serving.Nutrition,
		ServingUnit:          serving.Unit,
		ServingSizeGrams:     serving.SizeGrams,
		IngredientsUsed:      used,
		TotalDishWeightGrams: totalWeight,
		Warnings:             notes.List(),
	}
}

// failureResult is the uniform failure shape: same schema, zeroed nutrition,
// dish type "Unknown", and the captured error message.
func failureResult(dishName, message string) common.EstimationResult {
	return common.EstimationResult{
		DishName:        dishName,
		DishType:        "Unknown",
		IngredientsUsed: []common.IngredientUsed{},
		Error:           message,
	}
}
