package common

import (
	"fmt"
	"math"
	"strings"
)

// CanonicalUnit is the closed unit vocabulary every parsed quantity
// normalizes into. Unknown tokens fall through to UnitPiece.
type CanonicalUnit string

const (
	UnitGram       CanonicalUnit = "gram"
	UnitKilogram   CanonicalUnit = "kilogram"
	UnitMilliliter CanonicalUnit = "milliliter"
	UnitLiter      CanonicalUnit = "liter"
	UnitTeaspoon   CanonicalUnit = "teaspoon"
	UnitTablespoon CanonicalUnit = "tablespoon"
	UnitCup        CanonicalUnit = "cup"
	UnitKatori     CanonicalUnit = "katori"
	UnitGlass      CanonicalUnit = "glass"
	UnitTeacup     CanonicalUnit = "teacup"
	UnitPiece      CanonicalUnit = "piece"
	UnitSmall      CanonicalUnit = "small"
	UnitMedium     CanonicalUnit = "medium"
	UnitLarge      CanonicalUnit = "large"
	UnitPinch      CanonicalUnit = "pinch"
)

// IngredientLine is one raw (ingredient, quantity) pair as supplied by the
// recipe source.
type IngredientLine struct {
	Ingredient string `json:"ingredient"`
	Quantity   string `json:"quantity"`
}

// ParsedQuantity is a free-text quantity reduced to a value and a canonical unit.
type ParsedQuantity struct {
	Value float64
	Unit  CanonicalUnit
}

// StandardizedIngredient is one ingredient after name resolution and weight
// conversion. Immutable once built.
type StandardizedIngredient struct {
	RawIngredient    string  `json:"raw_ingredient"`
	CanonicalName    string  `json:"standardized_ingredient"`
	RawQuantity      string  `json:"raw_quantity"`
	Grams            float64 `json:"standardized_quantity_g"`
	HouseholdMeasure string  `json:"standardized_household_measure"`
}

// NutritionVector holds the five tracked nutrients. All fields are always
// present; missing source data reads as 0.
type NutritionVector struct {
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
	Fiber    float64 `json:"fiber"`
}

// Add returns the field-wise sum of v and o.
func (v NutritionVector) Add(o NutritionVector) NutritionVector {
	return NutritionVector{
		Calories: v.Calories + o.Calories,
		Protein:  v.Protein + o.Protein,
		Carbs:    v.Carbs + o.Carbs,
		Fat:      v.Fat + o.Fat,
		Fiber:    v.Fiber + o.Fiber,
	}
}

// Scale returns v with every field multiplied by f.
func (v NutritionVector) Scale(f float64) NutritionVector {
	return NutritionVector{
		Calories: v.Calories * f,
		Protein:  v.Protein * f,
		Carbs:    v.Carbs * f,
		Fat:      v.Fat * f,
		Fiber:    v.Fiber * f,
	}
}

// Round1 returns v with every field rounded to one decimal.
func (v NutritionVector) Round1() NutritionVector {
	return NutritionVector{
		Calories: Round1(v.Calories),
		Protein:  Round1(v.Protein),
		Carbs:    Round1(v.Carbs),
		Fat:      Round1(v.Fat),
		Fiber:    Round1(v.Fiber),
	}
}

// IngredientUsed is the user-facing view of one ingredient in the result.
type IngredientUsed struct {
	Ingredient string `json:"ingredient"`
	Quantity   string `json:"quantity"`
}

// EstimationResult is the uniform response shape for one dish. Exactly one of
// {populated nutrition fields, Error} is meaningful; on failure DishType is
// "Unknown", the vector is zeroed and IngredientsUsed is empty.
type EstimationResult struct {
	DishName             string           `json:"dish_name"`
	DishType             string           `json:"dish_type"`
	NutritionPerServing  NutritionVector  `json:"estimated_nutrition_per_serving"`
	ServingUnit          string           `json:"serving_unit,omitempty"`
	ServingSizeGrams     float64          `json:"serving_size_g,omitempty"`
	IngredientsUsed      []IngredientUsed `json:"ingredients_used"`
	TotalDishWeightGrams float64          `json:"total_dish_weight_g,omitempty"`
	Warnings             []string         `json:"warnings,omitempty"`
	Error                string           `json:"error,omitempty"`
}

// Notes collects degraded-confidence annotations recorded whenever a fallback
// or default path was taken instead of an exact match. The pipeline never
// fails on ambiguity; it degrades and records here.
type Notes struct {
	entries []string
}

// Addf appends one formatted note.
func (n *Notes) Addf(format string, args ...interface{}) {
	n.entries = append(n.entries, fmt.Sprintf(format, args...))
}

// Merge appends every note from o.
func (n *Notes) Merge(o *Notes) {
	if o != nil {
		n.entries = append(n.entries, o.entries...)
	}
}

// List returns the recorded notes in order. Empty result is nil.
func (n *Notes) List() []string {
	if n == nil || len(n.entries) == 0 {
		return nil
	}
	out := make([]string, len(n.entries))
	copy(out, n.entries)
	return out
}

// Len returns the number of recorded notes.
func (n *Notes) Len() int {
	if n == nil {
		return 0
	}
	return len(n.entries)
}

// Round1 rounds to one decimal place.
func Round1(x float64) float64 {
	return math.Round(x*10) / 10
}

// NormalizeName lower-cases and trims an ingredient or dish name.
func NormalizeName(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
