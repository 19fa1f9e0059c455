package data

import (
	"nutrition-estimator/internal/pkg/common"
)

// DensityRule maps an ingredient-name substring to a density in g/ml.
// Rules are evaluated in declared order, first match wins.
type DensityRule struct {
	Match      string
	GramsPerML float64
}

// CountWeightRule maps an ingredient-name substring to per-size piece weights
// in grams. Declared order is the tie-break for substring matching.
type CountWeightRule struct {
	Match   string
	Weights map[common.CanonicalUnit]float64
}

// ClassificationRule maps a dish-name keyword to a food-type category.
// Declared order is the tie-break when a name matches several keywords.
type ClassificationRule struct {
	Keyword  string
	Category string
}

// ServingDef is the standard household serving for a food-type category.
type ServingDef struct {
	Unit  string
	Grams float64
}

// UnitVolumesML converts volume units to milliliters.
var UnitVolumesML = map[common.CanonicalUnit]float64{
	common.UnitTeaspoon:   5,
	common.UnitTablespoon: 15,
	common.UnitCup:        150,
	common.UnitKatori:     150,
	common.UnitGlass:      250,
	common.UnitTeacup:     100,
	common.UnitMilliliter: 1,
	common.UnitLiter:      1000,
}

// Densities in g/ml for converting volume to weight.
var Densities = []DensityRule{
	{"water", 1.0},
	{"milk", 1.03},
	{"oil", 0.92},
	{"ghee", 0.91},
	{"butter", 0.96},
	{"flour", 0.53},
	{"rice", 0.75},
	{"sugar", 0.85},
	{"salt", 1.38},
	{"paneer", 0.75},
	{"tomato puree", 1.03},
	{"chopped onion", 0.45},
	{"cream", 0.98},
	{"dal", 0.85},
	{"lentil", 0.85},
}

// Synonyms maps ingredient spellings to the names used by the nutrition table.
var Synonyms = map[string]string{
	"tomatoes":        "tomato",
	"onions":          "onion",
	"paneer cubes":    "paneer",
	"tomato puree":    "tomato",
	"coriander leaves": "coriander",
	"lentils":         "dal",
	"red kidney beans": "rajma",
	"chickpeas":       "chana",
	"curd":            "yogurt",
	"capsicum":        "bell pepper",
	"maida":           "flour",
	"all-purpose flour": "flour",
}

// CountWeights lists per-piece weights for common countable ingredients.
var CountWeights = []CountWeightRule{
	{"tomato", map[common.CanonicalUnit]float64{common.UnitSmall: 75, common.UnitMedium: 125, common.UnitLarge: 175, common.UnitPiece: 125}},
	{"onion", map[common.CanonicalUnit]float64{common.UnitSmall: 60, common.UnitMedium: 110, common.UnitLarge: 150, common.UnitPiece: 110}},
	{"potato", map[common.CanonicalUnit]float64{common.UnitSmall: 100, common.UnitMedium: 150, common.UnitLarge: 200, common.UnitPiece: 150}},
	{"garlic", map[common.CanonicalUnit]float64{common.UnitSmall: 4, common.UnitMedium: 5, common.UnitLarge: 6, common.UnitPiece: 5}},
	{"ginger", map[common.CanonicalUnit]float64{common.UnitSmall: 10, common.UnitMedium: 15, common.UnitLarge: 20, common.UnitPiece: 15}},
	{"green chilli", map[common.CanonicalUnit]float64{common.UnitSmall: 8, common.UnitMedium: 10, common.UnitLarge: 12, common.UnitPiece: 10}},
	{"lemon", map[common.CanonicalUnit]float64{common.UnitSmall: 50, common.UnitMedium: 60, common.UnitLarge: 70, common.UnitPiece: 60}},
	{"carrot", map[common.CanonicalUnit]float64{common.UnitSmall: 50, common.UnitMedium: 60, common.UnitLarge: 80, common.UnitPiece: 60}},
}

// DefaultCountWeights applies when no ingredient-specific rule matches.
var DefaultCountWeights = map[common.CanonicalUnit]float64{
	common.UnitSmall:  50,
	common.UnitMedium: 100,
	common.UnitLarge:  150,
	common.UnitPiece:  100,
}

// ClassificationRules assigns food-type categories from dish-name keywords.
var ClassificationRules = []ClassificationRule{
	{"curry", "Veg Gravy"},
	{"masala", "Veg Gravy"},
	{"sabzi", "Veg Fry"},
	{"dal", "Dals"},
	{"rice", "Wet Rice Item"},
	{"pulao", "Wet Rice Item"},
	{"biryani", "Wet Rice Item"},
	{"roti", "Plain Flatbreads"},
	{"paratha", "Stuffed Flatbreads"},
	{"chicken", "Non - Veg Gravy"},
	{"mutton", "Non - Veg Gravy"},
	{"fish", "Non - Veg Gravy"},
	{"paneer", "Veg Gravy"},
}

// builtinServings is the serving table substituted when the household
// measurement file cannot be loaded.
var builtinServings = map[string]ServingDef{
	"Dry Rice Item":      {"katori", 124},
	"Wet Rice Item":      {"katori", 150},
	"Veg Gravy":          {"katori", 150},
	"Veg Fry":            {"katori", 100},
	"Non - Veg Gravy":    {"katori", 150},
	"Non - Veg Fry":      {"katori", 100},
	"Dals":               {"katori", 150},
	"Wet Breakfast Item": {"katori", 130},
	"Dry Breakfast Item": {"katori", 100},
	"Chutneys":           {"tbsp", 15},
	"Plain Flatbreads":   {"piece", 50},
	"Stuffed Flatbreads": {"piece", 100},
	"Salads":             {"katori", 100},
	"Raita":              {"katori", 150},
	"Plain Soups":        {"katori", 150},
	"Mixed Soups":        {"cup", 250},
	"Hot Beverages":      {"cup", 250},
	"Beverages":          {"cup", 250},
	"Snacks":             {"katori", 100},
	"Sweets":             {"katori", 120},
}

// builtinNutrition is the minimal per-100g table substituted when the
// nutrition file cannot be loaded.
var builtinNutrition = []struct {
	name string
	vec  common.NutritionVector
}{
	{"rice", common.NutritionVector{Calories: 350, Protein: 7, Carbs: 78, Fat: 0.5, Fiber: 2.8}},
	{"wheat", common.NutritionVector{Calories: 320, Protein: 10.6, Carbs: 64.7, Fat: 1.5, Fiber: 11.2}},
	{"paneer", common.NutritionVector{Calories: 265, Protein: 18.3, Carbs: 3.1, Fat: 20.8, Fiber: 0}},
	{"butter", common.NutritionVector{Calories: 722, Protein: 0.1, Carbs: 0.1, Fat: 81.1, Fiber: 0}},
	{"potato", common.NutritionVector{Calories: 77, Protein: 2, Carbs: 17, Fat: 0.1, Fiber: 1.5}},
	{"tomato", common.NutritionVector{Calories: 20, Protein: 0.9, Carbs: 4.3, Fat: 0.2, Fiber: 1.2}},
	{"onion", common.NutritionVector{Calories: 40, Protein: 1.1, Carbs: 9.3, Fat: 0.1, Fiber: 1.7}},
}
