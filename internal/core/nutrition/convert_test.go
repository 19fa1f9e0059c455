package nutrition

import (
	"math"
	"testing"

	"nutrition-estimator/internal/infrastructure/data"
	"nutrition-estimator/internal/pkg/common"
)

func newTestStandardizer() *Standardizer {
	return NewStandardizer(
		data.BuiltinNutritionTable(),
		data.UnitVolumesML,
		data.Densities,
		data.Synonyms,
		data.CountWeights,
	)
}

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestConvertWeightUnits(t *testing.T) {
	s := newTestStandardizer()
	notes := &common.Notes{}

	if got := s.ConvertToGrams(250, common.UnitGram, "paneer", notes); got != 250 {
		t.Errorf("250g = %v, want 250", got)
	}
	if got := s.ConvertToGrams(1.5, common.UnitKilogram, "rice", notes); got != 1500 {
		t.Errorf("1.5kg = %v, want 1500", got)
	}
	if notes.Len() != 0 {
		t.Errorf("weight conversion should not produce notes, got %v", notes.List())
	}
}

func TestConvertVolumeWithDensity(t *testing.T) {
	s := newTestStandardizer()
	notes := &common.Notes{}

	// 1 cup of rice: 150ml at 0.75 g/ml.
	if got := s.ConvertToGrams(1, common.UnitCup, "rice", notes); !almostEqual(got, 112.5) {
		t.Errorf("1 cup rice = %v, want 112.5", got)
	}
	// 2 tbsp of oil: 30ml at 0.92 g/ml.
	if got := s.ConvertToGrams(2, common.UnitTablespoon, "oil", notes); !almostEqual(got, 27.6) {
		t.Errorf("2 tbsp oil = %v, want 27.6", got)
	}
	if notes.Len() != 0 {
		t.Errorf("known densities should not produce notes, got %v", notes.List())
	}
}

func TestConvertVolumeDensityFallback(t *testing.T) {
	s := newTestStandardizer()
	notes := &common.Notes{}

	// No density for honey, assume 1.0 g/ml with a note.
	if got := s.ConvertToGrams(2, common.UnitTablespoon, "honey", notes); !almostEqual(got, 30) {
		t.Errorf("2 tbsp honey = %v, want 30", got)
	}
	if notes.Len() != 1 {
		t.Errorf("expected one density note, got %v", notes.List())
	}
}

func TestConvertCountWithIngredientWeights(t *testing.T) {
	s := newTestStandardizer()
	notes := &common.Notes{}

	if got := s.ConvertToGrams(2, common.UnitMedium, "tomato", notes); got != 250 {
		t.Errorf("2 medium tomatoes = %v, want 250", got)
	}
	if got := s.ConvertToGrams(1, common.UnitLarge, "onion", notes); got != 150 {
		t.Errorf("1 large onion = %v, want 150", got)
	}
	if got := s.ConvertToGrams(4, common.UnitPiece, "garlic", notes); got != 20 {
		t.Errorf("4 garlic cloves = %v, want 20", got)
	}
	if notes.Len() != 0 {
		t.Errorf("known count weights should not produce notes, got %v", notes.List())
	}
}

func TestConvertCountGenericFallback(t *testing.T) {
	s := newTestStandardizer()
	notes := &common.Notes{}

	if got := s.ConvertToGrams(1, common.UnitMedium, "cauliflower", notes); got != 100 {
		t.Errorf("1 medium cauliflower = %v, want 100", got)
	}
	if got := s.ConvertToGrams(1, common.UnitSmall, "cauliflower", notes); got != 50 {
		t.Errorf("1 small cauliflower = %v, want 50", got)
	}
	if notes.Len() != 2 {
		t.Errorf("expected two fallback notes, got %v", notes.List())
	}
}

func TestConvertPinch(t *testing.T) {
	s := newTestStandardizer()
	notes := &common.Notes{}

	// Salts and ground spices weigh a full gram per pinch.
	if got := s.ConvertToGrams(1, common.UnitPinch, "salt", notes); got != 1 {
		t.Errorf("pinch of salt = %v, want 1", got)
	}
	if got := s.ConvertToGrams(1, common.UnitPinch, "garam masala", notes); got != 1 {
		t.Errorf("pinch of garam masala = %v, want 1", got)
	}
	if got := s.ConvertToGrams(1, common.UnitPinch, "saffron", notes); got != 0.5 {
		t.Errorf("pinch of saffron = %v, want 0.5", got)
	}
}

func TestStandardizeClampsNonFinite(t *testing.T) {
	s := newTestStandardizer()

	std, notes := s.Standardize(common.IngredientLine{Ingredient: "Rice", Quantity: "1e308 kg"})
	if math.IsNaN(std.Grams) || math.IsInf(std.Grams, 0) || std.Grams < 0 {
		t.Errorf("grams must be finite and non-negative, got %v", std.Grams)
	}
	_ = notes
}

func TestStandardizeFullLine(t *testing.T) {
	s := newTestStandardizer()

	std, notes := s.Standardize(common.IngredientLine{Ingredient: "Paneer", Quantity: "250g"})
	if std.CanonicalName != "paneer" {
		t.Errorf("canonical name = %q, want paneer", std.CanonicalName)
	}
	if std.Grams != 250 {
		t.Errorf("grams = %v, want 250", std.Grams)
	}
	if std.RawIngredient != "Paneer" || std.RawQuantity != "250g" {
		t.Errorf("raw fields must be preserved, got %q %q", std.RawIngredient, std.RawQuantity)
	}
	if std.HouseholdMeasure == "" {
		t.Error("household measure must not be empty")
	}
	if notes.Len() != 0 {
		t.Errorf("expected no notes, got %v", notes.List())
	}
}
