package nutrition

import (
	"testing"

	"nutrition-estimator/internal/infrastructure/data"
	"nutrition-estimator/internal/pkg/common"
)

func newTestExtrapolator() *Extrapolator {
	return NewExtrapolator(data.BuiltinServingTable())
}

func TestExtrapolateKnownCategory(t *testing.T) {
	e := newTestExtrapolator()
	notes := &common.Notes{}

	totals := common.NutritionVector{Calories: 400, Protein: 20, Carbs: 40, Fat: 16, Fiber: 8}
	got := e.Extrapolate(totals, "Veg Gravy", 600, notes)

	if got.Unit != "katori" || got.SizeGrams != 150 {
		t.Errorf("serving = %s/%vg, want katori/150g", got.Unit, got.SizeGrams)
	}
	want := common.NutritionVector{Calories: 100, Protein: 5, Carbs: 10, Fat: 4, Fiber: 2}
	if got.Nutrition != want {
		t.Errorf("per serving = %+v, want %+v", got.Nutrition, want)
	}
	if notes.Len() != 0 {
		t.Errorf("expected no notes, got %v", notes.List())
	}
}

func TestExtrapolateScaleInvariance(t *testing.T) {
	// Doubling the whole dish must not change the per-serving numbers.
	e := newTestExtrapolator()

	totals := common.NutritionVector{Calories: 400, Protein: 20, Carbs: 40, Fat: 16, Fiber: 8}
	single := e.Extrapolate(totals, "Veg Gravy", 600, &common.Notes{})
	double := e.Extrapolate(totals.Scale(2), "Veg Gravy", 1200, &common.Notes{})

	if single.Nutrition != double.Nutrition {
		t.Errorf("per-serving changed with batch size: %+v vs %+v", single.Nutrition, double.Nutrition)
	}
}

func TestExtrapolateUnknownCategory(t *testing.T) {
	e := newTestExtrapolator()
	notes := &common.Notes{}

	got := e.Extrapolate(common.NutritionVector{Calories: 200}, "Unheard Of", 400, notes)
	if got.Unit != "serving" || got.SizeGrams != 100 {
		t.Errorf("serving = %s/%vg, want serving/100g", got.Unit, got.SizeGrams)
	}
	if got.Nutrition.Calories != 50 {
		t.Errorf("calories per serving = %v, want 50", got.Nutrition.Calories)
	}
	if notes.Len() != 1 {
		t.Errorf("expected one note, got %v", notes.List())
	}
}

func TestExtrapolateImplausibleWeight(t *testing.T) {
	e := newTestExtrapolator()
	notes := &common.Notes{}

	got := e.Extrapolate(common.NutritionVector{Calories: 5000}, "Veg Gravy", 5000, notes)
	// Scaling still happens; the plausibility window only produces a note.
	if got.Nutrition.Calories != 150 {
		t.Errorf("calories per serving = %v, want 150", got.Nutrition.Calories)
	}
	if notes.Len() != 1 {
		t.Errorf("expected one plausibility note, got %v", notes.List())
	}
}

func TestExtrapolateZeroWeight(t *testing.T) {
	e := newTestExtrapolator()
	notes := &common.Notes{}

	got := e.Extrapolate(common.NutritionVector{Calories: 400}, "Veg Gravy", 0, notes)
	if got.Nutrition != (common.NutritionVector{}) {
		t.Errorf("per serving = %+v, want zero vector", got.Nutrition)
	}
	if got.Unit != "katori" || got.SizeGrams != 150 {
		t.Errorf("serving = %s/%vg, want katori/150g", got.Unit, got.SizeGrams)
	}
	if notes.Len() == 0 {
		t.Error("zero weight must record a note")
	}
}
