package nutrition

import "testing"

func TestHouseholdMeasureFats(t *testing.T) {
	s := newTestStandardizer()

	// 2 tbsp of oil: 30ml at 0.92 g/ml.
	if got := s.HouseholdMeasure(27.6, "oil"); got != "2.0 tablespoons" {
		t.Errorf("27.6g oil = %q, want 2.0 tablespoons", got)
	}
	if got := s.HouseholdMeasure(4.6, "oil"); got != "1.0 teaspoons" {
		t.Errorf("4.6g oil = %q, want 1.0 teaspoons", got)
	}
}

func TestHouseholdMeasureLiquids(t *testing.T) {
	s := newTestStandardizer()

	if got := s.HouseholdMeasure(10, "water"); got != "2.0 teaspoons" {
		t.Errorf("10g water = %q, want 2.0 teaspoons", got)
	}
	if got := s.HouseholdMeasure(45, "water"); got != "3.0 tablespoons" {
		t.Errorf("45g water = %q, want 3.0 tablespoons", got)
	}
	if got := s.HouseholdMeasure(240, "water"); got != "1.00 cups" {
		t.Errorf("240g water = %q, want 1.00 cups", got)
	}
	if got := s.HouseholdMeasure(1000, "water"); got != "1.00 liters" {
		t.Errorf("1000g water = %q, want 1.00 liters", got)
	}
}

func TestHouseholdMeasurePaneer(t *testing.T) {
	s := newTestStandardizer()

	if got := s.HouseholdMeasure(180, "paneer"); got != "1.00 cup cubes" {
		t.Errorf("180g paneer = %q, want 1.00 cup cubes", got)
	}
}

func TestHouseholdMeasureCountVegetables(t *testing.T) {
	s := newTestStandardizer()

	if got := s.HouseholdMeasure(60, "onion"); got != "small piece" {
		t.Errorf("60g onion = %q, want small piece", got)
	}
	if got := s.HouseholdMeasure(125, "tomato"); got != "medium piece" {
		t.Errorf("125g tomato = %q, want medium piece", got)
	}
	if got := s.HouseholdMeasure(175, "tomato"); got != "large piece" {
		t.Errorf("175g tomato = %q, want large piece", got)
	}
}

func TestHouseholdMeasureDefault(t *testing.T) {
	s := newTestStandardizer()

	if got := s.HouseholdMeasure(5, "garam masala"); got != "5.0 grams" {
		t.Errorf("5g spice = %q, want 5.0 grams", got)
	}
	if got := s.HouseholdMeasure(250, "chicken"); got != "250 grams" {
		t.Errorf("250g chicken = %q, want 250 grams", got)
	}
}
