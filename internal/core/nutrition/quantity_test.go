package nutrition

import (
	"testing"

	"nutrition-estimator/internal/pkg/common"
)

func TestParseQuantityToTaste(t *testing.T) {
	notes := &common.Notes{}
	got := ParseQuantity("to taste", notes)
	if got.Value != 1 || got.Unit != common.UnitPinch {
		t.Errorf("expected {1, pinch}, got {%v, %s}", got.Value, got.Unit)
	}
	if notes.Len() != 0 {
		t.Errorf("expected no notes, got %v", notes.List())
	}
}

func TestParseQuantityFraction(t *testing.T) {
	notes := &common.Notes{}
	got := ParseQuantity("1/2 tsp", notes)
	if got.Value != 0.5 || got.Unit != common.UnitTeaspoon {
		t.Errorf("expected {0.5, teaspoon}, got {%v, %s}", got.Value, got.Unit)
	}
}

func TestParseQuantityZeroDenominator(t *testing.T) {
	notes := &common.Notes{}
	got := ParseQuantity("1/0 cup", notes)
	if got.Value != 1 || got.Unit != common.UnitPiece {
		t.Errorf("expected {1, piece}, got {%v, %s}", got.Value, got.Unit)
	}
	if notes.Len() != 1 {
		t.Errorf("expected one note, got %v", notes.List())
	}
}

func TestParseQuantityAttachedUnit(t *testing.T) {
	notes := &common.Notes{}
	got := ParseQuantity("250g", notes)
	if got.Value != 250 || got.Unit != common.UnitGram {
		t.Errorf("expected {250, gram}, got {%v, %s}", got.Value, got.Unit)
	}
}

func TestParseQuantityKilogram(t *testing.T) {
	notes := &common.Notes{}
	got := ParseQuantity("1 kg", notes)
	if got.Value != 1 || got.Unit != common.UnitKilogram {
		t.Errorf("expected {1, kilogram}, got {%v, %s}", got.Value, got.Unit)
	}
}

func TestParseQuantityRange(t *testing.T) {
	// Ranges take the first number; "cloves" counts as pieces.
	notes := &common.Notes{}
	got := ParseQuantity("3-4 cloves", notes)
	if got.Value != 3 || got.Unit != common.UnitPiece {
		t.Errorf("expected {3, piece}, got {%v, %s}", got.Value, got.Unit)
	}
}

func TestParseQuantityUnparseable(t *testing.T) {
	for _, q := range []string{"for deep frying", "garnish", ""} {
		notes := &common.Notes{}
		got := ParseQuantity(q, notes)
		if got.Value != 1 || got.Unit != common.UnitPiece {
			t.Errorf("%q: expected {1, piece}, got {%v, %s}", q, got.Value, got.Unit)
		}
		if notes.Len() != 1 {
			t.Errorf("%q: expected one note, got %v", q, notes.List())
		}
	}
}

func TestNormalizeUnit(t *testing.T) {
	cases := []struct {
		text string
		want common.CanonicalUnit
	}{
		{"tbsp", common.UnitTablespoon},
		{"tablespoons", common.UnitTablespoon},
		{"tsp", common.UnitTeaspoon},
		{"teacup", common.UnitTeacup},
		{"cups", common.UnitCup},
		{"katori", common.UnitKatori},
		{"glass", common.UnitGlass},
		{"ml", common.UnitMilliliter},
		{"liter", common.UnitLiter},
		{"kg", common.UnitKilogram},
		{"kilograms", common.UnitKilogram},
		{"grams", common.UnitGram},
		{"g", common.UnitGram},
		{"pinch", common.UnitPinch},
		{"medium", common.UnitMedium},
		{"large", common.UnitLarge},
		{"small", common.UnitSmall},
		{"cloves", common.UnitPiece},
		{"whole", common.UnitPiece},
		{"inch piece", common.UnitPiece},
		{"", common.UnitPiece},
	}
	for _, c := range cases {
		if got := NormalizeUnit(c.text); got != c.want {
			t.Errorf("NormalizeUnit(%q) = %s, want %s", c.text, got, c.want)
		}
	}
}
