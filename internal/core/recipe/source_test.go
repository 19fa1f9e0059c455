package recipe

import (
	"context"
	"testing"
)

func TestStaticSourceSampleRecipe(t *testing.T) {
	s := NewStaticSource()

	lines, err := s.Fetch(context.Background(), "Paneer Butter Masala")
	if err != nil {
		t.Fatalf("fetch failed: %v", err)
	}
	if len(lines) != 9 {
		t.Fatalf("lines = %d, want 9", len(lines))
	}
	if lines[0].Ingredient != "Paneer" || lines[0].Quantity != "250g" {
		t.Errorf("first line = %+v, want Paneer 250g", lines[0])
	}
}

func TestStaticSourceNameNormalization(t *testing.T) {
	s := NewStaticSource()

	a, _ := s.Fetch(context.Background(), "PANEER BUTTER MASALA")
	b, _ := s.Fetch(context.Background(), "  paneer butter masala  ")
	if len(a) != len(b) || len(a) != 9 {
		t.Errorf("case and whitespace must not change the recipe: %d vs %d lines", len(a), len(b))
	}
}

func TestStaticSourceKeywordFallback(t *testing.T) {
	s := NewStaticSource()

	lines, err := s.Fetch(context.Background(), "Chicken Vindaloo")
	if err != nil {
		t.Fatalf("fetch failed: %v", err)
	}
	if len(lines) == 0 {
		t.Fatal("fallback recipe must not be empty")
	}
	if lines[0].Ingredient != "Chicken" {
		t.Errorf("first line = %+v, want Chicken", lines[0])
	}
}

func TestStaticSourceGenericFallback(t *testing.T) {
	s := NewStaticSource()

	lines, err := s.Fetch(context.Background(), "Mystery Stew")
	if err != nil {
		t.Fatalf("fetch failed: %v", err)
	}
	if len(lines) == 0 {
		t.Fatal("generic fallback must not be empty")
	}
	if lines[0].Ingredient != "Main Ingredient" {
		t.Errorf("first line = %+v, want Main Ingredient", lines[0])
	}
}

func TestFallbackRecipeTemplates(t *testing.T) {
	cases := []struct {
		dish  string
		first string
	}{
		{"palak paneer special", "Paneer"},
		{"butter chicken", "Chicken"},
		{"dal fry", "Lentils"},
		{"something else", "Main Ingredient"},
	}
	for _, tc := range cases {
		lines := FallbackRecipe(tc.dish)
		if len(lines) == 0 {
			t.Fatalf("%q: empty fallback recipe", tc.dish)
		}
		if lines[0].Ingredient != tc.first {
			t.Errorf("%q: first ingredient = %q, want %q", tc.dish, lines[0].Ingredient, tc.first)
		}
	}
}
