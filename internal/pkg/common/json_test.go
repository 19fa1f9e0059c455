package common

import "testing"

func TestParseJSON(t *testing.T) {
	var lines []IngredientLine
	err := ParseJSON(`[{"ingredient":"Rice","quantity":"1 cup"}]`, &lines)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if len(lines) != 1 || lines[0].Ingredient != "Rice" {
		t.Errorf("lines = %+v, want one Rice line", lines)
	}
}

func TestParseJSONRejectsTrailingData(t *testing.T) {
	var v map[string]interface{}
	if err := ParseJSON(`{"a":1}{"b":2}`, &v); err == nil {
		t.Fatal("expected an error for trailing JSON data")
	}
}

func TestParseJSONStrict(t *testing.T) {
	var line IngredientLine
	err := ParseJSONStrict(`{"ingredient":"Rice","quantity":"1 cup","extra":true}`, &line)
	if err == nil {
		t.Fatal("expected an error for unknown fields")
	}
}

func TestQuoteJSONKeys(t *testing.T) {
	got := QuoteJSONKeys(`[{ingredient: "Rice", quantity: "1 cup"}]`)
	want := `[{"ingredient": "Rice", "quantity": "1 cup"}]`
	if got != want {
		t.Errorf("QuoteJSONKeys = %q, want %q", got, want)
	}

	// Already-quoted keys are left alone.
	quoted := `{"a": 1}`
	if got := QuoteJSONKeys(quoted); got != quoted {
		t.Errorf("QuoteJSONKeys(%q) = %q, want unchanged", quoted, got)
	}
}
