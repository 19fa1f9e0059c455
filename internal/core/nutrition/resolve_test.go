package nutrition

import (
	"testing"

	"nutrition-estimator/internal/pkg/common"
)

func TestResolveExact(t *testing.T) {
	s := newTestStandardizer()
	notes := &common.Notes{}

	if got := s.ResolveName("Tomato", notes); got != "tomato" {
		t.Errorf("ResolveName(Tomato) = %q, want tomato", got)
	}
	if notes.Len() != 0 {
		t.Errorf("exact match should not produce notes, got %v", notes.List())
	}
}

func TestResolveSynonym(t *testing.T) {
	s := newTestStandardizer()
	notes := &common.Notes{}

	if got := s.ResolveName("Tomatoes", notes); got != "tomato" {
		t.Errorf("ResolveName(Tomatoes) = %q, want tomato", got)
	}
	if got := s.ResolveName("Curd", notes); got != "yogurt" {
		t.Errorf("ResolveName(Curd) = %q, want yogurt", got)
	}
}

func TestResolveSubstring(t *testing.T) {
	s := newTestStandardizer()
	notes := &common.Notes{}

	if got := s.ResolveName("Basmati Rice", notes); got != "rice" {
		t.Errorf("ResolveName(Basmati Rice) = %q, want rice", got)
	}
	if got := s.ResolveName("Fresh Paneer Cubes", notes); got != "paneer" {
		t.Errorf("ResolveName(Fresh Paneer Cubes) = %q, want paneer", got)
	}
}

func TestResolveUnknown(t *testing.T) {
	s := newTestStandardizer()
	notes := &common.Notes{}

	if got := s.ResolveName("Dried Fenugreek", notes); got != "dried fenugreek" {
		t.Errorf("ResolveName(Dried Fenugreek) = %q, want the normalized input", got)
	}
	if notes.Len() != 1 {
		t.Errorf("unresolved name must record a note, got %v", notes.List())
	}
}

func TestResolveIdempotent(t *testing.T) {
	s := newTestStandardizer()

	for _, name := range []string{"Tomatoes", "Basmati Rice", "Paneer", "Dried Fenugreek"} {
		first := s.ResolveName(name, &common.Notes{})
		second := s.ResolveName(first, &common.Notes{})
		if first != second {
			t.Errorf("resolution of %q is not idempotent: %q then %q", name, first, second)
		}
	}
}
