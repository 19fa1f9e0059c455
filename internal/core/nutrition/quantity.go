package nutrition

import (
	"regexp"
	"strconv"
	"strings"

	"nutrition-estimator/internal/pkg/common"
)

var (
	fractionPattern = regexp.MustCompile(`(\d+)/(\d+)`)
	numberPattern   = regexp.MustCompile(`[\d.]+`)
)

// unitToken maps a token substring to a canonical unit. Evaluated in declared
// order, first match wins; the order resolves overlapping tokens (teacup
// before cup, milliliter before liter, kg before the bare-g heuristic).
type unitToken struct {
	token string
	unit  common.CanonicalUnit
}

var unitTokens = []unitToken{
	{"tbsp", common.UnitTablespoon},
	{"tablespoon", common.UnitTablespoon},
	{"tsp", common.UnitTeaspoon},
	{"teaspoon", common.UnitTeaspoon},
	{"teacup", common.UnitTeacup},
	{"cup", common.UnitCup},
	{"katori", common.UnitKatori},
	{"glass", common.UnitGlass},
	{"milliliter", common.UnitMilliliter},
	{"ml", common.UnitMilliliter},
	{"kilogram", common.UnitKilogram},
	{"kg", common.UnitKilogram},
	{"gram", common.UnitGram},
	{"liter", common.UnitLiter},
	{"pinch", common.UnitPinch},
	{"piece", common.UnitPiece},
	{"medium", common.UnitMedium},
	{"large", common.UnitLarge},
	{"small", common.UnitSmall},
}

var sizeDescriptors = []common.CanonicalUnit{common.UnitSmall, common.UnitMedium, common.UnitLarge}

// ParseQuantity turns a free-text quantity ("1/2 tsp", "250g", "to taste")
// into a value and canonical unit. It is total: unparseable input degrades to
// {1, piece} with a note, never an error.
func ParseQuantity(quantity string, notes *common.Notes) common.ParsedQuantity {
	normalized := common.NormalizeName(quantity)

	if strings.Contains(normalized, "to taste") {
		return common.ParsedQuantity{Value: 1, Unit: common.UnitPinch}
	}

	if m := fractionPattern.FindStringSubmatch(normalized); m != nil {
		num, _ := strconv.ParseFloat(m[1], 64)
		den, _ := strconv.ParseFloat(m[2], 64)
		if den != 0 {
			rest := strings.TrimSpace(strings.Replace(normalized, m[0], "", 1))
			return common.ParsedQuantity{Value: num / den, Unit: NormalizeUnit(rest)}
		}
		notes.Addf("zero denominator in quantity %q, assuming 1 piece", quantity)
		return common.ParsedQuantity{Value: 1, Unit: common.UnitPiece}
	}

	m := numberPattern.FindString(normalized)
	if m == "" {
		notes.Addf("could not parse quantity %q, assuming 1 piece", quantity)
		return common.ParsedQuantity{Value: 1, Unit: common.UnitPiece}
	}

	value, err := strconv.ParseFloat(m, 64)
	if err != nil {
		// Matches like "." slip through the digit pattern.
		notes.Addf("could not parse quantity %q, assuming 1 piece", quantity)
		return common.ParsedQuantity{Value: 1, Unit: common.UnitPiece}
	}

	rest := strings.TrimSpace(strings.Replace(normalized, m, "", 1))
	return common.ParsedQuantity{Value: value, Unit: NormalizeUnit(rest)}
}

// NormalizeUnit maps residual quantity text to a canonical unit. Total: text
// with no recognizable unit falls through to piece.
func NormalizeUnit(text string) common.CanonicalUnit {
	for _, ut := range unitTokens {
		if strings.Contains(text, ut.token) {
			return ut.unit
		}
	}

	// Units glued to the number, like the g in "250g".
	if strings.Contains(text, "g") && !strings.Contains(text, "kg") {
		return common.UnitGram
	}
	if strings.Contains(text, "ml") {
		return common.UnitMilliliter
	}

	for _, size := range sizeDescriptors {
		if strings.Contains(text, string(size)) {
			return size
		}
	}

	if strings.Contains(text, "clove") || strings.Contains(text, "whole") {
		return common.UnitPiece
	}

	return common.UnitPiece
}
