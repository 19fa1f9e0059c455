package data

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"strings"

	"nutrition-estimator/internal/pkg/common"

	"go.uber.org/zap"
)

// ServingTable maps food-type categories to their standard household serving.
// Immutable after load. When a category declares several unit/weight pairs,
// the first declared pair is the serving definition.
type ServingTable struct {
	servings map[string]ServingDef
}

// NewServingTable builds a table from a category→serving map.
func NewServingTable(servings map[string]ServingDef) *ServingTable {
	copied := make(map[string]ServingDef, len(servings))
	for k, v := range servings {
		copied[k] = v
	}
	return &ServingTable{servings: copied}
}

// Lookup returns the serving definition for a category.
func (t *ServingTable) Lookup(category string) (ServingDef, bool) {
	def, ok := t.servings[category]
	return def, ok
}

// Len returns the number of categories.
func (t *ServingTable) Len() int {
	return len(t.servings)
}

// BuiltinServingTable returns the built-in fallback serving table.
func BuiltinServingTable() *ServingTable {
	return NewServingTable(builtinServings)
}

// LoadServingTable parses a comma-separated household measurement file with
// a category,unit,weight header. Rows with unparseable weights are skipped.
// On any load fault the error is returned and the caller substitutes
// BuiltinServingTable.
func LoadServingTable(path string) (*ServingTable, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open household measurements: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to parse household measurements: %w", err)
	}
	if len(records) < 2 {
		return nil, fmt.Errorf("household measurements file has no data rows")
	}

	servings := make(map[string]ServingDef)
	for _, rec := range records[1:] {
		if len(rec) < 3 {
			continue
		}
		category := strings.TrimSpace(rec[0])
		unit := strings.ToLower(strings.TrimSpace(rec[1]))
		weight, err := strconv.ParseFloat(strings.TrimSpace(rec[2]), 64)
		if category == "" || unit == "" || err != nil || weight <= 0 {
			continue
		}
		// First declared pair per category wins.
		if _, exists := servings[category]; !exists {
			servings[category] = ServingDef{Unit: unit, Grams: weight}
		}
	}

	common.LogInfo("household measurements loaded",
		zap.String("path", path),
		zap.Int("categories", len(servings)),
	)
	return NewServingTable(servings), nil
}
