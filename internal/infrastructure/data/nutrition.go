package data

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"nutrition-estimator/internal/pkg/common"

	"go.uber.org/zap"
)

// NutritionTable is the per-100g nutrition reference, immutable after load.
// Key order is preserved from the source file because the name resolver's
// substring pass takes the first match in declared order.
type NutritionTable struct {
	entries map[string]common.NutritionVector
	keys    []string
}

// NewNutritionTable builds a table from ordered (name, vector) pairs.
// Duplicate names keep the first position but take the last value.
func NewNutritionTable(names []string, vectors []common.NutritionVector) *NutritionTable {
	t := &NutritionTable{entries: make(map[string]common.NutritionVector, len(names))}
	for i, name := range names {
		t.put(name, vectors[i])
	}
	return t
}

func (t *NutritionTable) put(name string, vec common.NutritionVector) {
	name = common.NormalizeName(name)
	if name == "" {
		return
	}
	if _, exists := t.entries[name]; !exists {
		t.keys = append(t.keys, name)
	}
	t.entries[name] = vec
}

// Lookup returns the per-100g vector for an exact key.
func (t *NutritionTable) Lookup(name string) (common.NutritionVector, bool) {
	vec, ok := t.entries[name]
	return vec, ok
}

// Keys returns the table keys in declared order. Callers must not mutate.
func (t *NutritionTable) Keys() []string {
	return t.keys
}

// Len returns the number of entries.
func (t *NutritionTable) Len() int {
	return len(t.entries)
}

// BuiltinNutritionTable returns the minimal built-in fallback table.
func BuiltinNutritionTable() *NutritionTable {
	t := &NutritionTable{entries: make(map[string]common.NutritionVector, len(builtinNutrition))}
	for _, e := range builtinNutrition {
		t.put(e.name, e.vec)
	}
	return t
}

// Required columns of the nutrition TSV.
const (
	colFoodName = "food_name"
	colCalories = "energy_kcal"
	colProtein  = "protein_g"
	colCarbs    = "carb_g"
	colFat      = "fat_g"
	colFiber    = "fibre_g"
)

// LoadNutritionTable parses a tab-separated nutrition file. A missing file or
// missing required column is a load-time fault: the error is returned and the
// caller is expected to substitute BuiltinNutritionTable. Unparseable numeric
// cells degrade to 0.
func LoadNutritionTable(path string) (*NutritionTable, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read nutrition table: %w", err)
	}

	lines := strings.Split(string(raw), "\n")
	if len(lines) == 0 {
		return nil, fmt.Errorf("nutrition table is empty")
	}

	headers := strings.Split(strings.TrimRight(lines[0], "\r"), "\t")
	idx := func(name string) int {
		for i, h := range headers {
			if strings.TrimSpace(h) == name {
				return i
			}
		}
		return -1
	}

	nameIdx := idx(colFoodName)
	calIdx := idx(colCalories)
	protIdx := idx(colProtein)
	carbIdx := idx(colCarbs)
	fatIdx := idx(colFat)
	fiberIdx := idx(colFiber)

	for col, i := range map[string]int{
		colFoodName: nameIdx, colCalories: calIdx, colProtein: protIdx,
		colCarbs: carbIdx, colFat: fatIdx, colFiber: fiberIdx,
	} {
		if i == -1 {
			return nil, fmt.Errorf("required column %q not found in nutrition table", col)
		}
	}

	t := &NutritionTable{entries: make(map[string]common.NutritionVector)}
	for _, line := range lines[1:] {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		cols := strings.Split(line, "\t")
		if nameIdx >= len(cols) {
			continue
		}

		// Entries like "Rice, raw (polished)" index under the main name only.
		name := common.NormalizeName(cols[nameIdx])
		name = strings.TrimSpace(strings.SplitN(strings.SplitN(name, ",", 2)[0], "(", 2)[0])
		if name == "" {
			continue
		}

		cell := func(i int) float64 {
			if i >= len(cols) {
				return 0
			}
			v, err := strconv.ParseFloat(strings.TrimSpace(cols[i]), 64)
			if err != nil || v < 0 {
				return 0
			}
			return v
		}

		t.put(name, common.NutritionVector{
			Calories: cell(calIdx),
			Protein:  cell(protIdx),
			Carbs:    cell(carbIdx),
			Fat:      cell(fatIdx),
			Fiber:    cell(fiberIdx),
		})
	}

	common.LogInfo("nutrition table loaded",
		zap.String("path", path),
		zap.Int("entries", t.Len()),
	)
	return t, nil
}
