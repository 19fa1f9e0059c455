package nutrition

import (
	"strings"

	"nutrition-estimator/internal/pkg/common"

	"go.uber.org/zap"
)

// ResolveName maps a free-text ingredient name to a canonical key of the
// nutrition table. Resolution strategies run in order, first hit wins:
// exact match, synonym table, bidirectional substring over the table keys in
// declared order, word-by-word match, last word, then the normalized input
// itself with a note. Never fails; resolving an already-canonical name
// returns it unchanged.
func (s *Standardizer) ResolveName(raw string, notes *common.Notes) string {
	normalized := common.NormalizeName(raw)

	if _, ok := s.table.Lookup(normalized); ok {
		return normalized
	}

	if mapped, ok := s.synonyms[normalized]; ok {
		return mapped
	}

	// Table key order is the tie-break here; it is part of the contract.
	for _, key := range s.table.Keys() {
		if strings.Contains(normalized, key) || strings.Contains(key, normalized) {
			common.LogDebug("ingredient name matched by substring",
				zap.String("input", normalized),
				zap.String("key", key),
			)
			return key
		}
	}

	words := strings.Fields(normalized)
	if len(words) > 1 {
		for _, word := range words {
			if _, ok := s.table.Lookup(word); ok {
				common.LogDebug("ingredient name matched by word",
					zap.String("input", normalized),
					zap.String("word", word),
				)
				return word
			}
		}

		// The last word often names the main ingredient.
		last := words[len(words)-1]
		if _, ok := s.table.Lookup(last); ok {
			return last
		}
	}

	notes.Addf("could not resolve ingredient name %q", normalized)
	common.LogDegraded("resolver", "unresolved ingredient name", zap.String("name", normalized))
	return normalized
}
