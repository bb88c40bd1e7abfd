package services

import (
	"regexp"
	"strings"

	"github.com/agext/levenshtein"
)

var (
	brandPrefixPattern = regexp.MustCompile(`^(shell|chevron|bp|exxon|mobil|arco|valero|speedway|marathon|sunoco|wawa|7-eleven|circlek)`)
	storeNumberPattern = regexp.MustCompile(`#\d+$`)
	nonAlnumPattern    = regexp.MustCompile(`[^a-z0-9]`)
)

// normalizeStationName reduces a station name to a comparable form:
// lowercased, whitespace collapsed, common brand prefixes and trailing
// store numbers stripped, non-alphanumerics removed.
func normalizeStationName(name string) string {
	s := strings.ToLower(name)
	s = strings.Join(strings.Fields(s), "")
	s = brandPrefixPattern.ReplaceAllString(s, "")
	s = storeNumberPattern.ReplaceAllString(s, "")
	return nonAlnumPattern.ReplaceAllString(s, "")
}

// nameSimilarity scores two normalized names in [0, 1]. Exact matches score
// 1.0 and substring containment 0.9; everything else falls back to
// edit-distance similarity (1 - distance/maxLength).
func nameSimilarity(a, b string) float64 {
	if a == b {
		return 1
	}
	if strings.Contains(a, b) || strings.Contains(b, a) {
		return 0.9
	}

	maxLen := len(a)
	if len(b) > maxLen {
		maxLen = len(b)
	}
	if maxLen == 0 {
		return 1
	}

	dist := levenshtein.Distance(a, b, nil)
	return 1 - float64(dist)/float64(maxLen)
}
