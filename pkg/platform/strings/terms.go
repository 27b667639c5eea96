// Package strings provides string and slice helpers shared by the search and
// delete paths.
package strings

import (
	"strings"
)

// SearchTerms lower-cases a query and splits it on whitespace. Empty terms
// and repeated terms are dropped; order is preserved.
//
// Example:
//
//	SearchTerms("  John  SMITH john ")
//	// Returns: []string{"john", "smith"}
func SearchTerms(query string) []string {
	fields := strings.Fields(strings.ToLower(query))
	if len(fields) == 0 {
		return nil
	}
	return Dedupe(fields)
}

// Dedupe removes repeated values, keeping the first occurrence of each.
//
// Example:
//
//	Dedupe([]int64{1, 2, 2, 5, 1})
//	// Returns: []int64{1, 2, 5}
func Dedupe[T comparable](values []T) []T {
	if len(values) == 0 {
		return values
	}

	seen := make(map[T]struct{}, len(values))
	result := make([]T, 0, len(values))

	for _, v := range values {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		result = append(result, v)
	}

	return result
}
