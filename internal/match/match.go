// Package match provides the approximate string matching used by reminder
// search when no tag matches exactly.
package match

import (
	"github.com/lithammer/fuzzysearch/fuzzy"

	"reminder-list/internal/reminder"
)

// Fuzzy matches a query against candidates with case-insensitive
// subsequence matching. Matched candidates come back verbatim, never
// transformed.
type Fuzzy struct{}

var _ reminder.Matcher = Fuzzy{}

func (Fuzzy) Match(query string, candidates []string) []string {
	return fuzzy.FindFold(query, candidates)
}
