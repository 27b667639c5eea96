// Package search filters the master person list on the client.
package search

import (
	"strings"

	"persondesk/internal/records/models"
	pstrings "persondesk/pkg/platform/strings"
)

// Filter returns the users whose lower-cased "first last" name contains every
// whitespace-separated term of query as a substring. Term order does not
// matter and terms are not whole-word. The input slice is never modified;
// an empty query returns it unchanged.
func Filter(users []models.PersonSummary, query string) []models.PersonSummary {
	terms := pstrings.SearchTerms(query)
	if len(terms) == 0 {
		return users
	}

	result := make([]models.PersonSummary, 0, len(users))
	for _, u := range users {
		if Matches(u, terms) {
			result = append(result, u)
		}
	}
	return result
}

// Matches reports whether every term occurs in the user's full name.
// Terms must already be lower-cased.
func Matches(u models.PersonSummary, terms []string) bool {
	fullName := strings.ToLower(u.FirstName) + " " + strings.ToLower(u.LastName)
	for _, term := range terms {
		if !strings.Contains(fullName, term) {
			return false
		}
	}
	return true
}
