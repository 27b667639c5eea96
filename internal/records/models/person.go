package models

import (
	"strings"

	id "persondesk/pkg/domain"
)

// Person holds the editable name fields of a personal details draft.
type Person struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

// Complete reports whether both name fields carry non-blank text. Save and
// update are only offered for complete names.
func (p Person) Complete() bool {
	return strings.TrimSpace(p.FirstName) != "" && strings.TrimSpace(p.LastName) != ""
}

// PersonSummary is one entry of the master person list as the backend
// reports it.
type PersonSummary struct {
	ID        id.PersonID `json:"personal_details_id"`
	FirstName string      `json:"first_name"`
	LastName  string      `json:"last_name"`
	Deleted   bool        `json:"is_deleted"`
}

// FullName joins first and last name with a single space.
func (p PersonSummary) FullName() string {
	return p.FirstName + " " + p.LastName
}

// Person returns the name fields of the summary.
func (p PersonSummary) Person() Person {
	return Person{FirstName: p.FirstName, LastName: p.LastName}
}
