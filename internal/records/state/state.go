// Package state holds the client-side application state: the person draft
// with its related officials, the bank-details draft, the master list and the
// transient toast.
//
// All transitions go through Reduce, which is pure: it never mutates the
// state it is given, so any State value handed out by a Store can be read
// without locking. Callers must treat the slices inside a State as
// read-only.
package state

import (
	"persondesk/internal/records/models"
	id "persondesk/pkg/domain"
)

// Scope names the request family a loading flag or error belongs to.
type Scope string

const (
	ScopeUsers  Scope = "users"
	ScopePerson Scope = "person"
	ScopeBank   Scope = "bank"
)

// MessageKind classifies a toast.
type MessageKind string

const (
	MessageSuccess MessageKind = "success"
	MessageWarning MessageKind = "warning"
	MessageError   MessageKind = "error"
	MessageInfo    MessageKind = "info"
)

// Message is the transient toast shown after a workflow finishes.
type Message struct {
	Text    string
	Kind    MessageKind
	Visible bool
}

// PersonSnapshot is the last server-confirmed copy of the person draft.
type PersonSnapshot struct {
	User      models.Person
	Officials []models.RelatedOfficial
}

// PersonSlice holds the person draft, its officials and the master list.
type PersonSlice struct {
	User              models.Person
	Officials         []models.RelatedOfficial
	PersonalDetailsID id.PersonID
	Editing           bool
	HasUnsavedChanges bool
	Original          *PersonSnapshot
	Loading           bool
	Err               string

	Users        []models.PersonSummary
	Filtered     []models.PersonSummary
	Query        string
	LoadingUsers bool
	UsersErr     string

	Message Message
}

// BankSlice holds the bank-details draft of the active person.
type BankSlice struct {
	Details           []models.BankDetail
	PersonalDetailsID id.PersonID
	Editing           bool
	HasUnsavedChanges bool
	// Original is nil until a person has been loaded; an empty non-nil
	// slice means "loaded, no bank details".
	Original []models.BankDetail
	Loading  bool
	Err      string
}

// State is the whole application state.
type State struct {
	Person PersonSlice
	Bank   BankSlice
	Saving bool
	// NextKey is the last local row key handed out.
	NextKey int
}

// HasUnsavedChanges reports whether either draft diverged from its snapshot.
func (s State) HasUnsavedChanges() bool {
	return s.Person.HasUnsavedChanges || s.Bank.HasUnsavedChanges
}

// Selected returns the id of the person currently loaded into the draft.
func (s State) Selected() (id.PersonID, bool) {
	return s.Person.PersonalDetailsID, !s.Person.PersonalDetailsID.IsZero()
}

// Official returns the draft official with the given local key.
func (s State) Official(key int) (models.RelatedOfficial, bool) {
	if i := indexOfficial(s.Person.Officials, key); i >= 0 {
		return s.Person.Officials[i], true
	}
	return models.RelatedOfficial{}, false
}

// BankDetail returns the draft bank detail with the given local key.
func (s State) BankDetail(key int) (models.BankDetail, bool) {
	if i := indexBankDetail(s.Bank.Details, key); i >= 0 {
		return s.Bank.Details[i], true
	}
	return models.BankDetail{}, false
}

// Reduce applies a to s and returns the resulting state. Every action is
// offered to both slice reducers, so a domain event such as
// PersonSoftDeleted is handled by each slice independently.
func Reduce(s State, a Action) State {
	next := s
	nextKey := func() int {
		next.NextKey++
		return next.NextKey
	}

	if sc, ok := a.(SavingChanged); ok {
		next.Saving = sc.Saving
	}
	next.Person = reducePerson(s.Person, a, nextKey)
	next.Bank = reduceBank(s.Bank, a, nextKey)
	return next
}

func indexOfficial(rows []models.RelatedOfficial, key int) int {
	for i, r := range rows {
		if r.Key == key {
			return i
		}
	}
	return -1
}

func indexBankDetail(rows []models.BankDetail, key int) int {
	for i, r := range rows {
		if r.Key == key {
			return i
		}
	}
	return -1
}
