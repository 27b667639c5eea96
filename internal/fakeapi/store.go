// Package fakeapi is an in-memory stand-in for the personal-details backend.
// It reproduces the backend's quirks: person creation does not echo the new
// id, deletes only flip flags, and the combined view includes soft-deleted
// children.
package fakeapi

import (
	"cmp"
	"fmt"
	"slices"
	"sync"

	"persondesk/internal/records/models"
	id "persondesk/pkg/domain"
	"persondesk/pkg/platform/sentinel"
)

// Store keeps every record in memory. Ids start at 1 and are never reused.
type Store struct {
	mu        sync.RWMutex
	persons   map[id.PersonID]models.PersonSummary
	officials map[id.OfficialID]models.OfficialRecord
	banks     map[id.BankDetailID]models.BankDetailRecord

	lastPerson   id.PersonID
	lastOfficial id.OfficialID
	lastBank     id.BankDetailID
}

func NewStore() *Store {
	return &Store{
		persons:   make(map[id.PersonID]models.PersonSummary),
		officials: make(map[id.OfficialID]models.OfficialRecord),
		banks:     make(map[id.BankDetailID]models.BankDetailRecord),
	}
}

func (s *Store) ListPersons() []models.PersonSummary {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.PersonSummary, 0, len(s.persons))
	for _, p := range s.persons {
		out = append(out, p)
	}
	slices.SortFunc(out, func(a, b models.PersonSummary) int { return cmp.Compare(a.ID, b.ID) })
	return out
}

func (s *Store) CreatePerson(p models.Person) models.PersonSummary {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastPerson++
	row := models.PersonSummary{ID: s.lastPerson, FirstName: p.FirstName, LastName: p.LastName}
	s.persons[row.ID] = row
	return row
}

func (s *Store) UpdatePerson(personID id.PersonID, p models.Person) (models.PersonSummary, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	row, ok := s.persons[personID]
	if !ok {
		return models.PersonSummary{}, notFound("personal details", personID.String())
	}
	row.FirstName, row.LastName = p.FirstName, p.LastName
	s.persons[personID] = row
	return row, nil
}

func (s *Store) SoftDeletePerson(personID id.PersonID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	row, ok := s.persons[personID]
	if !ok {
		return notFound("personal details", personID.String())
	}
	row.Deleted = true
	s.persons[personID] = row
	return nil
}

// Combined returns the person with all of its children, deleted ones
// included.
func (s *Store) Combined(personID id.PersonID) (models.Combined, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.persons[personID]
	if !ok {
		return models.Combined{}, notFound("personal details", personID.String())
	}
	c := models.Combined{
		PersonSummary: p,
		Officials:     []models.OfficialRecord{},
		BankDetails:   []models.BankDetailRecord{},
	}
	for _, o := range s.officials {
		if o.PersonID == personID {
			c.Officials = append(c.Officials, o)
		}
	}
	for _, b := range s.banks {
		if b.PersonID == personID {
			c.BankDetails = append(c.BankDetails, b)
		}
	}
	slices.SortFunc(c.Officials, func(a, b models.OfficialRecord) int { return cmp.Compare(a.ID, b.ID) })
	slices.SortFunc(c.BankDetails, func(a, b models.BankDetailRecord) int { return cmp.Compare(a.ID, b.ID) })
	return c, nil
}

func (s *Store) CreateOfficial(personID id.PersonID, in models.OfficialInput) (models.OfficialRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.persons[personID]; !ok {
		return models.OfficialRecord{}, fmt.Errorf("personal_details_id: unknown person %s: %w", personID, sentinel.ErrInvalidInput)
	}
	s.lastOfficial++
	row := models.OfficialRecord{ID: s.lastOfficial, PersonID: personID, Name: in.Name, IDNumber: in.IDNumber}
	s.officials[row.ID] = row
	return row, nil
}

func (s *Store) UpdateOfficial(officialID id.OfficialID, in models.OfficialInput) (models.OfficialRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	row, ok := s.officials[officialID]
	if !ok {
		return models.OfficialRecord{}, notFound("related official", officialID.String())
	}
	row.Name, row.IDNumber = in.Name, in.IDNumber
	s.officials[officialID] = row
	return row, nil
}

func (s *Store) SoftDeleteOfficial(officialID id.OfficialID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	row, ok := s.officials[officialID]
	if !ok {
		return notFound("related official", officialID.String())
	}
	row.Deleted = true
	s.officials[officialID] = row
	return nil
}

func (s *Store) ListBankDetails() []models.BankDetailRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.BankDetailRecord, 0, len(s.banks))
	for _, b := range s.banks {
		out = append(out, b)
	}
	slices.SortFunc(out, func(a, b models.BankDetailRecord) int { return cmp.Compare(a.ID, b.ID) })
	return out
}

func (s *Store) GetBankDetail(bankDetailID id.BankDetailID) (models.BankDetailRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	row, ok := s.banks[bankDetailID]
	if !ok {
		return models.BankDetailRecord{}, notFound("bank details", bankDetailID.String())
	}
	return row, nil
}

func (s *Store) CreateBankDetail(personID id.PersonID, in models.BankDetailInput) (models.BankDetailRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.persons[personID]; !ok {
		return models.BankDetailRecord{}, fmt.Errorf("personal_details_id: unknown person %s: %w", personID, sentinel.ErrInvalidInput)
	}
	s.lastBank++
	row := models.BankDetailRecord{
		ID:                s.lastBank,
		PersonID:          personID,
		AccountDetails:    in.AccountDetails,
		Loans:             in.Loans,
		LeasingFacilities: in.LeasingFacilities,
	}
	s.banks[row.ID] = row
	return row, nil
}

func (s *Store) UpdateBankDetail(bankDetailID id.BankDetailID, in models.BankDetailInput) (models.BankDetailRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	row, ok := s.banks[bankDetailID]
	if !ok {
		return models.BankDetailRecord{}, notFound("bank details", bankDetailID.String())
	}
	row.AccountDetails = in.AccountDetails
	row.Loans = in.Loans
	row.LeasingFacilities = in.LeasingFacilities
	s.banks[bankDetailID] = row
	return row, nil
}

func (s *Store) SoftDeleteBankDetail(bankDetailID id.BankDetailID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	row, ok := s.banks[bankDetailID]
	if !ok {
		return notFound("bank details", bankDetailID.String())
	}
	row.Deleted = true
	s.banks[bankDetailID] = row
	return nil
}

func notFound(kind, key string) error {
	return fmt.Errorf("%s %s not found: %w", kind, key, sentinel.ErrNotFound)
}
