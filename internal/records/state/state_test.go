package state

import (
	"testing"

	"github.com/guregu/null/v6"
	"github.com/stretchr/testify/suite"

	"persondesk/internal/records/models"
	id "persondesk/pkg/domain"
)

type ReduceSuite struct {
	suite.Suite
}

func TestReduceSuite(t *testing.T) {
	suite.Run(t, new(ReduceSuite))
}

func (s *ReduceSuite) combined() models.Combined {
	return models.Combined{
		PersonSummary: models.PersonSummary{ID: 7, FirstName: "Ada", LastName: "Lovelace"},
		Officials: []models.OfficialRecord{
			{ID: 21, PersonID: 7, Name: "Charles", IDNumber: "NIC-21"},
			{ID: 20, PersonID: 7, Name: "Mary", IDNumber: "NIC-20"},
			{ID: 22, PersonID: 7, Name: "Removed", Deleted: true},
		},
		BankDetails: []models.BankDetailRecord{
			{ID: 31, PersonID: 7, AccountDetails: "Savings", Loans: null.FloatFrom(1500), LeasingFacilities: null.FloatFrom(0.5)},
		},
	}
}

func (s *ReduceSuite) loaded() State {
	return Reduce(State{}, CombinedLoaded{Combined: s.combined()})
}

func (s *ReduceSuite) TestCombinedLoaded() {
	s.Run("maps person fields and clears unsaved", func() {
		st := Reduce(State{Person: PersonSlice{HasUnsavedChanges: true}}, CombinedLoaded{Combined: s.combined()})

		s.Equal(id.PersonID(7), st.Person.PersonalDetailsID)
		s.True(st.Person.Editing)
		s.False(st.HasUnsavedChanges())
		s.Equal(models.Person{FirstName: "Ada", LastName: "Lovelace"}, st.Person.User)
		s.Require().NotNil(st.Person.Original)
		s.Equal(st.Person.User, st.Person.Original.User)
		s.Equal(st.Person.Officials, st.Person.Original.Officials)
	})

	s.Run("officials drop deleted rows and sort by id", func() {
		st := s.loaded()
		s.Require().Len(st.Person.Officials, 2)
		s.Equal("Mary", st.Person.Officials[0].Name)
		s.Equal("NIC-20", st.Person.Officials[0].IDNumber)
		s.Equal(null.IntFrom(20), st.Person.Officials[0].ID)
		s.Equal("Charles", st.Person.Officials[1].Name)
		for _, o := range st.Person.Officials {
			s.False(o.Temporary)
			s.NotZero(o.Key)
		}
	})

	s.Run("bank slice receives rows with amounts as text", func() {
		st := s.loaded()
		s.Equal(id.PersonID(7), st.Bank.PersonalDetailsID)
		s.True(st.Bank.Editing)
		s.Require().Len(st.Bank.Details, 1)
		s.Equal("Savings", st.Bank.Details[0].AccountDetails)
		s.Equal("1500", st.Bank.Details[0].Loans)
		s.Equal("0.5", st.Bank.Details[0].LeasingFacilities)
		s.Equal(st.Bank.Details, st.Bank.Original)
	})

	s.Run("no bank rows still yields a loaded snapshot", func() {
		c := s.combined()
		c.BankDetails = nil
		st := Reduce(State{}, CombinedLoaded{Combined: c})
		s.False(st.Bank.Editing)
		s.NotNil(st.Bank.Original)
		s.Empty(st.Bank.Original)
	})

	s.Run("keys are unique across both slices", func() {
		st := s.loaded()
		seen := map[int]bool{}
		for _, o := range st.Person.Officials {
			s.False(seen[o.Key])
			seen[o.Key] = true
		}
		for _, b := range st.Bank.Details {
			s.False(seen[b.Key])
			seen[b.Key] = true
		}
		s.Equal(len(seen), st.NextKey)
	})
}

func (s *ReduceSuite) TestDraftEdits() {
	s.Run("SetUser marks unsaved even when unchanged", func() {
		st := s.loaded()
		st = Reduce(st, SetUser{User: st.Person.User})
		s.True(st.Person.HasUnsavedChanges)
		s.True(st.HasUnsavedChanges())
	})

	s.Run("AddOfficial assigns a key and marks the row temporary", func() {
		st := s.loaded()
		before := st.NextKey
		st = Reduce(st, AddOfficial{Official: models.RelatedOfficial{Name: "New", Temporary: false}})

		s.Require().Len(st.Person.Officials, 3)
		row := st.Person.Officials[2]
		s.Equal(before+1, row.Key)
		s.True(row.Temporary)
		s.False(row.ID.Valid)
		s.True(st.Person.HasUnsavedChanges)
	})

	s.Run("EditOfficial keeps key and id", func() {
		st := s.loaded()
		orig := st.Person.Officials[0]
		st = Reduce(st, EditOfficial{Key: orig.Key, Official: models.RelatedOfficial{Name: "Renamed", ID: null.IntFrom(999)}})

		got, ok := st.Official(orig.Key)
		s.Require().True(ok)
		s.Equal("Renamed", got.Name)
		s.Equal(orig.ID, got.ID)
		s.True(got.Temporary)
		s.True(st.Person.HasUnsavedChanges)
	})

	s.Run("EditOfficial with an unknown key is a no-op", func() {
		st := s.loaded()
		next := Reduce(st, EditOfficial{Key: 404, Official: models.RelatedOfficial{Name: "x"}})
		s.Equal(st, next)
	})

	s.Run("RemoveOfficial drops the row and marks unsaved", func() {
		st := s.loaded()
		key := st.Person.Officials[0].Key
		st = Reduce(st, RemoveOfficial{Key: key})
		_, ok := st.Official(key)
		s.False(ok)
		s.True(st.Person.HasUnsavedChanges)
		s.Len(st.Person.Original.Officials, 2)
	})

	s.Run("AddBankDetail and EditBankDetail mark the bank slice unsaved", func() {
		st := s.loaded()
		st = Reduce(st, AddBankDetail{BankDetail: models.BankDetail{AccountDetails: "Current"}})
		s.True(st.Bank.HasUnsavedChanges)
		s.False(st.Person.HasUnsavedChanges)
		s.True(st.HasUnsavedChanges())

		key := st.Bank.Details[0].Key
		st = Reduce(st, EditBankDetail{Key: key, BankDetail: models.BankDetail{AccountDetails: "Savings", Loans: "10"}})
		got, ok := st.BankDetail(key)
		s.Require().True(ok)
		s.Equal("10", got.Loans)
		s.Equal(null.IntFrom(31), got.ID)
		s.True(got.Temporary)
	})
}

func (s *ReduceSuite) TestSoftDeletedRows() {
	s.Run("OfficialSoftDeleted removes from draft and snapshot without unsaved", func() {
		st := s.loaded()
		key := st.Person.Officials[0].Key
		st = Reduce(st, OfficialSoftDeleted{Key: key})

		s.Len(st.Person.Officials, 1)
		s.Len(st.Person.Original.Officials, 1)
		s.False(st.Person.HasUnsavedChanges)
	})

	s.Run("BankDetailSoftDeleted removes from draft and snapshot", func() {
		st := s.loaded()
		key := st.Bank.Details[0].Key
		st = Reduce(st, BankDetailSoftDeleted{Key: key})

		s.Empty(st.Bank.Details)
		s.NotNil(st.Bank.Original)
		s.Empty(st.Bank.Original)
		s.False(st.Bank.HasUnsavedChanges)
	})
}

func (s *ReduceSuite) TestSynced() {
	s.Run("OfficialSynced confirms the row and re-sorts", func() {
		st := s.loaded()
		st = Reduce(st, AddOfficial{Official: models.RelatedOfficial{Name: "Early"}})
		key := st.Person.Officials[2].Key

		st = Reduce(st, OfficialSynced{Key: key, Official: models.RelatedOfficial{ID: null.IntFrom(5), Name: "Early"}})
		s.Require().Len(st.Person.Officials, 3)
		first := st.Person.Officials[0]
		s.Equal(key, first.Key)
		s.False(first.Temporary)
		s.True(first.Persisted())
	})

	s.Run("OfficialSynced without an id leaves the row unconfirmed by id", func() {
		st := Reduce(State{}, AddOfficial{Official: models.RelatedOfficial{Name: "NoID"}})
		key := st.Person.Officials[0].Key
		st = Reduce(st, OfficialSynced{Key: key, Official: models.RelatedOfficial{Name: "NoID"}})

		row := st.Person.Officials[0]
		s.False(row.Temporary)
		s.False(row.ID.Valid)
	})

	s.Run("BankDetailSynced confirms the row", func() {
		st := s.loaded()
		key := st.Bank.Details[0].Key
		st = Reduce(st, EditBankDetail{Key: key, BankDetail: models.BankDetail{AccountDetails: "Main"}})
		st = Reduce(st, BankDetailSynced{Key: key, BankDetail: models.BankDetail{ID: null.IntFrom(31), AccountDetails: "Main"}})

		got, ok := st.BankDetail(key)
		s.Require().True(ok)
		s.False(got.Temporary)
		s.Equal("Main", got.AccountDetails)
	})
}

func (s *ReduceSuite) TestSnapshots() {
	s.Run("RevertChanges restores both drafts", func() {
		st := s.loaded()
		want := st
		st = Reduce(st, SetUser{User: models.Person{FirstName: "Grace", LastName: "Hopper"}})
		st = Reduce(st, RemoveOfficial{Key: st.Person.Officials[0].Key})
		st = Reduce(st, AddBankDetail{BankDetail: models.BankDetail{AccountDetails: "x"}})
		st = Reduce(st, RevertChanges{})

		s.Equal(want.Person.User, st.Person.User)
		s.Equal(want.Person.Officials, st.Person.Officials)
		s.Equal(want.Bank.Details, st.Bank.Details)
		s.False(st.HasUnsavedChanges())
	})

	s.Run("RevertChanges before any load keeps the draft", func() {
		st := Reduce(State{}, SetUser{User: models.Person{FirstName: "A", LastName: "B"}})
		st = Reduce(st, RevertChanges{})
		s.Equal("A", st.Person.User.FirstName)
		s.True(st.Person.HasUnsavedChanges)
	})

	s.Run("SaveOriginal snapshots the current draft", func() {
		st := Reduce(State{}, SetUser{User: models.Person{FirstName: "A", LastName: "B"}})
		st = Reduce(st, SaveOriginal{})
		s.False(st.HasUnsavedChanges())
		s.Require().NotNil(st.Person.Original)
		s.Equal("A", st.Person.Original.User.FirstName)
		s.NotNil(st.Bank.Original)
	})

	s.Run("PersonUpdated replaces the user and snapshots", func() {
		st := s.loaded()
		st = Reduce(st, SetUser{User: models.Person{FirstName: "Augusta", LastName: "King"}})
		st = Reduce(st, PersonUpdated{Person: models.Person{FirstName: "Augusta", LastName: "King"}})
		s.False(st.Person.HasUnsavedChanges)
		s.Equal("Augusta", st.Person.Original.User.FirstName)
	})

	s.Run("PersonUpdated keeps unsaved while officials are temporary", func() {
		st := s.loaded()
		st = Reduce(st, AddOfficial{Official: models.RelatedOfficial{Name: "Pending"}})
		st = Reduce(st, PersonUpdated{Person: st.Person.User})
		s.True(st.Person.HasUnsavedChanges)
		s.Len(st.Person.Original.Officials, 2)
	})
}

func (s *ReduceSuite) TestDraftReset() {
	st := s.loaded()
	st = Reduce(st, UsersLoaded{Users: []models.PersonSummary{{ID: 7, FirstName: "Ada", LastName: "Lovelace"}}})
	st = Reduce(st, ShowMessage{Text: "saved", Kind: MessageSuccess})
	st = Reduce(st, DraftReset{})

	s.Empty(st.Person.Officials)
	s.Equal(models.Person{}, st.Person.User)
	s.True(st.Person.PersonalDetailsID.IsZero())
	s.False(st.Person.Editing)
	s.Nil(st.Person.Original)
	s.Equal(BankSlice{}, st.Bank)
	s.Len(st.Person.Users, 1)
	s.True(st.Person.Message.Visible)
}

func (s *ReduceSuite) TestUsersLoaded() {
	users := []models.PersonSummary{
		{ID: 3, FirstName: "John", LastName: "Smithson"},
		{ID: 1, FirstName: "Smith", LastName: "John"},
		{ID: 2, FirstName: "Gone", LastName: "Away", Deleted: true},
		{ID: 4, FirstName: "Jane", LastName: "Doe"},
	}

	s.Run("drops deleted and sorts by id", func() {
		st := Reduce(State{}, UsersLoaded{Users: users})
		s.Require().Len(st.Person.Users, 3)
		s.Equal(id.PersonID(1), st.Person.Users[0].ID)
		s.Equal(id.PersonID(3), st.Person.Users[1].ID)
		s.Equal(id.PersonID(4), st.Person.Users[2].ID)
		s.Equal(st.Person.Users, st.Person.Filtered)
	})

	s.Run("keeps the active query applied", func() {
		st := Reduce(State{}, SetSearchQuery{Query: "john smith"})
		st = Reduce(st, UsersLoaded{Users: users})
		s.Len(st.Person.Users, 3)
		s.Len(st.Person.Filtered, 2)
	})

	s.Run("search always filters the full list", func() {
		st := Reduce(State{}, UsersLoaded{Users: users})
		st = Reduce(st, SetSearchQuery{Query: "jane"})
		s.Len(st.Person.Filtered, 1)
		st = Reduce(st, SetSearchQuery{Query: "jo"})
		s.Len(st.Person.Filtered, 2)
		st = Reduce(st, SetSearchQuery{Query: ""})
		s.Len(st.Person.Filtered, 3)
	})
}

func (s *ReduceSuite) TestPersonSoftDeleted() {
	s.Run("active person resets both slices and leaves the list", func() {
		st := s.loaded()
		st = Reduce(st, UsersLoaded{Users: []models.PersonSummary{
			{ID: 7, FirstName: "Ada", LastName: "Lovelace"},
			{ID: 8, FirstName: "Alan", LastName: "Turing"},
		}})
		st = Reduce(st, PersonSoftDeleted{ID: 7, Officials: []id.OfficialID{20, 21}, BankDetails: []id.BankDetailID{31}})

		s.Len(st.Person.Users, 1)
		s.Len(st.Person.Filtered, 1)
		s.True(st.Person.PersonalDetailsID.IsZero())
		s.Empty(st.Person.Officials)
		s.Equal(BankSlice{}, st.Bank)
	})

	s.Run("other person only prunes matching bank rows", func() {
		st := s.loaded()
		st = Reduce(st, PersonSoftDeleted{ID: 99, BankDetails: []id.BankDetailID{31}})

		s.Equal(id.PersonID(7), st.Person.PersonalDetailsID)
		s.Len(st.Person.Officials, 2)
		s.Empty(st.Bank.Details)
		s.Equal(id.PersonID(7), st.Bank.PersonalDetailsID)
	})
}

func (s *ReduceSuite) TestRequestLifecycle() {
	st := Reduce(State{}, RequestStarted{Scope: ScopeUsers})
	s.True(st.Person.LoadingUsers)
	st = Reduce(st, RequestFailed{Scope: ScopeUsers, Err: "failed to list personal details (500): boom"})
	s.False(st.Person.LoadingUsers)
	s.Equal("failed to list personal details (500): boom", st.Person.UsersErr)

	st = Reduce(st, RequestStarted{Scope: ScopeBank})
	s.True(st.Bank.Loading)
	s.False(st.Person.Loading)
	st = Reduce(st, RequestFinished{Scope: ScopeBank})
	s.False(st.Bank.Loading)

	st = Reduce(st, SavingChanged{Saving: true})
	s.True(st.Saving)
}

func (s *ReduceSuite) TestMessages() {
	st := Reduce(State{}, ShowMessage{Text: "done", Kind: MessageInfo})
	s.Equal(Message{Text: "done", Kind: MessageInfo, Visible: true}, st.Person.Message)
	st = Reduce(st, ClearMessage{})
	s.False(st.Person.Message.Visible)
}

func (s *ReduceSuite) TestPurity() {
	st := s.loaded()
	officials := append([]models.RelatedOfficial(nil), st.Person.Officials...)
	details := append([]models.BankDetail(nil), st.Bank.Details...)
	key := st.Person.Officials[0].Key
	bankKey := st.Bank.Details[0].Key

	_ = Reduce(st, EditOfficial{Key: key, Official: models.RelatedOfficial{Name: "mutated"}})
	_ = Reduce(st, RemoveOfficial{Key: key})
	_ = Reduce(st, EditBankDetail{Key: bankKey, BankDetail: models.BankDetail{AccountDetails: "mutated"}})
	_ = Reduce(st, BankDetailSoftDeleted{Key: bankKey})
	_ = Reduce(st, OfficialSynced{Key: key, Official: models.RelatedOfficial{ID: null.IntFrom(1)}})

	s.Equal(officials, st.Person.Officials)
	s.Equal(details, st.Bank.Details)
	s.Equal(officials, st.Person.Original.Officials)
}
