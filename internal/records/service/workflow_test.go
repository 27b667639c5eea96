package service

import (
	"context"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/suite"

	"persondesk/internal/fakeapi"
	"persondesk/internal/platform/logger"
	"persondesk/internal/records/adapters/rest"
	"persondesk/internal/records/models"
	"persondesk/internal/records/state"
	"persondesk/pkg/platform/sentinel"
)

// WorkflowSuite drives the workflows end to end against the in-memory
// backend over real HTTP.
type WorkflowSuite struct {
	suite.Suite
	backend *fakeapi.Store
	server  *httptest.Server
	store   *state.Store
	svc     *Service
	ctx     context.Context
}

func TestWorkflowSuite(t *testing.T) {
	suite.Run(t, new(WorkflowSuite))
}

func (s *WorkflowSuite) SetupTest() {
	s.backend = fakeapi.NewStore()
	s.server = httptest.NewServer(fakeapi.NewRouter(s.backend, logger.Discard()))
	client := rest.New(s.server.URL, rest.WithHTTPClient(s.server.Client()))
	s.store = state.NewStore(state.State{})
	s.svc = New(client, s.store)
	s.ctx = context.Background()
}

func (s *WorkflowSuite) TearDownTest() {
	s.server.Close()
}

func (s *WorkflowSuite) draft(first, last string, officials []string, accounts []string) {
	s.store.Dispatch(state.SetUser{User: models.Person{FirstName: first, LastName: last}})
	for _, name := range officials {
		s.store.Dispatch(state.AddOfficial{Official: models.RelatedOfficial{Name: name, IDNumber: "NIC-" + name}})
	}
	for _, acct := range accounts {
		s.store.Dispatch(state.AddBankDetail{BankDetail: models.BankDetail{AccountDetails: acct, Loans: "100.50"}})
	}
}

func (s *WorkflowSuite) TestSaveSelectUpdateDelete() {
	s.draft("Ada", "Lovelace", []string{"Mary", ""}, []string{"ACC-1"})

	saved, err := s.svc.Save(s.ctx)
	s.Require().NoError(err)
	s.EqualValues(1, saved.PersonID)
	s.Len(saved.Children, 2, "the nameless official is skipped")
	s.NoError(saved.Children.Err())

	st := s.store.State()
	s.Empty(st.Person.Officials)
	s.Equal("Data saved successfully!", st.Person.Message.Text)
	s.Require().Len(st.Person.Users, 1)

	combined, err := s.svc.Select(s.ctx, saved.PersonID)
	s.Require().NoError(err)
	s.Len(combined.Officials, 1)

	st = s.store.State()
	s.False(st.HasUnsavedChanges())
	s.Require().Len(st.Person.Officials, 1)
	s.Require().Len(st.Bank.Details, 1)
	s.Equal("100.5", st.Bank.Details[0].Loans)

	s.Run("update pushes edited and new rows", func() {
		row := st.Person.Officials[0]
		row.Name = "Mary Somerville"
		s.store.Dispatch(state.EditOfficial{Key: row.Key, Official: row})
		s.store.Dispatch(state.AddOfficial{Official: models.RelatedOfficial{Name: "Charles"}})
		s.store.Dispatch(state.SetUser{User: models.Person{FirstName: "Augusta", LastName: "Lovelace"}})

		report, err := s.svc.Update(s.ctx)
		s.Require().NoError(err)
		s.NoError(report.Children.Err())
		s.NoError(report.RefreshErr)
		s.Len(report.Children, 2)

		c, err := s.backend.Combined(saved.PersonID)
		s.Require().NoError(err)
		s.Equal("Augusta", c.FirstName)
		s.Require().Len(c.Officials, 2)
		s.Equal("Mary Somerville", c.Officials[0].Name)
		s.Equal("Charles", c.Officials[1].Name)

		st := s.store.State()
		s.False(st.HasUnsavedChanges())
		s.Equal("All data updated successfully!", st.Person.Message.Text)
	})

	s.Run("a second update without edits is a no-op", func() {
		_, err := s.svc.Update(s.ctx)
		s.ErrorIs(err, ErrNoChanges)
		s.Equal("No changes to update", s.store.State().Person.Message.Text)
	})

	s.Run("delete soft-deletes the person and every child", func() {
		report, err := s.svc.Delete(s.ctx, func(string) bool { return true })
		s.Require().NoError(err)
		s.NoError(report.Children.Err())
		s.Len(report.Officials, 2)
		s.Len(report.BankDetails, 1)

		c, err := s.backend.Combined(saved.PersonID)
		s.Require().NoError(err)
		s.True(c.Deleted)
		for _, o := range c.Officials {
			s.True(o.Deleted)
		}
		s.True(c.BankDetails[0].Deleted)

		st := s.store.State()
		s.Empty(st.Person.Users)
		_, selected := st.Selected()
		s.False(selected)
		s.Equal("Successfully deleted the record", st.Person.Message.Text)
	})
}

func (s *WorkflowSuite) TestBackendValidationSurfacesInToast() {
	s.draft("Ada", "Lovelace", []string{"Mary"}, nil)
	saved, err := s.svc.Save(s.ctx)
	s.Require().NoError(err)
	_, err = s.svc.Select(s.ctx, saved.PersonID)
	s.Require().NoError(err)

	row := s.store.State().Person.Officials[0]
	row.Name = "  "
	s.store.Dispatch(state.EditOfficial{Key: row.Key, Official: row})

	report, err := s.svc.Update(s.ctx)
	s.Require().NoError(err)
	failed := report.Children.Failed()
	s.Require().Len(failed, 1)
	s.ErrorIs(failed[0].Err, sentinel.ErrInvalidInput)
	s.Equal(rest.ErrorValidation, rest.CategoryOf(failed[0].Err))

	var apiErr *rest.APIError
	s.Require().ErrorAs(failed[0].Err, &apiErr)
	s.Equal("related_official_name: field required", apiErr.Detail)
	s.Contains(s.store.State().Person.Message.Text, "1 of 1 related records failed")

	c, err := s.backend.Combined(saved.PersonID)
	s.Require().NoError(err)
	s.Equal("Mary", c.Officials[0].Name)
}

func (s *WorkflowSuite) TestNegativeAmountFailsBeforeTheRequest() {
	s.draft("Ada", "Lovelace", nil, []string{"ACC-1"})
	saved, err := s.svc.Save(s.ctx)
	s.Require().NoError(err)
	_, err = s.svc.Select(s.ctx, saved.PersonID)
	s.Require().NoError(err)

	row := s.store.State().Bank.Details[0]
	row.Loans = "-5"
	s.store.Dispatch(state.EditBankDetail{Key: row.Key, BankDetail: row})

	report, err := s.svc.Update(s.ctx)
	s.Require().NoError(err)
	failed := report.Children.Failed()
	s.Require().Len(failed, 1)
	s.ErrorIs(failed[0].Err, sentinel.ErrInvalidInput)
	s.Empty(rest.CategoryOf(failed[0].Err))

	rec, err := s.backend.GetBankDetail(1)
	s.Require().NoError(err)
	s.InDelta(100.5, rec.Loans.Float64, 0.001)
}

func (s *WorkflowSuite) TestRemovePersistedOfficial() {
	s.draft("Grace", "Hopper", []string{"Howard"}, nil)
	saved, err := s.svc.Save(s.ctx)
	s.Require().NoError(err)
	_, err = s.svc.Select(s.ctx, saved.PersonID)
	s.Require().NoError(err)

	key := s.store.State().Person.Officials[0].Key
	s.Require().NoError(s.svc.RemoveOfficial(s.ctx, key))

	c, err := s.backend.Combined(saved.PersonID)
	s.Require().NoError(err)
	s.True(c.Officials[0].Deleted)
	s.Empty(s.store.State().Person.Officials)
	s.False(s.store.State().HasUnsavedChanges())
}
