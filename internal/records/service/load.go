package service

import (
	"context"

	"persondesk/internal/records/models"
	"persondesk/internal/records/state"
	id "persondesk/pkg/domain"
)

// LoadUsers refreshes the master list.
func (s *Service) LoadUsers(ctx context.Context) error {
	s.store.Dispatch(state.RequestStarted{Scope: state.ScopeUsers})
	users, err := s.api.ListPersons(ctx)
	if err != nil {
		s.store.Dispatch(state.RequestFailed{Scope: state.ScopeUsers, Err: err.Error()})
		s.logger.WarnContext(ctx, "failed to load users", "error", err)
		return err
	}
	s.store.Dispatch(state.UsersLoaded{Users: users})
	return nil
}

// Select loads the combined record of personID into both drafts. Unsaved
// edits of the previous draft are discarded.
func (s *Service) Select(ctx context.Context, personID id.PersonID) (*models.Combined, error) {
	s.store.Dispatch(state.RequestStarted{Scope: state.ScopePerson})
	s.store.Dispatch(state.RequestStarted{Scope: state.ScopeBank})

	combined, err := s.api.GetCombined(ctx, personID)
	if err != nil {
		s.store.Dispatch(state.RequestFailed{Scope: state.ScopePerson, Err: err.Error()})
		s.store.Dispatch(state.RequestFailed{Scope: state.ScopeBank, Err: err.Error()})
		s.logger.WarnContext(ctx, "failed to load person", "person_id", personID, "error", err)
		return nil, err
	}

	s.store.Dispatch(state.CombinedLoaded{Combined: *combined})
	s.store.Dispatch(state.SelectPerson{ID: personID})
	return combined, nil
}

// Search applies query to the master list.
func (s *Service) Search(query string) []models.PersonSummary {
	return s.store.Dispatch(state.SetSearchQuery{Query: query}).Person.Filtered
}

// BankDetails fetches every bank details row the backend knows about.
func (s *Service) BankDetails(ctx context.Context) ([]models.BankDetailRecord, error) {
	return s.api.ListBankDetails(ctx)
}

// BankDetail fetches one bank details row.
func (s *Service) BankDetail(ctx context.Context, bankDetailID id.BankDetailID) (*models.BankDetailRecord, error) {
	return s.api.GetBankDetail(ctx, bankDetailID)
}
