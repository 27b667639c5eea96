package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/guregu/null/v6"

	"persondesk/internal/records/models"
	"persondesk/internal/records/state"
	id "persondesk/pkg/domain"
)

// Update pushes the draft of the selected person: the name fields first, then
// every temporary official and bank detail. It issues no request at all when
// neither draft has unsaved changes.
func (s *Service) Update(ctx context.Context) (*UpdateReport, error) {
	release, err := s.acquire()
	if err != nil {
		return nil, err
	}
	defer release()

	start := s.now()
	report, err := s.update(ctx)
	var children BatchResult
	if report != nil {
		children = report.Children
	}
	s.observe("update", start, outcomeOf(err, children))

	switch {
	case errors.Is(err, ErrNoChanges):
		s.toast(state.MessageInfo, "No changes to update")
		return nil, err
	case err != nil:
		s.logger.ErrorContext(ctx, "update failed", "error", err)
		s.toast(state.MessageError, "Failed to update data: "+err.Error())
		return nil, err
	}
	if failed := report.Children.Failed(); len(failed) > 0 {
		s.toast(state.MessageWarning, fmt.Sprintf("Data updated, but %d of %d related records failed", len(failed), len(report.Children)))
	} else {
		s.toast(state.MessageSuccess, "All data updated successfully!")
	}
	return report, nil
}

func (s *Service) update(ctx context.Context) (*UpdateReport, error) {
	st := s.store.State()
	if !st.HasUnsavedChanges() {
		return nil, ErrNoChanges
	}
	personID, ok := st.Selected()
	if !ok {
		return nil, ErrNoSelection
	}
	user := st.Person.User
	if !user.Complete() {
		return nil, ErrIncompleteName
	}

	if _, err := s.api.UpdatePerson(ctx, personID, user); err != nil {
		return nil, err
	}
	s.store.Dispatch(state.PersonUpdated{Person: user})
	s.logger.InfoContext(ctx, "personal details updated", "person_id", personID)

	report := &UpdateReport{PersonID: personID}
	for _, o := range st.Person.Officials {
		if !o.Temporary {
			continue
		}
		report.Children = append(report.Children, s.pushOfficial(ctx, personID, o))
	}
	for _, b := range st.Bank.Details {
		if !b.Temporary {
			continue
		}
		report.Children = append(report.Children, s.pushBankDetail(ctx, personID, b))
	}
	if len(report.Children.Failed()) == 0 {
		s.store.Dispatch(state.SaveOriginal{})
	}

	var refreshErrs []error
	if err := s.LoadUsers(ctx); err != nil {
		refreshErrs = append(refreshErrs, err)
	}
	if _, err := s.Select(ctx, personID); err != nil {
		refreshErrs = append(refreshErrs, err)
	}
	report.RefreshErr = errors.Join(refreshErrs...)
	return report, nil
}

func (s *Service) pushOfficial(ctx context.Context, personID id.PersonID, o models.RelatedOfficial) ItemResult {
	var (
		rec *models.OfficialRecord
		err error
		op  = OpCreate
	)
	if oid, ok := o.OfficialID(); ok {
		op = OpUpdate
		rec, err = s.api.UpdateOfficial(ctx, oid, o.Input())
	} else {
		rec, err = s.api.CreateOfficial(ctx, personID, o.Input())
	}

	recordID := o.ID.Int64
	if rec != nil && rec.ID != 0 {
		recordID = int64(rec.ID)
	}
	if err == nil {
		synced := o
		if recordID != 0 {
			synced.ID = null.IntFrom(recordID)
		}
		s.store.Dispatch(state.OfficialSynced{Key: o.Key, Official: synced})
	}
	return s.childResult(ctx, KindOfficial, op, recordID, o.Name, err)
}

func (s *Service) pushBankDetail(ctx context.Context, personID id.PersonID, b models.BankDetail) ItemResult {
	op := OpCreate
	bid, hasID := b.BankDetailID()
	if hasID {
		op = OpUpdate
	}
	in, err := b.Input()
	if err != nil {
		return s.childResult(ctx, KindBankDetail, op, b.ID.Int64, b.AccountDetails, err)
	}

	var rec *models.BankDetailRecord
	if hasID {
		rec, err = s.api.UpdateBankDetail(ctx, bid, in)
	} else {
		rec, err = s.api.CreateBankDetail(ctx, personID, in)
	}

	recordID := b.ID.Int64
	if rec != nil && rec.ID != 0 {
		recordID = int64(rec.ID)
	}
	if err == nil {
		synced := b
		if recordID != 0 {
			synced.ID = null.IntFrom(recordID)
		}
		s.store.Dispatch(state.BankDetailSynced{Key: b.Key, BankDetail: synced})
	}
	return s.childResult(ctx, KindBankDetail, op, recordID, b.AccountDetails, err)
}
