package service

import (
	"context"
	"errors"
	"fmt"

	"persondesk/internal/records/models"
	"persondesk/internal/records/state"
	id "persondesk/pkg/domain"
	pstrings "persondesk/pkg/platform/strings"
)

// DeletePrompt is the question put to confirm before a delete.
const DeletePrompt = "Are you sure you want to delete this user and all related officials? This action cannot be undone."

// ConfirmFunc asks the user a yes/no question.
type ConfirmFunc func(prompt string) bool

// Delete soft-deletes the selected person, then every official and bank
// detail known locally or reported by the backend. Only the person delete can
// fail the workflow.
func (s *Service) Delete(ctx context.Context, confirm ConfirmFunc) (*DeleteReport, error) {
	release, err := s.acquire()
	if err != nil {
		return nil, err
	}
	defer release()

	start := s.now()
	report, err := s.delete(ctx, confirm)
	var children BatchResult
	if report != nil {
		children = report.Children
	}
	s.observe("delete", start, outcomeOf(err, children))

	switch {
	case errors.Is(err, ErrCancelled):
		return nil, err
	case err != nil:
		s.logger.ErrorContext(ctx, "delete failed", "error", err)
		s.toast(state.MessageError, "Failed to delete: "+err.Error())
		return nil, err
	}
	if failed := report.Children.Failed(); len(failed) > 0 {
		s.toast(state.MessageWarning, fmt.Sprintf("Record deleted, but %d of %d related records failed", len(failed), len(report.Children)))
	} else {
		s.toast(state.MessageSuccess, "Successfully deleted the record")
	}
	return report, nil
}

func (s *Service) delete(ctx context.Context, confirm ConfirmFunc) (*DeleteReport, error) {
	st := s.store.State()
	personID, ok := st.Selected()
	if !ok {
		return nil, ErrNoSelection
	}
	if confirm == nil || !confirm(DeletePrompt) {
		return nil, ErrCancelled
	}

	report := &DeleteReport{PersonID: personID}
	combined, err := s.api.GetCombined(ctx, personID)
	if err != nil {
		report.CombinedErr = err
		s.logger.WarnContext(ctx, "combined fetch failed, deleting from local state", "person_id", personID, "error", err)
		combined = nil
	}

	if err := s.api.SoftDeletePerson(ctx, personID, st.Person.User); err != nil {
		return nil, err
	}
	s.logger.InfoContext(ctx, "personal details soft deleted", "person_id", personID)

	officials := collectOfficials(st.Person.Officials, combined)
	for _, o := range officials {
		err := s.api.SoftDeleteOfficial(ctx, o.id, o.input)
		report.Children = append(report.Children, s.childResult(ctx, KindOfficial, OpSoftDelete, int64(o.id), o.input.Name, err))
		report.Officials = append(report.Officials, o.id)
	}

	bankIDs := collectBankDetailIDs(st.Bank.Details, combined)
	for _, bid := range bankIDs {
		err := s.api.SoftDeleteBankDetail(ctx, bid)
		report.Children = append(report.Children, s.childResult(ctx, KindBankDetail, OpSoftDelete, int64(bid), bid.String(), err))
	}
	report.BankDetails = bankIDs

	s.store.Dispatch(state.PersonSoftDeleted{
		ID:          personID,
		Officials:   report.Officials,
		BankDetails: report.BankDetails,
	})
	return report, nil
}

type officialTarget struct {
	id    id.OfficialID
	input models.OfficialInput
}

// collectOfficials unions the ids of local rows and of the non-deleted
// combined rows, in first-seen order. Local content wins for the body.
func collectOfficials(local []models.RelatedOfficial, combined *models.Combined) []officialTarget {
	var ids []id.OfficialID
	inputs := make(map[id.OfficialID]models.OfficialInput)
	for _, o := range local {
		if oid, ok := o.OfficialID(); ok {
			ids = append(ids, oid)
			if _, seen := inputs[oid]; !seen {
				inputs[oid] = o.Input()
			}
		}
	}
	if combined != nil {
		for _, r := range combined.Officials {
			if r.Deleted || r.ID == 0 {
				continue
			}
			ids = append(ids, r.ID)
			if _, seen := inputs[r.ID]; !seen {
				inputs[r.ID] = models.OfficialInput{Name: r.Name, IDNumber: r.IDNumber}
			}
		}
	}

	ids = pstrings.Dedupe(ids)
	out := make([]officialTarget, 0, len(ids))
	for _, oid := range ids {
		out = append(out, officialTarget{id: oid, input: inputs[oid]})
	}
	return out
}

// collectBankDetailIDs unions bank ids the same way as collectOfficials.
func collectBankDetailIDs(local []models.BankDetail, combined *models.Combined) []id.BankDetailID {
	var ids []id.BankDetailID
	for _, b := range local {
		if bid, ok := b.BankDetailID(); ok {
			ids = append(ids, bid)
		}
	}
	if combined != nil {
		for _, r := range combined.BankDetails {
			if r.Deleted || r.ID == 0 {
				continue
			}
			ids = append(ids, r.ID)
		}
	}
	return pstrings.Dedupe(ids)
}
