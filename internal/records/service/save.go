package service

import (
	"context"
	"fmt"

	"persondesk/internal/records/models"
	"persondesk/internal/records/state"
	id "persondesk/pkg/domain"
)

// Save creates the draft as a new person, then creates its officials and
// bank details. Child failures are reported, never fatal. On success the
// draft is reset; on failure it is left untouched so the user can retry.
func (s *Service) Save(ctx context.Context) (*SaveReport, error) {
	release, err := s.acquire()
	if err != nil {
		return nil, err
	}
	defer release()

	start := s.now()
	report, err := s.save(ctx)
	var children BatchResult
	if report != nil {
		children = report.Children
	}
	s.observe("save", start, outcomeOf(err, children))

	if err != nil {
		s.logger.ErrorContext(ctx, "save failed", "error", err)
		s.toast(state.MessageError, "Failed to save data: "+err.Error())
		return nil, err
	}
	if failed := report.Children.Failed(); len(failed) > 0 {
		s.toast(state.MessageWarning, fmt.Sprintf("Data saved, but %d of %d related records failed", len(failed), len(report.Children)))
	} else {
		s.toast(state.MessageSuccess, "Data saved successfully!")
	}
	return report, nil
}

func (s *Service) save(ctx context.Context) (*SaveReport, error) {
	st := s.store.State()
	user := st.Person.User
	if !user.Complete() {
		return nil, ErrIncompleteName
	}

	if _, err := s.api.CreatePerson(ctx, user); err != nil {
		return nil, err
	}

	users, err := s.api.ListPersons(ctx)
	if err != nil {
		return nil, err
	}
	s.store.Dispatch(state.UsersLoaded{Users: users})

	personID, err := ResolveCreated(users, user)
	if err != nil {
		return nil, err
	}
	s.logger.InfoContext(ctx, "personal details created", "person_id", personID)

	report := &SaveReport{PersonID: personID}
	for _, o := range st.Person.Officials {
		if !o.HasName() {
			s.logger.DebugContext(ctx, "skipping related official without name", "person_id", personID)
			continue
		}
		rec, err := s.api.CreateOfficial(ctx, personID, o.Input())
		report.Children = append(report.Children, s.childResult(ctx, KindOfficial, OpCreate, officialRecordID(rec), o.Name, err))
	}
	for _, b := range st.Bank.Details {
		if !b.HasAccountDetails() {
			s.logger.DebugContext(ctx, "skipping bank details without account details", "person_id", personID)
			continue
		}
		in, err := b.Input()
		if err != nil {
			report.Children = append(report.Children, s.childResult(ctx, KindBankDetail, OpCreate, 0, b.AccountDetails, err))
			continue
		}
		rec, err := s.api.CreateBankDetail(ctx, personID, in)
		report.Children = append(report.Children, s.childResult(ctx, KindBankDetail, OpCreate, bankRecordID(rec), b.AccountDetails, err))
	}

	s.store.Dispatch(state.DraftReset{})
	if err := s.LoadUsers(ctx); err != nil {
		report.RefreshErr = err
	}
	return report, nil
}

// ResolveCreated finds the id of a person just created with p's name. The
// backend does not echo new ids, so the newest exact, non-deleted match
// (the highest id) is taken.
func ResolveCreated(users []models.PersonSummary, p models.Person) (id.PersonID, error) {
	var best id.PersonID
	for _, u := range users {
		if u.Deleted || u.FirstName != p.FirstName || u.LastName != p.LastName {
			continue
		}
		if u.ID > best {
			best = u.ID
		}
	}
	if best.IsZero() {
		return 0, ErrCreatedNotFound
	}
	return best, nil
}

// childResult records and logs one child request.
func (s *Service) childResult(ctx context.Context, kind ItemKind, op ItemOp, recordID int64, label string, err error) ItemResult {
	r := ItemResult{Kind: kind, Op: op, ID: recordID, Label: label, Err: err}
	s.observeChild(r)
	if err != nil {
		s.logger.WarnContext(ctx, "child record request failed",
			"kind", kind,
			"op", op,
			"id", recordID,
			"label", label,
			"error", err,
		)
	}
	return r
}

func officialRecordID(rec *models.OfficialRecord) int64 {
	if rec == nil {
		return 0
	}
	return int64(rec.ID)
}

func bankRecordID(rec *models.BankDetailRecord) int64 {
	if rec == nil {
		return 0
	}
	return int64(rec.ID)
}
