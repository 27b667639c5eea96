package state

import (
	"persondesk/internal/records/models"
	id "persondesk/pkg/domain"
)

// Action is a state transition request handled by Reduce.
type Action interface {
	action()
}

// Draft edits. Each marks the owning slice as having unsaved changes, even
// when the new value equals the old one.
type (
	SetUser struct {
		User models.Person
	}
	AddOfficial struct {
		Official models.RelatedOfficial
	}
	EditOfficial struct {
		Key      int
		Official models.RelatedOfficial
	}
	RemoveOfficial struct {
		Key int
	}
	AddBankDetail struct {
		BankDetail models.BankDetail
	}
	EditBankDetail struct {
		Key        int
		BankDetail models.BankDetail
	}
	RemoveBankDetail struct {
		Key int
	}
)

// Snapshot and lifecycle transitions.
type (
	SaveOriginal  struct{}
	RevertChanges struct{}
	// DraftReset empties both drafts; the master list and toast survive.
	DraftReset   struct{}
	SelectPerson struct {
		ID id.PersonID
	}
	SetSearchQuery struct {
		Query string
	}
	ShowMessage struct {
		Text string
		Kind MessageKind
	}
	ClearMessage  struct{}
	SavingChanged struct {
		Saving bool
	}
)

// Request lifecycle.
type (
	RequestStarted struct {
		Scope Scope
	}
	RequestFinished struct {
		Scope Scope
	}
	RequestFailed struct {
		Scope Scope
		Err   string
	}
)

// Server results.
type (
	UsersLoaded struct {
		Users []models.PersonSummary
	}
	CombinedLoaded struct {
		Combined models.Combined
	}
	// PersonUpdated confirms the name fields only; the draft stays unsaved
	// while temporary officials remain.
	PersonUpdated struct {
		Person models.Person
	}
	// OfficialSynced replaces the draft row Key with its server-confirmed
	// content.
	OfficialSynced struct {
		Key      int
		Official models.RelatedOfficial
	}
	BankDetailSynced struct {
		Key        int
		BankDetail models.BankDetail
	}
	// OfficialSoftDeleted drops a row the backend has already soft-deleted.
	// Unlike RemoveOfficial it leaves nothing to save.
	OfficialSoftDeleted struct {
		Key int
	}
	BankDetailSoftDeleted struct {
		Key int
	}
	// PersonSoftDeleted is the domain event emitted once a person and its
	// children have been soft-deleted on the backend.
	PersonSoftDeleted struct {
		ID          id.PersonID
		Officials   []id.OfficialID
		BankDetails []id.BankDetailID
	}
)

func (SetUser) action()               {}
func (AddOfficial) action()           {}
func (EditOfficial) action()          {}
func (RemoveOfficial) action()        {}
func (AddBankDetail) action()         {}
func (EditBankDetail) action()        {}
func (RemoveBankDetail) action()      {}
func (SaveOriginal) action()          {}
func (RevertChanges) action()         {}
func (DraftReset) action()            {}
func (SelectPerson) action()          {}
func (SetSearchQuery) action()        {}
func (ShowMessage) action()           {}
func (ClearMessage) action()          {}
func (SavingChanged) action()         {}
func (RequestStarted) action()        {}
func (RequestFinished) action()       {}
func (RequestFailed) action()         {}
func (UsersLoaded) action()           {}
func (CombinedLoaded) action()        {}
func (PersonUpdated) action()         {}
func (OfficialSynced) action()        {}
func (BankDetailSynced) action()      {}
func (OfficialSoftDeleted) action()   {}
func (BankDetailSoftDeleted) action() {}
func (PersonSoftDeleted) action()     {}
