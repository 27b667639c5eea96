package service

import (
	"errors"
	"fmt"

	id "persondesk/pkg/domain"
)

// ItemKind names the child collection an ItemResult belongs to.
type ItemKind string

const (
	KindOfficial   ItemKind = "official"
	KindBankDetail ItemKind = "bank_detail"
)

// ItemOp names the request issued for one child record.
type ItemOp string

const (
	OpCreate     ItemOp = "create"
	OpUpdate     ItemOp = "update"
	OpSoftDelete ItemOp = "soft_delete"
)

// ItemResult is the outcome of one child-record request. ID is zero when
// the record had no server id, or the backend did not echo one.
type ItemResult struct {
	Kind  ItemKind
	Op    ItemOp
	ID    int64
	Label string
	Err   error
}

func (r ItemResult) String() string {
	target := r.Label
	if r.ID != 0 {
		target = fmt.Sprintf("%s #%d", r.Label, r.ID)
	}
	if r.Err != nil {
		return fmt.Sprintf("%s %s %q: %v", r.Op, r.Kind, target, r.Err)
	}
	return fmt.Sprintf("%s %s %q: ok", r.Op, r.Kind, target)
}

// BatchResult collects the child-record outcomes of one workflow in the
// order the requests were issued.
type BatchResult []ItemResult

// Failed returns the results that carry an error.
func (b BatchResult) Failed() BatchResult {
	var out BatchResult
	for _, r := range b {
		if r.Err != nil {
			out = append(out, r)
		}
	}
	return out
}

// Succeeded returns the results without an error.
func (b BatchResult) Succeeded() BatchResult {
	var out BatchResult
	for _, r := range b {
		if r.Err == nil {
			out = append(out, r)
		}
	}
	return out
}

// Err joins the failures, or returns nil when every request succeeded.
func (b BatchResult) Err() error {
	var errs []error
	for _, r := range b.Failed() {
		errs = append(errs, fmt.Errorf("%s %s %q: %w", r.Op, r.Kind, r.Label, r.Err))
	}
	return errors.Join(errs...)
}

// SaveReport describes a finished Save.
type SaveReport struct {
	PersonID id.PersonID
	Children BatchResult
	// RefreshErr is set when the master list could not be reloaded.
	RefreshErr error
}

// UpdateReport describes a finished Update.
type UpdateReport struct {
	PersonID id.PersonID
	Children BatchResult
	// RefreshErr is set when the list reload or the re-select failed.
	RefreshErr error
}

// DeleteReport describes a finished Delete.
type DeleteReport struct {
	PersonID    id.PersonID
	Officials   []id.OfficialID
	BankDetails []id.BankDetailID
	Children    BatchResult
	// CombinedErr is set when the best-effort combined fetch failed; the
	// delete then relied on local state alone.
	CombinedErr error
}
