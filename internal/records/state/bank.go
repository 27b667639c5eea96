package state

import (
	"slices"

	"persondesk/internal/records/models"
	id "persondesk/pkg/domain"
)

func reduceBank(b BankSlice, a Action, nextKey func() int) BankSlice {
	switch a := a.(type) {
	case AddBankDetail:
		row := a.BankDetail
		row.Key = nextKey()
		row.Temporary = true
		b.Details = append(slices.Clone(b.Details), row)
		b.HasUnsavedChanges = true

	case EditBankDetail:
		i := indexBankDetail(b.Details, a.Key)
		if i < 0 {
			return b
		}
		row := a.BankDetail
		row.Key = a.Key
		row.ID = b.Details[i].ID
		row.Temporary = true
		b.Details = slices.Clone(b.Details)
		b.Details[i] = row
		b.HasUnsavedChanges = true

	case RemoveBankDetail:
		if i := indexBankDetail(b.Details, a.Key); i >= 0 {
			b.Details = slices.Delete(slices.Clone(b.Details), i, i+1)
		}
		b.HasUnsavedChanges = true

	case BankDetailSoftDeleted:
		b.Details = dropBankKey(b.Details, a.Key)
		if b.Original != nil {
			b.Original = dropBankKey(b.Original, a.Key)
		}

	case BankDetailSynced:
		row := a.BankDetail
		row.Key = a.Key
		row.Temporary = false
		details := slices.Clone(b.Details)
		if i := indexBankDetail(details, a.Key); i >= 0 {
			details[i] = row
		} else if row.ID.Valid {
			details = append(details, row)
		}
		models.SortBankDetails(details)
		b.Details = details

	case SaveOriginal:
		b.Original = cloneBank(b.Details)
		b.HasUnsavedChanges = false

	case RevertChanges:
		if b.Original != nil {
			b.Details = slices.Clone(b.Original)
			b.HasUnsavedChanges = false
		}

	case DraftReset:
		b = BankSlice{}

	case SelectPerson:
		b.PersonalDetailsID = a.ID

	case RequestStarted:
		if a.Scope == ScopeBank {
			b.Loading = true
			b.Err = ""
		}

	case RequestFinished:
		if a.Scope == ScopeBank {
			b.Loading = false
		}

	case RequestFailed:
		if a.Scope == ScopeBank {
			b.Loading = false
			b.Err = a.Err
		}

	case CombinedLoaded:
		c := a.Combined
		details := c.ActiveBankDetails()
		for i := range details {
			details[i].Key = nextKey()
		}
		b.PersonalDetailsID = c.ID
		b.Details = details
		b.Editing = len(details) > 0
		b.Original = cloneBank(details)
		b.HasUnsavedChanges = false
		b.Loading = false
		b.Err = ""

	case PersonSoftDeleted:
		if b.PersonalDetailsID == a.ID {
			return BankSlice{}
		}
		b.Details = dropBankIDs(b.Details, a.BankDetails)
		if b.Original != nil {
			b.Original = dropBankIDs(b.Original, a.BankDetails)
		}
	}
	return b
}

// cloneBank copies rows, returning an empty non-nil slice for no rows so the
// snapshot still counts as loaded.
func cloneBank(rows []models.BankDetail) []models.BankDetail {
	out := make([]models.BankDetail, len(rows))
	copy(out, rows)
	return out
}

func dropBankKey(rows []models.BankDetail, key int) []models.BankDetail {
	return slices.DeleteFunc(slices.Clone(rows), func(r models.BankDetail) bool {
		return r.Key == key
	})
}

func dropBankIDs(rows []models.BankDetail, ids []id.BankDetailID) []models.BankDetail {
	if len(ids) == 0 {
		return rows
	}
	return slices.DeleteFunc(slices.Clone(rows), func(r models.BankDetail) bool {
		bid, ok := r.BankDetailID()
		return ok && slices.Contains(ids, bid)
	})
}
