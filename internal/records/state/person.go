package state

import (
	"cmp"
	"slices"

	"persondesk/internal/records/models"
	"persondesk/internal/records/search"
	id "persondesk/pkg/domain"
)

func reducePerson(p PersonSlice, a Action, nextKey func() int) PersonSlice {
	switch a := a.(type) {
	case SetUser:
		p.User = a.User
		p.HasUnsavedChanges = true

	case AddOfficial:
		row := a.Official
		row.Key = nextKey()
		row.Temporary = true
		p.Officials = append(slices.Clone(p.Officials), row)
		p.HasUnsavedChanges = true

	case EditOfficial:
		i := indexOfficial(p.Officials, a.Key)
		if i < 0 {
			return p
		}
		row := a.Official
		row.Key = a.Key
		row.ID = p.Officials[i].ID
		row.Temporary = true
		p.Officials = slices.Clone(p.Officials)
		p.Officials[i] = row
		p.HasUnsavedChanges = true

	case RemoveOfficial:
		if i := indexOfficial(p.Officials, a.Key); i >= 0 {
			p.Officials = slices.Delete(slices.Clone(p.Officials), i, i+1)
		}
		p.HasUnsavedChanges = true

	case OfficialSoftDeleted:
		if i := indexOfficial(p.Officials, a.Key); i >= 0 {
			p.Officials = slices.Delete(slices.Clone(p.Officials), i, i+1)
		}
		if p.Original != nil {
			if i := indexOfficial(p.Original.Officials, a.Key); i >= 0 {
				snap := *p.Original
				snap.Officials = slices.Delete(slices.Clone(snap.Officials), i, i+1)
				p.Original = &snap
			}
		}

	case OfficialSynced:
		row := a.Official
		row.Key = a.Key
		row.Temporary = false
		officials := slices.Clone(p.Officials)
		if i := indexOfficial(officials, a.Key); i >= 0 {
			officials[i] = row
		} else if row.ID.Valid {
			officials = append(officials, row)
		}
		models.SortOfficials(officials)
		p.Officials = officials

	case SaveOriginal:
		p.Original = snapshotPerson(p)
		p.HasUnsavedChanges = false

	case RevertChanges:
		if p.Original != nil {
			p.User = p.Original.User
			p.Officials = slices.Clone(p.Original.Officials)
			p.HasUnsavedChanges = false
		}

	case DraftReset:
		p = resetPersonDraft(p)
		p.Err = ""
		p.Loading = false

	case SelectPerson:
		p.PersonalDetailsID = a.ID
		p.Editing = true

	case SetSearchQuery:
		p.Query = a.Query
		p.Filtered = search.Filter(p.Users, a.Query)

	case ShowMessage:
		p.Message = Message{Text: a.Text, Kind: a.Kind, Visible: true}

	case ClearMessage:
		p.Message = Message{}

	case RequestStarted:
		switch a.Scope {
		case ScopeUsers:
			p.LoadingUsers = true
			p.UsersErr = ""
		case ScopePerson:
			p.Loading = true
			p.Err = ""
		}

	case RequestFinished:
		switch a.Scope {
		case ScopeUsers:
			p.LoadingUsers = false
		case ScopePerson:
			p.Loading = false
		}

	case RequestFailed:
		switch a.Scope {
		case ScopeUsers:
			p.LoadingUsers = false
			p.UsersErr = a.Err
		case ScopePerson:
			p.Loading = false
			p.Err = a.Err
		}

	case UsersLoaded:
		users := make([]models.PersonSummary, 0, len(a.Users))
		for _, u := range a.Users {
			if !u.Deleted {
				users = append(users, u)
			}
		}
		slices.SortStableFunc(users, func(x, y models.PersonSummary) int {
			return cmp.Compare(x.ID, y.ID)
		})
		p.Users = users
		p.Filtered = search.Filter(users, p.Query)
		p.LoadingUsers = false
		p.UsersErr = ""

	case CombinedLoaded:
		c := a.Combined
		p.Loading = false
		p.Err = ""
		p.PersonalDetailsID = c.ID
		p.Editing = true
		p.User = c.Person()
		officials := c.ActiveOfficials()
		for i := range officials {
			officials[i].Key = nextKey()
		}
		p.Officials = officials
		p.Original = snapshotPerson(p)
		p.HasUnsavedChanges = false

	case PersonUpdated:
		p.Loading = false
		p.Err = ""
		p.User = a.Person
		snap := PersonSnapshot{User: a.Person}
		if p.Original != nil {
			snap.Officials = p.Original.Officials
		}
		p.Original = &snap
		p.HasUnsavedChanges = slices.ContainsFunc(p.Officials, func(o models.RelatedOfficial) bool {
			return o.Temporary
		})

	case PersonSoftDeleted:
		p.Loading = false
		p.Err = ""
		p.Users = dropUser(p.Users, a.ID)
		p.Filtered = dropUser(p.Filtered, a.ID)
		if p.PersonalDetailsID == a.ID {
			p = resetPersonDraft(p)
		}
	}
	return p
}

func resetPersonDraft(p PersonSlice) PersonSlice {
	p.User = models.Person{}
	p.Officials = nil
	p.PersonalDetailsID = 0
	p.Editing = false
	p.HasUnsavedChanges = false
	p.Original = nil
	return p
}

func snapshotPerson(p PersonSlice) *PersonSnapshot {
	return &PersonSnapshot{
		User:      p.User,
		Officials: slices.Clone(p.Officials),
	}
}

func dropUser(users []models.PersonSummary, target id.PersonID) []models.PersonSummary {
	return slices.DeleteFunc(slices.Clone(users), func(u models.PersonSummary) bool {
		return u.ID == target
	})
}
