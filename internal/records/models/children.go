package models

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/guregu/null/v6"

	id "persondesk/pkg/domain"
	"persondesk/pkg/platform/sentinel"
)

// RelatedOfficial is a draft row of the related-officials collection.
//
// Key is assigned locally by the state reducers and never leaves the client.
// ID stays invalid until the backend assigns one. Temporary marks a row
// whose current content has not been confirmed by the backend; the next
// save creates it (no ID) or updates it (ID present).
type RelatedOfficial struct {
	Key       int      `json:"-"`
	ID        null.Int `json:"related_officials_id"`
	Name      string   `json:"related_official_name"`
	IDNumber  string   `json:"related_official_nic_number"`
	Temporary bool     `json:"-"`
}

// OfficialID returns the server identifier, if one has been assigned.
func (o RelatedOfficial) OfficialID() (id.OfficialID, bool) {
	if !o.ID.Valid {
		return 0, false
	}
	return id.OfficialID(o.ID.Int64), true
}

// Persisted reports whether the row is known to match the backend.
func (o RelatedOfficial) Persisted() bool {
	return o.ID.Valid && !o.Temporary
}

// BankDetail is a draft row of the bank-details collection. Amounts are kept
// as the text the user typed; ParseAmount converts them for the wire.
type BankDetail struct {
	Key               int      `json:"-"`
	ID                null.Int `json:"bank_details_id"`
	AccountDetails    string   `json:"account_details"`
	Loans             string   `json:"loans"`
	LeasingFacilities string   `json:"leasing_facilities"`
	Temporary         bool     `json:"-"`
}

// BankDetailID returns the server identifier, if one has been assigned.
func (b BankDetail) BankDetailID() (id.BankDetailID, bool) {
	if !b.ID.Valid {
		return 0, false
	}
	return id.BankDetailID(b.ID.Int64), true
}

// Persisted reports whether the row is known to match the backend.
func (b BankDetail) Persisted() bool {
	return b.ID.Valid && !b.Temporary
}

// OfficialRecord is a related official as stored by the backend.
type OfficialRecord struct {
	ID       id.OfficialID `json:"related_officials_id"`
	PersonID id.PersonID   `json:"personal_details_id"`
	Name     string        `json:"related_official_name"`
	IDNumber string        `json:"related_official_nic_number"`
	Deleted  bool          `json:"ro_is_deleted"`
}

// BankDetailRecord is a bank details row as stored by the backend.
type BankDetailRecord struct {
	ID                id.BankDetailID `json:"bank_details_id"`
	PersonID          id.PersonID     `json:"personal_details_id"`
	AccountDetails    string          `json:"account_details"`
	Loans             null.Float      `json:"loans"`
	LeasingFacilities null.Float      `json:"leasing_facilities"`
	Deleted           bool            `json:"bd_is_deleted"`
}

// OfficialFromRecord maps a backend row into a persisted draft row.
func OfficialFromRecord(r OfficialRecord) RelatedOfficial {
	return RelatedOfficial{
		ID:        null.IntFrom(int64(r.ID)),
		Name:      r.Name,
		IDNumber:  r.IDNumber,
		Temporary: false,
	}
}

// BankDetailFromRecord maps a backend row into a persisted draft row.
// Missing amounts become empty text.
func BankDetailFromRecord(r BankDetailRecord) BankDetail {
	return BankDetail{
		ID:                null.IntFrom(int64(r.ID)),
		AccountDetails:    r.AccountDetails,
		Loans:             FormatAmount(r.Loans),
		LeasingFacilities: FormatAmount(r.LeasingFacilities),
		Temporary:         false,
	}
}

// ParseAmount converts form text into a nullable amount. Blank text is null.
func ParseAmount(s string) (null.Float, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return null.Float{}, nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return null.Float{}, fmt.Errorf("amount %q is not a number: %w", s, sentinel.ErrInvalidInput)
	}
	if f < 0 {
		return null.Float{}, fmt.Errorf("amount %q must not be negative: %w", s, sentinel.ErrInvalidInput)
	}
	return null.FloatFrom(f), nil
}

// FormatAmount renders a nullable amount the way the form shows it.
func FormatAmount(f null.Float) string {
	if !f.Valid {
		return ""
	}
	return strconv.FormatFloat(f.Float64, 'f', -1, 64)
}

// SortOfficials orders rows by server id. Rows without an id keep their
// relative order after all persisted rows.
func SortOfficials(rows []RelatedOfficial) {
	sort.SliceStable(rows, func(i, j int) bool {
		return lessID(rows[i].ID, rows[j].ID)
	})
}

// SortBankDetails orders rows the same way as SortOfficials.
func SortBankDetails(rows []BankDetail) {
	sort.SliceStable(rows, func(i, j int) bool {
		return lessID(rows[i].ID, rows[j].ID)
	})
}

func lessID(a, b null.Int) bool {
	switch {
	case a.Valid && b.Valid:
		return a.Int64 < b.Int64
	case a.Valid:
		return true
	default:
		return false
	}
}
