// Package domain holds the typed identifiers shared across packages.
//
// The backend assigns integer identifiers to every resource. Keeping them as
// distinct types stops a bank-detail id from being passed where a person id
// is expected.
package domain

import (
	"fmt"
	"strconv"
	"strings"

	"persondesk/pkg/platform/sentinel"
)

// PersonID identifies a personal details record (personal_details_id).
type PersonID int64

// OfficialID identifies a related official (related_officials_id).
type OfficialID int64

// BankDetailID identifies a bank details record (bank_details_id).
type BankDetailID int64

// IsZero reports whether no server identifier has been assigned.
func (id PersonID) IsZero() bool { return id == 0 }

func (id PersonID) String() string     { return strconv.FormatInt(int64(id), 10) }
func (id OfficialID) String() string   { return strconv.FormatInt(int64(id), 10) }
func (id BankDetailID) String() string { return strconv.FormatInt(int64(id), 10) }

// ParsePersonID parses a positive decimal person identifier.
func ParsePersonID(s string) (PersonID, error) {
	v, err := parsePositive("person id", s)
	return PersonID(v), err
}

// ParseOfficialID parses a positive decimal related-official identifier.
func ParseOfficialID(s string) (OfficialID, error) {
	v, err := parsePositive("official id", s)
	return OfficialID(v), err
}

// ParseBankDetailID parses a positive decimal bank-detail identifier.
func ParseBankDetailID(s string) (BankDetailID, error) {
	v, err := parsePositive("bank detail id", s)
	return BankDetailID(v), err
}

func parsePositive(kind, s string) (int64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("%s is required: %w", kind, sentinel.ErrInvalidInput)
	}
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", kind, s, sentinel.ErrInvalidInput)
	}
	if v <= 0 {
		return 0, fmt.Errorf("%s must be positive: %w", kind, sentinel.ErrInvalidInput)
	}
	return v, nil
}
