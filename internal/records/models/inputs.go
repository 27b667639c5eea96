package models

import (
	"strings"

	"github.com/guregu/null/v6"
)

// OfficialInput is the writable content of a related official.
type OfficialInput struct {
	Name     string
	IDNumber string
}

// BankDetailInput is the writable content of a bank details row.
type BankDetailInput struct {
	AccountDetails    string
	Loans             null.Float
	LeasingFacilities null.Float
}

// Input returns the writable content of the row.
func (o RelatedOfficial) Input() OfficialInput {
	return OfficialInput{Name: o.Name, IDNumber: o.IDNumber}
}

// HasName reports whether the row carries a non-blank name. Rows without one
// are skipped when a new person is saved.
func (o RelatedOfficial) HasName() bool {
	return strings.TrimSpace(o.Name) != ""
}

// Input parses the row's amount fields into writable content.
func (b BankDetail) Input() (BankDetailInput, error) {
	loans, err := ParseAmount(b.Loans)
	if err != nil {
		return BankDetailInput{}, err
	}
	leasing, err := ParseAmount(b.LeasingFacilities)
	if err != nil {
		return BankDetailInput{}, err
	}
	return BankDetailInput{
		AccountDetails:    b.AccountDetails,
		Loans:             loans,
		LeasingFacilities: leasing,
	}, nil
}

// HasAccountDetails reports whether the row carries non-blank account
// details. Rows without them are skipped when a new person is saved.
func (b BankDetail) HasAccountDetails() bool {
	return strings.TrimSpace(b.AccountDetails) != ""
}

