package models

// Combined is the person-with-children view returned by the combined fetch.
type Combined struct {
	PersonSummary
	Officials   []OfficialRecord   `json:"related_officials"`
	BankDetails []BankDetailRecord `json:"bank_details"`
}

// ActiveOfficials maps the non-deleted officials into sorted draft rows.
func (c *Combined) ActiveOfficials() []RelatedOfficial {
	rows := make([]RelatedOfficial, 0, len(c.Officials))
	for _, r := range c.Officials {
		if r.Deleted {
			continue
		}
		rows = append(rows, OfficialFromRecord(r))
	}
	SortOfficials(rows)
	return rows
}

// ActiveBankDetails maps the non-deleted bank details into sorted draft rows.
func (c *Combined) ActiveBankDetails() []BankDetail {
	rows := make([]BankDetail, 0, len(c.BankDetails))
	for _, r := range c.BankDetails {
		if r.Deleted {
			continue
		}
		rows = append(rows, BankDetailFromRecord(r))
	}
	SortBankDetails(rows)
	return rows
}
