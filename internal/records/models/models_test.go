package models

import (
	"testing"

	"github.com/guregu/null/v6"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"persondesk/pkg/platform/sentinel"
)

func TestParseAmount(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    null.Float
		wantErr bool
	}{
		{name: "blank is null", input: "  ", want: null.Float{}},
		{name: "integer", input: "1500", want: null.FloatFrom(1500)},
		{name: "decimal", input: "12.75", want: null.FloatFrom(12.75)},
		{name: "not a number", input: "lots", wantErr: true},
		{name: "negative", input: "-3", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseAmount(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, sentinel.ErrInvalidInput)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFormatAmount(t *testing.T) {
	assert.Equal(t, "", FormatAmount(null.Float{}))
	assert.Equal(t, "1500", FormatAmount(null.FloatFrom(1500)))
	assert.Equal(t, "0.5", FormatAmount(null.FloatFrom(0.5)))
}

func TestCombinedActiveRows(t *testing.T) {
	c := &Combined{
		PersonSummary: PersonSummary{ID: 4, FirstName: "Ada", LastName: "Lovelace"},
		Officials: []OfficialRecord{
			{ID: 9, Name: "Late"},
			{ID: 3, Name: "Gone", Deleted: true},
			{ID: 2, Name: "Early", IDNumber: "NIC-2"},
		},
		BankDetails: []BankDetailRecord{
			{ID: 11, AccountDetails: "Savings", Loans: null.FloatFrom(250)},
			{ID: 10, AccountDetails: "Closed", Deleted: true},
		},
	}

	officials := c.ActiveOfficials()
	require.Len(t, officials, 2)
	assert.Equal(t, "Early", officials[0].Name)
	assert.Equal(t, "NIC-2", officials[0].IDNumber)
	assert.Equal(t, "Late", officials[1].Name)
	for _, o := range officials {
		assert.False(t, o.Temporary)
		assert.True(t, o.Persisted())
	}

	banks := c.ActiveBankDetails()
	require.Len(t, banks, 1)
	assert.Equal(t, "250", banks[0].Loans)
	assert.Equal(t, "", banks[0].LeasingFacilities)
	bid, ok := banks[0].BankDetailID()
	assert.True(t, ok)
	assert.EqualValues(t, 11, bid)
}

func TestSortOfficials_UnsavedRowsLast(t *testing.T) {
	rows := []RelatedOfficial{
		{Name: "draft-a"},
		{ID: null.IntFrom(5), Name: "five"},
		{Name: "draft-b"},
		{ID: null.IntFrom(1), Name: "one"},
	}
	SortOfficials(rows)

	names := make([]string, 0, len(rows))
	for _, r := range rows {
		names = append(names, r.Name)
	}
	assert.Equal(t, []string{"one", "five", "draft-a", "draft-b"}, names)
}

func TestPerson_Complete(t *testing.T) {
	assert.True(t, Person{FirstName: "A", LastName: "B"}.Complete())
	assert.False(t, Person{FirstName: "A", LastName: "  "}.Complete())
	assert.False(t, Person{}.Complete())
}

func TestBankDetail_Input(t *testing.T) {
	in, err := BankDetail{AccountDetails: "Savings", Loans: "12.5"}.Input()
	require.NoError(t, err)
	assert.Equal(t, null.FloatFrom(12.5), in.Loans)
	assert.False(t, in.LeasingFacilities.Valid)

	_, err = BankDetail{AccountDetails: "Savings", LeasingFacilities: "abc"}.Input()
	assert.ErrorIs(t, err, sentinel.ErrInvalidInput)

	assert.False(t, BankDetail{AccountDetails: " "}.HasAccountDetails())
	assert.True(t, RelatedOfficial{Name: "x"}.HasName())
}
