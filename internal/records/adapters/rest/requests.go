package rest

import (
	"github.com/guregu/null/v6"

	"persondesk/internal/records/models"
	id "persondesk/pkg/domain"
)

type personRequest struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

type officialRequest struct {
	PersonID id.PersonID `json:"personal_details_id,omitempty"`
	Name     string      `json:"related_official_name"`
	IDNumber string      `json:"related_official_nic_number"`
}

type bankDetailRequest struct {
	PersonID          id.PersonID `json:"personal_details_id,omitempty"`
	AccountDetails    string      `json:"account_details"`
	Loans             null.Float  `json:"loans"`
	LeasingFacilities null.Float  `json:"leasing_facilities"`
}

type messageResponse struct {
	Message string `json:"message"`
}

func newPersonRequest(p models.Person) personRequest {
	return personRequest{FirstName: p.FirstName, LastName: p.LastName}
}

func newOfficialRequest(personID id.PersonID, in models.OfficialInput) officialRequest {
	return officialRequest{PersonID: personID, Name: in.Name, IDNumber: in.IDNumber}
}

func newBankDetailRequest(personID id.PersonID, in models.BankDetailInput) bankDetailRequest {
	return bankDetailRequest{
		PersonID:          personID,
		AccountDetails:    in.AccountDetails,
		Loans:             in.Loans,
		LeasingFacilities: in.LeasingFacilities,
	}
}
