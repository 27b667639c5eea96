package rest

import (
	"context"
	"net/http"

	"persondesk/internal/records/models"
	id "persondesk/pkg/domain"
)

func (c *Client) ListBankDetails(ctx context.Context) ([]models.BankDetailRecord, error) {
	var out []models.BankDetailRecord
	if err := c.do(ctx, "list bank details", http.MethodGet, "/bankdetails/", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) GetBankDetail(ctx context.Context, bankDetailID id.BankDetailID) (*models.BankDetailRecord, error) {
	var out models.BankDetailRecord
	path := "/bankdetails/" + bankDetailID.String()
	if err := c.do(ctx, "fetch bank details", http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateBankDetail creates a bank details row for personID. The returned
// record may lack an id when the backend does not echo one.
func (c *Client) CreateBankDetail(ctx context.Context, personID id.PersonID, in models.BankDetailInput) (*models.BankDetailRecord, error) {
	var out models.BankDetailRecord
	if err := c.do(ctx, "create bank details", http.MethodPost, "/bankdetails/", newBankDetailRequest(personID, in), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateBankDetail(ctx context.Context, bankDetailID id.BankDetailID, in models.BankDetailInput) (*models.BankDetailRecord, error) {
	var out models.BankDetailRecord
	path := "/bankdetails/" + bankDetailID.String()
	if err := c.do(ctx, "update bank details", http.MethodPut, path, newBankDetailRequest(0, in), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// SoftDeleteBankDetail flags a bank details row as deleted. No body is sent.
func (c *Client) SoftDeleteBankDetail(ctx context.Context, bankDetailID id.BankDetailID) error {
	var out messageResponse
	path := "/bankdetails/soft_delete/" + bankDetailID.String()
	return c.do(ctx, "soft delete bank details", http.MethodPut, path, nil, &out)
}
