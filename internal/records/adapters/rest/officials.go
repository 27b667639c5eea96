package rest

import (
	"context"
	"net/http"

	"persondesk/internal/records/models"
	id "persondesk/pkg/domain"
)

// CreateOfficial creates an official for personID. The returned record may
// lack an id when the backend does not echo one.
func (c *Client) CreateOfficial(ctx context.Context, personID id.PersonID, in models.OfficialInput) (*models.OfficialRecord, error) {
	var out models.OfficialRecord
	if err := c.do(ctx, "create related official", http.MethodPost, "/relatedofficials/", newOfficialRequest(personID, in), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateOfficial(ctx context.Context, officialID id.OfficialID, in models.OfficialInput) (*models.OfficialRecord, error) {
	var out models.OfficialRecord
	path := "/relatedofficials/" + officialID.String()
	if err := c.do(ctx, "update related official", http.MethodPut, path, newOfficialRequest(0, in), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) SoftDeleteOfficial(ctx context.Context, officialID id.OfficialID, in models.OfficialInput) error {
	path := "/relatedofficials/soft_delete/" + officialID.String()
	return c.do(ctx, "soft delete related official", http.MethodPut, path, newOfficialRequest(0, in), nil)
}
