package rest

import (
	"context"
	"net/http"

	"persondesk/internal/records/models"
	id "persondesk/pkg/domain"
)

// ListPersons fetches the whole master list, deleted rows included.
func (c *Client) ListPersons(ctx context.Context) ([]models.PersonSummary, error) {
	var out []models.PersonSummary
	if err := c.do(ctx, "list personal details", http.MethodGet, "/personaldetails/", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetCombined fetches a person with its officials and bank details.
func (c *Client) GetCombined(ctx context.Context, personID id.PersonID) (*models.Combined, error) {
	var out models.Combined
	path := "/personaldetails/" + personID.String() + "/combined"
	if err := c.do(ctx, "fetch combined personal details", http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreatePerson creates a person. The backend does not echo the new id, so
// the returned summary usually has a zero ID.
func (c *Client) CreatePerson(ctx context.Context, p models.Person) (*models.PersonSummary, error) {
	var out models.PersonSummary
	if err := c.do(ctx, "create personal details", http.MethodPost, "/personaldetails/", newPersonRequest(p), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdatePerson replaces the name fields of a person.
func (c *Client) UpdatePerson(ctx context.Context, personID id.PersonID, p models.Person) (*models.PersonSummary, error) {
	var out models.PersonSummary
	path := "/personaldetails/" + personID.String()
	if err := c.do(ctx, "update personal details", http.MethodPut, path, newPersonRequest(p), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// SoftDeletePerson flags a person as deleted. The backend expects the current
// name fields in the body.
func (c *Client) SoftDeletePerson(ctx context.Context, personID id.PersonID, p models.Person) error {
	path := "/personaldetails/soft_delete/" + personID.String()
	return c.do(ctx, "soft delete personal details", http.MethodPut, path, newPersonRequest(p), nil)
}
