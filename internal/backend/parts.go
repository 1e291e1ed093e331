package backend

import "context"

// ListParts fetches all studios across all apartments.
func (c *Client) ListParts(ctx context.Context) ([]StudioDTO, error) {
	var out []StudioDTO
	if err := c.get(ctx, "/apartments/parts", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// CreatePart adds a studio under a parent rental apartment.
func (c *Client) CreatePart(ctx context.Context, apartmentID string, payload StudioDTO) (*StudioDTO, error) {
	var out StudioDTO
	if err := c.postJSON(ctx, "/apartments/rent/"+apartmentID+"/parts", payload, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdatePart updates a studio by id, including attaching or detaching its
// rental sub-record.
func (c *Client) UpdatePart(ctx context.Context, id string, payload StudioDTO) (*StudioDTO, error) {
	var out StudioDTO
	if err := c.putJSON(ctx, "/apartments/parts/"+id, payload, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeletePart deletes a studio independently of its parent.
func (c *Client) DeletePart(ctx context.Context, id string) error {
	return c.delete(ctx, "/apartments/parts/"+id)
}
