package backend

import "context"

// ListRentalApartments fetches all rental apartments with nested parts.
func (c *Client) ListRentalApartments(ctx context.Context) ([]ApartmentDTO, error) {
	var out []ApartmentDTO
	if err := c.get(ctx, "/apartments/rent", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetRentalApartment fetches one rental apartment by id.
func (c *Client) GetRentalApartment(ctx context.Context, id string) (*ApartmentDTO, error) {
	var out ApartmentDTO
	if err := c.get(ctx, "/apartments/rent/"+id, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateRentalApartment creates a rental apartment.
func (c *Client) CreateRentalApartment(ctx context.Context, payload ApartmentDTO) (*ApartmentDTO, error) {
	var out ApartmentDTO
	if err := c.postJSON(ctx, "/apartments/rent", payload, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateRentalApartment updates a rental apartment by id.
func (c *Client) UpdateRentalApartment(ctx context.Context, id string, payload ApartmentDTO) (*ApartmentDTO, error) {
	var out ApartmentDTO
	if err := c.putJSON(ctx, "/apartments/rent/"+id, payload, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteRentalApartment deletes a rental apartment. The backend cascades the
// delete to the apartment's parts.
func (c *Client) DeleteRentalApartment(ctx context.Context, id string) error {
	return c.delete(ctx, "/apartments/rent/"+id)
}

// GetApartmentWhatsAppLink fetches the share link for a rental apartment.
func (c *Client) GetApartmentWhatsAppLink(ctx context.Context, id string) (string, error) {
	var out WhatsAppLink
	if err := c.get(ctx, "/apartments/rent/"+id+"/whatsapp", nil, &out); err != nil {
		return "", err
	}
	return out.URL, nil
}

// GetMyContent fetches every listing owned by the logged-in admin.
func (c *Client) GetMyContent(ctx context.Context) (*MyContent, error) {
	var out MyContent
	if err := c.get(ctx, "/apartments/my-content", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
