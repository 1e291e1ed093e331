package backend

import "context"

// ListSaleApartments fetches all sale listings.
func (c *Client) ListSaleApartments(ctx context.Context) ([]SaleApartmentDTO, error) {
	var out []SaleApartmentDTO
	if err := c.get(ctx, "/apartments/sale", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetSaleApartment fetches one sale listing by id.
func (c *Client) GetSaleApartment(ctx context.Context, id string) (*SaleApartmentDTO, error) {
	var out SaleApartmentDTO
	if err := c.get(ctx, "/apartments/sale/"+id, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateSaleApartment creates a sale listing.
func (c *Client) CreateSaleApartment(ctx context.Context, payload SaleApartmentDTO) (*SaleApartmentDTO, error) {
	var out SaleApartmentDTO
	if err := c.postJSON(ctx, "/apartments/sale", payload, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateSaleApartment updates a sale listing by id (including marking it sold).
func (c *Client) UpdateSaleApartment(ctx context.Context, id string, payload SaleApartmentDTO) (*SaleApartmentDTO, error) {
	var out SaleApartmentDTO
	if err := c.putJSON(ctx, "/apartments/sale/"+id, payload, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteSaleApartment removes a sale listing.
func (c *Client) DeleteSaleApartment(ctx context.Context, id string) error {
	return c.delete(ctx, "/apartments/sale/"+id)
}
