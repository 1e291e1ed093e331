package backend

import "context"

// ListAdmins fetches every regular admin account.
func (c *Client) ListAdmins(ctx context.Context) ([]AdminDTO, error) {
	var out []AdminDTO
	if err := c.get(ctx, "/admins/", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// CreateAdmin creates a regular admin. Master admin only.
func (c *Client) CreateAdmin(ctx context.Context, payload AdminDTO, password string) (*AdminDTO, error) {
	body := struct {
		AdminDTO
		Password string `json:"password"`
	}{AdminDTO: payload, Password: password}

	var out AdminDTO
	if err := c.postJSON(ctx, "/admins/", body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetCurrentAdmin fetches the profile of the logged-in admin.
func (c *Client) GetCurrentAdmin(ctx context.Context) (*AdminDTO, error) {
	var out AdminDTO
	if err := c.get(ctx, "/admins/me", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateCurrentAdmin updates the logged-in admin's own profile.
func (c *Client) UpdateCurrentAdmin(ctx context.Context, payload AdminDTO) (*AdminDTO, error) {
	var out AdminDTO
	if err := c.putJSON(ctx, "/admins/me", payload, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateAdmin updates an admin account by id. Master admin only.
func (c *Client) UpdateAdmin(ctx context.Context, id string, payload AdminDTO) (*AdminDTO, error) {
	var out AdminDTO
	if err := c.putJSON(ctx, "/admins/"+id, payload, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteAdmin removes an admin account by id. Master admin only.
func (c *Client) DeleteAdmin(ctx context.Context, id string) error {
	return c.delete(ctx, "/admins/"+id)
}
