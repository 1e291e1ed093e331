package backend

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
)

// Login exchanges credentials for a bearer token. The backend expects a
// form-encoded body with username/password, OAuth2 password-flow style.
func (c *Client) Login(ctx context.Context, email, password string) (*TokenResponse, error) {
	form := url.Values{}
	form.Set("username", email)
	form.Set("password", password)

	var out TokenResponse
	err := c.do(ctx, requestSpec{
		method:      http.MethodPost,
		path:        "/auth/login",
		contentType: "application/x-www-form-urlencoded",
		body:        []byte(form.Encode()),
	}, &out)
	if err != nil {
		return nil, err
	}
	if out.AccessToken == "" {
		return nil, &Error{Kind: KindServer, Message: "Login response carried no token"}
	}
	return &out, nil
}

// CheckMasterAdmin reports whether the single master admin account exists.
// Unauthenticated: it gates the first-time-setup screen.
func (c *Client) CheckMasterAdmin(ctx context.Context) (bool, error) {
	var out MasterAdminStatus
	err := c.do(ctx, requestSpec{method: http.MethodGet, path: "/auth/check-master-admin"}, &out)
	if err != nil {
		return false, err
	}
	return out.Exists, nil
}

// CreateMasterAdmin performs first-time setup. A conflict means the account
// already exists and must be treated as terminal, never retried.
func (c *Client) CreateMasterAdmin(ctx context.Context, payload AdminDTO, password string) error {
	body := struct {
		AdminDTO
		Password string `json:"password"`
	}{AdminDTO: payload, Password: password}

	raw, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("failed to encode request body: %w", err)
	}
	return c.do(ctx, requestSpec{
		method:      http.MethodPost,
		path:        "/auth/create-master-admin",
		contentType: "application/json",
		body:        raw,
	}, nil)
}
