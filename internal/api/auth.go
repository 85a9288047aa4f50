package api

import (
	"context"
	"net/http"
)

// Login exchanges credentials for a bearer token.
func (c *Client) Login(ctx context.Context, email, password string) (string, error) {
	req := struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}{Email: email, Password: password}

	var out struct {
		Token string `json:"token"`
	}
	if err := c.do(ctx, http.MethodPost, "/auth/login", false, req, &out); err != nil {
		return "", err
	}
	return out.Token, nil
}

// Register creates a new account. The caller still has to log in afterwards.
func (c *Client) Register(ctx context.Context, email, password string) error {
	req := struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}{Email: email, Password: password}
	return c.do(ctx, http.MethodPost, "/auth/register", false, req, nil)
}
