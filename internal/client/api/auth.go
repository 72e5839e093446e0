package api

import (
	"context"
	"net/http"

	"github.com/dmitrijs2005/pointquest-admin/internal/client/models"
)

// Login authenticates an administrator. The returned token may be empty and
// User may be nil when the server omits them.
func (c *Client) Login(ctx context.Context, creds models.LoginRequest) (models.LoginResult, error) {
	return call[models.LoginResult](ctx, c, Request{
		Method: http.MethodPost,
		Path:   "/auth/admin/login",
		JSON:   creds,
	})
}

func (c *Client) Logout(ctx context.Context) error {
	return c.exec(ctx, Request{Method: http.MethodPost, Path: "/auth/logout"})
}

// Profile returns the administrator the current token belongs to.
func (c *Client) Profile(ctx context.Context) (models.AdminProfile, error) {
	return call[models.AdminProfile](ctx, c, Request{Method: http.MethodGet, Path: "/auth/me"})
}
