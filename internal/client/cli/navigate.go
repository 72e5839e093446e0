package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/pointquest-admin/internal/client/api"
	"github.com/dmitrijs2005/pointquest-admin/internal/client/models"
	"github.com/dmitrijs2005/pointquest-admin/internal/client/router"
)

var (
	ErrAccessDenied = errors.New(api.MsgForbidden)
	ErrNotSignedIn  = errors.New(api.MsgSignInRequired)
)

// visit navigates to path. Landing on the sign-in route triggers the login
// prompt, after which the original path is tried again.
func (a *App) visit(ctx context.Context, path string) (router.Decision, error) {
	d, err := a.resolve(ctx, path)
	if err != nil {
		return router.Decision{}, err
	}
	if d.Route.Name != router.RouteLogin {
		a.location = d
		return d, nil
	}

	if err := a.signIn(ctx, ""); err != nil {
		return router.Decision{}, err
	}

	d, err = a.resolve(ctx, router.ReturnPath(d))
	if err != nil {
		return router.Decision{}, err
	}
	if d.Route.Name == router.RouteLogin {
		return router.Decision{}, ErrNotSignedIn
	}
	a.location = d
	return d, nil
}

func (a *App) resolve(ctx context.Context, path string) (router.Decision, error) {
	d, err := a.guard.Resolve(ctx, path)
	if errors.Is(err, router.ErrTooManyRedirects) {
		// signed in, but the role may open neither the route nor the dashboard
		return router.Decision{}, ErrAccessDenied
	}
	return d, err
}

// signIn asks for credentials and logs in. username may be preset.
func (a *App) signIn(ctx context.Context, username string) error {
	if username == "" {
		var err error
		username, err = a.prompt("Username")
		if err != nil {
			return err
		}
	}
	if username == "" {
		return fmt.Errorf("username is required")
	}

	a.printf("Password: ")
	password, err := a.readPassword()
	a.println()
	if err != nil {
		return fmt.Errorf("read password: %w", err)
	}
	defer wipe(password)

	return a.session.Login(ctx, models.LoginRequest{Username: username, Password: string(password)})
}

func wipe(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
