package cli

import (
	"context"

	"github.com/dmitrijs2005/pointquest-admin/internal/client/router"
)

func (a *App) cmdHelp(_ context.Context, _ []string) error {
	t := newTable(a.out, "COMMAND", "DESCRIPTION")
	for _, c := range commandTable() {
		t.row(c.usage, c.help)
	}
	t.flush()
	return nil
}

func (a *App) cmdLogin(ctx context.Context, args []string) error {
	d, err := a.resolve(ctx, router.LoginPath)
	if err != nil {
		return err
	}
	if d.Route.Name != router.RouteLogin {
		a.println("Already signed in" + a.status())
		return nil
	}

	var username string
	if len(args) > 0 {
		username = args[0]
	}
	if err := a.signIn(ctx, username); err != nil {
		return err
	}
	_, err = a.visit(ctx, router.ReturnPath(d))
	return err
}

func (a *App) cmdLogout(ctx context.Context, _ []string) error {
	err := a.session.Logout(ctx)
	a.location = router.Decision{}
	return err
}

func (a *App) cmdWhoami(ctx context.Context, _ []string) error {
	p, err := a.api.Profile(ctx)
	if err != nil {
		return err
	}
	field(a.out, "ID", p.ID)
	field(a.out, "Username", p.Username)
	field(a.out, "Role", p.Role)
	return nil
}

func (a *App) cmdGo(ctx context.Context, args []string) error {
	d, err := a.visit(ctx, args[0])
	if err != nil {
		return err
	}
	a.printf("%s (%s)\n", d.Route.Title, d.Path)
	for k, v := range d.Params {
		field(a.out, k, v)
	}
	return nil
}
