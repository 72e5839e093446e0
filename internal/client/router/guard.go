// Package router resolves console paths against the route table and decides,
// before each navigation, whether it may proceed or must be redirected.
//
// Paths are matched with the chi routing tree. The guard waits for the
// session to be resolved, then applies the rules:
//
//   - the login route while signed in redirects to HomePath;
//   - a protected route while signed out, or with a cached profile whose role
//     lacks the route's capability, redirects to LoginPath with the requested
//     path in the "redirect" query parameter;
//   - "/" redirects to HomePath and unknown paths redirect to HomePath.
package router

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrijs2005/pointquest-admin/internal/client/models"
	"github.com/dmitrijs2005/pointquest-admin/internal/logging"
)

const maxRedirects = 5

var ErrTooManyRedirects = errors.New("too many redirects")

// Session is what the guard needs from the session store.
type Session interface {
	EnsureSession(ctx context.Context)
	IsAuthenticated() bool
	Profile() *models.AdminProfile
}

// Decision is the outcome of one navigation. Exactly one of Redirect and
// Route is meaningful: Redirect is set when the navigation must go elsewhere.
type Decision struct {
	Path     string
	Redirect string
	Route    Route
	Params   map[string]string
	Query    url.Values
}

func (d Decision) Allowed() bool {
	return d.Redirect == ""
}

type Guard struct {
	mux       *chi.Mux
	byPattern map[string]Route
	session   Session
	log       logging.Logger
}

func NewGuard(session Session, log logging.Logger) *Guard {
	if log == nil {
		log = logging.Discard()
	}
	g := &Guard{
		mux:       chi.NewMux(),
		byPattern: make(map[string]Route),
		session:   session,
		log:       log,
	}
	for _, r := range Routes() {
		g.mux.Method(http.MethodGet, r.Pattern, http.NotFoundHandler())
		g.byPattern[r.Pattern] = r
	}
	return g
}

// Navigate evaluates a single navigation to fullPath (path plus optional
// query). It blocks until the session is resolved.
func (g *Guard) Navigate(ctx context.Context, fullPath string) (Decision, error) {
	u, err := url.Parse(fullPath)
	if err != nil {
		return Decision{}, fmt.Errorf("invalid path %q: %w", fullPath, err)
	}
	path := cleanPath(u.Path)
	d := Decision{Path: path, Query: u.Query()}

	if path == RootPath {
		d.Redirect = HomePath
		return d, nil
	}

	rctx := chi.NewRouteContext()
	pattern := g.mux.Find(rctx, http.MethodGet, path)
	route, ok := g.byPattern[pattern]
	if !ok {
		g.log.Debug(ctx, "unknown route", "path", path)
		d.Redirect = HomePath
		return d, nil
	}
	d.Route = route
	d.Params = params(rctx)

	g.session.EnsureSession(ctx)
	if err := ctx.Err(); err != nil {
		return Decision{}, err
	}
	authed := g.session.IsAuthenticated()

	if route.Public {
		if route.Name == RouteLogin && authed {
			d.Redirect = HomePath
		}
		return d, nil
	}

	if !authed || !g.permitted(route) {
		d.Redirect = LoginRedirect(fullPath)
	}
	return d, nil
}

// Resolve follows redirects from fullPath and returns the decision for the
// route finally shown.
func (g *Guard) Resolve(ctx context.Context, fullPath string) (Decision, error) {
	target := fullPath
	for range maxRedirects {
		d, err := g.Navigate(ctx, target)
		if err != nil {
			return Decision{}, err
		}
		if d.Allowed() {
			return d, nil
		}
		g.log.Debug(ctx, "navigation redirected", "from", target, "to", d.Redirect)
		target = d.Redirect
	}
	return Decision{}, fmt.Errorf("%w: %s", ErrTooManyRedirects, fullPath)
}

// permitted applies the role check. Without a cached profile there is
// nothing to check and the route is allowed.
func (g *Guard) permitted(r Route) bool {
	p := g.session.Profile()
	if p == nil {
		return true
	}
	return p.Role.Can(r.Capability)
}

// LoginRedirect is the login path that returns to fullPath after sign-in.
func LoginRedirect(fullPath string) string {
	return LoginPath + "?" + url.Values{RedirectParam: {fullPath}}.Encode()
}

// ReturnPath extracts the post-login target from a login decision, falling
// back to HomePath.
func ReturnPath(d Decision) string {
	p := d.Query.Get(RedirectParam)
	if p == "" || !strings.HasPrefix(p, "/") || strings.HasPrefix(p, LoginPath) {
		return HomePath
	}
	return p
}

func cleanPath(p string) string {
	if p == "" {
		return RootPath
	}
	if !strings.HasPrefix(p, "/") {
		p = "/" + p
	}
	if len(p) > 1 {
		p = strings.TrimRight(p, "/")
		if p == "" {
			p = RootPath
		}
	}
	return p
}

func params(rctx *chi.Context) map[string]string {
	if len(rctx.URLParams.Keys) == 0 {
		return nil
	}
	out := make(map[string]string, len(rctx.URLParams.Keys))
	for i, k := range rctx.URLParams.Keys {
		out[k] = rctx.URLParams.Values[i]
	}
	return out
}
