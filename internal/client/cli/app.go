package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/dmitrijs2005/pointquest-admin/internal/client/api"
	"github.com/dmitrijs2005/pointquest-admin/internal/client/models"
	"github.com/dmitrijs2005/pointquest-admin/internal/client/notify"
	"github.com/dmitrijs2005/pointquest-admin/internal/client/router"
	"github.com/dmitrijs2005/pointquest-admin/internal/logging"
)

// Session is the part of the session store the console drives.
type Session interface {
	Login(ctx context.Context, creds models.LoginRequest) error
	Logout(ctx context.Context) error
	IsAuthenticated() bool
	Profile() *models.AdminProfile
}

// Navigator resolves a path through the route guard.
type Navigator interface {
	Resolve(ctx context.Context, fullPath string) (router.Decision, error)
}

type Deps struct {
	API      API
	Session  Session
	Guard    Navigator
	Notifier notify.Notifier
	Logger   logging.Logger
	In       io.Reader
	Out      io.Writer
	// ReadPassword reads a password without echo. Defaults to the terminal
	// attached to os.Stdin.
	ReadPassword func() ([]byte, error)
}

type App struct {
	api          API
	session      Session
	guard        Navigator
	notifier     notify.Notifier
	log          logging.Logger
	reader       *bufio.Reader
	out          io.Writer
	readPassword func() ([]byte, error)

	location router.Decision
	commands map[string]*command
}

func NewApp(d Deps) *App {
	a := &App{
		api:          d.API,
		session:      d.Session,
		guard:        d.Guard,
		notifier:     d.Notifier,
		log:          d.Logger,
		reader:       bufio.NewReader(d.In),
		out:          d.Out,
		readPassword: d.ReadPassword,
	}
	if a.notifier == nil {
		a.notifier = notify.Nop{}
	}
	if a.log == nil {
		a.log = logging.Discard()
	}
	if a.readPassword == nil {
		a.readPassword = func() ([]byte, error) { return term.ReadPassword(int(os.Stdin.Fd())) }
	}
	a.commands = make(map[string]*command)
	for _, c := range commandTable() {
		a.commands[c.name] = c
		for _, alias := range c.aliases {
			a.commands[alias] = c
		}
	}
	return a
}

var errExit = errors.New("exit")

// Run reads commands until "exit", EOF or ctx cancellation.
func (a *App) Run(ctx context.Context) error {
	a.println("PointQuest admin console (type 'help' for commands)")
	if _, err := a.visit(ctx, router.HomePath); err != nil {
		a.report(ctx, err)
	}

	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		fmt.Fprintf(a.out, "pq%s> ", a.status())

		line, err := a.reader.ReadString('\n')
		if err != nil && !(errors.Is(err, io.EOF) && line != "") {
			if errors.Is(err, io.EOF) {
				a.println()
				return nil
			}
			return err
		}

		if err := a.dispatch(ctx, line); err != nil {
			if errors.Is(err, errExit) {
				a.println("Bye!")
				return nil
			}
			a.report(ctx, err)
		}
	}
}

// dispatch runs a single command line.
func (a *App) dispatch(ctx context.Context, line string) error {
	parts := splitArgs(line)
	if len(parts) == 0 {
		return nil
	}

	cmd, ok := a.commands[parts[0]]
	if !ok {
		return fmt.Errorf("unknown command %q, type 'help'", parts[0])
	}
	args := parts[1:]
	if len(args) < cmd.minArgs {
		return fmt.Errorf("usage: %s", cmd.usage)
	}

	if cmd.route != nil {
		if _, err := a.visit(ctx, cmd.route(args)); err != nil {
			return err
		}
	}
	return cmd.run(a, ctx, args)
}

// report shows err unless the API client already did.
func (a *App) report(ctx context.Context, err error) {
	var apiErr *api.Error
	if errors.As(err, &apiErr) {
		return
	}
	a.log.Debug(ctx, "command failed", "error", err)
	a.notifier.Error(ctx, err.Error())
}

func (a *App) status() string {
	if !a.session.IsAuthenticated() {
		return ""
	}
	if p := a.session.Profile(); p != nil && p.Username != "" {
		return " (" + p.Username + ")"
	}
	return " (signed in)"
}

func (a *App) println(args ...any) {
	fmt.Fprintln(a.out, args...)
}

func (a *App) printf(format string, args ...any) {
	fmt.Fprintf(a.out, format, args...)
}

// splitArgs splits on whitespace; double quotes group words.
func splitArgs(line string) []string {
	var (
		out     []string
		cur     strings.Builder
		quoted  bool
		started bool
	)
	for _, r := range line {
		switch {
		case r == '"':
			quoted = !quoted
			started = true
		case !quoted && (r == ' ' || r == '\t' || r == '\n' || r == '\r'):
			if started {
				out = append(out, cur.String())
				cur.Reset()
				started = false
			}
		default:
			cur.WriteRune(r)
			started = true
		}
	}
	if started {
		out = append(out, cur.String())
	}
	return out
}
