// Package cli is the terminal front-end of the patients client: a small
// REPL offering login, the paginated patient list, and role-gated record
// management.
package cli

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"io"
	"os"

	_ "modernc.org/sqlite"

	"github.com/aahadaazar/patients-app/internal/client/api"
	"github.com/aahadaazar/patients-app/internal/client/config"
	"github.com/aahadaazar/patients-app/internal/client/notify"
	"github.com/aahadaazar/patients-app/internal/client/patients"
	"github.com/aahadaazar/patients-app/internal/client/session"
	"github.com/aahadaazar/patients-app/internal/client/store"
	"github.com/aahadaazar/patients-app/internal/logging"
)

// App wires the client together and implements the REPL commands.
type App struct {
	cfg      *config.Config
	db       *sql.DB
	sessions *session.Manager
	patients *patients.Controller
	gw       *api.HTTPGateway
	notifier *notify.Notifier
	reader   *bufio.Reader
	out      io.Writer
	log      logging.Logger
}

func NewApp(ctx context.Context, cfg *config.Config, log logging.Logger) (*App, error) {
	db, err := store.Open(ctx, cfg.SessionStorePath)
	if err != nil {
		return nil, fmt.Errorf("error initializing session store: %w", err)
	}

	a := &App{
		cfg:    cfg,
		db:     db,
		reader: bufio.NewReader(os.Stdin),
		out:    os.Stdout,
		log:    log,
	}

	a.sessions = session.NewManager(store.NewSQLiteStore(db), log)
	a.notifier = notify.NewNotifier(notify.WithOnShow(func(st notify.State) {
		fmt.Fprintf(a.out, "[%s] %s\n", st.Kind, st.Message)
	}))
	hooks := &gatewayHooks{sessions: a.sessions, notifier: a.notifier, log: log}
	a.gw = api.NewHTTPGateway(cfg.ServerBaseURL, cfg.RequestTimeout, a.sessions, hooks, log)
	a.patients = patients.NewController(a.gw, log)

	return a, nil
}

// Run restores any persisted session and enters the command loop.
func (a *App) Run(ctx context.Context) {
	defer a.Close()

	if err := a.sessions.Restore(ctx); err != nil {
		a.log.Error(ctx, "session restoration failed", "error", err)
	}

	a.Root(ctx)
}

func (a *App) Close() {
	a.notifier.Close()
	if a.db != nil {
		_ = a.db.Close()
	}
}

func (a *App) isLoggedIn() bool {
	return a.sessions.Current().IsAuthenticated()
}

// status renders the REPL prompt segment describing the current session.
func (a *App) status() string {
	s := a.sessions.Current()
	switch {
	case s.Loading:
		return "restoring"
	case !s.IsAuthenticated():
		return "guest"
	default:
		return fmt.Sprintf("%s (%s)", s.User.ID, s.User.Role)
	}
}

// gatewayHooks is the gateway's view into the rest of the app, supplied at
// construction rather than reached through globals.
type gatewayHooks struct {
	sessions *session.Manager
	notifier *notify.Notifier
	log      logging.Logger
}

// OnUnauthorized performs the forced session invalidation mandated for any
// 401 response. The gateway guarantees at most one call per session epoch.
func (h *gatewayHooks) OnUnauthorized() {
	ctx := context.Background()
	if err := h.sessions.Logout(ctx); err != nil {
		h.log.Error(ctx, "failed to invalidate session", "error", err)
	}
	h.notifier.Show("Your session has expired. Please log in again.", notify.Warning)
}

func (h *gatewayHooks) Notify(message string, kind notify.Kind) {
	h.notifier.Show(message, kind)
}
