package cli

import (
	"bufio"
	"context"
	"database/sql"
	"os"
	"time"

	"github.com/whaletown/whaletown/internal/client/api"
	"github.com/whaletown/whaletown/internal/client/config"
	"github.com/whaletown/whaletown/internal/client/models"
	"github.com/whaletown/whaletown/internal/client/repositories/localdata"
	"github.com/whaletown/whaletown/internal/client/services"
	"github.com/whaletown/whaletown/internal/client/session"
	"github.com/whaletown/whaletown/internal/logging"
)

type App struct {
	config *config.Config
	auth   services.AuthService
	gate   *session.Gate
	db     *sql.DB
	log    logging.Logger
	reader *bufio.Reader

	session *models.Session
}

func NewApp(ctx context.Context, c *config.Config, log logging.Logger) (*App, error) {
	db, err := localdata.Open(ctx, c.DatabaseDSN)
	if err != nil {
		log.Error(ctx, "error initializing local database", "error", err)
		return nil, err
	}

	store := session.NewSQLiteStore(db)
	apiClient := api.NewHTTPClient(c.APIBaseURL, c.RequestTimeout, log)
	auth := services.NewAuthService(apiClient, store, db, log)

	return &App{
		config: c,
		auth:   auth,
		gate:   session.NewGate(store),
		db:     db,
		log:    log,
		reader: bufio.NewReader(os.Stdin),
	}, nil
}

func (a *App) isLoggedIn() bool {
	return a.session != nil
}

// restoreSession decides the starting state: a persisted session wins;
// otherwise remembered credentials with auto-login enabled get one silent
// login attempt. Failures degrade to the logged-out prompt, never abort.
func (a *App) restoreSession(ctx context.Context) {
	sess, err := a.gate.Current(ctx)
	if err != nil {
		a.log.Warn(ctx, "could not read stored session", "error", err)
		return
	}
	if sess != nil {
		a.session = sess
		a.log.Info(ctx, "session restored", "user", sess.Username())
		if exp, ok := session.TokenExpiresAt(sess.AccessToken); ok && exp.Before(time.Now()) {
			a.log.Warn(ctx, "stored access token looks expired, the service may ask you to log in again")
		}
		return
	}

	creds, err := a.auth.RememberedCredentials(ctx)
	if err != nil || creds == nil || !creds.AutoLogin {
		return
	}
	a.log.Info(ctx, "attempting automatic login", "user", creds.Identifier)
	if sess, _, err = a.auth.Login(ctx, creds.Identifier, creds.Password); err != nil {
		a.log.Warn(ctx, "automatic login failed", "error", err)
		return
	}
	a.session = sess
}

// Run restores the session and drives the REPL until the user exits.
func (a *App) Run(ctx context.Context) {
	defer a.db.Close()

	a.restoreSession(ctx)
	runREPL(ctx, a, a.getStatus, bufio.NewScanner(os.Stdin))
}
