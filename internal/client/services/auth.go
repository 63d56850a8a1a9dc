// Package services contains application services for the Whaletown client.
// This file defines the authentication service: the stateful side of every
// identity operation, including session persistence and local logout.
package services

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/whaletown/whaletown/internal/client/api"
	"github.com/whaletown/whaletown/internal/client/models"
	"github.com/whaletown/whaletown/internal/client/session"
	"github.com/whaletown/whaletown/internal/common"
	"github.com/whaletown/whaletown/internal/logging"
)

// AuthService sequences identity-service calls and owns their local side
// effects.
//
// Contract:
//   - Login / Register / LoginWithGitHub: the returned session is already
//     persisted; SessionStore.Load succeeds immediately after a nil error.
//   - Logout: local-only, never contacts the network, also forgets any
//     remembered credentials.
//   - CurrentUser: served from the persisted store, not the network.
//   - The message-only operations (codes, resets) have no local side effects.
//
// All methods honor context cancellation. Failures are *api.Error values
// except where a sentinel from internal/common is documented.
type AuthService interface {
	Login(ctx context.Context, identifier, password string) (*models.Session, bool, error)
	SendPasswordResetCode(ctx context.Context, identifier string) (string, error)
	ResetPassword(ctx context.Context, identifier, code, newPassword string) (string, error)
	SendEmailVerificationCode(ctx context.Context, email string) (string, error)
	VerifyEmailCode(ctx context.Context, email, code string) (string, error)
	Register(ctx context.Context, req api.RegisterRequest) (*models.Session, error)
	ChangePassword(ctx context.Context, oldPassword, newPassword string) (string, error)
	LoginWithGitHub(ctx context.Context, identity api.GitHubIdentity) (*models.Session, error)
	CurrentUser(ctx context.Context) (*models.UserProfile, error)
	Logout(ctx context.Context) error

	RememberCredentials(ctx context.Context, identifier, password string, autoLogin bool) error
	RememberedCredentials(ctx context.Context) (*RememberedCredentials, error)
	ForgetCredentials(ctx context.Context) error
}

type authService struct {
	api   api.Client
	store session.Store
	db    *sql.DB
	log   logging.Logger
}

// NewAuthService constructs an AuthService bound to the given API client,
// session store and local database.
func NewAuthService(apiClient api.Client, store session.Store, db *sql.DB, log logging.Logger) AuthService {
	return &authService{api: apiClient, store: store, db: db, log: log.With("component", "auth")}
}

// persistSession saves the login payload as the current session. Persisting
// happens before success is reported so callers may immediately rely on the
// store.
func (a *authService) persistSession(ctx context.Context, res *api.LoginResult) (*models.Session, error) {
	sess := &models.Session{
		AccessToken:  res.AccessToken,
		RefreshToken: res.RefreshToken,
		User:         res.User,
	}
	if err := a.store.Save(ctx, sess); err != nil {
		return nil, fmt.Errorf("session save error: %w", err)
	}
	return sess, nil
}

// Login authenticates with an identifier (username, email or phone) and a
// password. The second result reports the service's is_new_user flag.
func (a *authService) Login(ctx context.Context, identifier, password string) (*models.Session, bool, error) {
	res, err := a.api.Login(ctx, identifier, password)
	if err != nil {
		return nil, false, err
	}

	sess, err := a.persistSession(ctx, res)
	if err != nil {
		return nil, false, err
	}

	a.log.Info(ctx, "logged in", "user", sess.Username())
	return sess, res.IsNewUser, nil
}

func (a *authService) SendPasswordResetCode(ctx context.Context, identifier string) (string, error) {
	return a.api.SendPasswordResetCode(ctx, identifier)
}

func (a *authService) ResetPassword(ctx context.Context, identifier, code, newPassword string) (string, error) {
	return a.api.ResetPassword(ctx, identifier, code, newPassword)
}

func (a *authService) SendEmailVerificationCode(ctx context.Context, email string) (string, error) {
	return a.api.SendEmailVerificationCode(ctx, email)
}

func (a *authService) VerifyEmailCode(ctx context.Context, email, code string) (string, error) {
	return a.api.VerifyEmailCode(ctx, email, code)
}

// Register creates the account and logs the new user straight in: the
// returned session is already persisted.
func (a *authService) Register(ctx context.Context, req api.RegisterRequest) (*models.Session, error) {
	res, err := a.api.Register(ctx, req)
	if err != nil {
		return nil, err
	}

	sess, err := a.persistSession(ctx, res)
	if err != nil {
		return nil, err
	}

	a.log.Info(ctx, "registered", "user", sess.Username())
	return sess, nil
}

// ChangePassword needs both the user id and the bearer token from the
// current session; it returns common.ErrNotAuthenticated when no session or
// no profile is stored.
func (a *authService) ChangePassword(ctx context.Context, oldPassword, newPassword string) (string, error) {
	sess, err := a.store.Load(ctx)
	if err != nil {
		return "", err
	}
	if sess == nil || sess.User == nil {
		return "", common.ErrNotAuthenticated
	}

	return a.api.ChangePassword(ctx, sess.AccessToken, sess.User.ID, oldPassword, newPassword)
}

func (a *authService) LoginWithGitHub(ctx context.Context, identity api.GitHubIdentity) (*models.Session, error) {
	res, err := a.api.GitHubOAuth(ctx, identity)
	if err != nil {
		return nil, err
	}

	sess, err := a.persistSession(ctx, res)
	if err != nil {
		return nil, err
	}

	a.log.Info(ctx, "logged in via github", "user", sess.Username())
	return sess, nil
}

// CurrentUser returns the stored profile. The identity service publishes no
// profile endpoint, so the persisted copy is the source of truth here.
func (a *authService) CurrentUser(ctx context.Context) (*models.UserProfile, error) {
	sess, err := a.store.Load(ctx)
	if err != nil {
		return nil, err
	}
	if sess == nil {
		return nil, common.ErrNotAuthenticated
	}
	if sess.User == nil {
		return nil, common.ErrNotFound
	}
	return sess.User, nil
}

// Logout clears the persisted session and any remembered credentials. It is
// local-only: the identity service publishes no logout endpoint, and logout
// must never block on the network.
func (a *authService) Logout(ctx context.Context) error {
	if err := a.store.Clear(ctx); err != nil {
		return err
	}
	if err := a.ForgetCredentials(ctx); err != nil {
		a.log.Warn(ctx, "failed to forget remembered credentials", "error", err)
	}
	a.log.Info(ctx, "logged out")
	return nil
}
