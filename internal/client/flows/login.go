// Package flows holds the per-screen state machines that sequence
// authentication calls: which mode a screen is in, whether a call is in
// flight, the last error to show, and the resend cooldown. A flow is created
// when its screen is entered and discarded when the user leaves or
// authentication succeeds; it is never persisted.
package flows

import (
	"context"
	"strings"
	"sync"

	"github.com/whaletown/whaletown/internal/client/api"
	"github.com/whaletown/whaletown/internal/client/models"
	"github.com/whaletown/whaletown/internal/client/services"
)

// Mode is the login screen's current tab.
type Mode int

const (
	ModePassword Mode = iota
	ModeCode
	ModeReset
)

// codeLoginUnavailableMessage mirrors the service roadmap: code-based login
// is a selectable tab whose submit is deliberately not implemented yet.
const codeLoginUnavailableMessage = "code login is not available yet, please log in with your password"

// LoginFlow drives the login screen. Transitions between modes are
// user-triggered only; a submit either terminates the flow (success) or
// stays in place with the error recorded.
type LoginFlow struct {
	svc services.AuthService

	mu       sync.Mutex
	mode     Mode
	loading  bool
	lastErr  string
	codeSent bool
	session  *models.Session
}

func NewLoginFlow(svc services.AuthService) *LoginFlow {
	return &LoginFlow{svc: svc, mode: ModePassword}
}

// begin acquires the loading latch. It returns false when a call is already
// in flight, in which case the caller must drop the action.
func (f *LoginFlow) begin() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.loading {
		return false
	}
	f.loading = true
	f.lastErr = ""
	return true
}

func (f *LoginFlow) end() {
	f.mu.Lock()
	f.loading = false
	f.mu.Unlock()
}

func (f *LoginFlow) fail(err error) error {
	f.mu.Lock()
	f.lastErr = api.Message(err)
	f.mu.Unlock()
	return err
}

// SwitchMode moves between the password, code and reset tabs. Leaving the
// reset tab abandons its two-step progress, so the code-sent latch clears.
func (f *LoginFlow) SwitchMode(m Mode) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.loading || f.mode == m {
		return
	}
	if f.mode == ModeReset {
		f.codeSent = false
	}
	f.mode = m
	f.lastErr = ""
}

// SubmitPassword performs a password login. On success the flow is done and
// Session returns the established session.
func (f *LoginFlow) SubmitPassword(ctx context.Context, identifier, password string) error {
	if strings.TrimSpace(identifier) == "" {
		return f.fail(api.Validation("please enter a username, email or phone"))
	}
	if password == "" {
		return f.fail(api.Validation("please enter a password"))
	}

	if !f.begin() {
		return nil
	}
	defer f.end()

	sess, _, err := f.svc.Login(ctx, identifier, password)
	if err != nil {
		return f.fail(err)
	}

	f.mu.Lock()
	f.session = sess
	f.mu.Unlock()
	return nil
}

// SubmitCode is the code-login submit. The path is deliberately not
// available; the result is informational, not a fault.
func (f *LoginFlow) SubmitCode(ctx context.Context, identifier, code string) error {
	return f.fail(api.NotAvailable(codeLoginUnavailableMessage))
}

// RequestResetCode asks the service to send a password-reset code. The
// code-sent latch keeps it from being requested again while the first code
// is outstanding; SwitchMode away and back resets the latch.
func (f *LoginFlow) RequestResetCode(ctx context.Context, identifier string) (string, error) {
	if strings.TrimSpace(identifier) == "" {
		return "", f.fail(api.Validation("please enter a username, email or phone"))
	}

	f.mu.Lock()
	if f.codeSent {
		f.mu.Unlock()
		return "", nil
	}
	f.mu.Unlock()

	if !f.begin() {
		return "", nil
	}
	defer f.end()

	msg, err := f.svc.SendPasswordResetCode(ctx, identifier)
	if err != nil {
		return "", f.fail(err)
	}

	f.mu.Lock()
	f.codeSent = true
	f.mu.Unlock()
	return msg, nil
}

// SubmitReset completes the password reset. On success the flow returns to
// the password tab with the reset progress cleared; the user logs in with
// the new password.
func (f *LoginFlow) SubmitReset(ctx context.Context, identifier, code, newPassword string) (string, error) {
	if strings.TrimSpace(identifier) == "" {
		return "", f.fail(api.Validation("please enter a username, email or phone"))
	}
	if strings.TrimSpace(code) == "" {
		return "", f.fail(api.Validation("please enter the verification code"))
	}
	if newPassword == "" {
		return "", f.fail(api.Validation("please enter a new password"))
	}
	if len(newPassword) < 6 {
		return "", f.fail(api.Validation("password must be at least 6 characters"))
	}

	if !f.begin() {
		return "", nil
	}
	defer f.end()

	msg, err := f.svc.ResetPassword(ctx, identifier, code, newPassword)
	if err != nil {
		return "", f.fail(err)
	}

	f.mu.Lock()
	f.mode = ModePassword
	f.codeSent = false
	f.mu.Unlock()
	return msg, nil
}

func (f *LoginFlow) Mode() Mode {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.mode
}

func (f *LoginFlow) Loading() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.loading
}

func (f *LoginFlow) LastError() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.lastErr
}

func (f *LoginFlow) CodeSent() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.codeSent
}

// Session returns the established session once SubmitPassword succeeded, nil
// before that. A non-nil result means the flow is done.
func (f *LoginFlow) Session() *models.Session {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.session
}
