package flows

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/whaletown/whaletown/internal/client/api"
	"github.com/whaletown/whaletown/internal/client/models"
	"github.com/whaletown/whaletown/internal/client/services"
	"github.com/whaletown/whaletown/internal/client/validate"
)

// resendCooldownSeconds is how long the send-code action stays disabled
// after a verification code was sent.
const resendCooldownSeconds = 60

// RegisterForm is the field set of the registration screen. Phone is the
// only optional field.
type RegisterForm struct {
	Username  string
	Password  string
	Nickname  string
	Email     string
	EmailCode string
	Phone     string
}

// RegisterFlow drives the registration screen: one linear state plus the
// resend cooldown running beside it. Close must be called when the screen is
// discarded so the cooldown ticker does not outlive it.
type RegisterFlow struct {
	svc services.AuthService

	// tick is the countdown unit, one second in production. Tests shrink it.
	tick time.Duration

	mu        sync.Mutex
	loading   bool
	lastErr   string
	countdown int
	stop      chan struct{}
	session   *models.Session
}

func NewRegisterFlow(svc services.AuthService) *RegisterFlow {
	return &RegisterFlow{svc: svc, tick: time.Second}
}

func (f *RegisterFlow) begin() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.loading {
		return false
	}
	f.loading = true
	f.lastErr = ""
	return true
}

func (f *RegisterFlow) end() {
	f.mu.Lock()
	f.loading = false
	f.mu.Unlock()
}

func (f *RegisterFlow) fail(err error) error {
	f.mu.Lock()
	f.lastErr = api.Message(err)
	f.mu.Unlock()
	return err
}

// SendEmailCode requests a verification code for the given email and starts
// the resend cooldown. It is a no-op while the cooldown is running.
func (f *RegisterFlow) SendEmailCode(ctx context.Context, email string) (string, error) {
	if msg := validate.Email(email); msg != "" {
		return "", f.fail(api.Validation(msg))
	}

	f.mu.Lock()
	if f.countdown > 0 {
		f.mu.Unlock()
		return "", nil
	}
	f.mu.Unlock()

	if !f.begin() {
		return "", nil
	}
	defer f.end()

	msg, err := f.svc.SendEmailVerificationCode(ctx, email)
	if err != nil {
		return "", f.fail(err)
	}

	f.startCountdown(resendCooldownSeconds)
	return msg, nil
}

// Submit validates the whole form locally and registers. Validation
// failures never reach the network; the first failing field wins.
func (f *RegisterFlow) Submit(ctx context.Context, form RegisterForm) error {
	if msg := f.validateForm(form); msg != "" {
		return f.fail(api.Validation(msg))
	}

	if !f.begin() {
		return nil
	}
	defer f.end()

	sess, err := f.svc.Register(ctx, api.RegisterRequest{
		Username:              form.Username,
		Password:              form.Password,
		Nickname:              form.Nickname,
		Email:                 form.Email,
		EmailVerificationCode: form.EmailCode,
		Phone:                 form.Phone,
	})
	if err != nil {
		return f.fail(err)
	}

	f.mu.Lock()
	f.session = sess
	f.mu.Unlock()
	return nil
}

func (f *RegisterFlow) validateForm(form RegisterForm) string {
	if msg := validate.Username(form.Username); msg != "" {
		return msg
	}
	if msg := validate.Password(form.Password); msg != "" {
		return msg
	}
	if msg := validate.Nickname(form.Nickname); msg != "" {
		return msg
	}
	if msg := validate.Email(form.Email); msg != "" {
		return msg
	}
	if msg := validate.EmailCode(form.EmailCode); msg != "" {
		return msg
	}
	if strings.TrimSpace(form.Phone) != "" {
		if msg := validate.Phone(form.Phone); msg != "" {
			return msg
		}
	}
	return ""
}

// startCountdown arms the cooldown at n units and decrements it once per
// tick until it reaches zero or the flow is closed.
func (f *RegisterFlow) startCountdown(n int) {
	f.mu.Lock()
	if f.stop != nil {
		close(f.stop)
	}
	f.countdown = n
	stop := make(chan struct{})
	f.stop = stop
	f.mu.Unlock()

	go func() {
		t := time.NewTicker(f.tick)
		defer t.Stop()
		for {
			select {
			case <-stop:
				return
			case <-t.C:
				f.mu.Lock()
				f.countdown--
				done := f.countdown <= 0
				if done {
					f.countdown = 0
					if f.stop == stop {
						f.stop = nil
					}
				}
				f.mu.Unlock()
				if done {
					return
				}
			}
		}
	}()
}

// Close cancels the cooldown ticker. Safe to call more than once.
func (f *RegisterFlow) Close() {
	f.mu.Lock()
	if f.stop != nil {
		close(f.stop)
		f.stop = nil
	}
	f.mu.Unlock()
}

// Countdown reports the remaining cooldown units, zero when idle.
func (f *RegisterFlow) Countdown() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.countdown
}

// CanSendCode is true when the send-code action is enabled.
func (f *RegisterFlow) CanSendCode() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.countdown == 0 && !f.loading
}

func (f *RegisterFlow) Loading() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.loading
}

func (f *RegisterFlow) LastError() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.lastErr
}

// Session returns the session established by a successful Submit, nil
// before that.
func (f *RegisterFlow) Session() *models.Session {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.session
}
