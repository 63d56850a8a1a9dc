package flows

import (
	"context"
	"errors"
	"sync"

	"github.com/whaletown/whaletown/internal/client/api"
	"github.com/whaletown/whaletown/internal/client/services"
	"github.com/whaletown/whaletown/internal/common"
)

// ChangePasswordFlow drives the change-password screen for a logged-in user.
type ChangePasswordFlow struct {
	svc services.AuthService

	mu      sync.Mutex
	loading bool
	lastErr string
}

func NewChangePasswordFlow(svc services.AuthService) *ChangePasswordFlow {
	return &ChangePasswordFlow{svc: svc}
}

func (f *ChangePasswordFlow) fail(err error) error {
	f.mu.Lock()
	f.lastErr = api.Message(err)
	f.mu.Unlock()
	return err
}

// Submit validates the three password fields and calls the service. The
// returned message is the service's confirmation, shown as-is.
func (f *ChangePasswordFlow) Submit(ctx context.Context, oldPassword, newPassword, confirm string) (string, error) {
	if oldPassword == "" {
		return "", f.fail(api.Validation("please enter your current password"))
	}
	if newPassword == "" {
		return "", f.fail(api.Validation("please enter a new password"))
	}
	if len(newPassword) < 6 {
		return "", f.fail(api.Validation("password must be at least 6 characters"))
	}
	if confirm == "" {
		return "", f.fail(api.Validation("please confirm the new password"))
	}
	if confirm != newPassword {
		return "", f.fail(api.Validation("passwords do not match"))
	}
	if newPassword == oldPassword {
		return "", f.fail(api.Validation("new password must differ from the old one"))
	}

	f.mu.Lock()
	if f.loading {
		f.mu.Unlock()
		return "", nil
	}
	f.loading = true
	f.lastErr = ""
	f.mu.Unlock()
	defer func() {
		f.mu.Lock()
		f.loading = false
		f.mu.Unlock()
	}()

	msg, err := f.svc.ChangePassword(ctx, oldPassword, newPassword)
	if err != nil {
		if errors.Is(err, common.ErrNotAuthenticated) {
			return "", f.fail(api.Validation("please log in again"))
		}
		return "", f.fail(err)
	}
	return msg, nil
}

func (f *ChangePasswordFlow) Loading() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.loading
}

func (f *ChangePasswordFlow) LastError() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.lastErr
}
