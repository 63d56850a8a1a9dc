package flows

import (
	"context"

	"github.com/whaletown/whaletown/internal/client/api"
	"github.com/whaletown/whaletown/internal/client/models"
	"github.com/whaletown/whaletown/internal/client/services"
)

// fakeService implements services.AuthService for flow tests.
type fakeService struct {
	LoginRet *models.Session
	LoginErr error

	SendResetMsg string
	SendResetErr error

	ResetMsg string
	ResetErr error

	SendEmailMsg string
	SendEmailErr error

	RegisterRet *models.Session
	RegisterErr error

	ChangeMsg string
	ChangeErr error

	Calls        int
	LastRegister api.RegisterRequest
}

var _ services.AuthService = (*fakeService)(nil)

func (f *fakeService) Login(ctx context.Context, identifier, password string) (*models.Session, bool, error) {
	f.Calls++
	return f.LoginRet, false, f.LoginErr
}

func (f *fakeService) SendPasswordResetCode(ctx context.Context, identifier string) (string, error) {
	f.Calls++
	return f.SendResetMsg, f.SendResetErr
}

func (f *fakeService) ResetPassword(ctx context.Context, identifier, code, newPassword string) (string, error) {
	f.Calls++
	return f.ResetMsg, f.ResetErr
}

func (f *fakeService) SendEmailVerificationCode(ctx context.Context, email string) (string, error) {
	f.Calls++
	return f.SendEmailMsg, f.SendEmailErr
}

func (f *fakeService) VerifyEmailCode(ctx context.Context, email, code string) (string, error) {
	f.Calls++
	return "", nil
}

func (f *fakeService) Register(ctx context.Context, req api.RegisterRequest) (*models.Session, error) {
	f.Calls++
	f.LastRegister = req
	return f.RegisterRet, f.RegisterErr
}

func (f *fakeService) ChangePassword(ctx context.Context, oldPassword, newPassword string) (string, error) {
	f.Calls++
	return f.ChangeMsg, f.ChangeErr
}

func (f *fakeService) LoginWithGitHub(ctx context.Context, identity api.GitHubIdentity) (*models.Session, error) {
	f.Calls++
	return nil, nil
}

func (f *fakeService) CurrentUser(ctx context.Context) (*models.UserProfile, error) {
	return nil, nil
}

func (f *fakeService) Logout(ctx context.Context) error { return nil }

func (f *fakeService) RememberCredentials(ctx context.Context, identifier, password string, autoLogin bool) error {
	return nil
}

func (f *fakeService) RememberedCredentials(ctx context.Context) (*services.RememberedCredentials, error) {
	return nil, nil
}

func (f *fakeService) ForgetCredentials(ctx context.Context) error { return nil }
