// Package api implements the wire contract with the Whaletown identity
// service: JSON request/response bodies over HTTPS, one operation per
// endpoint, with uniform timeout and error normalization.
//
// Operations are stateless and single-shot; they never retry and never let a
// transport fault escape as anything other than an *Error of KindNetwork.
package api

import (
	"context"

	"github.com/whaletown/whaletown/internal/client/models"
)

// LoginResult is the payload of a successful login, registration, or OAuth
// exchange.
type LoginResult struct {
	User         *models.UserProfile
	AccessToken  string
	RefreshToken string
	IsNewUser    bool
	Message      string
}

// RegisterRequest carries the registration fields. Email, verification code
// and phone are optional on the wire; validation of the mandatory set happens
// upstream in the registration flow.
type RegisterRequest struct {
	Username              string `json:"username"`
	Password              string `json:"password"`
	Nickname              string `json:"nickname"`
	Email                 string `json:"email,omitempty"`
	EmailVerificationCode string `json:"email_verification_code,omitempty"`
	Phone                 string `json:"phone,omitempty"`
}

// GitHubIdentity is the provider payload for the GitHub OAuth exchange.
type GitHubIdentity struct {
	GitHubID  string `json:"github_id"`
	Username  string `json:"username"`
	Nickname  string `json:"nickname"`
	Email     string `json:"email,omitempty"`
	AvatarURL string `json:"avatar_url,omitempty"`
}

// Client is the transport surface of the identity service. Implementations
// must honor context cancellation and classify every failure per errors.go.
type Client interface {
	Login(ctx context.Context, identifier, password string) (*LoginResult, error)
	SendPasswordResetCode(ctx context.Context, identifier string) (string, error)
	ResetPassword(ctx context.Context, identifier, code, newPassword string) (string, error)
	SendEmailVerificationCode(ctx context.Context, email string) (string, error)
	VerifyEmailCode(ctx context.Context, email, code string) (string, error)
	Register(ctx context.Context, req RegisterRequest) (*LoginResult, error)
	ChangePassword(ctx context.Context, accessToken, userID, oldPassword, newPassword string) (string, error)
	GitHubOAuth(ctx context.Context, identity GitHubIdentity) (*LoginResult, error)
}
