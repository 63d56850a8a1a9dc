package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/whaletown/whaletown/internal/client/models"
	"github.com/whaletown/whaletown/internal/logging"
)

// HTTPClient is the production Client over net/http.
type HTTPClient struct {
	baseURL string
	http    *http.Client
	timeout time.Duration
	log     logging.Logger
}

func NewHTTPClient(baseURL string, timeout time.Duration, log logging.Logger) *HTTPClient {
	return &HTTPClient{
		baseURL: baseURL,
		http:    &http.Client{},
		timeout: timeout,
		log:     log.With("component", "api"),
	}
}

// envelope is the generic result shape every endpoint responds with:
// {success, message, data?, error_code?}.
type envelope struct {
	Success   bool            `json:"success"`
	Message   string          `json:"message"`
	Data      json.RawMessage `json:"data,omitempty"`
	ErrorCode string          `json:"error_code,omitempty"`
}

// loginData is the wire form of a login/register/oauth success payload.
type loginData struct {
	User         *models.UserProfile `json:"user"`
	AccessToken  string              `json:"access_token"`
	RefreshToken string              `json:"refresh_token,omitempty"`
	IsNewUser    bool                `json:"is_new_user,omitempty"`
	Message      string              `json:"message,omitempty"`
}

// do performs one JSON exchange and normalizes the outcome.
//
// Transport failures and undecodable responses come back as Network errors;
// a decoded response with success=false (or a non-2xx status) comes back as a
// Business error carrying the service message verbatim, falling back to the
// operation-specific message when the service sent none. The request is
// bounded by the configured timeout regardless of the caller's context.
func (c *HTTPClient) do(ctx context.Context, method, path string, body any, bearer, fallback string) (*envelope, error) {
	var payload io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			c.log.Error(ctx, "request encode failed", "path", path, "error", err)
			return nil, Network()
		}
		payload = bytes.NewReader(b)
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, payload)
	if err != nil {
		c.log.Error(ctx, "request build failed", "path", path, "error", err)
		return nil, Network()
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-Id", uuid.NewString())
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Warn(ctx, "request failed", "path", path, "error", err)
		return nil, Network()
	}
	defer resp.Body.Close()

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		c.log.Warn(ctx, "malformed response", "path", path, "status", resp.StatusCode, "error", err)
		return nil, Network()
	}

	if resp.StatusCode >= 200 && resp.StatusCode < 300 && env.Success {
		return &env, nil
	}

	msg := env.Message
	if msg == "" {
		msg = fallback
	}
	return nil, Business(msg, env.ErrorCode)
}

// decodeLoginData parses a login-shaped data payload. A success response
// without an access token is treated as malformed: the caller must be able
// to persist a session immediately after.
func (c *HTTPClient) decodeLoginData(ctx context.Context, path string, env *envelope) (*LoginResult, error) {
	var data loginData
	if err := json.Unmarshal(env.Data, &data); err != nil {
		c.log.Warn(ctx, "malformed login payload", "path", path, "error", err)
		return nil, Network()
	}
	if data.AccessToken == "" {
		c.log.Warn(ctx, "login payload without access token", "path", path)
		return nil, Network()
	}

	msg := data.Message
	if msg == "" {
		msg = env.Message
	}
	return &LoginResult{
		User:         data.User,
		AccessToken:  data.AccessToken,
		RefreshToken: data.RefreshToken,
		IsNewUser:    data.IsNewUser,
		Message:      msg,
	}, nil
}

func (c *HTTPClient) Login(ctx context.Context, identifier, password string) (*LoginResult, error) {
	body := struct {
		Identifier string `json:"identifier"`
		Password   string `json:"password"`
	}{identifier, password}

	env, err := c.do(ctx, http.MethodPost, "/auth/login", body, "", "login failed")
	if err != nil {
		return nil, err
	}
	return c.decodeLoginData(ctx, "/auth/login", env)
}

func (c *HTTPClient) SendPasswordResetCode(ctx context.Context, identifier string) (string, error) {
	body := struct {
		Identifier string `json:"identifier"`
	}{identifier}

	env, err := c.do(ctx, http.MethodPost, "/auth/forgot-password", body, "", "failed to send code")
	if err != nil {
		return "", err
	}
	return env.Message, nil
}

func (c *HTTPClient) ResetPassword(ctx context.Context, identifier, code, newPassword string) (string, error) {
	body := struct {
		Identifier       string `json:"identifier"`
		VerificationCode string `json:"verification_code"`
		NewPassword      string `json:"new_password"`
	}{identifier, code, newPassword}

	env, err := c.do(ctx, http.MethodPost, "/auth/reset-password", body, "", "password reset failed")
	if err != nil {
		return "", err
	}
	return env.Message, nil
}

func (c *HTTPClient) SendEmailVerificationCode(ctx context.Context, email string) (string, error) {
	body := struct {
		Email string `json:"email"`
	}{email}

	env, err := c.do(ctx, http.MethodPost, "/auth/send-email-verification", body, "", "failed to send verification code")
	if err != nil {
		return "", err
	}
	return env.Message, nil
}

func (c *HTTPClient) VerifyEmailCode(ctx context.Context, email, code string) (string, error) {
	body := struct {
		Email            string `json:"email"`
		VerificationCode string `json:"verification_code"`
	}{email, code}

	env, err := c.do(ctx, http.MethodPost, "/auth/verify-email", body, "", "verification failed")
	if err != nil {
		return "", err
	}
	return env.Message, nil
}

func (c *HTTPClient) Register(ctx context.Context, req RegisterRequest) (*LoginResult, error) {
	env, err := c.do(ctx, http.MethodPost, "/auth/register", req, "", "registration failed")
	if err != nil {
		return nil, err
	}
	return c.decodeLoginData(ctx, "/auth/register", env)
}

func (c *HTTPClient) ChangePassword(ctx context.Context, accessToken, userID, oldPassword, newPassword string) (string, error) {
	body := struct {
		UserID      string `json:"user_id"`
		OldPassword string `json:"old_password"`
		NewPassword string `json:"new_password"`
	}{userID, oldPassword, newPassword}

	env, err := c.do(ctx, http.MethodPut, "/auth/change-password", body, accessToken, "password change failed")
	if err != nil {
		return "", err
	}
	return env.Message, nil
}

func (c *HTTPClient) GitHubOAuth(ctx context.Context, identity GitHubIdentity) (*LoginResult, error) {
	env, err := c.do(ctx, http.MethodPost, "/auth/github", identity, "", "GitHub login failed")
	if err != nil {
		return nil, err
	}
	return c.decodeLoginData(ctx, "/auth/github", env)
}
