package session

import (
	"context"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/whaletown/whaletown/internal/client/models"
)

// Gate decides, at application start, whether the shell renders the
// authenticated or unauthenticated experience. It only reads the store.
type Gate struct {
	store Store
}

func NewGate(store Store) *Gate {
	return &Gate{store: store}
}

// IsAuthenticated is true iff a session is stored. Profile and refresh-token
// presence do not factor in, and neither does token expiry: an expired token
// is the service's problem to reject, not the gate's.
func (g *Gate) IsAuthenticated(ctx context.Context) (bool, error) {
	s, err := g.store.Load(ctx)
	if err != nil {
		return false, err
	}
	return s != nil, nil
}

// Current returns the stored session, or nil when absent.
func (g *Gate) Current(ctx context.Context) (*models.Session, error) {
	return g.store.Load(ctx)
}

// TokenExpiresAt reports the exp claim of an access token without verifying
// its signature (the client has no key material to verify with). The second
// result is false for opaque tokens or tokens without an exp claim; such
// tokens are simply not inspectable, which is fine.
func TokenExpiresAt(token string) (time.Time, bool) {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return time.Time{}, false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}, false
	}
	return exp.Time, true
}
