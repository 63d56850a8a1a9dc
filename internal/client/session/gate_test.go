package session

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/whaletown/whaletown/internal/client/models"
)

func TestGate_IsAuthenticatedIffTokenPresent(t *testing.T) {
	store, _ := setupStore(t, "gate-auth")
	gate := NewGate(store)
	ctx := context.Background()

	ok, err := gate.IsAuthenticated(ctx)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, store.Save(ctx, &models.Session{AccessToken: "tok-1"}))

	ok, err = gate.IsAuthenticated(ctx)
	require.NoError(t, err)
	assert.True(t, ok)

	require.NoError(t, store.Clear(ctx))

	ok, err = gate.IsAuthenticated(ctx)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestGate_CurrentReturnsStoredSession(t *testing.T) {
	store, _ := setupStore(t, "gate-current")
	gate := NewGate(store)
	ctx := context.Background()

	got, err := gate.Current(ctx)
	require.NoError(t, err)
	assert.Nil(t, got)

	require.NoError(t, store.Save(ctx, &models.Session{
		AccessToken: "tok-1",
		User:        &models.UserProfile{ID: "u1", Username: "alice"},
	}))

	got, err = gate.Current(ctx)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "alice", got.Username())
}

func signedToken(t *testing.T, exp time.Time) string {
	t.Helper()
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "u1",
		"exp": exp.Unix(),
	})
	s, err := tok.SignedString([]byte("test-key"))
	require.NoError(t, err)
	return s
}

func TestTokenExpiresAt_JWT(t *testing.T) {
	exp := time.Now().Add(time.Hour).Truncate(time.Second)

	got, ok := TokenExpiresAt(signedToken(t, exp))
	require.True(t, ok)
	assert.True(t, got.Equal(exp))
}

func TestTokenExpiresAt_OpaqueToken(t *testing.T) {
	_, ok := TokenExpiresAt("not-a-jwt")
	assert.False(t, ok)
}

func TestTokenExpiresAt_NoExpClaim(t *testing.T) {
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"sub": "u1"})
	s, err := tok.SignedString([]byte("test-key"))
	require.NoError(t, err)

	_, ok := TokenExpiresAt(s)
	assert.False(t, ok)
}
