// Package session persists the current authentication state across process
// restarts and answers the "is anyone logged in" question at startup.
package session

import (
	"context"

	"github.com/whaletown/whaletown/internal/client/models"
)

// Storage keys in the local key-value store. A session exists iff the
// access-token key is present; the other two are best-effort companions.
const (
	keyAccessToken  = "auth.access_token"
	keyRefreshToken = "auth.refresh_token"
	keyUserProfile  = "auth.user_profile"
)

// Store is the session persistence contract.
//
// Save writes all session fields as one logical transaction. Load returns
// (nil, nil) when no session is stored; a stale profile without an access
// token still counts as absent. Clear removes all session keys and is safe
// to call when nothing is stored.
type Store interface {
	Save(ctx context.Context, s *models.Session) error
	Load(ctx context.Context) (*models.Session, error)
	Clear(ctx context.Context) error
}
