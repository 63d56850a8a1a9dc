package session

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/whaletown/whaletown/internal/client/models"
	"github.com/whaletown/whaletown/internal/client/repositories/localdata"
	"github.com/whaletown/whaletown/internal/dbx"
)

// SQLiteStore keeps the session in the client-local sqlite database.
type SQLiteStore struct {
	db *sql.DB
}

func NewSQLiteStore(db *sql.DB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

var errNoAccessToken = errors.New("session has no access token")

// Save persists the access token, refresh token and profile in a single
// transaction. A session without an access token is rejected: persisting it
// would violate the token-presence invariant Load relies on.
func (s *SQLiteStore) Save(ctx context.Context, sess *models.Session) error {
	if sess == nil || sess.AccessToken == "" {
		return errNoAccessToken
	}

	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := localdata.NewSQLiteRepository(tx)

		if err := repo.Set(ctx, keyAccessToken, []byte(sess.AccessToken)); err != nil {
			return err
		}

		if sess.RefreshToken != "" {
			if err := repo.Set(ctx, keyRefreshToken, []byte(sess.RefreshToken)); err != nil {
				return err
			}
		} else if err := repo.Delete(ctx, keyRefreshToken); err != nil {
			return err
		}

		if sess.User != nil {
			profile, err := json.Marshal(sess.User)
			if err != nil {
				return fmt.Errorf("failed to encode user profile: %w", err)
			}
			return repo.Set(ctx, keyUserProfile, profile)
		}
		return repo.Delete(ctx, keyUserProfile)
	})
}

// Load reconstructs the session from the persisted fields. If the access
// token key is missing the session is absent, regardless of whether a stale
// profile blob remains. A corrupt profile blob degrades to a session without
// a profile rather than an error.
func (s *SQLiteStore) Load(ctx context.Context) (*models.Session, error) {
	repo := localdata.NewSQLiteRepository(s.db)

	token, err := repo.Get(ctx, keyAccessToken)
	if err != nil {
		return nil, err
	}
	if len(token) == 0 {
		return nil, nil
	}

	sess := &models.Session{AccessToken: string(token)}

	if refresh, err := repo.Get(ctx, keyRefreshToken); err == nil && len(refresh) > 0 {
		sess.RefreshToken = string(refresh)
	}

	if blob, err := repo.Get(ctx, keyUserProfile); err == nil && len(blob) > 0 {
		var user models.UserProfile
		if err := json.Unmarshal(blob, &user); err == nil {
			sess.User = &user
		}
	}

	return sess, nil
}

// Clear removes all session keys in one transaction.
func (s *SQLiteStore) Clear(ctx context.Context) error {
	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := localdata.NewSQLiteRepository(tx)
		for _, key := range []string{keyAccessToken, keyRefreshToken, keyUserProfile} {
			if err := repo.Delete(ctx, key); err != nil {
				return err
			}
		}
		return nil
	})
}
