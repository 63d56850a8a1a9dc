package services

import (
	"context"
	"fmt"

	"github.com/whaletown/whaletown/internal/client/repositories/localdata"
	"github.com/whaletown/whaletown/internal/common"
	"github.com/whaletown/whaletown/internal/cryptox"
	"github.com/whaletown/whaletown/internal/dbx"
)

// Remembered-credential keys in the local store. The credentials are sealed
// with AES-GCM under a key derived from a per-install random secret; secret
// and salt live beside the ciphertext, so this shields the database file from
// casual reads, nothing more.
const (
	keyRememberSecret     = "remember.secret"
	keyRememberSalt       = "remember.salt"
	keyRememberNonce      = "remember.nonce"
	keyRememberCiphertext = "remember.credentials"
	keyRememberAutoLogin  = "remember.auto_login"
)

// RememberedCredentials is a locally stored copy of the last login, used to
// prefill the login screen and, when AutoLogin is set, to log in on startup.
type RememberedCredentials struct {
	Identifier string `json:"identifier"`
	Password   string `json:"password"`
	AutoLogin  bool   `json:"-"`
}

// RememberCredentials seals and stores the given credentials, replacing any
// previously remembered ones. All keys are written in one transaction.
func (a *authService) RememberCredentials(ctx context.Context, identifier, password string, autoLogin bool) error {
	secret := common.GenerateRandByteArray(32)
	salt := common.GenerateRandByteArray(16)
	key := cryptox.DeriveLocalKey(secret, salt)

	ciphertext, nonce, err := cryptox.SealValue(
		RememberedCredentials{Identifier: identifier, Password: password}, key)
	if err != nil {
		return fmt.Errorf("failed to seal credentials: %w", err)
	}

	auto := []byte("0")
	if autoLogin {
		auto = []byte("1")
	}

	return dbx.WithTx(ctx, a.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := localdata.NewSQLiteRepository(tx)
		for _, kv := range []struct {
			key   string
			value []byte
		}{
			{keyRememberSecret, secret},
			{keyRememberSalt, salt},
			{keyRememberNonce, nonce},
			{keyRememberCiphertext, ciphertext},
			{keyRememberAutoLogin, auto},
		} {
			if err := repo.Set(ctx, kv.key, kv.value); err != nil {
				return err
			}
		}
		return nil
	})
}

// RememberedCredentials returns the stored credentials, or (nil, nil) when
// none are remembered. Credentials that fail to unseal (e.g. a tampered or
// half-written store) are treated as absent rather than an error.
func (a *authService) RememberedCredentials(ctx context.Context) (*RememberedCredentials, error) {
	repo := localdata.NewSQLiteRepository(a.db)

	ciphertext, err := repo.Get(ctx, keyRememberCiphertext)
	if err != nil {
		return nil, err
	}
	if len(ciphertext) == 0 {
		return nil, nil
	}

	secret, err := repo.Get(ctx, keyRememberSecret)
	if err != nil {
		return nil, err
	}
	salt, err := repo.Get(ctx, keyRememberSalt)
	if err != nil {
		return nil, err
	}
	nonce, err := repo.Get(ctx, keyRememberNonce)
	if err != nil {
		return nil, err
	}

	var creds RememberedCredentials
	key := cryptox.DeriveLocalKey(secret, salt)
	if err := cryptox.OpenValue(ciphertext, nonce, key, &creds); err != nil {
		a.log.Warn(ctx, "remembered credentials unreadable, dropping them", "error", err)
		return nil, a.ForgetCredentials(ctx)
	}

	if auto, err := repo.Get(ctx, keyRememberAutoLogin); err == nil && string(auto) == "1" {
		creds.AutoLogin = true
	}
	return &creds, nil
}

// ForgetCredentials removes all remembered-credential keys.
func (a *authService) ForgetCredentials(ctx context.Context) error {
	return dbx.WithTx(ctx, a.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := localdata.NewSQLiteRepository(tx)
		for _, key := range []string{
			keyRememberSecret, keyRememberSalt, keyRememberNonce,
			keyRememberCiphertext, keyRememberAutoLogin,
		} {
			if err := repo.Delete(ctx, key); err != nil {
				return err
			}
		}
		return nil
	})
}
