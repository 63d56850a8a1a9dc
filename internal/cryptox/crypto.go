// Package cryptox implements the local crypto primitives used by the client:
// key derivation for the on-disk secret store and AES-GCM sealing of small
// JSON values (e.g. remembered credentials).
//
// This protects data at rest against casual inspection of the local database;
// it is not a defense against an attacker who controls the machine, since the
// key material lives alongside the ciphertext.
package cryptox

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/json"

	"golang.org/x/crypto/argon2"
)

// DeriveLocalKey derives a 32-byte AES key from a local secret and salt
// using Argon2id.
func DeriveLocalKey(secret []byte, salt []byte) []byte {
	return argon2.IDKey(secret, salt, 1, 64*1024, 4, 32)
}

// SealValue serializes v to JSON and encrypts it with AES-GCM under key.
// A fresh random 12-byte nonce is generated per call and returned alongside
// the ciphertext. The key must be 16, 24, or 32 bytes long.
func SealValue(v any, key []byte) (ciphertext, nonce []byte, err error) {
	plaintext, err := json.Marshal(v)
	if err != nil {
		return nil, nil, err
	}

	nonce = make([]byte, 12)
	if _, err := rand.Read(nonce); err != nil {
		return nil, nil, err
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, nil, err
	}
	aesgcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, nil, err
	}

	ciphertext = aesgcm.Seal(nil, nonce, plaintext, nil)
	return ciphertext, nonce, nil
}

// OpenValue decrypts ciphertext produced by SealValue and unmarshals the
// resulting JSON into v. The same key and nonce used for sealing must be
// supplied; any tampering fails authentication.
func OpenValue(ciphertext, nonce, key []byte, v any) error {
	block, err := aes.NewCipher(key)
	if err != nil {
		return err
	}
	aesgcm, err := cipher.NewGCM(block)
	if err != nil {
		return err
	}

	plaintext, err := aesgcm.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return err
	}

	return json.Unmarshal(plaintext, v)
}
