package cryptox

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type payload struct {
	Identifier string `json:"identifier"`
	Password   string `json:"password"`
}

func TestDeriveLocalKey_DeterministicPerSalt(t *testing.T) {
	secret := []byte("secret")

	a := DeriveLocalKey(secret, []byte("salt-1"))
	b := DeriveLocalKey(secret, []byte("salt-1"))
	c := DeriveLocalKey(secret, []byte("salt-2"))

	require.Len(t, a, 32)
	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
}

func TestSealOpenValue_RoundTrip(t *testing.T) {
	key := DeriveLocalKey([]byte("secret"), []byte("salt"))
	in := payload{Identifier: "alice", Password: "secret1"}

	ct, nonce, err := SealValue(in, key)
	require.NoError(t, err)
	require.NotEmpty(t, ct)
	require.Len(t, nonce, 12)

	var out payload
	require.NoError(t, OpenValue(ct, nonce, key, &out))
	assert.Equal(t, in, out)
}

func TestOpenValue_WrongKeyFails(t *testing.T) {
	key := DeriveLocalKey([]byte("secret"), []byte("salt"))
	ct, nonce, err := SealValue(payload{Identifier: "alice"}, key)
	require.NoError(t, err)

	other := DeriveLocalKey([]byte("other"), []byte("salt"))
	var out payload
	assert.Error(t, OpenValue(ct, nonce, other, &out))
}

func TestOpenValue_TamperedCiphertextFails(t *testing.T) {
	key := DeriveLocalKey([]byte("secret"), []byte("salt"))
	ct, nonce, err := SealValue(payload{Identifier: "alice"}, key)
	require.NoError(t, err)

	ct[0] ^= 0xff
	var out payload
	assert.Error(t, OpenValue(ct, nonce, key, &out))
}

func TestSealValue_BadKeyLength(t *testing.T) {
	_, _, err := SealValue(payload{}, []byte("short"))
	assert.Error(t, err)
}
