package crypto

import (
	"bytes"
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// cheap parameters keep the suite fast; the derivation logic is identical.
func newTestKeyChain() KeyChainService {
	return NewKeyChainServiceWithParams(Argon2Params{Time: 1, Memory: 8, Threads: 1})
}

func TestDeriveCredentialKey_DeterministicForSameInputs(t *testing.T) {
	svc := newTestKeyChain()
	kdk := bytes.Repeat([]byte{0xAB}, KeySize)

	k1 := svc.DeriveCredentialKey([]byte("correct horse battery staple"), kdk)
	k2 := svc.DeriveCredentialKey([]byte("correct horse battery staple"), kdk)

	require.Len(t, k1, 32)
	assert.Equal(t, k1, k2)
}

func TestDeriveCredentialKey_DifferentKDKProducesDifferentKey(t *testing.T) {
	svc := newTestKeyChain()

	k1 := svc.DeriveCredentialKey([]byte("same password"), bytes.Repeat([]byte{0x01}, KeySize))
	k2 := svc.DeriveCredentialKey([]byte("same password"), bytes.Repeat([]byte{0x02}, KeySize))

	assert.NotEqual(t, k1, k2)
}

func TestDeriveCredentialKey_DifferentPasswordProducesDifferentKey(t *testing.T) {
	svc := newTestKeyChain()
	kdk := bytes.Repeat([]byte{0x01}, KeySize)

	assert.NotEqual(t,
		svc.DeriveCredentialKey([]byte("p1"), kdk),
		svc.DeriveCredentialKey([]byte("p2"), kdk),
	)
}

func TestGenerateAuthHash_DeterministicAndSeparated(t *testing.T) {
	svc := newTestKeyChain()
	key := bytes.Repeat([]byte{0x42}, 32)

	h1 := svc.GenerateAuthHash(key, "auth")
	h2 := svc.GenerateAuthHash(key, "auth")
	h3 := svc.GenerateAuthHash(key, "other")

	require.Len(t, h1, 32)
	assert.Equal(t, h1, h2)
	assert.NotEqual(t, h1, h3)
	assert.NotEqual(t, key, h1)
}

func TestVerifyAuthHash(t *testing.T) {
	svc := newTestKeyChain()
	kdk := bytes.Repeat([]byte{0x07}, KeySize)
	key := svc.DeriveCredentialKey([]byte("p1"), kdk)
	stored := svc.GenerateAuthHash(key, "auth")

	assert.True(t, svc.VerifyAuthHash(key, stored, "auth"))
	assert.False(t, svc.VerifyAuthHash(svc.DeriveCredentialKey([]byte("p2"), kdk), stored, "auth"))
	assert.False(t, svc.VerifyAuthHash(key, stored[:10], "auth"))
}

// ── SealBlob / OpenBlob ──────────────────────────────────────────────────────

func TestSealBlob_OpenRoundTrip(t *testing.T) {
	svc := newTestKeyChain()
	key := bytes.Repeat([]byte{0x11}, 32)
	blob := []byte(`{"login":[],"schemaVersion":1}`)

	sealed, err := svc.SealBlob(blob, key)
	require.NoError(t, err)

	opened, err := svc.OpenBlob(sealed, key)
	require.NoError(t, err)
	assert.Equal(t, blob, opened)
}

func TestSealBlob_NonceRandomness(t *testing.T) {
	svc := newTestKeyChain()
	key := bytes.Repeat([]byte{0x11}, 32)

	s1, err := svc.SealBlob([]byte("same"), key)
	require.NoError(t, err)
	s2, err := svc.SealBlob([]byte("same"), key)
	require.NoError(t, err)

	assert.NotEqual(t, s1, s2)
}

func TestOpenBlob_WrongKey(t *testing.T) {
	svc := newTestKeyChain()

	sealed, err := svc.SealBlob([]byte("secret"), bytes.Repeat([]byte{0x11}, 32))
	require.NoError(t, err)

	_, err = svc.OpenBlob(sealed, bytes.Repeat([]byte{0x22}, 32))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decrypt blob")
}

func TestOpenBlob_InvalidBase64(t *testing.T) {
	svc := newTestKeyChain()

	_, err := svc.OpenBlob("***", bytes.Repeat([]byte{0x11}, 32))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode base64")
}

func TestOpenBlob_TooShort(t *testing.T) {
	svc := newTestKeyChain()

	_, err := svc.OpenBlob(base64.StdEncoding.EncodeToString([]byte{1, 2, 3}), bytes.Repeat([]byte{0x11}, 32))
	assert.ErrorIs(t, err, ErrCiphertextTooShort)
}

func TestSealBlob_BadKeyLength(t *testing.T) {
	svc := newTestKeyChain()

	_, err := svc.SealBlob([]byte("x"), []byte("short"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "create cipher")
}
