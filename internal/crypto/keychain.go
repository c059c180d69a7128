// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"
	"fmt"
	"io"

	"golang.org/x/crypto/argon2"
)

// keyChainService is the private implementation of [KeyChainService].
type keyChainService struct {
	// Argon2id tuning parameters. Stored in the struct so they can be
	// adjusted per deployment target (e.g. tests vs. desktop).
	argonTime    uint32
	argonMemory  uint32
	argonThreads uint8
	argonKeyLen  uint32
}

// Argon2Params configures [NewKeyChainServiceWithParams].
type Argon2Params struct {
	Time    uint32
	Memory  uint32 // KiB
	Threads uint8
}

// NewKeyChainService constructs a [KeyChainService] with the Argon2id
// parameters recommended by OWASP (2024):
//   - time cost:   1 iteration
//   - memory cost: 64 MiB
//   - parallelism: 4 threads
//   - key length:  32 bytes (256 bits)
func NewKeyChainService() KeyChainService {
	return NewKeyChainServiceWithParams(Argon2Params{Time: 1, Memory: 64 * 1024, Threads: 4})
}

// NewKeyChainServiceWithParams constructs a [KeyChainService] with custom
// Argon2id cost parameters. The derived key length is always 32 bytes.
func NewKeyChainServiceWithParams(p Argon2Params) KeyChainService {
	return &keyChainService{
		argonTime:    p.Time,
		argonMemory:  p.Memory,
		argonThreads: p.Threads,
		argonKeyLen:  32,
	}
}

// DeriveCredentialKey implements [KeyChainService]. The key deriving key is
// random and per user, so it doubles as the Argon2id salt.
func (k *keyChainService) DeriveCredentialKey(password, kdk []byte) []byte {
	return argon2.IDKey(
		password,
		kdk,
		k.argonTime,
		k.argonMemory,
		k.argonThreads,
		k.argonKeyLen,
	)
}

// GenerateAuthHash implements [KeyChainService]. The fixed authSalt
// domain-separates the hash from the credential key itself.
func (k *keyChainService) GenerateAuthHash(credentialKey []byte, authSalt string) []byte {
	h := sha256.New()
	h.Write(credentialKey)
	h.Write([]byte(authSalt))
	return h.Sum(nil)
}

// VerifyAuthHash implements [KeyChainService].
func (k *keyChainService) VerifyAuthHash(credentialKey, expected []byte, authSalt string) bool {
	actual := k.GenerateAuthHash(credentialKey, authSalt)
	return subtle.ConstantTimeCompare(actual, expected) == 1
}

// SealBlob implements [KeyChainService]. The nonce is prepended so that
// OpenBlob can split it out: blob = nonce ‖ ciphertext.
func (k *keyChainService) SealBlob(blob, key []byte) (string, error) {
	gcm, err := newGCM(key)
	if err != nil {
		return "", err
	}

	nonce := make([]byte, gcm.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return "", fmt.Errorf("generate nonce: %w", err)
	}

	sealed := gcm.Seal(nonce, nonce, blob, nil)
	return base64.StdEncoding.EncodeToString(sealed), nil
}

// OpenBlob implements [KeyChainService]. An error here almost always means
// the credential key was derived from the wrong password.
func (k *keyChainService) OpenBlob(sealed string, key []byte) ([]byte, error) {
	raw, err := base64.StdEncoding.DecodeString(sealed)
	if err != nil {
		return nil, fmt.Errorf("decode base64: %w", err)
	}

	gcm, err := newGCM(key)
	if err != nil {
		return nil, err
	}

	nonceSize := gcm.NonceSize()
	if len(raw) < nonceSize {
		return nil, ErrCiphertextTooShort
	}
	nonce, ciphertext := raw[:nonceSize], raw[nonceSize:]

	blob, err := gcm.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return nil, fmt.Errorf("decrypt blob: %w", err)
	}
	return blob, nil
}

func newGCM(key []byte) (cipher.AEAD, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("create cipher: %w", err)
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("create gcm: %w", err)
	}
	return gcm, nil
}
