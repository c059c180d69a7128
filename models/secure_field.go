// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"bytes"
	"encoding/base64"
	"sync/atomic"
	"unicode/utf8"

	"github.com/MKhiriev/go-pass-vault/internal/app"
)

// Decrypter decrypts an iv ‖ ciphertext blob under key.
type Decrypter interface {
	Decrypt(blob, key []byte) ([]byte, error)
}

// LockState reports the current lock state of the session that handed out
// a value. It is consulted on every reveal, never cached.
type LockState interface {
	IsLocked() bool
}

// LockFlag is an atomic [LockState] owned by the engine and shared with
// every value it hands out.
type LockFlag struct {
	locked atomic.Bool
}

// NewLockFlag returns a flag in the given state.
func NewLockFlag(locked bool) *LockFlag {
	f := &LockFlag{}
	f.locked.Store(locked)
	return f
}

// IsLocked implements [LockState].
func (f *LockFlag) IsLocked() bool { return f.locked.Load() }

// Set updates the flag.
func (f *LockFlag) Set(locked bool) { f.locked.Store(locked) }

// RevealableValue is a ciphertext bound to the key it was encrypted with and
// to the live lock state of the session. Reveal decrypts on every call.
type RevealableValue struct {
	ciphertext string
	key        []byte
	lock       LockState
	decrypter  Decrypter
}

// NewRevealableValue binds ciphertext (base64 of iv ‖ ct) to key. The key
// is copied.
func NewRevealableValue(ciphertext string, key []byte, lock LockState, decrypter Decrypter) *RevealableValue {
	return &RevealableValue{
		ciphertext: ciphertext,
		key:        bytes.Clone(key),
		lock:       lock,
		decrypter:  decrypter,
	}
}

// Reveal returns the plaintext. It fails with [app.ErrVaultLocked] once the
// session is locked, even if the value was handed out while unlocked.
func (v *RevealableValue) Reveal() (string, error) {
	if v.lock == nil || v.lock.IsLocked() {
		return "", app.Wrap(app.ErrVaultLocked, app.MsgVaultsMustBeUnlocked)
	}

	blob, err := base64.StdEncoding.DecodeString(v.ciphertext)
	if err != nil {
		return "", app.Wrap(app.ErrInvalidFormat, app.MsgInvalidBase64)
	}

	plaintext, err := v.decrypter.Decrypt(blob, v.key)
	if err != nil {
		return "", app.Wrap(app.ErrCryptography, err)
	}

	if !utf8.Valid(plaintext) {
		return "", app.Wrap(app.ErrInvalidFormat, app.MsgInvalidUTF8)
	}
	return string(plaintext), nil
}

// SecureField is a vault attribute that is stored only as ciphertext.
//
// A field is either plaintext (constructed by a caller with
// [NewSecureField], not yet stored) or ciphertext (read from a vault, or
// sealed when stored). A ciphertext field handed out by the engine also
// carries a [RevealableValue].
type SecureField struct {
	plaintext  string
	ciphertext string
	sealed     bool
	revealable *RevealableValue
}

// NewSecureField returns a plaintext field.
func NewSecureField(plaintext string) *SecureField {
	return &SecureField{plaintext: plaintext}
}

// NewSealedSecureField returns a ciphertext field with no reveal binding.
func NewSealedSecureField(ciphertext string) *SecureField {
	return &SecureField{ciphertext: ciphertext, sealed: true}
}

// IsSealed reports whether the field holds ciphertext.
func (f *SecureField) IsSealed() bool { return f.sealed }

// Ciphertext returns the base64 ciphertext, or "" for a plaintext field.
func (f *SecureField) Ciphertext() string { return f.ciphertext }

// Plaintext returns the caller-supplied plaintext of an unsealed field.
func (f *SecureField) Plaintext() (string, bool) {
	if f.sealed {
		return "", false
	}
	return f.plaintext, true
}

// Bind returns a copy of a sealed field that can be revealed. Plaintext
// fields are returned unchanged.
func (f *SecureField) Bind(key []byte, lock LockState, decrypter Decrypter) *SecureField {
	if !f.sealed {
		return f
	}
	return &SecureField{
		ciphertext: f.ciphertext,
		sealed:     true,
		revealable: NewRevealableValue(f.ciphertext, key, lock, decrypter),
	}
}

// Reveal returns the plaintext of the field. Plaintext fields return their
// value directly; sealed fields decrypt through their binding.
func (f *SecureField) Reveal() (string, error) {
	if !f.sealed {
		return f.plaintext, nil
	}
	if f.revealable == nil {
		return "", app.Wrap(app.ErrInvalidVault, app.MsgSecureFieldNotBound)
	}
	return f.revealable.Reveal()
}

// Clone returns a copy of f. The reveal binding is shared; it is immutable.
func (f *SecureField) Clone() *SecureField {
	if f == nil {
		return nil
	}
	c := *f
	return &c
}

// Equal reports whether f and other hold the same value in the same form.
// Reveal bindings are ignored.
func (f *SecureField) Equal(other *SecureField) bool {
	if f == nil || other == nil {
		return f == other
	}
	return f.sealed == other.sealed && f.plaintext == other.plaintext && f.ciphertext == other.ciphertext
}
