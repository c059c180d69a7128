// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package app

import (
	"errors"
	"fmt"
)

var (
	// ErrVaultLocked is returned when an operation requiring an unlocked
	// session is attempted while locked, including reveal of a secure field.
	ErrVaultLocked = errors.New("vault is locked")

	// ErrVaultNotFound is returned when a referenced vault or item is absent.
	ErrVaultNotFound = errors.New("vault not found")

	// ErrInvalidFormat is returned on blob, base64 or JSON decode failures
	// and for unsupported item payloads.
	ErrInvalidFormat = errors.New("invalid format")

	// ErrInvalidPasswordOrMissingSecretCode is returned when unlock cannot
	// resolve a usable key deriving key.
	ErrInvalidPasswordOrMissingSecretCode = errors.New("invalid password or missing secret code")

	// ErrCryptography is returned on key store or cipher failures.
	ErrCryptography = errors.New("cryptography failure")

	// ErrUnauthorizedUser is returned when the backend rejects the user's
	// identity or credentials.
	ErrUnauthorizedUser = errors.New("unauthorized user")

	// ErrSudoNotFound is returned when the profile service cannot issue an
	// ownership proof for the requested owner.
	ErrSudoNotFound = errors.New("sudo not found")

	// ErrFailed is a generic, retryable backend or I/O failure.
	ErrFailed = errors.New("operation failed")

	// ErrVersionConflict is returned when the backend rejects an update
	// because the submitted version is stale. Callers should re-fetch and retry.
	ErrVersionConflict = errors.New("vault version conflict")

	// ErrInvalidVault is returned when the session has no vault key.
	ErrInvalidVault = errors.New("invalid vault")

	// ErrUnknown is returned for anything that could not be classified.
	ErrUnknown = errors.New("unknown error")
)

// Wrap returns an error matching kind under [errors.Is] whose message
// carries detail. The detail is flattened to text so no lower-layer error
// type leaks through the chain.
func Wrap(kind error, detail any) error {
	switch d := detail.(type) {
	case nil:
		return kind
	case error:
		return fmt.Errorf("%w: %s", kind, d.Error())
	default:
		return fmt.Errorf("%w: %v", kind, d)
	}
}

// IsDomainError reports whether err already wraps one of the taxonomy
// sentinels declared in this package.
func IsDomainError(err error) bool {
	for _, kind := range []error{
		ErrVaultLocked, ErrVaultNotFound, ErrInvalidFormat,
		ErrInvalidPasswordOrMissingSecretCode, ErrCryptography,
		ErrUnauthorizedUser, ErrSudoNotFound, ErrFailed,
		ErrVersionConflict, ErrInvalidVault, ErrUnknown,
	} {
		if errors.Is(err, kind) {
			return true
		}
	}
	return false
}
