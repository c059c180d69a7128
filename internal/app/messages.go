// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains the error taxonomy and the shared message strings
// surfaced by the vault engine and the values it hands out to callers.
//
// Every error returned across the engine boundary wraps exactly one of the
// Err* sentinels declared in errors.go, so callers can branch with
// [errors.Is] without knowing which collaborator failed.
package app

const (
	// MsgVaultsMustBeUnlocked is attached to [ErrVaultLocked] when an
	// operation needs an unlocked session.
	MsgVaultsMustBeUnlocked = "vaults must be unlocked"

	// MsgVaultNotFound is attached to [ErrVaultNotFound].
	MsgVaultNotFound = "vault not found"

	// MsgMissingSecretCode is returned by unlock when neither a cached key
	// deriving key nor a usable secret code is available.
	MsgMissingSecretCode = "no key deriving key cached and no valid secret code supplied"

	// MsgUnsupportedItemType is returned when an item variant cannot be
	// stored in a vault document.
	MsgUnsupportedItemType = "unsupported vault item type"

	// MsgMissingSecureKey is returned when an unlocked session has no key
	// to encrypt or reveal secure fields with.
	MsgMissingSecureKey = "vault secure key is missing"

	// MsgSecureFieldNotBound is returned by reveal on a ciphertext field that
	// was never bound to a key.
	MsgSecureFieldNotBound = "secure field has no reveal binding"

	MsgInvalidBase64 = "secure value is not valid base64"
	MsgInvalidUTF8   = "revealed value is not valid UTF-8"
)
