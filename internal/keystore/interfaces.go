// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package keystore holds the platform key stores the vault engine caches
// the key deriving key in.
//
// Three implementations share the [KeyStore] contract:
//   - [KeyringStore] keeps keys in the OS keyring (go-keyring);
//   - [BoltStore] keeps keys in a bbolt file;
//   - [MemoryStore] keeps keys in process memory, for tests and
//     ephemeral hosts.
//
// Key names are namespaced by the caller, e.g. "kdk-" + user id.
package keystore

//go:generate mockgen -source=interfaces.go -destination=../mock/keystore_mock.go -package=mock

// KeyStore is an opaque name → bytes store.
type KeyStore interface {
	// Get returns the key stored under name, or [ErrKeyNotFound].
	Get(name string) ([]byte, error)

	// Put stores key under name. An existing key is deleted first.
	Put(name string, key []byte) error

	// Delete removes the key stored under name. Deleting a missing key is
	// not an error.
	Delete(name string) error

	// ResetAll removes every key of the store.
	ResetAll() error
}
