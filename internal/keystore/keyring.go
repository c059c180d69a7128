package keystore

import (
	"encoding/base64"
	"errors"
	"fmt"

	"github.com/zalando/go-keyring"
)

// KeyringStore keeps keys in the OS keyring under a single service name.
// The keyring stores strings, so keys are base64-encoded.
type KeyringStore struct {
	service string
}

// NewKeyringStore returns a store scoped to service.
func NewKeyringStore(service string) *KeyringStore {
	return &KeyringStore{service: service}
}

// Get implements [KeyStore].
func (s *KeyringStore) Get(name string) ([]byte, error) {
	encoded, err := keyring.Get(s.service, name)
	if errors.Is(err, keyring.ErrNotFound) {
		return nil, ErrKeyNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("read keyring: %w", err)
	}

	key, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return nil, fmt.Errorf("decode keyring entry %s: %w", name, err)
	}
	return key, nil
}

// Put implements [KeyStore].
func (s *KeyringStore) Put(name string, key []byte) error {
	if err := s.Delete(name); err != nil {
		return err
	}
	if err := keyring.Set(s.service, name, base64.StdEncoding.EncodeToString(key)); err != nil {
		return fmt.Errorf("write keyring: %w", err)
	}
	return nil
}

// Delete implements [KeyStore].
func (s *KeyringStore) Delete(name string) error {
	err := keyring.Delete(s.service, name)
	if err != nil && !errors.Is(err, keyring.ErrNotFound) {
		return fmt.Errorf("delete keyring entry: %w", err)
	}
	return nil
}

// ResetAll implements [KeyStore]. Only entries of the store's service are
// removed.
func (s *KeyringStore) ResetAll() error {
	if err := keyring.DeleteAll(s.service); err != nil {
		return fmt.Errorf("reset keyring: %w", err)
	}
	return nil
}
