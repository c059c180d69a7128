// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package keystore

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"time"

	bolt "go.etcd.io/bbolt"
)

var keysBucket = []byte("keys")

// BoltStore keeps keys in a single bucket of a bbolt file.
type BoltStore struct {
	db *bolt.DB
}

// OpenBoltStore opens or creates the key file at path.
func OpenBoltStore(path string) (*BoltStore, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return nil, fmt.Errorf("failed to create keystore directory: %w", err)
		}
	}

	db, err := bolt.Open(path, 0o600, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("failed to open keystore: %w", err)
	}

	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(keysBucket)
		return err
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create bucket %s: %w", keysBucket, err)
	}

	return &BoltStore{db: db}, nil
}

// Close closes the underlying file.
func (s *BoltStore) Close() error {
	return s.db.Close()
}

// Get implements [KeyStore].
func (s *BoltStore) Get(name string) ([]byte, error) {
	var key []byte
	err := s.db.View(func(tx *bolt.Tx) error {
		v := tx.Bucket(keysBucket).Get([]byte(name))
		if v == nil {
			return ErrKeyNotFound
		}
		// the slice is only valid during the transaction
		key = bytes.Clone(v)
		return nil
	})
	return key, err
}

// Put implements [KeyStore].
func (s *BoltStore) Put(name string, key []byte) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket(keysBucket)
		if err := b.Delete([]byte(name)); err != nil {
			return err
		}
		return b.Put([]byte(name), key)
	})
}

// Delete implements [KeyStore].
func (s *BoltStore) Delete(name string) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(keysBucket).Delete([]byte(name))
	})
}

// ResetAll implements [KeyStore].
func (s *BoltStore) ResetAll() error {
	return s.db.Update(func(tx *bolt.Tx) error {
		if err := tx.DeleteBucket(keysBucket); err != nil {
			return err
		}
		_, err := tx.CreateBucket(keysBucket)
		return err
	})
}
