package keystore

import (
	"bytes"
	"sync"
)

// MemoryStore is a process-local [KeyStore].
type MemoryStore struct {
	mu   sync.RWMutex
	keys map[string][]byte
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{keys: make(map[string][]byte)}
}

func (s *MemoryStore) Get(name string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	key, ok := s.keys[name]
	if !ok {
		return nil, ErrKeyNotFound
	}
	return bytes.Clone(key), nil
}

func (s *MemoryStore) Put(name string, key []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.keys, name)
	s.keys[name] = bytes.Clone(key)
	return nil
}

func (s *MemoryStore) Delete(name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.keys, name)
	return nil
}

func (s *MemoryStore) ResetAll() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	clear(s.keys)
	return nil
}
