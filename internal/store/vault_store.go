// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"cmp"
	"slices"
	"sync"
	"time"

	"github.com/MKhiriev/go-pass-vault/models"
)

// VaultStore is the in-memory index of decoded vaults held while the engine
// is unlocked. Every method is a single critical section under one mutex and
// never blocks on I/O. Records and items are copied on the way in and on the
// way out, so callers never share mutable state with the store.
type VaultStore struct {
	mu     sync.Mutex
	vaults map[string]models.VaultRecord
	now    func() time.Time
}

// NewVaultStore returns an empty store.
func NewVaultStore() *VaultStore {
	return &VaultStore{
		vaults: make(map[string]models.VaultRecord),
		now:    time.Now,
	}
}

// WithClock makes UpdateItem stamp items with now instead of time.Now.
func (s *VaultStore) WithClock(now func() time.Time) *VaultStore {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.now = now
	return s
}

// ImportDecoded inserts or replaces every record by id. Used on unlock.
func (s *VaultStore) ImportDecoded(records []models.VaultRecord) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, r := range records {
		s.vaults[r.ID] = r.Clone()
	}
}

// ImportOne inserts or replaces a single record. Used after vault creation.
func (s *VaultStore) ImportOne(record models.VaultRecord) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.vaults[record.ID] = record.Clone()
}

// PatchMetadata replaces the bookkeeping fields of a vault after a
// successful backend write. Unknown ids are ignored.
func (s *VaultStore) PatchMetadata(id string, updatedAt time.Time, version int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	r, ok := s.vaults[id]
	if !ok {
		return
	}
	r.UpdatedAt = updatedAt
	r.Version = version
	s.vaults[id] = r
}

// List returns a copy of every record ordered by creation time, then id.
func (s *VaultStore) List() []models.VaultRecord {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.VaultRecord, 0, len(s.vaults))
	for _, r := range s.vaults {
		out = append(out, r.Clone())
	}
	slices.SortFunc(out, func(a, b models.VaultRecord) int {
		return cmp.Or(a.CreatedAt.Compare(b.CreatedAt), cmp.Compare(a.ID, b.ID))
	})
	return out
}

// Get returns a copy of the record with the given id.
func (s *VaultStore) Get(id string) (models.VaultRecord, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	r, ok := s.vaults[id]
	if !ok {
		return models.VaultRecord{}, false
	}
	return r.Clone(), true
}

// Delete removes a vault. Unknown ids are ignored.
func (s *VaultStore) Delete(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.vaults, id)
}

// RemoveAll drops every vault.
func (s *VaultStore) RemoveAll() {
	s.mu.Lock()
	defer s.mu.Unlock()

	clear(s.vaults)
}

// Len returns the number of loaded vaults.
func (s *VaultStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.vaults)
}

// AddItem stores a copy of item in the vault. An item with the same id is
// replaced, so ids stay unique within a vault.
func (s *VaultStore) AddItem(item models.VaultItem, vaultID string) error {
	if models.IsNilItem(item) {
		return ErrInvalidItem
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	r, ok := s.vaults[vaultID]
	if !ok {
		return ErrVaultNotFound
	}
	r.Document.Items = append(withoutItem(r.Document.Items, item.Base().ID), item.Clone())
	s.vaults[vaultID] = r
	return nil
}

// UpdateItem replaces the item with the same id by a copy of item and
// stamps its UpdatedAt with the current time. The stamp keeps millisecond
// precision only, the finest the vault blob can carry.
func (s *VaultStore) UpdateItem(item models.VaultItem, vaultID string) error {
	if models.IsNilItem(item) {
		return ErrInvalidItem
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	r, ok := s.vaults[vaultID]
	if !ok {
		return ErrVaultNotFound
	}
	stored := item.Clone()
	stored.Base().UpdatedAt = s.now().Truncate(time.Millisecond)
	r.Document.Items = append(withoutItem(r.Document.Items, item.Base().ID), stored)
	s.vaults[vaultID] = r
	return nil
}

// RemoveItem deletes the item with the given id from the vault. A missing
// item is not an error.
func (s *VaultStore) RemoveItem(itemID, vaultID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	r, ok := s.vaults[vaultID]
	if !ok {
		return ErrVaultNotFound
	}
	r.Document.Items = withoutItem(r.Document.Items, itemID)
	s.vaults[vaultID] = r
	return nil
}

// RevertItem undoes a single item change in the vault: the item with itemID
// is dropped and, when previous is not nil, a copy of previous takes its
// place. The vault's version and timestamps are left alone, so metadata
// patched by a concurrent write survives.
func (s *VaultStore) RevertItem(itemID string, previous models.VaultItem, vaultID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	r, ok := s.vaults[vaultID]
	if !ok {
		return ErrVaultNotFound
	}
	items := withoutItem(r.Document.Items, itemID)
	if !models.IsNilItem(previous) {
		items = append(items, previous.Clone())
	}
	r.Document.Items = items
	s.vaults[vaultID] = r
	return nil
}

// withoutItem returns a new slice holding items minus the ones with id.
func withoutItem(items []models.VaultItem, id string) []models.VaultItem {
	out := make([]models.VaultItem, 0, len(items)+1)
	for _, it := range items {
		if it.Base().ID != id {
			out = append(out, it)
		}
	}
	return out
}
