// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"slices"
	"time"
)

const (
	// OwnerIssuerSudoService is the issuer of vault owners that are profiles
	// (sudos). Entitlement accounting counts only these owners.
	OwnerIssuerSudoService = "sudoplatform.sudoservice"

	// OwnerIssuerIdentityService is the issuer of the owner entry recording
	// the user who created a vault.
	OwnerIssuerIdentityService = "sudoplatform.identityservice"

	// SecureVaultAudience is the audience ownership proofs are requested for.
	SecureVaultAudience = "sudoplatform.secure-vault.vault"
)

// Owner identifies an entity allowed to access a vault.
type Owner struct {
	ID     string
	Issuer string
}

// Vault is the caller-facing view of a vault: metadata only, no items.
type Vault struct {
	ID        string
	Owners    []Owner
	CreatedAt time.Time
	UpdatedAt time.Time
	Version   int
}

// VaultMetadata is the bookkeeping the secure-vault backend returns for a
// vault. Version is assigned and enforced by the backend.
type VaultMetadata struct {
	ID         string
	BlobFormat string
	CreatedAt  time.Time
	UpdatedAt  time.Time
	Version    int
	Owners     []Owner
}

// RawVault is a vault as listed by the backend: metadata plus the encoded
// document blob.
type RawVault struct {
	VaultMetadata
	Blob []byte
}

// VaultRecord is a decoded vault held by the in-memory store. Secure fields
// inside Document are always in ciphertext form.
type VaultRecord struct {
	ID         string
	BlobFormat string
	CreatedAt  time.Time
	UpdatedAt  time.Time
	Version    int
	Owners     []Owner
	Document   VaultDocument
}

// Clone returns a deep copy of r.
func (r VaultRecord) Clone() VaultRecord {
	out := r
	out.Owners = slices.Clone(r.Owners)
	out.Document = r.Document.Clone()
	return out
}

// Vault returns the metadata-only view of r.
func (r VaultRecord) Vault() Vault {
	return Vault{
		ID:        r.ID,
		Owners:    slices.Clone(r.Owners),
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
		Version:   r.Version,
	}
}

// VaultDocument is the decoded content of one vault blob. Item order is not
// significant; item ids are unique within a document.
type VaultDocument struct {
	SchemaVersion float64
	Items         []VaultItem
}

// Clone returns a deep copy of d, including every item's mutable fields.
func (d VaultDocument) Clone() VaultDocument {
	out := VaultDocument{SchemaVersion: d.SchemaVersion}
	if d.Items != nil {
		out.Items = make([]VaultItem, 0, len(d.Items))
		for _, item := range d.Items {
			out.Items = append(out.Items, item.Clone())
		}
	}
	return out
}

// Find returns the item with the given id, or nil.
func (d VaultDocument) Find(id string) VaultItem {
	for _, item := range d.Items {
		if item.Base().ID == id {
			return item
		}
	}
	return nil
}

// KnownItems returns the items of a known variant.
func (d VaultDocument) KnownItems() []VaultItem {
	out := make([]VaultItem, 0, len(d.Items))
	for _, item := range d.Items {
		if item.Type() != ItemTypeUnknown {
			out = append(out, item)
		}
	}
	return out
}

// UnknownItems returns the items whose type tag was not recognized.
func (d VaultDocument) UnknownItems() []*UnknownItem {
	var out []*UnknownItem
	for _, item := range d.Items {
		if u, ok := item.(*UnknownItem); ok {
			out = append(out, u)
		}
	}
	return out
}
