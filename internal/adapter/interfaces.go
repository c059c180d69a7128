// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter declares the collaborators the vault engine talks to and
// ships in-process implementations of them.
//
// The engine depends only on the interfaces below. The local
// implementations ([LocalSecureVault], [LocalProfiles], [StaticIdentity],
// [StaticEntitlements]) let a single binary run end to end on top of the
// SQL repositories in the store package. Error values defined in errors.go
// are what collaborators return; the engine maps them onto its own
// taxonomy.
package adapter

import (
	"context"

	"github.com/MKhiriev/go-pass-vault/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// SecureVaultClient is the secure-vault backend: durable, versioned,
// multi-owner encrypted blob storage with optimistic concurrency.
//
// Calls that carry (kdk, password) authenticate the user with them; a wrong
// password fails with [ErrNotAuthorized].
type SecureVaultClient interface {
	// Register creates the backend user and returns its handle. Registering
	// twice fails with [ErrAlreadyRegistered].
	Register(ctx context.Context, kdk, password []byte) (string, error)

	// IsRegistered reports whether the current user is registered.
	IsRegistered(ctx context.Context) (bool, error)

	// ListVaults returns every vault of the user with its decrypted blob.
	ListVaults(ctx context.Context, kdk, password []byte) ([]models.RawVault, error)

	// ListVaultsMetadataOnly lists vaults without blobs and without
	// credentials.
	ListVaultsMetadataOnly(ctx context.Context) ([]models.VaultMetadata, error)

	// CreateVault stores a new vault owned by the user and by the owner the
	// ownership proof vouches for.
	CreateVault(ctx context.Context, kdk, password, blob []byte, formatTag, ownershipProof string) (models.VaultMetadata, error)

	// UpdateVault replaces the vault blob if expectedVersion still matches,
	// otherwise it fails with [ErrVersionConflict].
	UpdateVault(ctx context.Context, kdk, password []byte, id string, expectedVersion int, blob []byte, formatTag string) (models.VaultMetadata, error)

	// DeleteVault removes a vault and returns the metadata it had, or nil if
	// there was no such vault.
	DeleteVault(ctx context.Context, id string) (*models.VaultMetadata, error)

	// ChangeVaultPassword re-encrypts every vault under the new password.
	// Every vault version is bumped.
	ChangeVaultPassword(ctx context.Context, kdk, oldPassword, newPassword []byte) error

	// Reset deletes every vault of the user.
	Reset(ctx context.Context) error

	// Deregister deletes every vault and the user itself.
	Deregister(ctx context.Context) error
}

// ProfileClient is the profile (sudo) service.
type ProfileClient interface {
	// GetOwnershipProof returns a signed proof that the user owns ownerID,
	// minted for audience. Unknown owners fail with [ErrSudoNotFound].
	GetOwnershipProof(ctx context.Context, ownerID, audience string) (string, error)

	// ListOwners returns the ids of every profile the user owns.
	ListOwners(ctx context.Context) ([]string, error)
}

// ProofVerifier checks ownership proofs on behalf of the backend.
type ProofVerifier interface {
	VerifyProof(proof, audience string) (models.OwnershipProof, error)
}

// IdentityClient is the identity service. The engine reads only the user
// id and the subject.
type IdentityClient interface {
	UserID(ctx context.Context) (string, error)
	Subject(ctx context.Context) (string, error)
}

// EntitlementsClient is the entitlements service.
type EntitlementsClient interface {
	GetEntitlements(ctx context.Context) ([]models.Entitlement, error)
}
