// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-pass-vault/internal/crypto"
	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/internal/store"
	"github.com/MKhiriev/go-pass-vault/internal/utils"
	"github.com/MKhiriev/go-pass-vault/models"
)

// authSalt domain-separates the stored verifier from the credential key.
const authSalt = "auth"

type idGenerator interface {
	Generate() string
}

// LocalSecureVault is an in-process secure-vault backend on top of the SQL
// repositories.
//
// The master password is never stored. Register keeps a verifier derived
// from (password, kdk); every credential-bearing call re-derives the key
// and compares. Blobs are sealed with that key, so a password change
// re-seals every vault in one transaction.
type LocalSecureVault struct {
	users    store.UserRepository
	vaults   store.VaultRepository
	keyChain crypto.KeyChainService
	identity IdentityClient
	proofs   ProofVerifier
	ids      idGenerator
	now      func() time.Time
	logger   *logger.Logger
}

// NewLocalSecureVault builds the backend. Vaults are scoped to the user the
// identity client reports at call time.
func NewLocalSecureVault(
	repos *store.Repositories,
	keyChain crypto.KeyChainService,
	identity IdentityClient,
	proofs ProofVerifier,
	log *logger.Logger,
) *LocalSecureVault {
	return &LocalSecureVault{
		users:    repos.UserRepository,
		vaults:   repos.VaultRepository,
		keyChain: keyChain,
		identity: identity,
		proofs:   proofs,
		ids:      utils.IDFunc(utils.NewID),
		now:      time.Now,
		logger:   log,
	}
}

func (b *LocalSecureVault) Register(ctx context.Context, kdk, password []byte) (string, error) {
	log := logger.FromContext(ctx)

	userID, err := b.identity.UserID(ctx)
	if err != nil {
		return "", err
	}

	key := b.keyChain.DeriveCredentialKey(password, kdk)
	user := models.BackendUser{
		Handle:    b.ids.Generate(),
		UserID:    userID,
		AuthHash:  b.keyChain.GenerateAuthHash(key, authSalt),
		CreatedAt: b.now(),
	}

	if err = b.users.CreateUser(ctx, user); err != nil {
		log.Err(err).Str("func", "*LocalSecureVault.Register").Msg("error registering user")
		return "", mapStoreError(err)
	}

	log.Info().Str("func", "*LocalSecureVault.Register").Str("user_handle", user.Handle).Msg("user registered")
	return user.Handle, nil
}

func (b *LocalSecureVault) IsRegistered(ctx context.Context) (bool, error) {
	userID, err := b.identity.UserID(ctx)
	if err != nil {
		return false, err
	}

	_, err = b.users.FindUser(ctx, userID)
	switch {
	case errors.Is(err, store.ErrNoUserWasFound):
		return false, nil
	case err != nil:
		return false, mapStoreError(err)
	}
	return true, nil
}

func (b *LocalSecureVault) ListVaults(ctx context.Context, kdk, password []byte) ([]models.RawVault, error) {
	log := logger.FromContext(ctx)

	userID, key, err := b.authenticate(ctx, kdk, password)
	if err != nil {
		return nil, err
	}

	sealed, err := b.vaults.ListVaults(ctx, userID)
	if err != nil {
		return nil, mapStoreError(err)
	}

	raws := make([]models.RawVault, 0, len(sealed))
	for _, v := range sealed {
		blob, err := b.keyChain.OpenBlob(v.SealedBlob, key)
		if err != nil {
			log.Err(err).Str("func", "*LocalSecureVault.ListVaults").Str("vault_id", v.ID).Msg("error opening vault blob")
			return nil, fmt.Errorf("%w: vault %s cannot be opened: %w", ErrServiceError, v.ID, err)
		}
		raws = append(raws, models.RawVault{VaultMetadata: v.VaultMetadata, Blob: blob})
	}
	return raws, nil
}

func (b *LocalSecureVault) ListVaultsMetadataOnly(ctx context.Context) ([]models.VaultMetadata, error) {
	userID, err := b.identity.UserID(ctx)
	if err != nil {
		return nil, err
	}

	meta, err := b.vaults.ListVaultMetadata(ctx, userID)
	if err != nil {
		return nil, mapStoreError(err)
	}
	return meta, nil
}

func (b *LocalSecureVault) CreateVault(ctx context.Context, kdk, password, blob []byte, formatTag, ownershipProof string) (models.VaultMetadata, error) {
	log := logger.FromContext(ctx)

	userID, key, err := b.authenticate(ctx, kdk, password)
	if err != nil {
		return models.VaultMetadata{}, err
	}

	proof, err := b.proofs.VerifyProof(ownershipProof, models.SecureVaultAudience)
	if err != nil {
		log.Err(err).Str("func", "*LocalSecureVault.CreateVault").Msg("ownership proof rejected")
		return models.VaultMetadata{}, fmt.Errorf("%w: %w", ErrInvalidOwnershipProof, err)
	}

	sealed, err := b.keyChain.SealBlob(blob, key)
	if err != nil {
		return models.VaultMetadata{}, fmt.Errorf("%w: %w", ErrServiceError, err)
	}

	now := b.now().UTC()
	vault := models.SealedVault{
		VaultMetadata: models.VaultMetadata{
			ID:         b.ids.Generate(),
			BlobFormat: formatTag,
			CreatedAt:  now,
			UpdatedAt:  now,
			Version:    1,
			Owners: []models.Owner{
				{ID: userID, Issuer: models.OwnerIssuerIdentityService},
				{ID: proof.OwnerID(), Issuer: proof.Issuer},
			},
		},
		UserID:     userID,
		SealedBlob: sealed,
	}

	if err = b.vaults.CreateVault(ctx, vault); err != nil {
		return models.VaultMetadata{}, mapStoreError(err)
	}

	// millisecond precision, as read back from the database
	meta := vault.VaultMetadata
	meta.CreatedAt = time.UnixMilli(now.UnixMilli()).UTC()
	meta.UpdatedAt = meta.CreatedAt
	return meta, nil
}

func (b *LocalSecureVault) UpdateVault(ctx context.Context, kdk, password []byte, id string, expectedVersion int, blob []byte, formatTag string) (models.VaultMetadata, error) {
	userID, key, err := b.authenticate(ctx, kdk, password)
	if err != nil {
		return models.VaultMetadata{}, err
	}

	sealed, err := b.keyChain.SealBlob(blob, key)
	if err != nil {
		return models.VaultMetadata{}, fmt.Errorf("%w: %w", ErrServiceError, err)
	}

	meta, err := b.vaults.UpdateVault(ctx, models.VaultUpdate{
		UserID:          userID,
		ID:              id,
		ExpectedVersion: expectedVersion,
		SealedBlob:      sealed,
		BlobFormat:      formatTag,
		UpdatedAt:       b.now(),
	})
	if err != nil {
		return models.VaultMetadata{}, mapStoreError(err)
	}
	return meta, nil
}

func (b *LocalSecureVault) DeleteVault(ctx context.Context, id string) (*models.VaultMetadata, error) {
	userID, err := b.identity.UserID(ctx)
	if err != nil {
		return nil, err
	}

	meta, err := b.vaults.DeleteVault(ctx, userID, id)
	if err != nil {
		return nil, mapStoreError(err)
	}
	return meta, nil
}

func (b *LocalSecureVault) ChangeVaultPassword(ctx context.Context, kdk, oldPassword, newPassword []byte) error {
	log := logger.FromContext(ctx)

	userID, oldKey, err := b.authenticate(ctx, kdk, oldPassword)
	if err != nil {
		return err
	}

	newKey := b.keyChain.DeriveCredentialKey(newPassword, kdk)
	reseal := func(sealed string) (string, error) {
		blob, err := b.keyChain.OpenBlob(sealed, oldKey)
		if err != nil {
			return "", err
		}
		return b.keyChain.SealBlob(blob, newKey)
	}

	err = b.vaults.Rekey(ctx, userID, b.keyChain.GenerateAuthHash(newKey, authSalt), reseal, b.now())
	if err != nil {
		log.Err(err).Str("func", "*LocalSecureVault.ChangeVaultPassword").Msg("error re-sealing vaults")
		return mapStoreError(err)
	}
	return nil
}

func (b *LocalSecureVault) Reset(ctx context.Context) error {
	userID, err := b.identity.UserID(ctx)
	if err != nil {
		return err
	}
	return mapStoreError(b.vaults.DeleteAllVaults(ctx, userID))
}

func (b *LocalSecureVault) Deregister(ctx context.Context) error {
	userID, err := b.identity.UserID(ctx)
	if err != nil {
		return err
	}
	if err = b.vaults.DeleteAllVaults(ctx, userID); err != nil {
		return mapStoreError(err)
	}
	return mapStoreError(b.users.DeleteUser(ctx, userID))
}

// authenticate re-derives the credential key and checks it against the
// stored verifier.
func (b *LocalSecureVault) authenticate(ctx context.Context, kdk, password []byte) (string, []byte, error) {
	userID, err := b.identity.UserID(ctx)
	if err != nil {
		return "", nil, err
	}

	user, err := b.users.FindUser(ctx, userID)
	if err != nil {
		return "", nil, mapStoreError(err)
	}

	key := b.keyChain.DeriveCredentialKey(password, kdk)
	if !b.keyChain.VerifyAuthHash(key, user.AuthHash, authSalt) {
		logger.FromContext(ctx).Warn().Str("func", "*LocalSecureVault.authenticate").Msg("credential check failed")
		return "", nil, ErrNotAuthorized
	}
	return userID, key, nil
}
