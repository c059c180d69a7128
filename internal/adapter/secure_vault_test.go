package adapter

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-pass-vault/internal/config"
	"github.com/MKhiriev/go-pass-vault/internal/crypto"
	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/internal/mock"
	"github.com/MKhiriev/go-pass-vault/internal/store"
	"github.com/MKhiriev/go-pass-vault/models"
)

var (
	testKDK      = bytes.Repeat([]byte{0x5A}, crypto.KeySize)
	testPassword = []byte("p1")
	testNow      = time.UnixMilli(1_700_000_000_123).UTC()
)

type fixedIDs struct{ id string }

func (f fixedIDs) Generate() string { return f.id }

type backendFixture struct {
	backend  *LocalSecureVault
	users    *mock.MockUserRepository
	vaults   *mock.MockVaultRepository
	proofs   *mock.MockProofVerifier
	keyChain crypto.KeyChainService
}

func newBackendFixture(t *testing.T) backendFixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	f := backendFixture{
		users:    mock.NewMockUserRepository(ctrl),
		vaults:   mock.NewMockVaultRepository(ctrl),
		proofs:   mock.NewMockProofVerifier(ctrl),
		keyChain: crypto.NewKeyChainServiceWithParams(crypto.Argon2Params{Time: 1, Memory: 8, Threads: 1}),
	}

	identity, err := NewStaticIdentity(config.App{UserID: "u1", Subject: "s1"})
	require.NoError(t, err)

	f.backend = NewLocalSecureVault(
		&store.Repositories{UserRepository: f.users, VaultRepository: f.vaults},
		f.keyChain, identity, f.proofs, logger.Nop(),
	)
	f.backend.ids = fixedIDs{id: "generated-id"}
	f.backend.now = func() time.Time { return testNow }
	return f
}

// registeredUser is what FindUser returns for a user registered with
// (testPassword, testKDK).
func (f backendFixture) registeredUser() models.BackendUser {
	key := f.keyChain.DeriveCredentialKey(testPassword, testKDK)
	return models.BackendUser{Handle: "h1", UserID: "u1", AuthHash: f.keyChain.GenerateAuthHash(key, authSalt)}
}

func (f backendFixture) expectAuth() {
	f.users.EXPECT().FindUser(gomock.Any(), "u1").Return(f.registeredUser(), nil)
}

// ── Register ─────────────────────────────────────────────────────────────────

func TestLocalSecureVault_Register(t *testing.T) {
	f := newBackendFixture(t)
	ctx := context.Background()

	f.users.EXPECT().CreateUser(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, u models.BackendUser) error {
		assert.Equal(t, "u1", u.UserID)
		assert.Equal(t, "generated-id", u.Handle)
		assert.Equal(t, f.registeredUser().AuthHash, u.AuthHash)
		assert.NotContains(t, string(u.AuthHash), "p1")
		return nil
	})

	handle, err := f.backend.Register(ctx, testKDK, testPassword)
	require.NoError(t, err)
	assert.Equal(t, "generated-id", handle)
}

func TestLocalSecureVault_Register_Twice(t *testing.T) {
	f := newBackendFixture(t)
	f.users.EXPECT().CreateUser(gomock.Any(), gomock.Any()).Return(store.ErrUserAlreadyExists)

	_, err := f.backend.Register(context.Background(), testKDK, testPassword)
	assert.ErrorIs(t, err, ErrAlreadyRegistered)
}

func TestLocalSecureVault_IsRegistered(t *testing.T) {
	f := newBackendFixture(t)
	ctx := context.Background()

	f.users.EXPECT().FindUser(ctx, "u1").Return(models.BackendUser{}, store.ErrNoUserWasFound)
	ok, err := f.backend.IsRegistered(ctx)
	require.NoError(t, err)
	assert.False(t, ok)

	f.expectAuth()
	ok, err = f.backend.IsRegistered(ctx)
	require.NoError(t, err)
	assert.True(t, ok)

	f.users.EXPECT().FindUser(ctx, "u1").Return(models.BackendUser{}, errors.New("db down"))
	_, err = f.backend.IsRegistered(ctx)
	assert.ErrorIs(t, err, ErrServiceError)
}

// ── credentials ──────────────────────────────────────────────────────────────

func TestLocalSecureVault_WrongPassword(t *testing.T) {
	f := newBackendFixture(t)
	f.expectAuth()

	_, err := f.backend.ListVaults(context.Background(), testKDK, []byte("wrong"))
	assert.ErrorIs(t, err, ErrNotAuthorized)
}

func TestLocalSecureVault_WrongKDK(t *testing.T) {
	f := newBackendFixture(t)
	f.expectAuth()

	_, err := f.backend.ListVaults(context.Background(), bytes.Repeat([]byte{1}, crypto.KeySize), testPassword)
	assert.ErrorIs(t, err, ErrNotAuthorized)
}

func TestLocalSecureVault_NotRegistered(t *testing.T) {
	f := newBackendFixture(t)
	f.users.EXPECT().FindUser(gomock.Any(), "u1").Return(models.BackendUser{}, store.ErrNoUserWasFound)

	_, err := f.backend.ListVaults(context.Background(), testKDK, testPassword)
	assert.ErrorIs(t, err, ErrNotRegistered)
}

func TestLocalSecureVault_MissingIdentity(t *testing.T) {
	f := newBackendFixture(t)
	f.backend.identity = &StaticIdentity{}

	_, err := f.backend.ListVaultsMetadataOnly(context.Background())
	assert.ErrorIs(t, err, ErrMissingIdentity)
}

// ── vaults ───────────────────────────────────────────────────────────────────

func TestLocalSecureVault_CreateThenList(t *testing.T) {
	f := newBackendFixture(t)
	ctx := context.Background()
	blob := []byte(`{"schemaVersion":1}`)

	f.expectAuth()
	f.proofs.EXPECT().VerifyProof("proof", models.SecureVaultAudience).
		Return(models.OwnershipProof{RegisteredClaims: jwtClaims("sudo-1")}, nil)

	var stored models.SealedVault
	f.vaults.EXPECT().CreateVault(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, v models.SealedVault) error {
		stored = v
		return nil
	})

	meta, err := f.backend.CreateVault(ctx, testKDK, testPassword, blob, "fmt", "proof")
	require.NoError(t, err)
	assert.Equal(t, "generated-id", meta.ID)
	assert.Equal(t, 1, meta.Version)
	assert.Equal(t, testNow, meta.CreatedAt)
	assert.Equal(t, []models.Owner{
		{ID: "u1", Issuer: models.OwnerIssuerIdentityService},
		{ID: "sudo-1", Issuer: models.OwnerIssuerSudoService},
	}, meta.Owners)
	assert.NotContains(t, stored.SealedBlob, "schemaVersion")

	f.expectAuth()
	f.vaults.EXPECT().ListVaults(ctx, "u1").Return([]models.SealedVault{stored}, nil)

	raws, err := f.backend.ListVaults(ctx, testKDK, testPassword)
	require.NoError(t, err)
	require.Len(t, raws, 1)
	assert.Equal(t, blob, raws[0].Blob)
	assert.Equal(t, "fmt", raws[0].BlobFormat)
}

func TestLocalSecureVault_CreateVault_BadProof(t *testing.T) {
	f := newBackendFixture(t)
	f.expectAuth()
	f.proofs.EXPECT().VerifyProof("forged", models.SecureVaultAudience).Return(models.OwnershipProof{}, errors.New("signature is invalid"))

	_, err := f.backend.CreateVault(context.Background(), testKDK, testPassword, []byte("{}"), "fmt", "forged")
	assert.ErrorIs(t, err, ErrInvalidOwnershipProof)
}

func TestLocalSecureVault_ListVaults_CorruptBlob(t *testing.T) {
	f := newBackendFixture(t)
	f.expectAuth()
	f.vaults.EXPECT().ListVaults(gomock.Any(), "u1").Return([]models.SealedVault{{
		VaultMetadata: models.VaultMetadata{ID: "v1"}, SealedBlob: "AAAA",
	}}, nil)

	_, err := f.backend.ListVaults(context.Background(), testKDK, testPassword)
	assert.ErrorIs(t, err, ErrServiceError)
}

func TestLocalSecureVault_UpdateVault(t *testing.T) {
	tests := []struct {
		name    string
		repoErr error
		wantErr error
	}{
		{"success", nil, nil},
		{"conflict", store.ErrVersionConflict, ErrVersionConflict},
		{"not found", store.ErrVaultNotFound, ErrVaultNotFound},
		{"canceled", context.Canceled, context.Canceled},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newBackendFixture(t)
			f.expectAuth()
			f.vaults.EXPECT().UpdateVault(gomock.Any(), gomock.Any()).DoAndReturn(
				func(_ context.Context, u models.VaultUpdate) (models.VaultMetadata, error) {
					assert.Equal(t, "u1", u.UserID)
					assert.Equal(t, "v1", u.ID)
					assert.Equal(t, 3, u.ExpectedVersion)
					assert.Equal(t, testNow, u.UpdatedAt)
					if tt.repoErr != nil {
						return models.VaultMetadata{}, tt.repoErr
					}
					return models.VaultMetadata{ID: "v1", Version: 4}, nil
				})

			meta, err := f.backend.UpdateVault(context.Background(), testKDK, testPassword, "v1", 3, []byte("{}"), "fmt")
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, 4, meta.Version)
		})
	}
}

func TestLocalSecureVault_DeleteVault(t *testing.T) {
	f := newBackendFixture(t)
	ctx := context.Background()

	f.vaults.EXPECT().DeleteVault(ctx, "u1", "v1").Return(&models.VaultMetadata{ID: "v1"}, nil)
	meta, err := f.backend.DeleteVault(ctx, "v1")
	require.NoError(t, err)
	require.NotNil(t, meta)

	f.vaults.EXPECT().DeleteVault(ctx, "u1", "v2").Return(nil, nil)
	meta, err = f.backend.DeleteVault(ctx, "v2")
	require.NoError(t, err)
	assert.Nil(t, meta)
}

// ── password change / reset ──────────────────────────────────────────────────

func TestLocalSecureVault_ChangeVaultPassword(t *testing.T) {
	f := newBackendFixture(t)
	ctx := context.Background()
	newPassword := []byte("p2")

	oldKey := f.keyChain.DeriveCredentialKey(testPassword, testKDK)
	newKey := f.keyChain.DeriveCredentialKey(newPassword, testKDK)
	sealed, err := f.keyChain.SealBlob([]byte("blob"), oldKey)
	require.NoError(t, err)

	f.expectAuth()
	f.vaults.EXPECT().Rekey(ctx, "u1", f.keyChain.GenerateAuthHash(newKey, authSalt), gomock.Any(), testNow).
		DoAndReturn(func(_ context.Context, _ string, _ []byte, reseal store.ResealFunc, _ time.Time) error {
			resealed, err := reseal(sealed)
			require.NoError(t, err)
			opened, err := f.keyChain.OpenBlob(resealed, newKey)
			require.NoError(t, err)
			assert.Equal(t, []byte("blob"), opened)
			return nil
		})

	require.NoError(t, f.backend.ChangeVaultPassword(ctx, testKDK, testPassword, newPassword))
}

func TestLocalSecureVault_ChangeVaultPassword_WrongOld(t *testing.T) {
	f := newBackendFixture(t)
	f.expectAuth()

	err := f.backend.ChangeVaultPassword(context.Background(), testKDK, []byte("nope"), []byte("p2"))
	assert.ErrorIs(t, err, ErrNotAuthorized)
}

func TestLocalSecureVault_ResetAndDeregister(t *testing.T) {
	f := newBackendFixture(t)
	ctx := context.Background()

	f.vaults.EXPECT().DeleteAllVaults(ctx, "u1").Return(nil)
	require.NoError(t, f.backend.Reset(ctx))

	gomock.InOrder(
		f.vaults.EXPECT().DeleteAllVaults(ctx, "u1").Return(nil),
		f.users.EXPECT().DeleteUser(ctx, "u1").Return(nil),
	)
	require.NoError(t, f.backend.Deregister(ctx))

	f.vaults.EXPECT().DeleteAllVaults(ctx, "u1").Return(errors.New("db down"))
	assert.ErrorIs(t, f.backend.Deregister(ctx), ErrServiceError)
}
