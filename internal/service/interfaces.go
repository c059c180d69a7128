// Package service implements the vault engine: the locked and unlocked
// session, vault and item operations over the secure-vault backend, and
// field-level encryption of secure item attributes.
package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-pass-vault/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// VaultEngine is the client-side password-manager engine: the locked /
// unlocked session, vault and item CRUD on top of the secure-vault backend,
// and field-level encryption of secure item attributes.
//
// Every error returned wraps exactly one sentinel of the app package, except
// context.Canceled and context.DeadlineExceeded, which are returned as is.
type VaultEngine interface {
	// Register creates the backend registration for the current user. The
	// key deriving key is generated and cached before the backend is called,
	// so a retry after a partial failure reuses it.
	Register(ctx context.Context, password string) error

	// Unlock resolves the key deriving key (cached key first, then
	// secretCode), lists the vaults with it and opens the session. Vaults
	// that fail to decode are reported as one ErrInvalidFormat error after
	// the others have been imported; the engine is unlocked in that case.
	Unlock(ctx context.Context, password, secretCode string) error

	// Lock drops the session and every decoded vault.
	Lock()

	IsLocked() bool

	// Reset locks, clears the key store and deletes the user's vaults at
	// the backend.
	Reset(ctx context.Context) error

	// Deregister locks, deletes the backend registration and clears the key
	// store.
	Deregister(ctx context.Context) error

	// ChangeMasterPassword re-encrypts every vault at the backend and
	// reloads them all, since every vault version changes.
	ChangeMasterPassword(ctx context.Context, oldPassword, newPassword string) error

	CreateVault(ctx context.Context, ownerID string) (models.Vault, error)
	DeleteVault(ctx context.Context, vaultID string) error
	// GetVault returns nil when no such vault is loaded.
	GetVault(ctx context.Context, vaultID string) (*models.Vault, error)
	ListVaults(ctx context.Context) ([]models.Vault, error)
	// UpdateVault pushes the stored document of the vault to the backend.
	UpdateVault(ctx context.Context, vaultID string) (models.Vault, error)

	// AddVaultItem encrypts the item's plaintext secure fields, stores it
	// (replacing an item with the same id) and pushes the vault.
	AddVaultItem(ctx context.Context, item models.VaultItem, vaultID string) error
	UpdateVaultItem(ctx context.Context, item models.VaultItem, vaultID string) error
	RemoveVaultItem(ctx context.Context, itemID, vaultID string) error
	// ListVaultItems returns known items followed by unknown ones. Secure
	// fields are bound to the session and can be revealed until Lock.
	ListVaultItems(ctx context.Context, vaultID string) ([]models.VaultItem, error)
	// GetVaultItem returns nil when the vault or the item is absent.
	GetVaultItem(ctx context.Context, itemID, vaultID string) (models.VaultItem, error)

	// GetSecretCode renders the recovery code of the cached key deriving
	// key. ok is false when no key is cached. It works while locked.
	GetSecretCode(ctx context.Context) (code string, ok bool, err error)
	GetRegistrationStatus(ctx context.Context) (models.RegistrationStatus, error)
	GetEntitlements(ctx context.Context) ([]models.Entitlement, error)
	GetEntitlementState(ctx context.Context) ([]models.EntitlementState, error)

	// LastActivity is the time of the last engine call, for idle locking.
	LastActivity() time.Time
}
