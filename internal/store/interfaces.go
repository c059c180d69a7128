package store

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

import (
	"context"
	"time"

	"github.com/MKhiriev/go-pass-vault/models"
)

// ErrorClassificator interprets driver errors for one SQL dialect.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
	IsUniqueViolation(err error) bool
}

// UserRepository persists users registered with the local secure-vault
// backend.
type UserRepository interface {
	CreateUser(ctx context.Context, user models.BackendUser) error
	FindUser(ctx context.Context, userID string) (models.BackendUser, error)
	DeleteUser(ctx context.Context, userID string) error
}

// ResealFunc turns one sealed blob into its replacement.
type ResealFunc func(sealed string) (string, error)

// VaultRepository persists sealed vault blobs and their owners.
type VaultRepository interface {
	CreateVault(ctx context.Context, vault models.SealedVault) error
	ListVaults(ctx context.Context, userID string) ([]models.SealedVault, error)
	ListVaultMetadata(ctx context.Context, userID string) ([]models.VaultMetadata, error)
	GetVault(ctx context.Context, userID, vaultID string) (models.SealedVault, error)
	UpdateVault(ctx context.Context, update models.VaultUpdate) (models.VaultMetadata, error)
	DeleteVault(ctx context.Context, userID, vaultID string) (*models.VaultMetadata, error)
	DeleteAllVaults(ctx context.Context, userID string) error
	// Rekey replaces the user's auth hash and reseals every vault blob in a
	// single transaction, bumping each vault version.
	Rekey(ctx context.Context, userID string, authHash []byte, reseal ResealFunc, now time.Time) error
}
