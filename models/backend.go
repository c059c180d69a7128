package models

import "time"

// BackendUser is a user registered with the local secure-vault backend.
// AuthHash verifies the credential key derived from (password, KDK).
type BackendUser struct {
	Handle    string
	UserID    string
	AuthHash  []byte
	CreatedAt time.Time
}

// SealedVault is a vault as persisted by the local secure-vault backend: the
// document blob sealed under the user's credential key.
type SealedVault struct {
	VaultMetadata
	UserID     string
	SealedBlob string
}

// VaultUpdate is an optimistic-concurrency write of a vault blob. It only
// applies while the stored version still equals ExpectedVersion.
type VaultUpdate struct {
	UserID          string
	ID              string
	ExpectedVersion int
	SealedBlob      string
	BlobFormat      string
	UpdatedAt       time.Time
}
