package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidAppConfigs indicates missing identity settings.
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrInvalidStorageConfigs indicates an unknown driver or empty DSN.
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidKeystoreConfigs indicates an unknown key store backend.
	ErrInvalidKeystoreConfigs = errors.New("invalid keystore configuration")
	// ErrInvalidProfilesConfigs indicates invalid profile service settings.
	ErrInvalidProfilesConfigs = errors.New("invalid profiles configuration")
	// ErrInvalidEntitlementsConfigs indicates an invalid vault limit.
	ErrInvalidEntitlementsConfigs = errors.New("invalid entitlements configuration")
	// ErrInvalidWorkerConfigs indicates invalid background worker settings.
	ErrInvalidWorkerConfigs = errors.New("invalid worker configuration")
)
