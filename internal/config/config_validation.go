// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "fmt"

// validate checks that the final merged [StructuredConfig] is usable at
// startup. Defaults have already been applied.
func (cfg *StructuredConfig) validate() error {
	if cfg.App.UserID == "" && cfg.App.IDToken == "" {
		return fmt.Errorf("%w: user id or id token is required", ErrInvalidAppConfigs)
	}

	switch cfg.Storage.DB.Driver {
	case "sqlite3", "pgx":
	default:
		return fmt.Errorf("%w: unknown driver %q", ErrInvalidStorageConfigs, cfg.Storage.DB.Driver)
	}
	if cfg.Storage.DB.DSN == "" {
		return fmt.Errorf("%w: empty DSN", ErrInvalidStorageConfigs)
	}

	switch cfg.Keystore.Backend {
	case "keyring", "bolt", "memory":
	default:
		return fmt.Errorf("%w: unknown backend %q", ErrInvalidKeystoreConfigs, cfg.Keystore.Backend)
	}

	if cfg.Profiles.ProofTTL < 0 {
		return fmt.Errorf("%w: negative proof ttl", ErrInvalidProfilesConfigs)
	}
	if cfg.Entitlements.MaxVaultsPerSudo < 0 {
		return fmt.Errorf("%w: negative vault limit", ErrInvalidEntitlementsConfigs)
	}
	if cfg.Workers.AutoLockAfter < 0 {
		return fmt.Errorf("%w: negative auto-lock interval", ErrInvalidWorkerConfigs)
	}

	return nil
}
