package store

import "github.com/MKhiriev/go-pass-vault/internal/logger"

// Repositories bundles the SQL repositories of the local secure-vault
// backend.
type Repositories struct {
	UserRepository  UserRepository
	VaultRepository VaultRepository
}

// NewRepositories builds every repository on db.
func NewRepositories(db *DB, log *logger.Logger) *Repositories {
	return &Repositories{
		UserRepository:  NewUserRepository(db, log),
		VaultRepository: NewVaultRepository(db, log),
	}
}
