// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/models"
)

// queryer is satisfied by both *sql.DB and *sql.Tx.
type queryer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// vaultRepository is the SQL implementation of [VaultRepository] over the
// "vaults" and "vault_owners" tables. Multi-statement operations run in a
// transaction via [DB.inTx].
type vaultRepository struct {
	*DB
	logger *logger.Logger
}

// NewVaultRepository constructs a [VaultRepository] backed by db.
func NewVaultRepository(db *DB, logger *logger.Logger) VaultRepository {
	return &vaultRepository{
		DB:     db,
		logger: logger,
	}
}

// CreateVault inserts the vault row and its owners.
func (r *vaultRepository) CreateVault(ctx context.Context, vault models.SealedVault) error {
	log := logger.FromContext(ctx)

	err := r.inTx(ctx, func(tx *sql.Tx) error {
		query, args, err := buildInsertVaultQuery(r.builder, vault)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
		}
		if _, err = tx.ExecContext(ctx, query, args...); err != nil {
			if r.errorClassificator.IsUniqueViolation(err) {
				return ErrVaultAlreadyExists
			}
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}

		if len(vault.Owners) == 0 {
			return nil
		}
		query, args, err = buildInsertOwnersQuery(r.builder, vault.ID, vault.Owners)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
		}
		if _, err = tx.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
		return nil
	})
	if err != nil {
		log.Err(err).
			Str("func", "*vaultRepository.CreateVault").
			Str("vault_id", vault.ID).
			Msg("failed to create vault")
		return err
	}

	return nil
}

// ListVaults returns every vault of the user with its sealed blob.
func (r *vaultRepository) ListVaults(ctx context.Context, userID string) ([]models.SealedVault, error) {
	log := logger.FromContext(ctx)

	vaults, err := r.selectVaults(ctx, r.DB, userID, "", true)
	if err != nil {
		log.Err(err).
			Str("func", "*vaultRepository.ListVaults").
			Str("user_id", userID).
			Msg("failed to list vaults")
		return nil, err
	}
	return vaults, nil
}

// ListVaultMetadata is ListVaults without the blobs.
func (r *vaultRepository) ListVaultMetadata(ctx context.Context, userID string) ([]models.VaultMetadata, error) {
	log := logger.FromContext(ctx)

	vaults, err := r.selectVaults(ctx, r.DB, userID, "", false)
	if err != nil {
		log.Err(err).
			Str("func", "*vaultRepository.ListVaultMetadata").
			Str("user_id", userID).
			Msg("failed to list vault metadata")
		return nil, err
	}

	out := make([]models.VaultMetadata, 0, len(vaults))
	for _, v := range vaults {
		out = append(out, v.VaultMetadata)
	}
	return out, nil
}

// GetVault returns one vault of the user, or [ErrVaultNotFound].
func (r *vaultRepository) GetVault(ctx context.Context, userID, vaultID string) (models.SealedVault, error) {
	vaults, err := r.selectVaults(ctx, r.DB, userID, vaultID, true)
	if err != nil {
		return models.SealedVault{}, err
	}
	if len(vaults) == 0 {
		return models.SealedVault{}, ErrVaultNotFound
	}
	return vaults[0], nil
}

// UpdateVault writes a new blob if the stored version still matches
// update.ExpectedVersion and returns the resulting metadata.
//
// Error handling:
//   - no such vault for the user → [ErrVaultNotFound].
//   - version mismatch → [ErrVersionConflict].
func (r *vaultRepository) UpdateVault(ctx context.Context, update models.VaultUpdate) (models.VaultMetadata, error) {
	log := logger.FromContext(ctx)

	var meta models.VaultMetadata
	err := r.inTx(ctx, func(tx *sql.Tx) error {
		query, args, err := buildUpdateVaultQuery(r.builder, update)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
		}

		res, err := tx.ExecContext(ctx, query, args...)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
		affected, err := res.RowsAffected()
		if err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}

		current, err := r.selectVaults(ctx, tx, update.UserID, update.ID, false)
		if err != nil {
			return err
		}
		if len(current) == 0 {
			return ErrVaultNotFound
		}
		if affected == 0 {
			return ErrVersionConflict
		}

		meta = current[0].VaultMetadata
		return nil
	})
	if err != nil {
		log.Err(err).
			Str("func", "*vaultRepository.UpdateVault").
			Str("vault_id", update.ID).
			Int("expected_version", update.ExpectedVersion).
			Msg("failed to update vault")
		return models.VaultMetadata{}, err
	}

	return meta, nil
}

// DeleteVault removes a vault and its owners and returns the metadata it
// had. A missing vault yields nil metadata and no error.
func (r *vaultRepository) DeleteVault(ctx context.Context, userID, vaultID string) (*models.VaultMetadata, error) {
	log := logger.FromContext(ctx)

	var deleted *models.VaultMetadata
	err := r.inTx(ctx, func(tx *sql.Tx) error {
		deleted = nil

		current, err := r.selectVaults(ctx, tx, userID, vaultID, false)
		if err != nil {
			return err
		}
		if len(current) == 0 {
			return nil
		}

		if err = r.exec(ctx, tx, buildDeleteOwnersQuery, vaultID); err != nil {
			return err
		}
		query, args, err := buildDeleteVaultQuery(r.builder, userID, vaultID)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
		}
		if _, err = tx.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}

		deleted = &current[0].VaultMetadata
		return nil
	})
	if err != nil {
		log.Err(err).
			Str("func", "*vaultRepository.DeleteVault").
			Str("vault_id", vaultID).
			Msg("failed to delete vault")
		return nil, err
	}

	return deleted, nil
}

// DeleteAllVaults removes every vault of the user.
func (r *vaultRepository) DeleteAllVaults(ctx context.Context, userID string) error {
	log := logger.FromContext(ctx)

	err := r.inTx(ctx, func(tx *sql.Tx) error {
		if err := r.exec(ctx, tx, buildDeleteUserOwnersQuery, userID); err != nil {
			return err
		}
		return r.exec(ctx, tx, buildDeleteUserVaultsQuery, userID)
	})
	if err != nil {
		log.Err(err).
			Str("func", "*vaultRepository.DeleteAllVaults").
			Str("user_id", userID).
			Msg("failed to delete vaults")
		return err
	}
	return nil
}

// Rekey implements [VaultRepository].
func (r *vaultRepository) Rekey(ctx context.Context, userID string, authHash []byte, reseal ResealFunc, now time.Time) error {
	log := logger.FromContext(ctx)

	err := r.inTx(ctx, func(tx *sql.Tx) error {
		query, args, err := buildUpdateAuthHashQuery(r.builder, userID, authHash)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
		}
		res, err := tx.ExecContext(ctx, query, args...)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
		if n, err := res.RowsAffected(); err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		} else if n == 0 {
			return ErrNoUserWasFound
		}

		// rows are fully read before the updates run on the same connection
		vaults, err := r.selectVaults(ctx, tx, userID, "", true)
		if err != nil {
			return err
		}

		for _, v := range vaults {
			sealed, err := reseal(v.SealedBlob)
			if err != nil {
				return fmt.Errorf("reseal vault %s: %w", v.ID, err)
			}
			query, args, err := buildResealVaultQuery(r.builder, v.ID, sealed, toMillis(now))
			if err != nil {
				return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
			}
			if _, err = tx.ExecContext(ctx, query, args...); err != nil {
				return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
			}
		}
		return nil
	})
	if err != nil {
		log.Err(err).
			Str("func", "*vaultRepository.Rekey").
			Str("user_id", userID).
			Msg("failed to rekey vaults")
		return err
	}
	return nil
}

func (r *vaultRepository) exec(ctx context.Context, q queryer, build func(b sqBuilder, id string) (string, []any, error), id string) error {
	query, args, err := build(r.builder, id)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	if _, err = q.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	return nil
}

// selectVaults reads the matching vault rows, then their owners. Rows are
// closed before returning.
func (r *vaultRepository) selectVaults(ctx context.Context, q queryer, userID, vaultID string, withBlob bool) ([]models.SealedVault, error) {
	query, args, err := buildSelectVaultsQuery(r.builder, userID, vaultID, withBlob)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	vaults := make([]models.SealedVault, 0, 8)
	for rows.Next() {
		var (
			v                    models.SealedVault
			createdAt, updatedAt int64
		)
		dest := []any{&v.ID, &v.BlobFormat, &v.Version, &createdAt, &updatedAt}
		if withBlob {
			dest = append(dest, &v.SealedBlob)
		}
		if err := rows.Scan(dest...); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		v.UserID = userID
		v.CreatedAt = fromMillis(createdAt)
		v.UpdatedAt = fromMillis(updatedAt)
		vaults = append(vaults, v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}
	rows.Close()

	if len(vaults) == 0 {
		return vaults, nil
	}
	if err := r.attachOwners(ctx, q, vaults); err != nil {
		return nil, err
	}
	return vaults, nil
}

func (r *vaultRepository) attachOwners(ctx context.Context, q queryer, vaults []models.SealedVault) error {
	ids := make([]string, 0, len(vaults))
	index := make(map[string]int, len(vaults))
	for i, v := range vaults {
		ids = append(ids, v.ID)
		index[v.ID] = i
	}

	query, args, err := buildSelectOwnersQuery(r.builder, ids)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := q.QueryContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	for rows.Next() {
		var vaultID string
		var owner models.Owner
		if err := rows.Scan(&vaultID, &owner.ID, &owner.Issuer); err != nil {
			return fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		if i, ok := index[vaultID]; ok {
			vaults[i].Owners = append(vaults[i].Owners, owner)
		}
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("%w: %w", ErrScanningRows, err)
	}
	return nil
}

func toMillis(t time.Time) int64 { return t.UnixMilli() }

func fromMillis(ms int64) time.Time { return time.UnixMilli(ms).UTC() }
