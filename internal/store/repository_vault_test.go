package store

import (
	"context"
	"database/sql/driver"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgerrcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/models"
)

func newTestVaultRepo(t *testing.T) (VaultRepository, sqlmock.Sqlmock) {
	db, mock := newMockDB(t, DriverSQLite)
	return NewVaultRepository(db, logger.Nop()), mock
}

func sealedVault() models.SealedVault {
	return models.SealedVault{
		VaultMetadata: models.VaultMetadata{
			ID:         "v1",
			BlobFormat: "fmt",
			CreatedAt:  time.UnixMilli(1000),
			UpdatedAt:  time.UnixMilli(1000),
			Version:    1,
			Owners:     []models.Owner{{ID: "sudo-1", Issuer: models.OwnerIssuerSudoService}},
		},
		UserID:     "u1",
		SealedBlob: "sealed",
	}
}

func expectSelectVault(mock sqlmock.Sqlmock, version int, withBlob bool) {
	cols := vaultMetadataColumns
	row := []driver.Value{"v1", "fmt", version, int64(1000), int64(2000)}
	if withBlob {
		cols = vaultColumns
		row = append(row, "sealed")
	}
	mock.ExpectQuery(`SELECT .* FROM vaults WHERE user_id = \?`).
		WillReturnRows(sqlmock.NewRows(cols).AddRow(row...))
	mock.ExpectQuery(`SELECT vault_id, owner_id, issuer FROM vault_owners WHERE vault_id IN \(\?\)`).
		WithArgs("v1").
		WillReturnRows(sqlmock.NewRows(ownerColumns).AddRow("v1", "sudo-1", models.OwnerIssuerSudoService))
}

// ── CreateVault ──────────────────────────────────────────────────────────────

func TestCreateVault_Success(t *testing.T) {
	repo, mock := newTestVaultRepo(t)

	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO vaults`).
		WithArgs("v1", "u1", "fmt", "sealed", 1, int64(1000), int64(1000)).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec(`INSERT INTO vault_owners \(vault_id,owner_id,issuer\) VALUES \(\?,\?,\?\)`).
		WithArgs("v1", "sudo-1", models.OwnerIssuerSudoService).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	require.NoError(t, repo.CreateVault(context.Background(), sealedVault()))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateVault_Duplicate(t *testing.T) {
	repo, mock := newTestVaultRepo(t)

	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO vaults`).WillReturnError(sqliteUniqueError())
	mock.ExpectRollback()

	err := repo.CreateVault(context.Background(), sealedVault())
	assert.ErrorIs(t, err, ErrVaultAlreadyExists)
	require.NoError(t, mock.ExpectationsWereMet())
}

// ── ListVaults ───────────────────────────────────────────────────────────────

func TestListVaults(t *testing.T) {
	repo, mock := newTestVaultRepo(t)
	expectSelectVault(mock, 3, true)

	vaults, err := repo.ListVaults(context.Background(), "u1")
	require.NoError(t, err)
	require.Len(t, vaults, 1)

	v := vaults[0]
	assert.Equal(t, "v1", v.ID)
	assert.Equal(t, 3, v.Version)
	assert.Equal(t, "sealed", v.SealedBlob)
	assert.Equal(t, "u1", v.UserID)
	assert.Equal(t, int64(2000), v.UpdatedAt.UnixMilli())
	assert.Equal(t, []models.Owner{{ID: "sudo-1", Issuer: models.OwnerIssuerSudoService}}, v.Owners)
}

func TestListVaults_Empty(t *testing.T) {
	repo, mock := newTestVaultRepo(t)
	mock.ExpectQuery(`SELECT .* FROM vaults`).WillReturnRows(sqlmock.NewRows(vaultColumns))

	vaults, err := repo.ListVaults(context.Background(), "u1")
	require.NoError(t, err)
	assert.Empty(t, vaults)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestListVaults_QueryError(t *testing.T) {
	repo, mock := newTestVaultRepo(t)
	mock.ExpectQuery(`SELECT .* FROM vaults`).WillReturnError(errors.New("boom"))

	_, err := repo.ListVaults(context.Background(), "u1")
	assert.ErrorIs(t, err, ErrExecutingQuery)
}

func TestListVaultMetadata(t *testing.T) {
	repo, mock := newTestVaultRepo(t)
	expectSelectVault(mock, 2, false)

	meta, err := repo.ListVaultMetadata(context.Background(), "u1")
	require.NoError(t, err)
	require.Len(t, meta, 1)
	assert.Equal(t, 2, meta[0].Version)
	assert.Len(t, meta[0].Owners, 1)
}

func TestGetVault_NotFound(t *testing.T) {
	repo, mock := newTestVaultRepo(t)
	mock.ExpectQuery(`SELECT .* FROM vaults WHERE user_id = \? AND id = \?`).
		WithArgs("u1", "v9").
		WillReturnRows(sqlmock.NewRows(vaultColumns))

	_, err := repo.GetVault(context.Background(), "u1", "v9")
	assert.ErrorIs(t, err, ErrVaultNotFound)
}

// ── UpdateVault ──────────────────────────────────────────────────────────────

func vaultUpdate() models.VaultUpdate {
	return models.VaultUpdate{
		UserID:          "u1",
		ID:              "v1",
		ExpectedVersion: 1,
		SealedBlob:      "new",
		BlobFormat:      "fmt",
		UpdatedAt:       time.UnixMilli(2000),
	}
}

func TestUpdateVault_Success(t *testing.T) {
	repo, mock := newTestVaultRepo(t)

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE vaults SET blob = \?, blob_format = \?, version = version \+ 1, updated_at = \? WHERE id = \? AND user_id = \? AND version = \?`).
		WithArgs("new", "fmt", int64(2000), "v1", "u1", 1).
		WillReturnResult(sqlmock.NewResult(0, 1))
	expectSelectVault(mock, 2, false)
	mock.ExpectCommit()

	meta, err := repo.UpdateVault(context.Background(), vaultUpdate())
	require.NoError(t, err)
	assert.Equal(t, 2, meta.Version)
	assert.Equal(t, int64(2000), meta.UpdatedAt.UnixMilli())
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateVault_VersionConflict(t *testing.T) {
	repo, mock := newTestVaultRepo(t)

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE vaults`).WillReturnResult(sqlmock.NewResult(0, 0))
	expectSelectVault(mock, 5, false)
	mock.ExpectRollback()

	_, err := repo.UpdateVault(context.Background(), vaultUpdate())
	assert.ErrorIs(t, err, ErrVersionConflict)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateVault_NotFound(t *testing.T) {
	repo, mock := newTestVaultRepo(t)

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE vaults`).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery(`SELECT .* FROM vaults`).WillReturnRows(sqlmock.NewRows(vaultMetadataColumns))
	mock.ExpectRollback()

	_, err := repo.UpdateVault(context.Background(), vaultUpdate())
	assert.ErrorIs(t, err, ErrVaultNotFound)
}

func TestUpdateVault_RetriesSerializationFailure(t *testing.T) {
	db, mock := newMockDB(t, DriverPostgres)
	repo := NewVaultRepository(db, logger.Nop())

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE vaults .* WHERE id = \$4 AND user_id = \$5 AND version = \$6`).
		WillReturnError(pgError(pgerrcode.SerializationFailure))
	mock.ExpectRollback()

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE vaults`).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery(`SELECT .* FROM vaults WHERE user_id = \$1 AND id = \$2`).
		WillReturnRows(sqlmock.NewRows(vaultMetadataColumns).AddRow("v1", "fmt", 2, int64(1000), int64(2000)))
	mock.ExpectQuery(`SELECT .* FROM vault_owners WHERE vault_id IN \(\$1\)`).
		WillReturnRows(sqlmock.NewRows(ownerColumns))
	mock.ExpectCommit()

	meta, err := repo.UpdateVault(context.Background(), vaultUpdate())
	require.NoError(t, err)
	assert.Equal(t, 2, meta.Version)
	require.NoError(t, mock.ExpectationsWereMet())
}

// ── DeleteVault ──────────────────────────────────────────────────────────────

func TestDeleteVault_Existing(t *testing.T) {
	repo, mock := newTestVaultRepo(t)

	mock.ExpectBegin()
	expectSelectVault(mock, 4, false)
	mock.ExpectExec(`DELETE FROM vault_owners WHERE vault_id = \?`).WithArgs("v1").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`DELETE FROM vaults WHERE id = \? AND user_id = \?`).WithArgs("v1", "u1").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	meta, err := repo.DeleteVault(context.Background(), "u1", "v1")
	require.NoError(t, err)
	require.NotNil(t, meta)
	assert.Equal(t, 4, meta.Version)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteVault_Missing(t *testing.T) {
	repo, mock := newTestVaultRepo(t)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT .* FROM vaults`).WillReturnRows(sqlmock.NewRows(vaultMetadataColumns))
	mock.ExpectCommit()

	meta, err := repo.DeleteVault(context.Background(), "u1", "v1")
	require.NoError(t, err)
	assert.Nil(t, meta)
}

func TestDeleteAllVaults(t *testing.T) {
	repo, mock := newTestVaultRepo(t)

	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM vault_owners WHERE vault_id IN \(SELECT id FROM vaults WHERE user_id = \?\)`).
		WithArgs("u1").WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectExec(`DELETE FROM vaults WHERE user_id = \?`).
		WithArgs("u1").WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectCommit()

	require.NoError(t, repo.DeleteAllVaults(context.Background(), "u1"))
	require.NoError(t, mock.ExpectationsWereMet())
}

// ── Rekey ────────────────────────────────────────────────────────────────────

func TestRekey_ResealsEveryVault(t *testing.T) {
	repo, mock := newTestVaultRepo(t)
	now := time.UnixMilli(5000)

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE users SET auth_hash = \? WHERE user_id = \?`).
		WithArgs("AQ==", "u1").WillReturnResult(sqlmock.NewResult(0, 1))
	expectSelectVault(mock, 1, true)
	mock.ExpectExec(`UPDATE vaults SET blob = \?, version = version \+ 1, updated_at = \? WHERE id = \?`).
		WithArgs("resealed:sealed", int64(5000), "v1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := repo.Rekey(context.Background(), "u1", []byte{1}, func(s string) (string, error) {
		return "resealed:" + s, nil
	}, now)
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRekey_ResealFailureRollsBack(t *testing.T) {
	repo, mock := newTestVaultRepo(t)

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE users`).WillReturnResult(sqlmock.NewResult(0, 1))
	expectSelectVault(mock, 1, true)
	mock.ExpectRollback()

	err := repo.Rekey(context.Background(), "u1", []byte{1}, func(string) (string, error) {
		return "", errors.New("bad key")
	}, time.Now())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reseal vault v1")
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRekey_UnknownUser(t *testing.T) {
	repo, mock := newTestVaultRepo(t)

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE users`).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	err := repo.Rekey(context.Background(), "u1", []byte{1}, nil, time.Now())
	assert.ErrorIs(t, err, ErrNoUserWasFound)
}
