package store

import (
	"testing"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-pass-vault/models"
)

var (
	questionBuilder = sq.StatementBuilder.PlaceholderFormat(sq.Question)
	dollarBuilder   = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
)

func TestBuildSelectVaultsQuery(t *testing.T) {
	tests := []struct {
		name     string
		vaultID  string
		withBlob bool
		wantSQL  string
		wantArgs []any
	}{
		{
			name:     "all vaults with blob",
			withBlob: true,
			wantSQL:  "SELECT id, blob_format, version, created_at, updated_at, blob FROM vaults WHERE user_id = $1 ORDER BY created_at, id",
			wantArgs: []any{"u1"},
		},
		{
			name:     "single vault metadata",
			vaultID:  "v1",
			wantSQL:  "SELECT id, blob_format, version, created_at, updated_at FROM vaults WHERE user_id = $1 AND id = $2 ORDER BY created_at, id",
			wantArgs: []any{"u1", "v1"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query, args, err := buildSelectVaultsQuery(dollarBuilder, "u1", tt.vaultID, tt.withBlob)
			require.NoError(t, err)
			assert.Equal(t, tt.wantSQL, query)
			assert.Equal(t, tt.wantArgs, args)
		})
	}
}

func TestBuildUpdateVaultQuery(t *testing.T) {
	query, args, err := buildUpdateVaultQuery(questionBuilder, models.VaultUpdate{
		UserID:          "u1",
		ID:              "v1",
		ExpectedVersion: 7,
		SealedBlob:      "blob",
		BlobFormat:      "fmt",
		UpdatedAt:       time.UnixMilli(42),
	})
	require.NoError(t, err)
	assert.Equal(t,
		"UPDATE vaults SET blob = ?, blob_format = ?, version = version + 1, updated_at = ? WHERE id = ? AND user_id = ? AND version = ?",
		query)
	assert.Equal(t, []any{"blob", "fmt", int64(42), "v1", "u1", 7}, args)
}

func TestBuildInsertOwnersQuery(t *testing.T) {
	query, args, err := buildInsertOwnersQuery(questionBuilder, "v1", []models.Owner{
		{ID: "a", Issuer: "i1"},
		{ID: "b", Issuer: "i2"},
	})
	require.NoError(t, err)
	assert.Equal(t, "INSERT INTO vault_owners (vault_id,owner_id,issuer) VALUES (?,?,?),(?,?,?)", query)
	assert.Equal(t, []any{"v1", "a", "i1", "v1", "b", "i2"}, args)
}

func TestBuildSelectOwnersQuery(t *testing.T) {
	query, args, err := buildSelectOwnersQuery(questionBuilder, []string{"v1", "v2"})
	require.NoError(t, err)
	assert.Equal(t, "SELECT vault_id, owner_id, issuer FROM vault_owners WHERE vault_id IN (?,?) ORDER BY vault_id, issuer, owner_id", query)
	assert.Equal(t, []any{"v1", "v2"}, args)
}

func TestBuildDeleteUserOwnersQuery(t *testing.T) {
	query, args, err := buildDeleteUserOwnersQuery(dollarBuilder, "u1")
	require.NoError(t, err)
	assert.Equal(t, "DELETE FROM vault_owners WHERE vault_id IN (SELECT id FROM vaults WHERE user_id = $1)", query)
	assert.Equal(t, []any{"u1"}, args)
}

func TestHashEncoding(t *testing.T) {
	h := []byte{0xde, 0xad, 0xbe, 0xef}
	got, err := decodeHash(encodeHash(h))
	require.NoError(t, err)
	assert.Equal(t, h, got)

	_, err = decodeHash("not base64!")
	assert.Error(t, err)
}
