package store

import (
	"encoding/base64"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-pass-vault/models"
)

type sqBuilder = sq.StatementBuilderType

const (
	usersTable       = "users"
	vaultsTable      = "vaults"
	vaultOwnersTable = "vault_owners"
)

var (
	userColumns          = []string{"user_handle", "user_id", "auth_hash", "created_at"}
	vaultMetadataColumns = []string{"id", "blob_format", "version", "created_at", "updated_at"}
	vaultColumns         = append(append([]string{}, vaultMetadataColumns...), "blob")
	ownerColumns         = []string{"vault_id", "owner_id", "issuer"}
)

// ── users ────────────────────────────────────────────────────────────────────

func buildInsertUserQuery(b sq.StatementBuilderType, user models.BackendUser) (string, []any, error) {
	return b.Insert(usersTable).
		Columns(userColumns...).
		Values(user.Handle, user.UserID, encodeHash(user.AuthHash), toMillis(user.CreatedAt)).
		ToSql()
}

func buildSelectUserQuery(b sq.StatementBuilderType, userID string) (string, []any, error) {
	return b.Select(userColumns...).
		From(usersTable).
		Where(sq.Eq{"user_id": userID}).
		ToSql()
}

func buildDeleteUserQuery(b sq.StatementBuilderType, userID string) (string, []any, error) {
	return b.Delete(usersTable).
		Where(sq.Eq{"user_id": userID}).
		ToSql()
}

func buildUpdateAuthHashQuery(b sq.StatementBuilderType, userID string, authHash []byte) (string, []any, error) {
	return b.Update(usersTable).
		Set("auth_hash", encodeHash(authHash)).
		Where(sq.Eq{"user_id": userID}).
		ToSql()
}

// ── vaults ───────────────────────────────────────────────────────────────────

func buildInsertVaultQuery(b sq.StatementBuilderType, v models.SealedVault) (string, []any, error) {
	return b.Insert(vaultsTable).
		Columns("id", "user_id", "blob_format", "blob", "version", "created_at", "updated_at").
		Values(v.ID, v.UserID, v.BlobFormat, v.SealedBlob, v.Version, toMillis(v.CreatedAt), toMillis(v.UpdatedAt)).
		ToSql()
}

func buildInsertOwnersQuery(b sq.StatementBuilderType, vaultID string, owners []models.Owner) (string, []any, error) {
	q := b.Insert(vaultOwnersTable).Columns(ownerColumns...)
	for _, o := range owners {
		q = q.Values(vaultID, o.ID, o.Issuer)
	}
	return q.ToSql()
}

// buildSelectVaultsQuery selects the user's vaults, optionally narrowed to a
// single id, with or without the blob column.
func buildSelectVaultsQuery(b sq.StatementBuilderType, userID, vaultID string, withBlob bool) (string, []any, error) {
	columns := vaultMetadataColumns
	if withBlob {
		columns = vaultColumns
	}

	q := b.Select(columns...).
		From(vaultsTable).
		Where(sq.Eq{"user_id": userID})
	if vaultID != "" {
		q = q.Where(sq.Eq{"id": vaultID})
	}
	return q.OrderBy("created_at", "id").ToSql()
}

func buildSelectOwnersQuery(b sq.StatementBuilderType, vaultIDs []string) (string, []any, error) {
	return b.Select(ownerColumns...).
		From(vaultOwnersTable).
		Where(sq.Eq{"vault_id": vaultIDs}).
		OrderBy("vault_id", "issuer", "owner_id").
		ToSql()
}

// buildUpdateVaultQuery is the optimistic-concurrency write: it matches only
// while the stored version equals the expected one and bumps the version.
func buildUpdateVaultQuery(b sq.StatementBuilderType, u models.VaultUpdate) (string, []any, error) {
	return b.Update(vaultsTable).
		Set("blob", u.SealedBlob).
		Set("blob_format", u.BlobFormat).
		Set("version", sq.Expr("version + 1")).
		Set("updated_at", toMillis(u.UpdatedAt)).
		Where(sq.Eq{"id": u.ID}).
		Where(sq.Eq{"user_id": u.UserID}).
		Where(sq.Eq{"version": u.ExpectedVersion}).
		ToSql()
}

func buildResealVaultQuery(b sq.StatementBuilderType, vaultID, sealed string, updatedAt int64) (string, []any, error) {
	return b.Update(vaultsTable).
		Set("blob", sealed).
		Set("version", sq.Expr("version + 1")).
		Set("updated_at", updatedAt).
		Where(sq.Eq{"id": vaultID}).
		ToSql()
}

func buildDeleteVaultQuery(b sq.StatementBuilderType, userID, vaultID string) (string, []any, error) {
	return b.Delete(vaultsTable).
		Where(sq.Eq{"id": vaultID}).
		Where(sq.Eq{"user_id": userID}).
		ToSql()
}

func buildDeleteOwnersQuery(b sq.StatementBuilderType, vaultID string) (string, []any, error) {
	return b.Delete(vaultOwnersTable).
		Where(sq.Eq{"vault_id": vaultID}).
		ToSql()
}

func buildDeleteUserOwnersQuery(b sq.StatementBuilderType, userID string) (string, []any, error) {
	return b.Delete(vaultOwnersTable).
		Where(sq.Expr("vault_id IN (SELECT id FROM vaults WHERE user_id = ?)", userID)).
		ToSql()
}

func buildDeleteUserVaultsQuery(b sq.StatementBuilderType, userID string) (string, []any, error) {
	return b.Delete(vaultsTable).
		Where(sq.Eq{"user_id": userID}).
		ToSql()
}

func encodeHash(h []byte) string { return base64.StdEncoding.EncodeToString(h) }

func decodeHash(s string) ([]byte, error) { return base64.StdEncoding.DecodeString(s) }
