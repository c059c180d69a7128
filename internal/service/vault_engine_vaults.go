package service

import (
	"context"

	"github.com/MKhiriev/go-pass-vault/internal/app"
	"github.com/MKhiriev/go-pass-vault/internal/vaultschema"
	"github.com/MKhiriev/go-pass-vault/models"
)

func (e *vaultEngine) CreateVault(ctx context.Context, ownerID string) (models.Vault, error) {
	const method = "CreateVault"
	e.touch()

	sess, err := e.current()
	if err != nil {
		return models.Vault{}, e.fail(method, err)
	}

	proof, err := e.profiles.GetOwnershipProof(ctx, ownerID, models.SecureVaultAudience)
	if err != nil {
		return models.Vault{}, e.fail(method, err)
	}

	formatTag := vaultschema.Latest().FormatTag()
	blob, err := vaultschema.Encode(models.VaultDocument{})
	if err != nil {
		return models.Vault{}, e.fail(method, err)
	}
	doc, err := vaultschema.Decode(blob, formatTag)
	if err != nil {
		return models.Vault{}, e.fail(method, err)
	}

	var meta models.VaultMetadata
	err = sess.use(func(kdk, password []byte) error {
		var err error
		meta, err = e.backend.CreateVault(ctx, kdk, password, blob, formatTag, proof)
		return err
	})
	if err != nil {
		return models.Vault{}, e.fail(method, err)
	}

	record := models.VaultRecord{
		ID:         meta.ID,
		BlobFormat: formatTag,
		CreatedAt:  meta.CreatedAt,
		UpdatedAt:  meta.UpdatedAt,
		Version:    meta.Version,
		Owners:     meta.Owners,
		Document:   doc,
	}
	if !e.whileCurrent(sess, func() { e.store.ImportOne(record) }) {
		return models.Vault{}, e.fail(method, app.Wrap(app.ErrVaultLocked, app.MsgVaultsMustBeUnlocked))
	}

	e.logger.Info().Str("func", "*vaultEngine.CreateVault").Str("vault_id", record.ID).Msg("vault created")
	return record.Vault(), nil
}

func (e *vaultEngine) DeleteVault(ctx context.Context, vaultID string) error {
	const method = "DeleteVault"
	e.touch()

	if _, err := e.current(); err != nil {
		return e.fail(method, err)
	}

	meta, err := e.backend.DeleteVault(ctx, vaultID)
	// the local copy goes whatever the backend said
	e.store.Delete(vaultID)

	if err != nil {
		return e.fail(method, err)
	}
	if meta == nil {
		return e.fail(method, app.Wrap(app.ErrVaultNotFound, app.MsgVaultNotFound))
	}
	return nil
}

func (e *vaultEngine) GetVault(_ context.Context, vaultID string) (*models.Vault, error) {
	e.touch()

	if _, err := e.current(); err != nil {
		return nil, e.fail("GetVault", err)
	}

	record, ok := e.store.Get(vaultID)
	if !ok {
		return nil, nil
	}
	v := record.Vault()
	return &v, nil
}

func (e *vaultEngine) ListVaults(_ context.Context) ([]models.Vault, error) {
	e.touch()

	if _, err := e.current(); err != nil {
		return nil, e.fail("ListVaults", err)
	}

	records := e.store.List()
	out := make([]models.Vault, 0, len(records))
	for _, r := range records {
		out = append(out, r.Vault())
	}
	return out, nil
}

func (e *vaultEngine) UpdateVault(ctx context.Context, vaultID string) (models.Vault, error) {
	const method = "UpdateVault"
	e.touch()

	sess, err := e.current()
	if err != nil {
		return models.Vault{}, e.fail(method, err)
	}

	v, err := e.push(ctx, sess, vaultID)
	if err != nil {
		return models.Vault{}, e.fail(method, err)
	}
	return v, nil
}

// push encodes the stored document of the vault, sends it with the last
// known version and patches the bookkeeping from the backend's answer.
func (e *vaultEngine) push(ctx context.Context, sess *session, vaultID string) (models.Vault, error) {
	record, ok := e.store.Get(vaultID)
	if !ok {
		return models.Vault{}, app.Wrap(app.ErrVaultNotFound, app.MsgVaultNotFound)
	}

	blob, err := vaultschema.Encode(record.Document)
	if err != nil {
		return models.Vault{}, err
	}

	var meta models.VaultMetadata
	err = sess.use(func(kdk, password []byte) error {
		var err error
		meta, err = e.backend.UpdateVault(ctx, kdk, password, record.ID, record.Version, blob, vaultschema.Latest().FormatTag())
		return err
	})
	if err != nil {
		return models.Vault{}, err
	}

	e.store.PatchMetadata(record.ID, meta.UpdatedAt, meta.Version)
	e.logger.Debug().Str("func", "*vaultEngine.push").Str("vault_id", record.ID).
		Int("from_version", record.Version).Int("to_version", meta.Version).Msg("vault pushed")

	record.UpdatedAt, record.Version = meta.UpdatedAt, meta.Version
	return record.Vault(), nil
}
