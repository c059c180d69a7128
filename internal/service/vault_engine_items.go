package service

import (
	"context"
	"encoding/base64"
	"time"

	"github.com/MKhiriev/go-pass-vault/internal/app"
	"github.com/MKhiriev/go-pass-vault/models"
)

func (e *vaultEngine) AddVaultItem(ctx context.Context, item models.VaultItem, vaultID string) error {
	const method = "AddVaultItem"
	e.touch()

	if models.IsNilItem(item) {
		return e.fail(method, app.Wrap(app.ErrInvalidFormat, app.MsgUnsupportedItemType))
	}

	err := e.mutateVault(ctx, vaultID, item, "", func(sealed models.VaultItem) error {
		base := sealed.Base()
		now := e.stamp()
		if base.CreatedAt.IsZero() {
			base.CreatedAt = now
		}
		if base.UpdatedAt.IsZero() {
			base.UpdatedAt = now
		}
		return e.store.AddItem(sealed, vaultID)
	})
	if err != nil {
		return e.fail(method, err)
	}
	return nil
}

func (e *vaultEngine) UpdateVaultItem(ctx context.Context, item models.VaultItem, vaultID string) error {
	const method = "UpdateVaultItem"
	e.touch()

	if models.IsNilItem(item) {
		return e.fail(method, app.Wrap(app.ErrInvalidFormat, app.MsgUnsupportedItemType))
	}

	err := e.mutateVault(ctx, vaultID, item, "", func(sealed models.VaultItem) error {
		return e.store.UpdateItem(sealed, vaultID)
	})
	if err != nil {
		return e.fail(method, err)
	}
	return nil
}

func (e *vaultEngine) RemoveVaultItem(ctx context.Context, itemID, vaultID string) error {
	const method = "RemoveVaultItem"
	e.touch()

	err := e.mutateVault(ctx, vaultID, nil, itemID, func(models.VaultItem) error {
		return e.store.RemoveItem(itemID, vaultID)
	})
	if err != nil {
		return e.fail(method, err)
	}
	return nil
}

func (e *vaultEngine) ListVaultItems(_ context.Context, vaultID string) ([]models.VaultItem, error) {
	const method = "ListVaultItems"
	e.touch()

	sess, err := e.current()
	if err != nil {
		return nil, e.fail(method, err)
	}

	record, ok := e.store.Get(vaultID)
	if !ok {
		return []models.VaultItem{}, nil
	}

	items := record.Document.KnownItems()
	for _, u := range record.Document.UnknownItems() {
		items = append(items, u)
	}

	out := make([]models.VaultItem, 0, len(items))
	err = sess.use(func(kdk, _ []byte) error {
		for _, item := range items {
			bound, err := e.bindItem(item, kdk)
			if err != nil {
				return err
			}
			out = append(out, bound)
		}
		return nil
	})
	if err != nil {
		return nil, e.fail(method, err)
	}
	return out, nil
}

func (e *vaultEngine) GetVaultItem(_ context.Context, itemID, vaultID string) (models.VaultItem, error) {
	const method = "GetVaultItem"
	e.touch()

	sess, err := e.current()
	if err != nil {
		return nil, e.fail(method, err)
	}

	record, ok := e.store.Get(vaultID)
	if !ok {
		return nil, nil
	}
	item := record.Document.Find(itemID)
	if item == nil {
		return nil, nil
	}

	var bound models.VaultItem
	err = sess.use(func(kdk, _ []byte) error {
		var err error
		bound, err = e.bindItem(item, kdk)
		return err
	})
	if err != nil {
		return nil, e.fail(method, err)
	}
	return bound, nil
}

// mutateVault seals item, applies apply to the store and pushes the vault.
// itemID names the item a removal touches; for add and update it is taken
// from item. A missing vault aborts before the backend is called. When the
// push fails only this call's item change is undone, because a concurrent
// write may already have moved the vault to a newer version.
func (e *vaultEngine) mutateVault(ctx context.Context, vaultID string, item models.VaultItem, itemID string, apply func(sealed models.VaultItem) error) error {
	sess, err := e.current()
	if err != nil {
		return err
	}

	before, ok := e.store.Get(vaultID)
	if !ok {
		return app.Wrap(app.ErrVaultNotFound, app.MsgVaultNotFound)
	}

	var sealed models.VaultItem
	if item != nil {
		err = sess.use(func(kdk, _ []byte) error {
			var err error
			sealed, err = e.sealItem(item, kdk)
			return err
		})
		if err != nil {
			return err
		}
		itemID = sealed.Base().ID
	}
	previous := before.Document.Find(itemID)

	if err = apply(sealed); err != nil {
		return err
	}

	if _, err = e.push(ctx, sess, vaultID); err != nil {
		e.whileCurrent(sess, func() {
			// the vault may be gone by now; nothing to undo then
			_ = e.store.RevertItem(itemID, previous, vaultID)
		})
		return err
	}
	return nil
}

// sealItem returns a copy of item whose plaintext secure fields are
// encrypted under key. Fields that are already ciphertext pass through, so
// stored material is never encrypted twice.
func (e *vaultEngine) sealItem(item models.VaultItem, key []byte) (models.VaultItem, error) {
	if models.IsNilItem(item) {
		return nil, app.Wrap(app.ErrInvalidFormat, app.MsgUnsupportedItemType)
	}

	sealed := item.Clone()
	base := sealed.Base()
	base.CreatedAt = base.CreatedAt.Truncate(time.Millisecond)
	base.UpdatedAt = base.UpdatedAt.Truncate(time.Millisecond)

	err := sealed.MapSecureFields(func(f *models.SecureField) (*models.SecureField, error) {
		plaintext, ok := f.Plaintext()
		if !ok {
			// already ciphertext; drop any reveal binding
			return models.NewSealedSecureField(f.Ciphertext()), nil
		}
		blob, err := e.fieldCrypto.Encrypt([]byte(plaintext), key)
		if err != nil {
			return nil, app.Wrap(app.ErrCryptography, err)
		}
		return models.NewSealedSecureField(base64.StdEncoding.EncodeToString(blob)), nil
	})
	if err != nil {
		return nil, err
	}
	return sealed, nil
}

// bindItem returns a copy of item whose secure fields can be revealed
// until the engine locks.
func (e *vaultEngine) bindItem(item models.VaultItem, key []byte) (models.VaultItem, error) {
	bound := item.Clone()
	err := bound.MapSecureFields(func(f *models.SecureField) (*models.SecureField, error) {
		return f.Bind(key, e.lock, e.fieldCrypto), nil
	})
	if err != nil {
		return nil, err
	}
	return bound, nil
}
