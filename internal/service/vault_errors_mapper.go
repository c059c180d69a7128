// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"

	"github.com/MKhiriev/go-pass-vault/internal/adapter"
	"github.com/MKhiriev/go-pass-vault/internal/app"
	"github.com/MKhiriev/go-pass-vault/internal/crypto"
	"github.com/MKhiriev/go-pass-vault/internal/keystore"
	"github.com/MKhiriev/go-pass-vault/internal/store"
	"github.com/MKhiriev/go-pass-vault/internal/vaultschema"
)

// mapError translates a collaborator error into exactly one error kind of
// the app package. Cancellation is returned unchanged.
func mapError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, context.Canceled):
		return context.Canceled
	case errors.Is(err, context.DeadlineExceeded):
		return context.DeadlineExceeded
	case app.IsDomainError(err):
		return err

	case errors.Is(err, adapter.ErrNotAuthorized),
		errors.Is(err, adapter.ErrNotRegistered),
		errors.Is(err, adapter.ErrMissingIdentity):
		return app.Wrap(app.ErrUnauthorizedUser, err)

	case errors.Is(err, adapter.ErrVersionConflict):
		return app.Wrap(app.ErrVersionConflict, err)

	case errors.Is(err, adapter.ErrVaultNotFound),
		errors.Is(err, store.ErrVaultNotFound):
		return app.Wrap(app.ErrVaultNotFound, err)

	case errors.Is(err, adapter.ErrSudoNotFound),
		errors.Is(err, adapter.ErrInvalidOwnershipProof):
		return app.Wrap(app.ErrSudoNotFound, err)

	case errors.Is(err, adapter.ErrAlreadyRegistered),
		errors.Is(err, adapter.ErrServiceError):
		return app.Wrap(app.ErrFailed, err)

	case errors.Is(err, store.ErrInvalidItem),
		errors.Is(err, vaultschema.ErrMalformedVault),
		errors.Is(err, vaultschema.ErrUnsupportedItem),
		errors.Is(err, vaultschema.ErrUnsealedField):
		return app.Wrap(app.ErrInvalidFormat, err)

	case errors.Is(err, keystore.ErrKeyNotFound),
		errors.Is(err, keystore.ErrKeyAlreadyExists),
		errors.Is(err, crypto.ErrCiphertextTooShort),
		errors.Is(err, crypto.ErrInvalidPadding),
		errors.Is(err, crypto.ErrInvalidBlockSize):
		return app.Wrap(app.ErrCryptography, err)
	}

	return app.Wrap(app.ErrUnknown, err)
}
