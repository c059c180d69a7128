package adapter

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-pass-vault/internal/store"
)

// mapStoreError translates repository errors into the errors of this
// package. The store error is kept in the chain for logging.
func mapStoreError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return err
	case errors.Is(err, store.ErrVersionConflict):
		return fmt.Errorf("%w: %w", ErrVersionConflict, err)
	case errors.Is(err, store.ErrVaultNotFound):
		return fmt.Errorf("%w: %w", ErrVaultNotFound, err)
	case errors.Is(err, store.ErrUserAlreadyExists):
		return fmt.Errorf("%w: %w", ErrAlreadyRegistered, err)
	case errors.Is(err, store.ErrNoUserWasFound):
		return fmt.Errorf("%w: %w", ErrNotRegistered, err)
	default:
		return fmt.Errorf("%w: %w", ErrServiceError, err)
	}
}
