package adapter

import "errors"

var (
	// ErrNotAuthorized is returned when the backend rejects the credentials.
	ErrNotAuthorized = errors.New("not authorized")

	// ErrAlreadyRegistered is returned by Register for a registered user.
	ErrAlreadyRegistered = errors.New("user already registered")

	// ErrNotRegistered is returned when the user has no backend registration.
	ErrNotRegistered = errors.New("user not registered")

	// ErrVersionConflict is returned when an update presents a stale version.
	ErrVersionConflict = errors.New("version conflict")

	// ErrVaultNotFound is returned when no vault matches the id.
	ErrVaultNotFound = errors.New("vault not found")

	// ErrSudoNotFound is returned when the user does not own the profile.
	ErrSudoNotFound = errors.New("sudo not found")

	// ErrInvalidOwnershipProof is returned when the backend cannot verify an
	// ownership proof.
	ErrInvalidOwnershipProof = errors.New("invalid ownership proof")

	// ErrMissingIdentity is returned when the identity service has no user.
	ErrMissingIdentity = errors.New("no signed-in user")

	// ErrServiceError is a generic backend failure.
	ErrServiceError = errors.New("service error")
)
