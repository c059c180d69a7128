package vaultschema

import "errors"

var (
	// ErrMalformedVault is returned when a blob is not a valid vault
	// document. Batch decoding wraps one of these per failed vault.
	ErrMalformedVault = errors.New("malformed vault blob")

	// ErrUnsealedField is returned when encoding meets a secure field that
	// still holds plaintext.
	ErrUnsealedField = errors.New("secure field is not sealed")

	// ErrUnsupportedItem is returned when an item cannot be placed in any
	// top-level collection.
	ErrUnsupportedItem = errors.New("unsupported vault item")
)
